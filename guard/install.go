package guard

import (
	"context"
	"sync"

	"github.com/eSolutionsGrup/license-manager/guard/assert"
	"github.com/eSolutionsGrup/license-manager/guard/internal/nilcheck"
	"github.com/eSolutionsGrup/license-manager/guard/log"
	"github.com/eSolutionsGrup/license-manager/guard/permission"
)

// The one mutable resource: which enforcement point is currently active.
// It is written under setActive only; after installation completes the
// guard's veto makes every further write fail, so reads need no
// coordination beyond the RWMutex.
var (
	activeMu     sync.RWMutex
	activePolicy Policy

	installOnce sync.Once
	installErr  error
)

// Active returns the process-wide active enforcement point, or nil when
// none is installed.
//
//nolint:ireturn
func Active() Policy {
	activeMu.RLock()
	defer activeMu.RUnlock()

	return activePolicy
}

// Check routes a privileged-operation request to the active enforcement
// point. With no active point, every operation is allowed.
func Check(req permission.Request) error {
	policy := Active()
	if policy == nil {
		return nil
	}

	return policy.CheckPermission(req)
}

// CheckMemberAccess routes the legacy member-access callback to the active
// enforcement point when it implements the optional capability; otherwise
// the call is a safe no-op permit.
func CheckMemberAccess(target permission.TypeIdentity, kind permission.MemberAccessKind) error {
	checker, ok := Active().(LegacyMemberAccessChecker)
	if !ok {
		return nil
	}

	return checker.CheckMemberAccess(target, kind)
}

// Register offers a candidate enforcement point for the process-wide slot.
// The current active policy is consulted with a replace-policy request
// first, so its veto holds for every candidate. Before any policy is
// active, registration is unrestricted.
func Register(candidate Policy) error {
	if nilcheck.Interface(candidate) {
		return ErrNilPolicy
	}

	return setActive(candidate)
}

// setActive is the only writer of the active slot. There is no unchecked
// setter: the current policy always rules on its own replacement.
func setActive(candidate Policy) error {
	activeMu.Lock()
	defer activeMu.Unlock()

	if activePolicy != nil {
		if err := activePolicy.CheckPermission(permission.ReplacePolicy()); err != nil {
			return err
		}
	}

	activePolicy = candidate

	return nil
}

// Install runs the installation protocol exactly once per process. Repeat
// calls return the memoized outcome, including a fatal one.
//
// The protocol decides between four terminal states: install fresh when no
// enforcement point exists, leave a suitable existing point untouched,
// nest over an unsuitable one, or no-op when this guard is already active.
// A refusal by the existing point is an InsecureEnvironmentError: the
// process must not continue.
func Install(opts ...Option) error {
	installOnce.Do(func() {
		installErr = install(newConfig(opts...))
	})

	return installErr
}

func install(cfg *config) error {
	ctx := context.Background()
	existing := Active()

	if _, ok := existing.(*Guard); ok {
		cfg.logger.Log(ctx, log.LevelDebug, "guard already installed")
		return nil
	}

	if nilcheck.Interface(existing) {
		return registerGuard(ctx, newGuard(nil, cfg), cfg)
	}

	asserter := assert.New(cfg.logger, "guard", "install")

	suitable, err := isSuitableReplacement(existing, cfg.surface, asserter)
	if err != nil {
		// broken build or nil slot state, never a verdict
		return err
	}

	if suitable {
		cfg.logger.Log(ctx, log.LevelInfo, "existing enforcement point is suitable, leaving it active")
		return nil
	}

	return registerGuard(ctx, newGuard(existing, cfg), cfg)
}

// registerGuard installs a freshly constructed guard as the active point.
// A refusal is fatal: it propagates as InsecureEnvironmentError and fires
// the terminator when one is wired.
func registerGuard(ctx context.Context, g *Guard, cfg *config) error {
	if err := setActive(g); err != nil {
		insecure := &InsecureEnvironmentError{Cause: err}

		if cfg.terminator != nil {
			if termErr := cfg.terminator.TerminateSafe(insecure.Error()); termErr != nil {
				cfg.logger.Log(ctx, log.LevelError, "termination handler unavailable", log.Err(termErr))
			}
		}

		return insecure
	}

	cfg.logger.Log(ctx, log.LevelInfo, "guard installed",
		log.Bool("nested_prior_policy", g.Next() != nil),
		log.Any("protected_namespaces", g.protectedNamespaces()),
	)

	return nil
}
