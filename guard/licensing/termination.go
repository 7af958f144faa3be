package licensing

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEnvironmentInsecure represents a refusal to run in an environment
	// where the guard could not be established.
	ErrEnvironmentInsecure = errors.New("environment deemed insecure")
	// ErrTerminatorNotInitialized indicates the terminator was used without
	// proper initialization: use licensing.NewTerminator() to create an instance.
	ErrTerminatorNotInitialized = errors.New("licensing.Terminator used without initialization: use licensing.NewTerminator() to create an instance")
)

// Handler defines the function signature for termination handlers.
type Handler func(reason string)

// DefaultHandler is the default termination behavior. It triggers a panic
// which will be caught by the host's graceful shutdown handling.
func DefaultHandler(reason string) {
	panic("INSECURE ENVIRONMENT: " + reason)
}

// DefaultHandlerWithError returns an error instead of panicking. Use this
// when the host wants to surface the insecure environment gracefully.
func DefaultHandlerWithError(reason string) error {
	return fmt.Errorf("%w: %s", ErrEnvironmentInsecure, reason)
}

// Terminator decides what happens to the process when the guard cannot be
// installed. Hosts set a handler during startup, before installation runs.
type Terminator struct {
	handler Handler
	mu      sync.RWMutex
}

// NewTerminator creates a terminator with the default handler.
func NewTerminator() *Terminator {
	return &Terminator{
		handler: DefaultHandler,
	}
}

// SetHandler updates the termination handler. Call during application
// startup, before guard installation. A nil handler is ignored.
func (t *Terminator) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.handler = handler
}

// Terminate invokes the termination handler.
//
// Note: this method panics if the terminator was not initialized with
// NewTerminator(). Use TerminateSafe if the uninitialized case must be
// handled gracefully.
func (t *Terminator) Terminate(reason string) {
	t.mu.RLock()
	handler := t.handler
	t.mu.RUnlock()

	if handler == nil {
		panic(ErrTerminatorNotInitialized)
	}

	handler(reason)
}

// TerminateSafe invokes the termination handler and returns an error if the
// terminator was not properly initialized, instead of panicking.
func (t *Terminator) TerminateSafe(reason string) error {
	t.mu.RLock()
	handler := t.handler
	t.mu.RUnlock()

	if handler == nil {
		return ErrTerminatorNotInitialized
	}

	handler(reason)

	return nil
}
