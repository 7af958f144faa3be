//go:build unit

package guard

import "sync"

// resetInstallForTest clears the process-wide installation state so each
// test can drive the protocol from a chosen starting point.
func resetInstallForTest() {
	activeMu.Lock()
	activePolicy = nil
	activeMu.Unlock()

	installOnce = sync.Once{}
	installErr = nil
}

// seedActiveForTest places a pre-existing enforcement point in the slot
// without consulting it, simulating a policy registered before this module
// initialized.
func seedActiveForTest(policy Policy) {
	activeMu.Lock()
	activePolicy = policy
	activeMu.Unlock()
}
