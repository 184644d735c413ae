package logic

// Gate - the operator checkpoints of a run. The pipeline only starts
// after Confirm returns true, and every fatal exit passes through
// Acknowledge so the operator has seen the reason before the process
// terminates.
type Gate interface {
	Confirm(prompt string) (bool, error)
	Acknowledge(message string)
}

// AutoGate - a gate that always confirms and never blocks, for
// non-interactive runs and tests
type AutoGate struct{}

// Confirm - always true
func (AutoGate) Confirm(string) (bool, error) { return true, nil }

// Acknowledge - no-op
func (AutoGate) Acknowledge(string) {}
