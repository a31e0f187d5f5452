package domain

import "strings"

// Outcome classifies the result of a single removal attempt.
type Outcome string

const (
	// OutcomeRemoved means the target existed and was removed.
	OutcomeRemoved Outcome = "removed"

	// OutcomeWouldRemove means the run is a dry run and the target would
	// have been removed. No filesystem mutation occurred.
	OutcomeWouldRemove Outcome = "would-remove"

	// OutcomeSkippedMissing means the target did not exist. Not an error.
	OutcomeSkippedMissing Outcome = "skipped-missing"

	// OutcomeFailed means the target could not be removed.
	OutcomeFailed Outcome = "failed"
)

// Removal is the outcome of one deletion primitive call.
type Removal struct {
	Path    string
	Outcome Outcome

	// Cause carries the human-readable reason for OutcomeFailed.
	Cause error
}

// CommandResult is the outcome of one external process invocation.
type CommandResult struct {
	Argv []string
	Dir  string

	// ExitCode is the process exit status, or -1 if the process could not
	// be started.
	ExitCode int

	// NotRun reports the dry-run sentinel: nothing was executed.
	NotRun bool

	// Cause carries the reason the process could not be started.
	Cause error
}

// Failed reports whether the command ran and failed, or could not be started.
func (r CommandResult) Failed() bool {
	return !r.NotRun && r.ExitCode != 0
}

// String renders the command line and working directory for reporting.
func (r CommandResult) String() string {
	return strings.Join(r.Argv, " ") + " (cwd=" + r.Dir + ")"
}

// Summary accumulates removal and command outcomes across a run.
type Summary struct {
	Removed        int
	WouldRemove    int
	SkippedMissing int
	Failed         int
	CommandsFailed int
}

// Record tallies a removal outcome.
func (s *Summary) Record(r Removal) {
	switch r.Outcome {
	case OutcomeRemoved:
		s.Removed++
	case OutcomeWouldRemove:
		s.WouldRemove++
	case OutcomeSkippedMissing:
		s.SkippedMissing++
	case OutcomeFailed:
		s.Failed++
	}
}

// Mutated reports whether any filesystem entry was actually removed.
func (s *Summary) Mutated() bool {
	return s.Removed > 0
}
