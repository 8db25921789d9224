package tracker

import "follower-tracker/feature/changelog"

// Outcome is the terminal state of one reconciliation run.
type Outcome string

const (
	// OutcomeFirstRun means no prior snapshot existed, so no diff was
	// computed and the changelog was left alone.
	OutcomeFirstRun Outcome = "first_run"
	// OutcomeNoChanges means yesterday's and today's sets were identical.
	OutcomeNoChanges Outcome = "no_changes"
	// OutcomeCreated means the changelog was created with its first entry.
	OutcomeCreated Outcome = "created"
	// OutcomeInserted means an entry was merged into the existing changelog.
	OutcomeInserted Outcome = "inserted"
	// OutcomeSkipped means today's date was already recorded.
	OutcomeSkipped Outcome = "skipped"
)

func fromResult(r changelog.Result) Outcome {
	switch r {
	case changelog.ResultCreated:
		return OutcomeCreated
	case changelog.ResultInserted:
		return OutcomeInserted
	default:
		return OutcomeSkipped
	}
}
