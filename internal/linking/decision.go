package linking

import (
	"context"
	"errors"

	"galerija/internal/content"
	"galerija/internal/gallery"
	"galerija/internal/links"
	"galerija/internal/matcher"
)

// ErrUnknownEvent reports a manual choice naming an event that does not exist.
var ErrUnknownEvent = errors.New("gallery event not found")

// Action is what a decider chose to do with a record.
type Action int

const (
	ActionSkip Action = iota
	ActionAccept
	ActionManual
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionManual:
		return "manual"
	case ActionQuit:
		return "quit"
	default:
		return "skip"
	}
}

// Decision is a decider's answer for one record.
type Decision struct {
	Action Action
	// Candidate is the zero-based candidate index for ActionAccept.
	Candidate int
	// EventID is the gallery event for ActionManual.
	EventID string
}

// Accept selects candidate i.
func Accept(i int) Decision { return Decision{Action: ActionAccept, Candidate: i} }

// Manual links to an explicitly named event.
func Manual(eventID string) Decision { return Decision{Action: ActionManual, EventID: eventID} }

// Skip leaves the record unlinked.
func Skip() Decision { return Decision{Action: ActionSkip} }

// Quit ends the session after persisting what was linked so far.
func Quit() Decision { return Decision{Action: ActionQuit} }

// Request is what a decider sees for one unlinked record.
type Request struct {
	Record     content.Record
	Candidates []matcher.Result
	// Position is the 1-based index among records needing a decision.
	Position int
	// Pending is the number of records that were unlinked when the session began.
	Pending int
}

// Decider chooses what to do with a record that has candidates.
type Decider interface {
	Decide(ctx context.Context, req Request) (Decision, error)
}

// Outcome classifies how a record was handled.
type Outcome string

const (
	OutcomeLinked        Outcome = "linked"
	OutcomeAlreadyLinked Outcome = "already_linked"
	OutcomeSkipped       Outcome = "skipped"
	OutcomeNoMatches     Outcome = "no_matches"
	OutcomeFailed        Outcome = "failed"
)

// Report describes the outcome for one record.
type Report struct {
	Record  content.Record
	Outcome Outcome
	Link    *links.Link
	Event   *gallery.Event
	Err     error
}

// Reporter is implemented by deciders that want to observe outcomes.
type Reporter interface {
	Report(ctx context.Context, report Report)
}

// DefaultAutoThreshold is the score a top candidate needs for unattended linking.
const DefaultAutoThreshold = 70.0

// ThresholdDecider accepts the best candidate when it scores at least
// Threshold and skips the record otherwise.
type ThresholdDecider struct {
	Threshold float64
}

// Decide implements Decider.
func (d ThresholdDecider) Decide(ctx context.Context, req Request) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}
	threshold := d.Threshold
	if threshold <= 0 {
		threshold = DefaultAutoThreshold
	}
	if len(req.Candidates) > 0 && req.Candidates[0].Score >= threshold {
		return Accept(0), nil
	}
	return Skip(), nil
}
