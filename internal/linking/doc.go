// Package linking drives the session that attaches content records to
// gallery events.
//
// A Workflow walks the records, ranks candidate events with the matcher and
// delegates every choice to a Decider. ThresholdDecider accepts strong
// matches unattended; PromptDecider asks an operator at a terminal. Accepted
// links are persisted periodically and always once more when the session
// ends, including on quit and cancellation.
package linking
