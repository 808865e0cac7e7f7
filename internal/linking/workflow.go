package linking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"galerija/internal/content"
	"galerija/internal/gallery"
	"galerija/internal/links"
	"galerija/internal/logging"
	"galerija/internal/matcher"
)

// DefaultSaveEvery is the number of new links between periodic saves.
const DefaultSaveEvery = 5

// Options tunes a Workflow. Zero values select defaults.
type Options struct {
	TopN      int
	SaveEvery int
	// Operator is recorded as confirmedBy on every new link when set.
	Operator string
	Matcher  matcher.Matcher
	Logger   *slog.Logger
	Now      func() time.Time
}

// Summary counts what a session did.
type Summary struct {
	Total         int  `json:"total"`
	AlreadyLinked int  `json:"alreadyLinked"`
	Linked        int  `json:"linked"`
	Skipped       int  `json:"skipped"`
	NoMatches     int  `json:"noMatches"`
	Failed        int  `json:"failed"`
	Stopped       bool `json:"stopped"`
	// LinkCount is the size of the link document after the session.
	LinkCount int `json:"linkCount"`
}

// Workflow links content records to gallery events.
type Workflow struct {
	store   *links.Store
	index   *gallery.Index
	decider Decider
	opts    Options
	logger  *slog.Logger
}

// NewWorkflow constructs a workflow persisting through store.
func NewWorkflow(store *links.Store, index *gallery.Index, decider Decider, opts Options) *Workflow {
	if opts.TopN <= 0 {
		opts.TopN = matcher.DefaultTopN
	}
	if opts.SaveEvery <= 0 {
		opts.SaveEvery = DefaultSaveEvery
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Workflow{
		store:   store,
		index:   index,
		decider: decider,
		opts:    opts,
		logger:  logging.NewComponentLogger(opts.Logger, "linking"),
	}
}

// Run processes records in order. It holds the store's session lock for the
// whole run. Accumulated links are saved before Run returns, whether the
// session completed, was quit or was cancelled.
func (w *Workflow) Run(ctx context.Context, records []content.Record) (Summary, error) {
	summary := Summary{Total: len(records)}

	if err := w.store.Lock(); err != nil {
		return summary, err
	}
	defer func() {
		if err := w.store.Unlock(); err != nil {
			logging.WarnWithContext(w.logger, "failed to release link lock", "link_unlock_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "remove the stale .lock file if no other session runs"))
		}
	}()

	data, err := w.store.Load()
	if err != nil {
		return summary, fmt.Errorf("load links: %w", err)
	}

	pending := 0
	for _, record := range records {
		if !data.Has(record.Type, record.ID) {
			pending++
		}
	}

	w.logger.Info("linking session started",
		logging.Int("record_count", len(records)),
		logging.Int("pending_count", pending),
		logging.Int("event_count", w.index.Len()),
		logging.Int("link_count", len(data.Links)))

	runErr := w.process(ctx, records, data, pending, &summary)

	if err := w.store.Save(data); err != nil {
		logging.ErrorWithContext(w.logger, "final link save failed", "link_save_failed",
			logging.Error(err),
			logging.String(logging.FieldPath, w.store.Path()),
			logging.String(logging.FieldErrorHint, "links decided in this session were not persisted"))
		runErr = errors.Join(runErr, fmt.Errorf("save links: %w", err))
	}
	summary.LinkCount = len(data.Links)

	w.logger.Info("linking session finished",
		logging.Int("linked", summary.Linked),
		logging.Int("skipped", summary.Skipped),
		logging.Int("no_matches", summary.NoMatches),
		logging.Int("failed", summary.Failed),
		logging.Int("already_linked", summary.AlreadyLinked),
		logging.Bool("stopped", summary.Stopped))
	return summary, runErr
}

func (w *Workflow) process(ctx context.Context, records []content.Record, data *links.Data, pending int, summary *Summary) error {
	position := 0
	unsaved := 0
	for _, record := range records {
		if data.Has(record.Type, record.ID) {
			summary.AlreadyLinked++
			w.report(ctx, Report{Record: record, Outcome: OutcomeAlreadyLinked})
			continue
		}
		if err := ctx.Err(); err != nil {
			summary.Stopped = true
			return err
		}

		position++
		candidates := w.opts.Matcher.TopMatches(record.Title, record.Date, w.index.Events(), w.opts.TopN)
		if len(candidates) == 0 {
			summary.NoMatches++
			w.logger.Debug("no gallery candidates", logging.Args(recordAttrs(record)...)...)
			w.report(ctx, Report{Record: record, Outcome: OutcomeNoMatches})
			continue
		}

		decision, err := w.decider.Decide(ctx, Request{
			Record:     record,
			Candidates: candidates,
			Position:   position,
			Pending:    pending,
		})
		if err != nil {
			summary.Stopped = true
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return fmt.Errorf("decide %s/%s: %w", record.Type, record.ID, err)
		}

		var (
			event      gallery.Event
			matchType  links.MatchType
			confidence float64
		)
		switch decision.Action {
		case ActionQuit:
			summary.Stopped = true
			w.logger.Info("linking session stopped by operator", logging.Int("position", position))
			return nil
		case ActionSkip:
			summary.Skipped++
			w.logDecision(record, "skip", "skipped", "no acceptable candidate")
			w.report(ctx, Report{Record: record, Outcome: OutcomeSkipped})
			continue
		case ActionAccept:
			if decision.Candidate < 0 || decision.Candidate >= len(candidates) {
				summary.Failed++
				w.report(ctx, Report{Record: record, Outcome: OutcomeFailed,
					Err: fmt.Errorf("candidate %d out of range", decision.Candidate+1)})
				continue
			}
			chosen := candidates[decision.Candidate]
			event = chosen.Event
			matchType = links.MatchAuto
			confidence = chosen.Score / 100
		case ActionManual:
			found, ok := w.index.Lookup(decision.EventID)
			if !ok {
				summary.Failed++
				err := fmt.Errorf("%w: %q", ErrUnknownEvent, decision.EventID)
				logging.WarnWithContext(w.logger, "manual link target not found", "manual_link_unknown_event",
					append(recordAttrs(record),
						logging.String(logging.FieldEventID, decision.EventID),
						logging.String(logging.FieldErrorHint, "use an id listed by 'galerija gallery --events'"),
						logging.String(logging.FieldImpact, "record left unlinked"))...)
				w.report(ctx, Report{Record: record, Outcome: OutcomeFailed, Err: err})
				continue
			}
			event = found
			matchType = links.MatchManual
			confidence = 1.0
		default:
			return fmt.Errorf("unknown decision action %d", decision.Action)
		}

		link := links.Link{
			ContentType:    record.Type,
			ContentID:      record.ID,
			GalleryEventID: event.ID,
			MatchType:      matchType,
			Confidence:     confidence,
			ConfirmedBy:    w.opts.Operator,
			ConfirmedAt:    w.opts.Now().UTC(),
		}
		data.Add(link)
		summary.Linked++
		w.logDecision(record, decision.Action.String(), "linked", event.ID,
			logging.String(logging.FieldEventID, event.ID),
			logging.Float64("confidence", confidence))
		w.report(ctx, Report{Record: record, Outcome: OutcomeLinked, Link: &link, Event: &event})

		unsaved++
		if unsaved >= w.opts.SaveEvery {
			if err := w.store.Save(data); err != nil {
				return fmt.Errorf("save links: %w", err)
			}
			unsaved = 0
			w.logger.Info("links saved", logging.Int("linked", summary.Linked))
		}
	}
	return nil
}

func (w *Workflow) report(ctx context.Context, report Report) {
	if reporter, ok := w.decider.(Reporter); ok {
		reporter.Report(ctx, report)
	}
}

func (w *Workflow) logDecision(record content.Record, decisionType, result, reason string, extra ...logging.Attr) {
	attrs := append(recordAttrs(record), logging.DecisionAttrs(decisionType, result, reason)...)
	attrs = append(attrs, extra...)
	w.logger.Info("link decision", logging.Args(attrs...)...)
}

func recordAttrs(record content.Record) []logging.Attr {
	return []logging.Attr{
		logging.String(logging.FieldContentType, string(record.Type)),
		logging.String(logging.FieldContentID, record.ID),
	}
}
