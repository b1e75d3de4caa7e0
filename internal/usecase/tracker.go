package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"guardian/internal/domain"
	"guardian/internal/ports"
)

// Outcomes reported back to the webhook caller.
const (
	OutcomeFocusModeActivated = "focus_mode_activated"
	OutcomeNoAction           = "no_action_needed"

	outcomeInterruptionPrefix = "interruption_"
)

const notifyTimeout = 10 * time.Second

// Tracker owns the interruption log and focus state and orchestrates
// classification, state mutation and notification for inbound transcripts.
// A single mutex guards both the log and the focus state.
type Tracker struct {
	classifier ports.Classifier
	notifier   ports.Notifier
	log        zerolog.Logger
	now        func() time.Time

	mu            sync.Mutex
	interruptions []domain.InterruptionRecord
	focus         domain.FocusState
}

func NewTracker(classifier ports.Classifier, notifier ports.Notifier, log zerolog.Logger) *Tracker {
	return &Tracker{
		classifier: classifier,
		notifier:   notifier,
		log:        log,
		now:        time.Now,
	}
}

// Process classifies one transcript and applies the resulting transition.
// The focus-mode notification is dispatched after the state change commits
// and never affects the returned outcome.
func (t *Tracker) Process(transcript string, timestamp string) string {
	result := t.classifier.Classify(transcript)

	switch result.Kind {
	case domain.ClassificationFocusMode:
		t.activateFocusMode()
		t.log.Info().Msg("focus mode activated")
		t.dispatch(func(ctx context.Context) error {
			return t.notifier.FocusModeActivated(ctx)
		})
		return OutcomeFocusModeActivated

	case domain.ClassificationInterruption:
		total := t.appendInterruption(transcript, timestamp, result.Type)
		t.log.Info().
			Str("type", string(result.Type)).
			Int("total", total).
			Msg("interruption recorded")
		return outcomeInterruptionPrefix + string(result.Type)

	default:
		return OutcomeNoAction
	}
}

// Status reports today's interruption count and the focus-mode flag.
func (t *Tracker) Status() domain.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.Status{
		InterruptionsToday: len(t.interruptions),
		FocusModeActive:    t.focus.Active,
	}
}

// DailyReport computes the report over all recorded interruptions and sends
// it to the notifier as a side effect of the query.
func (t *Tracker) DailyReport() domain.DailyReport {
	report := generateDailyReport(t.snapshot())
	t.dispatch(func(ctx context.Context) error {
		return t.notifier.DailyReport(ctx, report)
	})
	return report
}

// activateFocusMode sets the focus flag and stamps the start time.
// Re-activation while already active simply overwrites the start time.
func (t *Tracker) activateFocusMode() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focus.Active = true
	t.focus.StartTime = t.now().Format(time.RFC3339)
}

func (t *Tracker) appendInterruption(transcript string, timestamp string, kind domain.InterruptionType) int {
	record := domain.InterruptionRecord{
		ID:              uuid.NewString(),
		Transcript:      transcript,
		Timestamp:       timestamp,
		Type:            kind,
		TimeLostMinutes: domain.TimeLostMinutes,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.interruptions = append(t.interruptions, record)
	return len(t.interruptions)
}

// snapshot copies the log under the lock so report generation observes a
// consistent prefix of completed appends.
func (t *Tracker) snapshot() []domain.InterruptionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.InterruptionRecord(nil), t.interruptions...)
}

// dispatch runs a notifier call in the background. Delivery is best effort:
// failures are logged and never unwind the state change that preceded them.
func (t *Tracker) dispatch(send func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			t.log.Error().Err(err).Msg("notification delivery failed")
		}
	}()
}
