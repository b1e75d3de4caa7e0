package ports

import (
	"context"

	"guardian/internal/domain"
)

// Classifier maps a transcript onto a focus/interruption outcome.
type Classifier interface {
	Classify(transcript string) domain.Classification
}

// Notifier delivers formatted messages out of process, best effort.
type Notifier interface {
	FocusModeActivated(ctx context.Context) error
	DailyReport(ctx context.Context, report domain.DailyReport) error
}
