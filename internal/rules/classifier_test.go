package rules

import (
	"os"
	"path/filepath"
	"testing"

	"guardian/internal/domain"
)

func TestClassifyFocusTriggers(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier("")
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	transcripts := []string{
		"entering focus mode",
		"I need some deep work time",
		"Do Not Disturb please",
		"setting dnd",
		"FOCUS MODE",
	}

	for _, transcript := range transcripts {
		got := classifier.Classify(transcript)
		if got.Kind != domain.ClassificationFocusMode {
			t.Fatalf("expected focus mode for %q, got %+v", transcript, got)
		}
	}
}

func TestClassifyFocusTriggerWinsOverInterruptionKeywords(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier("")
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	transcripts := []string{
		"entering focus mode, cancel my meeting",
		"deep work now, this is urgent",
		"hey, I'm going into focus mode",
		"can you set dnd for me",
	}

	for _, transcript := range transcripts {
		got := classifier.Classify(transcript)
		if got.Kind != domain.ClassificationFocusMode {
			t.Fatalf("expected focus mode for %q, got %+v", transcript, got)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier("")
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	cases := []struct {
		transcript string
		want       domain.InterruptionType
	}{
		// casual_chat beats every later category
		{"hey, can you join the zoom call immediately", domain.InterruptionCasualChat},
		{"coffee before the meeting?", domain.InterruptionCasualChat},
		// work_request beats meeting and urgent
		{"can you schedule that for me asap", domain.InterruptionWorkRequest},
		{"quick question about the call", domain.InterruptionWorkRequest},
		// meeting beats urgent
		{"schedule it immediately", domain.InterruptionMeeting},
		{"the zoom starts now", domain.InterruptionMeeting},
		// single-category matches
		{"going to lunch", domain.InterruptionCasualChat},
		{"need help with the deploy", domain.InterruptionWorkRequest},
		{"check your calendar", domain.InterruptionMeeting},
		{"this is an emergency", domain.InterruptionUrgent},
	}

	for _, tc := range cases {
		got := classifier.Classify(tc.transcript)
		if got.Kind != domain.ClassificationInterruption || got.Type != tc.want {
			t.Fatalf("transcript %q: expected %s, got %+v", tc.transcript, tc.want, got)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier("")
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	got := classifier.Classify("THIS IS URGENT")
	if got.Kind != domain.ClassificationInterruption || got.Type != domain.InterruptionUrgent {
		t.Fatalf("expected urgent, got %+v", got)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier("")
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	transcripts := []string{
		"",
		"   \t ",
		"the weather is nice today",
	}

	for _, transcript := range transcripts {
		got := classifier.Classify(transcript)
		if got.Kind != domain.ClassificationNone {
			t.Fatalf("expected no action for %q, got %+v", transcript, got)
		}
	}
}

func TestNewClassifierMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	classifier, err := NewClassifier(filepath.Join(t.TempDir(), "does-not-exist.rules"))
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	got := classifier.Classify("join the meeting")
	if got.Type != domain.InterruptionMeeting {
		t.Fatalf("expected meeting, got %+v", got)
	}
}

func TestNewClassifierKeywordsFileExtendsCategories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keywords.rules")
	contents := `
# extra keywords
casual_chat => ping me
focus => Heads Down
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write keywords file: %v", err)
	}

	classifier, err := NewClassifier(path)
	if err != nil {
		t.Fatalf("failed to create classifier: %v", err)
	}

	got := classifier.Classify("someone wants to ping me")
	if got.Kind != domain.ClassificationInterruption || got.Type != domain.InterruptionCasualChat {
		t.Fatalf("expected casual_chat from extended keywords, got %+v", got)
	}

	got = classifier.Classify("going heads down")
	if got.Kind != domain.ClassificationFocusMode {
		t.Fatalf("expected focus mode from extended trigger, got %+v", got)
	}
}

func TestNewClassifierRejectsMalformedLine(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keywords.rules")
	if err := os.WriteFile(path, []byte("not a rule\n"), 0o600); err != nil {
		t.Fatalf("failed to write keywords file: %v", err)
	}

	if _, err := NewClassifier(path); err == nil {
		t.Fatalf("expected malformed line error")
	}
}

func TestNewClassifierRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keywords.rules")
	if err := os.WriteFile(path, []byte("gossip => water cooler\n"), 0o600); err != nil {
		t.Fatalf("failed to write keywords file: %v", err)
	}

	if _, err := NewClassifier(path); err == nil {
		t.Fatalf("expected unknown category error")
	}
}
