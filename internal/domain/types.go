package domain

// InterruptionType categorizes a detected interruption.
type InterruptionType string

const (
	InterruptionCasualChat  InterruptionType = "casual_chat"
	InterruptionWorkRequest InterruptionType = "work_request"
	InterruptionMeeting     InterruptionType = "meeting"
	InterruptionUrgent      InterruptionType = "urgent"
)

// TimeLostMinutes is the fixed cost charged per interruption: roughly how
// long it takes to regain focus after a context switch.
const TimeLostMinutes = 23

// ClassificationKind identifies the outcome of matching a transcript.
type ClassificationKind string

const (
	ClassificationFocusMode    ClassificationKind = "focus_mode"
	ClassificationInterruption ClassificationKind = "interruption"
	ClassificationNone         ClassificationKind = "no_action"
)

// Classification is the result of evaluating one transcript.
type Classification struct {
	Kind ClassificationKind
	// Type is set only when Kind is ClassificationInterruption.
	Type InterruptionType
}

// InterruptionRecord is one logged interruption. Immutable after creation.
type InterruptionRecord struct {
	ID              string           `json:"id"`
	Transcript      string           `json:"transcript"`
	Timestamp       string           `json:"timestamp"`
	Type            InterruptionType `json:"type"`
	TimeLostMinutes int              `json:"time_lost_minutes"`
}

// FocusState tracks whether focus mode is active and since when.
type FocusState struct {
	Active    bool   `json:"focus_mode_active"`
	StartTime string `json:"focus_start_time,omitempty"`
}

// DailyReport is derived fresh from the interruption log on each request.
// Types with zero occurrences are omitted from InterruptionsByType.
type DailyReport struct {
	TotalInterruptions  int                      `json:"total_interruptions"`
	HoursLost           float64                  `json:"hours_lost"`
	FocusScore          float64                  `json:"focus_score"`
	InterruptionsByType map[InterruptionType]int `json:"interruptions_by_type"`
	Tip                 string                   `json:"tip"`
}

// Status summarizes the current runtime status.
type Status struct {
	InterruptionsToday int  `json:"interruptions_today"`
	FocusModeActive    bool `json:"focus_mode_active"`
}
