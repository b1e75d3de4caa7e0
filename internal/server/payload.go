package server

import (
	"strings"
	"time"
)

// webhookPayload covers the transcript shapes the wearable sends: a flat
// transcript string, segmented transcript fragments, or a structured
// overview fallback.
type webhookPayload struct {
	Transcript         string              `json:"transcript"`
	TranscriptSegments []transcriptSegment `json:"transcript_segments"`
	Structured         *structuredSummary  `json:"structured"`
	CreatedAt          string              `json:"created_at"`
	Timestamp          string              `json:"timestamp"`
}

type transcriptSegment struct {
	Text string `json:"text"`
}

type structuredSummary struct {
	Overview string `json:"overview"`
}

// extractTranscript locates transcript text across the supported payload
// shapes. An unextractable transcript yields the empty string, which the
// core classifies as no action.
func (p webhookPayload) extractTranscript() string {
	if strings.TrimSpace(p.Transcript) != "" {
		return p.Transcript
	}

	if len(p.TranscriptSegments) > 0 {
		parts := make([]string, 0, len(p.TranscriptSegments))
		for _, segment := range p.TranscriptSegments {
			text := strings.TrimSpace(segment.Text)
			if text == "" {
				continue
			}
			parts = append(parts, text)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}

	if p.Structured != nil {
		return p.Structured.Overview
	}

	return ""
}

// extractTimestamp prefers the event's own timestamps and defaults to the
// current time when the payload carries none.
func (p webhookPayload) extractTimestamp(now func() time.Time) string {
	if strings.TrimSpace(p.CreatedAt) != "" {
		return p.CreatedAt
	}
	if strings.TrimSpace(p.Timestamp) != "" {
		return p.Timestamp
	}
	return now().Format(time.RFC3339)
}
