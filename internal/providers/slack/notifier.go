package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"guardian/internal/domain"
)

// Config controls Slack incoming-webhook delivery.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

// Notifier posts Block Kit messages to a Slack incoming webhook.
// An empty webhook URL turns every send into a logged no-op.
type Notifier struct {
	cfg    Config
	client *http.Client
	log    zerolog.Logger
}

func NewNotifier(cfg Config, log zerolog.Logger) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

type message struct {
	Text   string  `json:"text"`
	Blocks []block `json:"blocks"`
}

type block struct {
	Type   string `json:"type"`
	Text   *text  `json:"text,omitempty"`
	Fields []text `json:"fields,omitempty"`
}

type text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// FocusModeActivated announces the start of a protected work block. The
// 90-minute mention is a fixed statement, not a measured duration.
func (n *Notifier) FocusModeActivated(ctx context.Context) error {
	return n.post(ctx, message{
		Text: "🔴 Focus Mode Activated",
		Blocks: []block{
			{
				Type: "section",
				Text: &text{
					Type: "mrkdwn",
					Text: "*Focus Mode Active* 🎯\n\nYou are in deep work mode for the next 90 minutes.\nPlease hold non-urgent messages.",
				},
			},
		},
	})
}

// DailyReport renders the report as a header, stat fields and the tip.
func (n *Notifier) DailyReport(ctx context.Context, report domain.DailyReport) error {
	return n.post(ctx, message{
		Text: "📊 Daily Focus Report",
		Blocks: []block{
			{
				Type: "header",
				Text: &text{Type: "plain_text", Text: "📊 Your Daily Focus Report"},
			},
			{
				Type: "section",
				Fields: []text{
					{Type: "mrkdwn", Text: fmt.Sprintf("*Total Interruptions:*\n%d", report.TotalInterruptions)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Time Lost:*\n%.1f hours", report.HoursLost)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Focus Score:*\n%.1f/10", report.FocusScore)},
					{Type: "mrkdwn", Text: "*By Type:*\n" + formatByType(report.InterruptionsByType)},
				},
			},
			{
				Type: "section",
				Text: &text{Type: "mrkdwn", Text: "💡 *Tip:* " + report.Tip},
			},
		},
	})
}

// formatByType renders per-type bullet lines in fixed category order, or a
// literal "None" line when the day had no interruptions.
func formatByType(byType map[domain.InterruptionType]int) string {
	order := []domain.InterruptionType{
		domain.InterruptionCasualChat,
		domain.InterruptionWorkRequest,
		domain.InterruptionMeeting,
		domain.InterruptionUrgent,
	}

	lines := make([]string, 0, len(byType))
	for _, kind := range order {
		if count, ok := byType[kind]; ok {
			lines = append(lines, fmt.Sprintf("• %s: %d", kind, count))
		}
	}
	if len(lines) == 0 {
		return "• None"
	}
	return strings.Join(lines, "\n")
}

func (n *Notifier) post(ctx context.Context, msg message) error {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		n.log.Debug().Str("message", msg.Text).Msg("slack webhook not configured, skipping notification")
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("slack returned status %d", resp.StatusCode)
	}

	n.log.Debug().Str("message", msg.Text).Msg("slack notification sent")
	return nil
}
