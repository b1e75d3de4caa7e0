package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"guardian/internal/domain"
)

// category pairs an interruption type with its keyword set. Categories are
// evaluated in declaration order; the first with any hit wins regardless of
// keyword position in the transcript.
type category struct {
	kind     domain.InterruptionType
	keywords []string
}

// Classifier performs case-insensitive substring matching of transcripts
// against focus triggers and an ordered list of interruption categories.
type Classifier struct {
	focusTriggers []string
	categories    []category
}

// NewClassifier builds a classifier with the default keyword sets, extended
// by an optional keywords file. A missing or empty path yields the defaults.
func NewClassifier(path string) (*Classifier, error) {
	c := &Classifier{
		focusTriggers: defaultFocusTriggers(),
		categories:    defaultCategories(),
	}

	if strings.TrimSpace(path) == "" {
		return c, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read keywords file %q: %w", path, err)
	}

	if err := c.extend(string(contents)); err != nil {
		return nil, fmt.Errorf("failed to parse keywords file %q: %w", path, err)
	}

	return c, nil
}

// Classify evaluates one transcript. Focus triggers are checked before
// interruption categories, so a transcript matching both is classified as a
// focus-mode activation only.
func (c *Classifier) Classify(transcript string) domain.Classification {
	text := strings.ToLower(transcript)
	if strings.TrimSpace(text) == "" {
		return domain.Classification{Kind: domain.ClassificationNone}
	}

	for _, trigger := range c.focusTriggers {
		if strings.Contains(text, trigger) {
			return domain.Classification{Kind: domain.ClassificationFocusMode}
		}
	}

	for _, cat := range c.categories {
		for _, keyword := range cat.keywords {
			if strings.Contains(text, keyword) {
				return domain.Classification{
					Kind: domain.ClassificationInterruption,
					Type: cat.kind,
				}
			}
		}
	}

	return domain.Classification{Kind: domain.ClassificationNone}
}

// focusCategory is the file-format name for the focus trigger set.
const focusCategory = "focus"

// extend appends keywords from "category => keyword" lines. The category set
// is closed: lines may only add keywords to focus or an existing type.
func (c *Classifier) extend(contents string) error {
	for index, raw := range strings.Split(contents, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=>", 2)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: expected 'category => keyword'", index+1)
		}
		name := strings.TrimSpace(parts[0])
		keyword := strings.ToLower(strings.TrimSpace(parts[1]))
		if keyword == "" {
			return fmt.Errorf("line %d: keyword cannot be empty", index+1)
		}

		if name == focusCategory {
			c.focusTriggers = append(c.focusTriggers, keyword)
			continue
		}

		matched := false
		for i := range c.categories {
			if string(c.categories[i].kind) == name {
				c.categories[i].keywords = append(c.categories[i].keywords, keyword)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("line %d: unknown category %q", index+1, name)
		}
	}

	return nil
}

func defaultFocusTriggers() []string {
	return []string{
		"focus mode",
		"entering focus mode",
		"deep work",
		"do not disturb",
		"dnd",
	}
}

func defaultCategories() []category {
	return []category{
		{kind: domain.InterruptionCasualChat, keywords: []string{"lunch", "coffee", "how are you", "hey", "what's up"}},
		{kind: domain.InterruptionWorkRequest, keywords: []string{"can you", "quick question", "need help", "could you"}},
		{kind: domain.InterruptionMeeting, keywords: []string{"meeting", "call", "zoom", "schedule", "calendar"}},
		{kind: domain.InterruptionUrgent, keywords: []string{"urgent", "asap", "emergency", "now", "immediately"}},
	}
}
