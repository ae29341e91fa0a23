// Package coach asks a text-generation provider for habit ideas and short
// guides. Suggestions never fail: any provider or parse error degrades to a
// fixed list. Guides report failure with ErrGuideUnavailable so the caller
// can offer a retry.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rnwolfe/zenith/internal/ai"
	"github.com/rnwolfe/zenith/internal/habit"
	"go.uber.org/zap"
)

// Suggestion is a habit idea returned by the provider.
type Suggestion struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Suggester produces habit suggestions.
type Suggester interface {
	Suggestions(ctx context.Context) []Suggestion
}

// GuideWriter produces a markdown guide for a topic.
type GuideWriter interface {
	Guide(ctx context.Context, topic string) (string, error)
}

// ErrGuideUnavailable wraps every guide failure.
var ErrGuideUnavailable = errors.New("guide unavailable")

const suggestPrompt = "Suggest 5 creative and achievable daily habits for improving overall well-being. " +
	"For each habit, provide a name, a category (e.g., 'Mindfulness', 'Health', 'Productivity'), " +
	"and a brief, motivating description."

var suggestionSchema = &ai.Schema{
	Type: ai.TypeArray,
	Items: &ai.Schema{
		Type: ai.TypeObject,
		Properties: map[string]*ai.Schema{
			"name":        {Type: ai.TypeString, Description: "The name of the habit."},
			"category":    {Type: ai.TypeString, Description: "The category of the habit, like 'Health', 'Mindfulness', or 'Productivity'."},
			"description": {Type: ai.TypeString, Description: "A short, motivating description of the habit."},
		},
		Required: []string{"name", "category", "description"},
	},
}

var fallback = []Suggestion{
	{Name: "10-minute walk", Category: "Health", Description: "A short walk to refresh your body and mind."},
	{Name: "Read one chapter", Category: "Productivity", Description: "Expand your knowledge by reading a chapter of a book."},
	{Name: "Journal one line", Category: "Mindfulness", Description: "Write down a single thought or gratitude for the day."},
}

// FallbackSuggestions returns the list used when the provider cannot answer.
func FallbackSuggestions() []Suggestion {
	return append([]Suggestion(nil), fallback...)
}

// Client implements Suggester and GuideWriter over an ai.Provider. A nil
// provider is allowed: suggestions fall back and guides are unavailable.
type Client struct {
	provider ai.Provider
	model    string
	log      *zap.Logger

	mu     sync.Mutex
	guides map[string]string
}

// New returns a Client. model may be empty to use the provider default.
func New(provider ai.Provider, model string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		provider: provider,
		model:    model,
		log:      log,
		guides:   make(map[string]string),
	}
}

// Suggestions asks for five habit ideas. On any failure it logs a warning
// and returns the fallback list. A well-formed reply that is not a JSON
// array yields an empty list.
func (c *Client) Suggestions(ctx context.Context) []Suggestion {
	if c.provider == nil {
		c.log.Warn("no suggestion provider configured, using fallback")
		return FallbackSuggestions()
	}

	req := ai.NewRequest(suggestPrompt)
	req.Model = c.model
	req.ResponseMIMEType = ai.MIMEJSON
	req.ResponseSchema = suggestionSchema

	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		c.log.Warn("fetching habit suggestions failed, using fallback", zap.Error(err))
		return FallbackSuggestions()
	}

	out, err := parseSuggestions(resp.Content)
	if err != nil {
		c.log.Warn("parsing habit suggestions failed, using fallback", zap.Error(err))
		return FallbackSuggestions()
	}
	c.log.Debug("suggestions received", zap.Int("count", len(out)), zap.String("model", resp.Model))
	return out
}

func parseSuggestions(content string) ([]Suggestion, error) {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &v); err != nil {
		return nil, err
	}
	if _, ok := v.([]any); !ok {
		return []Suggestion{}, nil
	}
	var out []Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Suggestion{}
	}
	return out, nil
}

// Guide returns the markdown guide for topic, one of the keys in Topics.
// Successful guides are kept for the lifetime of the Client.
func (c *Client) Guide(ctx context.Context, topic string) (string, error) {
	t, ok := LookupTopic(topic)
	if !ok {
		return "", fmt.Errorf("unknown guide topic %q (available: %s)", topic, strings.Join(TopicKeys(), ", "))
	}

	c.mu.Lock()
	cached, ok := c.guides[t.Key]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	if c.provider == nil {
		return "", fmt.Errorf("%w: %s: %w", ErrGuideUnavailable, t.Title, ai.ErrNoKey)
	}

	req := ai.NewRequest(t.Prompt)
	req.Model = c.model
	resp, err := c.provider.Complete(ctx, req)
	if err != nil {
		c.log.Warn("fetching guide failed", zap.String("topic", t.Key), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", ErrGuideUnavailable, t.Title, err)
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", fmt.Errorf("%w: %s: empty response", ErrGuideUnavailable, t.Title)
	}

	c.mu.Lock()
	c.guides[t.Key] = content
	c.mu.Unlock()
	return content, nil
}

// RetryMessage is the user-facing text for a failed guide.
func RetryMessage(topic string) string {
	title := topic
	if t, ok := LookupTopic(topic); ok {
		title = t.Title
	}
	return fmt.Sprintf("Could not load the guide for %s. Please try again.", title)
}

// IconForCategory picks an icon for a suggestion category.
func IconForCategory(category string) habit.Icon {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "health"), strings.Contains(c, "fit"):
		return habit.IconFitness
	case strings.Contains(c, "mind"), strings.Contains(c, "meditat"):
		return habit.IconMindfulness
	case strings.Contains(c, "read"), strings.Contains(c, "learn"):
		return habit.IconBook
	case strings.Contains(c, "water"), strings.Contains(c, "drink"):
		return habit.IconWater
	default:
		return habit.IconDefault
	}
}
