package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rnwolfe/zenith/internal/ai"
	"github.com/rnwolfe/zenith/internal/habit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
	last  *ai.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, req *ai.Request) (*ai.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &ai.Response{Content: f.reply, Model: "fake-model"}, nil
}

var (
	_ Suggester   = (*Client)(nil)
	_ GuideWriter = (*Client)(nil)
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  []string
	}{
		{
			name:  "array reply",
			reply: `[{"name":"Stretch","category":"Health","description":"Loosen up."},{"name":"Breathe","category":"Mindfulness","description":"Slow down."}]`,
			want:  []string{"Stretch", "Breathe"},
		},
		{
			name:  "padded reply",
			reply: "\n  [{\"name\":\"Stretch\",\"category\":\"Health\",\"description\":\"x\"}]  \n",
			want:  []string{"Stretch"},
		},
		{name: "object reply", reply: `{"name":"Stretch"}`, want: []string{}},
		{name: "empty array", reply: `[]`, want: []string{}},
		{name: "malformed json", reply: `[{"name":`, want: []string{"10-minute walk", "Read one chapter", "Journal one line"}},
		{name: "provider error", err: errors.New("boom"), want: []string{"10-minute walk", "Read one chapter", "Journal one line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeProvider{reply: tt.reply, err: tt.err}, "", nil)
			got := c.Suggestions(context.Background())
			if got == nil {
				t.Fatal("Suggestions must never return nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d suggestions (%+v), want %d", len(got), got, len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("[%d] Name = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}
}

func TestSuggestions_RequestsStructuredJSON(t *testing.T) {
	p := &fakeProvider{reply: `[]`}
	New(p, "gemini-2.5-flash", nil).Suggestions(context.Background())

	if p.last == nil {
		t.Fatal("provider not called")
	}
	if p.last.ResponseMIMEType != ai.MIMEJSON {
		t.Errorf("ResponseMIMEType = %q", p.last.ResponseMIMEType)
	}
	if p.last.ResponseSchema == nil || p.last.ResponseSchema.Type != ai.TypeArray {
		t.Fatalf("expected array schema, got %+v", p.last.ResponseSchema)
	}
	if got := strings.Join(p.last.ResponseSchema.Items.Required, ","); got != "name,category,description" {
		t.Errorf("required = %s", got)
	}
	if p.last.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", p.last.Model)
	}
	if err := p.last.Validate(); err != nil {
		t.Errorf("request should validate: %v", err)
	}
}

func TestSuggestions_FallbackLogsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := New(&fakeProvider{err: &ai.ProviderError{Provider: "fake", Status: 500, Err: errors.New("down")}}, "", zap.New(core))

	got := c.Suggestions(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected fallback list, got %+v", got)
	}
	if logs.Len() != 1 {
		t.Errorf("expected one warning, got %d", logs.Len())
	}
}

func TestSuggestions_NoProvider(t *testing.T) {
	got := New(nil, "", nil).Suggestions(context.Background())
	if len(got) != 3 || got[0].Name != "10-minute walk" {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestFallbackSuggestionsIsACopy(t *testing.T) {
	a := FallbackSuggestions()
	a[0].Name = "changed"
	if FallbackSuggestions()[0].Name != "10-minute walk" {
		t.Fatal("fallback list must not be mutable through the returned slice")
	}
}

func TestGuide(t *testing.T) {
	p := &fakeProvider{reply: "  # Breathe\n\nSit down.  "}
	c := New(p, "", nil)

	got, err := c.Guide(context.Background(), "meditation")
	if err != nil {
		t.Fatalf("Guide: %v", err)
	}
	if got != "# Breathe\n\nSit down." {
		t.Errorf("Guide = %q", got)
	}
	if p.last.ResponseSchema != nil {
		t.Error("guides are free-form markdown")
	}

	if _, err := c.Guide(context.Background(), "meditation"); err != nil {
		t.Fatalf("second Guide: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("expected cached guide, provider called %d times", p.calls)
	}
}

func TestGuide_Failures(t *testing.T) {
	tests := []struct {
		name     string
		provider ai.Provider
	}{
		{"provider error", &fakeProvider{err: errors.New("timeout")}},
		{"empty reply", &fakeProvider{reply: "   "}},
		{"no provider", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.provider, "", nil).Guide(context.Background(), "exercise")
			if !errors.Is(err, ErrGuideUnavailable) {
				t.Fatalf("expected ErrGuideUnavailable, got %v", err)
			}
		})
	}
}

func TestGuide_FailureIsNotCached(t *testing.T) {
	p := &fakeProvider{err: errors.New("flaky")}
	c := New(p, "", nil)
	if _, err := c.Guide(context.Background(), "subconscious"); err == nil {
		t.Fatal("expected error")
	}
	p.err = nil
	p.reply = "ok"
	if got, err := c.Guide(context.Background(), "subconscious"); err != nil || got != "ok" {
		t.Fatalf("retry should reach the provider, got %q, %v", got, err)
	}
}

func TestGuide_UnknownTopic(t *testing.T) {
	p := &fakeProvider{reply: "x"}
	_, err := New(p, "", nil).Guide(context.Background(), "juggling")
	if err == nil || errors.Is(err, ErrGuideUnavailable) {
		t.Fatalf("unknown topic should be a usage error, got %v", err)
	}
	if p.calls != 0 {
		t.Error("provider should not be called for an unknown topic")
	}
}

func TestRetryMessage(t *testing.T) {
	if got := RetryMessage("meditation"); got != "Could not load the guide for How to Meditate. Please try again." {
		t.Errorf("RetryMessage = %q", got)
	}
}

func TestTopics(t *testing.T) {
	if got := strings.Join(TopicKeys(), ","); got != "meditation,subconscious,exercise" {
		t.Errorf("TopicKeys = %s", got)
	}
	if _, ok := LookupTopic("exercise"); !ok {
		t.Error("exercise topic missing")
	}
}

func TestIconForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     habit.Icon
	}{
		{"Health", habit.IconFitness},
		{"Fitness", habit.IconFitness},
		{"Mindfulness", habit.IconMindfulness},
		{"Meditation", habit.IconMindfulness},
		{"Reading", habit.IconBook},
		{"Learning", habit.IconBook},
		{"Hydration: drink more", habit.IconWater},
		{"Water", habit.IconWater},
		{"Productivity", habit.IconDefault},
		{"", habit.IconDefault},
	}
	for _, tt := range tests {
		if got := IconForCategory(tt.category); got != tt.want {
			t.Errorf("IconForCategory(%q) = %s, want %s", tt.category, got, tt.want)
		}
	}
}
