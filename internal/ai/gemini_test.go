package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func textResponse(text string) geminiResponse {
	var c geminiCandidate
	c.Content.Parts = []geminiPart{{Text: text}}
	return geminiResponse{Candidates: []geminiCandidate{c}}
}

func newTestGemini(serverURL string) *GeminiProvider {
	return &GeminiProvider{
		apiKey:       "test-key",
		defaultModel: GeminiDefaultModel,
		client:       newTestClient(serverURL),
	}
}

func TestGeminiProvider_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/models/"+GeminiDefaultModel+":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not sent as query parameter")
		}
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "zenith/") {
			t.Errorf("User-Agent = %q", ua)
		}
		resp := textResponse("Drink a glass of water.")
		resp.UsageMetadata = &geminiUsage{PromptTokenCount: 8, CandidatesTokenCount: 12, TotalTokenCount: 20}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	defer server.Close()

	resp, err := newTestGemini(server.URL).Complete(context.Background(), NewRequest("Hello"))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Content != "Drink a glass of water." {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.Model != GeminiDefaultModel {
		t.Errorf("Model = %q", resp.Model)
	}
	if resp.Usage.PromptTokens != 8 || resp.Usage.TotalTokens != 20 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
}

func TestGeminiProvider_Complete_SendsSchemaAndSystem(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got) //nolint:errcheck
		json.NewEncoder(w).Encode(textResponse("[]")) //nolint:errcheck
	}))
	defer server.Close()

	req := NewRequest("Suggest habits")
	req.System = "Be brief"
	req.ResponseMIMEType = MIMEJSON
	req.ResponseSchema = &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type:       TypeObject,
			Properties: map[string]*Schema{"name": {Type: TypeString}},
			Required:   []string{"name"},
		},
	}

	if _, err := newTestGemini(server.URL).Complete(context.Background(), req); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if _, ok := got["systemInstruction"]; !ok {
		t.Error("expected systemInstruction in request body")
	}
	gen, _ := got["generationConfig"].(map[string]any)
	if gen["responseMimeType"] != MIMEJSON {
		t.Errorf("responseMimeType = %v", gen["responseMimeType"])
	}
	schema, _ := gen["responseSchema"].(map[string]any)
	if schema["type"] != "ARRAY" {
		t.Errorf("responseSchema.type = %v", schema["type"])
	}
	items, _ := schema["items"].(map[string]any)
	if req, _ := items["required"].([]any); len(req) != 1 || req[0] != "name" {
		t.Errorf("responseSchema.items.required = %v", items["required"])
	}
}

func TestGeminiProvider_Complete_PlainRequestOmitsSchema(t *testing.T) {
	var raw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		json.NewEncoder(w).Encode(textResponse("# Guide")) //nolint:errcheck
	}))
	defer server.Close()

	if _, err := newTestGemini(server.URL).Complete(context.Background(), NewRequest("Explain")); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if strings.Contains(raw, "responseSchema") || strings.Contains(raw, "responseMimeType") {
		t.Errorf("plain request should not carry structured-output fields: %s", raw)
	}
}

func TestGeminiProvider_Complete_ModelOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-flash-lite") {
			t.Errorf("expected model override in path, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(geminiResponse{}) //nolint:errcheck
	}))
	defer server.Close()

	req := NewRequest("Hello")
	req.Model = "gemini-flash-lite"
	resp, err := newTestGemini(server.URL).Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Content != "" {
		t.Errorf("expected empty content for no candidates, got %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 0 {
		t.Errorf("expected zero usage without metadata, got %+v", resp.Usage)
	}
}

func TestGeminiProvider_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota"}}`)) //nolint:errcheck
	}))
	defer server.Close()

	_, err := newTestGemini(server.URL).Complete(context.Background(), NewRequest("Hello"))
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d", pe.Status)
	}
	if !strings.Contains(err.Error(), "quota") {
		t.Errorf("expected body in error, got %v", err)
	}
}

func TestGeminiProvider_Complete_TransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	p := newTestGemini(url)
	p.apiKey = "super-secret"
	_, err := p.Complete(context.Background(), NewRequest("Hello"))
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if strings.Contains(err.Error(), "super-secret") {
		t.Errorf("error leaks api key: %v", err)
	}
}

func TestGeminiProvider_Complete_ValidationError(t *testing.T) {
	p := &GeminiProvider{apiKey: "k", defaultModel: GeminiDefaultModel, client: &http.Client{}}
	_, err := p.Complete(context.Background(), &Request{Prompt: "Hello", MaxTokens: 100, Temperature: -0.5})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGeminiRegistration(t *testing.T) {
	if _, err := GetProvider("gemini", ""); !errors.Is(err, ErrNoKey) {
		t.Errorf("expected ErrNoKey for empty key, got %v", err)
	}
	p, err := GetProvider("gemini", "k")
	if err != nil {
		t.Fatalf("GetProvider: %v", err)
	}
	if p.Name() != "gemini" {
		t.Errorf("Name() = %q", p.Name())
	}
}
