package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/rnwolfe/zenith/internal/version"
)

const (
	geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// GeminiDefaultModel is used when neither the request nor the config
	// names a model.
	GeminiDefaultModel = "gemini-2.5-flash"
)

// GeminiProvider talks to the Gemini generateContent endpoint.
type GeminiProvider struct {
	apiKey       string
	defaultModel string
	client       *http.Client
}

func init() {
	Register(DefaultProvider, "GEMINI_API_KEY", func(apiKey string) (Provider, error) {
		if apiKey == "" {
			return nil, fmt.Errorf("gemini: %w", ErrNoKey)
		}
		return &GeminiProvider{
			apiKey:       apiKey,
			defaultModel: GeminiDefaultModel,
			client:       &http.Client{Timeout: 60 * time.Second},
		}, nil
	})
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = g.defaultModel
	}

	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      req.Temperature,
			MaxOutputTokens:  req.MaxTokens,
			ResponseMIMEType: req.ResponseMIMEType,
			ResponseSchema:   req.ResponseSchema,
		},
	}
	if req.System != "" {
		apiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.System}},
		}
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, err
	}

	// The Gemini API only accepts the key as a query parameter. Keys are
	// kept encrypted at rest and only sent over HTTPS.
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		geminiAPIBaseURL, model, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())

	resp, err := g.client.Do(httpReq)
	if err != nil {
		// Drop the *url.Error wrapper so the key in the URL never reaches logs.
		cause := err
		var ue *neturl.Error
		if errors.As(err, &ue) {
			cause = ue.Err
		}
		return nil, &ProviderError{Provider: g.Name(), Err: cause}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &ProviderError{
			Provider: g.Name(),
			Status:   resp.StatusCode,
			Err:      errors.New(string(bytes.TrimSpace(msg))),
		}
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &ProviderError{Provider: g.Name(), Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	content := ""
	if len(apiResp.Candidates) > 0 && len(apiResp.Candidates[0].Content.Parts) > 0 {
		content = apiResp.Candidates[0].Content.Parts[0].Text
	}

	usage := Usage{}
	if apiResp.UsageMetadata != nil {
		usage.PromptTokens = apiResp.UsageMetadata.PromptTokenCount
		usage.CompletionTokens = apiResp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = apiResp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Content: content,
		Model:   model,
		Usage:   usage,
	}, nil
}

// Gemini API types
type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

type geminiCandidate struct {
	Content struct {
		Parts []geminiPart `json:"parts"`
	} `json:"content"`
}

type geminiUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata *geminiUsage      `json:"usageMetadata,omitempty"`
}
