// Package genai is the client side of the external generative-text service:
// a Gemini HTTP client and the Fairy, which turns every failure into a fixed
// user-facing placeholder.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/glitterpage/internal/common"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Role tokens understood by the service.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is a single text part of a Record.
type Part struct {
	Text string `json:"text"`
}

// Record is one conversation turn in the service's wire shape.
type Record struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// TextRecord builds a Record with one text part.
func TextRecord(role, text string) Record {
	return Record{Role: role, Parts: []Part{{Text: text}}}
}

// Generator produces text for a system instruction and ordered contents.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, contents []Record) (string, error)
}

// GeminiClient calls the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient constructs a client. It returns common.ErrNoCredential
// when apiKey is blank. A zero timeout means requests are not cut short.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, common.ErrNoCredential
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      normalizeModel(model),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Generate returns the first candidate's text. An empty candidate list
// yields "" and no error.
func (c *GeminiClient) Generate(ctx context.Context, systemPrompt string, contents []Record) (string, error) {
	reqBody := generateRequest{Contents: contents}
	if strings.TrimSpace(systemPrompt) != "" {
		reqBody.SystemInstruction = &Record{Parts: []Part{{Text: systemPrompt}}}
	}

	var resp generateResponse
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	if err := c.doJSON(ctx, url, reqBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func normalizeModel(model string) string {
	model = strings.TrimSpace(model)
	return strings.TrimPrefix(model, "models/")
}

// doJSON sends the key in a header so it never ends up in a logged URL.
func (c *GeminiClient) doJSON(ctx context.Context, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return fmt.Errorf("gemini api error: %s", errResp.Error.Message)
		}
		return fmt.Errorf("gemini api error: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

type generateRequest struct {
	Contents          []Record `json:"contents"`
	SystemInstruction *Record  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content Record `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
