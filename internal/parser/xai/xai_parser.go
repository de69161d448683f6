package xai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"expenso/internal/config"
	"expenso/internal/domain"
	"expenso/internal/parser"
	"expenso/internal/port"
)

var _ port.RemoteParser = (*Parser)(nil)

const (
	defaultBaseURL = "https://api.x.ai/v1"
	defaultModel   = "grok-3-mini-fast"
	defaultTimeout = 30 * time.Second
)

// Parser implements port.RemoteParser using the xAI Chat Completions API.
type Parser struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	now      func() time.Time
}

// NewParser creates a Grok-backed remote parser from config.
func NewParser(cfg *config.ParserConfig) *Parser {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return newParser(cfg, strings.TrimRight(baseURL, "/")+"/chat/completions")
}

// NewParserWithEndpoint creates a parser pointing at a custom API endpoint (for testing).
func NewParserWithEndpoint(cfg *config.ParserConfig, endpoint string) *Parser {
	return newParser(cfg, endpoint)
}

func newParser(cfg *config.ParserConfig, endpoint string) *Parser {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Parser{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

// Parse sends one chat-completion request with the constrained expense
// prompt and coerces the response into a valid ExpenseRecord. Transport
// failures and schema violations come back as typed, recoverable errors;
// there are no retries; a failed call is failed.
func (p *Parser) Parse(ctx context.Context, text string) (*domain.ExpenseRecord, error) {
	now := p.now()
	prompt := parser.BuildExpensePrompt(text, now)

	reqBody := map[string]interface{}{
		"model":       p.model,
		"temperature": 0,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, parser.NewTransportError(fmt.Errorf("calling xai API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, parser.NewTransportError(fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parser.NewTransportError(
			fmt.Errorf("xai API error (status %d): %s", resp.StatusCode, string(respBody)))
	}

	return parseResponse(respBody, now)
}

// apiResponse models the Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

func parseResponse(body []byte, now time.Time) (*domain.ExpenseRecord, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, parser.NewSchemaError(fmt.Errorf("unmarshaling response: %w", err), string(body))
	}

	if len(resp.Choices) == 0 {
		return nil, parser.NewSchemaError(fmt.Errorf("empty response from API: no choices"), string(body))
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if m := codeFenceRe.FindStringSubmatch(content); m != nil {
		content = strings.TrimSpace(m[1])
	}

	var rec domain.ExpenseRecord
	if err := json.Unmarshal([]byte(content), &rec); err != nil {
		return nil, parser.NewSchemaError(fmt.Errorf("parsing LLM JSON output: %w", err), content)
	}

	rec = rec.Coerce(now)
	if err := rec.Validate(); err != nil {
		return nil, parser.NewSchemaError(fmt.Errorf("validating record: %w", err), content)
	}
	return &rec, nil
}
