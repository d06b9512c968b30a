package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jmm-1987/segurymat/internal/llm"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) ExtractTask(ctx context.Context, input llm.ExtractionInput) (llm.TaskExtraction, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return llm.TaskExtraction{}, fmt.Errorf("%w: missing API key", llm.ErrUnavailable)
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return llm.TaskExtraction{}, fmt.Errorf("empty utterance")
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	payload := map[string]any{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": buildSystemPrompt(input.Categories, now)},
			{"role": "user", "content": buildUserPrompt(input.Categories, text)},
		},
		"temperature":     0.0,
		"response_format": map[string]string{"type": "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return llm.TaskExtraction{}, fmt.Errorf("marshal extraction request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return llm.TaskExtraction{}, err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(c.cfg.APIKey))
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return llm.TaskExtraction{}, err
	}
	defer res.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return llm.TaskExtraction{}, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error("extraction request failed", "status", res.StatusCode, "body", strings.TrimSpace(string(respBody)))
		return llm.TaskExtraction{}, fmt.Errorf("extraction request failed with status %d", res.StatusCode)
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return llm.TaskExtraction{}, fmt.Errorf("decode completion response: %w", err)
	}
	if len(response.Choices) == 0 {
		return llm.TaskExtraction{}, fmt.Errorf("completion response returned no choices")
	}

	content := stripJSONFences(response.Choices[0].Message.Content)
	var extraction llm.TaskExtraction
	if err := json.Unmarshal([]byte(content), &extraction); err != nil {
		return llm.TaskExtraction{}, fmt.Errorf("decode extraction payload: %w", err)
	}
	return extraction, nil
}

// stripJSONFences tolerates models that wrap the object in a markdown
// code fence despite response_format.
func stripJSONFences(input string) string {
	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
