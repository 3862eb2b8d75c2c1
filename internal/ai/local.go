package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/smarttask/internal/model"
)

const defaultLocalTimeout = 30 * time.Second

// LocalOutcome classifies a local model call.
type LocalOutcome int

const (
	// LocalOK means Text passed sanitizing and the quality gate.
	LocalOK LocalOutcome = iota
	// LocalEmpty means the endpoint answered but nothing was left after
	// sanitizing.
	LocalEmpty
	// LocalRejected means the sanitized text failed the quality gate.
	LocalRejected
	// LocalUnavailable means the request failed: network error, non-2xx
	// status or an undecodable body.
	LocalUnavailable
)

func (o LocalOutcome) String() string {
	switch o {
	case LocalOK:
		return "ok"
	case LocalEmpty:
		return "empty"
	case LocalRejected:
		return "rejected"
	case LocalUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("LocalOutcome(%d)", int(o))
	}
}

// LocalResult is the outcome of one local model call. Text is only set
// when Outcome is LocalOK; Err is only set when Outcome is
// LocalUnavailable.
type LocalResult struct {
	Text    string
	Outcome LocalOutcome
	Err     error
}

// OK reports whether the result can be returned to the caller as is.
func (r LocalResult) OK() bool {
	return r.Outcome == LocalOK
}

// LocalClient calls a local inference endpoint that accepts
// {"prompt": "..."} and answers with one or more suggestion fields.
type LocalClient struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewLocalClient creates a client for cfg.LocalURL with cfg.LocalTimeout
// applied to every request.
func NewLocalClient(cfg model.AIConfig, logger *zap.Logger) *LocalClient {
	timeout := cfg.LocalTimeout
	if timeout <= 0 {
		timeout = defaultLocalTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalClient{
		url:        cfg.LocalURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type localRequest struct {
	Prompt string `json:"prompt"`
}

type localResponse struct {
	Suggestions []any `json:"suggestions"`
	Suggestion  any   `json:"suggestion"`
	Reply       any   `json:"reply"`
	Message     any   `json:"message"`
}

// Suggest sends prompt to the local endpoint. It never returns an error:
// failures are reported through the result's Outcome so the caller can
// fall back.
func (c *LocalClient) Suggest(ctx context.Context, prompt string) LocalResult {
	raw, err := c.call(ctx, prompt)
	if err != nil {
		c.logger.Warn("local model call failed", zap.String("url", c.url), zap.Error(err))
		return LocalResult{Outcome: LocalUnavailable, Err: err}
	}

	return judgeLocal(selectSuggestion(raw))
}

func (c *LocalClient) call(ctx context.Context, prompt string) (*localResponse, error) {
	body, err := json.Marshal(localRequest{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling local model: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("local model error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result localResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// selectSuggestion picks one suggestion from the response. A non-empty
// suggestions list wins: its first non-blank string member, else its first
// member if that is a string. Otherwise the singular fields are tried in
// the order suggestion, reply, message.
func selectSuggestion(r *localResponse) string {
	if len(r.Suggestions) > 0 {
		for _, s := range r.Suggestions {
			if str, ok := s.(string); ok && strings.TrimSpace(str) != "" {
				return str
			}
		}
		first, _ := r.Suggestions[0].(string)
		return first
	}

	for _, field := range []any{r.Suggestion, r.Reply, r.Message} {
		if str, ok := field.(string); ok && str != "" {
			return str
		}
	}
	return ""
}

func judgeLocal(text string) LocalResult {
	cleaned := Sanitize(text)
	switch {
	case cleaned == "":
		return LocalResult{Outcome: LocalEmpty}
	case IsBadResponse(cleaned):
		return LocalResult{Outcome: LocalRejected}
	default:
		return LocalResult{Text: cleaned, Outcome: LocalOK}
	}
}
