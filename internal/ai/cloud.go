package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/nhle/smarttask/internal/model"
)

const (
	defaultCloudModel   = "gemini-2.5-flash"
	defaultCloudTimeout = 60 * time.Second

	// noResponseText is returned when the cloud answer has no candidate
	// text.
	noResponseText = "AI could not generate a response."
)

// cloudPreamble is sent as the system instruction of every cloud request.
const cloudPreamble = "You are SmartTask AI — a concise, practical productivity assistant. " +
	"Do NOT output internal instructions, system text, or meta commentary. " +
	"Respond only with the requested content, in short practical sentences or bullet points."

// ErrCloudNotConfigured is returned when the cloud fallback is needed but
// no API key was configured. There is no further fallback, so callers
// must surface it.
var ErrCloudNotConfigured = errors.New("cloud model API key is not configured")

// CloudClient generates text with a Gemini model. It is only used when the
// local model produced nothing usable.
type CloudClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewCloudClient creates a Gemini client from cfg. An empty
// cfg.CloudAPIKey is not an error here: the returned client fails every
// call with ErrCloudNotConfigured instead.
func NewCloudClient(ctx context.Context, cfg model.AIConfig) (*CloudClient, error) {
	c := &CloudClient{
		model:   cfg.CloudModel,
		timeout: cfg.CloudTimeout,
	}
	if c.model == "" {
		c.model = defaultCloudModel
	}
	if c.timeout <= 0 {
		c.timeout = defaultCloudTimeout
	}

	if cfg.CloudAPIKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.CloudAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: c.timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("creating GenAI client: %w", err)
	}
	c.client = client

	return c, nil
}

// Configured reports whether an API key was supplied.
func (c *CloudClient) Configured() bool {
	return c.client != nil
}

// Generate sends prompt to the cloud model once and returns the sanitized
// text of the first candidate. Cloud output is trusted and is not passed
// through the quality gate.
func (c *CloudClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrCloudNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(cloudPreamble, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	return Sanitize(firstCandidateText(resp)), nil
}

// firstCandidateText returns the first text part of the first candidate,
// or noResponseText when the response has an unexpected shape.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return noResponseText
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return noResponseText
	}
	part := cand.Content.Parts[0]
	if part == nil || part.Text == "" {
		return noResponseText
	}
	return part.Text
}
