package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/smarttask/internal/model"
)

// LocalModel is the first model tried for every request.
type LocalModel interface {
	Suggest(ctx context.Context, prompt string) LocalResult
}

// CloudModel is the fallback used when the local model is unusable.
type CloudModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Source names the model that produced a response.
type Source string

const (
	SourceLocal Source = "local"
	SourceCloud Source = "cloud"
)

// Response is the final text of one pipeline run.
type Response struct {
	Text   string
	Source Source

	// Local is the outcome of the local attempt, kept for logging even
	// when the cloud answered.
	Local LocalResult
}

// Suggestion is the result of a suggestion request. Exactly one of Reply
// and Reorder is set.
type Suggestion struct {
	Reply   string
	Reorder *ReorderResult
	Source  Source
}

// Assistant runs the suggestion pipeline: build the prompt, try the local
// model, fall back to the cloud model, and reconcile reorders.
type Assistant struct {
	local  LocalModel
	cloud  CloudModel
	logger *zap.Logger
}

// New creates an Assistant from its two model clients.
func New(local LocalModel, cloud CloudModel, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		local:  local,
		cloud:  cloud,
		logger: logger,
	}
}

// Respond answers prompt. The local model is called once; the cloud model
// is called once only when the local result is not usable. Errors come
// only from the cloud attempt.
func (a *Assistant) Respond(ctx context.Context, prompt string) (Response, error) {
	modelPrompt := systemPrefix + prompt

	local := a.local.Suggest(ctx, modelPrompt)
	if local.OK() && IsUsable(local.Text) {
		a.logger.Debug("local model answered", zap.Int("chars", len(local.Text)))
		return Response{Text: local.Text, Source: SourceLocal, Local: local}, nil
	}

	fields := []zap.Field{zap.Stringer("local_outcome", local.Outcome)}
	if local.Err != nil {
		fields = append(fields, zap.NamedError("local_error", local.Err))
	}
	a.logger.Info("local model unusable, falling back to cloud", fields...)

	text, err := a.cloud.Generate(ctx, modelPrompt)
	if err != nil {
		return Response{Local: local}, fmt.Errorf("cloud fallback: %w", err)
	}

	return Response{Text: text, Source: SourceCloud, Local: local}, nil
}

// Suggest runs the full pipeline for req.
func (a *Assistant) Suggest(ctx context.Context, req model.SuggestRequest) (*Suggestion, error) {
	prompt := BuildPrompt(req)

	resp, err := a.Respond(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if req.Mode == model.ModeTaskReorder {
		result := Reorder(resp.Text, req.Tasks)
		if result.Fallback {
			a.logger.Info("reorder fell back to original order", zap.Int("tasks", len(req.Tasks)))
		}
		return &Suggestion{Reorder: &result, Source: resp.Source}, nil
	}

	return &Suggestion{Reply: resp.Text, Source: resp.Source}, nil
}
