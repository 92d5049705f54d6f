package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"queryx/internal/ai"
	"queryx/internal/model"
	"queryx/internal/prompt"
)

// Fallback sentences returned in place of an answer when the provider call
// fails. The contract is "always return something renderable": callers get
// HTTP 200 with explanatory text, never the raw failure.
const (
	textFallback  = "Sorry, backend me kuch error aa gaya. Please try again."
	imageFallback = "Sorry, image se question read karte waqt error aa gaya."
)

// AskService turns validated requests into prompts, calls the model and maps
// success or failure onto the always-populated AnswerResponse.
type AskService struct {
	gen ai.Generator
}

// NewAskService creates the ask service.
func NewAskService(gen ai.Generator) *AskService {
	return &AskService{gen: gen}
}

// AskText answers a text question. Provider failures are logged and masked
// behind the fixed fallback sentence.
func (s *AskService) AskText(ctx context.Context, req *model.AskTextRequest) *model.AnswerResponse {
	systemPrompt := prompt.SystemPrompt(req.Level, req.Style, req.Language)
	fullPrompt := prompt.FullPrompt(systemPrompt, req.Question)

	text, err := s.gen.GenerateText(ctx, fullPrompt)
	if err != nil {
		logProviderError(err, "/ask-text")
		return &model.AnswerResponse{AnswerText: textFallback}
	}

	return &model.AnswerResponse{AnswerText: strings.TrimSpace(text)}
}

// AskImage answers a question photographed by the caller. The model is told
// to restate the question it reads from the image before solving it.
func (s *AskService) AskImage(ctx context.Context, req *model.AskImageRequest) *model.AnswerResponse {
	systemPrompt := prompt.SystemPrompt(req.Level, req.Style, req.Language)

	text, err := s.gen.GenerateVision(ctx, systemPrompt+prompt.ImageInstruction, req.MimeType, req.Image)
	if err != nil {
		logProviderError(err, "/ask-image")
		return &model.AnswerResponse{AnswerText: imageFallback}
	}

	return &model.AnswerResponse{AnswerText: strings.TrimSpace(text)}
}

func logProviderError(err error, route string) {
	kind := ai.KindUnknown
	var perr *ai.ProviderError
	if errors.As(err, &perr) {
		kind = perr.Kind
	}

	log.Error().
		Err(err).
		Str("route", route).
		Str("kind", string(kind)).
		Msg("model call failed, returning fallback answer")
}
