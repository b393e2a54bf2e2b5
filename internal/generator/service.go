package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Service is the external text generation boundary: one prompt in, raw
// response text out, constrained to the given JSON schema.
type Service interface {
	Generate(ctx context.Context, prompt string, outputSchema map[string]any) (string, error)
}

// ServiceFactory builds a Service for a credential. It is only called once
// a credential is known to exist.
type ServiceFactory func(ctx context.Context, apiKey string) (Service, error)

// ModelSettings configures the chat model behind EinoService.
type ModelSettings struct {
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature *float32
}

// EinoService talks to an OpenAI-compatible chat completions endpoint
// (Gemini exposes one) through eino.
type EinoService struct {
	chat   model.BaseChatModel
	system string
}

// NewEinoService wraps an existing chat model.
func NewEinoService(chat model.BaseChatModel, systemInstruction string) *EinoService {
	return &EinoService{chat: chat, system: systemInstruction}
}

// EinoFactory returns a ServiceFactory creating eino OpenAI chat models.
func EinoFactory(s ModelSettings) ServiceFactory {
	return func(ctx context.Context, apiKey string) (Service, error) {
		chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     s.BaseURL,
			Model:       s.Model,
			Timeout:     s.Timeout,
			Temperature: s.Temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("create chat model %s: %w", s.Model, err)
		}
		return NewEinoService(chat, SystemInstruction()), nil
	}
}

// Generate sends one request. There is no retry.
func (s *EinoService) Generate(ctx context.Context, prompt string, outputSchema map[string]any) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(s.system),
		schema.UserMessage(prompt),
	}
	out, err := s.chat.Generate(ctx, msgs, openai.WithExtraFields(map[string]any{
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "business_plan",
				"strict": false,
				"schema": outputSchema,
			},
		},
	}))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}
