package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/ishalabs/isha-backend/internal/config"
)

// Service is the completion client: one blocking model call per turn. It is
// constructed once at startup and read-only afterwards, so a single instance
// serves concurrent requests.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[[]*schema.Message, *schema.Message]
}

// NewService builds the provider client and compiles the completion chain.
// Construction fails when credentials are missing or invalid; callers treat
// a nil service as degraded mode.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	chain := compose.NewChain[[]*schema.Message, *schema.Message]()
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile completion chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// Generate runs one synchronous completion over the prompt turns. There is
// no retry: a failed call is reported to the caller, which degrades to its
// local fallback for the turn.
func (s *Service) Generate(ctx context.Context, prompt []*schema.Message) (string, error) {
	response, err := s.chain.Invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("completion call failed: %w", err)
	}

	log.Printf("[ai] generated completion, model=%s, length=%d", s.cfg.Model, len(response.Content))
	return response.Content, nil
}

// ModelName reports the configured model identifier.
func (s *Service) ModelName() string {
	return s.cfg.Model
}
