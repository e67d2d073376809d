package genai

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"

	"replyrush/pkg/config"
)

// NewChatModel builds the chat model client for the generation backend.
// The ark component speaks any OpenAI-compatible endpoint, so the base URL
// and model name come from configuration.
func NewChatModel(ctx context.Context, cfg *config.Config) (model.BaseChatModel, error) {
	chatModelConfig := &ark.ChatModelConfig{
		APIKey: cfg.GenAIAPIKey,
		Model:  cfg.GenAIModel,
	}
	if cfg.GenAIBaseURL != "" {
		chatModelConfig.BaseURL = cfg.GenAIBaseURL
	}

	return ark.NewChatModel(ctx, chatModelConfig)
}
