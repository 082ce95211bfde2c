package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/coursegen/internal/config"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

var ErrEmptyResponse = errors.New("empty response from model")

// Provider is a plain text-generation backend. One call, no retries.
type Provider interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, maxTokens int) (Provider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &geminiProvider{client: client, model: model, maxTokens: int32(maxTokens)}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx).WithField("model", p.model)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			MaxOutputTokens:   p.maxTokens,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", err
	}

	raw := strings.TrimSpace(result.Text())
	log.Debugf("Raw Gemini response (%d chars)", len(raw))
	if raw == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

type unavailableProvider struct{}

// NewUnavailableProvider is used when no API key is configured; every call fails as a generation error.
func NewUnavailableProvider() Provider {
	return unavailableProvider{}
}

func (unavailableProvider) Generate(context.Context, string, string) (string, error) {
	return "", errors.New("text generation is not configured")
}
