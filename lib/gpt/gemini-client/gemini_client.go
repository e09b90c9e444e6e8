package geminiclient

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type Provider interface {
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

type impl struct {
	apiKey string
	model  string
}

func NewClient(apiKey, model string) Provider {
	return impl{
		apiKey: apiKey,
		model:  model,
	}
}

func (i impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	if i.apiKey == "" {
		return "", errors.New("Gemini API key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(i.apiKey))
	if err != nil {
		return "", errors.Wrap(err, "failed to create Gemini client")
	}
	defer client.Close()

	model := client.GenerativeModel(i.model)
	model.SetTemperature(0.3)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(promt)},
	}
	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", errors.Wrap(err, "Gemini request failed")
	}
	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("Gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("Gemini returned no content")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", errors.New("Gemini returned no text parts")
	}
	return strings.Join(parts, ""), nil
}
