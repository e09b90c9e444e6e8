package ollamaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	ollamamodels "talent-scout-backend/models/api/ollama"
)

type Provider interface {
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

type impl struct {
	ollamaURL   string
	ollamaModel string
}

func NewClient(url, model string) Provider {
	return impl{
		ollamaURL:   url,
		ollamaModel: model,
	}
}

func (i impl) checkConfig() error {
	if i.ollamaURL == "" {
		return errors.New("ollama url is not configured")
	}
	if i.ollamaModel == "" {
		return errors.New("ollama model is not configured")
	}
	return nil
}

func (i impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	if err := i.checkConfig(); err != nil {
		return "", err
	}
	request := ollamamodels.OllamaRequest{
		Model:   i.ollamaModel,
		System:  promt,
		Prompt:  text,
		Stream:  false,
		Options: ollamamodels.GetInterviewConfig(),
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.ollamaURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ollama request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var ollamaResponse ollamamodels.OllamaResponse
	err = json.Unmarshal(body, &ollamaResponse)
	if err != nil {
		return "", err
	}
	if ollamaResponse.Error != "" {
		return "", fmt.Errorf("ollama API error: %s", ollamaResponse.Error)
	}

	return ollamaResponse.Response, nil
}
