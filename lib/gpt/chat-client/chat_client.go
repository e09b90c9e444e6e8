package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// клиент openai-совместимого api chat/completions (Fireworks, Mistral, OpenAI)

type Provider interface {
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type response struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type impl struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(url, apiKey, model string) Provider {
	return impl{
		url:        url,
		apiKey:     apiKey,
		model:      model,
		httpClient: http.DefaultClient,
	}
}

func (i impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	if i.url == "" {
		return "", errors.New("model API url is not configured")
	}
	if i.apiKey == "" {
		return "", errors.New("model API key is not configured")
	}
	payload := request{
		Model: i.model,
		Messages: []message{
			{Role: "system", Content: promt},
			{Role: "user", Content: text},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to build model API request")
	}
	req.Header.Set("Authorization", "Bearer "+i.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "model API request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read model API response")
	}
	var result response
	decodeErr := json.Unmarshal(respBody, &result)
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.Error != nil && result.Error.Message != "" {
			return "", errors.Errorf("model API error: %s: %s", resp.Status, result.Error.Message)
		}
		return "", errors.Errorf("model API error: %s", resp.Status)
	}
	if decodeErr != nil {
		return "", errors.Wrap(decodeErr, "failed to decode model API response")
	}
	if len(result.Choices) == 0 {
		return "", errors.New("model API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
