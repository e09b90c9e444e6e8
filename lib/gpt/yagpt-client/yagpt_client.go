package yagptclient

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

type Provider interface {
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) Provider {
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

func (i impl) GenerateByPromtAndText(ctx context.Context, promt, text string) (string, error) {
	if i.catalogID == "" {
		return "", errors.New("YandexGPT catalog id is not configured")
	}
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   4000,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: promt,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: text,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "YandexGPT request failed")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("YandexGPT returned no alternatives")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
