package gpthandler

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/config"
	chatclient "talent-scout-backend/lib/gpt/chat-client"
	geminiclient "talent-scout-backend/lib/gpt/gemini-client"
	ollamaclient "talent-scout-backend/lib/gpt/ollama-client"
	yagptclient "talent-scout-backend/lib/gpt/yagpt-client"
)

const (
	ProviderFireworks = "fireworks"
	ProviderYandex    = "yandex"
	ProviderOllama    = "ollama"
	ProviderGemini    = "gemini"
)

type Provider interface {
	GenerateQuestions(ctx context.Context, skills []string, role string) (text string, err error)
}

// Client общий интерфейс клиентов языковых моделей
type Client interface {
	GenerateByPromtAndText(ctx context.Context, promt, text string) (generatedText string, err error)
}

var Instance Provider

type impl struct {
	provider string
	client   Client
	timeout  time.Duration
}

func NewHandler() {
	Instance = NewInstance(config.Conf.Generator.Provider, newClient(), config.Conf.GeneratorTimeout())
}

func NewInstance(provider string, client Client, timeout time.Duration) Provider {
	return impl{
		provider: provider,
		client:   client,
		timeout:  timeout,
	}
}

func newClient() Client {
	conf := config.Conf.Generator
	switch strings.ToLower(conf.Provider) {
	case ProviderYandex:
		return yagptclient.NewClient(conf.YandexGPT.IAMToken, conf.YandexGPT.CatalogID)
	case ProviderOllama:
		return ollamaclient.NewClient(conf.Ollama.URL, conf.Ollama.Model)
	case ProviderGemini:
		return geminiclient.NewClient(conf.Gemini.APIKey, conf.Gemini.Model)
	case ProviderFireworks, "":
		return chatclient.NewClient(conf.Fireworks.URL, conf.Fireworks.APIKey, conf.Fireworks.Model)
	default:
		log.WithField("provider", conf.Provider).Warn("неизвестный провайдер генерации, используется chat/completions")
		return chatclient.NewClient(conf.Fireworks.URL, conf.Fireworks.APIKey, conf.Fireworks.Model)
	}
}

func (i impl) getLogger() *log.Entry {
	return log.
		WithField("ai", i.provider)
}

func (i impl) GenerateQuestions(ctx context.Context, skills []string, role string) (string, error) {
	if i.client == nil {
		return "", errors.New("question generator is not configured")
	}
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	promt := QuestionsPromt(skills, role)

	now := time.Now()
	text, err := i.client.GenerateByPromtAndText(ctx, QuestionsSysPromt, promt)
	logger := i.getLogger().
		WithField("role", role).
		WithField("skills", skills).
		WithField("answer_duration_sec", time.Since(now).Seconds())
	if err != nil {
		logger.WithError(err).Error("ошибка генерации вопросов для интервью")
		return "", err
	}
	// содержимое ответа не проверяется, пустой ответ отдаем как есть
	if strings.TrimSpace(text) == "" {
		logger.Warn("модель вернула пустой ответ")
	} else {
		logger.Info("вопросы для интервью сгенерированы")
	}
	return text, nil
}
