package config

import (
	"time"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB int    `default:"10" env:"APP_BODY_LIMIT_MB"`  // с учетом загрузки резюме
		JSONLimitKB int    `default:"256" env:"APP_JSON_LIMIT_KB"` // остальные запросы
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"talent-scout" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Smtp struct {
		User       string `default:"" env:"EMAIL_ADDRESS"`
		Password   string `default:"" env:"EMAIL_PASSWORD"`
		Host       string `default:"" env:"EMAIL_HOST"`
		Port       string `default:"465" env:"EMAIL_PORT"`
		TLSEnabled *bool  `default:"true" env:"EMAIL_TLS_ENABLED"`
	}
	Generator struct {
		// fireworks (любой openai-совместимый chat/completions), yandex, ollama, gemini
		Provider   string `default:"fireworks" env:"GENERATOR_PROVIDER"`
		TimeoutSec int    `default:"120" env:"GENERATOR_TIMEOUT_SEC"`
		Fireworks  struct {
			APIKey string `default:"" env:"FIREWORKS_API_KEY"`
			URL    string `default:"https://api.fireworks.ai/inference/v1/chat/completions" env:"MISTRAL_API_URL"`
			Model  string `default:"accounts/fireworks/models/llama-v3p1-8b-instruct" env:"GENERATOR_MODEL"`
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		}
		Ollama struct {
			URL   string `default:"" env:"OLLAMA_URL"`
			Model string `default:"" env:"OLLAMA_MODEL"`
		}
		Gemini struct {
			APIKey string `default:"" env:"GEMINI_API_KEY"`
			Model  string `default:"gemini-1.5-flash" env:"GEMINI_MODEL"`
		}
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"talent-scout" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Pdf struct {
		FontDir string `default:"" env:"PDF_FONT_DIR"`
	}
	Privacy struct {
		RetentionDays int    `default:"183" env:"RETENTION_DAYS"`
		Contact       string `default:"https://gdpr-info.eu/" env:"PRIVACY_CONTACT"`
	}
	Session struct {
		TTLMin int `default:"60" env:"SESSION_TTL_MIN"`
	}
}

func (c Configuration) GeneratorTimeout() time.Duration {
	return time.Duration(c.Generator.TimeoutSec) * time.Second
}

func (c Configuration) Retention() time.Duration {
	return time.Duration(c.Privacy.RetentionDays) * 24 * time.Hour
}

func (c Configuration) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMin) * time.Minute
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env не обязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не загружен, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
