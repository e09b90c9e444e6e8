package initializers

import (
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/config"
	"talent-scout-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if config.Conf.Smtp.Host == "" {
		log.Warn("smtp не настроен, отправка вопросов на почту недоступна")
	}
}
