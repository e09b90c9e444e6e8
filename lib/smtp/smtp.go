package smtp

import (
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendWithAttachment(to, subject, body string, attachment []byte, attachmentName string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = NewInstance(user, password, host, port, tlsEnabled)
	return nil
}

func NewInstance(user, password, host, port string, tlsEnabled bool) Provider {
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) SendWithAttachment(to, subject, body string, attachment []byte, attachmentName string) (err error) {
	logger := log.
		WithField("recipient", to).
		WithField("attachment", attachmentName)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return errors.New("smtp client is not configured")
	}
	message, err := BuildMessage(i.user, to, subject, body, attachment, attachmentName)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма")
		return err
	}
	// Receiver email address.
	sendTo := []string{
		to,
	}
	// Authentication.
	auth := sasl.NewPlainClient("", i.user, i.password)

	// Sending email.
	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, message)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, message)
	}
	if err != nil {
		logger.WithError(err).Error("Ошибка отправки сообщения")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}
