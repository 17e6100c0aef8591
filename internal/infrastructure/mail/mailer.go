package mail

import (
	"fmt"

	"github.com/taskhub/backend/internal/config"
	"github.com/taskhub/backend/internal/core/ports"
	"github.com/taskhub/backend/internal/domain"
	"github.com/taskhub/backend/internal/infrastructure/logger"
	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

func NewSMTPMailer(cfg config.MailConfig, log *logger.Logger) ports.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (m *smtpMailer) SendTaskCompleted(to string, task *domain.Task) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", CompletionSubject)
	msg.SetBody("text/plain", CompletionBody(task))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Errorw("mail_send_failed", "to", to, "task_id", task.ID, "error", err)
		return err
	}

	m.log.Infow("mail_send_ok", "to", to, "task_id", task.ID)
	return nil
}

const CompletionSubject = "Task Completed"

func CompletionBody(task *domain.Task) string {
	return fmt.Sprintf("Your task %q has been marked as completed.", task.Title)
}
