package gateway

import (
	"github.com/depang/shopping-mall-api/services/auth-service/internal/usecase"
	"github.com/depang/shopping-mall-api/shared/mailer"
)

type mailerNotificationGateway struct {
	mailer *mailer.Mailer
}

// NewMailerNotificationGateway adapts the shared SMTP mailer to the
// notification contract used by the password-reset flow.
func NewMailerNotificationGateway(m *mailer.Mailer) usecase.NotificationGateway {
	return &mailerNotificationGateway{mailer: m}
}

func (g *mailerNotificationGateway) SendVerificationCode(email, subject, body string) error {
	return g.mailer.SendSimple([]string{email}, subject, body)
}
