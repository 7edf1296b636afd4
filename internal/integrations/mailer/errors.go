package mailer

import "errors"

var (
	// ErrNoRecipient возвращается, когда у клиента не указан email
	ErrNoRecipient = errors.New("mailer: recipient email is empty")

	// ErrRenderTemplate возвращается при ошибке формирования письма
	ErrRenderTemplate = errors.New("mailer: failed to render template")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send message")
)
