package mailer

import "gopkg.in/gomail.v2"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dialer отправляет сообщения через SMTP (реализуется *gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}
