package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`
<h2>{{.ShopName}}</h2>
<p>{{.CustomerName}} 様</p>
<p>ご予約ありがとうございます。以下の内容でご予約を承りました。</p>
<table>
  <tr><td>予約番号</td><td>{{.ReservationID}}</td></tr>
  <tr><td>日付</td><td>{{.Date}}</td></tr>
  <tr><td>時間</td><td>{{.StartTime}} - {{.EndTime}}</td></tr>
  <tr><td>メニュー</td><td>{{.MenuName}}</td></tr>
  <tr><td>人数</td><td>{{.NumberOfPeople}}名</td></tr>
  {{if .CouponCode}}<tr><td>クーポン</td><td>{{.CouponCode}} (-{{.DiscountAmount}} {{.Currency}})</td></tr>{{end}}
  <tr><td>お支払い金額</td><td>{{.FinalAmount}} {{.Currency}}</td></tr>
</table>
<h3>ご注意事項</h3>
<ul>
  <li>ご予約時間の10分前までにお越しください。</li>
  <li>キャンセルは予約時間の24時間前までにご連絡ください。</li>
</ul>
`))

// Mailer отправляет письма клиентам
type Mailer struct {
	cfg    Config
	dialer Dialer
	log    Logger
}

// NewMailer создает новый экземпляр Mailer
func NewMailer(cfg Config, log Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		log:    log,
	}
}

// NewMailerWithDialer создает Mailer с заданным SMTP-клиентом
func NewMailerWithDialer(cfg Config, dialer Dialer, log Logger) *Mailer {
	return &Mailer{cfg: cfg, dialer: dialer, log: log}
}

// SendReservationConfirmation отправляет подтверждение бронирования
// Если SMTP выключен, письмо только логируется
func (m *Mailer) SendReservationConfirmation(ctx context.Context, details *domain.ReservationDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	to := strings.TrimSpace(details.Customer.Email)
	if to == "" {
		return ErrNoRecipient
	}

	if !m.cfg.Enabled {
		m.log.Info("Mailer: smtp disabled, skip confirmation for reservation id=%s", details.ID)
		return nil
	}

	msg, err := m.buildConfirmation(details)
	if err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Mailer: failed to send confirmation for reservation id=%s: %v", details.ID, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m.log.Info("Mailer: confirmation for reservation id=%s sent", details.ID)
	return nil
}

func (m *Mailer) buildConfirmation(details *domain.ReservationDetails) (*gomail.Message, error) {
	body, err := renderConfirmation(m.cfg.ShopName, details)
	if err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetAddressHeader("To", details.Customer.Email, details.Customer.Name)
	msg.SetHeader("Subject", confirmationSubject(m.cfg.ShopName))
	msg.SetBody("text/html", body)

	return msg, nil
}

func confirmationSubject(shopName string) string {
	if shopName == "" {
		return "ご予約確認"
	}
	return fmt.Sprintf("【%s】ご予約確認", shopName)
}

func renderConfirmation(shopName string, details *domain.ReservationDetails) (string, error) {
	data := confirmationData{
		ShopName:       shopName,
		CustomerName:   details.Customer.Name,
		ReservationID:  details.ID.String(),
		Date:           details.ReservationDate.Format(domain.DateFormat),
		StartTime:      details.StartTime.String(),
		EndTime:        details.EndTime.String(),
		MenuName:       details.MenuName,
		NumberOfPeople: details.NumberOfPeople,
		DiscountAmount: details.DiscountAmount.String(),
		FinalAmount:    details.FinalAmount.String(),
		Currency:       strings.ToUpper(details.Currency),
	}
	if details.CouponCode != nil {
		data.CouponCode = *details.CouponCode
	}

	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	return buf.String(), nil
}
