package mailer

// Config настройки SMTP
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ShopName string
}

// confirmationData данные шаблона письма-подтверждения
type confirmationData struct {
	ShopName       string
	CustomerName   string
	ReservationID  string
	Date           string
	StartTime      string
	EndTime        string
	MenuName       string
	NumberOfPeople int
	CouponCode     string
	DiscountAmount string
	FinalAmount    string
	Currency       string
}
