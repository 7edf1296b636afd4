package admin_auth

// CookieConfig параметры cookie с токеном администратора
type CookieConfig struct {
	Name   string
	Secure bool
}
