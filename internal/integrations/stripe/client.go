package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Client клиент Stripe PaymentIntents API
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePaymentIntent создает платежное намерение с автоматическим выбором способов оплаты
func (c *Client) CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*PaymentIntent, error) {
	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidAmount)
	}

	minor, err := ToMinorAmount(input.Amount, currency)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(minor, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	if input.Description != "" {
		form.Set("description", input.Description)
	}
	if input.ReceiptEmail != "" {
		form.Set("receipt_email", input.ReceiptEmail)
	}

	// Порядок ключей фиксирован, чтобы тело запроса было детерминированным
	keys := make([]string, 0, len(input.Metadata))
	for k := range input.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		form.Set(fmt.Sprintf("metadata[%s]", k), input.Metadata[k])
	}

	c.log.Info("Stripe: creating payment intent amount=%d currency=%s", minor, currency)

	var intent PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/v1/payment_intents", form, input.IdempotencyKey, &intent); err != nil {
		return nil, err
	}

	c.log.Info("Stripe: payment intent id=%s created, status=%s", intent.ID, intent.Status)
	return &intent, nil
}

// GetPaymentIntent получает платежное намерение по ID
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrPaymentIntentNotFound
	}

	var intent PaymentIntent
	if err := c.do(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(id), nil, "", &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, idempotencyKey string, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrPaymentIntentNotFound
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrCardDeclined, errorMessage(respBody))
	default:
		c.log.Error("Stripe: unexpected status %d for %s %s: %s", resp.StatusCode, method, path, errorMessage(respBody))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func errorMessage(body []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return strings.TrimSpace(string(body))
}
