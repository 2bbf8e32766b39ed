package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const sendBookingEmailFunction = "send-booking-email"

// Client клиент serverless-функций managed backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента функций
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingEmail вызывает функцию send-booking-email.
// Ответ функции не разбирается: важен только успех или ошибка.
func (c *Client) SendBookingEmail(ctx context.Context, payload BookingEmail) error {
	return c.invoke(ctx, sendBookingEmailFunction, payload)
}

func (c *Client) invoke(ctx context.Context, function string, payload interface{}) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, function)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("apikey", c.apiKey)
	}

	c.log.Info("Invoking function %s", function)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	funcErr := &FunctionError{
		Function:   function,
		StatusCode: resp.StatusCode,
		Message:    extractErrorMessage(respBody, resp.StatusCode),
	}
	c.log.Warn("Function %s failed: status=%d, message=%s", function, resp.StatusCode, funcErr.Message)

	return funcErr
}

// extractErrorMessage достаёт текст ошибки из JSON {"error": "..."} или {"message": "..."},
// иначе возвращает тело как есть
func extractErrorMessage(body []byte, status int) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(status)
}

// IsFunctionError возвращает сообщение функции, если err пришла от неё
func IsFunctionError(err error) (string, bool) {
	var funcErr *FunctionError
	if errors.As(err, &funcErr) {
		return funcErr.Message, true
	}
	return "", false
}
