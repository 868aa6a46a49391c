package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-gateway"

	currencyINR = "INR"
	ordersPath  = "/v1/orders"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
}

// Gateway - REST-клиент платёжного шлюза. Суммы на проводе шлюз
// принимает в пайсах (минорных единицах INR).
type Gateway struct {
	config  Config
	client  httpDoer
	retrier retrier
}

func New(config Config, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		config:  config,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func (g *Gateway) CreateOrder(ctx context.Context, amount decimal.Decimal) (*entities.PaymentOrder, error) {
	payload := createOrderRequest{
		Amount:   amount.Shift(2).IntPart(),
		Currency: currencyINR,
	}

	var resp createOrderResponse

	err := g.executeWithMetrics(ctx, "CreateOrder", func(ctx context.Context) error {
		return g.postJSON(ctx, ordersPath, payload, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway payment, create order: %w", err)
	}

	return &entities.PaymentOrder{
		ID:       resp.ID,
		Amount:   decimal.New(resp.Amount, -2),
		Currency: resp.Currency,
	}, nil
}

// VerifySignature проверяет HMAC-SHA256 подпись вебхука/клиентского
// подтверждения: подписывается строка "<order_id>|<payment_id>"
// секретным ключом.
func (g *Gateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if gatewayOrderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.config.KeySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *Gateway) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.config.KeyID, g.config.KeySecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apiError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gateway responded %d: %s", e.StatusCode, e.Body)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var api *apiError
	if errors.As(err, &api) {
		return api.StatusCode == http.StatusTooManyRequests || api.StatusCode >= http.StatusInternalServerError
	}
	// транспортные ошибки ретраим всегда
	return true
}

func httpCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}
	var api *apiError
	if errors.As(err, &api) {
		return strconv.Itoa(api.StatusCode)
	}
	return "transport_error"
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := httpCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}
