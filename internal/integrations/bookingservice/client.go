package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/requestid"
)

const maxBodySize = 1 << 20

// Client клиент для работы с booking API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента booking API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateBooking отправляет заявку на бронирование.
// authorization передается как есть; IdempotencyKey заявки уходит в заголовке Idempotency-Key.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest, authorization string) (*domain.BookingConfirmation, error) {
	payload, err := json.Marshal(newCreateBookingRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/booking", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}
	if authorization != "" {
		httpReq.Header.Set("Authorization", authorization)
	}
	requestid.Propagate(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		c.log.Warn("Booking conflict for property_id=%s (%s..%s): %s", req.PropertyID,
			req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat), errorMessage(body))
		return nil, ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrRejected, errorMessage(body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(body))
	}

	var created CreateBookingResponse
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(unwrap(body), &created); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	confirmation := created.toDomain()
	c.log.Info("Booking created for property_id=%s: id=%s status=%s", req.PropertyID, confirmation.ID, confirmation.Status)
	return confirmation, nil
}

// unwrap возвращает содержимое data, если ответ обернут в {"data": ...}
func unwrap(body []byte) []byte {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		return env.Data
	}
	return body
}

func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
