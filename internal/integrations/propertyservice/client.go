package propertyservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/pkg/requestid"
)

// maxBodySize ограничение размера ответа
const maxBodySize = 4 << 20

// Client клиент для работы с PropertyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PropertyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает объект с тарифами
func (c *Client) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	endpoint := fmt.Sprintf("%s/property/%s", c.baseURL, url.PathEscape(propertyID))

	body, err := c.get(ctx, endpoint, propertyID)
	if err != nil {
		return nil, err
	}

	var property Property
	if err := json.Unmarshal(body, &property); err != nil {
		return nil, fmt.Errorf("%w: failed to decode property: %v", ErrInvalidResponse, err)
	}

	result := property.ToDomain()
	if result.ID == "" {
		result.ID = propertyID
	}
	if !result.Category.IsKnown() {
		c.log.Warn("PropertyService returned unknown category=%q for property_id=%s", result.Category, propertyID)
	}
	if disabled := result.Pricing.DisableNegativeTiers(); len(disabled) > 0 {
		c.log.Warn("PropertyService returned negative amounts for property_id=%s, tiers disabled: %v", propertyID, disabled)
	}
	return result, nil
}

// GetAvailability получает доступные и занятые окна объекта
func (c *Client) GetAvailability(ctx context.Context, propertyID string) (*domain.AvailabilityData, error) {
	endpoint := fmt.Sprintf("%s/booking/availability/%s", c.baseURL, url.PathEscape(propertyID))

	body, err := c.get(ctx, endpoint, propertyID)
	if err != nil {
		return nil, err
	}

	var availability Availability
	if err := json.Unmarshal(body, &availability); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability: %v", ErrInvalidResponse, err)
	}

	return availability.ToDomain(), nil
}

func (c *Client) get(ctx context.Context, endpoint, propertyID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	requestid.Propagate(req)

	resp, err := c.httpClient.Do(req)
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
	case http.StatusOK:
		return unwrap(body), nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: property_id=%s", domain.ErrPropertyNotFound, propertyID)
	default:
		c.log.Warn("PropertyService returned status=%d for %s", resp.StatusCode, endpoint)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errorMessage(body))
	}
}

func errorMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
