package listings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
	"github.com/aplet360/pricing-service/internal/service/listings/models"
)

// fetchConcurrency сколько объектов сетки загружается одновременно
const fetchConcurrency = 8

// Service сервис цен для карточек объявлений
type Service struct {
	properties PropertySource
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(properties PropertySource, logger Logger) *Service {
	return &Service{
		properties: properties,
		logger:     logger,
	}
}

// GetListingPricing возвращает сводку цены одного объявления.
// Объект без активных тарифов не ошибка: Pricing в ответе равен nil.
func (s *Service) GetListingPricing(ctx context.Context, propertyID string) (*models.ListingPricingResponse, error) {
	s.logger.Info("GetListingPricing: property=%s", propertyID)

	if strings.TrimSpace(propertyID) == "" {
		return nil, fmt.Errorf("%w: property id is required", ErrInvalidInput)
	}

	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			s.logger.Warn("GetListingPricing: property=%s not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetListingPricing: failed to get property=%s: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetListingPricing - source error: %v", ErrInternal, err)
	}

	return models.FromSummary(property, engine.GetActivePricing(*property)), nil
}

// ListListingPricing возвращает сводки для сетки объявлений, отсортированные по цене.
// Объявления без цены идут последними в исходном порядке; ненайденные объекты попадают в Missing.
func (s *Service) ListListingPricing(ctx context.Context, req *models.ListPricingRequest) (*models.ListPricingResponse, error) {
	ids := uniqueIDs(req.PropertyIDs)
	s.logger.Info("ListListingPricing: count=%d, order=%s", len(ids), req.Order)

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one property id is required", ErrInvalidInput)
	}
	if len(ids) > domain.MaxListingBatch {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyListings, len(ids), domain.MaxListingBatch)
	}

	order := req.Order
	if order == "" {
		order = models.OrderAsc
	}

	// 1. Загружаем объекты параллельно, сохраняя позиции
	properties := make([]*domain.Property, len(ids))
	found := make([]bool, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			property, err := s.properties.GetProperty(gctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrPropertyNotFound) {
					return nil
				}
				return fmt.Errorf("property=%s: %w", id, err)
			}
			properties[i] = property
			found[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("ListListingPricing: failed to load properties: %v", err)
		return nil, fmt.Errorf("%w: ListListingPricing - source error: %v", ErrInternal, err)
	}

	// 2. Считаем сводки
	resp := &models.ListPricingResponse{
		Listings: make([]models.ListingPricingResponse, 0, len(ids)),
		Missing:  []string{},
	}
	for i, id := range ids {
		if !found[i] {
			resp.Missing = append(resp.Missing, id)
			continue
		}
		listing := models.FromSummary(properties[i], engine.GetActivePricing(*properties[i]))
		resp.Listings = append(resp.Listings, *listing)
	}

	// 3. Сортируем по цене, объявления без цены в конце
	sortListings(resp.Listings, order)

	if len(resp.Missing) > 0 {
		s.logger.Warn("ListListingPricing: properties not found: %s", strings.Join(resp.Missing, ","))
	}
	return resp, nil
}

func sortListings(listings []models.ListingPricingResponse, order models.Order) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i].DisplayPrice, listings[j].DisplayPrice
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case order == models.OrderDesc:
			return *a > *b
		default:
			return *a < *b
		}
	})
}

// uniqueIDs убирает пустые и повторяющиеся идентификаторы, сохраняя порядок
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
