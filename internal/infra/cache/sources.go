package cache

import (
	"context"

	"github.com/aplet360/pricing-service/internal/domain"
)

// PropertyCache кэширующая обертка над источником объектов
type PropertyCache struct {
	source PropertySource
	cache  *Cache[domain.Property]
}

func NewPropertyCache(source PropertySource, cache *Cache[domain.Property]) *PropertyCache {
	return &PropertyCache{source: source, cache: cache}
}

// GetProperty отдает объект из кэша или из источника. Ошибки не кэшируются.
func (p *PropertyCache) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	if property, ok := p.cache.Get(propertyID); ok {
		return property, nil
	}

	property, err := p.source.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	p.cache.Set(propertyID, property)
	return property, nil
}

// AvailabilityCache кэширующая обертка над источником доступности
type AvailabilityCache struct {
	source AvailabilitySource
	cache  *Cache[domain.AvailabilityData]
}

func NewAvailabilityCache(source AvailabilitySource, cache *Cache[domain.AvailabilityData]) *AvailabilityCache {
	return &AvailabilityCache{source: source, cache: cache}
}

// GetAvailability отдает доступность из кэша или из источника. Ошибки не кэшируются.
func (a *AvailabilityCache) GetAvailability(ctx context.Context, propertyID string) (*domain.AvailabilityData, error) {
	if data, ok := a.cache.Get(propertyID); ok {
		return data, nil
	}

	data, err := a.source.GetAvailability(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	a.cache.Set(propertyID, data)
	return data, nil
}
