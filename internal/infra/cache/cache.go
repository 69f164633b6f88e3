package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
)

// Уровни кэша для метрик
const (
	levelLocal  = "local"
	levelRemote = "remote"
)

// Cache двухуровневый кэш: локальный ccache и, если задан, общий memcached.
// В memcached значения хранятся в JSON.
type Cache[T any] struct {
	prefix  string
	ttl     time.Duration
	local   *ccache.Cache[*T]
	remote  RemoteStore
	metrics Metrics
	log     Logger
}

// New создает кэш; remote и metrics могут быть nil
func New[T any](prefix string, maxSize int64, ttl time.Duration, remote RemoteStore, metrics Metrics, log Logger) *Cache[T] {
	return &Cache[T]{
		prefix:  prefix,
		ttl:     ttl,
		local:   ccache.New(ccache.Configure[*T]().MaxSize(maxSize)),
		remote:  remote,
		metrics: metrics,
		log:     log,
	}
}

// Get ищет значение сначала локально, затем в memcached.
// Найденное в memcached значение сохраняется локально.
func (c *Cache[T]) Get(key string) (*T, bool) {
	key = c.key(key)

	if item := c.local.Get(key); item != nil && !item.Expired() {
		c.observe(levelLocal, "hit")
		return item.Value(), true
	}
	c.observe(levelLocal, "miss")

	if c.remote == nil {
		return nil, false
	}

	item, err := c.remote.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			c.log.Warn("Memcached get failed: key=%s, error=%v", key, err)
		}
		c.observe(levelRemote, "miss")
		return nil, false
	}

	var value T
	if err := json.Unmarshal(item.Value, &value); err != nil {
		c.log.Warn("Failed to decode cached value: key=%s, error=%v", key, err)
		c.observe(levelRemote, "miss")
		return nil, false
	}

	c.observe(levelRemote, "hit")
	c.local.Set(key, &value, c.ttl)
	return &value, true
}

// Set сохраняет значение на обоих уровнях
func (c *Cache[T]) Set(key string, value *T) {
	key = c.key(key)
	c.local.Set(key, value, c.ttl)

	if c.remote == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to encode value for memcached: key=%s, error=%v", key, err)
		return
	}

	if err := c.remote.Set(&memcache.Item{
		Key:        key,
		Value:      data,
		Expiration: int32(c.ttl / time.Second),
	}); err != nil {
		c.log.Warn("Memcached set failed: key=%s, error=%v", key, err)
	}
}

// Delete удаляет значение с обоих уровней
func (c *Cache[T]) Delete(key string) {
	key = c.key(key)
	c.local.Delete(key)

	if c.remote == nil {
		return
	}
	if err := c.remote.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		c.log.Warn("Memcached delete failed: key=%s, error=%v", key, err)
	}
}

// Stop останавливает фоновую горутину ccache
func (c *Cache[T]) Stop() {
	c.local.Stop()
}

func (c *Cache[T]) key(key string) string {
	return c.prefix + ":" + key
}

func (c *Cache[T]) observe(level, result string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(level, result)
	}
}
