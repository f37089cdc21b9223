package infercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gustohq/gusto/internal/db"
	"github.com/gustohq/gusto/internal/domain"
)

var labelCacheKeyPrefix = domain.KeyPrefix + "label_cache:"

// LabelCache memoizes small LLM classification outputs (diet labels,
// query intents) keyed by the classified text.
type LabelCache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewLabelCache creates a label cache. ttl of zero means no expiry.
func NewLabelCache(
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *LabelCache {
	return &LabelCache{
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns the cached label for (kind, text), or false on miss.
func (c *LabelCache) Get(ctx context.Context, kind, text string) (string, bool) {
	key := c.cacheKey(kind, text)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached label", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return "", false
	}
	if len(data) == 0 {
		c.incCache("miss")
		return "", false
	}

	c.incCache("hit")
	return string(data), true
}

// Put stores a label. Failures are logged and swallowed: the cache is
// best-effort and must never fail a classification.
func (c *LabelCache) Put(ctx context.Context, kind, text, label string) {
	key := c.cacheKey(kind, text)

	var err error
	if c.ttl > 0 {
		err = c.store.SetWithTTL(ctx, key, []byte(label), c.ttl)
	} else {
		err = c.store.Set(ctx, key, []byte(label))
	}
	if err != nil {
		c.logger.Warn("Failed to cache label", zap.String("key", key), zap.Error(err))
	}
}

func (c *LabelCache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *LabelCache) cacheKey(kind, text string) string {
	h := sha256.Sum256([]byte(text))
	return labelCacheKeyPrefix + kind + ":" + hex.EncodeToString(h[:])
}
