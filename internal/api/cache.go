package api

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/pitwall/internal/metrics"
	"github.com/yourusername/pitwall/internal/models"
)

// forecastCache suppresses duplicate prediction requests for a short window.
// Forecasts are stochastic, so the TTL stays small: identical requests inside
// the window get the same forecast, not a redraw. A non-positive TTL disables
// caching entirely.
type forecastCache struct {
	cache *gocache.Cache
}

func newForecastCache(ttl time.Duration) *forecastCache {
	if ttl <= 0 {
		return &forecastCache{}
	}
	return &forecastCache{cache: gocache.New(ttl, 2*ttl)}
}

func (c *forecastCache) key(circuit string, w models.Weather, entrants []models.Entrant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s", circuit, w)
	for _, e := range entrants {
		fmt.Fprintf(&b, "|%s:%s:%d", e.Driver, e.Constructor, e.Grid)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func (c *forecastCache) get(key string) (*models.RaceForecast, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, ok := c.cache.Get(key)
	if !ok {
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}
	metrics.CacheHitsTotal.Inc()
	return v.(*models.RaceForecast), true
}

func (c *forecastCache) set(key string, f *models.RaceForecast) {
	if c.cache == nil {
		return
	}
	c.cache.SetDefault(key, f)
}
