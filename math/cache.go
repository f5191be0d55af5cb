package math

import (
	"strconv"
	"time"

	"github.com/db47h/bigfix"
	"github.com/golang/glog"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// A Cache memoizes the constants π, e and ln 2 per precision, together with
// the functions that depend on them. A Cache is safe for concurrent use;
// concurrent computations of the same constant at the same precision are
// collapsed into a single one.
//
// Entries never expire. A Cache grows with the number of distinct precisions
// requested and can be emptied with Flush.
type Cache struct {
	store   *cache.Cache
	flight  singleflight.Group
	metrics *Metrics
}

// DefaultCache is the Cache used by the package level functions.
var DefaultCache = NewCache(nil)

// NewCache returns an empty Cache. If m is not nil, the cache reports lookups
// and computation times to m.
func NewCache(m *Metrics) *Cache {
	return &Cache{
		store:   cache.New(cache.NoExpiration, 0),
		metrics: m,
	}
}

// constKey identifies a constant rounded to a given precision.
type constKey struct {
	name string
	prec uint
}

// Key returns the cache key of k, e.g. "pi/114".
func (k constKey) Key() string {
	return k.name + "/" + strconv.FormatUint(uint64(k.prec), 10)
}

// Len returns the number of memoized values.
func (c *Cache) Len() int { return c.store.ItemCount() }

// Flush removes all memoized values.
func (c *Cache) Flush() { c.store.Flush() }

func (c *Cache) get(k constKey, compute func(prec uint) bigfix.Fixed) bigfix.Fixed {
	key := k.Key()
	if v, found := c.store.Get(key); found {
		c.metrics.hit(k.name)
		return v.(bigfix.Fixed)
	}
	v, _, _ := c.flight.Do(key, func() (interface{}, error) {
		if v, found := c.store.Get(key); found {
			c.metrics.hit(k.name)
			return v, nil
		}
		c.metrics.miss(k.name)
		start := time.Now()
		x := compute(k.prec)
		d := time.Since(start)
		c.store.Set(key, x, cache.NoExpiration)
		c.metrics.observe(k.name, d)
		glog.V(2).Infof("math: computed %s to %d bits in %v", k.name, k.prec, d)
		return x, nil
	})
	return v.(bigfix.Fixed)
}

// Metrics holds the prometheus collectors updated by a Cache. A nil *Metrics
// is valid and discards all updates.
type Metrics struct {
	hits    *prometheus.CounterVec
	misses  *prometheus.CounterVec
	compute *prometheus.HistogramVec
}

// NewMetrics creates the collectors of a Cache and registers them with reg
// unless reg is nil. It panics if the collectors are already registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigfix",
			Subsystem: "constants",
			Name:      "cache_hits_total",
			Help:      "Number of constant lookups served from the cache.",
		}, []string{"constant"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigfix",
			Subsystem: "constants",
			Name:      "cache_misses_total",
			Help:      "Number of constant lookups that required a computation.",
		}, []string{"constant"}),
		compute: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bigfix",
			Subsystem: "constants",
			Name:      "compute_seconds",
			Help:      "Time spent computing constants.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"constant"}),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.compute)
	}
	return m
}

func (m *Metrics) hit(name string) {
	if m != nil {
		m.hits.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) miss(name string) {
	if m != nil {
		m.misses.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) observe(name string, d time.Duration) {
	if m != nil {
		m.compute.WithLabelValues(name).Observe(d.Seconds())
	}
}
