package service

import (
	"sync"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/mitchellh/hashstructure/v2"
)

// ReportCache memoizes dashboards between mutations. Every write made through
// a service calls Invalidate, which moves the cache to a new data version.
// A nil *ReportCache is valid and caches nothing.
type ReportCache struct {
	mu      sync.Mutex
	version uint64
	entries map[uint64]analytics.Dashboard
}

func NewReportCache() *ReportCache {
	return &ReportCache{entries: make(map[uint64]analytics.Dashboard)}
}

// reportKey is everything a dashboard depends on besides stored data.
type reportKey struct {
	Version   uint64
	Day       string
	Breakdown string
}

func (c *ReportCache) key(day, breakdown string) (uint64, error) {
	return hashstructure.Hash(reportKey{Version: c.version, Day: day, Breakdown: breakdown}, hashstructure.FormatV2, nil)
}

// Get returns the dashboard cached for day and breakdown at the current
// data version.
func (c *ReportCache) Get(day, breakdown string) (analytics.Dashboard, bool) {
	if c == nil {
		return analytics.Dashboard{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	k, err := c.key(day, breakdown)
	if err != nil {
		return analytics.Dashboard{}, false
	}
	d, ok := c.entries[k]
	return d, ok
}

// Put stores d unless the data version moved on since version was read.
func (c *ReportCache) Put(version uint64, day, breakdown string, d analytics.Dashboard) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return
	}
	k, err := c.key(day, breakdown)
	if err != nil {
		return
	}
	c.entries[k] = d
}

// Version returns the current data version.
func (c *ReportCache) Version() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Invalidate drops every cached dashboard.
func (c *ReportCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	clear(c.entries)
}

// Len reports the number of cached dashboards.
func (c *ReportCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
