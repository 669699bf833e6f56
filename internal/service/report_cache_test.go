package service

import (
	"sync"
	"testing"

	"github.com/alexanderramin/fieldbook/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestReportCache_GetPut(t *testing.T) {
	c := NewReportCache()
	_, ok := c.Get("2025-06-11", "all")
	assert.False(t, ok)

	c.Put(c.Version(), "2025-06-11", "all", analytics.Dashboard{Currency: "EUR"})
	d, ok := c.Get("2025-06-11", "all")
	assert.True(t, ok)
	assert.Equal(t, "EUR", d.Currency)

	_, ok = c.Get("2025-06-11", "week")
	assert.False(t, ok)
	_, ok = c.Get("2025-06-12", "all")
	assert.False(t, ok)
}

func TestReportCache_InvalidateDropsEntries(t *testing.T) {
	c := NewReportCache()
	c.Put(c.Version(), "2025-06-11", "all", analytics.Dashboard{})
	assert.Equal(t, 1, c.Len())

	c.Invalidate()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("2025-06-11", "all")
	assert.False(t, ok)
}

func TestReportCache_IgnoresStalePut(t *testing.T) {
	c := NewReportCache()
	v := c.Version()
	c.Invalidate()

	c.Put(v, "2025-06-11", "all", analytics.Dashboard{})
	assert.Equal(t, 0, c.Len())
}

func TestReportCache_NilIsNoop(t *testing.T) {
	var c *ReportCache
	c.Put(0, "2025-06-11", "all", analytics.Dashboard{})
	c.Invalidate()
	_, ok := c.Get("2025-06-11", "all")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), c.Version())
}

func TestReportCache_ConcurrentAccess(t *testing.T) {
	c := NewReportCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i%2 == 0 {
					c.Put(c.Version(), "2025-06-11", "all", analytics.Dashboard{})
					c.Get("2025-06-11", "all")
				} else {
					c.Invalidate()
				}
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, uint64(200), c.Version())
}
