package server

import (
	"sync"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
)

// reportCache memoizes derived reports for a single snapshot version. Storing
// under a new version drops everything cached for the previous one.
type reportCache struct {
	mu      sync.Mutex
	version string
	entries map[string]report.Report
}

func newReportCache() *reportCache {
	return &reportCache{entries: make(map[string]report.Report)}
}

func (c *reportCache) get(version, key string) (report.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		return report.Report{}, false
	}
	r, ok := c.entries[key]
	return r, ok
}

func (c *reportCache) put(version, key string, r report.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		c.version = version
		c.entries = make(map[string]report.Report)
	}
	c.entries[key] = r
}

func (c *reportCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
