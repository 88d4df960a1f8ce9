package report

import "sync"

// memoCache memoizes assembled reports by session fingerprint. It is
// append-only: the first writer for a key wins and later writes for the same
// key are discarded, so two callers racing on the same session agree on one
// report.
type memoCache struct {
	mu      sync.Mutex
	reports map[string]*Report
}

func newMemoCache() *memoCache {
	return &memoCache{reports: make(map[string]*Report)}
}

func (c *memoCache) get(key string) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.reports[key]
	return r, ok
}

// putIfAbsent stores r under key unless a report already exists. It returns
// the report that is now cached and whether r was the one stored.
func (c *memoCache) putIfAbsent(key string, r *Report) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.reports[key]; ok {
		return existing, false
	}
	c.reports[key] = r
	return r, true
}

func (c *memoCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}
