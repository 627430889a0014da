package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	FetchesServed     int64
	CacheHits         int64
	BranchesFetched   int64
	BranchFailures    int64
	ArticlesReturned  int64
	TranslatedChunks  int64
	FailedChunks      int64
	FallbackRuns      int64
	BaselineEscalated int64

	// Timings
	LastFetchTime    time.Duration
	TotalFetchTime   time.Duration
	AverageFetchTime time.Duration
	FetchCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFetchesServed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchesServed++
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementBranchesFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BranchesFetched++
}

func (m *Metrics) IncrementBranchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BranchFailures++
}

func (m *Metrics) AddArticlesReturned(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesReturned += int64(n)
}

func (m *Metrics) IncrementTranslatedChunks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslatedChunks++
}

func (m *Metrics) IncrementFailedChunks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailedChunks++
}

func (m *Metrics) IncrementFallbackRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FallbackRuns++
}

func (m *Metrics) IncrementBaselineEscalated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BaselineEscalated++
}

func (m *Metrics) RecordFetchTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastFetchTime = duration
	m.TotalFetchTime += duration
	m.FetchCount++

	if m.FetchCount > 0 {
		m.AverageFetchTime = m.TotalFetchTime / time.Duration(m.FetchCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"fetches_served":        m.FetchesServed,
		"cache_hits":            m.CacheHits,
		"branches_fetched":      m.BranchesFetched,
		"branch_failures":       m.BranchFailures,
		"articles_returned":     m.ArticlesReturned,
		"translated_chunks":     m.TranslatedChunks,
		"failed_chunks":         m.FailedChunks,
		"fallback_runs":         m.FallbackRuns,
		"baseline_escalated":    m.BaselineEscalated,
		"last_fetch_time_ms":    m.LastFetchTime.Milliseconds(),
		"average_fetch_time_ms": m.AverageFetchTime.Milliseconds(),
		"last_run_time":         m.LastRunTime.Format(time.RFC3339),
		"last_error_time":       m.LastErrorTime.Format(time.RFC3339),
		"last_error":            m.LastError,
		"is_healthy":            m.IsHealthy,
	}
}
