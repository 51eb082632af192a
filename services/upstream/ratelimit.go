package upstream

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitSnapshot is the last rate-limit telemetry observed on an upstream
// response. Purely observational; it never gates request issuance.
type RateLimitSnapshot struct {
	Remaining   int           `json:"remaining"`
	ResetWindow time.Duration `json:"resetWindow"`
	LastCost    int           `json:"lastCost"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// RateLimitTracker holds the snapshot for one client instance. It is injected
// into the Client rather than kept process-global so tests and multi-tenant
// deployments get isolated copies.
type RateLimitTracker struct {
	mu   sync.Mutex
	snap RateLimitSnapshot
}

// NewRateLimitTracker returns an empty tracker.
func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{}
}

// Observe updates the snapshot from response headers. Absent headers leave
// the snapshot untouched and never fail the call.
func (t *RateLimitTracker) Observe(h http.Header) {
	remaining := h.Get("X-RateLimit-Remaining")
	if remaining == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if v, err := strconv.Atoi(remaining); err == nil {
		t.snap.Remaining = v
	}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Reset")); err == nil {
		t.snap.ResetWindow = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Cost")); err == nil {
		t.snap.LastCost = v
	}
	t.snap.UpdatedAt = time.Now()
}

// Snapshot returns a copy of the current telemetry.
func (t *RateLimitTracker) Snapshot() RateLimitSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}
