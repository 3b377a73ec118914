package metrics

import (
	"sync"
	"time"
)

type contentStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to the
// OpenTelemetry instruments when telemetry is enabled. It is intentionally
// simple so tests can assert against it directly.
type Recorder struct {
	mu           sync.Mutex
	content      map[string]*contentStats
	celebrations map[string]int
	mutations    map[string]int
	clients      int
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		content:      make(map[string]*contentStats),
		celebrations: make(map[string]int),
		mutations:    make(map[string]int),
		otel:         otel,
	}
}

// RecordContentFetch increments counters for a content provider call and
// stores the last observed latency.
func (r *Recorder) RecordContentFetch(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.content[provider]
	if !ok {
		stats = &contentStats{}
		r.content[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordContentFetch(provider, duration, err)
	}
}

// RecordCelebration counts a dispatched celebration by kind.
func (r *Recorder) RecordCelebration(kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.celebrations[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCelebration(kind)
	}
}

// RecordScoreMutation counts an applied score mutation; scope is "team" or
// "player".
func (r *Recorder) RecordScoreMutation(scope string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.mutations[scope]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScoreMutation(scope)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ClientConnected/ClientDisconnected track the connected display count.
func (r *Recorder) ClientConnected() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.clients++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordClientDelta(1)
	}
}

func (r *Recorder) ClientDisconnected() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.clients--
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordClientDelta(-1)
	}
}

// ContentCalls returns the total attempts recorded for a content provider.
func (r *Recorder) ContentCalls(provider string) int {
	return r.contentSnapshot(provider).calls
}

// ContentErrors returns the total failed attempts for a content provider.
func (r *Recorder) ContentErrors(provider string) int {
	return r.contentSnapshot(provider).errors
}

// LastContentLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastContentLatency(provider string) time.Duration {
	return r.contentSnapshot(provider).lastCallLatency
}

// Celebrations returns the count recorded for a celebration kind.
func (r *Recorder) Celebrations(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.celebrations[kind]
}

// ScoreMutations returns the count recorded for a mutation scope.
func (r *Recorder) ScoreMutations(scope string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations[scope]
}

// ConnectedClients returns the current display client count.
func (r *Recorder) ConnectedClients() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clients
}

func (r *Recorder) contentSnapshot(provider string) contentStats {
	if r == nil {
		return contentStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.content[provider]; ok && stats != nil {
		return *stats
	}
	return contentStats{}
}
