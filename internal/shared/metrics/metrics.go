package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	resumeParseTotal     atomic.Uint64
	resumeParseFailed    atomic.Uint64
	resumeParseCacheHits atomic.Uint64
	jobsRecommendTotal   atomic.Uint64
	jobsRecommendFailed  atomic.Uint64

	extractDuration = newHistogram([]float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000})
)

// IncResumeParse counts a parse request that reached extraction.
func IncResumeParse() {
	resumeParseTotal.Add(1)
}

// IncResumeParseFailed counts a parse request that failed extraction.
func IncResumeParseFailed() {
	resumeParseFailed.Add(1)
}

// IncResumeParseCacheHit counts a parse served from the result cache.
func IncResumeParseCacheHit() {
	resumeParseCacheHits.Add(1)
}

// IncJobsRecommend counts a scored recommendation request.
func IncJobsRecommend() {
	jobsRecommendTotal.Add(1)
}

// IncJobsRecommendFailed counts a rejected recommendation request.
func IncJobsRecommendFailed() {
	jobsRecommendFailed.Add(1)
}

// ObserveExtractDurationMs records a text extraction duration in milliseconds.
func ObserveExtractDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	extractDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_parse_total", "Total resume parse requests", resumeParseTotal.Load())
	writeCounter(&buf, "resume_parse_failed_total", "Total resume parse failures", resumeParseFailed.Load())
	writeCounter(&buf, "resume_parse_cache_hits_total", "Total resume parses served from cache", resumeParseCacheHits.Load())
	writeCounter(&buf, "jobs_recommend_total", "Total job recommendation requests", jobsRecommendTotal.Load())
	writeCounter(&buf, "jobs_recommend_failed_total", "Total rejected job recommendation requests", jobsRecommendFailed.Load())
	writeHistogram(&buf, "resume_extract_duration_ms", "PDF text extraction duration in milliseconds", extractDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
