package metrics

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHistogram(t *testing.T, rendered, name string) (buckets []uint64, inf, count uint64) {
	t.Helper()
	for _, line := range strings.Split(rendered, "\n") {
		switch {
		case strings.HasPrefix(line, name+"_bucket{le=\"+Inf\"} "):
			v, err := strconv.ParseUint(strings.Fields(line)[1], 10, 64)
			require.NoError(t, err)
			inf = v
		case strings.HasPrefix(line, name+"_bucket{"):
			v, err := strconv.ParseUint(strings.Fields(line)[1], 10, 64)
			require.NoError(t, err)
			buckets = append(buckets, v)
		case strings.HasPrefix(line, name+"_count "):
			v, err := strconv.ParseUint(strings.Fields(line)[1], 10, 64)
			require.NoError(t, err)
			count = v
		}
	}
	return buckets, inf, count
}

func TestHistogramBucketsAreCumulativeAndBounded(t *testing.T) {
	for _, v := range []float64{90, 300, 300, 1500, 70000} {
		ObserveAnalysisDurationMs(v)
	}

	buckets, inf, count := parseHistogram(t, Render(), "analysis_duration_ms")
	require.NotEmpty(t, buckets)
	assert.Equal(t, count, inf, "+Inf bucket must equal _count")

	var prev uint64
	for i, b := range buckets {
		assert.GreaterOrEqual(t, b, prev, "bucket %d must be non-decreasing", i)
		assert.LessOrEqual(t, b, inf, "bucket %d must not exceed +Inf", i)
		prev = b
	}
	assert.Equal(t, uint64(5), count, "every observation counted once")
}

func TestHistogramSingleObservationLandsInOneBucket(t *testing.T) {
	h := newHistogram([]float64{100, 250, 500, 1000})
	h.Observe(300)

	snap := h.Snapshot()
	var total uint64
	for _, c := range snap.counts {
		total += c
	}
	assert.Equal(t, uint64(1), total, "one observation must tally exactly one bucket")
	assert.Equal(t, uint64(1), snap.counts[2], "300 falls in the le=500 bucket")
	assert.Equal(t, uint64(1), snap.count)
}

func TestHistogramObservationAboveLargestBucket(t *testing.T) {
	h := newHistogram([]float64{100, 250})
	h.Observe(9000)

	snap := h.Snapshot()
	for i, c := range snap.counts {
		assert.Zero(t, c, "bucket %d must stay empty", i)
	}
	assert.Equal(t, uint64(1), snap.count, "only +Inf carries the overflow observation")
}
