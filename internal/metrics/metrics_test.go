package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.Generated("Gains sharply", 100)
	r.Generated("Declines sharply", 100)
	r.Generated("Gains sharply", 1)
	r.Dropped(5)
	r.Dropped(0)
	r.Succeeded(1500*time.Millisecond, time.Unix(1700000000, 0))

	assert.Equal(t, 101.0, testutil.ToFloat64(r.generated.WithLabelValues("Gains sharply")))
	assert.Equal(t, 100.0, testutil.ToFloat64(r.generated.WithLabelValues("Declines sharply")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.dropped))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.duration))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.lastSuccess))

	count, err := testutil.GatherAndCount(r.Registry(), "pricenews_records_generated_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Generated("Up", 3)
	r.Succeeded(time.Second, time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "pricenews.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `
# HELP pricenews_records_generated_total Records written to the dataset, by category
# TYPE pricenews_records_generated_total counter
pricenews_records_generated_total{category="Up"} 3
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected), "pricenews_records_generated_total"))
	assert.Contains(t, string(data), `pricenews_records_generated_total{category="Up"} 3`)
	assert.Contains(t, string(data), "pricenews_last_success_timestamp_seconds 1.7e+09")
}
