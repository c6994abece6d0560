package logkit_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JailtonJunior94/logkit-go/pkg/logkit"
	"github.com/JailtonJunior94/logkit-go/pkg/logkit/fake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestLogger_EmissionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	cfg := logkit.DefaultConfig()
	cfg.ServiceName = "svc"

	logger, err := logkit.New(cfg,
		logkit.WithSink(fake.NewSink()),
		logkit.WithClock(func() time.Time { return testTime }),
		logkit.WithMetrics(reg),
	)
	require.NoError(t, err)

	valid := logkit.Metadata{TraceID: "t-1", Stack: logkit.StackNode}

	require.NoError(t, logger.Info(context.Background(), "emitted", valid))
	require.NoError(t, logger.Debug(context.Background(), "dropped", valid))
	require.Error(t, logger.Info(context.Background(), "rejected", logkit.Metadata{}))

	emitted := `
# HELP logkit_records_emitted_total The total number of records written to the sink
# TYPE logkit_records_emitted_total counter
logkit_records_emitted_total{level="info"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(emitted),
		"logkit_records_emitted_total"))

	dropped := `
# HELP logkit_records_dropped_total The total number of calls dropped by the level threshold
# TYPE logkit_records_dropped_total counter
logkit_records_dropped_total{level="debug"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(dropped),
		"logkit_records_dropped_total"))

	failures := `
# HELP logkit_failures_total The total number of failed log calls by failure kind
# TYPE logkit_failures_total counter
logkit_failures_total{kind="contract"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(failures),
		"logkit_failures_total"))
}

func TestLogger_MetricsOptional(t *testing.T) {
	sink := fake.NewSink()
	logger := newTestLogger(t, structuredConfig(), sink)

	// No registerer attached: logging must work with counters disabled.
	require.NoError(t, logger.Info(context.Background(), "quiet", logkit.Metadata{
		TraceID: "t-1",
		Stack:   logkit.StackNode,
	}))
	require.Len(t, sink.Lines(), 1)
}
