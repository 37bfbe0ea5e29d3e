package simulator

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themepark/ticketing/internal/api"
	"themepark/ticketing/internal/api/handler/counter"
	"themepark/ticketing/internal/config"
	"themepark/ticketing/internal/domain"
	"themepark/ticketing/internal/service/ticketing"
)

func TestSimulator_Run(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := ticketing.NewTicketingService(logger, nil, ticketing.Options{})
	server := api.New(config.TestEnv, logger)
	server.SetupAPIRoutes(counter.New(svc, nil), nil)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	sim := NewSimulator(Options{
		ServerURL:  ts.URL,
		TargetRPS:  50,
		Duration:   400 * time.Millisecond,
		CycleEvery: 3,
	}, logger)

	report := sim.Run(context.Background())

	require.Positive(t, report.Registered)
	assert.Zero(t, report.Failed)
	assert.Positive(t, report.Cycles)
	assert.GreaterOrEqual(t, report.Total, report.Registered+report.Cycles)

	snapshot := svc.Snapshot()
	queued := 0
	for _, c := range domain.Counters {
		queued += len(snapshot.Queues[c])
	}
	assert.Equal(t, int(report.Registered), queued+len(snapshot.Completed))
	assert.Equal(t, int(report.Paid), len(snapshot.Completed))
}

func TestSimulator_UnreachableServer(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	sim := NewSimulator(Options{ServerURL: url, TargetRPS: 20, Duration: 200 * time.Millisecond}, logger)
	report := sim.Run(context.Background())

	assert.Zero(t, report.Registered)
	assert.Equal(t, report.Total, report.Failed)
}
