package simulator

import (
	"math/rand"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	ServerURL string
	TargetRPS int
	Duration  time.Duration
	// CycleEvery triggers a payment cycle after this many registrations.
	CycleEvery int
	// ReplayRatio is the share of registrations sent twice with the same
	// Idempotency-Key.
	ReplayRatio float64
}

type Stats struct {
	totalRequests  atomic.Int64
	registered     atomic.Int64
	replayed       atomic.Int64
	cycles         atomic.Int64
	paid           atomic.Int64
	failedRequests atomic.Int64
	totalLatency   atomic.Int64
	minLatency     atomic.Int64
	maxLatency     atomic.Int64
}

type Report struct {
	Duration     time.Duration
	Total        int64
	Registered   int64
	Replayed     int64
	Cycles       int64
	Paid         int64
	Failed       int64
	AvgLatencyMs int64
	MinLatencyMs int64
	MaxLatencyMs int64
}

// Simulator drives a running server with a steady stream of registrations and
// periodic payment cycles.
type Simulator struct {
	opts       Options
	stats      Stats
	httpClient *http.Client
	names      []string
	rnd        *rand.Rand
	logger     *logrus.Logger
}

var firstNames = []string{
	"Alice", "Bob", "Cara", "Dan", "Eve", "Finn", "Gus", "Hana",
	"Ivan", "Jade", "Kai", "Lena", "Milo", "Nora", "Omar", "Pia",
}

func NewSimulator(opts Options, logger *logrus.Logger) *Simulator {
	if opts.TargetRPS <= 0 {
		opts.TargetRPS = 10
	}
	if opts.CycleEvery <= 0 {
		opts.CycleEvery = 10
	}

	return &Simulator{
		opts: opts,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		names:  firstNames,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}
