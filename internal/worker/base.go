package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

// Sink stores or forwards settled payments.
type Sink interface {
	Name() string
	Record(ctx context.Context, events []domain.PaymentEvent) error
}

type Options struct {
	Workers       int
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration
}

// Recorder moves settled payments off the ledger's path. Batch writers drain a
// buffered channel and hand each batch to every sink.
type Recorder struct {
	sinks   []Sink
	pending chan domain.PaymentEvent
	logger  *logrus.Logger
	opts    Options

	// mu orders Submit against Stop: no send reaches pending once stopped is set
	mu      sync.RWMutex
	stopCh  chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

func NewRecorder(logger *logrus.Logger, opts Options, sinks ...Sink) *Recorder {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Buffer <= 0 {
		opts.Buffer = constant.RecorderBufSize
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = constant.RecorderBatchSize
	}
	if opts.FlushInterval <= 0 {
		opts.FlushInterval = constant.RecorderFlushInterval
	}

	return &Recorder{
		sinks:   sinks,
		pending: make(chan domain.PaymentEvent, opts.Buffer),
		logger:  logger,
		opts:    opts,
		stopCh:  make(chan struct{}),
	}
}
