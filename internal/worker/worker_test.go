package worker

import (
	"context"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themepark/ticketing/internal/domain"
)

type memorySink struct {
	mu      sync.Mutex
	name    string
	err     error
	batches [][]domain.PaymentEvent
}

func (m *memorySink) Name() string { return m.name }

func (m *memorySink) Record(_ context.Context, events []domain.PaymentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.batches = append(m.batches, append([]domain.PaymentEvent(nil), events...))
	return nil
}

func (m *memorySink) customerIDs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, 0)
	for _, batch := range m.batches {
		for _, e := range batch {
			out = append(out, e.CustomerID)
		}
	}
	sort.Ints(out)
	return out
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRecorder_FlushesOnStop(t *testing.T) {
	sink := &memorySink{name: "memory"}
	r := NewRecorder(quietLogger(), Options{Workers: 2, BatchSize: 2, FlushInterval: time.Hour}, sink)
	r.Start()

	for i := 1; i <= 5; i++ {
		r.Submit(domain.PaymentEvent{CustomerID: i})
	}
	r.Stop()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, sink.customerIDs())
}

func TestRecorder_FlushesOnTick(t *testing.T) {
	sink := &memorySink{name: "memory"}
	r := NewRecorder(quietLogger(), Options{BatchSize: 100, FlushInterval: 10 * time.Millisecond}, sink)
	r.Start()
	t.Cleanup(r.Stop)

	r.Submit(domain.PaymentEvent{CustomerID: 9})

	require.Eventually(t, func() bool {
		return len(sink.customerIDs()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecorder_FullBufferWritesDirectly(t *testing.T) {
	sink := &memorySink{name: "memory"}
	r := NewRecorder(quietLogger(), Options{Buffer: 1, FlushInterval: time.Hour}, sink)

	// not started: only the first event fits in the buffer
	for i := 1; i <= 3; i++ {
		r.Submit(domain.PaymentEvent{CustomerID: i})
	}

	r.Start()
	r.Stop()
	assert.Equal(t, []int{1, 2, 3}, sink.customerIDs())
}

func TestRecorder_FailingSinkDoesNotStarveOthers(t *testing.T) {
	broken := &memorySink{name: "broken", err: errors.New("down")}
	healthy := &memorySink{name: "healthy"}
	r := NewRecorder(quietLogger(), Options{FlushInterval: time.Hour}, broken, healthy)
	r.Start()

	r.Submit(domain.PaymentEvent{CustomerID: 1})
	r.Stop()

	assert.Equal(t, []int{1}, healthy.customerIDs())
	assert.Empty(t, broken.customerIDs())
}

func TestRecorder_ManyWritersDrainOnStop(t *testing.T) {
	for round := 0; round < 50; round++ {
		sink := &memorySink{name: "memory"}
		r := NewRecorder(quietLogger(), Options{Workers: 8, Buffer: 64, BatchSize: 3, FlushInterval: time.Hour}, sink)

		want := make([]int, 0, 40)
		for i := 1; i <= 40; i++ {
			r.Submit(domain.PaymentEvent{CustomerID: i})
			want = append(want, i)
		}

		r.Start()
		done := make(chan struct{})
		go func() {
			r.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("round %d: Stop did not return", round)
		}
		require.Equal(t, want, sink.customerIDs(), "round %d", round)
	}
}

func TestRecorder_SubmitRacingStop(t *testing.T) {
	sink := &memorySink{name: "memory"}
	r := NewRecorder(quietLogger(), Options{Workers: 4, Buffer: 16, BatchSize: 5, FlushInterval: time.Hour}, sink)
	r.Start()

	const submitters, perSubmitter = 8, 25
	var wg sync.WaitGroup
	for s := 0; s < submitters; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			for i := 0; i < perSubmitter; i++ {
				r.Submit(domain.PaymentEvent{CustomerID: s*perSubmitter + i})
			}
		}(s)
	}

	r.Stop()
	wg.Wait()

	want := make([]int, 0, submitters*perSubmitter)
	for i := 0; i < submitters*perSubmitter; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, sink.customerIDs())
}

func TestRecorder_SubmitAfterStop(t *testing.T) {
	sink := &memorySink{name: "memory"}
	r := NewRecorder(quietLogger(), Options{}, sink)
	r.Start()
	r.Stop()
	r.Stop()

	r.Submit(domain.PaymentEvent{CustomerID: 4})
	assert.Equal(t, []int{4}, sink.customerIDs())
}
