package worker

import (
	"context"
	"time"

	"themepark/ticketing/internal/domain"
)

// batchWriter executes in its own goroutine and flushes when a batch is full,
// on every tick, and once more on stop.
func (r *Recorder) batchWriter(workerID int) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.opts.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.PaymentEvent, 0, r.opts.BatchSize)

	r.logger.Debugf("payment recorder %d started", workerID)

	for {
		select {
		case <-r.stopCh:
			r.drain(batch, workerID)
			r.logger.Debugf("payment recorder %d stopped", workerID)
			return

		case event := <-r.pending:
			batch = append(batch, event)
			if len(batch) >= r.opts.BatchSize {
				r.flush(batch, workerID)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				r.flush(batch, workerID)
				batch = batch[:0]
			}
		}
	}
}

// drain empties pending without blocking; other writers may be draining too.
func (r *Recorder) drain(batch []domain.PaymentEvent, workerID int) {
	for {
		select {
		case event := <-r.pending:
			batch = append(batch, event)
			if len(batch) >= r.opts.BatchSize {
				r.flush(batch, workerID)
				batch = batch[:0]
			}
		default:
			r.flush(batch, workerID)
			return
		}
	}
}

func (r *Recorder) flush(batch []domain.PaymentEvent, workerID int) {
	if len(batch) == 0 {
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, sink := range r.sinks {
		if err := sink.Record(ctx, batch); err != nil {
			r.logger.Errorf("payment recorder %d: %s sink failed for %d payments: %v", workerID, sink.Name(), len(batch), err)
			continue
		}
	}

	r.logger.Debugf("payment recorder %d: flushed %d payments in %s", workerID, len(batch), time.Since(start))
}
