package worker

import (
	"themepark/ticketing/internal/domain"
)

func (r *Recorder) Start() {
	for i := 0; i < r.opts.Workers; i++ {
		r.wg.Add(1)
		go r.batchWriter(i)
	}
	r.logger.Infof("payment recorder: started %d workers", r.opts.Workers)
}

// Stop flushes everything still buffered and waits for the writers.
func (r *Recorder) Stop() {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		close(r.stopCh)
	}
	r.mu.Unlock()

	r.wg.Wait()
	r.logger.Info("payment recorder: all workers stopped")
}

// Submit never blocks the caller. When the buffer is full, or the recorder was
// stopped, the event is written on its own.
func (r *Recorder) Submit(event domain.PaymentEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		r.flush([]domain.PaymentEvent{event}, -1)
		return
	}

	select {
	case r.pending <- event:
	default:
		r.logger.Warnf("payment recorder queue full, writing payment of customer %d directly", event.CustomerID)
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			r.flush([]domain.PaymentEvent{event}, -1)
		}()
	}
}
