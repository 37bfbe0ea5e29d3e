package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"themepark/ticketing/internal/constant"
	"themepark/ticketing/internal/domain"
)

type registerBody struct {
	Name    string `json:"name"`
	Tickets int    `json:"tickets"`
}

type cycleBody struct {
	Fallback string `json:"fallback"`
}

type cycleEnvelope struct {
	Data domain.CycleResult `json:"data"`
}

// Run sends requests at the target rate until the duration elapses or ctx is
// cancelled, then waits for in-flight requests and returns the report.
func (s *Simulator) Run(ctx context.Context) Report {
	s.logger.Infof("simulator: %d rps against %s for %s", s.opts.TargetRPS, s.opts.ServerURL, s.opts.Duration)

	// min latency starts at max value
	s.stats.minLatency.Store(int64(^uint64(0) >> 1))

	ticker := time.NewTicker(time.Second / time.Duration(s.opts.TargetRPS))
	defer ticker.Stop()

	testCtx, cancel := context.WithTimeout(ctx, s.opts.Duration)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.printStats(testCtx)
	}()

	startTime := time.Now()
	var requestWg sync.WaitGroup
	requestCount := 0

	for {
		select {
		case <-testCtx.Done():
			requestWg.Wait()
			wg.Wait()

			report := s.report(time.Since(startTime))
			s.printFinalReport(report)
			return report

		case <-ticker.C:
			requestCount++
			body := registerBody{
				Name:    s.names[s.rnd.Intn(len(s.names))],
				Tickets: s.rnd.Intn(8) + 1,
			}
			replay := s.rnd.Float64() < s.opts.ReplayRatio
			cycle := requestCount%s.opts.CycleEvery == 0

			// in-flight requests finish on ctx, not on the test deadline
			requestWg.Add(1)
			go func() {
				defer requestWg.Done()
				if err := s.register(ctx, body, replay); err != nil {
					s.logger.Debug(err)
				}
				if cycle {
					if err := s.processCycle(ctx); err != nil {
						s.logger.Debug(err)
					}
				}
			}()
		}
	}
}

func (s *Simulator) register(ctx context.Context, body registerBody, replay bool) error {
	key := uuid.NewString()

	sends := 1
	if replay {
		sends = 2
	}
	for i := 0; i < sends; i++ {
		resp, err := s.post(ctx, "/v1/customers", body, key)
		if err != nil {
			return err
		}
		if resp.Header.Get(constant.ReplayedHeader) != "" {
			s.stats.replayed.Add(1)
		} else if resp.StatusCode == http.StatusCreated {
			s.stats.registered.Add(1)
		}
	}

	return nil
}

func (s *Simulator) processCycle(ctx context.Context) error {
	resp, err := s.post(ctx, "/v1/payments/cycles", cycleBody{Fallback: "exact"}, "")
	if err != nil {
		return err
	}

	var envelope cycleEnvelope
	if err := json.Unmarshal(resp.body, &envelope); err != nil {
		return errors.Wrap(err, "simulator: failed to decode cycle result")
	}
	s.stats.cycles.Add(1)
	s.stats.paid.Add(int64(envelope.Data.Paid))

	return nil
}

type response struct {
	StatusCode int
	Header     http.Header
	body       []byte
}

func (s *Simulator) post(ctx context.Context, path string, body interface{}, key string) (*response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "simulator: marshal error")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.ServerURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, errors.Wrap(err, "simulator: create request error")
	}
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(constant.IdempotencyHeader, key)
	}

	s.stats.totalRequests.Add(1)
	start := time.Now()
	resp, err := s.httpClient.Do(req)
	s.observe(time.Since(start).Milliseconds())
	if err != nil {
		s.stats.failedRequests.Add(1)
		return nil, errors.Wrap(err, "simulator: request error")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		s.stats.failedRequests.Add(1)
		return nil, errors.Wrap(err, "simulator: read error")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		s.stats.failedRequests.Add(1)
		return nil, errors.Errorf("simulator: %s returned %d", path, resp.StatusCode)
	}

	return &response{StatusCode: resp.StatusCode, Header: resp.Header, body: raw}, nil
}

func (s *Simulator) observe(latency int64) {
	s.stats.totalLatency.Add(latency)

	for {
		currentMin := s.stats.minLatency.Load()
		if latency >= currentMin || s.stats.minLatency.CompareAndSwap(currentMin, latency) {
			break
		}
	}
	for {
		currentMax := s.stats.maxLatency.Load()
		if latency <= currentMax || s.stats.maxLatency.CompareAndSwap(currentMax, latency) {
			break
		}
	}
}
