package simulator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *Simulator) report(duration time.Duration) Report {
	total := s.stats.totalRequests.Load()

	avgLatency := int64(0)
	if total > 0 {
		avgLatency = s.stats.totalLatency.Load() / total
	}
	minLatency := s.stats.minLatency.Load()
	if minLatency == int64(^uint64(0)>>1) {
		minLatency = 0
	}

	return Report{
		Duration:     duration,
		Total:        total,
		Registered:   s.stats.registered.Load(),
		Replayed:     s.stats.replayed.Load(),
		Cycles:       s.stats.cycles.Load(),
		Paid:         s.stats.paid.Load(),
		Failed:       s.stats.failedRequests.Load(),
		AvgLatencyMs: avgLatency,
		MinLatencyMs: minLatency,
		MaxLatencyMs: s.stats.maxLatency.Load(),
	}
}

// printStats logs running totals every two seconds.
func (s *Simulator) printStats(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	lastTotal := int64(0)
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			total := s.stats.totalRequests.Load()
			now := time.Now()
			currentRPS := float64(total-lastTotal) / now.Sub(lastTime).Seconds()
			lastTotal, lastTime = total, now

			s.logger.WithFields(logrus.Fields{
				"total":      total,
				"registered": s.stats.registered.Load(),
				"paid":       s.stats.paid.Load(),
				"failed":     s.stats.failedRequests.Load(),
				"rps":        currentRPS,
			}).Info("simulator progress")
		}
	}
}

func (s *Simulator) printFinalReport(r Report) {
	entry := s.logger.WithFields(logrus.Fields{
		"duration":    r.Duration.Round(time.Millisecond).String(),
		"requests":    r.Total,
		"registered":  r.Registered,
		"replayed":    r.Replayed,
		"cycles":      r.Cycles,
		"paid":        r.Paid,
		"failed":      r.Failed,
		"latency_avg": r.AvgLatencyMs,
		"latency_min": r.MinLatencyMs,
		"latency_max": r.MaxLatencyMs,
	})

	if r.Failed > 0 {
		entry.Warn("simulation finished with failures")
		return
	}
	entry.Info("simulation finished")
}
