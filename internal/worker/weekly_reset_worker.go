package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
)

// WeeklyResetWorker zeroes every user's weekly points at the start of each
// week. The aggregation engine never resets weekly points itself; this worker
// owns the schedule.
type WeeklyResetWorker struct {
	aggregationService aggregation.Service
	timer              *time.Timer
	shutdown           chan struct{}
	wg                 sync.WaitGroup
	mu                 sync.Mutex
}

func NewWeeklyResetWorker(aggregationService aggregation.Service) *WeeklyResetWorker {
	return &WeeklyResetWorker{
		aggregationService: aggregationService,
		shutdown:           make(chan struct{}),
	}
}

func (w *WeeklyResetWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.scheduleNext()
	}()
}

func (w *WeeklyResetWorker) scheduleNext() {
	duration := timeUntilNextWeeklyReset()

	w.mu.Lock()
	w.timer = time.AfterFunc(duration, func() {
		w.wg.Add(1)
		go w.executeReset()
	})
	w.mu.Unlock()
}

func (w *WeeklyResetWorker) executeReset() {
	defer w.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)

	log.Info(LogMsgWeeklyResetStarting)

	if err := w.aggregationService.ResetWeeklyPoints(ctx); err != nil {
		log.Error(LogMsgWeeklyResetFailed, "error", err)
	} else {
		metrics.WeeklyResets.Inc()
		log.Info(LogMsgWeeklyResetCompleted)
	}

	// Schedule next reset
	w.scheduleNext()
}

// timeUntilNextWeeklyReset calculates time until next Monday 00:00 UTC
func timeUntilNextWeeklyReset() time.Duration {
	now := time.Now().UTC()

	// Next Monday at 00:00 UTC
	// Monday is day 1 in Go's time.Weekday
	daysUntilMonday := (8 - int(now.Weekday())) % 7
	if daysUntilMonday == 0 {
		// It's Monday already, go to next Monday
		daysUntilMonday = 7
	}

	nextReset := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, time.UTC,
	).AddDate(0, 0, daysUntilMonday)

	duration := nextReset.Sub(now)

	log := logger.FromContext(context.Background())
	log.Info(LogMsgWeeklyResetScheduled,
		"next_reset", nextReset.Format(time.RFC3339),
		"duration", duration.String())

	return duration
}

func (w *WeeklyResetWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
