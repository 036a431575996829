package worker

import (
	"context"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/aggregation"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/logger"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/metrics"
)

// RecomputeJob rebuilds every aggregate from the activity log. Scheduled at
// a fixed interval: incremental updates keep aggregates current, and the
// periodic rebuild reconciles any drift left by partial failures.
type RecomputeJob struct {
	aggregationService aggregation.Service
}

func NewRecomputeJob(aggregationService aggregation.Service) *RecomputeJob {
	return &RecomputeJob{aggregationService: aggregationService}
}

func (j *RecomputeJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRecomputeStarting)

	weekStart := aggregation.CurrentWeekStart(time.Now().UTC())
	if err := j.aggregationService.RecomputeAll(ctx, weekStart); err != nil {
		return err
	}

	metrics.RecomputeRuns.Inc()
	log.Info(LogMsgRecomputeCompleted, "week_start", weekStart)
	return nil
}
