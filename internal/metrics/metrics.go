// Package metrics exposes Prometheus collectors for the HTTP layer and the
// scoring and aggregation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	ActivitiesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesScored,
			Help: HelpTextActivitiesScored,
		},
		[]string{LabelActivityType, LabelOutcome},
	)

	ActivitiesAggregated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesAggregated,
			Help: HelpTextActivitiesAggregated,
		},
		[]string{LabelActivityType},
	)

	PointsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
		[]string{LabelActivityType},
	)

	LeaderboardQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardQueries,
			Help: HelpTextLeaderboardQueries,
		},
		[]string{LabelScope, LabelMetric},
	)

	RecomputeRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecomputeRuns,
			Help: HelpTextRecomputeRuns,
		},
	)

	WeeklyResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeeklyResets,
			Help: HelpTextWeeklyResets,
		},
	)

	ChallengeJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengeJoins,
			Help: HelpTextChallengeJoins,
		},
		[]string{LabelActivityType},
	)

	ChallengeCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengeCompletions,
			Help: HelpTextChallengeCompletions,
		},
		[]string{LabelActivityType},
	)
)
