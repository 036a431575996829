package aggregation

import (
	"sort"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// rankUsers orders users descending by the chosen metric and assigns 1-based
// ranks. Ties never share a rank number: they are broken by earliest account
// creation, then by user ID ascending, so repeated computation over the same
// population always yields the same ordering.
func rankUsers(users []domain.UserAggregate, metric domain.LeaderboardMetric) []domain.LeaderboardEntry {
	sorted := make([]domain.UserAggregate, len(users))
	copy(sorted, users)

	sort.Slice(sorted, func(i, j int) bool {
		mi, mj := metricValue(sorted[i], metric), metricValue(sorted[j], metric)
		if mi != mj {
			return mi > mj
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	entries := make([]domain.LeaderboardEntry, len(sorted))
	for i, u := range sorted {
		entries[i] = domain.LeaderboardEntry{
			Rank:         i + 1,
			UserID:       u.UserID,
			Username:     u.Username,
			Region:       u.Region,
			TotalPoints:  u.TotalPoints,
			WeeklyPoints: u.WeeklyPoints,
			ImpactStats: domain.ImpactStats{
				TrashCollectedKg: u.TrashCollectedKg,
				TreesPlanted:     u.TreesPlanted,
				CO2SavedKg:       u.CO2SavedKg,
			},
		}
	}
	return entries
}

func metricValue(u domain.UserAggregate, metric domain.LeaderboardMetric) int {
	if metric == domain.MetricWeeklyPoints {
		return u.WeeklyPoints
	}
	return u.TotalPoints
}

// rankRegions orders region rollups descending by total points with region
// name as the deterministic tie-break, and returns the 1-based rank of the
// named region.
func rankRegions(aggregates []domain.RegionAggregate, name string) int {
	sorted := make([]domain.RegionAggregate, len(aggregates))
	copy(sorted, aggregates)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].Region < sorted[j].Region
	})

	for i, r := range sorted {
		if r.Region == name {
			return i + 1
		}
	}
	return 0
}
