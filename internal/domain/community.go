package domain

// LeaderboardScope selects the population a leaderboard is computed over.
type LeaderboardScope string

const (
	ScopeGlobal   LeaderboardScope = "global"
	ScopeRegional LeaderboardScope = "regional"
)

// Valid reports whether s is a recognized leaderboard scope.
func (s LeaderboardScope) Valid() bool {
	return s == ScopeGlobal || s == ScopeRegional
}

// LeaderboardMetric selects the points column users are ranked by.
type LeaderboardMetric string

const (
	MetricTotalPoints  LeaderboardMetric = "total_points"
	MetricWeeklyPoints LeaderboardMetric = "weekly_points"
)

// Valid reports whether m is a recognized leaderboard metric.
func (m LeaderboardMetric) Valid() bool {
	return m == MetricTotalPoints || m == MetricWeeklyPoints
}

// ImpactStats summarizes cumulative environmental impact.
type ImpactStats struct {
	TrashCollectedKg float64 `json:"trash_collected"`
	TreesPlanted     int     `json:"trees_planted"`
	CO2SavedKg       float64 `json:"co2_saved"`
}

// LeaderboardEntry is one row of a community leaderboard. Entries are an
// ephemeral projection, recomputed on demand and never persisted.
type LeaderboardEntry struct {
	Rank         int         `json:"rank"`
	UserID       string      `json:"user_id"`
	Username     string      `json:"username,omitempty"`
	Region       string      `json:"region,omitempty"`
	TotalPoints  int         `json:"total_points"`
	WeeklyPoints int         `json:"weekly_points"`
	ImpactStats  ImpactStats `json:"impact_stats"`
}

// GlobalStats is the community-wide statistics snapshot.
type GlobalStats struct {
	TotalUsers       int                  `json:"total_users"`
	ActiveUsers      int                  `json:"active_users"`
	TotalPoints      int                  `json:"total_points"`
	TotalActivities  int                  `json:"total_activities"`
	ActivitiesByType map[ActivityType]int `json:"activities_by_type"`
	TopRegion        string               `json:"top_region,omitempty"`
	ImpactStats      ImpactStats          `json:"impact_stats"`
}

// RegionStats is the statistics snapshot for a single region, including its
// rank among all regions by total points.
type RegionStats struct {
	Rank            int         `json:"rank"`
	Region          string      `json:"region"`
	TotalUsers      int         `json:"total_users"`
	TotalPoints     int         `json:"total_points"`
	TotalActivities int         `json:"total_activities"`
	ImpactStats     ImpactStats `json:"impact_stats"`
}
