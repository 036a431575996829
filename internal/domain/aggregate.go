package domain

import "time"

// UserAggregate is the accumulated per-user state produced by the
// aggregation engine. Rank is a derived projection and is never stored here.
type UserAggregate struct {
	UserID           string    `json:"user_id"`
	Username         string    `json:"username,omitempty"`
	Region           string    `json:"region"`
	TotalPoints      int       `json:"total_points"`
	WeeklyPoints     int       `json:"weekly_points"`
	ActivityCount    int       `json:"activity_count"`
	TrashCollectedKg float64   `json:"trash_collected_kg"`
	TreesPlanted     int       `json:"trees_planted"`
	CO2SavedKg       float64   `json:"co2_saved_kg"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserDelta is the per-user increment produced by scoring one activity.
// The persistence layer applies it atomically.
type UserDelta struct {
	UserID           string  `json:"user_id"`
	Points           int     `json:"points"`
	Activities       int     `json:"activities"`
	TrashCollectedKg float64 `json:"trash_collected_kg"`
	TreesPlanted     int     `json:"trees_planted"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
}

// RegionDelta is the per-region increment produced by scoring one activity.
type RegionDelta struct {
	Region           string  `json:"region"`
	Points           int     `json:"points"`
	Activities       int     `json:"activities"`
	TrashCollectedKg float64 `json:"trash_collected_kg"`
	TreesPlanted     int     `json:"trees_planted"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
}
