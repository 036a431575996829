package domain

import "time"

// ActivityType identifies the category of an environmental activity.
// The set is closed: scoring dispatches exhaustively over these values.
type ActivityType string

const (
	ActivityTrash    ActivityType = "trash"
	ActivityTrees    ActivityType = "trees"
	ActivityMobility ActivityType = "mobility"
	ActivityWater    ActivityType = "water"
	ActivityEnergy   ActivityType = "energy"
)

// ActivityTypes returns all recognized activity types in a stable order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityTrash,
		ActivityTrees,
		ActivityMobility,
		ActivityWater,
		ActivityEnergy,
	}
}

// Valid reports whether t is one of the recognized activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTrash, ActivityTrees, ActivityMobility, ActivityWater, ActivityEnergy:
		return true
	}
	return false
}

// QuantityUnit returns the unit the quantity field is measured in for this type.
func (t ActivityType) QuantityUnit() string {
	switch t {
	case ActivityTrash:
		return "bags"
	case ActivityTrees:
		return "trees"
	case ActivityMobility:
		return "km"
	case ActivityWater:
		return "liters"
	case ActivityEnergy:
		return "kWh"
	}
	return ""
}

// ActivitySubmission represents one logged environmental action before scoring.
// Submissions are immutable once scored.
type ActivitySubmission struct {
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Quantity    float64      `json:"quantity"`
	HasPhoto    bool         `json:"has_photo"`
	HasLocation bool         `json:"has_location"`
	Location    string       `json:"location,omitempty"`
	Region      string       `json:"region"`
	PhotoURLs   []string     `json:"photo_urls,omitempty"`
}

// ImpactMetrics holds the physically-interpreted environmental impact of an
// activity. Only the fields relevant to the activity type are populated.
type ImpactMetrics struct {
	CO2SavedKg float64 `json:"co2_saved_kg"`
	WasteKg    float64 `json:"waste_kg"`
	TreesCount int     `json:"trees_count"`
	DistanceKm float64 `json:"distance_km"`
}

// ScoredActivity is an ActivitySubmission plus its computed points and impact.
type ScoredActivity struct {
	ActivityID string `json:"activity_id,omitempty"`
	ActivitySubmission
	Points    int           `json:"points"`
	Impact    ImpactMetrics `json:"impact"`
	Verified  bool          `json:"verified"`
	CreatedAt time.Time     `json:"created_at"`
}

// UserActivity pairs a scored activity with the user who logged it.
// Used by batch recomputation snapshots.
type UserActivity struct {
	UserID   string         `json:"user_id"`
	Activity ScoredActivity `json:"activity"`
}

// ActivityFilter describes optional filters for activity list queries.
type ActivityFilter struct {
	Type         ActivityType `json:"type,omitempty"`
	Region       string       `json:"region,omitempty"`
	UserID       string       `json:"user_id,omitempty"`
	VerifiedOnly bool         `json:"verified_only,omitempty"`
	Limit        int          `json:"limit,omitempty"`
	Offset       int          `json:"offset,omitempty"`
}
