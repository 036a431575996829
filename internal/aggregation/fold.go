package aggregation

import (
	"fmt"
	"time"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/domain"
)

// State is an in-memory aggregate snapshot. Batch recomputation folds every
// scored activity into a fresh State; the incremental path applies the same
// per-activity deltas directly to stored aggregates. Both paths go through
// deltasFor, so they cannot diverge.
type State struct {
	Users   map[string]*domain.UserAggregate
	Regions map[string]*domain.RegionAggregate

	// WeekStart is the current weekly-window boundary. Activities created
	// before it do not count toward weekly points. The boundary is decided
	// by the external reset schedule and passed in; the fold never consults
	// the wall clock.
	WeekStart time.Time
}

// CurrentWeekStart returns the Monday 00:00 UTC boundary of the week
// containing now.
func CurrentWeekStart(now time.Time) time.Time {
	now = now.UTC()
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// NewState returns an empty State with a zeroed rollup for every region in
// the directory, seeded with the given user records (points and impact
// counters reset, identity fields kept).
func NewState(users []domain.UserAggregate, weekStart time.Time) *State {
	s := &State{
		Users:     make(map[string]*domain.UserAggregate, len(users)),
		Regions:   make(map[string]*domain.RegionAggregate, len(domain.GhanaRegions)),
		WeekStart: weekStart,
	}

	for _, r := range domain.GhanaRegions {
		s.Regions[r.Name] = &domain.RegionAggregate{Region: r.Name}
	}

	for _, u := range users {
		s.Users[u.UserID] = &domain.UserAggregate{
			UserID:    u.UserID,
			Username:  u.Username,
			Region:    u.Region,
			CreatedAt: u.CreatedAt,
		}
		if agg, ok := s.Regions[u.Region]; ok {
			agg.TotalUsers++
		}
	}

	return s
}

// deltasFor derives the per-user and per-region increments of one scored
// activity. Pure: the increments depend only on the activity itself.
func deltasFor(userID string, act domain.ScoredActivity) (domain.UserDelta, domain.RegionDelta) {
	user := domain.UserDelta{
		UserID:           userID,
		Points:           act.Points,
		Activities:       1,
		TrashCollectedKg: act.Impact.WasteKg,
		TreesPlanted:     act.Impact.TreesCount,
		CO2SavedKg:       act.Impact.CO2SavedKg,
	}
	region := domain.RegionDelta{
		Region:           act.Region,
		Points:           act.Points,
		Activities:       1,
		TrashCollectedKg: act.Impact.WasteKg,
		TreesPlanted:     act.Impact.TreesCount,
		CO2SavedKg:       act.Impact.CO2SavedKg,
	}
	return user, region
}

// Apply folds one scored activity into the state. An unknown region is a
// consistency violation: the state is left untouched and the caller gets
// domain.ErrInconsistentAggregate.
func (s *State) Apply(userID string, act domain.ScoredActivity) error {
	regionAgg, ok := s.Regions[act.Region]
	if !ok {
		return fmt.Errorf("%w: region %q on activity %s",
			domain.ErrInconsistentAggregate, act.Region, act.ActivityID)
	}

	userDelta, regionDelta := deltasFor(userID, act)

	userAgg, ok := s.Users[userID]
	if !ok {
		userAgg = &domain.UserAggregate{UserID: userID, Region: act.Region}
		s.Users[userID] = userAgg
		regionAgg.TotalUsers++
	}

	userAgg.TotalPoints += userDelta.Points
	if !act.CreatedAt.Before(s.WeekStart) {
		userAgg.WeeklyPoints += userDelta.Points
	}
	userAgg.ActivityCount += userDelta.Activities
	userAgg.TrashCollectedKg += userDelta.TrashCollectedKg
	userAgg.TreesPlanted += userDelta.TreesPlanted
	userAgg.CO2SavedKg += userDelta.CO2SavedKg

	regionAgg.TotalPoints += regionDelta.Points
	regionAgg.TotalActivities += regionDelta.Activities
	regionAgg.TrashCollectedKg += regionDelta.TrashCollectedKg
	regionAgg.TreesPlanted += regionDelta.TreesPlanted
	regionAgg.CO2SavedKg += regionDelta.CO2SavedKg

	return nil
}

// UserSlice returns the user aggregates as a slice.
func (s *State) UserSlice() []domain.UserAggregate {
	users := make([]domain.UserAggregate, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, *u)
	}
	return users
}

// RegionSlice returns the region rollups as a slice.
func (s *State) RegionSlice() []domain.RegionAggregate {
	regions := make([]domain.RegionAggregate, 0, len(s.Regions))
	for _, r := range s.Regions {
		regions = append(regions, *r)
	}
	return regions
}
