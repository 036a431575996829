package domain

// Region describes one entry of the Ghana region directory.
type Region struct {
	Name       string  `json:"name"`
	Capital    string  `json:"capital"`
	Code       string  `json:"code"`
	Population int     `json:"population,omitempty"`
	AreaKm2    float64 `json:"area_km2,omitempty"`
}

// GhanaRegions is the fixed region directory. The list matches the seed data
// of the production database: the 16 current regions plus the legacy
// Brong-Ahafo entry kept for accounts created before the 2019 split.
var GhanaRegions = []Region{
	{Name: "Greater Accra", Capital: "Accra", Code: "GA", Population: 5455692},
	{Name: "Ashanti", Capital: "Kumasi", Code: "AS", Population: 5440463},
	{Name: "Western", Capital: "Sekondi-Takoradi", Code: "WP", Population: 2060585},
	{Name: "Central", Capital: "Cape Coast", Code: "CP", Population: 2859821},
	{Name: "Eastern", Capital: "Koforidua", Code: "EP", Population: 2106696},
	{Name: "Volta", Capital: "Ho", Code: "TV", Population: 1635421},
	{Name: "Northern", Capital: "Tamale", Code: "NP", Population: 1972757},
	{Name: "Upper East", Capital: "Bolgatanga", Code: "UE", Population: 920089},
	{Name: "Upper West", Capital: "Wa", Code: "UW", Population: 576583},
	{Name: "Brong-Ahafo", Capital: "Sunyani", Code: "BA", Population: 1815408},
	{Name: "Western North", Capital: "Sefwi Wiawso", Code: "WN", Population: 678555},
	{Name: "Ahafo", Capital: "Goaso", Code: "AH", Population: 563677},
	{Name: "Bono", Capital: "Sunyani", Code: "BO", Population: 691983},
	{Name: "Bono East", Capital: "Techiman", Code: "BE", Population: 1208649},
	{Name: "Oti", Capital: "Dambai", Code: "OT", Population: 563677},
	{Name: "North East", Capital: "Nalerigu", Code: "NE", Population: 466026},
	{Name: "Savannah", Capital: "Damongo", Code: "SV", Population: 685801},
}

// regionNames indexes GhanaRegions by name for O(1) membership checks.
var regionNames = func() map[string]struct{} {
	m := make(map[string]struct{}, len(GhanaRegions))
	for _, r := range GhanaRegions {
		m[r.Name] = struct{}{}
	}
	return m
}()

// KnownRegion reports whether name is a recognized Ghana region.
func KnownRegion(name string) bool {
	_, ok := regionNames[name]
	return ok
}

// RegionAggregate is the per-region rollup of user and activity totals.
// It is derived entirely from user aggregates and region assignment.
type RegionAggregate struct {
	Region           string  `json:"region"`
	TotalUsers       int     `json:"total_users"`
	TotalActivities  int     `json:"total_activities"`
	TotalPoints      int     `json:"total_points"`
	TrashCollectedKg float64 `json:"trash_collected_kg"`
	TreesPlanted     int     `json:"trees_planted"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
}
