//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

// TestCommunityEndpoints tests the leaderboard and stats endpoints
func TestCommunityEndpoints(t *testing.T) {
	t.Run("GlobalLeaderboard", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/community/leaderboard", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if _, ok := result["entries"]; !ok {
			t.Error("Expected 'entries' field in response")
		}
		if result["scope"] != "global" {
			t.Errorf("Expected default scope 'global', got %v", result["scope"])
		}
	})

	t.Run("WeeklyLeaderboard", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/community/leaderboard?timeframe=weekly", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if result["metric"] != "weekly_points" {
			t.Errorf("Expected metric 'weekly_points', got %v", result["metric"])
		}
	})

	t.Run("RegionalLeaderboardRequiresRegion", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/community/leaderboard?scope=regional", nil)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("RegionStats", func(t *testing.T) {
		region := "Greater Accra"
		path := fmt.Sprintf("/api/v1/community/stats/regions/%s", url.PathEscape(region))
		resp, body := makeRequest(t, "GET", path, nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}

		if result["region"] != region {
			t.Errorf("Expected region %q, got %v", region, result["region"])
		}
		if _, ok := result["rank"]; !ok {
			t.Error("Expected 'rank' field in response")
		}
	})

	t.Run("UnknownRegionStats", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/community/stats/regions/Atlantis", nil)

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})
}
