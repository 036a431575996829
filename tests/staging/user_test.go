//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type UserResponse struct {
	User struct {
		UserID       string `json:"user_id"`
		Username     string `json:"username"`
		Region       string `json:"region"`
		TotalPoints  int    `json:"total_points"`
		WeeklyPoints int    `json:"weekly_points"`
	} `json:"user"`
}

func registerTestUser(t *testing.T, region string) UserResponse {
	t.Helper()

	username := fmt.Sprintf("staging_%d", time.Now().UnixNano())
	body := map[string]interface{}{
		"username": username,
		"region":   region,
	}

	resp, respBody := makeRequest(t, "POST", "/api/v1/users", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(respBody))
	}

	var user UserResponse
	if err := json.Unmarshal(respBody, &user); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return user
}

func TestRegisterAndGetUser(t *testing.T) {
	created := registerTestUser(t, "Greater Accra")

	if created.User.UserID == "" {
		t.Fatal("Expected user_id in register response")
	}
	if created.User.TotalPoints != 0 {
		t.Errorf("Expected new user to start with 0 points, got %d", created.User.TotalPoints)
	}

	resp, body := makeRequest(t, "GET", "/api/v1/users/"+created.User.UserID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var fetched UserResponse
	if err := json.Unmarshal(body, &fetched); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if fetched.User.Username != created.User.Username {
		t.Errorf("Expected username %q, got %q", created.User.Username, fetched.User.Username)
	}
	if fetched.User.Region != "Greater Accra" {
		t.Errorf("Expected region 'Greater Accra', got %q", fetched.User.Region)
	}
}

func TestRegisterUserUnknownRegion(t *testing.T) {
	body := map[string]interface{}{
		"username": fmt.Sprintf("staging_%d", time.Now().UnixNano()),
		"region":   "Atlantis",
	}

	resp, respBody := makeRequest(t, "POST", "/api/v1/users", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d. Body: %s", resp.StatusCode, string(respBody))
	}
}
