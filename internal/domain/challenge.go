package domain

import "time"

// ChallengeDifficulty grades how demanding a challenge target is.
type ChallengeDifficulty string

const (
	DifficultyEasy   ChallengeDifficulty = "easy"
	DifficultyMedium ChallengeDifficulty = "medium"
	DifficultyHard   ChallengeDifficulty = "hard"
)

// Valid reports whether d is one of the recognized difficulties.
func (d ChallengeDifficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Challenge is a time-boxed community goal over one activity category.
// Progress is never stored: it is a fold over the participant's scored
// activities of the challenge category inside the challenge window.
type Challenge struct {
	ID             string              `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Category       ActivityType        `json:"category"`
	TargetQuantity float64             `json:"target_quantity"`
	Points         int                 `json:"points"`
	Difficulty     ChallengeDifficulty `json:"difficulty"`
	Active         bool                `json:"is_active"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	Participants   int                 `json:"participants"`
	CreatedAt      time.Time           `json:"created_at"`
}

// ChallengeParticipant records one user's membership in a challenge.
type ChallengeParticipant struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Region    string    `json:"region"`
	JoinedAt  time.Time `json:"joined_at"`
	Completed bool      `json:"completed"`
}

// ChallengeProgress is the derived progress of one participant. Quantity
// counts only activities logged after joining and inside the challenge window.
type ChallengeProgress struct {
	ChallengeID string  `json:"challenge_id"`
	UserID      string  `json:"user_id"`
	Quantity    float64 `json:"quantity"`
	Target      float64 `json:"target"`
	Percent     float64 `json:"percent"`
	Completed   bool    `json:"completed"`
}

// ChallengeFilter describes optional filters for challenge list queries.
type ChallengeFilter struct {
	Category   ActivityType        `json:"category,omitempty"`
	Difficulty ChallengeDifficulty `json:"difficulty,omitempty"`
	ActiveOnly bool                `json:"active_only,omitempty"`
	Limit      int                 `json:"limit,omitempty"`
	Offset     int                 `json:"offset,omitempty"`
}
