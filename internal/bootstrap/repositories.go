package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Agbesi-Abi/EcoTrackApi/internal/database/postgres"
	"github.com/Agbesi-Abi/EcoTrackApi/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User       repository.User
	Activity   repository.Activity
	Region     repository.Region
	Aggregates repository.Aggregates
	Challenge  repository.Challenge
}

// InitializeRepositories creates all repository implementations.
// Every repository only needs the database pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:       postgres.NewUserRepository(dbPool),
		Activity:   postgres.NewActivityRepository(dbPool),
		Region:     postgres.NewRegionRepository(dbPool),
		Aggregates: postgres.NewAggregatesRepository(dbPool),
		Challenge:  postgres.NewChallengeRepository(dbPool),
	}
}
