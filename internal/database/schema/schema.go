package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Users & Aggregates Schema

-- 1. Core User Aggregates
-- One row per user holding accumulated totals. Rank is derived at query
-- time and never stored.
CREATE TABLE IF NOT EXISTS users (
    user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    region VARCHAR(64) NOT NULL,
    total_points INTEGER NOT NULL DEFAULT 0,
    weekly_points INTEGER NOT NULL DEFAULT 0,
    activity_count INTEGER NOT NULL DEFAULT 0,
    trash_collected_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    trees_planted INTEGER NOT NULL DEFAULT 0,
    co2_saved_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_region ON users (region);
CREATE INDEX IF NOT EXISTS idx_users_total_points ON users (total_points DESC);
CREATE INDEX IF NOT EXISTS idx_users_weekly_points ON users (weekly_points DESC);

-- 2. Scored Activities
-- Append-only log of scored submissions. Aggregates are rebuilt from this
-- table during full recomputation.
CREATE TABLE IF NOT EXISTS activities (
    activity_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    activity_type VARCHAR(20) NOT NULL,
    title VARCHAR(200) NOT NULL,
    description TEXT,
    quantity DOUBLE PRECISION NOT NULL,
    has_photo BOOLEAN NOT NULL DEFAULT FALSE,
    has_location BOOLEAN NOT NULL DEFAULT FALSE,
    location TEXT,
    region VARCHAR(64) NOT NULL,
    photo_urls JSONB,
    points INTEGER NOT NULL,
    co2_saved_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    waste_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    trees_count INTEGER NOT NULL DEFAULT 0,
    distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
    verified BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities (user_id);
CREATE INDEX IF NOT EXISTS idx_activities_region ON activities (region);
CREATE INDEX IF NOT EXISTS idx_activities_type ON activities (activity_type);
CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities (created_at DESC);

-- 3. Region Directory & Rollups
-- Directory rows are seeded from the fixed Ghana region list at startup;
-- rollup columns accumulate alongside user aggregates.
CREATE TABLE IF NOT EXISTS regions (
    name VARCHAR(64) PRIMARY KEY,
    capital VARCHAR(64) NOT NULL,
    code VARCHAR(8) NOT NULL,
    population BIGINT NOT NULL DEFAULT 0,
    area_km2 DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_users INTEGER NOT NULL DEFAULT 0,
    total_activities INTEGER NOT NULL DEFAULT 0,
    total_points INTEGER NOT NULL DEFAULT 0,
    trash_collected_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    trees_planted INTEGER NOT NULL DEFAULT 0,
    co2_saved_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 4. Community Challenges
-- Progress is never stored here: it is derived from the activities log,
-- so a full recomputation cannot disagree with challenge standings.
CREATE TABLE IF NOT EXISTS challenges (
    challenge_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title VARCHAR(100) UNIQUE NOT NULL,
    description TEXT NOT NULL,
    category VARCHAR(20) NOT NULL,
    target_quantity DOUBLE PRECISION NOT NULL,
    points INTEGER NOT NULL,
    difficulty VARCHAR(10) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    start_date TIMESTAMPTZ NOT NULL,
    end_date TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_challenges_category ON challenges (category);
CREATE INDEX IF NOT EXISTS idx_challenges_active ON challenges (is_active);

CREATE TABLE IF NOT EXISTS challenge_participants (
    challenge_id UUID NOT NULL REFERENCES challenges(challenge_id) ON DELETE CASCADE,
    user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    PRIMARY KEY (challenge_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_challenge_participants_user ON challenge_participants (user_id);
`
