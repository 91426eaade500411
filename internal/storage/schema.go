// ABOUTME: Store schema for profiles, training data, and health snapshots.
// ABOUTME: health_snapshots is keyed by user only; latest snapshot wins.
package storage

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    full_name TEXT,
    username TEXT,
    avatar_url TEXT,
    email TEXT,
    onboarding_completed INTEGER NOT NULL DEFAULT 0,
    preferences TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sport_profiles (
    user_id TEXT PRIMARY KEY,
    primary_sport TEXT NOT NULL,
    experience_level TEXT NOT NULL,
    competitive_level TEXT,
    training_frequency INTEGER NOT NULL DEFAULT 3,
    session_duration INTEGER NOT NULL DEFAULT 60,
    current_goals TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    category TEXT,
    current_value REAL NOT NULL DEFAULT 0,
    target_value REAL NOT NULL,
    unit TEXT,
    target_date TEXT,
    completed INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);

CREATE TABLE IF NOT EXISTS workouts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    sport TEXT NOT NULL,
    workout_type TEXT,
    duration INTEGER,
    exercises TEXT NOT NULL DEFAULT '[]',
    completed INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id);

CREATE TABLE IF NOT EXISTS scheduled_workouts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    title TEXT NOT NULL,
    sport TEXT NOT NULL,
    workout_type TEXT,
    scheduled_date TEXT NOT NULL,
    session_time_of_day TEXT,
    workout_id TEXT,
    completed INTEGER NOT NULL DEFAULT 0,
    skipped INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scheduled_user_date ON scheduled_workouts(user_id, scheduled_date);

CREATE TABLE IF NOT EXISTS health_snapshots (
    user_id TEXT PRIMARY KEY,
    date TEXT NOT NULL,
    data TEXT NOT NULL,
    source TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workout_questions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    workout_id TEXT,
    question TEXT NOT NULL,
    answer TEXT,
    sport TEXT,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS api_tokens (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    email TEXT,
    created_at TEXT NOT NULL
);
`
