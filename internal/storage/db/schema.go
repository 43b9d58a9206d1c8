package db

// Bootstrap DDL, applied idempotently on startup. Proper migrations live in
// the deployment pipeline, not here.
const schema = `
CREATE TABLE IF NOT EXISTS folders (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (user_id, name)
);

CREATE TABLE IF NOT EXISTS flashcards (
	id               TEXT PRIMARY KEY,
	word             TEXT NOT NULL,
	translation      TEXT NOT NULL,
	phonetic         TEXT NOT NULL DEFAULT '',
	pos              TEXT NOT NULL DEFAULT '',
	example          TEXT NOT NULL DEFAULT '',
	notes            TEXT NOT NULL DEFAULT '',
	source_lang      TEXT NOT NULL DEFAULT 'en',
	target_lang      TEXT NOT NULL DEFAULT 'zh',
	folder_id        TEXT REFERENCES folders (id) ON DELETE SET NULL,
	user_id          TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	review_count     INTEGER NOT NULL DEFAULT 0,
	interval_days    INTEGER NOT NULL DEFAULT 0,
	ease_factor      DOUBLE PRECISION NOT NULL DEFAULT 2.5,
	last_reviewed    TIMESTAMPTZ,
	next_review_date TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_flashcards_user ON flashcards (user_id);
CREATE INDEX IF NOT EXISTS idx_flashcards_due ON flashcards (user_id, next_review_date);

CREATE TABLE IF NOT EXISTS review_sessions (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS review_events (
	id           TEXT PRIMARY KEY,
	session_id   TEXT NOT NULL REFERENCES review_sessions (id),
	user_id      TEXT NOT NULL,
	flashcard_id TEXT NOT NULL,
	rating       SMALLINT NOT NULL CHECK (rating BETWEEN 0 AND 5),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_review_events_session ON review_events (session_id);
CREATE INDEX IF NOT EXISTS idx_review_events_user ON review_events (user_id);

CREATE TABLE IF NOT EXISTS quiz_sessions (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL,
	folder_id       TEXT,
	include_reverse BOOLEAN NOT NULL DEFAULT FALSE,
	card_count      INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS quiz_answers (
	id           TEXT PRIMARY KEY,
	session_id   TEXT NOT NULL REFERENCES quiz_sessions (id),
	flashcard_id TEXT NOT NULL,
	is_correct   BOOLEAN NOT NULL DEFAULT FALSE,
	answered_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_quiz_answers_session ON quiz_answers (session_id);

CREATE TABLE IF NOT EXISTS user_settings (
	user_id              TEXT PRIMARY KEY,
	default_source_lang  TEXT NOT NULL DEFAULT 'en',
	default_target_lang  TEXT NOT NULL DEFAULT 'zh',
	default_quiz_length  INTEGER NOT NULL DEFAULT 10,
	daily_learning_goal  INTEGER NOT NULL DEFAULT 10,
	auto_tts             BOOLEAN NOT NULL DEFAULT TRUE,
	reverse_quiz_default BOOLEAN NOT NULL DEFAULT FALSE,
	dark_mode            BOOLEAN NOT NULL DEFAULT FALSE,
	onboarding_completed BOOLEAN NOT NULL DEFAULT FALSE
);
`
