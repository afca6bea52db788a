// Package history records individual review events in MySQL so review
// behavior can be analyzed beyond the per-card scheduling state the
// deck store keeps.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ReviewLog is one recorded review of one card.
type ReviewLog struct {
	ID         int64     `db:"id"`
	DeckID     string    `db:"deck_id"`
	CardID     string    `db:"card_id"`
	Quality    int       `db:"quality"`
	EaseFactor float64   `db:"ease_factor"`
	Interval   int       `db:"interval_days"`
	ReviewedAt time.Time `db:"reviewed_at"`
	CreatedAt  time.Time `db:"created_at"`
}

// Repository defines operations for managing review logs.
type Repository interface {
	Create(ctx context.Context, log *ReviewLog) error
	FindByCard(ctx context.Context, deckID, cardID string) ([]ReviewLog, error)
	CountByDeck(ctx context.Context, deckID string) (int64, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS review_logs (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	deck_id VARCHAR(36) NOT NULL,
	card_id VARCHAR(36) NOT NULL,
	quality TINYINT NOT NULL,
	ease_factor DOUBLE NOT NULL,
	interval_days INT NOT NULL,
	reviewed_at DATETIME NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	INDEX idx_review_logs_deck (deck_id),
	INDEX idx_review_logs_card (deck_id, card_id)
);`

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// EnsureSchema creates the review_logs table when it does not exist.
func (r *DBRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("db.ExecContext(schema) > %w", err)
	}
	return nil
}

// Create inserts a review log.
func (r *DBRepository) Create(ctx context.Context, log *ReviewLog) error {
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO review_logs (deck_id, card_id, quality, ease_factor, interval_days, reviewed_at)
		 VALUES (:deck_id, :card_id, :quality, :ease_factor, :interval_days, :reviewed_at)`,
		log)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(review_logs) > %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}

// FindByCard returns all review logs for one card, oldest first.
func (r *DBRepository) FindByCard(ctx context.Context, deckID, cardID string) ([]ReviewLog, error) {
	var logs []ReviewLog
	if err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM review_logs WHERE deck_id = ? AND card_id = ? ORDER BY reviewed_at",
		deckID, cardID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review_logs by card) > %w", err)
	}
	return logs, nil
}

// CountByDeck returns how many reviews were recorded for a deck.
func (r *DBRepository) CountByDeck(ctx context.Context, deckID string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM review_logs WHERE deck_id = ?", deckID); err != nil {
		return 0, fmt.Errorf("db.GetContext(review_logs count) > %w", err)
	}
	return count, nil
}
