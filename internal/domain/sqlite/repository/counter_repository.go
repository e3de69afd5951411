package repository

import (
	"gorm.io/gorm"
)

// DefaultCounterRepository owns the single sequence row that hands out
// user_id values.
type DefaultCounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *DefaultCounterRepository {
	return &DefaultCounterRepository{db: db}
}

// AllocateNext increments the sequence and returns the post-increment value.
// Upsert and increment happen in a single statement, so concurrent callers
// never observe the same value and the row springs into existence on first
// use. Storage failures propagate as-is, no retry.
func (c *DefaultCounterRepository) AllocateNext() (int, error) {
	var seq int
	err := c.db.
		Raw(`INSERT INTO counters (id, seq) VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET seq = seq + 1
		RETURNING seq`).
		Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq, nil
}
