package streak

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Entry struct {
	Rank        int    `json:"rank" db:"-"`
	ID          string `json:"id" db:"id"`
	DisplayName string `json:"display_name" db:"display_name"`
	Avatar      string `json:"avatar" db:"avatar"`
	Points      int    `json:"points" db:"points"`
	IsMe        bool   `json:"is_me" db:"-"`
}

type Leaderboard struct {
	db *sqlx.DB
}

func NewLeaderboard(db *sqlx.DB) *Leaderboard {
	return &Leaderboard{db: db}
}

// Top reads straight from the profiles table; ties are broken by name so the
// order is stable between requests.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]Entry, error) {
	query := l.db.Rebind(`
SELECT id, COALESCE(display_name, '') AS display_name, COALESCE(avatar, '') AS avatar, points
FROM profiles
ORDER BY points DESC, display_name ASC
LIMIT ?
`)
	entries := make([]Entry, 0, limit)
	if err := l.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("leaderboard query: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
