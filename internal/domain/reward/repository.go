package reward

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines level reward config data access interface
type Repository interface {
	List(ctx context.Context) ([]*LevelConfig, error)
	Upsert(ctx context.Context, level int, percentage float64) (*LevelConfig, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new reward config repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*LevelConfig, error) {
	query := `SELECT * FROM level_reward_config ORDER BY level`
	var configs []*LevelConfig
	err := r.db.SelectContext(ctx, &configs, query)
	return configs, err
}

func (r *repository) Upsert(ctx context.Context, level int, percentage float64) (*LevelConfig, error) {
	query := `
		INSERT INTO level_reward_config (level, reward_percentage, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (level) DO UPDATE
		SET reward_percentage = EXCLUDED.reward_percentage,
		    updated_at = EXCLUDED.updated_at
		RETURNING level, reward_percentage, updated_at
	`
	var config LevelConfig
	err := r.db.GetContext(ctx, &config, query, level, percentage, time.Now())
	if err != nil {
		return nil, err
	}
	return &config, nil
}
