package reward

import "time"

// LevelConfig is an admin-managed override of the disclosure percentage
// for a single level (matches level_reward_config table)
type LevelConfig struct {
	Level            int       `db:"level" json:"level"`
	RewardPercentage float64   `db:"reward_percentage" json:"reward_percentage"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
