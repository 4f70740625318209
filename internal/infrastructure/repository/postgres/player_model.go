package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

type playerTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Points    float64    `db:"points"`
	TeamCode  string     `db:"team_code"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

// playerInsertModel holds the columns written by the seed; timestamps use
// table defaults.
type playerInsertModel struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Role     string  `db:"role"`
	Points   float64 `db:"points"`
	TeamCode string  `db:"team_code"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:     row.ID,
		Name:   row.Name,
		Role:   player.Role(row.Role),
		Points: row.Points,
		Team:   row.TeamCode,
	}
}

func playerInsertFromDomain(p player.Player) playerInsertModel {
	return playerInsertModel{
		ID:       p.ID,
		Name:     p.Name,
		Role:     string(p.Role),
		Points:   p.Points,
		TeamCode: p.Team,
	}
}
