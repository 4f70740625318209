package postgres

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
)

type matchTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	TeamA      string     `db:"team_a"`
	TeamB      string     `db:"team_b"`
	TeamAShort string     `db:"team_a_short"`
	TeamBShort string     `db:"team_b_short"`
	StartLabel string     `db:"start_label"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID   string `db:"public_id"`
	TeamA      string `db:"team_a"`
	TeamB      string `db:"team_b"`
	TeamAShort string `db:"team_a_short"`
	TeamBShort string `db:"team_b_short"`
	StartLabel string `db:"start_label"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.PublicID,
		TeamA:      row.TeamA,
		TeamB:      row.TeamB,
		TeamAShort: row.TeamAShort,
		TeamBShort: row.TeamBShort,
		Time:       row.StartLabel,
	}
}

func matchInsertFromDomain(m match.Match) matchInsertModel {
	return matchInsertModel{
		PublicID:   m.ID,
		TeamA:      m.TeamA,
		TeamB:      m.TeamB,
		TeamAShort: m.TeamAShort,
		TeamBShort: m.TeamBShort,
		StartLabel: m.Time,
	}
}
