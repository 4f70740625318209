package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type healthDTO struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type principalDTO struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

type matchDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TeamA      string `json:"team_a"`
	TeamB      string `json:"team_b"`
	TeamAShort string `json:"team_a_short"`
	TeamBShort string `json:"team_b_short"`
	Time       string `json:"time"`
}

type playerDTO struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Points float64 `json:"points"`
	Team   string  `json:"team"`
}

type lineupPlayerDTO struct {
	playerDTO
	IsCaptain       bool    `json:"is_captain"`
	IsViceCaptain   bool    `json:"is_vice_captain"`
	Multiplier      float64 `json:"multiplier"`
	EffectivePoints float64 `json:"effective_points"`
}

type draftDTO struct {
	MatchID         string            `json:"match_id,omitempty"`
	Match           *matchDTO         `json:"match,omitempty"`
	EditingTeamID   *int64            `json:"editing_team_id,omitempty"`
	Players         []lineupPlayerDTO `json:"players"`
	CaptainID       *int64            `json:"captain_id,omitempty"`
	ViceCaptainID   *int64            `json:"vice_captain_id,omitempty"`
	ProjectedPoints float64           `json:"projected_points"`
	SlotsLeft       int               `json:"slots_left"`
	RoleCounts      map[string]int    `json:"role_counts"`
	SaveReady       bool              `json:"save_ready"`
	SaveBlocker     string            `json:"save_blocker,omitempty"`
}

type teamSummaryDTO struct {
	ID              int64     `json:"id"`
	MatchID         string    `json:"match_id,omitempty"`
	Match           *matchDTO `json:"match,omitempty"`
	CaptainName     string    `json:"captain_name"`
	ViceCaptainName string    `json:"vice_captain_name"`
	PlayerCount     int       `json:"player_count"`
	TotalPoints     float64   `json:"total_points"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type roleGroupDTO struct {
	Role    string            `json:"role"`
	Players []lineupPlayerDTO `json:"players"`
}

type teamDetailDTO struct {
	ID            int64          `json:"id"`
	MatchID       string         `json:"match_id,omitempty"`
	Match         *matchDTO      `json:"match,omitempty"`
	CaptainID     *int64         `json:"captain_id,omitempty"`
	ViceCaptainID *int64         `json:"vice_captain_id,omitempty"`
	Groups        []roleGroupDTO `json:"groups"`
	TotalPoints   float64        `json:"total_points"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:         m.ID,
		Title:      m.Title(),
		TeamA:      m.TeamA,
		TeamB:      m.TeamB,
		TeamAShort: m.TeamAShort,
		TeamBShort: m.TeamBShort,
		Time:       m.Time,
	}
}

func optionalMatchToDTO(m *match.Match) *matchDTO {
	if m == nil {
		return nil
	}
	out := matchToDTO(*m)
	return &out
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:     p.ID,
		Name:   p.Name,
		Role:   string(p.Role),
		Points: p.Points,
		Team:   p.Team,
	}
}

func lineupPlayersToDTO(l fantasy.Lineup, players []player.Player) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(players))
	for _, p := range players {
		multiplier := l.Multiplier(p.ID)
		out = append(out, lineupPlayerDTO{
			playerDTO:       playerToDTO(p),
			IsCaptain:       l.IsCaptain(p.ID),
			IsViceCaptain:   l.IsViceCaptain(p.ID),
			Multiplier:      multiplier,
			EffectivePoints: p.Points * multiplier,
		})
	}
	return out
}

func draftToDTO(v usecase.DraftView) draftDTO {
	roleCounts := make(map[string]int, len(player.RoleOrder))
	for _, role := range player.RoleOrder {
		roleCounts[string(role)] = v.RoleCounts[role]
	}

	return draftDTO{
		MatchID:         v.Draft.MatchID,
		Match:           optionalMatchToDTO(v.Match),
		EditingTeamID:   v.Draft.EditingTeamID,
		Players:         lineupPlayersToDTO(v.Draft.Lineup, v.Draft.Players),
		CaptainID:       v.Draft.CaptainID,
		ViceCaptainID:   v.Draft.ViceCaptainID,
		ProjectedPoints: v.ProjectedPoints,
		SlotsLeft:       v.SlotsLeft,
		RoleCounts:      roleCounts,
		SaveReady:       v.SaveReady,
		SaveBlocker:     v.SaveBlocker,
	}
}

func teamSummaryToDTO(v usecase.TeamSummary) teamSummaryDTO {
	return teamSummaryDTO{
		ID:              v.ID,
		MatchID:         v.MatchID,
		Match:           optionalMatchToDTO(v.Match),
		CaptainName:     v.CaptainName,
		ViceCaptainName: v.ViceCaptainName,
		PlayerCount:     v.PlayerCount,
		TotalPoints:     v.TotalPoints,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func teamDetailToDTO(v usecase.TeamDetail) teamDetailDTO {
	groups := make([]roleGroupDTO, 0, len(v.Groups))
	for _, g := range v.Groups {
		groups = append(groups, roleGroupDTO{
			Role:    string(g.Role),
			Players: lineupPlayersToDTO(v.Team.Lineup, g.Players),
		})
	}

	return teamDetailDTO{
		ID:            v.Team.ID,
		MatchID:       v.Team.MatchID,
		Match:         optionalMatchToDTO(v.Match),
		CaptainID:     v.Team.CaptainID,
		ViceCaptainID: v.Team.ViceCaptainID,
		Groups:        groups,
		TotalPoints:   v.TotalPoints,
		CreatedAt:     v.Team.CreatedAt,
		UpdatedAt:     v.Team.UpdatedAt,
	}
}
