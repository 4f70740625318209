package fantasy

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

// TeamSize is the number of players in a complete fantasy team.
const TeamSize = 11

// Lineup is the part of a team that scoring looks at.
type Lineup struct {
	Players       []player.Player
	CaptainID     *int64
	ViceCaptainID *int64
}

func (l Lineup) Has(playerID int64) bool {
	return l.indexOf(playerID) >= 0
}

func (l Lineup) IsCaptain(playerID int64) bool {
	return l.CaptainID != nil && *l.CaptainID == playerID
}

func (l Lineup) IsViceCaptain(playerID int64) bool {
	return l.ViceCaptainID != nil && *l.ViceCaptainID == playerID
}

// Player returns the selected player with the given id.
func (l Lineup) Player(playerID int64) (player.Player, bool) {
	idx := l.indexOf(playerID)
	if idx < 0 {
		return player.Player{}, false
	}
	return l.Players[idx], true
}

func (l Lineup) indexOf(playerID int64) int {
	for i := range l.Players {
		if l.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

func (l Lineup) clone() Lineup {
	return Lineup{
		Players:       append([]player.Player(nil), l.Players...),
		CaptainID:     cloneID(l.CaptainID),
		ViceCaptainID: cloneID(l.ViceCaptainID),
	}
}

// Draft is the team a user is composing or editing. EditingTeamID is set
// only when the draft was loaded from a saved team.
type Draft struct {
	Lineup
	EditingTeamID *int64
	MatchID       string
}

func (d Draft) IsEditing() bool {
	return d.EditingTeamID != nil
}

func (d Draft) SlotsLeft() int {
	if left := TeamSize - len(d.Players); left > 0 {
		return left
	}
	return 0
}

func (d Draft) clone() Draft {
	return Draft{
		Lineup:        d.Lineup.clone(),
		EditingTeamID: cloneID(d.EditingTeamID),
		MatchID:       d.MatchID,
	}
}

// SavedTeam keeps its ID, MatchID and CreatedAt across edit-saves.
type SavedTeam struct {
	ID int64
	Lineup
	MatchID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t SavedTeam) clone() SavedTeam {
	out := t
	out.Lineup = t.Lineup.clone()
	return out
}

func cloneID(v *int64) *int64 {
	if v == nil {
		return nil
	}
	id := *v
	return &id
}

// IDPtr is a convenience for building lineups in callers and tests.
func IDPtr(v int64) *int64 {
	return &v
}
