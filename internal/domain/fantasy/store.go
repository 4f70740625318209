package fantasy

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

// Store holds one draft and the saved teams of a single owner.
//
// Every mutation is a silent no-op when its precondition does not hold, so
// the store always stays structurally valid. Store is not safe for
// concurrent use; callers serialize access.
type Store struct {
	draft Draft
	saved []SavedTeam

	ids id.Sequence
	now func() time.Time
}

func NewStore(ids id.Sequence, now func() time.Time) *Store {
	if ids == nil {
		ids = id.NewCounter(0)
	}
	if now == nil {
		now = time.Now
	}
	return &Store{ids: ids, now: now}
}

// Draft returns a copy of the current draft.
func (s *Store) Draft() Draft {
	return s.draft.clone()
}

// SavedTeams returns a copy of the saved teams in insertion order.
func (s *Store) SavedTeams() []SavedTeam {
	out := make([]SavedTeam, 0, len(s.saved))
	for _, team := range s.saved {
		out = append(out, team.clone())
	}
	return out
}

func (s *Store) SavedTeam(teamID int64) (SavedTeam, bool) {
	idx := s.savedIndex(teamID)
	if idx < 0 {
		return SavedTeam{}, false
	}
	return s.saved[idx].clone(), true
}

// AddPlayer appends p while the draft has room and p is not yet selected.
func (s *Store) AddPlayer(p player.Player) {
	if len(s.draft.Players) >= TeamSize || s.draft.Has(p.ID) {
		return
	}
	s.draft.Players = append(s.draft.Players, p)
}

// RemovePlayer drops the player and any captaincy it held.
func (s *Store) RemovePlayer(playerID int64) {
	idx := s.draft.indexOf(playerID)
	if idx < 0 {
		return
	}

	s.draft.Players = append(s.draft.Players[:idx:idx], s.draft.Players[idx+1:]...)
	if s.draft.IsCaptain(playerID) {
		s.draft.CaptainID = nil
	}
	if s.draft.IsViceCaptain(playerID) {
		s.draft.ViceCaptainID = nil
	}
}

// SetCaptain makes a selected player captain, taking the role off the
// vice-captain when it is the same player.
func (s *Store) SetCaptain(playerID int64) {
	if !s.draft.Has(playerID) {
		return
	}
	s.draft.CaptainID = IDPtr(playerID)
	if s.draft.IsViceCaptain(playerID) {
		s.draft.ViceCaptainID = nil
	}
}

func (s *Store) SetViceCaptain(playerID int64) {
	if !s.draft.Has(playerID) {
		return
	}
	s.draft.ViceCaptainID = IDPtr(playerID)
	if s.draft.IsCaptain(playerID) {
		s.draft.CaptainID = nil
	}
}

func (s *Store) ResetDraft() {
	s.draft = Draft{}
}

// StartDraft resets the draft and pins it to a match.
func (s *Store) StartDraft(matchID string) {
	s.draft = Draft{MatchID: matchID}
}

func (s *Store) LoadForEditing(teamID int64) {
	idx := s.savedIndex(teamID)
	if idx < 0 {
		return
	}

	team := s.saved[idx]
	s.draft = Draft{
		Lineup:        team.Lineup.clone(),
		EditingTeamID: IDPtr(team.ID),
		MatchID:       team.MatchID,
	}
}

// SaveDraft stores the draft unconditionally and resets it. A draft whose
// edit target still exists overwrites that team in place; any other draft,
// including one whose target was deleted, becomes a new team.
func (s *Store) SaveDraft() SavedTeam {
	now := s.now()
	lineup := s.draft.Lineup.clone()

	var saved SavedTeam
	idx := -1
	if s.draft.EditingTeamID != nil {
		idx = s.savedIndex(*s.draft.EditingTeamID)
	}

	if idx >= 0 {
		s.saved[idx].Lineup = lineup
		s.saved[idx].UpdatedAt = now
		saved = s.saved[idx].clone()
	} else {
		saved = SavedTeam{
			ID:        s.nextID(),
			Lineup:    lineup,
			MatchID:   s.draft.MatchID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.saved = append(s.saved, saved.clone())
	}

	s.draft = Draft{}
	return saved
}

// DeleteTeam removes a saved team. The draft is left alone even when it
// targets the deleted team.
func (s *Store) DeleteTeam(teamID int64) {
	idx := s.savedIndex(teamID)
	if idx < 0 {
		return
	}
	s.saved = append(s.saved[:idx:idx], s.saved[idx+1:]...)
}

func (s *Store) savedIndex(teamID int64) int {
	for i := range s.saved {
		if s.saved[i].ID == teamID {
			return i
		}
	}
	return -1
}

// nextID skips any value already in use so a sequence shared across stores
// or seeded low can never collide.
func (s *Store) nextID() int64 {
	for {
		next := s.ids.Next()
		if s.savedIndex(next) < 0 {
			return next
		}
	}
}
