package fantasy

import (
	"errors"
	"fmt"
)

var (
	ErrTeamFull          = errors.New("you can only select 11 players")
	ErrIncompleteTeam    = errors.New("please select exactly 11 players")
	ErrCaptainRequired   = errors.New("please select a captain and vice-captain")
	ErrPlayerNotSelected = errors.New("player is not in the team")
	ErrSameCaptaincy     = errors.New("captain and vice-captain must be different players")
)

// Rules holds the checks a caller runs before saving a draft. The store
// itself never consults them. Team size is the fixed TeamSize the store
// also enforces, so the two cannot disagree.
type Rules struct{}

func DefaultRules() Rules {
	return Rules{}
}

// CanAdd reports whether one more player fits.
func (r Rules) CanAdd(d Draft) error {
	if len(d.Players) >= TeamSize {
		return fmt.Errorf("%w: limit=%d", ErrTeamFull, TeamSize)
	}
	return nil
}

func (r Rules) ValidateForSave(d Draft) error {
	switch {
	case len(d.Players) > TeamSize:
		return fmt.Errorf("%w: limit=%d got=%d", ErrTeamFull, TeamSize, len(d.Players))
	case len(d.Players) < TeamSize:
		return fmt.Errorf("%w: got=%d", ErrIncompleteTeam, len(d.Players))
	case d.CaptainID == nil || d.ViceCaptainID == nil:
		return ErrCaptainRequired
	case *d.CaptainID == *d.ViceCaptainID:
		return ErrSameCaptaincy
	case !d.Has(*d.CaptainID):
		return fmt.Errorf("%w: captain=%d", ErrPlayerNotSelected, *d.CaptainID)
	case !d.Has(*d.ViceCaptainID):
		return fmt.Errorf("%w: vice_captain=%d", ErrPlayerNotSelected, *d.ViceCaptainID)
	}
	return nil
}

// IsRulesError reports whether err is one of the draft validation sentinels.
func IsRulesError(err error) bool {
	return errors.Is(err, ErrIncompleteTeam) ||
		errors.Is(err, ErrCaptainRequired) ||
		errors.Is(err, ErrPlayerNotSelected) ||
		errors.Is(err, ErrSameCaptaincy)
}
