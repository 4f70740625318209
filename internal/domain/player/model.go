package player

import (
	"fmt"
	"strings"
)

// Role is the cricket discipline a player is picked for.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-rounder"
	RoleWicketKeeper Role = "WK"
)

// RoleOrder is the display order used when grouping a team by role.
var RoleOrder = []Role{RoleWicketKeeper, RoleBatsman, RoleAllRounder, RoleBowler}

var allRoles = map[Role]struct{}{
	RoleBatsman:      {},
	RoleBowler:       {},
	RoleAllRounder:   {},
	RoleWicketKeeper: {},
}

func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

// ParseRole accepts the canonical names case-insensitively plus a few
// common spellings ("allrounder", "wicketkeeper").
func ParseRole(v string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "batsman", "batter":
		return RoleBatsman, true
	case "bowler":
		return RoleBowler, true
	case "all-rounder", "allrounder", "all rounder":
		return RoleAllRounder, true
	case "wk", "wicketkeeper", "wicket-keeper":
		return RoleWicketKeeper, true
	default:
		return "", false
	}
}

// Player is a selectable cricketer. Catalog data is read-only.
type Player struct {
	ID     int64
	Name   string
	Role   Role
	Points float64
	Team   string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}
	if p.Points < 0 {
		return fmt.Errorf("player points must not be negative")
	}
	if strings.TrimSpace(p.Team) == "" {
		return fmt.Errorf("player team is required")
	}

	return nil
}
