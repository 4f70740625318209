package match

import (
	"fmt"
	"strings"
)

// Match is an upcoming fixture a fantasy team can be built for.
type Match struct {
	ID         string
	TeamA      string
	TeamB      string
	TeamAShort string
	TeamBShort string
	Time       string
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.TeamA) == "" || strings.TrimSpace(m.TeamB) == "" {
		return fmt.Errorf("match teams are required")
	}
	if strings.TrimSpace(m.TeamAShort) == "" || strings.TrimSpace(m.TeamBShort) == "" {
		return fmt.Errorf("match team short codes are required")
	}
	if strings.EqualFold(m.TeamAShort, m.TeamBShort) {
		return fmt.Errorf("match teams must differ")
	}

	return nil
}

// Title renders the fixture as "India vs Pakistan".
func (m Match) Title() string {
	return m.TeamA + " vs " + m.TeamB
}

// Involves reports whether a team short code plays in the match.
func (m Match) Involves(teamShort string) bool {
	return strings.EqualFold(m.TeamAShort, teamShort) || strings.EqualFold(m.TeamBShort, teamShort)
}
