package fantasy

import "github.com/riskibarqy/fantasy-cricket/internal/domain/player"

const (
	CaptainMultiplier     = 2.0
	ViceCaptainMultiplier = 1.5
)

// Multiplier returns the scoring weight applied to one player of l.
func (l Lineup) Multiplier(playerID int64) float64 {
	switch {
	case l.IsCaptain(playerID):
		return CaptainMultiplier
	case l.IsViceCaptain(playerID):
		return ViceCaptainMultiplier
	default:
		return 1
	}
}

// TotalPoints is the sum of points times multiplier over the lineup.
func TotalPoints(l Lineup) float64 {
	var total float64
	for _, p := range l.Players {
		total += p.Points * l.Multiplier(p.ID)
	}
	return total
}

// RoleGroup is one section of a team preview.
type RoleGroup struct {
	Role    player.Role
	Players []player.Player
}

// GroupByRole splits players by role in player.RoleOrder, keeping selection
// order inside a group and skipping empty roles.
func GroupByRole(players []player.Player) []RoleGroup {
	buckets := make(map[player.Role][]player.Player, len(player.RoleOrder))
	for _, p := range players {
		buckets[p.Role] = append(buckets[p.Role], p)
	}

	out := make([]RoleGroup, 0, len(player.RoleOrder))
	for _, role := range player.RoleOrder {
		if len(buckets[role]) == 0 {
			continue
		}
		out = append(out, RoleGroup{Role: role, Players: buckets[role]})
	}
	return out
}

// CountByRole is used by draft views to show the role mix.
func CountByRole(players []player.Player) map[player.Role]int {
	out := make(map[player.Role]int, len(player.RoleOrder))
	for _, p := range players {
		out[p.Role]++
	}
	return out
}
