package memory

import (
	"github.com/riskibarqy/fantasy-cricket/internal/domain/match"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
)

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: "1", TeamA: "India", TeamB: "Pakistan", TeamAShort: "IND", TeamBShort: "PAK", Time: "Today, 7:30 PM"},
		{ID: "2", TeamA: "Australia", TeamB: "England", TeamAShort: "AUS", TeamBShort: "ENG", Time: "Tomorrow, 3:00 PM"},
		{ID: "3", TeamA: "New Zealand", TeamB: "South Africa", TeamAShort: "NZ", TeamBShort: "SA", Time: "15th Sept, 7:30 PM"},
		{ID: "4", TeamA: "Sri Lanka", TeamB: "Bangladesh", TeamAShort: "SL", TeamBShort: "BAN", Time: "16th Sept, 3:00 PM"},
		{ID: "5", TeamA: "West Indies", TeamB: "Afghanistan", TeamAShort: "WI", TeamBShort: "AFG", Time: "17th Sept, 7:30 PM"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Virat Kohli", Role: player.RoleBatsman, Points: 100, Team: "IND"},
		{ID: 2, Name: "Rohit Sharma", Role: player.RoleBatsman, Points: 95, Team: "IND"},
		{ID: 3, Name: "David Warner", Role: player.RoleBatsman, Points: 90, Team: "AUS"},
		{ID: 4, Name: "Babar Azam", Role: player.RoleBatsman, Points: 92, Team: "PAK"},
		{ID: 5, Name: "Jasprit Bumrah", Role: player.RoleBowler, Points: 98, Team: "IND"},
		{ID: 6, Name: "Pat Cummins", Role: player.RoleBowler, Points: 88, Team: "AUS"},
		{ID: 7, Name: "Shaheen Afridi", Role: player.RoleBowler, Points: 85, Team: "PAK"},
		{ID: 8, Name: "Hardik Pandya", Role: player.RoleAllRounder, Points: 105, Team: "IND"},
		{ID: 9, Name: "Ravindra Jadeja", Role: player.RoleAllRounder, Points: 102, Team: "IND"},
		{ID: 10, Name: "Glenn Maxwell", Role: player.RoleAllRounder, Points: 95, Team: "AUS"},
		{ID: 11, Name: "Rishabh Pant", Role: player.RoleWicketKeeper, Points: 85, Team: "IND"},
		{ID: 12, Name: "Jos Buttler", Role: player.RoleWicketKeeper, Points: 95, Team: "ENG"},
		{ID: 13, Name: "Suryakumar Yadav", Role: player.RoleBatsman, Points: 88, Team: "IND"},
		{ID: 14, Name: "Rashid Khan", Role: player.RoleBowler, Points: 93, Team: "AFG"},
		{ID: 15, Name: "Ben Stokes", Role: player.RoleAllRounder, Points: 100, Team: "ENG"},
	}
}
