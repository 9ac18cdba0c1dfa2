package leaguestanding

import (
	"slices"

	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
)

// Aggregate ranks clubs by the summed ladders of every division in
// divisions. Division order decides which team's logo a club takes.
//
// A club fielding two teams in one division keeps only the later team's
// breakdown entry for it; the totals still count both teams.
func Aggregate(results []matchresult.Result, divisions []string, namer ClubNamer) []ClubStanding {
	clubs := make(map[string]*ClubStanding)
	order := make([]string, 0)

	for _, division := range divisions {
		for i, team := range Calculate(results, division) {
			name := namer.ClubName(team.Name)
			club, ok := clubs[name]
			if !ok {
				club = &ClubStanding{
					Name:      name,
					LogoURL:   team.LogoURL,
					Divisions: make(map[string]DivisionPosition),
				}
				clubs[name] = club
				order = append(order, name)
			}

			club.add(team)
			club.Divisions[division] = DivisionPosition{
				Position: i + 1,
				Points:   team.Points,
				Played:   team.Played,
			}
		}
	}

	out := make([]ClubStanding, 0, len(order))
	for _, name := range order {
		out = append(out, *clubs[name])
	}
	byName := nameOrder()
	slices.SortFunc(out, func(a, b ClubStanding) int {
		return compareRows(byName, a.Points, a.GoalDifference, a.GoalsFor, a.Name, b.Points, b.GoalDifference, b.GoalsFor, b.Name)
	})

	return out
}
