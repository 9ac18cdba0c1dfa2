package leaguestanding

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// Calculate builds the ranked ladder of one division from the complete
// results whose league name equals division. Input order does not matter and
// the input is never modified.
func Calculate(results []matchresult.Result, division string) []TeamStanding {
	teams := make(map[string]*TeamStanding)
	lookup := func(name, logoURL string) *TeamStanding {
		if team, ok := teams[name]; ok {
			return team
		}
		team := &TeamStanding{Name: name, LogoURL: logoURL}
		teams[name] = team
		return team
	}

	for _, result := range results {
		if !result.IsComplete() || result.LeagueName != division {
			continue
		}

		home := lookup(result.HomeTeamName, result.HomeLogoURL)
		away := lookup(result.AwayTeamName, result.AwayLogoURL)
		homeScore, awayScore := result.Scores()
		home.record(homeScore, awayScore)
		away.record(awayScore, homeScore)
	}

	out := make([]TeamStanding, 0, len(teams))
	for _, team := range teams {
		out = append(out, *team)
	}
	byName := nameOrder()
	slices.SortFunc(out, func(a, b TeamStanding) int {
		return compareRows(byName, a.Points, a.GoalDifference, a.GoalsFor, a.Name, b.Points, b.GoalDifference, b.GoalsFor, b.Name)
	})

	return out
}

// compareRows orders rows by points, goal difference and goals for, all
// descending, then by name ascending using byName.
func compareRows(byName func(a, b string) int, aPoints, aDiff, aFor int, aName string, bPoints, bDiff, bFor int, bName string) int {
	switch {
	case aPoints != bPoints:
		return bPoints - aPoints
	case aDiff != bDiff:
		return bDiff - aDiff
	case aFor != bFor:
		return bFor - aFor
	default:
		return byName(aName, bName)
	}
}

// nameOrder compares names with root-locale collation, so "alpha" sorts
// before "Beta". Names the collator ranks equal fall back to byte order,
// keeping the order total. A Collator is not safe for concurrent use, so
// every sort builds its own.
func nameOrder() func(a, b string) int {
	collator := collate.New(language.Und)
	return func(a, b string) int {
		return cmp.Or(collator.CompareString(a, b), strings.Compare(a, b))
	}
}
