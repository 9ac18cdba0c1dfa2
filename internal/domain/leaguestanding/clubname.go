package leaguestanding

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAgeGroupTokens are the suffixes stripped from team names when no
// token list is configured.
var DefaultAgeGroupTokens = []string{"U13", "U14", "U15", "U16", "U17", "U18"}

// ClubNamer derives a club name from a team name by removing a trailing
// age-group token.
type ClubNamer struct {
	suffix *regexp.Regexp
}

func NewClubNamer(tokens []string) (ClubNamer, error) {
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(token))
	}
	if len(quoted) == 0 {
		return ClubNamer{}, fmt.Errorf("at least one age group token is required")
	}

	pattern, err := regexp.Compile(`(?i)\s+(?:` + strings.Join(quoted, "|") + `)$`)
	if err != nil {
		return ClubNamer{}, fmt.Errorf("compile age group pattern: %w", err)
	}

	return ClubNamer{suffix: pattern}, nil
}

// DefaultClubNamer strips the DefaultAgeGroupTokens.
func DefaultClubNamer() ClubNamer {
	namer, err := NewClubNamer(DefaultAgeGroupTokens)
	if err != nil {
		panic(err)
	}
	return namer
}

// ClubName returns teamName without its age-group suffix, or teamName
// unchanged when it carries none.
func (n ClubNamer) ClubName(teamName string) string {
	if n.suffix == nil {
		return teamName
	}
	loc := n.suffix.FindStringIndex(teamName)
	if loc == nil {
		return teamName
	}
	return strings.TrimSpace(teamName[:loc[0]])
}
