package dribl

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

type pageEnvelope[T any] struct {
	Data []T      `json:"data"`
	Meta pageMeta `json:"meta"`
}

type pageMeta struct {
	NextCursor string `json:"next_cursor"`
}

type leagueItem struct {
	ID         flexString       `json:"id"`
	Name       string           `json:"name"`
	Attributes leagueAttributes `json:"attributes"`
}

type leagueAttributes struct {
	Name string `json:"name"`
}

type matchItem struct {
	ID         flexString      `json:"id"`
	Attributes matchAttributes `json:"attributes"`
}

type matchAttributes struct {
	LeagueName   string    `json:"league_name"`
	Round        string    `json:"round"`
	FullRound    string    `json:"full_round"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamName string    `json:"away_team_name"`
	HomeLogo     string    `json:"home_logo"`
	AwayLogo     string    `json:"away_logo"`
	HomeScore    flexScore `json:"home_score"`
	AwayScore    flexScore `json:"away_score"`
	Status       string    `json:"status"`
	Date         string    `json:"date"`
	GroundName   string    `json:"ground_name"`
	FieldName    string    `json:"field_name"`
}

// flexScore accepts a number, a numeric string or null. Anything else
// decodes as a missing score.
type flexScore struct {
	Value *int
}

func (s *flexScore) UnmarshalJSON(raw []byte) error {
	s.Value = nil
	text := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(raw), `"`)))
	if text == "" || text == "null" {
		return nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		s.Value = &n
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	n := int(f)
	s.Value = &n
	return nil
}

// flexString accepts ids sent either as strings or numbers.
type flexString string

func (s *flexString) UnmarshalJSON(raw []byte) error {
	text := string(bytes.TrimSpace(raw))
	if text == "null" {
		*s = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	*s = flexString(strings.TrimSpace(text))
	return nil
}
