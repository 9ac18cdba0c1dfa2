package matchresult

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

// Kind names the upstream feed a record was read from.
type Kind string

const (
	KindResults  Kind = "results"
	KindFixtures Kind = "fixtures"
)

// Result is one match record of an age-group league. Pending records are
// fixtures; complete records are results and feed the ladders.
type Result struct {
	ID            string
	CompetitionID string
	AgeGroupID    string
	LeagueName    string
	Round         string
	FullRound     string
	HomeTeamName  string
	AwayTeamName  string
	HomeLogoURL   string
	AwayLogoURL   string
	HomeScore     *int
	AwayScore     *int
	Status        Status
	KickoffAt     time.Time
	GroundName    string
	FieldName     string
}

func (r Result) IsComplete() bool {
	return r.Status == StatusComplete
}

func (r Result) IsPending() bool {
	return r.Status == StatusPending
}

// Scores returns the home and away scores, reading missing values as zero.
func (r Result) Scores() (int, int) {
	home, away := 0, 0
	if r.HomeScore != nil {
		home = *r.HomeScore
	}
	if r.AwayScore != nil {
		away = *r.AwayScore
	}
	return home, away
}

func NormalizeStatus(value string) Status {
	return Status(strings.ToLower(strings.TrimSpace(value)))
}

var roundDigits = regexp.MustCompile(`\d+`)

// NormalizeRound turns round filters such as "roundrobin_3", "r3" or "R3"
// into the short code used on match records ("R3").
func NormalizeRound(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	switch {
	case strings.HasPrefix(lower, "roundrobin_"):
		return "R" + value[len("roundrobin_"):]
	case strings.HasPrefix(lower, "r") && len(value) > 1 && isDigits(value[1:]):
		return "R" + value[1:]
	default:
		return value
	}
}

// RoundNumber extracts the first integer in a round label, 0 when there is none.
func RoundNumber(label string) int {
	match := roundDigits.FindString(label)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}
