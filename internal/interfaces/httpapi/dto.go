package httpapi

import (
	"time"

	"github.com/riskibarqy/vpl-ladder/internal/domain/competition"
	"github.com/riskibarqy/vpl-ladder/internal/domain/leaguestanding"
	"github.com/riskibarqy/vpl-ladder/internal/domain/matchresult"
	"github.com/riskibarqy/vpl-ladder/internal/platform/resilience"
	"github.com/riskibarqy/vpl-ladder/internal/usecase"
)

type healthDTO struct {
	Status   string                  `json:"status"`
	Upstream resilience.CircuitStats `json:"upstream"`
}

type competitionDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"fullName"`
	Gender          string `json:"gender"`
	PromotionSlots  int    `json:"promotionSlots"`
	RelegationSlots int    `json:"relegationSlots"`
}

type ageGroupDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type refreshDTO struct {
	CompetitionID string `json:"competitionId"`
	Refreshed     bool   `json:"refreshed"`
}

type teamStandingDTO struct {
	Position       int    `json:"position"`
	Name           string `json:"name"`
	LogoURL        string `json:"logoUrl,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

type divisionLadderDTO struct {
	AgeGroup  ageGroupDTO       `json:"ageGroup"`
	Standings []teamStandingDTO `json:"standings"`
}

type divisionPositionDTO struct {
	Division string `json:"division"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
	Played   int    `json:"played"`
}

type clubStandingDTO struct {
	Position       int                   `json:"position"`
	Zone           string                `json:"zone,omitempty"`
	Name           string                `json:"name"`
	LogoURL        string                `json:"logoUrl,omitempty"`
	Played         int                   `json:"played"`
	Won            int                   `json:"won"`
	Drawn          int                   `json:"drawn"`
	Lost           int                   `json:"lost"`
	GoalsFor       int                   `json:"goalsFor"`
	GoalsAgainst   int                   `json:"goalsAgainst"`
	GoalDifference int                   `json:"goalDifference"`
	Points         int                   `json:"points"`
	Divisions      []divisionPositionDTO `json:"divisions"`
}

type clubLadderDTO struct {
	Competition competitionDTO    `json:"competition"`
	Divisions   []string          `json:"divisions"`
	Rows        []clubStandingDTO `json:"rows"`
}

type matchDTO struct {
	ID           string     `json:"id"`
	AgeGroup     string     `json:"ageGroup"`
	Round        string     `json:"round"`
	HomeTeamName string     `json:"homeTeamName"`
	AwayTeamName string     `json:"awayTeamName"`
	HomeLogoURL  string     `json:"homeLogoUrl,omitempty"`
	AwayLogoURL  string     `json:"awayLogoUrl,omitempty"`
	HomeScore    *int       `json:"homeScore"`
	AwayScore    *int       `json:"awayScore"`
	Status       string     `json:"status"`
	KickoffAt    *time.Time `json:"kickoffAt,omitempty"`
	GroundName   string     `json:"groundName,omitempty"`
	FieldName    string     `json:"fieldName,omitempty"`
}

type matchupDTO struct {
	Key      string     `json:"key"`
	HomeClub string     `json:"homeClub"`
	AwayClub string     `json:"awayClub"`
	Matches  []matchDTO `json:"matches"`
}

type roundMatchesDTO struct {
	Round    string       `json:"round"`
	Number   int          `json:"number"`
	Matchups []matchupDTO `json:"matchups"`
}

type roundOptionDTO struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Number int    `json:"number"`
}

type roundsDTO struct {
	Fixtures []roundOptionDTO `json:"fixtures"`
	Results  []roundOptionDTO `json:"results"`
}

func competitionToDTO(item competition.Competition) competitionDTO {
	return competitionDTO{
		ID:              item.ID,
		Name:            item.Name,
		FullName:        item.FullName,
		Gender:          item.Gender,
		PromotionSlots:  item.PromotionSlots,
		RelegationSlots: item.RelegationSlots,
	}
}

func divisionLadderToDTO(ladder usecase.DivisionLadder) divisionLadderDTO {
	out := divisionLadderDTO{
		AgeGroup:  ageGroupDTO{ID: ladder.AgeGroup.ID, Name: ladder.AgeGroup.Name},
		Standings: make([]teamStandingDTO, 0, len(ladder.Standings)),
	}
	for i, row := range ladder.Standings {
		out.Standings = append(out.Standings, teamStandingDTO{
			Position:       i + 1,
			Name:           row.Name,
			LogoURL:        row.LogoURL,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
		})
	}

	return out
}

func clubLadderToDTO(ladder usecase.ClubLadder) clubLadderDTO {
	out := clubLadderDTO{
		Competition: competitionToDTO(ladder.Competition),
		Divisions:   append([]string{}, ladder.Divisions...),
		Rows:        make([]clubStandingDTO, 0, len(ladder.Rows)),
	}
	for _, row := range ladder.Rows {
		out.Rows = append(out.Rows, clubStandingDTO{
			Position:       row.Position,
			Zone:           string(row.Zone),
			Name:           row.Name,
			LogoURL:        row.LogoURL,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Divisions:      divisionBreakdown(ladder.Divisions, row.ClubStanding.Divisions),
		})
	}

	return out
}

// divisionBreakdown lists a club's division positions in ladder division
// order, skipping divisions the club has no team in.
func divisionBreakdown(order []string, positions map[string]leaguestanding.DivisionPosition) []divisionPositionDTO {
	out := make([]divisionPositionDTO, 0, len(positions))
	for _, division := range order {
		position, ok := positions[division]
		if !ok {
			continue
		}
		out = append(out, divisionPositionDTO{
			Division: division,
			Position: position.Position,
			Points:   position.Points,
			Played:   position.Played,
		})
	}

	return out
}

func matchToDTO(item matchresult.Result) matchDTO {
	out := matchDTO{
		ID:           item.ID,
		AgeGroup:     item.LeagueName,
		Round:        item.Round,
		HomeTeamName: item.HomeTeamName,
		AwayTeamName: item.AwayTeamName,
		HomeLogoURL:  item.HomeLogoURL,
		AwayLogoURL:  item.AwayLogoURL,
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		Status:       string(item.Status),
		GroundName:   item.GroundName,
		FieldName:    item.FieldName,
	}
	if !item.KickoffAt.IsZero() {
		kickoff := item.KickoffAt
		out.KickoffAt = &kickoff
	}

	return out
}

func roundMatchesToDTO(rounds []usecase.RoundMatches) []roundMatchesDTO {
	out := make([]roundMatchesDTO, 0, len(rounds))
	for _, round := range rounds {
		item := roundMatchesDTO{
			Round:    round.Round,
			Number:   round.Number,
			Matchups: make([]matchupDTO, 0, len(round.Matchups)),
		}
		for _, matchup := range round.Matchups {
			matches := make([]matchDTO, 0, len(matchup.Matches))
			for _, match := range matchup.Matches {
				matches = append(matches, matchToDTO(match))
			}
			item.Matchups = append(item.Matchups, matchupDTO{
				Key:      matchup.Key,
				HomeClub: matchup.HomeClub,
				AwayClub: matchup.AwayClub,
				Matches:  matches,
			})
		}
		out = append(out, item)
	}

	return out
}

func roundOptionsToDTO(options []usecase.RoundOption) []roundOptionDTO {
	out := make([]roundOptionDTO, 0, len(options))
	for _, option := range options {
		out = append(out, roundOptionDTO{Code: option.Code, Label: option.Label, Number: option.Number})
	}

	return out
}
