package memory

import "github.com/riskibarqy/vpl-ladder/internal/domain/competition"

const (
	CompetitionIDYPL1    = "bgdMX6MDKE"
	CompetitionIDYPL2    = "Bjma0zXAdR"
	CompetitionIDBVYSLNW = "AnmYznkyNz"
	CompetitionIDBVYSLSE = "2PmjO2pANZ"
	CompetitionIDYGPL    = "3pmvQvbDdv"
)

// SeedCompetitions lists the Victorian youth competitions the service
// tracks. Girls competitions carry no promotion or relegation zones.
func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:              CompetitionIDYPL1,
			Name:            "YPL1",
			FullName:        "Boys Victorian Youth Premier League 1",
			Gender:          competition.GenderBoys,
			PromotionSlots:  2,
			RelegationSlots: 2,
		},
		{
			ID:              CompetitionIDYPL2,
			Name:            "YPL2",
			FullName:        "Boys Victorian Youth Premier League 2",
			Gender:          competition.GenderBoys,
			PromotionSlots:  2,
			RelegationSlots: 2,
		},
		{
			ID:              CompetitionIDBVYSLNW,
			Name:            "BVYSL NW",
			FullName:        "Boys Victorian Youth State League North-West",
			Gender:          competition.GenderBoys,
			PromotionSlots:  2,
			RelegationSlots: 2,
		},
		{
			ID:              CompetitionIDBVYSLSE,
			Name:            "BVYSL SE",
			FullName:        "Boys Victorian Youth State League South-East",
			Gender:          competition.GenderBoys,
			PromotionSlots:  2,
			RelegationSlots: 2,
		},
		{
			ID:       CompetitionIDYGPL,
			Name:     "YGPL",
			FullName: "Girls Victorian Youth Premier League",
			Gender:   competition.GenderGirls,
		},
	}
}
