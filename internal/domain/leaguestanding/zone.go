package leaguestanding

type Zone string

const (
	ZoneNone       Zone = ""
	ZonePromotion  Zone = "promotion"
	ZoneRelegation Zone = "relegation"
)

// ZoneFor labels a 1-based ladder position. Promotion wins when the two
// zones overlap on a short ladder.
func ZoneFor(position, total, promotionSlots, relegationSlots int) Zone {
	if position < 1 || position > total {
		return ZoneNone
	}
	if position <= promotionSlots {
		return ZonePromotion
	}
	if relegationSlots > 0 && position > total-relegationSlots {
		return ZoneRelegation
	}
	return ZoneNone
}
