package leaguestanding

// TeamStanding is one ladder row of a single age-group division.
type TeamStanding struct {
	Name           string
	LogoURL        string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// DivisionPosition is a club's standing inside one division ladder.
type DivisionPosition struct {
	Position int
	Points   int
	Played   int
}

// ClubStanding sums every team a club fields across divisions.
type ClubStanding struct {
	Name           string
	LogoURL        string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Divisions      map[string]DivisionPosition
}

func (s *TeamStanding) record(goalsFor, goalsAgainst int) {
	s.Played++
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst

	switch {
	case goalsFor > goalsAgainst:
		s.Won++
		s.Points += pointsForWin
	case goalsFor < goalsAgainst:
		s.Lost++
	default:
		s.Drawn++
		s.Points += pointsForDraw
	}

	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
}

func (c *ClubStanding) add(team TeamStanding) {
	c.Played += team.Played
	c.Won += team.Won
	c.Drawn += team.Drawn
	c.Lost += team.Lost
	c.GoalsFor += team.GoalsFor
	c.GoalsAgainst += team.GoalsAgainst
	c.GoalDifference += team.GoalDifference
	c.Points += team.Points
}
