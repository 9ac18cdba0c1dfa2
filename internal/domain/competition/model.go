package competition

import "fmt"

const (
	GenderBoys  = "boys"
	GenderGirls = "girls"
)

// Competition is one top-level division the ladder service tracks, e.g. YPL1.
type Competition struct {
	ID              string
	Name            string
	FullName        string
	Gender          string
	PromotionSlots  int
	RelegationSlots int
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}
	if c.Gender != GenderBoys && c.Gender != GenderGirls {
		return fmt.Errorf("competition gender %q is not supported", c.Gender)
	}
	if c.PromotionSlots < 0 || c.RelegationSlots < 0 {
		return fmt.Errorf("competition zone slots must be >= 0")
	}

	return nil
}

// AgeGroup is one age-group league inside a competition. Its Name is the
// division name carried by every match record of that league.
type AgeGroup struct {
	ID   string
	Name string
}
