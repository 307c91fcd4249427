package models

// RosterAssignment ties a member to a day-of-week team. Star marks the
// member as incharge for that day.
type RosterAssignment struct {
	RollNo int  `json:"roll_no"`
	Star   bool `json:"star"`
}

// DayRoster is the team assigned to one day of the week.
type DayRoster struct {
	Day         string             `json:"day"`
	Assignments []RosterAssignment `json:"assignments"`
}

// Incharge returns the starred assignments for the day.
func (r *DayRoster) Incharge() []RosterAssignment {
	var out []RosterAssignment
	for _, a := range r.Assignments {
		if a.Star {
			out = append(out, a)
		}
	}
	return out
}
