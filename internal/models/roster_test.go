package models

import "testing"

func TestInchargeReturnsOnlyStarred(t *testing.T) {
	roster := DayRoster{
		Day: "Monday",
		Assignments: []RosterAssignment{
			{RollNo: 1, Star: false},
			{RollNo: 2, Star: true},
			{RollNo: 3, Star: false},
			{RollNo: 4, Star: true},
		},
	}

	incharge := roster.Incharge()
	if len(incharge) != 2 {
		t.Fatalf("len(incharge) = %d, want 2", len(incharge))
	}
	if incharge[0].RollNo != 2 || incharge[1].RollNo != 4 {
		t.Fatalf("incharge rolls = [%d %d], want [2 4]", incharge[0].RollNo, incharge[1].RollNo)
	}
}

func TestInchargeEmptyWhenNobodyStarred(t *testing.T) {
	roster := DayRoster{
		Day:         "Tuesday",
		Assignments: []RosterAssignment{{RollNo: 7, Star: false}},
	}
	if got := roster.Incharge(); got != nil {
		t.Fatalf("Incharge() = %v, want nil", got)
	}
}
