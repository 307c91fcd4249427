package report

import (
	"testing"

	"github.com/akash6998s/langarsewa-go/internal/models"
)

func TestTotalForYear(t *testing.T) {
	don := models.DonationMap{
		"2025": {
			"January":  models.NewAmount(100),
			"February": models.NewAmount(50),
		},
	}
	if got := TotalForYear(don, 2025); got != 150 {
		t.Errorf("TotalForYear = %v, want 150", got)
	}
	if got := TotalForYear(don, 2024); got != 0 {
		t.Errorf("missing year total = %v, want 0", got)
	}
}

func TestTotalForYearLegacyList(t *testing.T) {
	don := models.DonationMap{
		"2025": {"January": models.NewAmountList(50, 50)},
	}
	if got := TotalForYear(don, 2025); got != 100 {
		t.Errorf("list-shaped total = %v, want 100", got)
	}
}

func TestMonthAmount(t *testing.T) {
	don := models.DonationMap{
		"2025": {"July": models.NewAmount(75)},
	}
	if got := MonthAmount(don, 2025, "july"); got != 75 {
		t.Errorf("MonthAmount = %v, want 75 (case-insensitive month)", got)
	}
	if got := MonthAmount(don, 2025, "August"); got != 0 {
		t.Errorf("missing month amount = %v, want 0", got)
	}
}

func TestPartitionByPaid(t *testing.T) {
	paid := models.Member{RollNo: 1, Donation: models.DonationMap{
		"2025": {"July": models.NewAmount(100)},
	}}
	zero := models.Member{RollNo: 2, Donation: models.DonationMap{
		"2025": {"July": models.NewAmount(0)},
	}}
	none := models.Member{RollNo: 3}

	gotPaid, gotUnpaid := PartitionByPaid([]models.Member{paid, zero, none}, 2025, "July")
	if len(gotPaid) != 1 || gotPaid[0].RollNo != 1 {
		t.Errorf("paid partition = %v", gotPaid)
	}
	if len(gotUnpaid) != 2 {
		t.Errorf("unpaid partition has %d members, want 2", len(gotUnpaid))
	}
}

func TestNextPaidFilterCycles(t *testing.T) {
	f := FilterAll
	seq := []PaidFilter{FilterPaid, FilterUnpaid, FilterAll, FilterPaid}
	for i, want := range seq {
		f = NextPaidFilter(f)
		if f != want {
			t.Fatalf("step %d: filter = %q, want %q", i, f, want)
		}
	}
	if got := NextPaidFilter(PaidFilter("bogus")); got != FilterAll {
		t.Errorf("unknown filter advanced to %q, want all", got)
	}
}
