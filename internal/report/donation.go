package report

import (
	"strconv"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

func yearKey(year int) string {
	return strconv.Itoa(year)
}

// MonthAmount returns the donation recorded for (year, month), zero when
// absent. Legacy list-shaped amounts are already normalized by models.Amount.
func MonthAmount(don models.DonationMap, year int, month string) float64 {
	months, ok := don[yearKey(year)]
	if !ok {
		return 0
	}
	amount, ok := months[calendar.NormalizeMonth(month)]
	if !ok {
		return 0
	}
	return amount.Value()
}

// TotalForYear sums the member's donations over all twelve months of a year.
// Missing months contribute zero.
func TotalForYear(don models.DonationMap, year int) float64 {
	var total float64
	for _, month := range calendar.Months {
		total += MonthAmount(don, year, month)
	}
	return total
}

// PaidFilter is the cyclic donation list filter: all → paid → unpaid → all.
type PaidFilter string

const (
	FilterAll    PaidFilter = "all"
	FilterPaid   PaidFilter = "paid"
	FilterUnpaid PaidFilter = "unpaid"
)

// NextPaidFilter advances the cyclic filter. Unknown values reset to all.
func NextPaidFilter(f PaidFilter) PaidFilter {
	switch f {
	case FilterAll:
		return FilterPaid
	case FilterPaid:
		return FilterUnpaid
	default:
		return FilterAll
	}
}

// PartitionByPaid splits members into those who donated for the period
// (amount > 0) and those who did not.
func PartitionByPaid(members []models.Member, year int, month string) (paid, unpaid []models.Member) {
	for _, m := range members {
		if MonthAmount(m.Donation, year, month) > 0 {
			paid = append(paid, m)
		} else {
			unpaid = append(unpaid, m)
		}
	}
	return paid, unpaid
}
