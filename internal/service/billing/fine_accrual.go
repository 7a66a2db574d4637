package billing

import (
	"time"

	storeModels "flatfundpro/internal/pkg/store/models"
)

// AccrueFine adds the date-based late fee to a base amount. Both dates are
// truncated to midnight before comparison so a same-day payment is never
// counted overdue by a few hours. A nil or zero base yields 0: there is
// nothing to accrue a fine on. The result is never negative and the function
// is pure, so identical inputs always produce the same figure, including
// across a fiscal-year boundary.
func AccrueFine(base *float64, dueDate time.Time, dailyFine float64, paymentDate time.Time) float64 {
	if base == nil || *base == 0 {
		return 0
	}

	due := truncateToMidnight(dueDate)
	paid := truncateToMidnight(paymentDate)

	if !paid.After(due) {
		return *base
	}

	daysOverdue := int(paid.Sub(due).Hours() / 24)
	fine := float64(daysOverdue) * dailyFine
	if fine < 0 {
		fine = 0
	}
	return *base + fine
}

// ComputeDueAmount is the on-demand composition of rate resolution and fine
// accrual. The caller invokes it explicitly; there is no implicit
// recomputation on data changes. An unset payment date defaults to now.
func ComputeDueAmount(
	apartment *storeModels.Apartments,
	collection *storeModels.ExpectedCollections,
	flat *storeModels.Flats,
	paymentDate *time.Time,
) (float64, error) {

	base, err := ResolveBaseAmount(apartment, collection, flat)
	if err != nil {
		return 0, err
	}

	effective := time.Now()
	if paymentDate != nil {
		effective = *paymentDate
	}

	return AccrueFine(base, collection.DueDate, collection.DailyFine, effective), nil
}

// truncateToMidnight pins the calendar date into UTC so that due and payment
// dates carrying different zones still differ by whole days.
func truncateToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
