package utils

import (
	"fmt"
	"time"
)

const fiscalDateFormat = "2006-01-02"

// FiscalQuarter maps a payment date to its society fiscal quarter label
// Q<n>-<year>, with the fiscal year starting in April (months 4-6 are Q1,
// 1-3 are Q4). The label always uses the calendar year of the date itself,
// not an adjusted fiscal year. An empty or unparseable date falls back to
// the submission instant.
func FiscalQuarter(paymentDate string, fallback time.Time) string {
	at := fallback
	if paymentDate != "" {
		if parsed, err := time.Parse(fiscalDateFormat, paymentDate); err == nil {
			at = parsed
		}
	}
	return FiscalQuarterOf(at)
}

func FiscalQuarterOf(at time.Time) string {
	var quarter int
	switch month := int(at.Month()); {
	case month >= 4 && month <= 6:
		quarter = 1
	case month >= 7 && month <= 9:
		quarter = 2
	case month >= 10:
		quarter = 3
	default:
		quarter = 4
	}
	return fmt.Sprintf("Q%d-%d", quarter, at.Year())
}
