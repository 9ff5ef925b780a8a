// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"fmt"
	"time"

	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// PeriodKind identifies the variant of a reporting period.
type PeriodKind string

const (
	PeriodKindMonthly   PeriodKind = "monthly"
	PeriodKindQuarterly PeriodKind = "quarterly"
	PeriodKindCustom    PeriodKind = "custom"
)

// Period is a tagged variant describing a reporting window: a calendar month,
// a calendar quarter, or an explicit custom date range. Monthly and quarterly
// periods use Year plus Month/Quarter; custom periods use From and To.
type Period struct {
	Kind    PeriodKind
	Year    int
	Month   time.Month // 1..12, monthly only
	Quarter int        // 1..4, quarterly only
	From    time.Time  // custom only
	To      time.Time  // custom only
}

// DateRange is a concrete inclusive window. End is the last instant of the
// last covered day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Monthly builds a monthly period.
func Monthly(year int, month time.Month) Period {
	return Period{Kind: PeriodKindMonthly, Year: year, Month: month}
}

// Quarterly builds a quarterly period.
func Quarterly(year, quarter int) Period {
	return Period{Kind: PeriodKindQuarterly, Year: year, Quarter: quarter}
}

// Custom builds a custom period. Only the calendar day of From and To is
// significant; Range snaps them to day boundaries.
func Custom(from, to time.Time) Period {
	return Period{Kind: PeriodKindCustom, From: from, To: to}
}

// Validate checks the period's fields against its variant.
func (p Period) Validate() error {
	switch p.Kind {
	case PeriodKindMonthly:
		if p.Month < time.January || p.Month > time.December {
			return domainerror.NewPeriodError(
				domainerror.ErrCodeInvalidPeriodMonth,
				fmt.Sprintf("month must be between 1 and 12, got %d", int(p.Month)),
				domainerror.ErrInvalidPeriodMonth,
			)
		}
	case PeriodKindQuarterly:
		if p.Quarter < 1 || p.Quarter > 4 {
			return domainerror.NewPeriodError(
				domainerror.ErrCodeInvalidPeriodQuarter,
				fmt.Sprintf("quarter must be between 1 and 4, got %d", p.Quarter),
				domainerror.ErrInvalidPeriodQuarter,
			)
		}
	case PeriodKindCustom:
		if p.From.IsZero() || p.To.IsZero() {
			return domainerror.NewPeriodError(
				domainerror.ErrCodeMissingPeriodDates,
				"custom period requires both from and to dates",
				domainerror.ErrMissingPeriodDates,
			)
		}
		if dayStart(p.To).Before(dayStart(p.From)) {
			return domainerror.NewPeriodError(
				domainerror.ErrCodeInvalidPeriodRange,
				"period end must not be before period start",
				domainerror.ErrInvalidPeriodRange,
			)
		}
	default:
		return domainerror.NewPeriodError(
			domainerror.ErrCodeInvalidPeriodKind,
			fmt.Sprintf("unknown period kind %q", string(p.Kind)),
			domainerror.ErrInvalidPeriodKind,
		)
	}
	return nil
}

// Range derives the concrete inclusive date range for the period.
func (p Period) Range() (DateRange, error) {
	if err := p.Validate(); err != nil {
		return DateRange{}, err
	}

	switch p.Kind {
	case PeriodKindMonthly:
		start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}, nil
	case PeriodKindQuarterly:
		start := time.Date(p.Year, time.Month((p.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 3, -1))}, nil
	default:
		return DateRange{Start: dayStart(p.From), End: endOfDay(p.To)}, nil
	}
}

// Next returns the period immediately after this one. Monthly rolls month
// 12 into January of the next year; quarterly rolls quarter 4 into Q1 of the
// next year. Custom periods have no defined successor and are returned
// unchanged.
func (p Period) Next() Period {
	switch p.Kind {
	case PeriodKindMonthly:
		if p.Month == time.December {
			return Monthly(p.Year+1, time.January)
		}
		return Monthly(p.Year, p.Month+1)
	case PeriodKindQuarterly:
		if p.Quarter == 4 {
			return Quarterly(p.Year+1, 1)
		}
		return Quarterly(p.Year, p.Quarter+1)
	default:
		return p
	}
}

// Previous returns the period immediately before this one, with the same
// year-carry rules as Next. Custom periods are returned unchanged.
func (p Period) Previous() Period {
	switch p.Kind {
	case PeriodKindMonthly:
		if p.Month == time.January {
			return Monthly(p.Year-1, time.December)
		}
		return Monthly(p.Year, p.Month-1)
	case PeriodKindQuarterly:
		if p.Quarter == 1 {
			return Quarterly(p.Year-1, 4)
		}
		return Quarterly(p.Year, p.Quarter-1)
	default:
		return p
	}
}

// Label generates a human-readable label for the period.
// Formats: "November 2025", "2025 Q3", "2025-01-01 – 2025-01-31".
func (p Period) Label() string {
	switch p.Kind {
	case PeriodKindMonthly:
		return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
	case PeriodKindQuarterly:
		return fmt.Sprintf("%d Q%d", p.Year, p.Quarter)
	default:
		return fmt.Sprintf("%s – %s", p.From.Format("2006-01-02"), p.To.Format("2006-01-02"))
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// endOfDay returns the last instant of t's calendar day at millisecond
// resolution, matching the precision of the stored business dates.
func endOfDay(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}
