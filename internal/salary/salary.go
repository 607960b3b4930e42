package salary

import (
	"fmt"
	"log/slog"
)

// Fixed working-time assumptions: 20 days a month, 7h45m a day.
const (
	WorkDaysPerMonth = 20
	WorkHoursPerDay  = 7.75
)

// ValidationError reports a rejected input by field. Handlers translate it to
// a 400 with the message as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MinuteRateResult is the full computation record for a monthly income:
// the income, the fixed assumptions, and the derived totals and per-minute
// wage. The rate is kept unrounded; rounding is up to the presentation.
type MinuteRateResult struct {
	MonthlyIncome    float64 `json:"monthly_income"`
	WorkDaysPerMonth int     `json:"work_days_per_month"`
	WorkHoursPerDay  float64 `json:"work_hours_per_day"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	TotalWorkMinutes float64 `json:"total_work_minutes"`
	MinuteRate       float64 `json:"average_minute_salary"`
}

// ComputeMinuteRate derives the per-minute wage from a monthly income.
// The income must be strictly positive.
func ComputeMinuteRate(monthlyIncome float64) (*MinuteRateResult, error) {
	if monthlyIncome < 0 {
		return nil, &ValidationError{Field: "monthly_income", Message: "monthly income must be zero or greater"}
	}
	if monthlyIncome == 0 {
		return nil, &ValidationError{Field: "monthly_income", Message: "monthly income must be greater than zero"}
	}

	totalHours := float64(WorkDaysPerMonth) * WorkHoursPerDay
	totalMinutes := totalHours * 60
	rate := monthlyIncome / totalMinutes

	slog.Debug("computed minute rate",
		"monthly_income", monthlyIncome,
		"total_work_minutes", totalMinutes,
		"minute_rate", rate)

	return &MinuteRateResult{
		MonthlyIncome:    monthlyIncome,
		WorkDaysPerMonth: WorkDaysPerMonth,
		WorkHoursPerDay:  WorkHoursPerDay,
		TotalWorkHours:   totalHours,
		TotalWorkMinutes: totalMinutes,
		MinuteRate:       rate,
	}, nil
}

// CommuteEvaluation is the validated rent/time record. EffectiveRent equals
// the nominal rent unless both the reference-station time and the minute rate
// were supplied; the optional inputs are echoed back only when present.
type CommuteEvaluation struct {
	Status          string   `json:"status"`
	Message         string   `json:"message"`
	Rent            float64  `json:"rent_input"`
	TimeToStation   float64  `json:"time_to_station"`
	TimeToReference *float64 `json:"time_to_reference,omitempty"`
	MinuteRate      *float64 `json:"minute_salary,omitempty"`
	EffectiveRent   float64  `json:"real_rent_fee"`
}

// EvaluateCommuteRent validates the rent and commute-time inputs and, when
// both the minute rate and the reference-station time are supplied, folds the
// imputed commuting cost into the rent:
//
//	effective = rent + (timeToReference + timeToStation) * minuteRate * 20
//
// The 20 is the fixed work-days-per-month multiplier.
func EvaluateCommuteRent(rent, timeToStation *float64, timeToReference, minuteRate *float64) (*CommuteEvaluation, error) {
	if rent == nil {
		return nil, &ValidationError{Field: "rent_input", Message: "rent is required"}
	}
	if timeToStation == nil {
		return nil, &ValidationError{Field: "time_to_station", Message: "time to the station is required"}
	}
	if *rent < 0 {
		return nil, &ValidationError{Field: "rent_input", Message: "rent must be zero or greater"}
	}
	if *timeToStation < 0 {
		return nil, &ValidationError{Field: "time_to_station", Message: "time to the station must be zero or greater"}
	}
	if timeToReference != nil && *timeToReference < 0 {
		return nil, &ValidationError{Field: "time_to_reference", Message: "time to the reference station must be zero or greater"}
	}
	if minuteRate != nil && *minuteRate < 0 {
		return nil, &ValidationError{Field: "minute_salary", Message: "minute salary must be zero or greater"}
	}

	effective := *rent
	if minuteRate != nil && timeToReference != nil {
		commute := *timeToReference + *timeToStation
		effective = *rent + commute*(*minuteRate)*WorkDaysPerMonth
	} else {
		slog.Debug("effective rent left at nominal rent; minute rate or reference time missing")
	}

	return &CommuteEvaluation{
		Status:          "ok",
		Message:         "input accepted",
		Rent:            *rent,
		TimeToStation:   *timeToStation,
		TimeToReference: timeToReference,
		MinuteRate:      minuteRate,
		EffectiveRent:   effective,
	}, nil
}
