package salary

import (
	"errors"
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestComputeMinuteRate(t *testing.T) {
	res, err := ComputeMinuteRate(300000)
	if err != nil {
		t.Fatalf("ComputeMinuteRate: %v", err)
	}
	if res.TotalWorkHours != 155 {
		t.Errorf("total hours: got %v, want 155", res.TotalWorkHours)
	}
	if res.TotalWorkMinutes != 9300 {
		t.Errorf("total minutes: got %v, want 9300", res.TotalWorkMinutes)
	}
	want := 300000.0 / 9300.0
	if res.MinuteRate != want {
		t.Errorf("minute rate: got %v, want %v", res.MinuteRate, want)
	}
	if math.Abs(res.MinuteRate-32.26) > 0.01 {
		t.Errorf("minute rate: got %v, want ~32.26", res.MinuteRate)
	}
	if res.WorkDaysPerMonth != 20 || res.WorkHoursPerDay != 7.75 {
		t.Errorf("unexpected constants: %+v", res)
	}
}

func TestComputeMinuteRate_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		income float64
	}{
		{"negative", -1},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeMinuteRate(tt.income)
			if err == nil {
				t.Fatalf("expected error, got %+v", res)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Field != "monthly_income" {
				t.Errorf("field: got %q, want monthly_income", verr.Field)
			}
		})
	}
}

func TestComputeMinuteRate_DistinctMessages(t *testing.T) {
	_, errNeg := ComputeMinuteRate(-100)
	_, errZero := ComputeMinuteRate(0)
	if errNeg.Error() == errZero.Error() {
		t.Errorf("negative and zero income should produce distinct messages, both were %q", errNeg.Error())
	}
}

func TestEvaluateCommuteRent_NoOptionals(t *testing.T) {
	res, err := EvaluateCommuteRent(fp(100000), fp(5), nil, nil)
	if err != nil {
		t.Fatalf("EvaluateCommuteRent: %v", err)
	}
	if res.EffectiveRent != 100000 {
		t.Errorf("effective rent: got %v, want 100000", res.EffectiveRent)
	}
	if res.TimeToReference != nil || res.MinuteRate != nil {
		t.Errorf("optionals should stay nil: %+v", res)
	}
}

func TestEvaluateCommuteRent_WithCommuteCost(t *testing.T) {
	res, err := EvaluateCommuteRent(fp(100000), fp(5), fp(10), fp(32.26))
	if err != nil {
		t.Fatalf("EvaluateCommuteRent: %v", err)
	}
	// 100000 + (10+5)*32.26*20 = 109678
	if math.Abs(res.EffectiveRent-109678) > 1e-9 {
		t.Errorf("effective rent: got %v, want 109678", res.EffectiveRent)
	}
	if res.TimeToReference == nil || *res.TimeToReference != 10 {
		t.Errorf("time_to_reference not echoed: %+v", res)
	}
	if res.MinuteRate == nil || *res.MinuteRate != 32.26 {
		t.Errorf("minute_salary not echoed: %+v", res)
	}
}

func TestEvaluateCommuteRent_OneOptionalIsNotEnough(t *testing.T) {
	res, err := EvaluateCommuteRent(fp(80000), fp(3), fp(12), nil)
	if err != nil {
		t.Fatalf("EvaluateCommuteRent: %v", err)
	}
	if res.EffectiveRent != 80000 {
		t.Errorf("effective rent with only reference time: got %v, want 80000", res.EffectiveRent)
	}

	res, err = EvaluateCommuteRent(fp(80000), fp(3), nil, fp(30))
	if err != nil {
		t.Fatalf("EvaluateCommuteRent: %v", err)
	}
	if res.EffectiveRent != 80000 {
		t.Errorf("effective rent with only minute rate: got %v, want 80000", res.EffectiveRent)
	}
}

func TestEvaluateCommuteRent_Validation(t *testing.T) {
	tests := []struct {
		name      string
		rent      *float64
		station   *float64
		reference *float64
		rate      *float64
		wantField string
	}{
		{"missing rent", nil, fp(5), nil, nil, "rent_input"},
		{"missing station time", fp(100000), nil, nil, nil, "time_to_station"},
		{"negative rent", fp(-1), fp(5), nil, nil, "rent_input"},
		{"negative station time", fp(100000), fp(-5), nil, nil, "time_to_station"},
		{"negative reference time", fp(100000), fp(5), fp(-1), fp(30), "time_to_reference"},
		{"negative minute rate", fp(100000), fp(5), fp(10), fp(-30), "minute_salary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EvaluateCommuteRent(tt.rent, tt.station, tt.reference, tt.rate)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("field: got %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestEvaluateCommuteRent_ZeroIsAllowed(t *testing.T) {
	res, err := EvaluateCommuteRent(fp(0), fp(0), fp(0), fp(0))
	if err != nil {
		t.Fatalf("zero values should pass validation: %v", err)
	}
	if res.EffectiveRent != 0 {
		t.Errorf("effective rent: got %v, want 0", res.EffectiveRent)
	}
}
