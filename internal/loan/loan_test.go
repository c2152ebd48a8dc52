package loan

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
		wantMonthly       float64
		wantTotal         float64
		wantInterest      float64
	}{
		{
			name:              "standard 5-year loan",
			principal:         10000,
			annualRatePercent: 5.5,
			termYears:         5,
			wantMonthly:       191.01,
			wantTotal:         11460.70,
			wantInterest:      1460.70,
		},
		{
			name:              "1-year loan at low rate",
			principal:         1000,
			annualRatePercent: 0.1,
			termYears:         1,
			wantMonthly:       83.38,
			wantTotal:         1000.54,
			wantInterest:      0.54,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.principal, tt.annualRatePercent, tt.termYears)

			if math.Abs(got.MonthlyPayment-tt.wantMonthly) > 0.005 {
				t.Errorf("MonthlyPayment = %.4f, want %.2f", got.MonthlyPayment, tt.wantMonthly)
			}
			if math.Abs(got.TotalPayment-tt.wantTotal) > 0.005 {
				t.Errorf("TotalPayment = %.4f, want %.2f", got.TotalPayment, tt.wantTotal)
			}
			if math.Abs(got.TotalInterest-tt.wantInterest) > 0.005 {
				t.Errorf("TotalInterest = %.4f, want %.2f", got.TotalInterest, tt.wantInterest)
			}
		})
	}
}

func TestCalculateDegenerateInputs(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
	}{
		{"zero principal", 0, 5.5, 5},
		{"negative principal", -10000, 5.5, 5},
		{"zero rate", 10000, 0, 5},
		{"negative rate", 10000, -1, 5},
		{"zero term", 10000, 5.5, 0},
		{"negative term", 10000, 5.5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.principal, tt.annualRatePercent, tt.termYears)
			if got != (Result{}) {
				t.Errorf("Calculate(%v, %v, %v) = %+v, want zero result",
					tt.principal, tt.annualRatePercent, tt.termYears, got)
			}
		})
	}
}

func TestCalculatePositiveDomain(t *testing.T) {
	principals := []float64{1000, 10000, 250000, 1000000}
	rates := []float64{0.1, 3.5, 12, 20}
	terms := []int{1, 5, 15, 30}

	for _, p := range principals {
		for _, r := range rates {
			for _, n := range terms {
				got := Calculate(p, r, n)
				if got.MonthlyPayment <= 0 {
					t.Errorf("Calculate(%v, %v, %v).MonthlyPayment = %v, want > 0", p, r, n, got.MonthlyPayment)
				}
				if got.TotalPayment < p {
					t.Errorf("Calculate(%v, %v, %v).TotalPayment = %v, want >= principal", p, r, n, got.TotalPayment)
				}
			}
		}
	}
}

func TestCalculateMaximumDomainInputs(t *testing.T) {
	got := Calculate(1000000, 20, 30)

	if math.IsNaN(got.MonthlyPayment) || math.IsInf(got.MonthlyPayment, 0) {
		t.Fatalf("MonthlyPayment = %v, want finite", got.MonthlyPayment)
	}
	if got.MonthlyPayment <= 0 {
		t.Fatalf("MonthlyPayment = %v, want > 0", got.MonthlyPayment)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	first := Calculate(123456.78, 7.25, 17)
	second := Calculate(123456.78, 7.25, 17)

	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestCalculateMonotonicInPrincipal(t *testing.T) {
	prev := 0.0
	for p := 1000.0; p <= 1000000; p *= 2 {
		got := Calculate(p, 5.5, 10)
		if got.MonthlyPayment <= prev {
			t.Fatalf("MonthlyPayment not strictly increasing at principal %v: %v <= %v",
				p, got.MonthlyPayment, prev)
		}
		prev = got.MonthlyPayment
	}
}
