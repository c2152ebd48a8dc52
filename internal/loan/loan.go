// Package loan computes fixed monthly payments for amortizing loans using
// the standard annuity formula.
package loan

import "math"

// Result holds the derived values for a fixed-payment amortizing loan.
// All values are unrounded; formatting to currency is a display concern.
type Result struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Calculate returns the fixed monthly payment for a loan of the given
// principal at an annual nominal rate (percent) over termYears, plus the
// total paid and total interest.
//
// Degenerate inputs (non-positive principal, rate, or term) yield the zero
// Result rather than an error: the calculator is re-run on every input
// change and must never fail on partial input.
func Calculate(principal, annualRatePercent float64, termYears int) Result {
	monthlyRate := annualRatePercent / 100 / 12
	numberOfPayments := termYears * 12

	if principal <= 0 || numberOfPayments <= 0 || monthlyRate <= 0 {
		return Result{}
	}

	power := math.Pow(1+monthlyRate, float64(numberOfPayments))
	monthlyPayment := principal * monthlyRate * power / (power - 1)
	totalPayment := monthlyPayment * float64(numberOfPayments)

	return Result{
		MonthlyPayment: monthlyPayment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment - principal,
	}
}
