package booking

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amt(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeShares(t *testing.T) {
	cases := []struct {
		amount   string
		doctor   string
		hospital string
	}{
		{"500.00", "300.00", "200.00"},
		{"1000", "600", "400"},
		{"0", "0", "0"},
		{"0.01", "0.01", "0.00"},    // 0.006 rounds up
		{"100.01", "60.01", "40.00"},
		{"33.33", "20.00", "13.33"}, // 19.998 rounds to 20.00
		{"99999999.99", "59999999.99", "40000000.00"},
	}
	for _, tc := range cases {
		doctor, hospital := ComputeShares(amt(tc.amount))
		if !doctor.Equal(amt(tc.doctor)) {
			t.Errorf("ComputeShares(%s): doctor share = %s, want %s", tc.amount, doctor, tc.doctor)
		}
		if !hospital.Equal(amt(tc.hospital)) {
			t.Errorf("ComputeShares(%s): hospital share = %s, want %s", tc.amount, hospital, tc.hospital)
		}
	}
}

// The split must never create or destroy money, whatever the rounding does.
func TestComputeShares_SumsBackExactly(t *testing.T) {
	for _, s := range []string{"0.01", "0.05", "1.11", "33.33", "123.45", "999.99", "500.00", "0.03"} {
		amount := amt(s)
		doctor, hospital := ComputeShares(amount)
		if !doctor.Add(hospital).Equal(amount) {
			t.Errorf("shares of %s sum to %s", s, doctor.Add(hospital))
		}
		if doctor.IsNegative() || hospital.IsNegative() {
			t.Errorf("shares of %s are negative: %s / %s", s, doctor, hospital)
		}
	}
}
