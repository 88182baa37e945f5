package booking

import (
	"github.com/shopspring/decimal"

	"github.com/medibook/medibook/internal/platform/money"
)

// The system-wide split ratio: 60% of every payment goes to the doctor, the
// remainder to the hospital. Isolated here so a future per-hospital or
// per-doctor policy only touches this file.
var doctorShareRatio = decimal.New(6, -1) // 0.6

// ComputeShares splits an amount into the doctor's and hospital's share. The
// doctor share is amount × 0.6 rounded to the minor unit; the hospital share
// is the exact remainder, so the two always sum back to the amount with no
// rounding drift.
func ComputeShares(amountPaid decimal.Decimal) (doctorShare, hospitalShare decimal.Decimal) {
	doctorShare = amountPaid.Mul(doctorShareRatio).Round(money.MinorUnitPlaces)
	hospitalShare = amountPaid.Sub(doctorShare)
	return doctorShare, hospitalShare
}
