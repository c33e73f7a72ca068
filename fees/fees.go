// Package fees implements the protocol fee surcharge applied to the
// fee-bearing asset of a voucher request. Fees are expressed in basis points
// over a fixed denominator and computed with ceiling division, so the
// approved or sent amount is never insufficient to cover the fee; the cost
// is at most one unit of over-approval in the smallest denomination.
package fees

import "math/big"

// BpsDenominator is the fixed basis-point denominator. 1 bps == 0.01%.
const BpsDenominator = 10_000

// PercentToBps converts a fee fraction (0.01 == 1%) to basis points,
// truncating toward zero. Precision finer than a basis point is dropped,
// not rounded. Non-positive percentages map to zero.
func PercentToBps(percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	return int64(percent * BpsDenominator)
}

// Fee returns ceil(amount * bps / BpsDenominator). A nil or non-positive
// amount, or non-positive bps, yields zero.
func Fee(amount *big.Int, bps int64) *big.Int {
	if amount == nil || amount.Sign() <= 0 || bps <= 0 {
		return new(big.Int)
	}
	fee := new(big.Int).Mul(amount, big.NewInt(bps))
	fee.Add(fee, big.NewInt(BpsDenominator-1))
	return fee.Div(fee, big.NewInt(BpsDenominator))
}

// AmountWithFee returns amount plus the protocol fee for the given fee
// fraction. feePercent <= 0 returns the amount unchanged. The input is never
// mutated; the result is always a fresh big.Int.
func AmountWithFee(amount *big.Int, feePercent float64) *big.Int {
	if amount == nil {
		return new(big.Int)
	}
	out := new(big.Int).Set(amount)
	bps := PercentToBps(feePercent)
	if bps == 0 {
		return out
	}
	return out.Add(out, Fee(amount, bps))
}
