package fees

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentToBps(t *testing.T) {
	require.Equal(t, int64(100), PercentToBps(0.01))
	require.Equal(t, int64(200), PercentToBps(0.02))
	require.Equal(t, int64(50), PercentToBps(0.005))
	require.Equal(t, int64(0), PercentToBps(0))
	require.Equal(t, int64(0), PercentToBps(-0.01))

	// Precision finer than a basis point is truncated, not rounded.
	require.Equal(t, int64(1), PercentToBps(0.00015))
	require.Equal(t, int64(1234), PercentToBps(0.12345))
}

func TestAmountWithFeeZeroPercent(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 1000000} {
		in := big.NewInt(amount)
		out := AmountWithFee(in, 0)
		require.Zero(t, in.Cmp(out), "amount %d changed with zero fee", amount)
	}
}

func TestAmountWithFeeNegativePercentTreatedAsZero(t *testing.T) {
	out := AmountWithFee(big.NewInt(1000), -0.5)
	require.Equal(t, "1000", out.String())
}

func TestAmountWithFeeZeroAmount(t *testing.T) {
	out := AmountWithFee(big.NewInt(0), 0.01)
	require.Equal(t, "0", out.String())
}

func TestAmountWithFeeScenarios(t *testing.T) {
	// 1000 + ceil(1000*100/10000) = 1010
	require.Equal(t, "1010", AmountWithFee(big.NewInt(1000), 0.01).String())
	// 500 + ceil(500*200/10000) = 510
	require.Equal(t, "510", AmountWithFee(big.NewInt(500), 0.02).String())
	// Ceiling kicks in: 1 + ceil(1*100/10000) = 2
	require.Equal(t, "2", AmountWithFee(big.NewInt(1), 0.01).String())
}

func TestAmountWithFeeDoesNotMutateInput(t *testing.T) {
	in := big.NewInt(1000)
	_ = AmountWithFee(in, 0.01)
	require.Equal(t, "1000", in.String())
}

// The surcharge must be the minimal integer s with s*10000 >= amount*bps.
func TestFeeIsMinimalCeiling(t *testing.T) {
	amounts := []int64{1, 3, 7, 99, 100, 101, 9999, 10000, 10001, 123456789}
	bpsValues := []int64{1, 50, 100, 200, 333, 9999, 10000}

	for _, amount := range amounts {
		for _, bps := range bpsValues {
			fee := Fee(big.NewInt(amount), bps)
			product := new(big.Int).Mul(big.NewInt(amount), big.NewInt(bps))

			scaled := new(big.Int).Mul(fee, big.NewInt(BpsDenominator))
			require.True(t, scaled.Cmp(product) >= 0,
				"fee %s too small for amount=%d bps=%d", fee, amount, bps)

			if fee.Sign() > 0 {
				smaller := new(big.Int).Sub(fee, big.NewInt(1))
				smaller.Mul(smaller, big.NewInt(BpsDenominator))
				require.True(t, smaller.Cmp(product) < 0,
					"fee %s not minimal for amount=%d bps=%d", fee, amount, bps)
			}
		}
	}
}

func TestAmountWithFeeMonotonicInAmount(t *testing.T) {
	prev := new(big.Int)
	for amount := int64(0); amount <= 2000; amount += 37 {
		out := AmountWithFee(big.NewInt(amount), 0.01)
		require.True(t, out.Cmp(prev) >= 0, "not monotonic at amount=%d", amount)
		prev = out
	}
}

func TestAmountWithFeeLargeAmounts(t *testing.T) {
	// 1e24 wei at 1%: no overflow, exact arithmetic.
	amount, ok := new(big.Int).SetString("1000000000000000000000000", 10)
	require.True(t, ok)
	want, ok := new(big.Int).SetString("1010000000000000000000000", 10)
	require.True(t, ok)
	require.Zero(t, want.Cmp(AmountWithFee(amount, 0.01)))
}
