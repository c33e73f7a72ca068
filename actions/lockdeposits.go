// Package actions derives on-chain call sequences for voucher requests.
// LockDepositsAction is the deposit-locking action: one fee-inclusive
// approve per ERC-20 asset, then a single lockUserDeposit call on the
// paymaster carrying the native value.
package actions

import (
	"context"
	"math/big"

	eil "github.com/ChiHaoLu/eil-sdk"
	"github.com/ChiHaoLu/eil-sdk/evm"
	"github.com/ChiHaoLu/eil-sdk/fees"
)

// LockDepositsAction owns one voucher request and the native amount cached
// at construction. Construction validates the asset list once; EncodeCalls
// is pure and may be invoked any number of times, including concurrently.
type LockDepositsAction struct {
	req          *eil.VoucherRequest
	nativeAmount *big.Int
}

// NewLockDepositsAction validates the request's native-asset placement and
// caches the native amount (zero when no native entry exists).
//
// A native-sentinel entry anywhere but index 0 fails with ErrNativeNotFirst;
// a native entry whose amount is symbolic fails with ErrNativeAmountNotFixed.
func NewLockDepositsAction(req *eil.VoucherRequest) (*LockDepositsAction, error) {
	native := new(big.Int)
	for i, asset := range req.Assets {
		if !evm.IsNativeToken(asset.Token) {
			continue
		}
		if i != 0 {
			return nil, eil.ErrNativeNotFirst
		}
		fixed, ok := asset.Amount.Fixed()
		if !ok {
			return nil, eil.ErrNativeAmountNotFixed
		}
		native = new(big.Int).Set(fixed)
	}
	return &LockDepositsAction{req: req, nativeAmount: native}, nil
}

// VoucherRequest returns the request this action was constructed for.
func (a *LockDepositsAction) VoucherRequest() *eil.VoucherRequest {
	return a.req
}

// NativeAmount returns the raw native amount cached at construction,
// before any fee surcharge.
func (a *LockDepositsAction) NativeAmount() *big.Int {
	return new(big.Int).Set(a.nativeAmount)
}

// EncodeCalls derives the ordered call list for the batch context's chain:
// approvals in asset order, then exactly one lockUserDeposit call. The fee
// surcharge applies exactly once, to the asset at index 0, whether that is
// the native amount or an ERC-20.
//
// Fails with ErrVoucherNotFound when the registry cannot resolve the
// request; no partial call list is returned on any error.
func (a *LockDepositsAction) EncodeCalls(ctx context.Context, bctx eil.BatchContext) ([]eil.Call, error) {
	info, ok := bctx.Resolve(a.req.ID)
	if !ok {
		return nil, eil.ErrVoucherNotFound
	}

	feePercent := 0.0
	if fc := bctx.FeeConfig(); fc != nil {
		feePercent = fc.MaxFeePercent
	}

	nativeValue := new(big.Int).Set(a.nativeAmount)
	if nativeValue.Sign() > 0 && feePercent > 0 {
		nativeValue = fees.AmountWithFee(a.nativeAmount, feePercent)
	}

	chain := bctx.ChainID()
	paymaster, err := bctx.PaymasterAddress(chain)
	if err != nil {
		return nil, err
	}

	calls := make([]eil.Call, 0, len(a.req.Assets)+1)
	for i, asset := range a.req.Assets {
		address, err := bctx.TokenAddress(chain, asset.Token)
		if err != nil {
			return nil, err
		}
		if evm.IsNativeToken(address) {
			// Native value is folded into the lock call, never approved.
			continue
		}
		amount := asset.Amount
		if i == 0 && feePercent > 0 {
			// The native slot was empty, so this ERC-20 bears the fee.
			if fixed, ok := asset.Amount.Fixed(); ok {
				amount = eil.Wei(fees.AmountWithFee(fixed, feePercent))
			}
		}
		calls = append(calls, eil.ContractCall{
			To:       address,
			Function: evm.FunctionApprove,
			Args:     []interface{}{paymaster, amount},
		})
	}

	calls = append(calls, eil.ContractCall{
		To:       paymaster,
		Function: evm.FunctionLockUserDeposit,
		Args:     []interface{}{info.VoucherRequest},
		Value:    nativeValue,
	})
	return calls, nil
}
