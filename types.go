// Package eil provides the core data model for deriving on-chain call
// sequences from voucher requests that lock deposit assets with a paymaster
// contract. The actions package performs the derivation; this package holds
// the types and capability interfaces shared across the SDK.
package eil

import (
	"encoding/json"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ChainID identifies an EVM chain (e.g., 8453 for Base).
type ChainID uint64

// RefPrefix marks the JSON form of a symbolic amount reference.
const RefPrefix = "@"

// Amount is either a concrete wei value or a symbolic reference to the output
// of an earlier step in the enclosing batch. Symbolic amounts are resolved by
// the orchestrator, not by this SDK; the only place the SDK insists on a
// concrete value is the native slot of a voucher request.
type Amount struct {
	fixed *big.Int
	ref   string
}

// Wei returns a concrete Amount. The value is copied; nil is treated as zero.
func Wei(v *big.Int) Amount {
	if v == nil {
		return Amount{fixed: new(big.Int)}
	}
	return Amount{fixed: new(big.Int).Set(v)}
}

// WeiFromString parses a non-negative decimal string into a concrete Amount.
func WeiFromString(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if ok && v.Sign() >= 0 {
		return Amount{fixed: v}, nil
	}
	return Amount{}, fmt.Errorf("eil: invalid amount %q", s)
}

// Ref returns a symbolic Amount referencing a prior batch output.
func Ref(name string) Amount {
	return Amount{ref: name}
}

// IsFixed reports whether the amount is a concrete value.
func (a Amount) IsFixed() bool {
	return a.fixed != nil
}

// Fixed returns the concrete value, or false for symbolic amounts.
// The returned big.Int must not be mutated by the caller.
func (a Amount) Fixed() (*big.Int, bool) {
	if a.fixed == nil {
		return nil, false
	}
	return a.fixed, true
}

// RefName returns the symbolic reference name, or false for fixed amounts.
func (a Amount) RefName() (string, bool) {
	if a.fixed != nil {
		return "", false
	}
	return a.ref, true
}

// String renders the decimal value, or "@name" for symbolic amounts.
func (a Amount) String() string {
	if a.fixed != nil {
		return a.fixed.String()
	}
	return RefPrefix + a.ref
}

// MarshalJSON encodes the amount as its String form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a decimal string or an "@name" reference.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.HasPrefix(s, RefPrefix) {
		*a = Ref(strings.TrimPrefix(s, RefPrefix))
		return nil
	}
	parsed, err := WeiFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AssetAmount is one deposit entry of a voucher request. Token is either an
// ERC-20 contract address or the native-currency sentinel (see evm.NativeToken).
type AssetAmount struct {
	Token  string `json:"token"`
	Amount Amount `json:"amount"`
}

// VoucherRequest is an ordered list of deposit assets to lock with the
// paymaster, plus request-identifying metadata. Asset order is significant:
// the asset at index 0 bears the protocol fee surcharge.
type VoucherRequest struct {
	ID       string                 `json:"id"`
	Assets   []AssetAmount          `json:"assets"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// NewVoucherRequest creates a voucher request with a fresh request ID.
func NewVoucherRequest(assets []AssetAmount) *VoucherRequest {
	return &VoucherRequest{
		ID:     uuid.NewString(),
		Assets: assets,
	}
}

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// Validate checks the structural shape of the request: a non-empty ID, at
// least one asset, and address-shaped token identifiers. Native-asset
// placement rules are enforced by the action constructor, not here.
func (v *VoucherRequest) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("eil: voucher request ID is required")
	}
	if len(v.Assets) == 0 {
		return fmt.Errorf("eil: voucher request has no assets")
	}
	for i, asset := range v.Assets {
		if !addressPattern.MatchString(asset.Token) {
			return fmt.Errorf("eil: asset %d has invalid token identifier %q", i, asset.Token)
		}
	}
	return nil
}

// FeeConfig carries the protocol fee fraction (0.01 == 1%). A nil FeeConfig
// and a zero MaxFeePercent both mean no fee.
type FeeConfig struct {
	MaxFeePercent float64 `json:"maxFeePercent"`
}

// VoucherInternalInfo is the batch-internal record a registry resolves a
// voucher request to. VoucherRequest is opaque to the SDK; it is passed
// through as the single argument of the lockUserDeposit call.
type VoucherInternalInfo struct {
	VoucherRequest interface{} `json:"voucherRequest"`
}
