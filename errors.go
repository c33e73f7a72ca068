package eil

import "errors"

// Configuration errors, detected when an action is constructed from a
// malformed voucher request. Construction aborts; no action is produced.
var (
	ErrNativeNotFirst       = errors.New("eil: native currency must be first asset")
	ErrNativeAmountNotFixed = errors.New("eil: native amount must be a fixed value")
)

// Lookup errors, detected at call-derivation time.
var (
	ErrVoucherNotFound = errors.New("eil: voucher request not found")
	ErrUnknownChain    = errors.New("eil: unknown chain")
	ErrNoPaymaster     = errors.New("eil: no paymaster configured for chain")
)

// IsConfigError reports whether err is a construction-time configuration
// error, as opposed to a derivation-time lookup failure.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNativeNotFirst) || errors.Is(err, ErrNativeAmountNotFixed)
}
