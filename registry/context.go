package registry

import (
	eil "github.com/ChiHaoLu/eil-sdk"
)

// Context is a concrete eil.BatchContext assembled from its parts. The zero
// value is not usable; populate every field.
type Context struct {
	// Chain is the chain the derived calls target.
	Chain eil.ChainID
	// Fees is the protocol fee configuration; nil means no fee.
	Fees *eil.FeeConfig
	// Addresses resolves paymaster and token addresses.
	Addresses eil.AddressBook
	// Vouchers resolves voucher requests to batch-internal records.
	Vouchers eil.VoucherRegistry
}

// ChainID implements eil.BatchContext.
func (c *Context) ChainID() eil.ChainID { return c.Chain }

// FeeConfig implements eil.BatchContext.
func (c *Context) FeeConfig() *eil.FeeConfig { return c.Fees }

// PaymasterAddress implements eil.PaymasterDirectory.
func (c *Context) PaymasterAddress(chain eil.ChainID) (string, error) {
	return c.Addresses.PaymasterAddress(chain)
}

// TokenAddress implements eil.TokenResolver.
func (c *Context) TokenAddress(chain eil.ChainID, token string) (string, error) {
	return c.Addresses.TokenAddress(chain, token)
}

// Resolve implements eil.VoucherRegistry.
func (c *Context) Resolve(requestID string) (*eil.VoucherInternalInfo, bool) {
	return c.Vouchers.Resolve(requestID)
}

var _ eil.BatchContext = (*Context)(nil)
