package eil

// PaymasterDirectory resolves the paymaster contract address deployed on a
// given chain.
type PaymasterDirectory interface {
	PaymasterAddress(chain ChainID) (string, error)
}

// TokenResolver resolves a token identifier to its chain-specific contract
// address. The native-currency sentinel passes through unchanged.
type TokenResolver interface {
	TokenAddress(chain ChainID, token string) (string, error)
}

// AddressBook combines the two address-resolution capabilities a batch
// context must provide.
type AddressBook interface {
	PaymasterDirectory
	TokenResolver
}

// VoucherRegistry resolves a voucher request, by its request ID, to the
// batch-internal record that becomes the lockUserDeposit argument. The
// second return is false when the request is unknown to the batch.
//
// The registry is deliberately a narrow capability interface so the call
// derivation can be tested with a stub instead of a full batching engine.
type VoucherRegistry interface {
	Resolve(requestID string) (*VoucherInternalInfo, bool)
}

// BatchContext is the transient state an orchestrator supplies for one call
// derivation: the active chain, the fee configuration (nil means no fee),
// address resolution, and the voucher registry.
type BatchContext interface {
	ChainID() ChainID
	FeeConfig() *FeeConfig
	AddressBook
	VoucherRegistry
}
