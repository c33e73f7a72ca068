// Package chains provides a static per-chain address directory: which
// paymaster contract serves a chain, and where a token identifier resolves
// on that chain. It implements the address-resolution capabilities a batch
// context needs.
package chains

import (
	"fmt"
	"strings"
	"sync"

	eil "github.com/ChiHaoLu/eil-sdk"
	"github.com/ChiHaoLu/eil-sdk/evm"
)

// ChainConfig describes one chain's deployment.
type ChainConfig struct {
	// Name is a human-readable chain name.
	Name string
	// Paymaster is the deposit-locking paymaster contract address, empty if
	// not yet deployed on this chain.
	Paymaster string
	// Tokens maps canonical token identifiers (lowercased addresses) to the
	// chain-local contract address, for tokens deployed at different
	// addresses per chain.
	Tokens map[string]string
}

// DefaultChains lists the chains the SDK knows out of the box. Paymaster
// addresses are deployment-specific and registered by the integrator.
var DefaultChains = map[eil.ChainID]ChainConfig{
	// Base Mainnet
	8453: {
		Name: "base",
		Tokens: map[string]string{
			// USDC on Base
			"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913": "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
	},
	// Base Sepolia Testnet
	84532: {
		Name: "base-sepolia",
		Tokens: map[string]string{
			// USDC on Base Sepolia
			"0x036cbd53842c5426634e7929541ec2318f3dcf7e": "0x036CbD53842c5426634e7929541eC2318f3dCF7e",
		},
	},
}

// Directory resolves paymaster and token addresses per chain. Safe for
// concurrent use.
type Directory struct {
	mu     sync.RWMutex
	chains map[eil.ChainID]ChainConfig
}

// NewDirectory creates a directory seeded with DefaultChains.
func NewDirectory() *Directory {
	d := &Directory{chains: make(map[eil.ChainID]ChainConfig, len(DefaultChains))}
	for id, cfg := range DefaultChains {
		d.chains[id] = cfg
	}
	return d
}

// Register adds or replaces a chain's configuration.
func (d *Directory) Register(chain eil.ChainID, cfg ChainConfig) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.chains[chain] = cfg
}

// RegisterPaymaster sets the paymaster address for an already known chain,
// or creates a minimal entry for an unknown one.
func (d *Directory) RegisterPaymaster(chain eil.ChainID, paymaster string) error {
	if !evm.IsValidAddress(paymaster) {
		return fmt.Errorf("chains: invalid paymaster address %q", paymaster)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	cfg := d.chains[chain]
	cfg.Paymaster = evm.NormalizeAddress(paymaster)
	d.chains[chain] = cfg
	return nil
}

// PaymasterAddress implements eil.PaymasterDirectory.
func (d *Directory) PaymasterAddress(chain eil.ChainID) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	cfg, ok := d.chains[chain]
	if !ok {
		return "", fmt.Errorf("%w: %d", eil.ErrUnknownChain, chain)
	}
	if cfg.Paymaster == "" {
		return "", fmt.Errorf("%w: %d", eil.ErrNoPaymaster, chain)
	}
	return cfg.Paymaster, nil
}

// TokenAddress implements eil.TokenResolver. The native sentinel passes
// through unchanged; mapped tokens resolve to their chain-local address;
// any other well-formed address passes through normalized (same-address
// deployments are the common case).
func (d *Directory) TokenAddress(chain eil.ChainID, token string) (string, error) {
	if evm.IsNativeToken(token) {
		return evm.NativeToken, nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	cfg, ok := d.chains[chain]
	if !ok {
		return "", fmt.Errorf("%w: %d", eil.ErrUnknownChain, chain)
	}
	if !evm.IsValidAddress(token) {
		return "", fmt.Errorf("chains: invalid token identifier %q", token)
	}
	if local, ok := cfg.Tokens[strings.ToLower(token)]; ok {
		return local, nil
	}
	return evm.NormalizeAddress(token), nil
}

var (
	_ eil.PaymasterDirectory = (*Directory)(nil)
	_ eil.TokenResolver      = (*Directory)(nil)
	_ eil.AddressBook        = (*Directory)(nil)
)
