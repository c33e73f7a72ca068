package chains

import (
	"errors"
	"testing"

	eil "github.com/ChiHaoLu/eil-sdk"
	"github.com/ChiHaoLu/eil-sdk/evm"
)

const testPaymaster = "0x2222222222222222222222222222222222222222"

func TestPaymasterAddress(t *testing.T) {
	d := NewDirectory()

	t.Run("unknown chain", func(t *testing.T) {
		_, err := d.PaymasterAddress(999999)
		if !errors.Is(err, eil.ErrUnknownChain) {
			t.Fatalf("expected ErrUnknownChain, got: %v", err)
		}
	})

	t.Run("known chain without paymaster", func(t *testing.T) {
		_, err := d.PaymasterAddress(8453)
		if !errors.Is(err, eil.ErrNoPaymaster) {
			t.Fatalf("expected ErrNoPaymaster, got: %v", err)
		}
	})

	t.Run("registered paymaster resolves", func(t *testing.T) {
		if err := d.RegisterPaymaster(8453, testPaymaster); err != nil {
			t.Fatalf("register failed: %v", err)
		}
		addr, err := d.PaymasterAddress(8453)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if addr != testPaymaster {
			t.Errorf("expected %s, got %s", testPaymaster, addr)
		}
	})

	t.Run("invalid paymaster rejected", func(t *testing.T) {
		if err := d.RegisterPaymaster(8453, "not-an-address"); err == nil {
			t.Fatal("expected error for invalid address")
		}
	})
}

func TestTokenAddress(t *testing.T) {
	d := NewDirectory()

	t.Run("native sentinel passes through", func(t *testing.T) {
		addr, err := d.TokenAddress(8453, evm.NativeToken)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if addr != evm.NativeToken {
			t.Errorf("expected sentinel passthrough, got %s", addr)
		}
	})

	t.Run("mapped token resolves case-insensitively", func(t *testing.T) {
		addr, err := d.TokenAddress(8453, "0x833589FCD6EDB6E08F4C7C32D4F71B54BDA02913")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if addr != "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913" {
			t.Errorf("unexpected resolution: %s", addr)
		}
	})

	t.Run("unmapped token passes through normalized", func(t *testing.T) {
		addr, err := d.TokenAddress(8453, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if addr != evm.NormalizeAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
			t.Errorf("expected normalized passthrough, got %s", addr)
		}
	})

	t.Run("unknown chain", func(t *testing.T) {
		_, err := d.TokenAddress(999999, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		if !errors.Is(err, eil.ErrUnknownChain) {
			t.Fatalf("expected ErrUnknownChain, got: %v", err)
		}
	})

	t.Run("malformed token identifier", func(t *testing.T) {
		_, err := d.TokenAddress(8453, "USDC")
		if err == nil {
			t.Fatal("expected error for malformed identifier")
		}
	})
}

func TestRegisterCustomChain(t *testing.T) {
	d := NewDirectory()
	d.Register(31337, ChainConfig{
		Name:      "devnet",
		Paymaster: testPaymaster,
	})

	addr, err := d.PaymasterAddress(31337)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if addr != testPaymaster {
		t.Errorf("expected %s, got %s", testPaymaster, addr)
	}
}
