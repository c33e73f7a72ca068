package evm

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"
)

func TestIsNativeToken(t *testing.T) {
	if !IsNativeToken(NativeToken) {
		t.Error("sentinel not recognized")
	}
	if !IsNativeToken(strings.ToLower(NativeToken)) {
		t.Error("sentinel comparison must be case-insensitive")
	}
	if IsNativeToken("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913") {
		t.Error("ERC-20 address misclassified as native")
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress("0x833589fcd6edb6e08f4c7c32d4f71b54bda02913")
	if got != "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913" {
		t.Errorf("unexpected checksummed form: %s", got)
	}
}

func TestMaxUint256(t *testing.T) {
	want := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	if MaxUint256().String() != want {
		t.Errorf("unexpected MaxUint256: %s", MaxUint256())
	}
}

func TestEncodeApproveCalldata(t *testing.T) {
	spender := "0x000000000022D473030F116dDEE9F6B43aC78BA3"
	calldata, err := EncodeApproveCalldata(spender, big.NewInt(510))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 4-byte selector for approve(address,uint256) plus two 32-byte words.
	if len(calldata) != 4+32+32 {
		t.Fatalf("unexpected calldata length: %d", len(calldata))
	}
	if hex.EncodeToString(calldata[:4]) != "095ea7b3" {
		t.Errorf("unexpected selector: %x", calldata[:4])
	}
	amountWord := new(big.Int).SetBytes(calldata[4+32:])
	if amountWord.Int64() != 510 {
		t.Errorf("expected encoded amount 510, got %s", amountWord)
	}
}

func TestEncodeApproveCalldataInvalidSpender(t *testing.T) {
	if _, err := EncodeApproveCalldata("paymaster", big.NewInt(1)); err == nil {
		t.Fatal("expected error for invalid spender")
	}
}

func TestBytesToHex(t *testing.T) {
	if BytesToHex([]byte{0x09, 0x5e}) != "0x095e" {
		t.Errorf("unexpected hex encoding: %s", BytesToHex([]byte{0x09, 0x5e}))
	}
}
