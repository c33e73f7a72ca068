// Package evm provides EVM address helpers and calldata encoding for the
// call sequences this SDK derives. Only the ERC-20 approve calldata is
// encoded here; the paymaster's lockUserDeposit call is carried as
// target/function/args and encoded by the submitter.
package evm

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// IsNativeToken reports whether the address is the native-currency sentinel.
func IsNativeToken(address string) bool {
	return strings.EqualFold(address, NativeToken)
}

// IsValidAddress reports whether s is a well-formed hex address.
func IsValidAddress(s string) bool {
	return common.IsHexAddress(s)
}

// NormalizeAddress returns the EIP-55 checksummed form of an address.
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// MaxUint256 returns 2^256 - 1, the conventional infinite-approval amount.
func MaxUint256() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), 256)
	return max.Sub(max, big.NewInt(1))
}

// EncodeApproveCalldata ABI-encodes approve(spender, amount).
func EncodeApproveCalldata(spender string, amount *big.Int) ([]byte, error) {
	if !common.IsHexAddress(spender) {
		return nil, fmt.Errorf("evm: invalid spender address %q", spender)
	}
	parsedABI, err := ethabi.JSON(bytes.NewReader(ERC20ApproveABI))
	if err != nil {
		return nil, fmt.Errorf("evm: failed to parse ERC20 approve ABI: %w", err)
	}
	calldata, err := parsedABI.Pack(FunctionApprove, common.HexToAddress(spender), amount)
	if err != nil {
		return nil, fmt.Errorf("evm: failed to encode approve calldata: %w", err)
	}
	return calldata, nil
}

// BytesToHex renders calldata as a 0x-prefixed hex string.
func BytesToHex(b []byte) string {
	return "0x" + common.Bytes2Hex(b)
}
