package eil

import (
	"encoding/json"
	"math/big"
)

// Call is one on-chain call in a derived sequence. It is either a plain
// value transfer or a contract function call; the orchestrator that submits
// the batch switches on the concrete type.
type Call interface {
	// Target returns the call's destination address.
	Target() string
	// CallValue returns the native value sent with the call (nil means zero).
	CallValue() *big.Int
}

// ValueTransferCall sends native currency to a target with no calldata.
type ValueTransferCall struct {
	To    string   `json:"to"`
	Value *big.Int `json:"value"`
}

// Target implements Call.
func (c ValueTransferCall) Target() string { return c.To }

// CallValue implements Call.
func (c ValueTransferCall) CallValue() *big.Int { return c.Value }

// MarshalJSON tags the variant and renders the value as a decimal string.
func (c ValueTransferCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":  "transfer",
		"to":    c.To,
		"value": bigString(c.Value),
	})
}

// ContractCall invokes a named function on a contract. Args are kept in
// planning form (addresses as strings, amounts as Amount values, opaque
// records as-is); ABI encoding beyond target/function/args/value is the
// submitter's concern.
type ContractCall struct {
	To       string        `json:"to"`
	Function string        `json:"function"`
	Args     []interface{} `json:"args"`
	Value    *big.Int      `json:"value,omitempty"`
}

// Target implements Call.
func (c ContractCall) Target() string { return c.To }

// CallValue implements Call.
func (c ContractCall) CallValue() *big.Int { return c.Value }

// MarshalJSON tags the variant and renders the value as a decimal string.
func (c ContractCall) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"type":     "call",
		"to":       c.To,
		"function": c.Function,
		"args":     c.Args,
		"value":    bigString(c.Value),
	})
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
