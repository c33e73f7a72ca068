// Package http exposes call-sequence derivation as a small HTTP service.
// The service is framework-agnostic; pkg/gin and pkg/echo mount the same
// handler on either framework.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"strings"

	eil "github.com/ChiHaoLu/eil-sdk"
	"github.com/ChiHaoLu/eil-sdk/actions"
	"github.com/ChiHaoLu/eil-sdk/evm"
	"github.com/ChiHaoLu/eil-sdk/registry"
	"github.com/google/uuid"
)

// PlanRequest is the body of POST /plan: the target chain, an optional fee
// configuration, and the voucher-request document to derive calls for.
type PlanRequest struct {
	ChainID        uint64             `json:"chainId"`
	FeeConfig      *eil.FeeConfig     `json:"feeConfig,omitempty"`
	VoucherRequest PlanVoucherRequest `json:"voucherRequest"`
}

// PlanVoucherRequest is the wire form of a voucher request. ID is optional;
// the service assigns one when absent.
type PlanVoucherRequest struct {
	ID       string                 `json:"id,omitempty"`
	Assets   []eil.AssetAmount      `json:"assets"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// PlannedCall is the wire form of one derived call.
type PlannedCall struct {
	Type     string        `json:"type"`
	To       string        `json:"to"`
	Function string        `json:"function,omitempty"`
	Args     []interface{} `json:"args,omitempty"`
	Value    string        `json:"value"`
	// Data carries pre-encoded calldata when the SDK can encode the call
	// (currently approve calls with concrete amounts).
	Data string `json:"data,omitempty"`
}

// PlanResponse is the body of a successful POST /plan.
type PlanResponse struct {
	RequestID string        `json:"requestId"`
	ChainID   uint64        `json:"chainId"`
	Calls     []PlannedCall `json:"calls"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Service derives call plans over HTTP. Each planned request is registered
// in the service's own registry before derivation, so a one-shot plan call
// is self-contained.
type Service struct {
	addresses eil.AddressBook
	vouchers  *registry.MemoryRegistry
}

// NewService creates a planner service resolving addresses through the
// given address book.
func NewService(addresses eil.AddressBook) *Service {
	return &Service{
		addresses: addresses,
		vouchers:  registry.NewMemoryRegistry(),
	}
}

// Registry returns the service's voucher registry, so callers can inspect
// or remove planned requests.
func (s *Service) Registry() *registry.MemoryRegistry {
	return s.vouchers
}

// Handler returns the service's HTTP handler, routing POST /plan.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan", s.HandlePlan)
	return mux
}

// HandlePlan derives the call sequence for one voucher request.
//
// Status codes: 400 for malformed or schema-invalid documents and unknown
// chains, 422 for requests that fail construction-time validation, 404 when
// the registry cannot resolve the request, 405 for non-POST methods.
func (s *Service) HandlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := ValidatePlanDocument(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var plan PlanRequest
	if err := json.Unmarshal(body, &plan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan request: "+err.Error())
		return
	}

	req := &eil.VoucherRequest{
		ID:       plan.VoucherRequest.ID,
		Assets:   plan.VoucherRequest.Assets,
		Metadata: plan.VoucherRequest.Metadata,
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	action, err := actions.NewLockDepositsAction(req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.vouchers.Register(req)
	bctx := &registry.Context{
		Chain:     eil.ChainID(plan.ChainID),
		Fees:      plan.FeeConfig,
		Addresses: s.addresses,
		Vouchers:  s.vouchers,
	}

	calls, err := action.EncodeCalls(r.Context(), bctx)
	if err != nil {
		writeError(w, planErrorStatus(err), err.Error())
		return
	}

	resp := PlanResponse{
		RequestID: req.ID,
		ChainID:   plan.ChainID,
		Calls:     make([]PlannedCall, 0, len(calls)),
	}
	for _, call := range calls {
		resp.Calls = append(resp.Calls, toPlannedCall(call))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func planErrorStatus(err error) int {
	switch {
	case errors.Is(err, eil.ErrVoucherNotFound):
		return http.StatusNotFound
	case errors.Is(err, eil.ErrUnknownChain), errors.Is(err, eil.ErrNoPaymaster):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toPlannedCall(call eil.Call) PlannedCall {
	switch c := call.(type) {
	case eil.ContractCall:
		planned := PlannedCall{
			Type:     "call",
			To:       c.To,
			Function: c.Function,
			Args:     c.Args,
			Value:    valueString(c.Value),
		}
		if data, ok := approveCalldata(c); ok {
			planned.Data = data
		}
		return planned
	case eil.ValueTransferCall:
		return PlannedCall{
			Type:  "transfer",
			To:    c.To,
			Value: valueString(c.Value),
		}
	default:
		return PlannedCall{
			Type:  "call",
			To:    call.Target(),
			Value: valueString(call.CallValue()),
		}
	}
}

// approveCalldata pre-encodes approve(spender, amount) when both args are
// concrete. Symbolic amounts are left for the orchestrator to resolve.
func approveCalldata(c eil.ContractCall) (string, bool) {
	if !strings.EqualFold(c.Function, evm.FunctionApprove) || len(c.Args) != 2 {
		return "", false
	}
	spender, ok := c.Args[0].(string)
	if !ok {
		return "", false
	}
	amount, ok := c.Args[1].(eil.Amount)
	if !ok {
		return "", false
	}
	fixed, ok := amount.Fixed()
	if !ok {
		return "", false
	}
	calldata, err := evm.EncodeApproveCalldata(spender, new(big.Int).Set(fixed))
	if err != nil {
		return "", false
	}
	return evm.BytesToHex(calldata), true
}

func valueString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
