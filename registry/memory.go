// Package registry provides an in-memory voucher registry and a concrete
// batch context, suitable for tests and single-process orchestrators. For
// a distributed batching engine, implement eil.VoucherRegistry against a
// shared backend instead.
package registry

import (
	"sync"

	eil "github.com/ChiHaoLu/eil-sdk"
)

// MemoryRegistry is a thread-safe in-memory eil.VoucherRegistry keyed by
// request ID.
type MemoryRegistry struct {
	mu       sync.RWMutex
	vouchers map[string]*eil.VoucherInternalInfo
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		vouchers: make(map[string]*eil.VoucherInternalInfo),
	}
}

// Register records the batch-internal info for a voucher request,
// replacing any previous record with the same ID.
func (r *MemoryRegistry) Register(req *eil.VoucherRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vouchers[req.ID] = &eil.VoucherInternalInfo{VoucherRequest: req}
}

// RegisterInfo records a caller-supplied internal record under a request ID.
func (r *MemoryRegistry) RegisterInfo(requestID string, info *eil.VoucherInternalInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vouchers[requestID] = info
}

// Resolve implements eil.VoucherRegistry.
func (r *MemoryRegistry) Resolve(requestID string) (*eil.VoucherInternalInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.vouchers[requestID]
	return info, ok
}

// Remove drops a request's record, if present.
func (r *MemoryRegistry) Remove(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.vouchers, requestID)
}

var _ eil.VoucherRegistry = (*MemoryRegistry)(nil)
