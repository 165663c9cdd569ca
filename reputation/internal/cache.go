package internal

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/trustmesh/reputation/model/market"
	"github.com/trustmesh/reputation/reputation"
)

// RecordCache stores the reputation records of marketplace accounts, keyed by
// account address. Reputation records are long-lived: they are created lazily
// on an account's first event and are never evicted or deleted, so the cache
// is an unbounded guarded map rather than an ejecting pool.
type RecordCache struct {
	mu            sync.RWMutex
	records       map[market.Address]*market.ReputationRecord
	recordFactory RecordFactoryFunc
	logger        zerolog.Logger
	size          *atomic.Uint64
}

// RecordFactoryFunc creates the default record for a never-seen account.
type RecordFactoryFunc func(market.Address) *market.ReputationRecord

var _ reputation.RecordCache = (*RecordCache)(nil)

// NewRecordCache creates a new RecordCache.
// Args:
// - logger: the logger used by the cache.
// - recordFactory: a factory function that creates the default record.
// Returns:
// - *RecordCache, the created cache.
func NewRecordCache(logger zerolog.Logger, recordFactory RecordFactoryFunc) *RecordCache {
	return &RecordCache{
		records:       make(map[market.Address]*market.ReputationRecord),
		recordFactory: recordFactory,
		logger:        logger.With().Str("component", "reputation_record_cache").Logger(),
		size:          atomic.NewUint64(0),
	}
}

// AdjustWithInit applies the given adjust function to the record of the given
// account, initializing the record first if the account has never been seen.
// The adjust function runs under the cache lock, which makes the whole
// read-adjust-write cycle atomic per account: a concurrent reader never
// observes a record mid-adjustment.
// Args:
// - account: the account whose record is adjusted.
// - adjustFunc: the function that adjusts the record.
// Returns:
//   - a copy of the adjusted record.
//   - the adjust function's error, in which case nothing is committed: the
//     stored record is left untouched, and a never-seen account stays absent.
func (r *RecordCache) AdjustWithInit(account market.Address, adjustFunc reputation.RecordAdjustFunc) (*market.ReputationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[account]
	if !ok {
		record = r.recordFactory(account)
	}

	// adjust a scratch copy; the stored map is only written once the
	// adjustment succeeded
	adjusted, err := adjustFunc(record.Copy())
	if err != nil {
		return nil, fmt.Errorf("adjust function failed for account %s: %w", account, err)
	}

	if !ok {
		r.size.Inc()
		r.logger.Debug().
			Str("account", account.String()).
			Msg("initialized reputation record")
	}
	r.records[account] = adjusted

	return adjusted.Copy(), nil
}

// Get returns the record of the given account and true if the account has a
// record, nil and false otherwise. The returned record is a copy; callers can
// never mutate stored state. Get never creates a record.
func (r *RecordCache) Get(account market.Address) (*market.ReputationRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[account]
	if !ok {
		return nil, false
	}

	return record.Copy(), true
}

// Accounts returns the addresses of all accounts holding a record.
func (r *RecordCache) Accounts() []market.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]market.Address, 0, len(r.records))
	for account := range r.records {
		accounts = append(accounts, account)
	}
	return accounts
}

// Size returns the number of records in the cache.
func (r *RecordCache) Size() uint {
	return uint(r.size.Load())
}
