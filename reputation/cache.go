package reputation

import (
	"github.com/trustmesh/reputation/model/market"
)

// RecordAdjustFunc is a function that adjusts a reputation record. The cache
// runs it atomically under the record's lock; it must not retain the record
// pointer past its return.
type RecordAdjustFunc func(*market.ReputationRecord) (*market.ReputationRecord, error)

// RecordCache is the store of reputation records keyed by account address.
// Records are created lazily and never evicted or deleted.
type RecordCache interface {
	// AdjustWithInit applies the adjust function to the record of the given
	// account, initializing the record first if the account has never been
	// seen. The whole read-adjust-write cycle is atomic with respect to other
	// operations on the same account: a concurrent reader never observes a
	// record mid-adjustment.
	// Returns the adjusted record (a copy) or the adjust function's error,
	// in which case the stored record is left untouched.
	AdjustWithInit(account market.Address, adjustFunc RecordAdjustFunc) (*market.ReputationRecord, error)

	// Get returns a copy of the record of the given account and true if the
	// account has a record, nil and false otherwise. Get never creates a
	// record.
	Get(account market.Address) (*market.ReputationRecord, bool)

	// Accounts returns the addresses of all accounts holding a record.
	Accounts() []market.Address

	// Size returns the number of records in the cache.
	Size() uint
}
