package reputation

import (
	"github.com/trustmesh/reputation/model/market"
)

// Consumer consumes the notifications the engine emits on every committed
// state change. Implementations must be concurrency safe; callbacks are
// invoked synchronously by the mutating operation after the record update
// commits, and must not block.
type Consumer interface {
	// OnReputationChanged is called after an event was applied to an account.
	OnReputationChanged(notification market.ReputationChanged)

	// OnUserBanned is called when an account transitions to the banned state,
	// whether automatically or administratively.
	OnUserBanned(notification market.UserBanned)

	// OnUserUnbanned is called when an administrator lifts an account's ban.
	OnUserUnbanned(notification market.UserUnbanned)
}
