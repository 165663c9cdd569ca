package market

import "github.com/google/uuid"

// ReputationChanged is the notification emitted after every successfully
// applied reputation event. The Delta field carries the event's point delta
// only; decay applied in the same update is visible through NewScore.
type ReputationChanged struct {
	// ID uniquely identifies this notification for audit trails.
	ID uuid.UUID
	// Account is the account whose reputation changed.
	Account Address
	// Kind is the event that caused the change.
	Kind EventKind
	// Delta is the point delta the event applied.
	Delta int64
	// NewScore is the stored score after decay and the event delta.
	NewScore int64
}

// UserBanned is the notification emitted when an account transitions to the
// banned state, either automatically on a threshold breach or by an
// administrator.
type UserBanned struct {
	// ID uniquely identifies this notification for audit trails.
	ID uuid.UUID
	// Account is the banned account.
	Account Address
	// Reason is the ban reason. Automatic bans carry a fixed system reason;
	// administrative bans carry the administrator-supplied reason.
	Reason string
	// Actor is the address that triggered the ban. Automatic bans are
	// attributed to the engine itself via the empty address.
	Actor Address
}

// UserUnbanned is the notification emitted when an administrator lifts a ban.
type UserUnbanned struct {
	// ID uniquely identifies this notification for audit trails.
	ID uuid.UUID
	// Account is the unbanned account.
	Account Address
	// Actor is the administrator that lifted the ban.
	Actor Address
}
