package reputation

import (
	"github.com/trustmesh/reputation/model/market"
)

// Authorizer is the capability check the engine consults before touching any
// state. Role membership is owned by an external collaborator; the engine
// only asks yes/no questions about the caller.
type Authorizer interface {
	// CanSubmitEvents returns true if the caller may submit reputation events.
	CanSubmitEvents(caller market.Address) bool

	// IsAdmin returns true if the caller holds the administrator capability
	// required for ban and unban operations.
	IsAdmin(caller market.Address) bool
}
