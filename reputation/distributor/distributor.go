package distributor

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/trustmesh/reputation/model/market"
	"github.com/trustmesh/reputation/reputation"
)

// ReputationDistributor fans reputation notifications out to all registered
// consumers. Delivery is synchronous and in registration order, so consumers
// observe notifications in exactly the order the engine committed them.
type ReputationDistributor struct {
	mu        sync.RWMutex
	consumers []reputation.Consumer
	logger    zerolog.Logger
}

var _ reputation.Consumer = (*ReputationDistributor)(nil)

// NewDistributor creates a new ReputationDistributor with no consumers.
func NewDistributor(logger zerolog.Logger) *ReputationDistributor {
	return &ReputationDistributor{
		logger: logger.With().Str("component", "reputation_distributor").Logger(),
	}
}

// AddConsumer registers a consumer for all future notifications.
func (d *ReputationDistributor) AddConsumer(consumer reputation.Consumer) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.consumers = append(d.consumers, consumer)
}

// OnReputationChanged delivers the notification to all registered consumers.
func (d *ReputationDistributor) OnReputationChanged(notification market.ReputationChanged) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	d.logger.Debug().
		Str("account", notification.Account.String()).
		Str("event_type", notification.Kind.String()).
		Int64("delta", notification.Delta).
		Int64("new_score", notification.NewScore).
		Msg("distributing reputation changed notification")

	for _, consumer := range d.consumers {
		consumer.OnReputationChanged(notification)
	}
}

// OnUserBanned delivers the notification to all registered consumers.
func (d *ReputationDistributor) OnUserBanned(notification market.UserBanned) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	d.logger.Debug().
		Str("account", notification.Account.String()).
		Str("actor", notification.Actor.String()).
		Str("reason", notification.Reason).
		Msg("distributing user banned notification")

	for _, consumer := range d.consumers {
		consumer.OnUserBanned(notification)
	}
}

// OnUserUnbanned delivers the notification to all registered consumers.
func (d *ReputationDistributor) OnUserUnbanned(notification market.UserUnbanned) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	d.logger.Debug().
		Str("account", notification.Account.String()).
		Str("actor", notification.Actor.String()).
		Msg("distributing user unbanned notification")

	for _, consumer := range d.consumers {
		consumer.OnUserUnbanned(notification)
	}
}
