package metrics

// NoopCollector implements the reputation metrics interfaces with no-ops. It
// is used when metrics collection is disabled and in tests.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) OnReputationEventProcessed(eventType string) {}
func (nc *NoopCollector) OnAccountAutoBanned()                        {}
func (nc *NoopCollector) OnAccountAdminBanned()                       {}
func (nc *NoopCollector) OnAccountUnbanned()                          {}
func (nc *NoopCollector) OnDecayPeriodsApplied(periods uint64)        {}
