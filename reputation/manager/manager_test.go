package manager_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/trustmesh/reputation/model/market"
	"github.com/trustmesh/reputation/reputation"
	"github.com/trustmesh/reputation/reputation/manager"
	mockreputation "github.com/trustmesh/reputation/reputation/mock"
	"github.com/trustmesh/reputation/utils/unittest"
)

// managerFixture creates a reputation manager with mocked collaborators and a
// mock clock, so tests drive time explicitly.
func managerFixture(t *testing.T) (*manager.ReputationManager, *mockreputation.Authorizer, *mockreputation.Consumer, *clock.Mock) {
	authorizer := mockreputation.NewAuthorizer(t)
	consumer := mockreputation.NewConsumer(t)
	clk := clock.NewMock()

	m, err := manager.NewReputationManager(&manager.ManagerConfig{
		Logger:     unittest.Logger(),
		Authorizer: authorizer,
		Consumer:   consumer,
		Clock:      clk,
		Params:     reputation.DefaultParams(),
	})
	require.NoError(t, err)

	return m, authorizer, consumer, clk
}

// TestNewReputationManager_Config ensures construction fails on a missing
// authorizer, a missing consumer, or invalid scoring parameters, and that
// operations never fail on configuration afterwards.
func TestNewReputationManager_Config(t *testing.T) {
	authorizer := mockreputation.NewAuthorizer(t)
	consumer := mockreputation.NewConsumer(t)

	_, err := manager.NewReputationManager(&manager.ManagerConfig{
		Logger:   unittest.Logger(),
		Consumer: consumer,
		Params:   reputation.DefaultParams(),
	})
	require.Error(t, err)

	_, err = manager.NewReputationManager(&manager.ManagerConfig{
		Logger:     unittest.Logger(),
		Authorizer: authorizer,
		Params:     reputation.DefaultParams(),
	})
	require.Error(t, err)

	badParams := reputation.DefaultParams()
	badParams.DecayPeriod = -time.Hour
	_, err = manager.NewReputationManager(&manager.ManagerConfig{
		Logger:     unittest.Logger(),
		Authorizer: authorizer,
		Consumer:   consumer,
		Params:     badParams,
	})
	require.Error(t, err)

	m, err := manager.NewReputationManager(&manager.ManagerConfig{
		Logger:     unittest.Logger(),
		Authorizer: authorizer,
		Consumer:   consumer,
		Params:     reputation.DefaultParams(),
	})
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, reputation.DefaultParams(), m.Params())
}

// TestReads_NeverSeenAccount checks the defaults of an account that has never
// been seen: score 100, good standing, not banned, fully successful, zero
// counters. Reads must not create a record.
func TestReads_NeverSeenAccount(t *testing.T) {
	m, _, _, _ := managerFixture(t)

	account := unittest.AddressFixture()

	score, err := m.GetReputationScore(account)
	require.NoError(t, err)
	require.Equal(t, int64(100), score)

	good, err := m.IsGoodStanding(account)
	require.NoError(t, err)
	require.True(t, good)

	banned, err := m.IsBanned(account)
	require.NoError(t, err)
	require.False(t, banned)

	rate, err := m.GetSuccessRate(account)
	require.NoError(t, err)
	require.Equal(t, uint64(10000), rate)

	stats, err := m.GetUserStats(account)
	require.NoError(t, err)
	require.Equal(t, market.UserStats{}, stats)

	record, err := m.GetReputation(account)
	require.NoError(t, err)
	require.Equal(t, int64(100), record.Score)
	require.True(t, record.LastActivity.IsZero())
	require.False(t, record.Banned)
}

// TestReads_InvalidAddress ensures every read rejects the zero address.
func TestReads_InvalidAddress(t *testing.T) {
	m, _, _, _ := managerFixture(t)

	_, err := m.GetReputationScore(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
	_, err = m.GetReputation(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
	_, err = m.GetUserStats(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
	_, err = m.GetSuccessRate(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
	_, err = m.IsGoodStanding(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
	_, err = m.IsBanned(market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)
}

// TestSubmitEvent_FirstSale applies a single successful sale to a fresh
// account: score 110, one sale counted, the decay anchor set to the update
// time, and one reputation-changed notification emitted.
func TestSubmitEvent_FirstSale(t *testing.T) {
	m, authorizer, consumer, clk := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()
	authorizer.On("CanSubmitEvents", caller).Return(true)

	var changed market.ReputationChanged
	consumer.On("OnReputationChanged", mock.Anything).Run(func(args mock.Arguments) {
		changed = args.Get(0).(market.ReputationChanged)
	}).Return().Once()

	score, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)
	require.Equal(t, int64(110), score)

	require.Equal(t, account, changed.Account)
	require.Equal(t, market.EventSuccessfulSale, changed.Kind)
	require.Equal(t, int64(10), changed.Delta)
	require.Equal(t, int64(110), changed.NewScore)

	record, err := m.GetReputation(account)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.SuccessfulSales)
	require.True(t, record.LastActivity.Equal(clk.Now()))
}

// TestSubmitEvent_Rejections covers the pre-mutation rejections: zero
// address, unknown event kind, and a caller without the update capability.
// No state is touched and no notification is emitted.
func TestSubmitEvent_Rejections(t *testing.T) {
	m, authorizer, _, _ := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()

	_, err := m.SubmitEvent(caller, market.EmptyAddress, market.EventSuccessfulSale)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)

	_, err = m.SubmitEvent(caller, account, market.EventKind(42))
	require.ErrorIs(t, err, reputation.ErrInvalidEvent)

	authorizer.On("CanSubmitEvents", caller).Return(false)
	_, err = m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.True(t, reputation.IsUnauthorizedError(err))

	// the rejected submissions must not have created a record
	score, err := m.GetReputationScore(account)
	require.NoError(t, err)
	require.Equal(t, int64(100), score)
	stats, err := m.GetUserStats(account)
	require.NoError(t, err)
	require.Equal(t, market.UserStats{}, stats)
}

// TestSubmitEvent_DecayScenario runs the reference decay scenario: a sale
// brings a fresh account to 110, 60 days pass, a read shows 108 without
// mutating, and the next sale consumes exactly two periods of decay before
// its delta, landing on 118.
func TestSubmitEvent_DecayScenario(t *testing.T) {
	m, authorizer, consumer, clk := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()
	authorizer.On("CanSubmitEvents", caller).Return(true)
	consumer.On("OnReputationChanged", mock.Anything).Return()

	score, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)
	require.Equal(t, int64(110), score)

	clk.Add(60 * 24 * time.Hour)

	// the read folds two periods of decay in without persisting them
	score, err = m.GetReputationScore(account)
	require.NoError(t, err)
	require.Equal(t, int64(108), score)

	// the stored score is still 110; decay is reconstructed, not stored
	stats, err := m.GetUserStats(account)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.SuccessfulSales)

	score, err = m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)
	require.Equal(t, int64(118), score)

	consumer.AssertNumberOfCalls(t, "OnReputationChanged", 2)
}

// TestSubmitEvent_FractionalPeriodDiscarded ensures the anchor reset discards
// the fraction of a partially elapsed decay period instead of carrying it
// forward.
func TestSubmitEvent_FractionalPeriodDiscarded(t *testing.T) {
	m, authorizer, consumer, clk := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()
	authorizer.On("CanSubmitEvents", caller).Return(true)
	consumer.On("OnReputationChanged", mock.Anything).Return()

	_, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)

	// one and a half periods of inactivity: one period charged, the half
	// period discarded on the anchor reset
	clk.Add(45 * 24 * time.Hour)
	score, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)
	require.Equal(t, int64(119), score)

	// the discarded half period does not accumulate with new inactivity
	clk.Add(15 * 24 * time.Hour)
	score, err = m.GetReputationScore(account)
	require.NoError(t, err)
	require.Equal(t, int64(119), score)
}

// TestSubmitEvent_AutoBan drives an account from a 110 baseline through five
// consecutive lost disputes to -140: the ban threshold is crossed on the
// fifth, exactly one ban notification is emitted with the fixed system reason
// and the engine as actor, and the ban is not repeated by further penalizing
// events.
func TestSubmitEvent_AutoBan(t *testing.T) {
	m, authorizer, consumer, clk := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()
	authorizer.On("CanSubmitEvents", caller).Return(true)
	consumer.On("OnReputationChanged", mock.Anything).Return()

	var banned market.UserBanned
	consumer.On("OnUserBanned", mock.Anything).Run(func(args mock.Arguments) {
		banned = args.Get(0).(market.UserBanned)
	}).Return()

	_, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)

	var score int64
	for i := 0; i < 5; i++ {
		isBanned, err := m.IsBanned(account)
		require.NoError(t, err)
		require.False(t, isBanned)

		score, err = m.SubmitEvent(caller, account, market.EventDisputeLost)
		require.NoError(t, err)
	}
	require.Equal(t, int64(-140), score)

	consumer.AssertNumberOfCalls(t, "OnUserBanned", 1)
	require.Equal(t, account, banned.Account)
	require.Equal(t, reputation.AutoBanReason, banned.Reason)
	require.Equal(t, market.EmptyAddress, banned.Actor)

	isBanned, err := m.IsBanned(account)
	require.NoError(t, err)
	require.True(t, isBanned)

	good, err := m.IsGoodStanding(account)
	require.NoError(t, err)
	require.False(t, good)

	// further penalizing events keep lowering the score without re-banning
	score, err = m.SubmitEvent(caller, account, market.EventFraudDetected)
	require.NoError(t, err)
	require.Equal(t, int64(-240), score)
	consumer.AssertNumberOfCalls(t, "OnUserBanned", 1)

	// the ban survives decay and time
	clk.Add(365 * 24 * time.Hour)
	isBanned, err = m.IsBanned(account)
	require.NoError(t, err)
	require.True(t, isBanned)
}

// TestBanUser covers the administrative ban path: capability gate, the
// non-empty reason requirement, the already-banned guard, and the
// notification attributing the ban to the administrator.
func TestBanUser(t *testing.T) {
	m, authorizer, consumer, _ := managerFixture(t)

	admin := unittest.AddressFixture()
	intruder := unittest.AddressFixture()
	account := unittest.AddressFixture()

	authorizer.On("IsAdmin", admin).Return(true)
	authorizer.On("IsAdmin", intruder).Return(false)

	err := m.BanUser(intruder, account, "manual review")
	require.True(t, reputation.IsUnauthorizedError(err))

	err = m.BanUser(admin, market.EmptyAddress, "manual review")
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)

	err = m.BanUser(admin, account, "")
	require.ErrorIs(t, err, reputation.ErrEmptyReason)

	var banned market.UserBanned
	consumer.On("OnUserBanned", mock.Anything).Run(func(args mock.Arguments) {
		banned = args.Get(0).(market.UserBanned)
	}).Return().Once()

	err = m.BanUser(admin, account, "manual review")
	require.NoError(t, err)
	require.Equal(t, account, banned.Account)
	require.Equal(t, "manual review", banned.Reason)
	require.Equal(t, admin, banned.Actor)

	isBanned, err := m.IsBanned(account)
	require.NoError(t, err)
	require.True(t, isBanned)

	// banning an already-banned account is rejected without a notification
	err = m.BanUser(admin, account, "again")
	require.ErrorIs(t, err, reputation.ErrAlreadyBanned)
	consumer.AssertNumberOfCalls(t, "OnUserBanned", 1)
}

// TestUnbanUser covers the unban path: capability gate, the not-banned guard,
// and that lifting a ban clears the flag only, leaving score and counters
// untouched. An unbanned account holding a score below the ban threshold is
// not re-banned until a subsequent event re-evaluates the threshold.
func TestUnbanUser(t *testing.T) {
	m, authorizer, consumer, _ := managerFixture(t)

	admin := unittest.AddressFixture()
	intruder := unittest.AddressFixture()
	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()

	authorizer.On("IsAdmin", admin).Return(true)
	authorizer.On("IsAdmin", intruder).Return(false)
	authorizer.On("CanSubmitEvents", caller).Return(true)
	consumer.On("OnReputationChanged", mock.Anything).Return()
	consumer.On("OnUserBanned", mock.Anything).Return()

	err := m.UnbanUser(intruder, account)
	require.True(t, reputation.IsUnauthorizedError(err))

	err = m.UnbanUser(admin, market.EmptyAddress)
	require.ErrorIs(t, err, reputation.ErrInvalidAddress)

	// unbanning a non-banned account is rejected
	err = m.UnbanUser(admin, account)
	require.ErrorIs(t, err, reputation.ErrNotBanned)

	// drive the account to an auto-ban at -140
	_, err = m.SubmitEvent(caller, account, market.EventSuccessfulSale)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = m.SubmitEvent(caller, account, market.EventDisputeLost)
		require.NoError(t, err)
	}

	var unbanned market.UserUnbanned
	consumer.On("OnUserUnbanned", mock.Anything).Run(func(args mock.Arguments) {
		unbanned = args.Get(0).(market.UserUnbanned)
	}).Return().Once()

	err = m.UnbanUser(admin, account)
	require.NoError(t, err)
	require.Equal(t, account, unbanned.Account)
	require.Equal(t, admin, unbanned.Actor)

	// the flag is cleared; score and counters are untouched
	isBanned, err := m.IsBanned(account)
	require.NoError(t, err)
	require.False(t, isBanned)
	score, err := m.GetReputationScore(account)
	require.NoError(t, err)
	require.Equal(t, int64(-140), score)
	stats, err := m.GetUserStats(account)
	require.NoError(t, err)
	require.Equal(t, uint64(5), stats.DisputesLost)

	// holding a score below the threshold does not re-ban by itself, but the
	// next event re-evaluates the threshold
	_, err = m.SubmitEvent(caller, account, market.EventDisputeWon)
	require.NoError(t, err)
	isBanned, err = m.IsBanned(account)
	require.NoError(t, err)
	require.True(t, isBanned)
	consumer.AssertNumberOfCalls(t, "OnUserBanned", 2)
}

// TestGetSuccessRate_Pipeline drives the success rate through the event
// pipeline: three sales, two purchases and one lost dispute yield 8000 basis
// points.
func TestGetSuccessRate_Pipeline(t *testing.T) {
	m, authorizer, consumer, _ := managerFixture(t)

	caller := unittest.AddressFixture()
	account := unittest.AddressFixture()
	authorizer.On("CanSubmitEvents", caller).Return(true)
	consumer.On("OnReputationChanged", mock.Anything).Return()

	for i := 0; i < 3; i++ {
		_, err := m.SubmitEvent(caller, account, market.EventSuccessfulSale)
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := m.SubmitEvent(caller, account, market.EventSuccessfulPurchase)
		require.NoError(t, err)
	}
	_, err := m.SubmitEvent(caller, account, market.EventDisputeLost)
	require.NoError(t, err)

	rate, err := m.GetSuccessRate(account)
	require.NoError(t, err)
	require.Equal(t, uint64(8000), rate)
}
