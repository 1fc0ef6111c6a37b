package sweeper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	paymentMocks "github.com/auton-labs/goapi/domain/payment/mocks"
	"github.com/auton-labs/goapi/domain/vault"
	vaultMocks "github.com/auton-labs/goapi/domain/vault/mocks"
	"github.com/auton-labs/goapi/service/notifier"
	notifierMocks "github.com/auton-labs/goapi/service/notifier/mocks"
)

type sweeperSuite struct {
	suite.Suite

	paymentUC *paymentMocks.Usecase
	vaultUC   *vaultMocks.UseCase
	notifier  *notifierMocks.Service
	errCh     chan error
	sweeper   *Sweeper
}

func TestSweeperSuite(t *testing.T) {
	suite.Run(t, new(sweeperSuite))
}

func (s *sweeperSuite) SetupTest() {
	s.paymentUC = &paymentMocks.Usecase{}
	s.vaultUC = &vaultMocks.UseCase{}
	s.notifier = &notifierMocks.Service{}
	s.errCh = make(chan error, 10)
	s.sweeper = New(&SweeperCfg{
		PaymentUC: s.paymentUC,
		VaultUC:   s.vaultUC,
		Notifier:  s.notifier,
		Workers:   2,
		Interval:  time.Hour,
		ErrorCh:   s.errCh,
	})
}

func fundedStatus() *vault.Status {
	return &vault.Status{
		Address: domain.Address("Vau1t11111111111111111111111111111111111111"),
		Network: domain.NetworkDevnet,
		Balance: 6000000000,
		Floor:   5000000000,
		Funded:  true,
	}
}

func (s *sweeperSuite) TestSweepRunsOnStart() {
	expired := make(chan interface{})
	checked := make(chan interface{})
	s.paymentUC.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { close(expired) }).
		Return(3, nil)
	s.vaultUC.On("Status", mock.Anything).
		Run(func(args mock.Arguments) { close(checked) }).
		Return(fundedStatus(), nil)

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	s.sweeper.Start(ctx)
	select {
	case <-expired:
	case <-time.After(time.Second):
		s.Fail("stale intents were never swept")
	}
	select {
	case <-checked:
	case <-time.After(time.Second):
		s.Fail("vault balance was never checked")
	}
	cancel()
	s.sweeper.Wait()

	s.notifier.AssertNotCalled(s.T(), "NotifyVaultLowBalance", mock.Anything, mock.Anything)
	s.Empty(s.errCh)
}

func (s *sweeperSuite) TestLowBalanceAlerts() {
	status := fundedStatus()
	status.Balance = 4000000000
	status.Funded = false

	notified := make(chan interface{})
	var evt notifier.VaultBalanceEvent
	s.paymentUC.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	s.vaultUC.On("Status", mock.Anything).Return(status, nil)
	s.notifier.On("NotifyVaultLowBalance", mock.Anything, mock.AnythingOfType("notifier.VaultBalanceEvent")).
		Run(func(args mock.Arguments) {
			evt = args.Get(1).(notifier.VaultBalanceEvent)
			close(notified)
		}).
		Return()

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	s.sweeper.Start(ctx)
	select {
	case <-notified:
	case <-time.After(time.Second):
		s.Fail("low balance was never reported")
	}
	cancel()
	s.sweeper.Wait()

	s.Equal(status.Address, evt.Address)
	s.EqualValues(4000000000, evt.Balance)
	s.EqualValues(5000000000, evt.Floor)
	s.Empty(s.errCh)
}

func (s *sweeperSuite) TestStoreFailureStops() {
	boom := errors.New("mongo down")
	s.paymentUC.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, boom)
	s.vaultUC.On("Status", mock.Anything).Return(fundedStatus(), nil)

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	s.sweeper.Start(ctx)

	select {
	case err := <-s.errCh:
		s.Equal(boom, err)
	case <-time.After(time.Second):
		s.Fail("store failure never surfaced")
	}
	s.sweeper.Wait()
}

func (s *sweeperSuite) TestLedgerFailureKeepsRunning() {
	checked := make(chan interface{})
	s.paymentUC.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil)
	s.vaultUC.On("Status", mock.Anything).
		Run(func(args mock.Arguments) { close(checked) }).
		Return(nil, domain.ErrLedgerUnavailable)

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	s.sweeper.Start(ctx)
	select {
	case <-checked:
	case <-time.After(time.Second):
		s.Fail("vault balance was never checked")
	}
	cancel()
	s.sweeper.Wait()

	s.notifier.AssertNotCalled(s.T(), "NotifyVaultLowBalance", mock.Anything, mock.Anything)
	s.Empty(s.errCh)
}
