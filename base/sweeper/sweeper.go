package sweeper

import (
	"sync"
	"time"

	"github.com/auton-labs/goapi/base/counter"
	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/base/metrics"
	"github.com/auton-labs/goapi/domain/payment"
	"github.com/auton-labs/goapi/domain/vault"
	"github.com/auton-labs/goapi/service/notifier"
)

var (
	met     metrics.Service
	metOnce sync.Once
)

const (
	defaultWorkers  = 2
	defaultInterval = 10 * time.Minute
)

type task func(bCtx.Ctx) error

type SweeperCfg struct {
	PaymentUC payment.Usecase
	VaultUC   vault.UseCase
	Notifier  notifier.Service
	Workers   int
	Interval  time.Duration
	ErrorCh   chan<- error
}

// Sweeper runs the periodic housekeeping passes: expiring payment
// intents nobody confirmed and watching the vault balance. Store
// failures stop the worker through ErrorCh, ledger hiccups only log.
type Sweeper struct {
	payment   payment.Usecase
	vault     vault.UseCase
	notifier  notifier.Service
	workers   int
	interval  time.Duration
	expired   *counter.Counter
	taskCh    chan task
	errorCh   chan<- error
	stoppedCh chan interface{}
}

func New(cfg *SweeperCfg) *Sweeper {
	metOnce.Do(func() {
		met = metrics.New("sweeper")
	})
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Sweeper{
		payment:   cfg.PaymentUC,
		vault:     cfg.VaultUC,
		notifier:  cfg.Notifier,
		workers:   workers,
		interval:  interval,
		expired:   counter.NewCounter(),
		taskCh:    make(chan task, workers),
		errorCh:   cfg.ErrorCh,
		stoppedCh: make(chan interface{}),
	}
}

func (s *Sweeper) Start(ctx bCtx.Ctx) {
	go s.loop(ctx)
}

func (s *Sweeper) Wait() {
	<-s.stoppedCh
}

func (s *Sweeper) loop(ctx bCtx.Ctx) {
	workerCtx, cancel := bCtx.WithCancel(ctx)
	workerWg := sync.WaitGroup{}
	nextTick := time.Second * 0
	resCh := make(chan error, s.workers)

	errAndStop := func(err error) {
		s.errorCh <- err
		cancel()
		workerWg.Wait()
		close(s.stoppedCh)
	}

	for j := 0; j < s.workers; j++ {
		workerWg.Add(1)
		go func() {
			defer workerWg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case t := <-s.taskCh:
					err := t(workerCtx)
					if err != nil {
						resCh <- err
						return
					}
					resCh <- nil
				}
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			cancel()
			workerWg.Wait()
			close(s.stoppedCh)
			return
		case <-time.After(nextTick):
			tasks := []task{s.expireIntents, s.checkVaultBalance}
			for _, t := range tasks {
				s.taskCh <- t
			}
			for j := 0; j < len(tasks); j++ {
				select {
				case <-ctx.Done():
					cancel()
					workerWg.Wait()
					close(s.stoppedCh)
					return
				case err := <-resCh:
					if err != nil {
						errAndStop(err)
						return
					}
				}
			}
			nextTick = s.interval
		}
	}
}

func (s *Sweeper) expireIntents(ctx bCtx.Ctx) error {
	expired, err := s.payment.ExpireStale(ctx, time.Now())
	if err != nil {
		ctx.WithField("err", err).Error("payment.ExpireStale failed")
		return err
	}
	if expired > 0 {
		s.expired.Add(expired)
		ctx.WithFields(log.Fields{
			"expired": expired,
			"total":   s.expired.Count(),
		}).Info("expired stale intents")
	}
	met.BumpSum("intent.expired", float64(expired))
	return nil
}

// checkVaultBalance treats a failed status read as transient, the next
// pass tries again
func (s *Sweeper) checkVaultBalance(ctx bCtx.Ctx) error {
	status, err := s.vault.Status(ctx)
	if err != nil {
		ctx.WithField("err", err).Warn("vault.Status failed")
		return nil
	}

	met.BumpAvg("vault.balance", float64(status.Balance))
	if status.Funded {
		return nil
	}

	ctx.WithFields(log.Fields{
		"address": status.Address,
		"balance": status.Balance,
		"floor":   status.Floor,
	}).Warn("vault balance below floor")
	s.notifier.NotifyVaultLowBalance(ctx, notifier.VaultBalanceEvent{
		Address: status.Address,
		Balance: status.Balance,
		Floor:   status.Floor,
	})
	return nil
}
