package usecase

import (
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/vault"
)

// defaultBalanceFloor is 5 SOL, the operating minimum the sponsorship
// program expects the vault to hold
const defaultBalanceFloor = 5000000000

type VaultUseCaseCfg struct {
	Repo    vault.Repo
	Ledger  domain.LedgerClientRepo
	Wallet  *wallet.Wallet
	Network domain.Network

	// BalanceFloor in lamports, below it the vault counts as unfunded
	BalanceFloor int64
}

type impl struct {
	repo         vault.Repo
	ledger       domain.LedgerClientRepo
	wallet       *wallet.Wallet
	network      domain.Network
	balanceFloor int64
}

// New creates vault usecase
func New(cfg *VaultUseCaseCfg) vault.UseCase {
	balanceFloor := cfg.BalanceFloor
	if balanceFloor <= 0 {
		balanceFloor = defaultBalanceFloor
	}
	return &impl{
		repo:         cfg.Repo,
		ledger:       cfg.Ledger,
		wallet:       cfg.Wallet,
		network:      cfg.Network,
		balanceFloor: balanceFloor,
	}
}

func (im *impl) Status(c ctx.Ctx) (*vault.Status, error) {
	balance, err := im.ledger.GetBalance(c, im.wallet.Address())
	if err != nil {
		c.WithField("err", err).Error("ledger.GetBalance failed")
		return nil, domain.ErrLedgerUnavailable
	}

	stats, err := im.repo.FindOne(c)
	if err == domain.ErrNotFound {
		// nothing recorded yet, a fresh deployment reports zeros
		stats = &vault.Stats{Key: vault.StatsKey}
	} else if err != nil {
		return nil, err
	}

	return &vault.Status{
		Address:           im.wallet.Address(),
		Network:           im.network,
		Balance:           balance,
		Floor:             im.balanceFloor,
		Funded:            balance >= im.balanceFloor,
		SponsoredCount:    stats.SponsoredCount,
		SponsoredLamports: stats.SponsoredLamports,
		ConfirmedPayments: stats.ConfirmedPayments,
		VolumeCollected:   stats.VolumeCollected,
		FeeCollected:      stats.FeeCollected,
	}, nil
}

func (im *impl) RecordSponsorship(c ctx.Ctx, lamports int64) error {
	return im.repo.IncrementMany(c, map[string]int64{
		"sponsoredCount":    1,
		"sponsoredLamports": lamports,
	})
}

func (im *impl) RecordPayment(c ctx.Ctx, amount, fee int64) error {
	return im.repo.IncrementMany(c, map[string]int64{
		"confirmedPayments": 1,
		"volumeCollected":   amount,
		"feeCollected":      fee,
	})
}
