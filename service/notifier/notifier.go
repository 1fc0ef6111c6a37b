package notifier

import (
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

// PaymentEvent is posted after a payment intent is confirmed on ledger
type PaymentEvent struct {
	Buyer       domain.Address
	Creator     domain.Address
	ContentId   string
	Asset       *domain.Asset
	Amount      int64
	PlatformFee int64
	TxSignature string
}

// SponsorshipEvent is posted after the vault funds a new wallet
type SponsorshipEvent struct {
	Address     domain.Address
	Lamports    int64
	TxSignature string
}

// SuspicionEvent is posted when a sponsorship request looks automated.
// The request itself is never blocked on this.
type SuspicionEvent struct {
	Address  domain.Address
	ClientIp string
	Hints    []string
}

// VaultBalanceEvent is posted when the vault balance drops below the
// operating floor
type VaultBalanceEvent struct {
	Address domain.Address
	Balance int64
	Floor   int64
}

// Service posts operational events to the ops channel. Implementations
// log delivery failures instead of returning them so callers never
// block on notification problems.
type Service interface {
	NotifyPaymentConfirmed(c ctx.Ctx, evt PaymentEvent)
	NotifyWalletSponsored(c ctx.Ctx, evt SponsorshipEvent)
	NotifySuspiciousRequest(c ctx.Ctx, evt SuspicionEvent)
	NotifyVaultLowBalance(c ctx.Ctx, evt VaultBalanceEvent)
}
