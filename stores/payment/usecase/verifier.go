package usecase

import (
	"strconv"
	"time"

	"github.com/auton-labs/goapi/base/backoff"
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/payment"
)

const (
	defaultVerifyAttempts = 3
	defaultVerifyInterval = 2 * time.Second

	// a transfer settles when the recipient keeps at least this share of
	// the expected amount, absorbing ledger-side rounding
	minSettledPercent = 95
)

type VerifierCfg struct {
	Ledger   domain.LedgerClientRepo
	Attempts int
	Interval time.Duration
}

type verifier struct {
	ledger   domain.LedgerClientRepo
	attempts int
	interval time.Duration
}

// NewVerifier creates a ledger payment verifier
func NewVerifier(cfg *VerifierCfg) payment.Verifier {
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = defaultVerifyAttempts
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultVerifyInterval
	}
	return &verifier{
		ledger:   cfg.Ledger,
		attempts: attempts,
		interval: interval,
	}
}

func (v *verifier) VerifyPayment(c ctx.Ctx, txSignature domain.TxSignature, expectation payment.Expectation) (*payment.VerifyResult, error) {
	c = ctx.WithValue(c, "txSignature", txSignature)

	detail, err := v.fetchTransaction(c, txSignature)
	if err != nil {
		return nil, err
	}

	if detail == nil || detail.Meta == nil || detail.Transaction == nil {
		// a node answered with a partial payload, retryable
		c.Warn("transaction detail incomplete")
		return nil, domain.ErrTxNotFound
	}

	if detail.Meta.Err != nil {
		return &payment.VerifyResult{Reason: payment.ReasonTxFailed}, nil
	}

	switch expectation.Asset.Kind {
	case domain.AssetKindNative:
		return v.verifyNative(detail, expectation), nil
	case domain.AssetKindToken:
		return v.verifyToken(detail, expectation), nil
	default:
		return &payment.VerifyResult{Reason: payment.ReasonUnsupportedAsset}, nil
	}
}

// fetchTransaction polls for the transaction, a freshly submitted one
// may be invisible to reads for a short while
func (v *verifier) fetchTransaction(c ctx.Ctx, txSignature domain.TxSignature) (*domain.TransactionDetail, error) {
	b := backoff.NewLinear(v.interval, 0)

	for attempt := 1; ; attempt++ {
		detail, err := v.ledger.GetTransaction(c, txSignature)
		if err == nil {
			return detail, nil
		}

		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"attempt": attempt,
				"err":     err,
			}).Warn("ledger.GetTransaction failed")
		}

		if attempt >= v.attempts {
			c.WithField("attempts", attempt).Warn("transaction not visible after retries")
			return nil, domain.ErrTxNotFound
		}

		if err := b.Backoff(c); err != nil {
			return nil, err
		}
	}
}

func (v *verifier) verifyNative(detail *domain.TransactionDetail, expectation payment.Expectation) *payment.VerifyResult {
	meta := detail.Meta
	keys := detail.Transaction.Message.AccountKeys

	idx := -1
	for i, key := range keys {
		if key == expectation.Recipient {
			idx = i
			break
		}
	}
	if idx < 0 || idx >= len(meta.PreBalances) || idx >= len(meta.PostBalances) {
		return &payment.VerifyResult{Reason: payment.ReasonRecipientMissing}
	}

	delta := meta.PostBalances[idx] - meta.PreBalances[idx]
	if !settled(delta, expectation.Amount) {
		return &payment.VerifyResult{Reason: payment.ReasonInsufficientAmount}
	}
	return &payment.VerifyResult{Valid: true}
}

func (v *verifier) verifyToken(detail *domain.TransactionDetail, expectation payment.Expectation) *payment.VerifyResult {
	meta := detail.Meta
	mint := expectation.Asset.Mint

	post, ok := tokenBalance(meta.PostTokenBalances, expectation.Recipient, mint)
	if !ok {
		return &payment.VerifyResult{Reason: payment.ReasonRecipientMissing}
	}
	// no pre balance means the token account was created by this
	// transaction, the delta starts from zero
	pre, _ := tokenBalance(meta.PreTokenBalances, expectation.Recipient, mint)

	if !settled(post-pre, expectation.Amount) {
		return &payment.VerifyResult{Reason: payment.ReasonInsufficientAmount}
	}
	return &payment.VerifyResult{Valid: true}
}

func tokenBalance(balances []domain.TokenBalance, owner domain.Address, mint domain.Address) (int64, bool) {
	for _, balance := range balances {
		if balance.Owner == owner && balance.Mint == mint {
			amount, err := strconv.ParseInt(balance.UiTokenAmount.Amount, 10, 64)
			if err != nil {
				return 0, false
			}
			return amount, true
		}
	}
	return 0, false
}

func settled(delta, expected int64) bool {
	if delta <= 0 {
		return false
	}
	return delta*100 >= expected*minSettledPercent
}
