package sponsorship

import (
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

// Eligibility decision reasons surfaced to callers
const (
	ReasonAlreadySponsored  = "already sponsored"
	ReasonHasHistory        = "wallet has transaction history"
	ReasonHasBalance        = "wallet balance above dust threshold"
	ReasonLedgerUnavailable = "ledger unavailable"
)

// Sponsorship marks a wallet the vault paid fees for, at most once per
// address for the lifetime of the platform
type Sponsorship struct {
	Address        domain.Address     `bson:"address"`
	TxSignature    domain.TxSignature `bson:"txSignature"`
	Lamports       int64              `bson:"lamports"`
	ClientIp       string             `bson:"clientIp"`
	Suspicious     bool               `bson:"suspicious"`
	SuspicionHints []string           `bson:"suspicionHints,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// CheckResult answers an eligibility probe
type CheckResult struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

// Prepared carries the unsigned transaction message the user must
// sign before submitting. The fee payer inside is always the vault.
type Prepared struct {
	Message   string `json:"message"`
	Nonce     string `json:"nonce"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Submitted reports a co-signed, broadcast sponsorship
type Submitted struct {
	TxSignature domain.TxSignature `json:"txSignature"`
	Lamports    int64              `json:"lamports"`
}

type FindAllOptions struct {
	ClientIp     *string
	Suspicious   *bool
	CreatedAtGTE *time.Time
	Offset       *int32
	Limit        *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithClientIp(ip string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ClientIp = &ip
		return nil
	}
}

func WithSuspicious(suspicious bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Suspicious = &suspicious
		return nil
	}
}

func WithCreatedAtGTE(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.CreatedAtGTE = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Sponsorship, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Sponsorship, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, sponsorship *Sponsorship) error
}

type Usecase interface {
	CheckEligibility(c ctx.Ctx, address domain.Address) (*CheckResult, error)
	Prepare(c ctx.Ctx, address domain.Address, instructions []domain.Instruction) (*Prepared, error)
	Submit(c ctx.Ctx, address domain.Address, signedTransaction string, clientIp string) (*Submitted, error)
	FindFlagged(c ctx.Ctx, offset int32, limit int32) ([]*Sponsorship, error)
}
