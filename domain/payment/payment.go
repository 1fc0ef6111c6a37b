package payment

import (
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

const Protocol = "x402"

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusConfirmed IntentStatus = "confirmed"
	IntentStatusExpired   IntentStatus = "expired"
)

// Intent is a pending payment request stored in database. One intent
// maps to exactly one expected ledger transfer; a consumed transaction
// signature can never confirm a second intent.
type Intent struct {
	Id            string             `bson:"id"`
	Buyer         domain.Address     `bson:"buyer"`
	Creator       domain.Address     `bson:"creator"`
	ContentId     string             `bson:"contentId"`
	Asset         string             `bson:"asset"`
	Amount        int64              `bson:"amount"`
	PlatformFee   int64              `bson:"platformFee"`
	CreatorAmount int64              `bson:"creatorAmount"`
	Treasury      domain.Address     `bson:"treasury"`
	Nonce         string             `bson:"nonce"`
	Status        IntentStatus       `bson:"status"`
	TxSignature   domain.TxSignature `bson:"txSignature,omitempty"`
	FailReason    string             `bson:"failReason,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	ExpiresAt     time.Time          `bson:"expiresAt"`
	ConfirmedAt   *time.Time         `bson:"confirmedAt,omitempty"`
}

type IntentPatchable struct {
	Status      *IntentStatus       `bson:"status,omitempty"`
	TxSignature *domain.TxSignature `bson:"txSignature,omitempty"`
	FailReason  *string             `bson:"failReason,omitempty"`
	ConfirmedAt *time.Time          `bson:"confirmedAt,omitempty"`
}

// Split is one leg of a fee division
type Split struct {
	Role      string         `json:"role"`
	Recipient domain.Address `json:"recipient"`
	Amount    int64          `json:"amount"`
}

const (
	SplitRoleCreator  = "creator"
	SplitRolePlatform = "platform"
)

// Descriptor is the protocol tagged payment request presented to a
// payer alongside a 402 response
type Descriptor struct {
	Protocol    string         `json:"protocol"`
	Network     domain.Network `json:"network"`
	IntentId    string         `json:"intentId"`
	Asset       string         `json:"asset"`
	Amount      int64          `json:"amount"`
	Splits      []Split        `json:"splits"`
	Nonce       string         `json:"nonce"`
	ExpiresAt   int64          `json:"expiresAt"`
	Description string         `json:"description,omitempty"`
}

// VerifyResult is the definitive outcome of checking a ledger
// transaction against an intent. Transient ledger visibility problems
// surface as errors instead, so callers can retry later.
type VerifyResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

const (
	ReasonTxFailed           = "transaction recorded an execution error"
	ReasonInsufficientAmount = "recipient balance delta below expected amount"
	ReasonRecipientMissing   = "expected recipient not touched by transaction"
	ReasonUnsupportedAsset   = "unsupported asset kind"
)

// Expectation describes the transfer a transaction must contain
type Expectation struct {
	Recipient domain.Address
	Amount    int64
	Asset     *domain.Asset
}

// Verifier checks a committed ledger transaction against an expected
// transfer. Reads only, safe to call twice for the same signature.
type Verifier interface {
	VerifyPayment(c ctx.Ctx, txSignature domain.TxSignature, expectation Expectation) (*VerifyResult, error)
}

type CreateIntentParams struct {
	Buyer     domain.Address
	Creator   domain.Address
	ContentId string
	Asset     string
	Amount    int64
}

// ConfirmResult carries the minted unlock credentials back to a payer
// whose transaction verified
type ConfirmResult struct {
	Token     string `json:"token"`
	TokenId   string `json:"tokenId"`
	ExpiresAt int64  `json:"expiresAt"`
	Pointer   string `json:"pointer"`
	Url       string `json:"url,omitempty"`
}

type FindAllOptions struct {
	Buyer       *domain.Address
	Creator     *domain.Address
	ContentId   *string
	Status      *IntentStatus
	ExpiresAtLT *time.Time
	Offset      *int32
	Limit       *int32
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

func WithBuyer(buyer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func WithCreator(creator domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Creator = &creator
		return nil
	}
}

func WithContentId(contentId string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ContentId = &contentId
		return nil
	}
}

func WithStatus(status IntentStatus) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithExpiresAtLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ExpiresAtLT = &t
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
	FindOne(c ctx.Ctx, id string) (*Intent, error)
	FindOneByTxSignature(c ctx.Ctx, txSignature domain.TxSignature) (*Intent, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Intent, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, intent *Intent) error
	Patch(c ctx.Ctx, id string, patchable *IntentPatchable) error
}

type Usecase interface {
	CreateIntent(c ctx.Ctx, params *CreateIntentParams) (*Intent, *Descriptor, error)
	GetIntent(c ctx.Ctx, id string) (*Intent, error)
	Confirm(c ctx.Ctx, id string, txSignature domain.TxSignature) (*ConfirmResult, error)
	ExpireStale(c ctx.Ctx, now time.Time) (int, error)
}
