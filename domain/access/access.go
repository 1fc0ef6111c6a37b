package access

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

// Grant is a buyer's durable right to one content item, created once
// per verified payment. Tokens minted from it are disposable.
type Grant struct {
	Buyer       domain.Address     `bson:"buyer"`
	Creator     domain.Address     `bson:"creator"`
	ContentId   string             `bson:"contentId"`
	IntentId    string             `bson:"intentId"`
	TxSignature domain.TxSignature `bson:"txSignature"`
	TokenId     string             `bson:"tokenId"`
	UnlockCount int32              `bson:"unlockCount"`
	CreatedAt   time.Time          `bson:"createdAt"`
	LastMintAt  time.Time          `bson:"lastMintAt"`
}

type GrantId struct {
	Buyer     domain.Address `bson:"buyer"`
	Creator   domain.Address `bson:"creator"`
	ContentId string         `bson:"contentId"`
}

func (g *Grant) ToId() GrantId {
	return GrantId{
		Buyer:     g.Buyer,
		Creator:   g.Creator,
		ContentId: g.ContentId,
	}
}

// TokenClaims is the payload segment of an unlock token
type TokenClaims struct {
	Buyer     string `json:"buyer"`
	Creator   string `json:"creator"`
	ContentId string `json:"contentId"`
	TokenId   string `json:"tokenId"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Valid runs before the signature check in the parser, so an expired
// token reports expiry even when the signature is also bad.
func (c TokenClaims) Valid() error {
	if jwt.TimeFunc().Unix() > c.ExpiresAt {
		return jwt.NewValidationError("token is expired", jwt.ValidationErrorExpired)
	}
	return nil
}

// Minted is a freshly issued unlock token
type Minted struct {
	Token     string `json:"token"`
	TokenId   string `json:"tokenId"`
	ExpiresAt int64  `json:"expiresAt"`
}

// TokenIssuer mints and checks unlock tokens. Tokens are never
// extended, a new unlock always mints a new one.
type TokenIssuer interface {
	Issue(c ctx.Ctx, buyer, creator domain.Address, contentId string) (*Minted, error)
	Verify(c ctx.Ctx, token string) (*TokenClaims, error)
}

type FindAllOptions struct {
	Buyer     *domain.Address
	Creator   *domain.Address
	ContentId *string
	Offset    *int32
	Limit     *int32
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

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	FindOne(c ctx.Ctx, id GrantId) (*Grant, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Grant, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, grant *Grant) error
	MarkMinted(c ctx.Ctx, id GrantId, tokenId string, at time.Time) error
}

type Usecase interface {
	Grant(c ctx.Ctx, grant *Grant) (*Minted, error)
	Renew(c ctx.Ctx, id GrantId) (*Minted, error)
	HasGrant(c ctx.Ctx, id GrantId) (bool, error)
	VerifyToken(c ctx.Ctx, token string) (*TokenClaims, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Grant, error)
}
