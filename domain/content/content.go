package content

import (
	"strings"
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/payment"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	}
	return false
}

type Id struct {
	Creator   domain.Address `json:"creator" bson:"creator" param:"creator"`
	ContentId string         `json:"contentId" bson:"contentId" param:"contentId"`
}

// Content is a gated item stored in database. Pointer holds the sealed
// content address and never leaves the server in that form except to a
// buyer holding a valid unlock token, who receives the opened value.
type Content struct {
	Creator     domain.Address `bson:"creator"`
	ContentId   string         `bson:"contentId"`
	Title       string         `bson:"title"`
	Description string         `bson:"description"`
	Pointer     string         `bson:"pointer"`
	MimeType    string         `bson:"mimeType"`
	Preview     string         `bson:"preview"`
	PreviewUrl  string         `bson:"previewUrl"`
	ManifestCid string         `bson:"manifestCid"`
	Price       int64          `bson:"price"`
	Asset       string         `bson:"asset"`
	Status      Status         `bson:"status"`
	UnlockCount int64          `bson:"unlockCount"`
	CreatedAt   time.Time      `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time      `bson:"updatedAt,omitempty"`
}

func (c *Content) ToId() Id {
	return Id{Creator: c.Creator, ContentId: c.ContentId}
}

func unixMilli(t time.Time) int64 {
	return t.Unix()*1e3 + int64(t.Nanosecond())/1e6
}

// ToInfo strips the sealed pointer for public listings
func (c *Content) ToInfo() *Info {
	return &Info{
		Creator:     c.Creator,
		ContentId:   c.ContentId,
		Title:       c.Title,
		Description: c.Description,
		MimeType:    c.MimeType,
		Preview:     c.Preview,
		PreviewUrl:  c.PreviewUrl,
		ManifestCid: c.ManifestCid,
		Price:       c.Price,
		Asset:       c.Asset,
		Status:      c.Status,
		UnlockCount: c.UnlockCount,
		CreatedAtMs: unixMilli(c.CreatedAt),
		UpdatedAtMs: unixMilli(c.UpdatedAt),
	}
}

// Info is content struct returns to client without the sealed pointer
type Info struct {
	Creator     domain.Address         `json:"creator"`
	ContentId   string                 `json:"contentId"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	MimeType    string                 `json:"mimeType"`
	Preview     string                 `json:"preview"`
	PreviewUrl  string                 `json:"previewUrl,omitempty"`
	ManifestCid string                 `json:"manifestCid,omitempty"`
	Price       int64                  `json:"price"`
	Asset       string                 `json:"asset"`
	Status      Status                 `json:"status"`
	UnlockCount int64                  `json:"unlockCount"`
	CreatorInfo *creator.SimpleCreator `json:"creatorInfo,omitempty"`
	CreatedAtMs int64                  `json:"createdAtMs,omitempty"`
	UpdatedAtMs int64                  `json:"updatedAtMs,omitempty"`
}

// Patchable to update content. Price and Asset may only change while
// the item is still a draft.
type Patchable struct {
	Title       *string   `json:"title" bson:"title,omitempty"`
	Description *string   `json:"description" bson:"description,omitempty"`
	Price       *int64    `json:"price" bson:"price,omitempty"`
	Asset       *string   `json:"asset" bson:"asset,omitempty"`
	Status      *Status   `json:"-" bson:"status,omitempty"`
	Preview     *string   `json:"-" bson:"preview,omitempty"`
	PreviewUrl  *string   `json:"-" bson:"previewUrl,omitempty"`
	ManifestCid *string   `json:"-" bson:"manifestCid,omitempty"`
	MimeType    *string   `json:"-" bson:"mimeType,omitempty"`
	UpdatedAt   time.Time `json:"-" bson:"updatedAt,omitempty"`
}

// Counter allocates per creator content ids
type Counter struct {
	Creator domain.Address `bson:"creator"`
	Seq     int64          `bson:"seq"`
}

type FindAllOptions struct {
	Creator  *domain.Address
	Status   *Status
	Asset    *string
	PriceGTE *int64
	PriceLTE *int64
	Offset   *int32
	Limit    *int32
	Sort     *string
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

func WithCreator(creator domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Creator = &creator
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithAsset(asset string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Asset = &asset
		return nil
	}
}

func WithPriceGTE(price int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PriceGTE = &price
		return nil
	}
}

func WithPriceLTE(price int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PriceLTE = &price
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

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// creation input carried from delivery to usecase
type CreateParams struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Pointer     string `json:"pointer" validate:"required"`
	Price       int64  `json:"price"`
	Asset       string `json:"asset" validate:"required"`
}

// PointerUrl maps an ipfs pointer to a fetchable gateway url. Other
// schemes pass through untouched.
func PointerUrl(gateway, pointer string) string {
	if strings.HasPrefix(pointer, "ipfs://") {
		return strings.TrimSuffix(gateway, "/") + "/ipfs/" + strings.TrimPrefix(pointer, "ipfs://")
	}
	return pointer
}

// AccessResult is returned when a buyer already holds access
type AccessResult struct {
	Pointer   string `json:"pointer"`
	Url       string `json:"url,omitempty"`
	Token     string `json:"token,omitempty"`
	TokenId   string `json:"tokenId,omitempty"`
	ExpiresAt int64  `json:"expiresAt,omitempty"`
}

type Usecase interface {
	Create(c ctx.Ctx, creator domain.Address, params *CreateParams) (*Info, error)
	Publish(c ctx.Ctx, id Id) (*Info, error)
	Archive(c ctx.Ctx, id Id) (*Info, error)
	Update(c ctx.Ctx, id Id, patchable *Patchable) (*Info, error)
	Get(c ctx.Ctx, id Id) (*Info, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Info, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)

	// GetAccess resolves a buyer's standing for one item. Exactly one
	// of the two results is set: an AccessResult when the buyer may
	// read, or a payment descriptor when payment is still owed.
	GetAccess(c ctx.Ctx, id Id, buyer domain.Address, bearerToken string) (*AccessResult, *payment.Descriptor, error)
}

type Repo interface {
	FindOne(c ctx.Ctx, id Id) (*Content, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Content, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, content *Content) error
	Patch(c ctx.Ctx, id Id, patchable *Patchable) error
	IncrementUnlockCount(c ctx.Ctx, id Id, delta int) error
	NextContentId(c ctx.Ctx, creator domain.Address) (string, error)
	EnsureCounter(c ctx.Ctx, creator domain.Address) error
}
