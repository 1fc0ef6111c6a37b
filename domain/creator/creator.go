package creator

import (
	"errors"
	"regexp"
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

var (
	// ErrInvalidNonce occured when validating a signature but the nonce of the address has not generated
	ErrInvalidNonce = errors.New("invalid nonce")
)

var usernameRegexp = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

// IsValidUsername reports whether name is a well formed handle. Handles
// are lowercase alphanumerics plus underscore, between 3 and 32 runes,
// the same charset the on-chain registry enforces.
func IsValidUsername(name string) bool {
	return usernameRegexp.MatchString(name)
}

// Creator is a registered publisher stored in database
type Creator struct {
	Address      domain.Address `bson:"address"`
	Username     string         `bson:"username"`
	DisplayName  string         `bson:"displayName"`
	Email        string         `bson:"email"`
	Bio          string         `bson:"bio"`
	AvatarCid    string         `bson:"avatarCid"`
	BannerCid    string         `bson:"bannerCid"`
	Website      string         `bson:"website"`
	Twitter      string         `bson:"twitter"`
	Discord      string         `bson:"discord"`
	Nonce        int32          `bson:"nonce"`
	ContentCount int32          `bson:"contentCount"`
	TotalEarned  int64          `bson:"totalEarned"`
	CreatedAt    time.Time      `bson:"createdAt,omitempty"`
	UpdatedAt    time.Time      `bson:"updatedAt,omitempty"`
}

func (c *Creator) ToSimpleCreator() *SimpleCreator {
	return &SimpleCreator{
		Address:     c.Address,
		Username:    c.Username,
		DisplayName: c.DisplayName,
		AvatarCid:   c.AvatarCid,
	}
}

func unixMilli(t time.Time) int64 {
	return t.Unix()*1e3 + int64(t.Nanosecond())/1e6
}

func (c *Creator) ToInfo() *Info {
	return &Info{
		Address:      c.Address,
		Username:     c.Username,
		DisplayName:  c.DisplayName,
		Email:        c.Email,
		Bio:          c.Bio,
		AvatarCid:    c.AvatarCid,
		BannerCid:    c.BannerCid,
		Website:      c.Website,
		Twitter:      c.Twitter,
		Discord:      c.Discord,
		ContentCount: c.ContentCount,
		TotalEarned:  c.TotalEarned,
		CreatedAtMs:  unixMilli(c.CreatedAt),
		UpdatedAtMs:  unixMilli(c.UpdatedAt),
	}
}

type SimpleCreator struct {
	Address     domain.Address `json:"address"`
	Username    string         `json:"username"`
	DisplayName string         `json:"displayName"`
	AvatarCid   string         `json:"avatarCid"`
}

// Info is creator struct returns to client which contains public info
type Info struct {
	Address      domain.Address `json:"address"`
	Username     string         `json:"username"`
	DisplayName  string         `json:"displayName"`
	Email        string         `json:"email"`
	Bio          string         `json:"bio"`
	AvatarCid    string         `json:"avatarCid"`
	BannerCid    string         `json:"bannerCid"`
	Website      string         `json:"website"`
	Twitter      string         `json:"twitter"`
	Discord      string         `json:"discord"`
	ContentCount int32          `json:"contentCount"`
	TotalEarned  int64          `json:"totalEarned,omitempty"`
	CreatedAtMs  int64          `json:"createdAtMs,omitempty"`
	UpdatedAtMs  int64          `json:"updatedAtMs,omitempty"`
}

// Sanitized drops email and earnings for responses to other users
func (i *Info) Sanitized() *Info {
	return &Info{
		Address:      i.Address,
		Username:     i.Username,
		DisplayName:  i.DisplayName,
		Bio:          i.Bio,
		AvatarCid:    i.AvatarCid,
		BannerCid:    i.BannerCid,
		Website:      i.Website,
		Twitter:      i.Twitter,
		Discord:      i.Discord,
		ContentCount: i.ContentCount,
		CreatedAtMs:  i.CreatedAtMs,
	}
}

// Updater to update creator profile. Username is fixed at registration.
type Updater struct {
	DisplayName *string   `json:"displayName" bson:"displayName"`
	Email       *string   `json:"email" bson:"email"`
	Bio         *string   `json:"bio" bson:"bio"`
	AvatarCid   *string   `json:"-" bson:"avatarCid"`
	BannerCid   *string   `json:"-" bson:"bannerCid"`
	Website     *string   `json:"website" bson:"website"`
	Twitter     *string   `json:"twitter" bson:"twitter"`
	Discord     *string   `json:"discord" bson:"discord"`
	Nonce       int32     `json:"-" bson:"nonce"`
	UpdatedAt   time.Time `json:"-" bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Offset *int32
	Limit  *int32
	Sort   *string
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

// Usecase is creator usecase
type Usecase interface {
	Register(c ctx.Ctx, address domain.Address, username, displayName, signature string) (*Info, error)
	Get(c ctx.Ctx, address domain.Address) (*Info, error)
	GetByUsername(c ctx.Ctx, username string) (*Info, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Info, error)
	GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error)
	// ValidateSignature checks the wallet signature over the sign-in
	// message carrying the current nonce. The nonce is consumed no
	// matter the signature is valid or not.
	ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) (*Info, error)
	// return ipfs cid
	UpdateAvatar(c ctx.Ctx, address domain.Address, imgData string) (string, error)
	// return ipfs cid
	UpdateBanner(c ctx.Ctx, address domain.Address, imgData string) (string, error)
}

// Repo is creator repo
type Repo interface {
	Get(c ctx.Ctx, address domain.Address) (*Creator, error)
	GetByUsername(c ctx.Ctx, username string) (*Creator, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Creator, error)
	Insert(c ctx.Ctx, creator *Creator) error
	Update(c ctx.Ctx, address domain.Address, updater *Updater) error
	IncrementContentCount(c ctx.Ctx, address domain.Address, delta int) error
	IncrementTotalEarned(c ctx.Ctx, address domain.Address, delta int64) error
}
