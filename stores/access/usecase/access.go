package usecase

import (
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
)

type AccessUseCaseCfg struct {
	Repo   access.Repo
	Issuer access.TokenIssuer
}

type impl struct {
	repo   access.Repo
	issuer access.TokenIssuer
}

// New creates access usecase
func New(cfg *AccessUseCaseCfg) access.Usecase {
	return &impl{
		repo:   cfg.Repo,
		issuer: cfg.Issuer,
	}
}

func (im *impl) Grant(c ctx.Ctx, grant *access.Grant) (*access.Minted, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"buyer":     grant.Buyer,
		"creator":   grant.Creator,
		"contentId": grant.ContentId,
	})

	minted, err := im.issuer.Issue(c, grant.Buyer, grant.Creator, grant.ContentId)
	if err != nil {
		c.WithField("err", err).Error("issuer.Issue failed")
		return nil, err
	}

	now := time.Now()
	grant.TokenId = minted.TokenId
	grant.UnlockCount = 1
	grant.CreatedAt = now
	grant.LastMintAt = now

	err = im.repo.Insert(c, grant)
	if err == domain.ErrConflict {
		// granted before, an earlier confirm got this far. The unique
		// index keeps one grant per purchase, count the mint on it.
		if err := im.repo.MarkMinted(c, grant.ToId(), minted.TokenId, now); err != nil {
			c.WithField("err", err).Warn("repo.MarkMinted failed")
		}
		return minted, nil
	}
	if err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}

	c.Info("granted access")

	return minted, nil
}

func (im *impl) Renew(c ctx.Ctx, id access.GrantId) (*access.Minted, error) {
	if _, err := im.repo.FindOne(c, id); err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("repo.FindOne failed")
		}
		return nil, err
	}

	minted, err := im.issuer.Issue(c, id.Buyer, id.Creator, id.ContentId)
	if err != nil {
		c.WithField("err", err).Error("issuer.Issue failed")
		return nil, err
	}

	// the token already left the signer, a failed count never blocks it
	if err := im.repo.MarkMinted(c, id, minted.TokenId, time.Now()); err != nil {
		c.WithField("err", err).Warn("repo.MarkMinted failed")
	}

	return minted, nil
}

func (im *impl) HasGrant(c ctx.Ctx, id access.GrantId) (bool, error) {
	if _, err := im.repo.FindOne(c, id); err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (im *impl) VerifyToken(c ctx.Ctx, token string) (*access.TokenClaims, error) {
	return im.issuer.Verify(c, token)
}

func (im *impl) FindAll(c ctx.Ctx, opts ...access.FindAllOptionsFunc) ([]*access.Grant, error) {
	grants, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return grants, nil
}
