package usecase

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/btcsuite/btcutil/base58"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/file"
	"github.com/auton-labs/goapi/service/pinata"
)

const (
	nonceRange   = int32(9999999)
	invalidNonce = int32(-1)
)

type CreatorUseCaseCfg struct {
	Repo            creator.Repo
	ContentRepo     content.Repo
	FileUC          file.Usecase
	SignatureMsg    string
	RegistrationMsg string
}

type impl struct {
	repo            creator.Repo
	contentRepo     content.Repo
	file            file.Usecase
	signatureMsg    string
	registrationMsg string
}

// New creates creator usecase
func New(cfg *CreatorUseCaseCfg) creator.Usecase {
	return &impl{
		repo:            cfg.Repo,
		contentRepo:     cfg.ContentRepo,
		file:            cfg.FileUC,
		signatureMsg:    cfg.SignatureMsg,
		registrationMsg: cfg.RegistrationMsg,
	}
}

func (im *impl) Register(c ctx.Ctx, address domain.Address, username, displayName, signature string) (*creator.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":  address,
		"username": username,
	})

	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}

	if !creator.IsValidUsername(username) {
		return nil, domain.ErrInvalidUsername
	}

	msg := []byte(fmt.Sprintf(im.registrationMsg, username))
	if err := im.verifyMsgSignature(c, address, msg, signature); err != nil {
		return nil, err
	}

	if _, err := im.repo.GetByUsername(c, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("repo.GetByUsername failed")
		return nil, err
	}

	if _, err := im.repo.Get(c, address); err == nil {
		return nil, domain.ErrConflict
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("repo.Get failed")
		return nil, err
	}

	now := time.Now()
	value := &creator.Creator{
		Address:     address,
		Username:    username,
		DisplayName: displayName,
		Nonce:       invalidNonce,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := im.repo.Insert(c, value); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}

	if err := im.contentRepo.EnsureCounter(c, address); err != nil {
		c.WithField("err", err).Error("contentRepo.EnsureCounter failed")
		return nil, err
	}

	c.Info("registered new creator")

	return value.ToInfo(), nil
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*creator.Info, error) {
	res, err := im.repo.Get(c, address)
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("get creator failed")
		return nil, err
	}
	return res.ToInfo(), nil
}

func (im *impl) GetByUsername(c ctx.Ctx, username string) (*creator.Info, error) {
	res, err := im.repo.GetByUsername(c, username)
	if err != nil {
		c.WithFields(log.Fields{
			"username": username,
			"err":      err,
		}).Error("get creator failed")
		return nil, err
	}
	return res.ToInfo().Sanitized(), nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...creator.FindAllOptionsFunc) ([]*creator.Info, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}

	infos := make([]*creator.Info, len(res))
	for i, value := range res {
		infos[i] = value.ToInfo().Sanitized()
	}
	return infos, nil
}

func (im *impl) GenerateNonce(c ctx.Ctx, address domain.Address) (int32, error) {
	c = ctx.WithValue(c, "address", address)

	if _, err := im.repo.Get(c, address); err != nil {
		c.WithField("err", err).Error("get creator failed")
		return 0, err
	}

	nonce := im.genNonce()
	if err := im.repo.Update(c, address, &creator.Updater{
		Nonce: nonce,
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return 0, err
	}
	return nonce, nil
}

func (im *impl) ValidateSignature(c ctx.Ctx, address domain.Address, signature string) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":   address,
		"signature": signature,
	})

	// get nonce and check is it valid
	value, err := im.repo.Get(c, address)
	if err != nil {
		c.WithField("err", err).Error("get creator failed")
		return err
	}
	if value.Nonce == invalidNonce {
		return creator.ErrInvalidNonce
	}

	// reset nonce after validated the signature
	defer im.repo.Update(c, address, &creator.Updater{
		Nonce: invalidNonce,
	})

	msg := im.makeMessageWithNonce(strconv.Itoa(int(value.Nonce)))
	return im.verifyMsgSignature(c, address, msg, signature)
}

func (im *impl) Update(c ctx.Ctx, address domain.Address, updater *creator.Updater) (*creator.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"address":     address,
		"displayName": updater.DisplayName,
		"email":       updater.Email,
		"bio":         updater.Bio,
	})
	updater.UpdatedAt = time.Now()
	if err := im.repo.Update(c, address, updater); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return nil, err
	}
	return im.Get(c, address)
}

func (im *impl) UpdateAvatar(c ctx.Ctx, address domain.Address, imgData string) (string, error) {
	c = ctx.WithValue(c, "address", address)

	value, err := im.repo.Get(c, address)
	if err != nil {
		c.WithField("err", err).Error("get creator failed")
		return "", err
	}

	cid, err := im.file.Upload(c, imgData, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{
			Name: value.Username + string(address) + "avatar",
			KeyValues: map[string]interface{}{
				"address":  value.Address,
				"username": value.Username,
			},
		},
		Options: &pinata.PinataOptions{
			CidVersion: pinata.CidVersion0,
		},
	})
	if err != nil {
		c.WithField("err", err).Error("file.Upload failed")
		return "", err
	}

	if err := im.repo.Update(c, address, &creator.Updater{
		AvatarCid: &cid,
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return "", err
	}
	return cid, nil
}

func (im *impl) UpdateBanner(c ctx.Ctx, address domain.Address, imgData string) (string, error) {
	c = ctx.WithValue(c, "address", address)

	value, err := im.repo.Get(c, address)
	if err != nil {
		c.WithField("err", err).Error("get creator failed")
		return "", err
	}

	cid, err := im.file.Upload(c, imgData, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{
			Name: value.Username + string(address) + "banner",
			KeyValues: map[string]interface{}{
				"address":  value.Address,
				"username": value.Username,
			},
		},
		Options: &pinata.PinataOptions{
			CidVersion: pinata.CidVersion0,
		},
	})
	if err != nil {
		c.WithField("err", err).Error("file.Upload failed")
		return "", err
	}

	if err := im.repo.Update(c, address, &creator.Updater{
		BannerCid: &cid,
	}); err != nil {
		c.WithField("err", err).Error("repo.Update failed")
		return "", err
	}
	return cid, nil
}

func (im *impl) genNonce() int32 {
	// zero valued patches are dropped, so nonce starts from 1
	return rand.Int31n(nonceRange) + 1
}

func (im *impl) makeMessageWithNonce(nonce string) []byte {
	return []byte(fmt.Sprintf(im.signatureMsg, nonce))
}

func (im *impl) verifyMsgSignature(c ctx.Ctx, address domain.Address, msg []byte, signature string) error {
	sig := base58.Decode(signature)
	if len(sig) == 0 {
		return domain.ErrInvalidSignature
	}
	if err := wallet.Verify(address, msg, sig); err != nil {
		c.WithField("err", err).Error("wallet.Verify failed")
		return err
	}
	return nil
}
