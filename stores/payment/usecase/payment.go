package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/auton-labs/goapi/base/amount"
	"github.com/auton-labs/goapi/base/crypter"
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/feesplit"
	"github.com/auton-labs/goapi/base/goroutine"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/payment"
	"github.com/auton-labs/goapi/domain/vault"
	"github.com/auton-labs/goapi/service/notifier"
)

const defaultIntentTtl = 15 * time.Minute

type PaymentUseCaseCfg struct {
	Repo        payment.Repo
	ContentRepo content.Repo
	CreatorRepo creator.Repo
	AssetRepo   domain.AssetRepo
	AccessUC    access.Usecase
	VaultUC     vault.UseCase
	Verifier    payment.Verifier
	Crypter     *crypter.Crypter
	Notifier    notifier.Service
	Treasury    domain.Address
	Network     domain.Network
	FeeBps      int64
	IntentTtl   time.Duration
	IpfsGateway string
}

type impl struct {
	repo        payment.Repo
	contentRepo content.Repo
	creatorRepo creator.Repo
	assetRepo   domain.AssetRepo
	access      access.Usecase
	vault       vault.UseCase
	verifier    payment.Verifier
	crypter     *crypter.Crypter
	notifier    notifier.Service
	formatter   amount.Formatter
	treasury    domain.Address
	network     domain.Network
	feeBps      int64
	intentTtl   time.Duration
	ipfsGateway string
}

// New creates payment usecase
func New(cfg *PaymentUseCaseCfg) payment.Usecase {
	intentTtl := cfg.IntentTtl
	if intentTtl <= 0 {
		intentTtl = defaultIntentTtl
	}
	return &impl{
		repo:        cfg.Repo,
		contentRepo: cfg.ContentRepo,
		creatorRepo: cfg.CreatorRepo,
		assetRepo:   cfg.AssetRepo,
		access:      cfg.AccessUC,
		vault:       cfg.VaultUC,
		verifier:    cfg.Verifier,
		crypter:     cfg.Crypter,
		notifier:    cfg.Notifier,
		formatter:   amount.NewFormatter(&amount.FormatterCfg{Asset: cfg.AssetRepo}),
		treasury:    cfg.Treasury,
		network:     cfg.Network,
		feeBps:      cfg.FeeBps,
		intentTtl:   intentTtl,
		ipfsGateway: cfg.IpfsGateway,
	}
}

func (im *impl) CreateIntent(c ctx.Ctx, params *payment.CreateIntentParams) (*payment.Intent, *payment.Descriptor, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"buyer":     params.Buyer,
		"creator":   params.Creator,
		"contentId": params.ContentId,
	})

	if params.Amount <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	if _, err := im.assetRepo.FindOne(c, params.Asset); err != nil {
		if err == domain.ErrNotFound {
			return nil, nil, domain.ErrUnknownAsset
		}
		c.WithField("err", err).Error("assetRepo.FindOne failed")
		return nil, nil, err
	}

	// hand the same intent back while it is still payable, a buyer
	// polling the access endpoint must not pile up duplicates
	pending, err := im.repo.FindAll(c,
		payment.WithBuyer(params.Buyer),
		payment.WithCreator(params.Creator),
		payment.WithContentId(params.ContentId),
		payment.WithStatus(payment.IntentStatusPending),
	)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, nil, err
	}

	now := time.Now()
	for _, it := range pending {
		if it.ExpiresAt.After(now) {
			c.WithField("intentId", it.Id).Info("reusing pending payment intent")
			return it, im.makeDescriptor(c, it), nil
		}
	}

	split, err := feesplit.Compute(params.Amount, im.feeBps)
	if err != nil {
		c.WithField("err", err).Error("feesplit.Compute failed")
		return nil, nil, err
	}

	intent := &payment.Intent{
		Id:            uuid.NewString(),
		Buyer:         params.Buyer,
		Creator:       params.Creator,
		ContentId:     params.ContentId,
		Asset:         params.Asset,
		Amount:        params.Amount,
		PlatformFee:   split.PlatformFee,
		CreatorAmount: split.CreatorAmount,
		Treasury:      im.treasury,
		Nonce:         uuid.NewString(),
		Status:        payment.IntentStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(im.intentTtl),
	}

	if err := im.repo.Insert(c, intent); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, nil, err
	}

	c.WithField("intentId", intent.Id).Info("created payment intent")

	return intent, im.makeDescriptor(c, intent), nil
}

func (im *impl) GetIntent(c ctx.Ctx, id string) (*payment.Intent, error) {
	intent, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).WithField("intentId", id).Error("repo.FindOne failed")
		}
		return nil, err
	}
	return intent, nil
}

func (im *impl) Confirm(c ctx.Ctx, id string, txSignature domain.TxSignature) (*payment.ConfirmResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"intentId":    id,
		"txSignature": txSignature,
	})

	if txSignature.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	intent, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("repo.FindOne failed")
		}
		return nil, err
	}

	switch intent.Status {
	case payment.IntentStatusConfirmed:
		return nil, domain.ErrIntentConsumed
	case payment.IntentStatusExpired:
		return nil, domain.ErrIntentExpired
	}

	now := time.Now()
	if intent.ExpiresAt.Before(now) {
		expired := payment.IntentStatusExpired
		if err := im.repo.Patch(c, intent.Id, &payment.IntentPatchable{Status: &expired}); err != nil {
			c.WithField("err", err).Warn("repo.Patch to expired failed")
		}
		return nil, domain.ErrIntentExpired
	}

	// one signature pays for one unlock. The unique index on
	// txSignature backs this check up if two confirms race.
	existing, err := im.repo.FindOneByTxSignature(c, txSignature)
	if err == nil && existing.Id != intent.Id {
		return nil, domain.ErrTxAlreadyUsed
	}
	if err != nil && err != domain.ErrNotFound {
		c.WithField("err", err).Error("repo.FindOneByTxSignature failed")
		return nil, err
	}

	asset, err := im.assetRepo.FindOne(c, intent.Asset)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrUnknownAsset
		}
		c.WithField("err", err).Error("assetRepo.FindOne failed")
		return nil, err
	}

	// the buyer owes the full amount but only the creator leg lands at
	// the creator address, so that is the delta the ledger must show
	res, err := im.verifier.VerifyPayment(c, txSignature, payment.Expectation{
		Recipient: intent.Creator,
		Amount:    intent.CreatorAmount,
		Asset:     asset,
	})
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		// leave the intent pending, the buyer may still send a correct
		// transaction before it expires
		reason := res.Reason
		if err := im.repo.Patch(c, intent.Id, &payment.IntentPatchable{FailReason: &reason}); err != nil {
			c.WithField("err", err).Warn("repo.Patch fail reason failed")
		}
		c.WithField("reason", res.Reason).Warn("payment verification rejected")
		return nil, xerrors.Errorf("%s: %w", res.Reason, domain.ErrPaymentRejected)
	}

	confirmed := payment.IntentStatusConfirmed
	confirmedAt := now
	if err := im.repo.Patch(c, intent.Id, &payment.IntentPatchable{
		Status:      &confirmed,
		TxSignature: &txSignature,
		ConfirmedAt: &confirmedAt,
	}); err != nil {
		c.WithField("err", err).Error("repo.Patch to confirmed failed")
		return nil, err
	}

	minted, err := im.access.Grant(c, &access.Grant{
		Buyer:       intent.Buyer,
		Creator:     intent.Creator,
		ContentId:   intent.ContentId,
		IntentId:    intent.Id,
		TxSignature: txSignature,
	})
	if err != nil {
		// the intent is confirmed and the money moved. The access path
		// re-issues a lost grant from the confirmed intent, so surface
		// the error instead of unwinding the confirmation.
		c.WithField("err", err).Error("access.Grant failed")
		return nil, err
	}

	item, err := im.contentRepo.FindOne(c, content.Id{Creator: intent.Creator, ContentId: intent.ContentId})
	if err != nil {
		c.WithField("err", err).Error("contentRepo.FindOne failed")
		return nil, err
	}

	pointer, err := im.crypter.Decrypt(item.Pointer)
	if err != nil {
		c.WithField("err", err).Error("crypter.Decrypt failed")
		return nil, domain.ErrDecryptionFailed
	}

	if err := im.contentRepo.IncrementUnlockCount(c, content.Id{Creator: intent.Creator, ContentId: intent.ContentId}, 1); err != nil {
		c.WithField("err", err).Warn("contentRepo.IncrementUnlockCount failed")
	}
	if err := im.creatorRepo.IncrementTotalEarned(c, intent.Creator, intent.CreatorAmount); err != nil {
		c.WithField("err", err).Warn("creatorRepo.IncrementTotalEarned failed")
	}
	if err := im.vault.RecordPayment(c, intent.Amount, intent.PlatformFee); err != nil {
		c.WithField("err", err).Warn("vault.RecordPayment failed")
	}

	notifyCtx := ctx.WithValues(ctx.Background(), map[string]interface{}{
		"intentId":    intent.Id,
		"txSignature": txSignature,
	})
	evt := notifier.PaymentEvent{
		Buyer:       intent.Buyer,
		Creator:     intent.Creator,
		ContentId:   intent.ContentId,
		Asset:       asset,
		Amount:      intent.Amount,
		PlatformFee: intent.PlatformFee,
		TxSignature: string(txSignature),
	}
	goroutine.RecoverableGo(func() {
		im.notifier.NotifyPaymentConfirmed(notifyCtx, evt)
	})

	c.Info("confirmed payment")

	return &payment.ConfirmResult{
		Token:     minted.Token,
		TokenId:   minted.TokenId,
		ExpiresAt: minted.ExpiresAt,
		Pointer:   pointer,
		Url:       content.PointerUrl(im.ipfsGateway, pointer),
	}, nil
}

func (im *impl) ExpireStale(c ctx.Ctx, now time.Time) (int, error) {
	stale, err := im.repo.FindAll(c,
		payment.WithStatus(payment.IntentStatusPending),
		payment.WithExpiresAtLT(now),
	)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return 0, err
	}

	expired := payment.IntentStatusExpired
	count := 0
	for _, it := range stale {
		if err := im.repo.Patch(c, it.Id, &payment.IntentPatchable{Status: &expired}); err != nil {
			c.WithField("err", err).WithField("intentId", it.Id).Warn("repo.Patch to expired failed")
			continue
		}
		count++
	}

	if count > 0 {
		c.WithField("count", count).Info("expired stale payment intents")
	}

	return count, nil
}

func (im *impl) makeDescriptor(c ctx.Ctx, intent *payment.Intent) *payment.Descriptor {
	d := &payment.Descriptor{
		Protocol: payment.Protocol,
		Network:  im.network,
		IntentId: intent.Id,
		Asset:    intent.Asset,
		Amount:   intent.Amount,
		Splits: []payment.Split{
			{Role: payment.SplitRoleCreator, Recipient: intent.Creator, Amount: intent.CreatorAmount},
			{Role: payment.SplitRolePlatform, Recipient: intent.Treasury, Amount: intent.PlatformFee},
		},
		Nonce:     intent.Nonce,
		ExpiresAt: intent.ExpiresAt.Unix(),
	}

	// the description is cosmetic, a descriptor without one is still payable
	if display, err := im.formatter.ToDisplay(c, intent.Asset, intent.Amount); err != nil {
		c.WithField("err", err).Warn("formatter.ToDisplay failed")
	} else {
		d.Description = fmt.Sprintf("Unlock %s/%s for %s %s", intent.Creator, intent.ContentId, display, intent.Asset)
	}

	return d
}
