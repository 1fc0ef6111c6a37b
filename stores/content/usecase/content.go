package usecase

import (
	"fmt"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/auton-labs/goapi/base/crypter"
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/preview"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/file"
	"github.com/auton-labs/goapi/domain/payment"
	"github.com/auton-labs/goapi/service/pinata"
)

const defaultPreviewLen = 280

type ContentUseCaseCfg struct {
	Repo        content.Repo
	CreatorRepo creator.Repo
	AssetRepo   domain.AssetRepo
	PaymentRepo payment.Repo
	AccessUC    access.Usecase
	PaymentUC   payment.Usecase
	FileUC      file.Usecase
	WebResource domain.WebResourceUseCase
	Crypter     *crypter.Crypter
	PreviewLen  int
	IpfsGateway string
}

type impl struct {
	repo        content.Repo
	creatorRepo creator.Repo
	assetRepo   domain.AssetRepo
	paymentRepo payment.Repo
	access      access.Usecase
	payment     payment.Usecase
	file        file.Usecase
	webResource domain.WebResourceUseCase
	crypter     *crypter.Crypter
	previewLen  int
	ipfsGateway string
}

// New creates content usecase
func New(cfg *ContentUseCaseCfg) content.Usecase {
	previewLen := cfg.PreviewLen
	if previewLen <= 0 {
		previewLen = defaultPreviewLen
	}
	return &impl{
		repo:        cfg.Repo,
		creatorRepo: cfg.CreatorRepo,
		assetRepo:   cfg.AssetRepo,
		paymentRepo: cfg.PaymentRepo,
		access:      cfg.AccessUC,
		payment:     cfg.PaymentUC,
		file:        cfg.FileUC,
		webResource: cfg.WebResource,
		crypter:     cfg.Crypter,
		previewLen:  previewLen,
		ipfsGateway: cfg.IpfsGateway,
	}
}

func (im *impl) Create(c ctx.Ctx, creatorAddress domain.Address, params *content.CreateParams) (*content.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"creator": creatorAddress,
		"title":   params.Title,
	})

	if len(params.Title) == 0 || len(params.Pointer) == 0 {
		return nil, domain.ErrBadParamInput
	}

	if params.Price < 0 {
		return nil, domain.ErrInvalidAmount
	}

	if len(params.Asset) > 0 {
		if _, err := im.assetRepo.FindOne(c, params.Asset); err == domain.ErrNotFound {
			return nil, domain.ErrUnknownAsset
		} else if err != nil {
			c.WithField("err", err).Error("assetRepo.FindOne failed")
			return nil, err
		}
	}

	if _, err := im.creatorRepo.Get(c, creatorAddress); err != nil {
		c.WithField("err", err).Error("creatorRepo.Get failed")
		return nil, err
	}

	contentId, err := im.repo.NextContentId(c, creatorAddress)
	if err != nil {
		c.WithField("err", err).Error("repo.NextContentId failed")
		return nil, err
	}

	// the plaintext pointer must never touch storage
	sealed, err := im.crypter.Encrypt(params.Pointer)
	if err != nil {
		c.WithField("err", err).Error("crypter.Encrypt failed")
		return nil, err
	}

	now := time.Now()
	item := &content.Content{
		Creator:     creatorAddress,
		ContentId:   contentId,
		Title:       params.Title,
		Description: params.Description,
		Pointer:     sealed,
		Price:       params.Price,
		Asset:       params.Asset,
		Status:      content.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := im.repo.Insert(c, item); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}

	if err := im.creatorRepo.IncrementContentCount(c, creatorAddress, 1); err != nil {
		c.WithField("err", err).Error("creatorRepo.IncrementContentCount failed")
		return nil, err
	}

	c.WithField("contentId", contentId).Info("created content draft")

	return item.ToInfo(), nil
}

func (im *impl) Publish(c ctx.Ctx, id content.Id) (*content.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"creator":   id.Creator,
		"contentId": id.ContentId,
	})

	item, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	if item.Status == content.StatusActive {
		return im.Get(c, id)
	}
	if item.Status == content.StatusArchived {
		return nil, domain.ErrContentNotActive
	}

	if item.Price <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := im.assetRepo.FindOne(c, item.Asset); err == domain.ErrNotFound {
		return nil, domain.ErrUnknownAsset
	} else if err != nil {
		c.WithField("err", err).Error("assetRepo.FindOne failed")
		return nil, err
	}

	// an unopenable pointer would break every later unlock, catch it
	// here instead
	pointer, err := im.crypter.Decrypt(item.Pointer)
	if err != nil {
		c.WithField("err", err).Error("crypter.Decrypt failed")
		return nil, domain.ErrDecryptionFailed
	}

	status := content.StatusActive
	patch := &content.Patchable{
		Status:    &status,
		UpdatedAt: time.Now(),
	}

	im.makePreview(c, item, pointer, patch)

	manifestCid, err := im.pinManifest(c, item, patch)
	if err != nil {
		c.WithField("err", err).Error("pinManifest failed")
		return nil, err
	}
	patch.ManifestCid = &manifestCid

	if err := im.repo.Patch(c, id, patch); err != nil {
		c.WithField("err", err).Error("repo.Patch failed")
		return nil, err
	}

	c.Info("published content")

	return im.Get(c, id)
}

// makePreview derives a teaser from the payload. Strictly best effort,
// a gated item publishes fine without one.
func (im *impl) makePreview(c ctx.Ctx, item *content.Content, pointer string, patch *content.Patchable) {
	data, err := im.webResource.Get(c, pointer)
	if err != nil {
		c.WithField("err", err).Warn("webResource.Get failed, skipping preview")
		return
	}

	mime := preview.DetectMime(data)
	patch.MimeType = &mime

	teaser := preview.Extract(data, im.previewLen)
	if len(teaser) == 0 {
		return
	}
	patch.Preview = &teaser

	url, err := im.webResource.StorePreview(c, item.Creator, item.ContentId, []byte(teaser), "text/plain; charset=utf-8")
	if err != nil {
		c.WithField("err", err).Warn("webResource.StorePreview failed")
		return
	}
	patch.PreviewUrl = &url
}

func (im *impl) pinManifest(c ctx.Ctx, item *content.Content, patch *content.Patchable) (string, error) {
	manifest := struct {
		Creator     domain.Address `json:"creator"`
		ContentId   string         `json:"contentId"`
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Price       int64          `json:"price"`
		Asset       string         `json:"asset"`
		Preview     string         `json:"preview,omitempty"`
	}{
		Creator:     item.Creator,
		ContentId:   item.ContentId,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Asset:       item.Asset,
	}
	if patch.Preview != nil {
		manifest.Preview = *patch.Preview
	}

	return im.file.UploadJson(c, manifest, pinata.PinOptions{
		Metadata: &pinata.PinataMetadata{
			Name: fmt.Sprintf("%s-%s-manifest", item.Creator, item.ContentId),
			KeyValues: map[string]interface{}{
				"creator":   item.Creator,
				"contentId": item.ContentId,
			},
		},
		Options: &pinata.PinataOptions{
			CidVersion: pinata.CidVersion0,
		},
	})
}

func (im *impl) Archive(c ctx.Ctx, id content.Id) (*content.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"creator":   id.Creator,
		"contentId": id.ContentId,
	})

	item, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	if item.Status == content.StatusArchived {
		return item.ToInfo(), nil
	}

	status := content.StatusArchived
	if err := im.repo.Patch(c, id, &content.Patchable{
		Status:    &status,
		UpdatedAt: time.Now(),
	}); err != nil {
		c.WithField("err", err).Error("repo.Patch failed")
		return nil, err
	}

	c.Info("archived content")

	return im.Get(c, id)
}

func (im *impl) Update(c ctx.Ctx, id content.Id, patchable *content.Patchable) (*content.Info, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"creator":   id.Creator,
		"contentId": id.ContentId,
	})

	item, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	// price and asset freeze the moment the item goes live
	if (patchable.Price != nil || patchable.Asset != nil) && item.Status != content.StatusDraft {
		return nil, domain.ErrPriceLocked
	}

	if patchable.Price != nil && *patchable.Price < 0 {
		return nil, domain.ErrInvalidAmount
	}

	if patchable.Asset != nil {
		if _, err := im.assetRepo.FindOne(c, *patchable.Asset); err == domain.ErrNotFound {
			return nil, domain.ErrUnknownAsset
		} else if err != nil {
			c.WithField("err", err).Error("assetRepo.FindOne failed")
			return nil, err
		}
	}

	patchable.UpdatedAt = time.Now()
	if err := im.repo.Patch(c, id, patchable); err != nil {
		c.WithField("err", err).Error("repo.Patch failed")
		return nil, err
	}

	return im.Get(c, id)
}

func (im *impl) Get(c ctx.Ctx, id content.Id) (*content.Info, error) {
	item, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}

	info := item.ToInfo()
	if value, err := im.creatorRepo.Get(c, item.Creator); err == nil {
		info.CreatorInfo = value.ToSimpleCreator()
	}
	return info, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...content.FindAllOptionsFunc) ([]*content.Info, error) {
	items, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return im.toInfos(c, items), nil
}

func (im *impl) Count(c ctx.Ctx, opts ...content.FindAllOptionsFunc) (int, error) {
	res, err := im.repo.Count(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.Count failed")
		return 0, err
	}
	return res, nil
}

// toInfos attaches creator summaries in parallel. The creator repo
// caches lookups, so a page of items from one creator costs a single
// database read.
func (im *impl) toInfos(c ctx.Ctx, items []*content.Content) []*content.Info {
	infos := make([]*content.Info, len(items))
	if len(items) == 0 {
		return infos
	}

	b := goroutines.NewBatch(10, goroutines.WithBatchSize(len(items)))
	defer b.Close()
	for i := 0; i < len(items); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			info := items[idx].ToInfo()
			if value, err := im.creatorRepo.Get(c, items[idx].Creator); err == nil {
				info.CreatorInfo = value.ToSimpleCreator()
			}
			infos[idx] = info
			return nil, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("enrich content info error result")
		}
	}
	return infos
}

func (im *impl) GetAccess(c ctx.Ctx, id content.Id, buyer domain.Address, bearerToken string) (*content.AccessResult, *payment.Descriptor, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"creator":   id.Creator,
		"contentId": id.ContentId,
		"buyer":     buyer,
	})

	if !buyer.IsValid() {
		return nil, nil, domain.ErrInvalidAddress
	}

	item, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, nil, err
	}

	// drafts and archived items do not exist for buyers
	if item.Status != content.StatusActive {
		return nil, nil, domain.ErrNotFound
	}

	if _, err := im.assetRepo.FindOne(c, item.Asset); err == domain.ErrNotFound {
		return nil, nil, domain.ErrUnknownAsset
	} else if err != nil {
		c.WithField("err", err).Error("assetRepo.FindOne failed")
		return nil, nil, err
	}

	if len(bearerToken) > 0 {
		if claims, err := im.access.VerifyToken(c, bearerToken); err != nil {
			// a dead token is the same as no token
			c.WithField("err", err).Info("bearer token rejected")
		} else if claims.Buyer == string(buyer) && claims.Creator == string(id.Creator) && claims.ContentId == id.ContentId {
			return im.makeAccessResult(c, item, bearerToken, claims.TokenId, claims.ExpiresAt)
		}
	}

	grantId := access.GrantId{Buyer: buyer, Creator: id.Creator, ContentId: id.ContentId}

	if ok, err := im.access.HasGrant(c, grantId); err != nil {
		c.WithField("err", err).Error("access.HasGrant failed")
		return nil, nil, err
	} else if ok {
		minted, err := im.access.Renew(c, grantId)
		if err != nil {
			c.WithField("err", err).Error("access.Renew failed")
			return nil, nil, err
		}
		return im.makeAccessResult(c, item, minted.Token, minted.TokenId, minted.ExpiresAt)
	}

	// a confirmed intent with no grant means the grant write was lost,
	// re-issue instead of charging twice
	intents, err := im.paymentRepo.FindAll(c,
		payment.WithBuyer(buyer),
		payment.WithCreator(id.Creator),
		payment.WithContentId(id.ContentId),
		payment.WithStatus(payment.IntentStatusConfirmed),
		payment.WithPagination(0, 1),
	)
	if err != nil {
		c.WithField("err", err).Error("paymentRepo.FindAll failed")
		return nil, nil, err
	}
	if len(intents) > 0 {
		minted, err := im.access.Grant(c, &access.Grant{
			Buyer:       buyer,
			Creator:     id.Creator,
			ContentId:   id.ContentId,
			IntentId:    intents[0].Id,
			TxSignature: intents[0].TxSignature,
		})
		if err != nil {
			c.WithField("err", err).Error("access.Grant failed")
			return nil, nil, err
		}
		return im.makeAccessResult(c, item, minted.Token, minted.TokenId, minted.ExpiresAt)
	}

	_, descriptor, err := im.payment.CreateIntent(c, &payment.CreateIntentParams{
		Buyer:     buyer,
		Creator:   id.Creator,
		ContentId: id.ContentId,
		Asset:     item.Asset,
		Amount:    item.Price,
	})
	if err != nil {
		c.WithField("err", err).Error("payment.CreateIntent failed")
		return nil, nil, err
	}
	return nil, descriptor, nil
}

func (im *impl) makeAccessResult(c ctx.Ctx, item *content.Content, token, tokenId string, expiresAt int64) (*content.AccessResult, *payment.Descriptor, error) {
	pointer, err := im.crypter.Decrypt(item.Pointer)
	if err != nil {
		c.WithField("err", err).Error("crypter.Decrypt failed")
		return nil, nil, domain.ErrDecryptionFailed
	}
	return &content.AccessResult{
		Pointer:   pointer,
		Url:       content.PointerUrl(im.ipfsGateway, pointer),
		Token:     token,
		TokenId:   tokenId,
		ExpiresAt: expiresAt,
	}, nil, nil
}
