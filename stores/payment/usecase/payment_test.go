package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/crypter"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
	mAccess "github.com/auton-labs/goapi/domain/access/mocks"
	"github.com/auton-labs/goapi/domain/content"
	mContent "github.com/auton-labs/goapi/domain/content/mocks"
	mCreator "github.com/auton-labs/goapi/domain/creator/mocks"
	mDomain "github.com/auton-labs/goapi/domain/mocks"
	"github.com/auton-labs/goapi/domain/payment"
	mPayment "github.com/auton-labs/goapi/domain/payment/mocks"
	mVault "github.com/auton-labs/goapi/domain/vault/mocks"
	mNotifier "github.com/auton-labs/goapi/service/notifier/mocks"
)

const (
	testGateway = "https://cloudflare-ipfs.com"
	anyIntentFn = "payment.FindAllOptionsFunc"
	testFeeBps  = 75
)

var testAsset = &domain.Asset{Symbol: "USDC", Kind: domain.AssetKindToken, Decimals: 6, Mint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"}

type paymentUcSuite struct {
	suite.Suite

	buyerAddr    domain.Address
	creatorAddr  domain.Address
	treasuryAddr domain.Address

	repo        *mPayment.Repo
	contentRepo *mContent.Repo
	creatorRepo *mCreator.Repo
	assetRepo   *mDomain.AssetRepo
	accessUC    *mAccess.Usecase
	vaultUC     *mVault.UseCase
	verifier    *mPayment.Verifier
	notifier    *mNotifier.Service
	crypter     *crypter.Crypter
	im          *impl
}

func TestPaymentUcSuite(t *testing.T) {
	suite.Run(t, new(paymentUcSuite))
}

func (s *paymentUcSuite) SetupSuite() {
	for _, addr := range []*domain.Address{&s.buyerAddr, &s.creatorAddr, &s.treasuryAddr} {
		w, err := wallet.Generate()
		s.Require().NoError(err)
		*addr = w.Address()
	}

	cr, err := crypter.New([]byte(strings.Repeat("k", 32)))
	s.Require().NoError(err)
	s.crypter = cr
}

func (s *paymentUcSuite) SetupTest() {
	s.repo = &mPayment.Repo{}
	s.contentRepo = &mContent.Repo{}
	s.creatorRepo = &mCreator.Repo{}
	s.assetRepo = &mDomain.AssetRepo{}
	s.accessUC = &mAccess.Usecase{}
	s.vaultUC = &mVault.UseCase{}
	s.verifier = &mPayment.Verifier{}
	s.notifier = &mNotifier.Service{}
	s.im = New(&PaymentUseCaseCfg{
		Repo:        s.repo,
		ContentRepo: s.contentRepo,
		CreatorRepo: s.creatorRepo,
		AssetRepo:   s.assetRepo,
		AccessUC:    s.accessUC,
		VaultUC:     s.vaultUC,
		Verifier:    s.verifier,
		Crypter:     s.crypter,
		Notifier:    s.notifier,
		Treasury:    s.treasuryAddr,
		Network:     domain.NetworkDevnet,
		FeeBps:      testFeeBps,
		IntentTtl:   time.Minute,
		IpfsGateway: testGateway,
	}).(*impl)
}

func (s *paymentUcSuite) pendingIntent(id string) *payment.Intent {
	now := time.Now()
	return &payment.Intent{
		Id:            id,
		Buyer:         s.buyerAddr,
		Creator:       s.creatorAddr,
		ContentId:     "1",
		Asset:         "USDC",
		Amount:        1000000,
		PlatformFee:   7500,
		CreatorAmount: 992500,
		Treasury:      s.treasuryAddr,
		Nonce:         "nonce-" + id,
		Status:        payment.IntentStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(10 * time.Minute),
	}
}

func (s *paymentUcSuite) createParams() *payment.CreateIntentParams {
	return &payment.CreateIntentParams{
		Buyer:     s.buyerAddr,
		Creator:   s.creatorAddr,
		ContentId: "1",
		Asset:     "USDC",
		Amount:    1000000,
	}
}

func (s *paymentUcSuite) TestCreateIntentSplitsFee() {
	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.repo.On("FindAll", mock.Anything,
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
	).Return([]*payment.Intent{}, nil)

	var inserted *payment.Intent
	s.repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*payment.Intent)
	}).Return(nil)

	intent, descriptor, err := s.im.CreateIntent(mockCtx, s.createParams())
	s.NoError(err)
	s.Require().NotNil(inserted)
	s.Equal(intent, inserted)

	s.EqualValues(7500, intent.PlatformFee)
	s.EqualValues(992500, intent.CreatorAmount)
	s.Equal(payment.IntentStatusPending, intent.Status)
	s.Equal(s.treasuryAddr, intent.Treasury)
	s.NotEmpty(intent.Id)
	s.NotEmpty(intent.Nonce)
	s.True(intent.ExpiresAt.After(time.Now()))

	s.Require().NotNil(descriptor)
	s.Equal(payment.Protocol, descriptor.Protocol)
	s.Equal(domain.NetworkDevnet, descriptor.Network)
	s.Equal(intent.Id, descriptor.IntentId)
	s.Equal(intent.Nonce, descriptor.Nonce)
	s.Equal(intent.ExpiresAt.Unix(), descriptor.ExpiresAt)
	s.Require().Len(descriptor.Splits, 2)
	s.Equal(payment.Split{Role: payment.SplitRoleCreator, Recipient: s.creatorAddr, Amount: 992500}, descriptor.Splits[0])
	s.Equal(payment.Split{Role: payment.SplitRolePlatform, Recipient: s.treasuryAddr, Amount: 7500}, descriptor.Splits[1])
	s.Equal("Unlock "+string(s.creatorAddr)+"/1 for 1 USDC", descriptor.Description)
}

func (s *paymentUcSuite) TestCreateIntentReusesPending() {
	existing := s.pendingIntent("intent-1")

	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.repo.On("FindAll", mock.Anything,
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
	).Return([]*payment.Intent{existing}, nil)

	intent, descriptor, err := s.im.CreateIntent(mockCtx, s.createParams())
	s.NoError(err)
	s.Equal(existing, intent)
	s.Equal("intent-1", descriptor.IntentId)
	s.Equal("nonce-intent-1", descriptor.Nonce)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *paymentUcSuite) TestCreateIntentSkipsExpiredPending() {
	stale := s.pendingIntent("intent-stale")
	stale.ExpiresAt = time.Now().Add(-time.Minute)

	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.repo.On("FindAll", mock.Anything,
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
	).Return([]*payment.Intent{stale}, nil)
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	intent, _, err := s.im.CreateIntent(mockCtx, s.createParams())
	s.NoError(err)
	s.NotEqual("intent-stale", intent.Id)
	s.repo.AssertNumberOfCalls(s.T(), "Insert", 1)
}

func (s *paymentUcSuite) TestCreateIntentRejectsBadParams() {
	params := s.createParams()
	params.Amount = 0
	_, _, err := s.im.CreateIntent(mockCtx, params)
	s.Equal(domain.ErrInvalidAmount, err)

	s.assetRepo.On("FindOne", mock.Anything, "DOGE").Return(nil, domain.ErrNotFound)
	params = s.createParams()
	params.Asset = "DOGE"
	_, _, err = s.im.CreateIntent(mockCtx, params)
	s.Equal(domain.ErrUnknownAsset, err)
}

func (s *paymentUcSuite) TestConfirm() {
	intent := s.pendingIntent("intent-1")
	sig := domain.TxSignature("5KtP9UzJ3qod2mWEuu6hTtrXo7gFQe2J4E3Bdriu9rqgXoWWJz5Lc2DsTwJJHJQxYuuMWTz6BXizFbQKK1gLPvFj")
	sealed, err := s.crypter.Encrypt("QmSecretScroll")
	s.Require().NoError(err)

	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)
	s.repo.On("FindOneByTxSignature", mock.Anything, sig).Return(nil, domain.ErrNotFound)
	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.verifier.On("VerifyPayment", mock.Anything, sig, payment.Expectation{
		Recipient: s.creatorAddr,
		Amount:    992500,
		Asset:     testAsset,
	}).Return(&payment.VerifyResult{Valid: true}, nil)

	var patched *payment.IntentPatchable
	s.repo.On("Patch", mock.Anything, "intent-1", mock.Anything).Run(func(args mock.Arguments) {
		patched = args.Get(2).(*payment.IntentPatchable)
	}).Return(nil)

	var granted *access.Grant
	s.accessUC.On("Grant", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		granted = args.Get(1).(*access.Grant)
	}).Return(&access.Minted{Token: "jwt-token", TokenId: "token-1", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil)

	s.contentRepo.On("FindOne", mock.Anything, content.Id{Creator: s.creatorAddr, ContentId: "1"}).
		Return(&content.Content{Creator: s.creatorAddr, ContentId: "1", Pointer: sealed}, nil)
	s.contentRepo.On("IncrementUnlockCount", mock.Anything, content.Id{Creator: s.creatorAddr, ContentId: "1"}, 1).Return(nil)
	s.creatorRepo.On("IncrementTotalEarned", mock.Anything, s.creatorAddr, int64(992500)).Return(nil)
	s.vaultUC.On("RecordPayment", mock.Anything, int64(1000000), int64(7500)).Return(nil)

	notified := make(chan struct{})
	s.notifier.On("NotifyPaymentConfirmed", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(notified)
	}).Once()

	res, err := s.im.Confirm(mockCtx, "intent-1", sig)
	s.NoError(err)
	s.Require().NotNil(res)
	s.Equal("jwt-token", res.Token)
	s.Equal("token-1", res.TokenId)
	s.Equal("QmSecretScroll", res.Pointer)
	s.Equal(testGateway+"/ipfs/QmSecretScroll", res.Url)

	s.Require().NotNil(patched)
	s.Require().NotNil(patched.Status)
	s.Equal(payment.IntentStatusConfirmed, *patched.Status)
	s.Require().NotNil(patched.TxSignature)
	s.Equal(sig, *patched.TxSignature)
	s.NotNil(patched.ConfirmedAt)

	s.Require().NotNil(granted)
	s.Equal(s.buyerAddr, granted.Buyer)
	s.Equal("intent-1", granted.IntentId)
	s.Equal(sig, granted.TxSignature)

	select {
	case <-notified:
	case <-time.After(time.Second):
		s.Fail("sale notification never fired")
	}
}

func (s *paymentUcSuite) TestConfirmRejectsEmptySignature() {
	_, err := s.im.Confirm(mockCtx, "intent-1", "")
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *paymentUcSuite) TestConfirmConsumedIntent() {
	intent := s.pendingIntent("intent-1")
	intent.Status = payment.IntentStatusConfirmed
	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.Equal(domain.ErrIntentConsumed, err)
}

func (s *paymentUcSuite) TestConfirmExpiredIntent() {
	intent := s.pendingIntent("intent-1")
	intent.Status = payment.IntentStatusExpired
	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.Equal(domain.ErrIntentExpired, err)
}

func (s *paymentUcSuite) TestConfirmLapsedIntentMarkedExpired() {
	intent := s.pendingIntent("intent-1")
	intent.ExpiresAt = time.Now().Add(-time.Minute)
	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)

	var patched *payment.IntentPatchable
	s.repo.On("Patch", mock.Anything, "intent-1", mock.Anything).Run(func(args mock.Arguments) {
		patched = args.Get(2).(*payment.IntentPatchable)
	}).Return(nil)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.Equal(domain.ErrIntentExpired, err)
	s.Require().NotNil(patched)
	s.Require().NotNil(patched.Status)
	s.Equal(payment.IntentStatusExpired, *patched.Status)
	s.verifier.AssertNotCalled(s.T(), "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *paymentUcSuite) TestConfirmReplayedSignature() {
	intent := s.pendingIntent("intent-1")
	spent := s.pendingIntent("intent-2")
	spent.Status = payment.IntentStatusConfirmed

	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)
	s.repo.On("FindOneByTxSignature", mock.Anything, domain.TxSignature("sig-1")).Return(spent, nil)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.Equal(domain.ErrTxAlreadyUsed, err)
	s.verifier.AssertNotCalled(s.T(), "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *paymentUcSuite) TestConfirmVerifierRejects() {
	intent := s.pendingIntent("intent-1")

	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)
	s.repo.On("FindOneByTxSignature", mock.Anything, domain.TxSignature("sig-1")).Return(nil, domain.ErrNotFound)
	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.verifier.On("VerifyPayment", mock.Anything, mock.Anything, mock.Anything).
		Return(&payment.VerifyResult{Valid: false, Reason: payment.ReasonInsufficientAmount}, nil)

	var patched *payment.IntentPatchable
	s.repo.On("Patch", mock.Anything, "intent-1", mock.Anything).Run(func(args mock.Arguments) {
		patched = args.Get(2).(*payment.IntentPatchable)
	}).Return(nil)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.ErrorIs(err, domain.ErrPaymentRejected)
	s.Contains(err.Error(), payment.ReasonInsufficientAmount)

	// the intent stays pending with the reason recorded, a correct
	// transaction can still confirm it before expiry
	s.Require().NotNil(patched)
	s.Nil(patched.Status)
	s.Require().NotNil(patched.FailReason)
	s.Equal(payment.ReasonInsufficientAmount, *patched.FailReason)
	s.accessUC.AssertNotCalled(s.T(), "Grant", mock.Anything, mock.Anything)
}

func (s *paymentUcSuite) TestConfirmLedgerLag() {
	intent := s.pendingIntent("intent-1")

	s.repo.On("FindOne", mock.Anything, "intent-1").Return(intent, nil)
	s.repo.On("FindOneByTxSignature", mock.Anything, domain.TxSignature("sig-1")).Return(nil, domain.ErrNotFound)
	s.assetRepo.On("FindOne", mock.Anything, "USDC").Return(testAsset, nil)
	s.verifier.On("VerifyPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrTxNotFound)

	_, err := s.im.Confirm(mockCtx, "intent-1", "sig-1")
	s.Equal(domain.ErrTxNotFound, err)
	s.repo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *paymentUcSuite) TestExpireStale() {
	now := time.Now()
	first := s.pendingIntent("intent-1")
	second := s.pendingIntent("intent-2")

	s.repo.On("FindAll", mock.Anything,
		mock.AnythingOfType(anyIntentFn), mock.AnythingOfType(anyIntentFn),
	).Return([]*payment.Intent{first, second}, nil)
	s.repo.On("Patch", mock.Anything, "intent-1", mock.Anything).Return(nil)
	s.repo.On("Patch", mock.Anything, "intent-2", mock.Anything).Return(domain.ErrNotFound)

	count, err := s.im.ExpireStale(mockCtx, now)
	s.NoError(err)
	s.Equal(1, count)
}
