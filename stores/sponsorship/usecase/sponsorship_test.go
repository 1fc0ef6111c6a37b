package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/creator"
	mCreator "github.com/auton-labs/goapi/domain/creator/mocks"
	mDomain "github.com/auton-labs/goapi/domain/mocks"
	"github.com/auton-labs/goapi/domain/sponsorship"
	mSponsorship "github.com/auton-labs/goapi/domain/sponsorship/mocks"
	mVault "github.com/auton-labs/goapi/domain/vault/mocks"
	"github.com/auton-labs/goapi/service/ledger"
	"github.com/auton-labs/goapi/service/notifier"
	mNotifier "github.com/auton-labs/goapi/service/notifier/mocks"
	"github.com/auton-labs/goapi/service/redis"
	mRedis "github.com/auton-labs/goapi/service/redis/mocks"
)

var mockCtx = ctx.Background()

const (
	anySponsorshipFn = "sponsorship.FindAllOptionsFunc"
	testLamports     = 1000000
	testDust         = 5000
	testClientIp     = "203.0.113.7"
	testSignature    = domain.TxSignature("5ponsorTxSig")
)

type sponsorshipUcSuite struct {
	suite.Suite

	vaultWallet *wallet.Wallet
	userWallet  *wallet.Wallet

	repo        *mSponsorship.Repo
	creatorRepo *mCreator.Repo
	ledgerRepo  *mDomain.LedgerClientRepo
	redisSvc    *mRedis.Service
	vaultUC     *mVault.UseCase
	notifier    *mNotifier.Service
	im          *impl
}

func TestSponsorshipUcSuite(t *testing.T) {
	suite.Run(t, new(sponsorshipUcSuite))
}

func (s *sponsorshipUcSuite) SetupSuite() {
	vaultWallet, err := wallet.Generate()
	s.Require().NoError(err)
	userWallet, err := wallet.Generate()
	s.Require().NoError(err)
	s.vaultWallet = vaultWallet
	s.userWallet = userWallet
}

func (s *sponsorshipUcSuite) SetupTest() {
	s.repo = &mSponsorship.Repo{}
	s.creatorRepo = &mCreator.Repo{}
	s.ledgerRepo = &mDomain.LedgerClientRepo{}
	s.redisSvc = &mRedis.Service{}
	s.vaultUC = &mVault.UseCase{}
	s.notifier = &mNotifier.Service{}
	s.im = New(&SponsorshipUseCaseCfg{
		Repo:            s.repo,
		CreatorRepo:     s.creatorRepo,
		Ledger:          s.ledgerRepo,
		Redis:           s.redisSvc,
		VaultUC:         s.vaultUC,
		Notifier:        s.notifier,
		Vault:           s.vaultWallet,
		Network:         domain.NetworkDevnet,
		Lamports:        testLamports,
		DustLamports:    testDust,
		MessageTtl:      time.Minute,
		ConfirmAttempts: 1,
		ConfirmInterval: time.Millisecond,
		MaxPerIp:        3,
		MinAccountAge:   24 * time.Hour,
	}).(*impl)
}

// eligible arms the three gates for a wallet that passes all of them
func (s *sponsorshipUcSuite) eligible(addr domain.Address) {
	s.repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound)
	s.ledgerRepo.On("GetSignaturesForAddress", mock.Anything, addr, 1).Return([]domain.SignatureInfo{}, nil)
	s.ledgerRepo.On("GetBalance", mock.Anything, addr).Return(int64(0), nil)
}

func (s *sponsorshipUcSuite) instructions(addr domain.Address) []domain.Instruction {
	return []domain.Instruction{{
		ProgramId: "Sponsor1111111111111111111111111111111111111",
		Keys:      []domain.AccountMeta{{Pubkey: addr, IsSigner: true, IsWritable: true}},
		Data:      "AQ==",
	}}
}

func (s *sponsorshipUcSuite) prepare(addr domain.Address) *sponsorship.Prepared {
	s.redisSvc.On("SetNX", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(nil)
	prep, err := s.im.Prepare(mockCtx, addr, s.instructions(addr))
	s.Require().NoError(err)
	return prep
}

func (s *sponsorshipUcSuite) signed(prep *sponsorship.Prepared, w *wallet.Wallet) string {
	msg, err := ledger.DecodeMessageBase64(prep.Message)
	s.Require().NoError(err)
	txn := ledger.NewTransaction(*msg)
	s.Require().NoError(txn.Sign(w))
	encoded, err := txn.EncodeBase64()
	s.Require().NoError(err)
	return encoded
}

func (s *sponsorshipUcSuite) armNonce(addr domain.Address, prep *sponsorship.Prepared) {
	key := "nonce:" + prep.Nonce
	s.redisSvc.On("Get", mock.Anything, key).Return([]byte(nonceValue(addr, prep.Message)), nil)
	s.redisSvc.On("Del", mock.Anything, key).Return(1, nil)
}

func (s *sponsorshipUcSuite) TestCheckEligibilityFresh() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound)
	s.ledgerRepo.On("GetSignaturesForAddress", mock.Anything, addr, 1).Return([]domain.SignatureInfo{}, nil)
	// a balance right at the dust threshold still qualifies
	s.ledgerRepo.On("GetBalance", mock.Anything, addr).Return(int64(testDust), nil)

	res, err := s.im.CheckEligibility(mockCtx, addr)
	s.NoError(err)
	s.True(res.Eligible)
	s.Empty(res.Reason)
}

func (s *sponsorshipUcSuite) TestCheckEligibilityAlreadySponsored() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(&sponsorship.Sponsorship{Address: addr}, nil)

	res, err := s.im.CheckEligibility(mockCtx, addr)
	s.NoError(err)
	s.False(res.Eligible)
	s.Equal(sponsorship.ReasonAlreadySponsored, res.Reason)
	s.ledgerRepo.AssertNotCalled(s.T(), "GetSignaturesForAddress", mock.Anything, addr, 1)
}

func (s *sponsorshipUcSuite) TestCheckEligibilityWalletHistory() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound)
	s.ledgerRepo.On("GetSignaturesForAddress", mock.Anything, addr, 1).
		Return([]domain.SignatureInfo{{Signature: "anySig"}}, nil)

	res, err := s.im.CheckEligibility(mockCtx, addr)
	s.NoError(err)
	s.False(res.Eligible)
	s.Equal(sponsorship.ReasonHasHistory, res.Reason)
	s.ledgerRepo.AssertNotCalled(s.T(), "GetBalance", mock.Anything, addr)
}

func (s *sponsorshipUcSuite) TestCheckEligibilityHasBalance() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound)
	s.ledgerRepo.On("GetSignaturesForAddress", mock.Anything, addr, 1).Return([]domain.SignatureInfo{}, nil)
	s.ledgerRepo.On("GetBalance", mock.Anything, addr).Return(int64(testDust+1), nil)

	res, err := s.im.CheckEligibility(mockCtx, addr)
	s.NoError(err)
	s.False(res.Eligible)
	s.Equal(sponsorship.ReasonHasBalance, res.Reason)
}

func (s *sponsorshipUcSuite) TestCheckEligibilityFailsClosed() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound)
	s.ledgerRepo.On("GetSignaturesForAddress", mock.Anything, addr, 1).
		Return(nil, domain.ErrInternalServerError)

	res, err := s.im.CheckEligibility(mockCtx, addr)
	s.NoError(err)
	s.False(res.Eligible)
	s.Equal(sponsorship.ReasonLedgerUnavailable, res.Reason)
}

func (s *sponsorshipUcSuite) TestPrepareBindsNonce() {
	addr := s.userWallet.Address()
	s.eligible(addr)

	var key string
	var val []byte
	s.redisSvc.On("SetNX", mock.Anything, mock.Anything, mock.Anything, time.Minute).
		Run(func(args mock.Arguments) {
			key = args.String(1)
			val = args.Get(2).([]byte)
		}).Return(nil)

	prep, err := s.im.Prepare(mockCtx, addr, s.instructions(addr))
	s.NoError(err)
	s.Require().NotNil(prep)
	s.NotEmpty(prep.Nonce)
	s.Equal("nonce:"+prep.Nonce, key)
	s.Equal(nonceValue(addr, prep.Message), string(val))
	s.InDelta(time.Now().Add(time.Minute).Unix(), prep.ExpiresAt, 2)

	msg, err := ledger.DecodeMessageBase64(prep.Message)
	s.Require().NoError(err)
	s.Equal(domain.NetworkDevnet, msg.Network)
	s.Equal(prep.Nonce, msg.Nonce)
	s.Equal(s.vaultWallet.Address(), msg.FeePayer)
	s.Equal(s.instructions(addr), msg.Instructions)
}

func (s *sponsorshipUcSuite) TestPrepareRejectsIneligible() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(&sponsorship.Sponsorship{Address: addr}, nil)

	_, err := s.im.Prepare(mockCtx, addr, s.instructions(addr))
	s.ErrorIs(err, domain.ErrNotEligible)
	s.Contains(err.Error(), sponsorship.ReasonAlreadySponsored)
	s.redisSvc.AssertNotCalled(s.T(), "SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *sponsorshipUcSuite) TestPrepareRejectsEmptyInstructions() {
	addr := s.userWallet.Address()

	_, err := s.im.Prepare(mockCtx, addr, nil)
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.repo.AssertNotCalled(s.T(), "FindOne", mock.Anything, addr)
}

func (s *sponsorshipUcSuite) TestSubmit() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	signedTxn := s.signed(prep, s.userWallet)
	s.armNonce(addr, prep)

	var raw []byte
	s.ledgerRepo.On("SendRawTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			raw = args.Get(1).([]byte)
		}).Return(testSignature, nil)
	s.ledgerRepo.On("ConfirmTransaction", mock.Anything, testSignature).Return(domain.TxStatusConfirmed, nil)

	s.repo.On("Count", mock.Anything, mock.AnythingOfType(anySponsorshipFn)).Return(0, nil)
	s.creatorRepo.On("Get", mock.Anything, addr).Return(nil, domain.ErrNotFound)

	var inserted *sponsorship.Sponsorship
	s.repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*sponsorship.Sponsorship)
	}).Return(nil)
	s.vaultUC.On("RecordSponsorship", mock.Anything, int64(testLamports)).Return(nil)

	notified := make(chan struct{})
	s.notifier.On("NotifyWalletSponsored", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(notified)
	}).Return()

	res, err := s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.NoError(err)
	s.Require().NotNil(res)
	s.Equal(testSignature, res.TxSignature)
	s.EqualValues(testLamports, res.Lamports)

	// the broadcast transaction carries both signatures over the same bytes
	sent := &ledger.Transaction{}
	s.Require().NoError(json.Unmarshal(raw, sent))
	s.Require().Len(sent.Signatures, 2)
	s.True(sent.SignedBy(addr))
	s.True(sent.SignedBy(s.vaultWallet.Address()))
	s.NoError(sent.VerifySignatures())

	s.Require().NotNil(inserted)
	s.Equal(addr, inserted.Address)
	s.Equal(testSignature, inserted.TxSignature)
	s.EqualValues(testLamports, inserted.Lamports)
	s.Equal(testClientIp, inserted.ClientIp)
	s.False(inserted.Suspicious)

	select {
	case <-notified:
	case <-time.After(time.Second):
		s.Fail("sponsorship notification never fired")
	}
}

func (s *sponsorshipUcSuite) TestSubmitRejectsGarbage() {
	_, err := s.im.Submit(mockCtx, s.userWallet.Address(), "not a transaction", testClientIp)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *sponsorshipUcSuite) TestSubmitAlreadySponsored() {
	addr := s.userWallet.Address()
	s.repo.On("FindOne", mock.Anything, addr).Return(&sponsorship.Sponsorship{Address: addr}, nil)

	msg := ledger.Message{Network: domain.NetworkDevnet, Nonce: "n-1", FeePayer: s.vaultWallet.Address(), Instructions: s.instructions(addr)}
	txn := ledger.NewTransaction(msg)
	s.Require().NoError(txn.Sign(s.userWallet))
	encoded, err := txn.EncodeBase64()
	s.Require().NoError(err)

	_, err = s.im.Submit(mockCtx, addr, encoded, testClientIp)
	s.ErrorIs(err, domain.ErrAlreadySponsored)
}

func (s *sponsorshipUcSuite) TestSubmitRejectsForeignFeePayer() {
	addr := s.userWallet.Address()
	s.eligible(addr)

	msg := ledger.Message{Network: domain.NetworkDevnet, Nonce: "n-1", FeePayer: addr, Instructions: s.instructions(addr)}
	txn := ledger.NewTransaction(msg)
	s.Require().NoError(txn.Sign(s.userWallet))
	encoded, err := txn.EncodeBase64()
	s.Require().NoError(err)

	_, err = s.im.Submit(mockCtx, addr, encoded, testClientIp)
	s.ErrorIs(err, domain.ErrInvalidFeePayer)
	s.redisSvc.AssertNotCalled(s.T(), "Get", mock.Anything, "nonce:n-1")
}

func (s *sponsorshipUcSuite) TestSubmitConsumedNonce() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	signedTxn := s.signed(prep, s.userWallet)

	s.redisSvc.On("Get", mock.Anything, "nonce:"+prep.Nonce).Return(nil, redis.ErrNotFound)

	_, err := s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.ErrorIs(err, domain.ErrNonceConsumed)
}

func (s *sponsorshipUcSuite) TestSubmitTamperedInstructions() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	s.armNonce(addr, prep)

	// re-sign over altered instructions, the nonce still pins the
	// message the server assembled
	msg, err := ledger.DecodeMessageBase64(prep.Message)
	s.Require().NoError(err)
	msg.Instructions[0].Data = "Ag=="
	txn := ledger.NewTransaction(*msg)
	s.Require().NoError(txn.Sign(s.userWallet))
	encoded, err := txn.EncodeBase64()
	s.Require().NoError(err)

	_, err = s.im.Submit(mockCtx, addr, encoded, testClientIp)
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.redisSvc.AssertNotCalled(s.T(), "Del", mock.Anything, "nonce:"+prep.Nonce)
}

func (s *sponsorshipUcSuite) TestSubmitUnsignedByWallet() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	s.armNonce(addr, prep)

	stranger, err := wallet.Generate()
	s.Require().NoError(err)
	signedTxn := s.signed(prep, stranger)

	_, err = s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.ErrorIs(err, domain.ErrInvalidSignature)
	s.ledgerRepo.AssertNotCalled(s.T(), "SendRawTransaction", mock.Anything, mock.Anything)
}

func (s *sponsorshipUcSuite) TestSubmitForgedSignature() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	s.armNonce(addr, prep)

	stranger, err := wallet.Generate()
	s.Require().NoError(err)
	msg, err := ledger.DecodeMessageBase64(prep.Message)
	s.Require().NoError(err)
	txn := ledger.NewTransaction(*msg)
	s.Require().NoError(txn.Sign(stranger))
	// claim the stranger's signature belongs to the wallet
	txn.Signatures[0].Pubkey = addr
	encoded, err := txn.EncodeBase64()
	s.Require().NoError(err)

	_, err = s.im.Submit(mockCtx, addr, encoded, testClientIp)
	s.ErrorIs(err, domain.ErrInvalidSignature)
	s.ledgerRepo.AssertNotCalled(s.T(), "SendRawTransaction", mock.Anything, mock.Anything)
}

func (s *sponsorshipUcSuite) TestSubmitLedgerSendFails() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	signedTxn := s.signed(prep, s.userWallet)
	s.armNonce(addr, prep)

	s.ledgerRepo.On("SendRawTransaction", mock.Anything, mock.Anything).
		Return(domain.TxSignature(""), domain.ErrInternalServerError)

	_, err := s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.ErrorIs(err, domain.ErrLedgerUnavailable)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *sponsorshipUcSuite) TestSubmitInsertConflict() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	signedTxn := s.signed(prep, s.userWallet)
	s.armNonce(addr, prep)

	s.ledgerRepo.On("SendRawTransaction", mock.Anything, mock.Anything).Return(testSignature, nil)
	s.ledgerRepo.On("ConfirmTransaction", mock.Anything, testSignature).Return(domain.TxStatusConfirmed, nil)
	s.repo.On("Count", mock.Anything, mock.AnythingOfType(anySponsorshipFn)).Return(0, nil)
	s.creatorRepo.On("Get", mock.Anything, addr).Return(nil, domain.ErrNotFound)

	// a concurrent submit from another process won the unique index
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.ErrorIs(err, domain.ErrAlreadySponsored)
	s.vaultUC.AssertNotCalled(s.T(), "RecordSponsorship", mock.Anything, mock.Anything)
}

func (s *sponsorshipUcSuite) TestSubmitFlagsSuspicious() {
	addr := s.userWallet.Address()
	s.eligible(addr)
	prep := s.prepare(addr)
	signedTxn := s.signed(prep, s.userWallet)
	s.armNonce(addr, prep)

	s.ledgerRepo.On("SendRawTransaction", mock.Anything, mock.Anything).Return(testSignature, nil)
	s.ledgerRepo.On("ConfirmTransaction", mock.Anything, testSignature).Return(domain.TxStatusConfirmed, nil)

	// third record behind one IP and a day-old account, both hints fire
	s.repo.On("Count", mock.Anything, mock.AnythingOfType(anySponsorshipFn)).Return(3, nil)
	s.creatorRepo.On("Get", mock.Anything, addr).
		Return(&creator.Creator{Address: addr, CreatedAt: time.Now().Add(-time.Hour)}, nil)

	var inserted *sponsorship.Sponsorship
	s.repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*sponsorship.Sponsorship)
	}).Return(nil)
	s.vaultUC.On("RecordSponsorship", mock.Anything, int64(testLamports)).Return(nil)

	s.notifier.On("NotifyWalletSponsored", mock.Anything, mock.Anything).Return()
	flagged := make(chan struct{})
	var suspicionEvt notifier.SuspicionEvent
	s.notifier.On("NotifySuspiciousRequest", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		suspicionEvt = args.Get(1).(notifier.SuspicionEvent)
		close(flagged)
	}).Return()

	res, err := s.im.Submit(mockCtx, addr, signedTxn, testClientIp)
	s.NoError(err)
	s.NotNil(res)

	s.Require().NotNil(inserted)
	s.True(inserted.Suspicious)
	s.Require().Len(inserted.SuspicionHints, 2)
	s.Equal("3 sponsorships from "+testClientIp, inserted.SuspicionHints[0])
	s.Equal("account younger than 24h0m0s", inserted.SuspicionHints[1])

	select {
	case <-flagged:
	case <-time.After(time.Second):
		s.Fail("suspicion notification never fired")
	}
	s.Equal(addr, suspicionEvt.Address)
	s.Equal(testClientIp, suspicionEvt.ClientIp)
	s.Equal(inserted.SuspicionHints, suspicionEvt.Hints)
}

func (s *sponsorshipUcSuite) TestFindFlagged() {
	flagged := []*sponsorship.Sponsorship{{Address: s.userWallet.Address(), Suspicious: true}}
	s.repo.On("FindAll", mock.Anything,
		mock.AnythingOfType(anySponsorshipFn), mock.AnythingOfType(anySponsorshipFn),
	).Return(flagged, nil)

	records, err := s.im.FindFlagged(mockCtx, 0, 50)
	s.NoError(err)
	s.Equal(flagged, records)
}

func (s *sponsorshipUcSuite) TestNewClampsLamports() {
	im := New(&SponsorshipUseCaseCfg{
		Repo:     s.repo,
		Ledger:   s.ledgerRepo,
		Vault:    s.vaultWallet,
		Lamports: 50000000,
	}).(*impl)
	s.EqualValues(maxLamports, im.lamports)
}
