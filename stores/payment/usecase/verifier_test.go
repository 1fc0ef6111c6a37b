package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	mDomain "github.com/auton-labs/goapi/domain/mocks"
	"github.com/auton-labs/goapi/domain/payment"
)

var (
	mockCtx = ctx.Background()

	testCreator  = domain.Address("CrEaToR1111111111111111111111111111111111111")
	testBuyer    = domain.Address("BuYeR111111111111111111111111111111111111111")
	testTreasury = domain.Address("TrEaSuRy111111111111111111111111111111111111")
	testMint     = domain.Address("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")

	nativeAsset = &domain.Asset{Symbol: "SOL", Kind: domain.AssetKindNative, Decimals: 9}
	tokenAsset  = &domain.Asset{Symbol: "USDC", Kind: domain.AssetKindToken, Decimals: 6, Mint: testMint}
)

type verifierSuite struct {
	suite.Suite

	ledger *mDomain.LedgerClientRepo
	im     *verifier
}

func TestVerifierSuite(t *testing.T) {
	suite.Run(t, new(verifierSuite))
}

func (s *verifierSuite) SetupTest() {
	s.ledger = &mDomain.LedgerClientRepo{}
	s.im = NewVerifier(&VerifierCfg{
		Ledger:   s.ledger,
		Attempts: 3,
		Interval: time.Millisecond,
	}).(*verifier)
}

// nativeTransfer builds a settled transfer moving delta lamports from
// the buyer to the creator
func nativeTransfer(delta int64) *domain.TransactionDetail {
	return &domain.TransactionDetail{
		Slot: 1200,
		Meta: &domain.TransactionMeta{
			Fee:          5000,
			PreBalances:  []int64{10000000, 500},
			PostBalances: []int64{10000000 - delta - 5000, 500 + delta},
		},
		Transaction: &domain.TransactionContent{
			Message: domain.TransactionMessage{
				AccountKeys: []domain.Address{testBuyer, testCreator},
			},
		},
	}
}

func tokenTransfer(pre, post string) *domain.TransactionDetail {
	detail := &domain.TransactionDetail{
		Slot: 1200,
		Meta: &domain.TransactionMeta{
			PostTokenBalances: []domain.TokenBalance{
				{AccountIndex: 2, Mint: testMint, Owner: testCreator, UiTokenAmount: domain.TokenAmount{Amount: post, Decimals: 6}},
			},
		},
		Transaction: &domain.TransactionContent{
			Message: domain.TransactionMessage{
				AccountKeys: []domain.Address{testBuyer, testCreator},
			},
		},
	}
	if len(pre) > 0 {
		detail.Meta.PreTokenBalances = []domain.TokenBalance{
			{AccountIndex: 2, Mint: testMint, Owner: testCreator, UiTokenAmount: domain.TokenAmount{Amount: pre, Decimals: 6}},
		}
	}
	return detail
}

func (s *verifierSuite) TestNativeSettles() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nativeTransfer(992500), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     nativeAsset,
	})
	s.Require().NoError(err)
	s.True(res.Valid)
}

func (s *verifierSuite) TestNativeTolerance() {
	expectation := payment.Expectation{Recipient: testCreator, Amount: 1000000, Asset: nativeAsset}

	// 94% of the expected amount is short
	sig := domain.TxSignature("sig-94")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nativeTransfer(940000), nil).Once()
	res, err := s.im.VerifyPayment(mockCtx, sig, expectation)
	s.Require().NoError(err)
	s.False(res.Valid)
	s.Equal(payment.ReasonInsufficientAmount, res.Reason)

	// 96% clears the tolerance
	sig = domain.TxSignature("sig-96")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nativeTransfer(960000), nil).Once()
	res, err = s.im.VerifyPayment(mockCtx, sig, expectation)
	s.Require().NoError(err)
	s.True(res.Valid)
}

func (s *verifierSuite) TestNativeRecipientMissing() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nativeTransfer(992500), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testTreasury,
		Amount:    992500,
		Asset:     nativeAsset,
	})
	s.Require().NoError(err)
	s.False(res.Valid)
	s.Equal(payment.ReasonRecipientMissing, res.Reason)
}

func (s *verifierSuite) TestExecutionErrorRejects() {
	sig := domain.TxSignature("sig-1")
	detail := nativeTransfer(992500)
	detail.Meta.Err = map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}}
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(detail, nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     nativeAsset,
	})
	s.Require().NoError(err)
	s.False(res.Valid)
	s.Equal(payment.ReasonTxFailed, res.Reason)
}

func (s *verifierSuite) TestTokenSettles() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(tokenTransfer("250000", "1242500"), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     tokenAsset,
	})
	s.Require().NoError(err)
	s.True(res.Valid)
}

func (s *verifierSuite) TestTokenFreshAccount() {
	// the token account did not exist before this transaction
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(tokenTransfer("", "992500"), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     tokenAsset,
	})
	s.Require().NoError(err)
	s.True(res.Valid)
}

func (s *verifierSuite) TestTokenRecipientMissing() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(tokenTransfer("0", "992500"), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testTreasury,
		Amount:    992500,
		Asset:     tokenAsset,
	})
	s.Require().NoError(err)
	s.False(res.Valid)
	s.Equal(payment.ReasonRecipientMissing, res.Reason)
}

func (s *verifierSuite) TestRetriesThenGivesUp() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nil, domain.ErrNotFound)

	_, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     nativeAsset,
	})
	s.Equal(domain.ErrTxNotFound, err)
	s.ledger.AssertNumberOfCalls(s.T(), "GetTransaction", 3)
}

func (s *verifierSuite) TestRetriesUntilVisible() {
	sig := domain.TxSignature("sig-1")
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nil, domain.ErrNotFound).Twice()
	s.ledger.On("GetTransaction", mock.Anything, sig).Return(nativeTransfer(992500), nil).Once()

	res, err := s.im.VerifyPayment(mockCtx, sig, payment.Expectation{
		Recipient: testCreator,
		Amount:    992500,
		Asset:     nativeAsset,
	})
	s.Require().NoError(err)
	s.True(res.Valid)
	s.ledger.AssertNumberOfCalls(s.T(), "GetTransaction", 3)
}
