package usecase

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
	mAccess "github.com/auton-labs/goapi/domain/access/mocks"
)

var mockCtx = ctx.Background()

type accessUcSuite struct {
	suite.Suite

	buyerAddr   domain.Address
	creatorAddr domain.Address

	repo   *mAccess.Repo
	issuer access.TokenIssuer
	im     *impl
}

func TestAccessUcSuite(t *testing.T) {
	suite.Run(t, new(accessUcSuite))
}

func (s *accessUcSuite) SetupSuite() {
	buyerWallet, err := wallet.Generate()
	s.Require().NoError(err)
	creatorWallet, err := wallet.Generate()
	s.Require().NoError(err)
	s.buyerAddr = buyerWallet.Address()
	s.creatorAddr = creatorWallet.Address()
}

func (s *accessUcSuite) SetupTest() {
	s.repo = &mAccess.Repo{}
	s.issuer = NewTokenIssuer([]byte("access-secret"), 15*time.Minute)
	s.im = New(&AccessUseCaseCfg{
		Repo:   s.repo,
		Issuer: s.issuer,
	}).(*impl)
}

func (s *accessUcSuite) grantId() access.GrantId {
	return access.GrantId{Buyer: s.buyerAddr, Creator: s.creatorAddr, ContentId: "1"}
}

func (s *accessUcSuite) TestIssueAndVerify() {
	minted, err := s.issuer.Issue(mockCtx, s.buyerAddr, s.creatorAddr, "1")
	s.Require().NoError(err)
	s.NotEmpty(minted.Token)
	s.NotEmpty(minted.TokenId)
	s.Greater(minted.ExpiresAt, time.Now().Unix())

	claims, err := s.issuer.Verify(mockCtx, minted.Token)
	s.Require().NoError(err)
	s.Equal(string(s.buyerAddr), claims.Buyer)
	s.Equal(string(s.creatorAddr), claims.Creator)
	s.Equal("1", claims.ContentId)
	s.Equal(minted.TokenId, claims.TokenId)

	// a second issue never reuses an id, tokens are disposable
	again, err := s.issuer.Issue(mockCtx, s.buyerAddr, s.creatorAddr, "1")
	s.Require().NoError(err)
	s.NotEqual(minted.TokenId, again.TokenId)
}

func (s *accessUcSuite) TestVerifyExpired() {
	jwt.TimeFunc = func() time.Time { return time.Now().Add(-time.Hour) }
	defer func() { jwt.TimeFunc = time.Now }()

	minted, err := s.issuer.Issue(mockCtx, s.buyerAddr, s.creatorAddr, "1")
	s.Require().NoError(err)

	jwt.TimeFunc = time.Now
	_, err = s.issuer.Verify(mockCtx, minted.Token)
	s.Equal(domain.ErrTokenExpired, err)
}

func (s *accessUcSuite) TestVerifyExpiredBeatsBadSignature() {
	jwt.TimeFunc = func() time.Time { return time.Now().Add(-time.Hour) }
	defer func() { jwt.TimeFunc = time.Now }()

	minted, err := s.issuer.Issue(mockCtx, s.buyerAddr, s.creatorAddr, "1")
	s.Require().NoError(err)

	jwt.TimeFunc = time.Now
	other := NewTokenIssuer([]byte("a-different-secret"), 15*time.Minute)
	_, err = other.Verify(mockCtx, minted.Token)
	s.Equal(domain.ErrTokenExpired, err)
}

func (s *accessUcSuite) TestVerifyWrongSecret() {
	minted, err := s.issuer.Issue(mockCtx, s.buyerAddr, s.creatorAddr, "1")
	s.Require().NoError(err)

	other := NewTokenIssuer([]byte("a-different-secret"), 15*time.Minute)
	_, err = other.Verify(mockCtx, minted.Token)
	s.Equal(domain.ErrTokenSignature, err)
}

func (s *accessUcSuite) TestVerifyMalformed() {
	_, err := s.issuer.Verify(mockCtx, "not-a-token")
	s.Equal(domain.ErrTokenMalformed, err)

	_, err = s.issuer.Verify(mockCtx, "only.two")
	s.Equal(domain.ErrTokenMalformed, err)

	_, err = s.issuer.Verify(mockCtx, "")
	s.Equal(domain.ErrTokenMalformed, err)
}

func (s *accessUcSuite) TestVerifyUnsignedToken() {
	claims := access.TokenClaims{
		Buyer:     string(s.buyerAddr),
		Creator:   string(s.creatorAddr),
		ContentId: "1",
		TokenId:   "token-1",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	s.Require().NoError(err)

	_, err = s.issuer.Verify(mockCtx, unsigned)
	s.Equal(domain.ErrTokenSignature, err)
}

func (s *accessUcSuite) TestGrantInsertsFresh() {
	var inserted *access.Grant
	s.repo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*access.Grant)
	}).Return(nil)

	minted, err := s.im.Grant(mockCtx, &access.Grant{
		Buyer:       s.buyerAddr,
		Creator:     s.creatorAddr,
		ContentId:   "1",
		IntentId:    "intent-1",
		TxSignature: "sig-1",
	})
	s.Require().NoError(err)
	s.NotEmpty(minted.Token)

	s.Require().NotNil(inserted)
	s.Equal(minted.TokenId, inserted.TokenId)
	s.EqualValues(1, inserted.UnlockCount)
	s.Equal("intent-1", inserted.IntentId)
	s.False(inserted.CreatedAt.IsZero())
	s.repo.AssertNotCalled(s.T(), "MarkMinted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *accessUcSuite) TestGrantIdempotentOnConflict() {
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	var mintedId string
	s.repo.On("MarkMinted", mock.Anything, s.grantId(), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mintedId = args.Get(2).(string)
		}).Return(nil)

	minted, err := s.im.Grant(mockCtx, &access.Grant{
		Buyer:       s.buyerAddr,
		Creator:     s.creatorAddr,
		ContentId:   "1",
		IntentId:    "intent-1",
		TxSignature: "sig-1",
	})
	s.Require().NoError(err)
	s.NotEmpty(minted.Token)
	s.Equal(minted.TokenId, mintedId)
}

func (s *accessUcSuite) TestRenew() {
	existing := &access.Grant{
		Buyer:     s.buyerAddr,
		Creator:   s.creatorAddr,
		ContentId: "1",
		TokenId:   "token-old",
	}
	s.repo.On("FindOne", mock.Anything, s.grantId()).Return(existing, nil)
	s.repo.On("MarkMinted", mock.Anything, s.grantId(), mock.Anything, mock.Anything).Return(nil)

	minted, err := s.im.Renew(mockCtx, s.grantId())
	s.Require().NoError(err)
	s.NotEmpty(minted.Token)
	s.NotEqual("token-old", minted.TokenId)

	claims, err := s.issuer.Verify(mockCtx, minted.Token)
	s.Require().NoError(err)
	s.Equal(minted.TokenId, claims.TokenId)
}

func (s *accessUcSuite) TestRenewWithoutGrant() {
	s.repo.On("FindOne", mock.Anything, s.grantId()).Return(nil, domain.ErrNotFound)

	_, err := s.im.Renew(mockCtx, s.grantId())
	s.Equal(domain.ErrNotFound, err)
}

func (s *accessUcSuite) TestFindAll() {
	grants := []*access.Grant{{Buyer: s.buyerAddr, Creator: s.creatorAddr, ContentId: "1"}}
	s.repo.On("FindAll", mock.Anything, mock.AnythingOfType("access.FindAllOptionsFunc")).Return(grants, nil)

	found, err := s.im.FindAll(mockCtx, access.WithBuyer(s.buyerAddr))
	s.NoError(err)
	s.Equal(grants, found)
}

func (s *accessUcSuite) TestHasGrant() {
	s.repo.On("FindOne", mock.Anything, s.grantId()).Return(&access.Grant{}, nil).Once()
	ok, err := s.im.HasGrant(mockCtx, s.grantId())
	s.NoError(err)
	s.True(ok)

	s.repo.On("FindOne", mock.Anything, s.grantId()).Return(nil, domain.ErrNotFound).Once()
	ok, err = s.im.HasGrant(mockCtx, s.grantId())
	s.NoError(err)
	s.False(ok)
}
