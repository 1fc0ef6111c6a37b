package usecase

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/wallet"
	"github.com/auton-labs/goapi/domain"
	mContent "github.com/auton-labs/goapi/domain/content/mocks"
	"github.com/auton-labs/goapi/domain/creator"
	mCreator "github.com/auton-labs/goapi/domain/creator/mocks"
	mFile "github.com/auton-labs/goapi/domain/file/mocks"
)

const (
	testSignatureMsg    = "Welcome to Auton!\n\nSign this message to log in.\n\nNonce: %s"
	testRegistrationMsg = "Welcome to Auton!\n\nSign this message to create your creator profile.\n\nUsername: %s"
)

var mockCtx = ctx.Background()

type creatorSuite struct {
	suite.Suite

	wallet      *wallet.Wallet
	repo        *mCreator.Repo
	contentRepo *mContent.Repo
	file        *mFile.Usecase
	im          *impl
}

func TestCreatorSuite(t *testing.T) {
	suite.Run(t, new(creatorSuite))
}

func (s *creatorSuite) SetupSuite() {
	w, err := wallet.Generate()
	s.Require().NoError(err)
	s.wallet = w
}

func (s *creatorSuite) SetupTest() {
	s.repo = &mCreator.Repo{}
	s.contentRepo = &mContent.Repo{}
	s.file = &mFile.Usecase{}
	s.im = New(&CreatorUseCaseCfg{
		Repo:            s.repo,
		ContentRepo:     s.contentRepo,
		FileUC:          s.file,
		SignatureMsg:    testSignatureMsg,
		RegistrationMsg: testRegistrationMsg,
	}).(*impl)
}

func (s *creatorSuite) signRegistration(username string) string {
	msg := fmt.Sprintf(testRegistrationMsg, username)
	return base58.Encode(s.wallet.Sign([]byte(msg)))
}

func (s *creatorSuite) TestRegister() {
	address := s.wallet.Address()
	signature := s.signRegistration("alice")

	s.repo.On("GetByUsername", mock.Anything, "alice").Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Get", mock.Anything, address).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	s.contentRepo.On("EnsureCounter", mock.Anything, address).Return(nil).Once()

	info, err := s.im.Register(mockCtx, address, "alice", "Alice", signature)
	s.Require().NoError(err)
	s.Equal(address, info.Address)
	s.Equal("alice", info.Username)
	s.Equal("Alice", info.DisplayName)

	s.repo.AssertExpectations(s.T())
	s.contentRepo.AssertExpectations(s.T())
}

func (s *creatorSuite) TestRegisterInvalidUsername() {
	address := s.wallet.Address()

	for _, username := range []string{"", "ab", "Alice", "has-dash", "has space", "way_tooooooooooooooooooooooo_long_username"} {
		_, err := s.im.Register(mockCtx, address, username, "Alice", s.signRegistration(username))
		s.Equal(domain.ErrInvalidUsername, err, username)
	}
}

func (s *creatorSuite) TestRegisterBadSignature() {
	address := s.wallet.Address()

	// signed over another username
	_, err := s.im.Register(mockCtx, address, "alice", "Alice", s.signRegistration("mallory"))
	s.Equal(domain.ErrInvalidSignature, err)

	// not base58 at all
	_, err = s.im.Register(mockCtx, address, "alice", "Alice", "0xdeadbeef")
	s.Equal(domain.ErrInvalidSignature, err)
}

func (s *creatorSuite) TestRegisterUsernameTaken() {
	address := s.wallet.Address()
	signature := s.signRegistration("alice")

	s.repo.On("GetByUsername", mock.Anything, "alice").Return(&creator.Creator{Username: "alice"}, nil).Once()

	_, err := s.im.Register(mockCtx, address, "alice", "Alice", signature)
	s.Equal(domain.ErrUsernameTaken, err)
}

func (s *creatorSuite) TestGenerateNonce() {
	address := s.wallet.Address()

	s.repo.On("Get", mock.Anything, address).Return(&creator.Creator{Address: address}, nil).Once()
	s.repo.On("Update", mock.Anything, address, mock.MatchedBy(func(u *creator.Updater) bool {
		return u.Nonce > 0
	})).Return(nil).Once()

	nonce, err := s.im.GenerateNonce(mockCtx, address)
	s.Require().NoError(err)
	s.Greater(nonce, int32(0))

	s.repo.AssertExpectations(s.T())
}

func (s *creatorSuite) TestValidateSignature() {
	address := s.wallet.Address()
	nonce := int32(77)
	msg := fmt.Sprintf(testSignatureMsg, strconv.Itoa(int(nonce)))
	signature := base58.Encode(s.wallet.Sign([]byte(msg)))

	s.repo.On("Get", mock.Anything, address).Return(&creator.Creator{Address: address, Nonce: nonce}, nil).Once()
	s.repo.On("Update", mock.Anything, address, &creator.Updater{Nonce: invalidNonce}).Return(nil).Once()

	s.Require().NoError(s.im.ValidateSignature(mockCtx, address, signature))
	s.repo.AssertExpectations(s.T())

	// the nonce is consumed afterwards
	s.repo.On("Get", mock.Anything, address).Return(&creator.Creator{Address: address, Nonce: invalidNonce}, nil).Once()
	s.Equal(creator.ErrInvalidNonce, s.im.ValidateSignature(mockCtx, address, signature))
}

func (s *creatorSuite) TestValidateSignatureWrongSigner() {
	other, err := wallet.Generate()
	s.Require().NoError(err)

	address := s.wallet.Address()
	nonce := int32(77)
	msg := fmt.Sprintf(testSignatureMsg, strconv.Itoa(int(nonce)))
	signature := base58.Encode(other.Sign([]byte(msg)))

	s.repo.On("Get", mock.Anything, address).Return(&creator.Creator{Address: address, Nonce: nonce}, nil).Once()
	// the nonce burns even when validation fails
	s.repo.On("Update", mock.Anything, address, &creator.Updater{Nonce: invalidNonce}).Return(nil).Once()

	s.Equal(domain.ErrInvalidSignature, s.im.ValidateSignature(mockCtx, address, signature))
	s.repo.AssertExpectations(s.T())
}
