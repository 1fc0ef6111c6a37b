package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/service/cache/provider"
	"github.com/auton-labs/goapi/service/cache/provider/primitive"
)

var mockCtx = ctx.Background()

type compoundSuite struct {
	suite.Suite

	near provider.Provider
	far  provider.Provider
	im   provider.Provider
}

func TestCompoundSuite(t *testing.T) {
	suite.Run(t, new(compoundSuite))
}

func (s *compoundSuite) SetupTest() {
	s.near = primitive.NewPrimitive("near", 16)
	s.far = primitive.NewPrimitive("far", 16)
	s.im = NewCompound([]provider.Provider{s.near, s.far})
}

func (s *compoundSuite) TestMissEverywhere() {
	_, _, err := s.im.Get(mockCtx, "missing")
	s.Equal(provider.ErrNotFound, err)
}

func (s *compoundSuite) TestSetWritesAllLayers() {
	s.Require().NoError(s.im.Set(mockCtx, "creator:ada", []byte("profile"), time.Minute))

	val, _, err := s.near.Get(mockCtx, "creator:ada")
	s.Require().NoError(err)
	s.Equal([]byte("profile"), val)

	val, _, err = s.far.Get(mockCtx, "creator:ada")
	s.Require().NoError(err)
	s.Equal([]byte("profile"), val)
}

func (s *compoundSuite) TestNearHitSkipsFarLayer() {
	s.Require().NoError(s.near.Set(mockCtx, "nonce:7", []byte("x"), time.Minute))

	val, _, err := s.im.Get(mockCtx, "nonce:7")
	s.Require().NoError(err)
	s.Equal([]byte("x"), val)

	_, _, err = s.far.Get(mockCtx, "nonce:7")
	s.Equal(provider.ErrNotFound, err)
}

func (s *compoundSuite) TestFarHitRefillsNearLayer() {
	s.Require().NoError(s.far.Set(mockCtx, "creator:ada", []byte("profile"), time.Minute))

	val, ttl, err := s.im.Get(mockCtx, "creator:ada")
	s.Require().NoError(err)
	s.Equal([]byte("profile"), val)
	s.Greater(ttl, time.Duration(0))

	// the next read finds the entry one layer closer
	val, _, err = s.near.Get(mockCtx, "creator:ada")
	s.Require().NoError(err)
	s.Equal([]byte("profile"), val)
}

func (s *compoundSuite) TestDelReachesAllLayers() {
	s.Require().NoError(s.im.Set(mockCtx, "creator:ada", []byte("profile"), time.Minute))
	s.Require().NoError(s.im.Del(mockCtx, "creator:ada"))

	_, _, err := s.near.Get(mockCtx, "creator:ada")
	s.Equal(provider.ErrNotFound, err)
	_, _, err = s.far.Get(mockCtx, "creator:ada")
	s.Equal(provider.ErrNotFound, err)
}
