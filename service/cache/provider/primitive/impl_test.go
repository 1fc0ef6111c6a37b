package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/service/cache/provider"
)

var mockCtx = ctx.Background()

type primitiveSuite struct {
	suite.Suite

	im provider.Provider
}

func TestPrimitiveSuite(t *testing.T) {
	suite.Run(t, new(primitiveSuite))
}

func (s *primitiveSuite) SetupTest() {
	s.im = NewPrimitive("test", 64)
}

func (s *primitiveSuite) TestGetMiss() {
	_, _, err := s.im.Get(mockCtx, "missing")
	s.Equal(provider.ErrNotFound, err)
}

func (s *primitiveSuite) TestSetThenGet() {
	s.Require().NoError(s.im.Set(mockCtx, "creator:ada", []byte("profile"), time.Minute))

	val, ttl, err := s.im.Get(mockCtx, "creator:ada")
	s.Require().NoError(err)
	s.Equal([]byte("profile"), val)

	// the reported ttl is what remains, not the original write ttl
	s.Greater(ttl, 50*time.Second)
	s.LessOrEqual(ttl, time.Minute)
}

func (s *primitiveSuite) TestExpiredEntryMisses() {
	s.Require().NoError(s.im.Set(mockCtx, "nonce:1", []byte("x"), time.Second))

	time.Sleep(time.Second + 10*time.Millisecond)

	_, _, err := s.im.Get(mockCtx, "nonce:1")
	s.Equal(provider.ErrNotFound, err)
}

func (s *primitiveSuite) TestDel() {
	s.Require().NoError(s.im.Set(mockCtx, "creator:ada", []byte("profile"), time.Minute))
	s.Require().NoError(s.im.Del(mockCtx, "creator:ada"))

	_, _, err := s.im.Get(mockCtx, "creator:ada")
	s.Equal(provider.ErrNotFound, err)
}

func (s *primitiveSuite) TestRejectsOversizedEntry() {
	// a 64MB cache caps a single entry at 64KB
	big := make([]byte, 64*1024)

	s.Error(s.im.Set(mockCtx, "huge", big, time.Minute))
}
