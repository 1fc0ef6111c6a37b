package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type rateLimitSuite struct {
	suite.Suite

	now time.Time
	rl  *RateLimiter
}

func TestRateLimitSuite(t *testing.T) {
	suite.Run(t, new(rateLimitSuite))
}

func (s *rateLimitSuite) SetupTest() {
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.rl = NewRateLimiter(&RateLimitCfg{
		Limit:  5,
		Window: time.Hour,
		Now:    func() time.Time { return s.now },
	})
}

func (s *rateLimitSuite) hit(ip string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/sponsor/submit", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := s.rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.NoError(h(c))
	return rec
}

func (s *rateLimitSuite) TestSixthRequestBlocked() {
	for i := 0; i < 5; i++ {
		rec := s.hit("203.0.113.7")
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("5", rec.Header().Get("X-RateLimit-Limit"))
		s.Equal(strconv.Itoa(4-i), rec.Header().Get("X-RateLimit-Remaining"))
	}

	rec := s.hit("203.0.113.7")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("0", rec.Header().Get("X-RateLimit-Remaining"))
	s.Equal("3600", rec.Header().Get("Retry-After"))
	s.Equal(strconv.FormatInt(s.now.Add(time.Hour).Unix(), 10), rec.Header().Get("X-RateLimit-Reset"))

	var body struct {
		Data struct {
			RetryAfter int64 `json:"retryAfter"`
		} `json:"data"`
		Status string `json:"status"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.EqualValues(3600, body.Data.RetryAfter)
	s.Equal("fail", body.Status)
}

func (s *rateLimitSuite) TestRetryAfterCountsDown() {
	for i := 0; i < 5; i++ {
		s.hit("203.0.113.7")
	}

	s.now = s.now.Add(30 * time.Minute)
	rec := s.hit("203.0.113.7")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Equal("1800", rec.Header().Get("Retry-After"))
}

func (s *rateLimitSuite) TestWindowResets() {
	for i := 0; i < 5; i++ {
		s.hit("203.0.113.7")
	}
	s.Equal(http.StatusTooManyRequests, s.hit("203.0.113.7").Code)

	s.now = s.now.Add(time.Hour)
	rec := s.hit("203.0.113.7")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("4", rec.Header().Get("X-RateLimit-Remaining"))
}

func (s *rateLimitSuite) TestRejectionsDoNotExtendLockout() {
	for i := 0; i < 8; i++ {
		s.hit("203.0.113.7")
	}

	// the rejected requests above never advanced the count or the reset
	s.now = s.now.Add(time.Hour)
	s.Equal(http.StatusOK, s.hit("203.0.113.7").Code)
}

func (s *rateLimitSuite) TestClientsIsolated() {
	for i := 0; i < 6; i++ {
		s.hit("203.0.113.7")
	}

	rec := s.hit("198.51.100.9")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("4", rec.Header().Get("X-RateLimit-Remaining"))
}

func (s *rateLimitSuite) TestSweepDropsStaleWindows() {
	s.hit("203.0.113.7")
	s.hit("198.51.100.9")
	s.Len(s.rl.windows, 2)

	s.now = s.now.Add(time.Hour)
	s.hit("198.51.100.9")
	s.rl.sweep()

	s.Len(s.rl.windows, 1)
	_, ok := s.rl.windows["198.51.100.9"]
	s.True(ok)
}
