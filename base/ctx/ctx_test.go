package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)

	c := WithValue(Background(), "intentId", "a1b2")
	req.Equal("a1b2", c.Value("intentId"))
	req.Nil(c.Value("missing"))
}

func TestWithValuesKeepsAllPairs(t *testing.T) {
	req := require.New(t)

	c := WithValues(Background(), map[string]interface{}{
		"creator":   "ada",
		"contentId": int64(7),
	})
	req.Equal("ada", c.Value("creator"))
	req.Equal(int64(7), c.Value("contentId"))
}

func TestWithValuesChainsOntoParent(t *testing.T) {
	req := require.New(t)

	parent := WithValue(Background(), "requestID", "r-1")
	c := WithValues(parent, map[string]interface{}{"buyer": "grace"})
	req.Equal("r-1", c.Value("requestID"))
	req.Equal("grace", c.Value("buyer"))
}

func TestWithCancelStopsWaiters(t *testing.T) {
	req := require.New(t)

	c, cancel := WithCancel(Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	select {
	case <-c.Done():
		req.Equal(context.Canceled, c.Err())
	case <-time.After(time.Second):
		t.Fatal("cancel never propagated")
	}
}

func TestWithTimeoutExpires(t *testing.T) {
	req := require.New(t)

	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()

	select {
	case <-c.Done():
		req.Equal(context.DeadlineExceeded, c.Err())
	case <-time.After(time.Second):
		t.Fatal("deadline never fired")
	}
}
