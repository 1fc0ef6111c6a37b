package goroutine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGoCompletes(t *testing.T) {
	req := require.New(t)

	done := make(chan struct{})
	events := RecoverableGo(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine never ran")
	}

	evt, ok := <-events
	req.False(ok)
	req.Nil(evt)
}

func TestRecoverableGoRecovers(t *testing.T) {
	req := require.New(t)

	events := RecoverableGo(func() { panic("boom") })

	select {
	case evt := <-events:
		req.NotNil(evt)
		req.Equal("boom", evt.Panic)
		req.NotEmpty(evt.Stack)
	case <-time.After(time.Second):
		t.Fatal("panic event never arrived")
	}
}
