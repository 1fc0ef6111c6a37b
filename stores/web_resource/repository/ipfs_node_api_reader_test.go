package repository

import (
	"bytes"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

func Test_ipfsNodeApiReaderRepo_Get(t *testing.T) {
	// local ipfs-node required
	if testing.Short() {
		t.Skip()
	}
	req := require.New(t)

	payload := []byte("the full essay lives behind the paywall")

	ctx := bCtx.Background()
	s := ipfsapi.NewShell("localhost:5001")
	cid, err := s.Add(bytes.NewReader(payload))
	req.NoError(err)

	r := NewIpfsNodeApiReaderRepo(s, 15*time.Second)
	b, err := r.Get(ctx, cid)
	req.NoError(err)
	req.Equal(payload, b)
}
