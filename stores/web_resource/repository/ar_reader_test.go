package repository

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

func Test_arReaderRepo_Get_rejectsOtherSchemes(t *testing.T) {
	req := require.New(t)

	c := http.Client{}
	ctx := bCtx.Background()
	r := NewArReaderRepo(c, 10*time.Second, nil)

	_, err := r.Get(ctx, "https://arweave.net/eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w")
	req.Error(err)

	_, err = r.Get(ctx, "ipfs://QmYwAPJzv5CZsnAzt8auVZRn1pfejgxBrMVcdcQgv3Wmf3")
	req.Error(err)
}

func Test_arReaderRepo_Get(t *testing.T) {
	// hits arweave.net
	if testing.Short() {
		t.Skip()
	}

	req := require.New(t)
	c := http.Client{}
	ctx := bCtx.Background()
	r := NewArReaderRepo(c, 10*time.Second, nil)

	b, err := r.Get(ctx, "ar://eXcwlbsV1BiRGCsGKXa60Mj0i-xDZU0k95l_ysNwv_w/1.json")
	req.NoError(err)
	req.NotEmpty(b)
}
