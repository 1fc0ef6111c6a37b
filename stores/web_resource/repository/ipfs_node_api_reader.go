package repository

import (
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeApiReaderRepo reads pinned payloads through a node's API
// port rather than a public gateway, which keeps the unlock path off
// gateway rate limits.
func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	reqCtx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	resp, err := r.shell.Request("cat", cid).Send(reqCtx)
	if err != nil {
		c.WithField("err", err).WithField("cid", cid).Error("ipfs cat failed")
		return nil, err
	}
	if resp.Error != nil {
		c.WithField("err", resp.Error).WithField("cid", cid).Error("ipfs cat failed")
		return nil, resp.Error
	}
	defer resp.Output.Close()

	return readCapped(resp.Output)
}
