package domain

import (
	"github.com/auton-labs/goapi/base/ctx"
)

// WebResourceReaderRepository fetches the bytes behind a url. Readers exist
// per scheme, http, ipfs, arweave and data uris each get their own.
type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

// WebResourceWriterRepository stores a blob under a path and returns the
// public url it is served from.
type WebResourceWriterRepository interface {
	Store(ctx.Ctx, string, []byte, string) (string, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	// StorePreview uploads a teaser derived from one content item and
	// returns the public url
	StorePreview(ctx.Ctx, Address, string, []byte, string) (string, error)
}
