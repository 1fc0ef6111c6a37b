package file

import (
	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/service/pinata"
)

// Usecase pins uploads to IPFS. Upload takes a data uri and reports the
// content hash, UploadJson pins an arbitrary document the same way.
type Usecase interface {
	Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error)
	UploadJson(c ctx.Ctx, value interface{}, pinOption pinata.PinOptions) (hash string, err error)
}
