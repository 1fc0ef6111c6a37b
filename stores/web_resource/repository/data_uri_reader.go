package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes rfc 2397 data uris. Creators inline small
// teasers and manifests this way instead of hosting them anywhere.
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri")
	}

	// data:[<mediatype>][;base64],<data>
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || parts[1] == "" {
		return nil, xerrors.Errorf("no data part provided")
	}
	meta, payload := parts[0], parts[1]

	if strings.HasSuffix(meta, ";base64") {
		return base64.StdEncoding.DecodeString(payload)
	}

	// non base64 payloads are percent encoded per rfc 2397
	if decoded, err := url.PathUnescape(payload); err == nil {
		return []byte(decoded), nil
	}
	return []byte(payload), nil
}
