package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

const (
	arUriSchema = "ar://"
	arGateway   = "https://arweave.net/"
)

type arReaderRepo struct {
	client     http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewArReaderRepo resolves ar uris through the arweave.net gateway.
func NewArReaderRepo(client http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &arReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	gatewayUrl := arGateway + strings.TrimPrefix(url, arUriSchema)
	return fetchUrl(c, &r.client, r.ctxTimeout, r.headers, gatewayUrl)
}
