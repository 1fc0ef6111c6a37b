package repository

import (
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
)

// maxFetchBytes caps a single fetch. Pointers are creator supplied, so
// an unbounded read would let one url exhaust the pod.
const maxFetchBytes = 16 << 20

var ErrResponseTooLarge = xerrors.New("response exceeds size cap")

func readCapped(r io.Reader) ([]byte, error) {
	body, err := ioutil.ReadAll(io.LimitReader(r, maxFetchBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxFetchBytes {
		return nil, ErrResponseTooLarge
	}
	return body, nil
}

// fetchUrl is the request path every http backed reader funnels through.
func fetchUrl(c bCtx.Ctx, client *http.Client, timeout time.Duration, headers map[string]string, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		ctx.WithField("url", url).Warn("fetch failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("unexpected status")
		return nil, xerrors.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := readCapped(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("read body failed")
		return nil, err
	}
	return body, nil
}

type httpReaderRepo struct {
	client     http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewHttpReaderRepo resolves plain http and https pointers. Headers ride
// along on every request, gateways fronted by auth use them.
func NewHttpReaderRepo(client http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return fetchUrl(c, &r.client, r.ctxTimeout, r.headers, url)
}
