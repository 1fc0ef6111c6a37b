package usecase

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
)

// public ipfs gateways the fallback can rewrite back into ipfs uris
var (
	gatewayPrefixes = []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
	}
	dedicatedPinataRegex = regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)
)

type WebResourceUseCaseCfg struct {
	HttpReader         domain.WebResourceReaderRepository
	IpfsReader         domain.WebResourceReaderRepository
	DataUriReader      domain.WebResourceReaderRepository
	ArUriReader        domain.WebResourceReaderRepository
	CloudStorageWriter domain.WebResourceWriterRepository
}

type webResourceUseCase struct {
	httpReader         domain.WebResourceReaderRepository
	ipfsReader         domain.WebResourceReaderRepository
	dataUriReader      domain.WebResourceReaderRepository
	arUriReader        domain.WebResourceReaderRepository
	cloudStorageWriter domain.WebResourceWriterRepository
}

// NewWebResourceUseCase routes pointer fetches to the reader matching the
// uri scheme and previews to cloud storage.
func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:         cfg.HttpReader,
		ipfsReader:         cfg.IpfsReader,
		dataUriReader:      cfg.DataUriReader,
		arUriReader:        cfg.ArUriReader,
		cloudStorageWriter: cfg.CloudStorageWriter,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	var data []byte
	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		cid := strings.TrimPrefix(rawUrl, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/") // creators paste both forms
		data, err = u.ipfsReader.Get(c, cid)
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	// gateway urls degrade all the time, retry through our own node
	if pUrl.Scheme == "https" {
		if ipfsUrl := getIpfsUrl(rawUrl); ipfsUrl != "" {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Error("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) StorePreview(c bCtx.Ctx, creator domain.Address, contentId string, data []byte, contentType string) (string, error) {
	objectPath := path.Join(
		"previews",
		creator.String(),
		fmt.Sprintf("%s.preview", contentId),
	)
	url, err := u.cloudStorageWriter.Store(c, objectPath, data, contentType)
	if err != nil {
		c.WithFields(log.Fields{
			"path": objectPath,
			"err":  err,
		}).Error("cloudStorageWriter.Store failed")
		return "", err
	}
	return url, nil
}

// getIpfsUrl maps a known gateway url back to the ipfs uri it serves, or
// returns an empty string for anything else.
func getIpfsUrl(url string) string {
	for _, p := range gatewayPrefixes {
		if strings.HasPrefix(url, p) {
			return "ipfs://" + strings.TrimPrefix(url, p)
		}
	}
	if loc := dedicatedPinataRegex.FindStringIndex(url); loc != nil {
		return "ipfs://" + url[loc[1]:]
	}
	return ""
}
