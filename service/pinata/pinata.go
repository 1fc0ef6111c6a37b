package pinata

import (
	"errors"
	"io"

	"github.com/auton-labs/goapi/base/ctx"
)

// ErrRequestFailed covers every non 200 answer from the pinning API. The
// response body only carries prose, so callers get the log line instead.
var ErrRequestFailed = errors.New("request failed")

// Service pins creator uploads and manifest documents to IPFS through the
// Pinata API and returns the resulting content hash.
type Service interface {
	Pin(c ctx.Ctx, file io.Reader, extension string, opts ...Options) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}

// CidVersion selects the hash format Pinata derives for a pin.
type CidVersion uint8

const (
	// CidVersion0 keeps the legacy base58 Qm hashes that gateway urls expect.
	CidVersion0 CidVersion = 0
	CidVersion1 CidVersion = 1
)

// PinataMetadata labels a pin in the Pinata dashboard.
type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// the API accepts string, bool and int values only
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

// PinOptions is the request envelope pinJSONToIPFS takes. File pins send
// the same pieces as separate multipart fields instead.
type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata"`
	Options       *PinataOptions  `json:"pinataOptions"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}
