package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain/file"
	"github.com/auton-labs/goapi/service/pinata"
)

const (
	imgDataHeaderPrefix = "data:image/"
	imgDataHeaderSuffix = ";base64,"
	// the suffix must land inside this window, anything later means the
	// mediatype is not one we accept
	imgDataHeaderMaxLength = 50
)

type impl struct {
	pinata pinata.Service
}

func New(pinata pinata.Service) file.Usecase {
	return &impl{
		pinata: pinata,
	}
}

func (im *impl) Upload(c ctx.Ctx, imgData string, pinOption pinata.PinOptions) (hash string, err error) {
	reader, extension, err := im.parseImgData(imgData)
	if err != nil {
		c.WithField("err", err).Error("im.parseImgData failed")
		return "", err
	}

	hash, err = im.pinata.Pin(c, reader, extension, asOptions(pinOption)...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.Pin failed")
		return "", err
	}

	c.WithField("hash", hash).Info("im.pinata.Pin success")
	return hash, nil
}

func (im *impl) UploadJson(c ctx.Ctx, value interface{}, pinOption pinata.PinOptions) (hash string, err error) {
	hash, err = im.pinata.PinJson(c, value, asOptions(pinOption)...)
	if err != nil {
		c.WithField("err", err).Error("im.pinata.PinJson failed")
		return "", err
	}

	c.WithField("hash", hash).Info("im.pinata.PinJson success")
	return hash, nil
}

func asOptions(pinOption pinata.PinOptions) []pinata.Options {
	opts := []pinata.Options{}
	if pinOption.Metadata != nil {
		opts = append(opts, pinata.WithMetadata(*pinOption.Metadata))
	}
	if pinOption.Options != nil {
		opts = append(opts, pinata.WithOptions(*pinOption.Options))
	}
	return opts
}

// parseImgData splits a data:image/... uri into its decoded payload and
// file extension. The payload decodes eagerly so a corrupt upload fails
// here instead of surfacing as a pinning error.
func (im *impl) parseImgData(data string) (reader io.Reader, extension string, err error) {
	if !strings.HasPrefix(data, imgDataHeaderPrefix) {
		return nil, "", fmt.Errorf("image data has wrong prefix")
	}

	searchLength := imgDataHeaderMaxLength
	if len(data) < searchLength {
		searchLength = len(data)
	}
	headerSuffixIdx := strings.Index(data[:searchLength], imgDataHeaderSuffix)
	if headerSuffixIdx == -1 {
		return nil, "", fmt.Errorf("can't find image data header suffix")
	}

	extension = data[len(imgDataHeaderPrefix):headerSuffixIdx]
	dataStartIdx := headerSuffixIdx + len(imgDataHeaderSuffix)

	decodedData, err := base64.StdEncoding.DecodeString(data[dataStartIdx:])
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(decodedData), extension, nil
}
