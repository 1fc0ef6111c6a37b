package repository

import (
	"net/url"
	"time"

	"cloud.google.com/go/storage"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
)

type CloudStorageWriterRepoCfg struct {
	Timeout    time.Duration
	Client     *storage.Client
	BucketName string
	// Url is the public base the bucket is served from, usually a CDN
	// host rather than storage.googleapis.com.
	Url string
}

type cloudStorageWriterRepo struct {
	client     *storage.Client
	bucketName string
	ctxTimeout time.Duration
	baseUrl    *url.URL
}

func NewCloudStorageWriterRepo(cfg *CloudStorageWriterRepoCfg) (domain.WebResourceWriterRepository, error) {
	baseUrl, err := url.Parse(cfg.Url)
	if err != nil {
		return nil, err
	}
	return &cloudStorageWriterRepo{
		client:     cfg.Client,
		bucketName: cfg.BucketName,
		ctxTimeout: cfg.Timeout,
		baseUrl:    baseUrl,
	}, nil
}

func (r *cloudStorageWriterRepo) Store(c bCtx.Ctx, path string, body []byte, contentType string) (string, error) {
	contentPath, err := url.Parse(path)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("invalid object path")
		return "", err
	}

	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	w := r.client.Bucket(r.bucketName).Object(path).NewWriter(ctx)
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}
	// previews rewrite under the same object name on republish, keep
	// edge caches short lived
	w.ObjectAttrs.CacheControl = "public, max-age=3600"

	if _, err := w.Write(body); err != nil {
		ctx.WithField("err", err).Error("write object failed")
		return "", err
	}
	if err := w.Close(); err != nil {
		ctx.WithField("err", err).Error("close writer failed")
		return "", err
	}

	return r.baseUrl.ResolveReference(contentPath).String(), nil
}
