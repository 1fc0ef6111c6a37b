package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain/keys"
	"github.com/auton-labs/goapi/service/cache"
	"github.com/auton-labs/goapi/service/cache/provider"
	"github.com/auton-labs/goapi/service/cache/provider/compound"
	"github.com/auton-labs/goapi/service/cache/provider/primitive"
	redisCache "github.com/auton-labs/goapi/service/cache/provider/redis"
	"github.com/auton-labs/goapi/service/redis"
)

// maxCachedBody bounds the response size CacheHttp will store. The
// local layer rejects entries above 1/1024 of its capacity, so bodies
// must stay well below that limit after serialization.
const maxCachedBody = 64 * 1024

var (
	httpCacheProvider provider.Provider

	httpCacheOnce = sync.Once{}
)

// SetupCache builds the provider stack backing CacheHttp. The local
// layer keeps hot entries in process and redis shares them across
// instances. A nil redis service leaves only the local layer, which
// the descriptor and preview routes can run on in development.
func SetupCache(redisSvc redis.Service) {
	httpCacheOnce.Do(func() {
		layers := []provider.Provider{primitive.NewPrimitive(keys.PfxHttpCache, 128)}
		if redisSvc != nil {
			layers = append(layers, redisCache.NewRedis(redisSvc))
		}
		httpCacheProvider = compound.NewCompound(layers)
	})
}

// Response is a cached upstream reply. Code is kept so replays carry
// the original status instead of collapsing everything to 200.
type Response struct {
	Code   int
	Value  []byte
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Slice(param, func(i, j int) bool {
			return param[i] < param[j]
		})
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp caches successful GET responses for ttl, keyed by the
// request url with sorted query params. Requests carrying an
// Authorization header bypass the cache since their responses may be
// caller specific.
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if httpCacheProvider == nil {
		panic("need SetupCache before using CacheHttp")
	}

	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxHttpCache,
		Cache: httpCacheProvider,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			if c.Request().Header.Get(echo.HeaderAuthorization) != "" {
				return next(c)
			}

			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := cacheService.Get(ctx, key, &response)
			if err == nil {
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(response.Code)
				_, err = c.Response().Write(response.Value)
				return err
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
					"key": key,
				}).Error("failed to cacheService.Get")
			}

			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{
				statusCode:     http.StatusOK,
				Writer:         mw,
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			cacheable := writer.statusCode >= http.StatusOK &&
				writer.statusCode < http.StatusMultipleChoices &&
				resBody.Len() <= maxCachedBody
			if cacheable {
				stored := Response{
					Code:   writer.statusCode,
					Value:  resBody.Bytes(),
					Header: writer.Header(),
				}
				if err := cacheService.Set(ctx, key, stored); err != nil {
					ctx.WithFields(log.Fields{
						"err": err,
						"key": key,
					}).Error("failed to cacheService.Set")
				}
			}

			return nil
		}
	}
}
