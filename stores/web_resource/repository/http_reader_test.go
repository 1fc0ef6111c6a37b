package repository

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)

	manifest := []byte(`{"creator":"So11111111111111111111111111111111111111112","contentId":"7","title":"Field Notes #7","price":1000000,"asset":"SOL"}`)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/manifest.json" {
			w.Write(manifest)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := http.Client{}
	ctx := bCtx.Background()
	r := NewHttpReaderRepo(c, 10*time.Second, nil)

	b, err := r.Get(ctx, srv.URL+"/manifest.json")
	req.NoError(err)
	req.Equal(manifest, b)

	_, err = r.Get(ctx, srv.URL+"/missing.json")
	req.Error(err)
}

func Test_httpReaderRepo_Get_sizeCap(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(bytes.Repeat([]byte("a"), maxFetchBytes+1))
	}))
	defer srv.Close()

	c := http.Client{}
	ctx := bCtx.Background()
	r := NewHttpReaderRepo(c, 10*time.Second, nil)

	_, err := r.Get(ctx, srv.URL)
	req.Equal(ErrResponseTooLarge, err)
}

func Test_httpReaderRepo_Get_headers(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer reader-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := http.Client{}
	ctx := bCtx.Background()
	r := NewHttpReaderRepo(c, 10*time.Second, map[string]string{"Authorization": "Bearer reader-token"})

	b, err := r.Get(ctx, srv.URL)
	req.NoError(err)
	req.Equal([]byte("ok"), b)
}
