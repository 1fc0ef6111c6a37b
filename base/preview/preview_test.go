package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestExtract(t *testing.T) {
	req := require.New(t)

	req.Equal("hello world", Extract([]byte("hello world"), 280))
	req.Equal("hello", Extract([]byte("hello world"), 5))

	// rune boundaries, not byte boundaries
	req.Equal("日本", Extract([]byte("日本語のテキスト"), 2))

	long := strings.Repeat("market update. ", 100)
	req.Len(Extract([]byte(long), 280), 280)
}

func TestExtractSkipsNonText(t *testing.T) {
	req := require.New(t)

	req.Equal("", Extract(pngHeader, 280))
	req.Equal("", Extract([]byte{0x00, 0x01, 0x02, 0x03}, 280))
	req.Equal("", Extract(nil, 280))
	req.Equal("", Extract([]byte("hello"), 0))
}

func TestDetectMime(t *testing.T) {
	req := require.New(t)

	req.Equal("image/png", DetectMime(pngHeader))
	req.Contains(DetectMime([]byte("plain words")), "text/plain")
}
