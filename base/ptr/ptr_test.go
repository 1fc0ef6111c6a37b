package ptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	req := require.New(t)

	p := String("banner.png")
	req.NotNil(p)
	req.Equal("banner.png", *p)

	q := String("banner.png")
	req.NotSame(p, q)
}

func TestInt(t *testing.T) {
	req := require.New(t)

	p := Int(42)
	req.NotNil(p)
	req.Equal(42, *p)
}
