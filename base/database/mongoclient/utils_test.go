package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type updater struct {
		DisplayName *string `bson:"displayName,omitempty"`
		Bio         *string `bson:"bio,omitempty"`
		Avatar      string  `bson:"avatar"`
		Nonce       int32   `bson:"nonce"`
		UpdatedAt   int64   `bson:"updatedAt,omitempty"`
		Internal    string  `bson:"-"`
	}

	m, err := MakeBsonM(&updater{
		Bio:      ptr.String(""),
		Nonce:    -1,
		Internal: "never stored",
	})

	req.NoError(err)
	req.Equal(bson.M{
		// a set pointer clears the field even at its zero value
		"bio":   "",
		"nonce": int32(-1),
	}, m)
}

func TestMakeBsonMSkipsZeroValues(t *testing.T) {
	req := require.New(t)

	type updater struct {
		Avatar string `bson:"avatar"`
		Banner string `bson:"banner"`
	}

	m, err := MakeBsonM(&updater{Avatar: "ipfs://Qm123"})

	req.NoError(err)
	req.Equal(bson.M{"avatar": "ipfs://Qm123"}, m)
}
