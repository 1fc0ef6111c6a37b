package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/auton-labs/goapi/base/log"
)

const socketTimeout = 60 * time.Second

// Client couples the driver client with the database it serves.
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient panics when the store is unreachable, nothing
// can be served without the database.
func MustConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) *Client {
	cli, err := ConnectMongoClient(uri, authDBName, dbName, ssl, setSafe, poolSizeMultiplier)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

func ConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) (*Client, error) {
	cs, err := connstring.Parse(uri)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoURI": uri,
			"err":      err,
		}).Error("fail to parse connstring")
		return nil, err
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, clientOptions(uri, authDBName, cs, ssl, setSafe, poolSizeMultiplier))
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": cs.Hosts,
			"dbName":     dbName,
			"err":        err,
		}).Error("fail to connect mongo db")
		return nil, err
	}

	// confirm the credentials can actually see the database
	if _, err := client.Database(dbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": cs.Hosts,
			"dbName":     dbName,
			"err":        err,
		}).Error("fail to test mongo db")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": cs.Hosts,
		"db":         dbName,
	}).Info("mongo connected")

	return &Client{
		Client: client,
		DbName: dbName,
	}, nil
}

func clientOptions(uri, authDBName string, cs connstring.ConnString, ssl, setSafe bool, poolSizeMultiplier float64) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetSocketTimeout(socketTimeout).
		SetRetryWrites(true)

	// connstrings without an explicit authSource authenticate against
	// the configured auth database
	if cs.Username != "" && cs.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           cs.AuthMechanism,
			AuthMechanismProperties: cs.AuthMechanismProperties,
			Username:                cs.Username,
			Password:                cs.Password,
			PasswordSet:             cs.PasswordSet,
			AuthSource:              authDBName,
		})
	}

	// the driver keeps one pool per host, split the budget so the
	// process total stays at cpu count times the multiplier
	total := int(float64(runtime.NumCPU()) * poolSizeMultiplier)
	perHost := (total + len(cs.Hosts) - 1) / len(cs.Hosts)
	opts.SetMinPoolSize(uint64(perHost / 4))
	opts.SetMaxPoolSize(uint64(perHost))

	if ssl {
		opts.SetTLSConfig(&tls.Config{})
	}
	if setSafe {
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	return opts
}
