package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/auton-labs/goapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	idleTimeout = 240 * time.Second

	// transient network failures right after pod start are common,
	// give the dial a few attempts before giving up
	dialAttempts = 4
)

// RedisParam sizes the pool from the cpu count and controls dial
// retries. Retry stays false only in tests.
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis panics if the connection fails.
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 200
	maxActive := 1024
	retry := false
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		// keep a quarter of the pool idle
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
		retry = param[0].Retry
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}

	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// skip the ping when the conn was returned under a second ago
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	jitter := rand.New(rand.NewSource(time.Now().UnixNano()))

	var err error
	for attempt := 0; attempt < dialAttempts; attempt++ {
		if attempt > 0 {
			if !retry {
				break
			}
			// jittered pause so restarting pods do not stampede
			time.Sleep(time.Second + time.Duration(jitter.Intn(1000))*time.Millisecond)
		}

		if err = ping(p, uri, attempt); err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool, uri string, attempt int) error {
	c, err := p.Dial()
	if err != nil {
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  attempt,
		}).Error("fail to dial Redis")
		return err
	}
	defer c.Close()

	if err := p.TestOnBorrow(c, time.Time{}); err != nil {
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  attempt,
		}).Error("fail to ping Redis")
		return err
	}
	return nil
}
