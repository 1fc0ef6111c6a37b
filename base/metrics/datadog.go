package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/auton-labs/goapi/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	ddPort = 8125

	// ddRate is the rate to pass metrics to the agent, 1 means always
	ddRate = 1
	// buffer this many counters before flushing to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

// nextClient picks a connection round robin, goroutines share the
// small pool instead of contending on a single socket
func nextClient() statsCli {
	initOnce.Do(initDDClients)
	i := atomic.AddInt32(&ddClientsIdx, 1) & ddClientsIdxMask
	return ddClients[i]
}

func initDDClients() {
	ddClients = make([]statsCli, ddClientsSize)

	host := viper.GetString("datadog_host")
	if host == "" {
		// no agent around, log the series at debug level instead
		for i := range ddClients {
			ddClients[i] = &LogClient{}
		}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	for i := range ddClients {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = cli
	}
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// DDMetrics sends series to the statsd agent, stamped with the base
// tags every series shares.
type DDMetrics struct {
	ddTags []string
}

func (dm *DDMetrics) BumpAvg(key string, val float64, tags ...string) {
	// the agent has no plain average, a gauge keeping the last value
	// per flush is close enough for our accumulators
	if err := nextClient().Gauge(key, val, dm.allTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpAvg"}).Error("Bump fail")
	}
}

func (dm *DDMetrics) BumpSum(key string, val float64, tags ...string) {
	if err := nextClient().Count(key, int64(val), dm.allTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (dm *DDMetrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := nextClient().Histogram(key, val, dm.allTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

func (dm *DDMetrics) BumpTime(key string, tags ...string) Ender {
	return &ddTimeTracker{
		start: time.Now(),
		key:   key,
		tags:  dm.allTags(tags),
	}
}

// allTags joins the base tags with key/value pairs flattened to the
// agent's k:v form. Pairs must come in twos.
func (dm *DDMetrics) allTags(pairs []string) []string {
	if len(pairs)%2 != 0 {
		log.Log().WithField("tags", pairs).Panic("tag length needs to be multiple of 2")
	}

	tags := make([]string, 0, len(dm.ddTags)+len(pairs)/2)
	tags = append(tags, dm.ddTags...)
	for i := 0; i < len(pairs); i += 2 {
		tags = append(tags, pairs[i]+":"+pairs[i+1])
	}
	return tags
}

type ddTimeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (dt *ddTimeTracker) End() {
	ms := float64(time.Since(dt.start)) / float64(time.Millisecond)
	if err := nextClient().TimeInMilliseconds(dt.key, ms, dt.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": dt.key, "val": ms, "func": "BumpTime"}).Error("Bump fail")
	}
}
