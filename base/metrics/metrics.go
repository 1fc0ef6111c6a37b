/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
  - warning: *.warn
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/auton-labs/goapi/base/env"
)

// Ender finishes a timing started by BumpTime.
type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client that prefixes every key with pkgName.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// an empty host tag strips the agent's host tags from
				// the series
				"host:",
				"pod:" + env.PodName(),
				"env:" + viper.GetString("env_name"),
				"app:" + viper.GetString("app_name"),
			},
		},
	}
}

type Metrics struct {
	pkgName string
	datadog DDMetrics
}

// guard keeps a malformed tag list from taking the caller down, odd
// length lists panic inside the datadog layer
func (mt *Metrics) guard(op, key string, tags []string) func() {
	return func() {
		if p := recover(); p != nil {
			mt.datadog.BumpSum(op+".panic", 1, "tag", mt.pkgName+"."+key+"#"+strings.Join(tags, "#"))
		}
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.guard("bumpavg", key, tags)()
	mt.datadog.BumpAvg(mt.pkgName+"."+key, val, tags...)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.guard("bumpsum", key, tags)()
	mt.datadog.BumpSum(mt.pkgName+"."+key, val, tags...)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.guard("bumphistogram", key, tags)()
	mt.datadog.BumpHistogram(mt.pkgName+"."+key, val, tags...)
}

// BumpTime starts a timer. End it to record the duration, usually at
// the top of a function:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		end:   mt.datadog.BumpTime(mt.pkgName+"."+key, tags...),
		guard: mt.guard("bumptime", key, tags),
	}
}

type timeTracker struct {
	end   Ender
	guard func()
}

func (t *timeTracker) End() {
	defer t.guard()
	t.end.End()
}
