// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
)

// 按执行器统计成功、失败次数和耗时
type execMetrics struct {
	mu       sync.Mutex
	registry gometrics.Registry
	ok       map[string]gometrics.Counter
	fail     map[string]gometrics.Counter
	timer    map[string]gometrics.Timer
}

func newExecMetrics() *execMetrics {
	return &execMetrics{
		registry: gometrics.DefaultRegistry,
		ok:       make(map[string]gometrics.Counter),
		fail:     make(map[string]gometrics.Counter),
		timer:    make(map[string]gometrics.Timer),
	}
}

// record 未开启统计时m为nil
func (m *execMetrics) record(name string, begin time.Time, err error) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.timer[name]; !ok {
		m.ok[name] = gometrics.GetOrRegisterCounter("exec."+name+".ok", m.registry)
		m.fail[name] = gometrics.GetOrRegisterCounter("exec."+name+".fail", m.registry)
		m.timer[name] = gometrics.GetOrRegisterTimer("exec."+name+".time", m.registry)
	}
	m.timer[name].UpdateSince(begin)
	if err != nil {
		m.fail[name].Inc(1)
		return
	}
	m.ok[name].Inc(1)
}
