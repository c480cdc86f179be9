// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync/atomic"
	"time"
)

// Clock 执行时间来源，秒
type Clock interface {
	Now() int64
}

// SystemClock 系统时间
type SystemClock struct{}

// Now now
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// ManualClock 手动设置的时间，测试和命令行指定时间时使用
type ManualClock struct {
	t int64
}

// NewManualClock new
func NewManualClock(t int64) *ManualClock {
	return &ManualClock{t: t}
}

// Now now
func (c *ManualClock) Now() int64 {
	return atomic.LoadInt64(&c.t)
}

// Set 设置时间
func (c *ManualClock) Set(t int64) {
	atomic.StoreInt64(&c.t, t)
}
