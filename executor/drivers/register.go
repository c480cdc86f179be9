// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"sort"
	"sync"

	"github.com/33cn/riddlerush/types"
)

// DriverCreate 每笔交易都会创建一个新的驱动实例
type DriverCreate func() Driver

type driverWithHeight struct {
	create DriverCreate
	height int64
}

var (
	registedExecDriver = make(map[string]*driverWithHeight)
	execAddressNameMap = make(map[string]string)
	registerMu         sync.RWMutex
)

// Register 注册执行器，height之后生效
func Register(name string, create DriverCreate, height int64) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if len(name) == 0 {
		panic("empty name string")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = &driverWithHeight{create: create, height: height}
	execAddressNameMap[ExecAddress(name)] = name
}

// LoadDriver 按名字加载驱动，height为-1表示不检查高度
func LoadDriver(name string, height int64) (driver Driver, err error) {
	registerMu.RLock()
	c, ok := registedExecDriver[name]
	registerMu.RUnlock()
	if !ok {
		return nil, types.ErrExecNotFound
	}
	if height >= c.height || height == -1 {
		return c.create(), nil
	}
	return nil, types.ErrExecNotFound
}

// IsDriverAddress 地址是否是某个执行器的地址
func IsDriverAddress(addr string) bool {
	registerMu.RLock()
	defer registerMu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// ListDrivers 已经注册的执行器名字
func ListDrivers() []string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
