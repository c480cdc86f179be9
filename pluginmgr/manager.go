// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/riddlerush/types"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
)

var plog = log.New("module", "pluginmgr")

var (
	pluginItems = make(map[string]Plugin)
	mu          sync.RWMutex
)

// Register 注册插件，名字重复时panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// 按名字排序，保证初始化和命令的顺序固定
func items() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Plugin, 0, len(names))
	for _, name := range names {
		list = append(list, pluginItems[name])
	}
	return list
}

// InitExec 用配置中的 exec.sub 初始化所有插件的执行器
func InitExec(cfg *types.Config) error {
	sub := make(map[string][]byte)
	if cfg != nil {
		var err error
		sub, err = cfg.GetSubConfig()
		if err != nil {
			return err
		}
	}
	for _, item := range items() {
		plog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
		item.InitExec(sub)
	}
	return nil
}

// HasExec 是否有插件提供这个执行器
func HasExec(name string) bool {
	for _, item := range items() {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// AddCmd 加入所有插件的命令
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}
