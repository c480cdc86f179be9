// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package riddle 谜题挑战：出题、提交承诺、公布答案、领取奖金
package riddle

import (
	"github.com/33cn/riddlerush/plugin/dapp/riddle/commands"
	"github.com/33cn/riddlerush/plugin/dapp/riddle/executor"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     rty.RiddleX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RiddleCmd,
	})
}
