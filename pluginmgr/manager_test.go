// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/33cn/riddlerush/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndInit(t *testing.T) {
	var gotName string
	var gotSub []byte
	Register(&PluginBase{
		Name:     "mgrtest",
		ExecName: "mgrtest",
		Exec: func(name string, sub []byte) {
			gotName = name
			gotSub = sub
		},
		Cmd: func() *cobra.Command {
			return &cobra.Command{Use: "mgrtest"}
		},
	})
	assert.True(t, HasExec("mgrtest"))
	assert.False(t, HasExec("none"))

	cfg, err := types.InitCfgString(`
[store]
name="memdb"
[exec.sub.mgrtest]
maxSubmissions=3
`)
	require.Nil(t, err)
	require.Nil(t, InitExec(cfg))
	assert.Equal(t, "mgrtest", gotName)
	assert.JSONEq(t, `{"maxSubmissions":3}`, string(gotSub))

	require.Nil(t, InitExec(nil))
	assert.Nil(t, gotSub)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	cmd, _, err := root.Find([]string{"mgrtest"})
	require.Nil(t, err)
	assert.Equal(t, "mgrtest", cmd.Use)

	assert.Panics(t, func() {
		Register(&PluginBase{Name: "mgrtest"})
	})
	assert.Panics(t, func() {
		Register(&PluginBase{})
	})
}
