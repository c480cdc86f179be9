// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/riddlerush/common/log"
	_ "github.com/33cn/riddlerush/plugin"
	"github.com/33cn/riddlerush/pluginmgr"
	"github.com/33cn/riddlerush/system/dapp/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riddle-cli",
	Short: "riddle challenge client tools",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "riddle.toml", "config file")
	rootCmd.PersistentFlags().String("key", "", "hex private key used to sign transactions")
	rootCmd.PersistentFlags().Int64("time", 0, "execution time(unix seconds), system time if 0")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.KeygenCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
