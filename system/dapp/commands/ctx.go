// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 命令行公共部分：打开本地执行引擎，签名发送交易，执行查询
package commands

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/33cn/riddlerush/common"
	"github.com/33cn/riddlerush/common/address"
	"github.com/33cn/riddlerush/common/crypto"
	"github.com/33cn/riddlerush/common/crypto/secp256k1"
	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/common/log"
	"github.com/33cn/riddlerush/executor"
	"github.com/33cn/riddlerush/pluginmgr"
	"github.com/33cn/riddlerush/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// 没有配置文件时使用的默认配置
const defaultConfig = `
Title="local"
[store]
name="goleveldb"
dbPath="datadir"
dbCache=64
[exec]
enableStat=false
`

// ErrNoKey 发送交易时没有指定私钥
var ErrNoKey = errors.New("ErrNoKey")

// Callback 格式化结果
type Callback func(res interface{}) (interface{}, error)

// ExecCtx 一次命令的执行环境
type ExecCtx struct {
	cfg  *types.Config
	exec *executor.Executor
	priv crypto.PrivKey
}

// LoadConfig 读取--conf指定的配置，文件不存在时使用默认配置
func LoadConfig(path string) (*types.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return types.InitCfg(path)
		}
	}
	return types.InitCfgString(defaultConfig)
}

// NewExecCtx 按全局参数打开执行引擎
func NewExecCtx(cmd *cobra.Command) (*ExecCtx, error) {
	conf, _ := cmd.Flags().GetString("conf")
	key, _ := cmd.Flags().GetString("key")
	blocktime, _ := cmd.Flags().GetInt64("time")

	cfg, err := LoadConfig(conf)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	if err := pluginmgr.InitExec(cfg); err != nil {
		return nil, err
	}
	ctx := &ExecCtx{cfg: cfg}
	if key != "" {
		ctx.priv, err = DecodePrivKey(key)
		if err != nil {
			return nil, err
		}
	}
	db, err := dbm.NewDB("riddle", cfg.Store.Name, cfg.Store.DbPath, cfg.Store.DbCache)
	if err != nil {
		return nil, err
	}
	var clock executor.Clock
	if blocktime > 0 {
		clock = executor.NewManualClock(blocktime)
	}
	ctx.exec, err = executor.New(cfg, db, clock)
	if err != nil {
		db.Close()
		return nil, err
	}
	return ctx, nil
}

// DecodePrivKey hex编码的secp256k1私钥
func DecodePrivKey(key string) (crypto.PrivKey, error) {
	data, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(err, "decode key")
	}
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(data)
}

// Executor 执行引擎
func (c *ExecCtx) Executor() *executor.Executor {
	return c.exec
}

// From 私钥对应的地址
func (c *ExecCtx) From() string {
	if c.priv == nil {
		return ""
	}
	return address.PubKeyToAddress(c.priv.PubKey().Bytes()).String()
}

// SendTx 签名并执行一笔交易
func (c *ExecCtx) SendTx(execer string, action types.Message) (*types.Transaction, *types.Receipt, error) {
	if c.priv == nil {
		return nil, nil, ErrNoKey
	}
	tx := types.CreateTx(execer, action, rand.Int63())
	tx.Sign(secp256k1.ID, c.priv)
	receipt, err := c.exec.Exec(tx)
	if err != nil {
		return tx, nil, err
	}
	return tx, receipt, nil
}

// Query 只读查询
func (c *ExecCtx) Query(execer, funcName string, param types.Message) (types.Message, error) {
	return c.exec.Query(execer, funcName, param)
}

// Close 关闭数据库，开启统计时输出一次统计数据
func (c *ExecCtx) Close() {
	if c.cfg.Exec.EnableStat {
		gometrics.WriteOnce(gometrics.DefaultRegistry, os.Stderr)
	}
	c.exec.Close()
}

// TxResult 交易执行结果
type TxResult struct {
	Hash   string      `json:"hash"`
	From   string      `json:"from"`
	Height int64       `json:"height"`
	Logs   interface{} `json:"logs,omitempty"`
}

// RunTx 发送交易并输出结果，logs由cb格式化
func RunTx(cmd *cobra.Command, execer string, action types.Message, cb Callback) {
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	tx, receipt, err := ctx.SendTx(execer, action)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	result := &TxResult{Hash: common.ToHex(tx.Hash()), From: tx.From(), Height: ctx.exec.Height()}
	if cb != nil {
		result.Logs, err = cb(receipt.Logs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	PrintJSON(result)
}

// RunQuery 执行查询并输出结果
func RunQuery(cmd *cobra.Command, execer, funcName string, param types.Message, cb Callback) {
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	msg, err := ctx.Query(execer, funcName, param)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var result interface{} = msg
	if cb != nil {
		result, err = cb(msg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	PrintJSON(result)
}

// PrintJSON 缩进的json输出
func PrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(data))
}
