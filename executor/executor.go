// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行引擎：加载执行器，在状态视图上执行交易，并把状态、本地索引和高度原子写入
package executor

import (
	"time"

	"github.com/33cn/riddlerush/account"
	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/executor/drivers"
	"github.com/33cn/riddlerush/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
)

var elog = log.New("module", "execs")

var (
	heightKey  = []byte("LODB-executor-height")
	genesisKey = []byte("LODB-executor-genesis")
	txPrefix   = []byte("LODB-executor-tx:")
)

// Executor 执行引擎，所有交易串行执行
type Executor struct {
	mu      deadlock.Mutex
	cfg     *types.Config
	db      dbm.DB
	clock   Clock
	height  int64
	closed  bool
	metrics *execMetrics
}

// New 创建执行引擎，第一次启动时根据配置做创世分配
func New(cfg *types.Config, db dbm.DB, clock Clock) (*Executor, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	exec := &Executor{cfg: cfg, db: db, clock: clock}
	if cfg != nil && cfg.Exec != nil && cfg.Exec.EnableStat {
		exec.metrics = newExecMetrics()
	}
	height, err := exec.loadInt64(heightKey)
	if err != nil {
		return nil, err
	}
	exec.height = height
	if cfg != nil && height == 0 {
		if err := exec.genesisInit(cfg.Genesis); err != nil {
			return nil, err
		}
	}
	return exec, nil
}

func (exec *Executor) loadInt64(key []byte) (int64, error) {
	value, err := exec.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "load "+string(key))
	}
	var v types.Int64
	if err := types.Decode(value, &v); err != nil {
		return 0, errors.Wrap(err, "decode "+string(key))
	}
	return v.Data, nil
}

// 配置中的创世账户只分配一次
func (exec *Executor) genesisInit(accounts []*types.GenesisAccount) error {
	done, err := exec.loadInt64(genesisKey)
	if err != nil {
		return err
	}
	if done != 0 || len(accounts) == 0 {
		return nil
	}
	state := NewStateDB(exec.db)
	acc := account.NewCoinsAccount(state)
	for _, g := range accounts {
		if _, err := acc.GenesisInit(g.Addr, g.Amount); err != nil {
			elog.Error("genesisInit", "addr", g.Addr, "amount", g.Amount, "err", err)
			return err
		}
	}
	batch := exec.db.NewBatch(true)
	state.Flush(batch)
	batch.Set(genesisKey, types.Encode(&types.Int64{Data: 1}))
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "genesis batch write")
	}
	elog.Info("genesisInit", "accounts", len(accounts))
	return nil
}

// Genesis 在执行任何交易之前给地址分配余额
func (exec *Executor) Genesis(addr string, amount int64) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecClosed
	}
	if exec.height != 0 {
		return nil, types.ErrGenesisNotAllowed
	}
	state := NewStateDB(exec.db)
	receipt, err := account.NewCoinsAccount(state).GenesisInit(addr, amount)
	if err != nil {
		return nil, err
	}
	batch := exec.db.NewBatch(true)
	state.Flush(batch)
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "genesis batch write")
	}
	return receipt, nil
}

// Balance 地址的余额
func (exec *Executor) Balance(addr string) int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return account.NewCoinsAccount(NewStateDB(exec.db)).LoadAccount(addr).GetBalance()
}

// Height 已经执行的交易数
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// Now 执行引擎的时间
func (exec *Executor) Now() int64 {
	return exec.clock.Now()
}

func (exec *Executor) loadDriver(name string, state *StateDB, blocktime int64) (drivers.Driver, error) {
	d, err := drivers.LoadDriver(name, exec.height)
	if err != nil {
		return nil, err
	}
	d.SetStateDB(state)
	d.SetLocalDB(NewLocalDB(exec.db))
	d.SetQueryDB(NewLocalDB(exec.db))
	d.SetEnv(exec.height, blocktime)
	return d, nil
}

// Exec 执行一笔交易，成功时状态、本地索引、交易回执和高度一次写入；失败时不留下任何修改
func (exec *Executor) Exec(tx *types.Transaction) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecClosed
	}
	if tx == nil {
		return nil, types.ErrNilTransaction
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	name := string(tx.Execer)
	begin := time.Now()
	receipt, err := exec.execTx(tx)
	exec.metrics.record(name, begin, err)
	if err != nil {
		elog.Debug("Exec", "execer", name, "from", tx.From(), "err", err)
		return nil, err
	}
	return receipt, nil
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.Receipt, error) {
	hash := tx.Hash()
	txkey := append(append([]byte{}, txPrefix...), hash...)
	if _, err := exec.db.Get(txkey); err == nil {
		return nil, types.ErrTxDup
	}
	blocktime := exec.clock.Now()
	state := NewStateDB(exec.db)
	d, err := exec.loadDriver(string(tx.Execer), state, blocktime)
	if err != nil {
		return nil, err
	}
	if err := d.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	state.Begin()
	receipt, err := d.Exec(tx, 0)
	if err != nil {
		state.Rollback()
		return nil, err
	}
	state.Commit()
	data := &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}
	set, err := d.ExecLocal(tx, data, 0)
	if err != nil {
		return nil, err
	}
	batch := exec.db.NewBatch(true)
	state.Flush(batch)
	for _, kv := range set.GetKV() {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	batch.Set(txkey, types.Encode(data))
	batch.Set(heightKey, types.Encode(&types.Int64{Data: exec.height + 1}))
	if err := batch.Write(); err != nil {
		return nil, errors.Wrap(err, "exec batch write")
	}
	exec.height++
	return receipt, nil
}

// GetTxReceipt 按交易hash查询执行回执
func (exec *Executor) GetTxReceipt(hash []byte) (*types.ReceiptData, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	value, err := exec.db.Get(append(append([]byte{}, txPrefix...), hash...))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var data types.ReceiptData
	if err := types.Decode(value, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Query 只读查询，调用执行器的 Query_<funcName>
func (exec *Executor) Query(execer string, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return nil, types.ErrExecClosed
	}
	d, err := exec.loadDriver(execer, NewStateDB(exec.db), exec.clock.Now())
	if err != nil {
		return nil, err
	}
	return d.Query(funcName, types.Encode(param))
}

// Close 关闭数据库
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if exec.closed {
		return
	}
	exec.closed = true
	exec.db.Close()
}
