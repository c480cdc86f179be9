// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drivers 执行器驱动的接口定义和公共实现
package drivers

import (
	"reflect"
	"sync"

	"github.com/33cn/riddlerush/account"
	"github.com/33cn/riddlerush/common/address"
	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// StateDB 执行器看到的状态数据库，支持前缀列表
type StateDB interface {
	dbm.KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

// Driver 执行器驱动
type Driver interface {
	SetStateDB(StateDB)
	GetStateDB() StateDB
	SetLocalDB(dbm.KV)
	GetLocalDB() dbm.KV
	SetQueryDB(dbm.IteratorDB)
	GetName() string
	GetActionName(tx *types.Transaction) string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 驱动的公共部分，具体执行器嵌入它并SetChild
type DriverBase struct {
	statedb      StateDB
	localdb      dbm.KV
	querydb      dbm.IteratorDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	mu           sync.Mutex
	child        Driver
	childValue   reflect.Value
}

// SetEnv 设置执行的高度和时间
func (n *DriverBase) SetEnv(height, blocktime int64) {
	n.height = height
	n.blocktime = blocktime
}

// SetChild 设置具体的执行器
func (n *DriverBase) SetChild(e Driver) {
	n.child = e
	n.childValue = reflect.ValueOf(e)
}

// GetAddr 执行器地址
func (n *DriverBase) GetAddr() string {
	return ExecAddress(n.child.GetName())
}

// ExecLocal 默认没有本地索引
func (n *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// CheckTx 默认不检查
func (n *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec 默认不支持任何action
func (n *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// Query 按名字调用子执行器的 Query_<funcName> 方法
func (n *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	method, ok := queryMethod(n.childValue.Type(), funcName)
	if !ok {
		blog.Error("Query", "exec", n.child.GetName(), "funcname", funcName, "err", types.ErrQueryNotSupport)
		return nil, types.ErrQueryNotSupport
	}
	ty := method.Type.In(1)
	param := reflect.New(ty.Elem())
	msg, ok := param.Interface().(types.Message)
	if !ok {
		return nil, types.ErrInvalidParam
	}
	if err := types.Decode(params, msg); err != nil {
		return nil, types.ErrDecode
	}
	out := method.Func.Call([]reflect.Value{n.childValue, param})
	if err, ok := out[1].Interface().(error); ok && err != nil {
		return nil, err
	}
	if out[0].IsNil() {
		return nil, types.ErrEmpty
	}
	return out[0].Interface().(types.Message), nil
}

// SetStateDB set
func (n *DriverBase) SetStateDB(db StateDB) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statedb = db
	n.coinsaccount = nil
}

// GetStateDB get
func (n *DriverBase) GetStateDB() StateDB {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.statedb
}

// GetCoinsAccount 基于当前状态数据库的账户
func (n *DriverBase) GetCoinsAccount() *account.DB {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.coinsaccount == nil {
		n.coinsaccount = account.NewCoinsAccount(n.statedb)
	}
	return n.coinsaccount
}

// SetLocalDB set
func (n *DriverBase) SetLocalDB(db dbm.KV) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localdb = db
}

// GetLocalDB get
func (n *DriverBase) GetLocalDB() dbm.KV {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.localdb
}

// SetQueryDB 查询列表时使用的只读数据库
func (n *DriverBase) SetQueryDB(db dbm.IteratorDB) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.querydb = db
}

// GetQueryDB get
func (n *DriverBase) GetQueryDB() dbm.IteratorDB {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.querydb
}

// GetHeight 当前执行的高度
func (n *DriverBase) GetHeight() int64 {
	return n.height
}

// GetBlockTime 执行时读到的时间，整个执行过程中不变
func (n *DriverBase) GetBlockTime() int64 {
	return n.blocktime
}

// GetName 子执行器需要覆盖
func (n *DriverBase) GetName() string {
	return "driver"
}

// GetActionName 默认的action名
func (n *DriverBase) GetActionName(tx *types.Transaction) string {
	return "unknown"
}

// ExecAddress 执行器的地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
