// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 底层kv存储的统一接口以及goleveldb、badger、内存三种实现
package db

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

// ErrNotFoundInDb 数据库中不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 读写接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

// IteratorDB 前缀迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

// DB 数据库接口
type DB interface {
	KV
	IteratorDB
	SetSync(key []byte, value []byte) error
	Delete(key []byte) error
	DeleteSync(key []byte) error
	Close()
	NewBatch(sync bool) Batch
}

// Batch 批量原子写入
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

// Iterator 迭代器，只在prefix范围内有效
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//-----------------------------------------------------------------------------

// const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backends   = map[string]dbCreator{}
	backendsMu sync.Mutex
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 根据backend创建数据库
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, int(cache))
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// bytesPrefix 返回前缀的上界，nil表示没有上界
func bytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}
