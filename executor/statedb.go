// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"
	"sort"

	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/types"
	"github.com/pkg/errors"
)

// StateDB 状态数据库的内存视图，写入先进入txcache，Commit后进入cache，Flush时落盘
type StateDB struct {
	db      dbm.DB
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		db:    db,
		cache: make(map[string][]byte),
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit 事务内的修改并入cache
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notNil(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notNil(value)
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "statedb get")
	}
	return value, nil
}

// nil值表示已经删除
func notNil(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db，value为nil表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys 当前事务内修改过的key
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// List 在数据库和未落盘的修改合并之后做前缀列表
func (s *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	merged := make(map[string][]byte)
	it := s.db.Iterator(prefix, false)
	for it.Rewind(); it.Valid(); it.Next() {
		merged[string(it.Key())] = it.ValueCopy()
	}
	err := it.Error()
	it.Close()
	if err != nil {
		return nil, errors.Wrap(err, "statedb list")
	}
	overlay := func(m map[string][]byte) {
		for k, v := range m {
			if !bytes.HasPrefix([]byte(k), prefix) {
				continue
			}
			if v == nil {
				delete(merged, k)
			} else {
				merged[k] = v
			}
		}
	}
	overlay(s.cache)
	if s.intx {
		overlay(s.txcache)
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if direction == dbm.ListDESC {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}
	var values [][]byte
	started := len(key) == 0
	for _, k := range keys {
		if !started {
			if direction == dbm.ListDESC {
				started = k < string(key)
			} else {
				started = k > string(key)
			}
			if !started {
				continue
			}
		}
		values = append(values, merged[k])
		if count > 0 && int32(len(values)) == count {
			break
		}
	}
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}

// Flush 把cache写入batch，然后清空cache
func (s *StateDB) Flush(batch dbm.Batch) {
	for k, v := range s.cache {
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	s.cache = make(map[string][]byte)
}

// KVs 已提交但未落盘的修改，按key排序
func (s *StateDB) KVs() []*types.KeyValue {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, 0, len(keys))
	for _, k := range keys {
		kvs = append(kvs, &types.KeyValue{Key: []byte(k), Value: s.cache[k]})
	}
	return kvs
}
