// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"sort"
	"sync"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存数据库，测试和命令行试玩使用
type GoMemDB struct {
	mtx sync.RWMutex
	db  map[string][]byte
}

// NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

// Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	db.set(key, value)
	return nil
}

func (db *GoMemDB) set(key []byte, value []byte) {
	db.db[string(key)] = cloneByte(value)
}

// SetSync 同步写
func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	delete(db.db, string(key))
	return nil
}

// DeleteSync 同步删除
func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoMemDB) Close() {}

// Iterator 迭代器持有创建时刻的快照
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	it := &goMemDBIt{reverse: reverse, index: -1}
	for k, v := range db.db {
		if bytes.HasPrefix([]byte(k), prefix) {
			it.keys = append(it.keys, k)
			it.values = append(it.values, v)
		}
	}
	sort.Sort(it)
	return it
}

type goMemDBIt struct {
	keys    []string
	values  [][]byte
	reverse bool
	index   int
}

func (dbit *goMemDBIt) Len() int           { return len(dbit.keys) }
func (dbit *goMemDBIt) Less(i, j int) bool { return dbit.keys[i] < dbit.keys[j] }
func (dbit *goMemDBIt) Swap(i, j int) {
	dbit.keys[i], dbit.keys[j] = dbit.keys[j], dbit.keys[i]
	dbit.values[i], dbit.values[j] = dbit.values[j], dbit.values[i]
}

func (dbit *goMemDBIt) Rewind() bool {
	if dbit.reverse {
		dbit.index = len(dbit.keys) - 1
	} else {
		dbit.index = 0
	}
	return dbit.Valid()
}

func (dbit *goMemDBIt) Next() bool {
	if dbit.reverse {
		dbit.index--
	} else {
		dbit.index++
	}
	return dbit.Valid()
}

func (dbit *goMemDBIt) Seek(key []byte) bool {
	k := string(key)
	i := sort.SearchStrings(dbit.keys, k)
	if dbit.reverse && (i == len(dbit.keys) || dbit.keys[i] != k) {
		i--
	}
	dbit.index = i
	return dbit.Valid()
}

func (dbit *goMemDBIt) Valid() bool {
	return dbit.index >= 0 && dbit.index < len(dbit.keys)
}

func (dbit *goMemDBIt) Key() []byte {
	return []byte(dbit.keys[dbit.index])
}

func (dbit *goMemDBIt) Value() []byte {
	return dbit.values[dbit.index]
}

func (dbit *goMemDBIt) ValueCopy() []byte {
	return cloneByte(dbit.values[dbit.index])
}

func (dbit *goMemDBIt) Error() error { return nil }

func (dbit *goMemDBIt) Close() {}

// NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db   *GoMemDB
	ops  []kv
	size int
}

func (b *memBatch) Set(key, value []byte) {
	b.ops = append(b.ops, kv{k: cloneByte(key), v: cloneByte(value)})
	b.size += len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, kv{k: cloneByte(key), del: true})
	b.size++
}

// Write 整批在一把锁内写入
func (b *memBatch) Write() error {
	b.db.mtx.Lock()
	defer b.db.mtx.Unlock()
	for _, op := range b.ops {
		if op.del {
			delete(b.db.db, string(op.k))
		} else {
			b.db.set(op.k, op.v)
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = b.ops[:0]
	b.size = 0
}
