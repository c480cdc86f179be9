// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
)

var blog = dlog.New("backend", "gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

// GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badgerLog 把badger的日志转到log15
type badgerLog struct{}

func (l *badgerLog) Errorf(f string, v ...interface{}) {
	blog.Error(fmt.Sprintf(f, v...))
}

func (l *badgerLog) Warningf(f string, v ...interface{}) {
	blog.Warn(fmt.Sprintf(f, v...))
}

func (l *badgerLog) Infof(f string, v ...interface{}) {
	blog.Info(fmt.Sprintf(f, v...))
}

func (l *badgerLog) Debugf(f string, v ...interface{}) {
	blog.Debug(fmt.Sprintf(f, v...))
}

// NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, _ int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(&badgerLog{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

// Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

// Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

// SetSync badger默认同步写
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

// Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

// DeleteSync 同步删除
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

// Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

// Iterator 前缀迭代器
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{it: it, txn: txn, prefix: cloneByte(prefix), reverse: reverse}
}

type goBadgerDBIt struct {
	it      *badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		dbit.it.Seek(dbit.prefix)
		return dbit.Valid()
	}
	limit := bytesPrefix(dbit.prefix)
	if limit == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	dbit.it.Seek(limit)
	if dbit.it.Valid() && bytes.Equal(dbit.it.Item().Key(), limit) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

// Seek badger逆序时Seek本身就是定位到<=key的位置
func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.it.ValidForPrefix(dbit.prefix)
}

func (dbit *goBadgerDBIt) Key() []byte {
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		dbit.err = err
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

// NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db   *GoBadgerDB
	ops  []kv
	size int
}

type kv struct {
	k, v []byte
	del  bool
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.ops = append(mBatch.ops, kv{k: cloneByte(key), v: cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.ops = append(mBatch.ops, kv{k: cloneByte(key), del: true})
	mBatch.size++
}

// Write 一个事务内写入，超过事务上限时返回错误，不做部分提交
func (mBatch *goBadgerDBBatch) Write() error {
	txn := mBatch.db.db.NewTransaction(true)
	defer txn.Discard()
	var err error
	for _, op := range mBatch.ops {
		if op.del {
			err = txn.Delete(op.k)
		} else {
			err = txn.Set(op.k, op.v)
		}
		if err != nil {
			blog.Error("Write", "error", err)
			return err
		}
	}
	err = txn.Commit()
	if err != nil {
		blog.Error("Write commit", "error", err)
	}
	return err
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.ops = mBatch.ops[:0]
	mBatch.size = 0
}
