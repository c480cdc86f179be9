// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/types"
	"github.com/pkg/errors"
)

// LocalDB 本地索引数据库，只读，ExecLocal返回的kv由执行器统一写入
type LocalDB struct {
	db dbm.DB
}

// NewLocalDB new
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{db: db}
}

// Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "localdb get")
	}
	return value, nil
}

// Set localdb不允许直接写
func (l *LocalDB) Set(key []byte, value []byte) error {
	return types.ErrActionNotSupport
}

// Iterator 前缀迭代
func (l *LocalDB) Iterator(prefix []byte, reverse bool) dbm.Iterator {
	return l.db.Iterator(prefix, reverse)
}
