// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/types"
)

// ExecLocal 按出题人和提交人建立挑战的索引，挑战关闭时删除
func (r *Riddle) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set, err := r.DriverBase.ExecLocal(tx, receipt, index)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.GetLogs() {
		if item.Ty < rty.TyLogRiddleInit || item.Ty > rty.TyLogRiddleSetterClose {
			continue
		}
		var riddlelog rty.ReceiptRiddle
		err := types.Decode(item.Log, &riddlelog)
		if err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, r.updateIndex(&riddlelog)...)
	}
	return set, nil
}

// 更新索引
func (r *Riddle) updateIndex(log *rty.ReceiptRiddle) (kvs []*types.KeyValue) {
	switch log.Action {
	case rty.RiddleActionCreate:
		kvs = append(kvs, addSetterIndex(log.Setter, log.ChallengeId))
	case rty.RiddleActionSubmit:
		kvs = append(kvs, addSubmitterIndex(log.Addr, log.ChallengeId))
	case rty.RiddleActionSetterClose:
		kvs = append(kvs, delSetterIndex(log.Setter, log.ChallengeId))
		for _, addr := range log.Submitters {
			kvs = append(kvs, delSubmitterIndex(addr, log.ChallengeId))
		}
	}
	return kvs
}

func addSetterIndex(addr string, id uint64) *types.KeyValue {
	record := &rty.RiddleRecord{ChallengeId: id, Addr: addr}
	return &types.KeyValue{Key: calcSetterIndexKey(addr, id), Value: types.Encode(record)}
}

func addSubmitterIndex(addr string, id uint64) *types.KeyValue {
	record := &rty.RiddleRecord{ChallengeId: id, Addr: addr}
	return &types.KeyValue{Key: calcSubmitterIndexKey(addr, id), Value: types.Encode(record)}
}

func delSetterIndex(addr string, id uint64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcSetterIndexKey(addr, id), Value: nil}
}

func delSubmitterIndex(addr string, id uint64) *types.KeyValue {
	return &types.KeyValue{Key: calcSubmitterIndexKey(addr, id), Value: nil}
}
