// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 框架公共的数据结构、编码、错误和配置
package types

import (
	"github.com/golang/protobuf/proto"
)

// Message 所有持久化和上链的记录
type Message = proto.Message

// 执行结果
const (
	ExecErr = 0
	ExecOk  = 2
)

// 框架日志类型，dapp的日志类型从100以后开始
const (
	TyLogErr      = 1
	TyLogFee      = 2
	TyLogTransfer = 3
	TyLogGenesis  = 4
)

// Encode 编码，失败时panic，记录都是内部构造的，不会失败
func Encode(data Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode 解码
func Decode(data []byte, msg Message) error {
	return proto.Unmarshal(data, msg)
}

// Size 编码后的长度
func Size(data Message) int {
	return proto.Size(data)
}

// Clone 深拷贝
func Clone(data Message) Message {
	return proto.Clone(data)
}

// CopyKV 拷贝一组kv
func CopyKV(kvs []*KeyValue) []*KeyValue {
	out := make([]*KeyValue, 0, len(kvs))
	for _, kv := range kvs {
		out = append(out, &KeyValue{Key: kv.Key, Value: kv.Value})
	}
	return out
}

// MergeReceipt 合并两个receipt，b追加到a之后
func MergeReceipt(a, b *Receipt) *Receipt {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	a.KV = append(a.KV, b.KV...)
	a.Logs = append(a.Logs, b.Logs...)
	return a
}
