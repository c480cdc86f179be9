// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"bytes"

	"github.com/33cn/riddlerush/common"
)

// Commit keccak256(answer‖nonce)，两段文本直接拼接，没有分隔符和长度前缀
func Commit(answer, nonce string) []byte {
	return common.Keccak256([]byte(answer), []byte(nonce))
}

// VerifyCommit 逐字节比较
func VerifyCommit(answer, nonce string, commitment []byte) bool {
	return bytes.Equal(Commit(answer, nonce), commitment)
}
