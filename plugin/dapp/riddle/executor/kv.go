// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"
	"fmt"

	"github.com/33cn/riddlerush/common/address"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
)

var (
	challengePrefix  = []byte("challenge")
	submissionPrefix = []byte("submission")
	globalConfigKey  = []byte("global_config")
)

// 本地索引
const (
	setterIndexPrefix    = "LODB-riddle-setter:"
	submitterIndexPrefix = "LODB-riddle-submitter:"
)

// ChallengeKey "challenge"‖id小端8字节
func ChallengeKey(id uint64) []byte {
	key := make([]byte, 0, len(challengePrefix)+8)
	key = append(key, challengePrefix...)
	return binary.LittleEndian.AppendUint64(key, id)
}

func challengeName(id uint64) string {
	return fmt.Sprintf("%s-challenge-%d", rty.RiddleX, id)
}

// ChallengeAddress 挑战资金所在的地址
func ChallengeAddress(id uint64) string {
	return address.ExecAddress(challengeName(id))
}

// ChallengePDA 挑战账户的32字节公钥，用于提交的key
func ChallengePDA(id uint64) []byte {
	return address.ExecPubKey(challengeName(id))
}

// SubmissionPrefix 一个挑战下所有提交的key前缀
func SubmissionPrefix(id uint64) []byte {
	pda := ChallengePDA(id)
	key := make([]byte, 0, len(submissionPrefix)+len(pda))
	key = append(key, submissionPrefix...)
	return append(key, pda...)
}

// SubmissionKey "submission"‖pda‖submitter
func SubmissionKey(id uint64, submitter string) []byte {
	return append(SubmissionPrefix(id), submitter...)
}

func calcSetterIndexKey(addr string, id uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", setterIndexPrefix, addr, id))
}

func calcSetterIndexPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s:", setterIndexPrefix, addr))
}

func calcSubmitterIndexKey(addr string, id uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", submitterIndexPrefix, addr, id))
}

func calcSubmitterIndexPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("%s%s:", submitterIndexPrefix, addr))
}
