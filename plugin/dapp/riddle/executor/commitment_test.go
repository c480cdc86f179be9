// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/riddlerush/common"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCommit(t *testing.T) {
	c := Commit("7", "na")
	assert.Equal(t, 32, len(c))
	assert.Equal(t, common.Keccak256([]byte("7na")), c)
	//没有分隔符，拼接相同的两组输入承诺相同
	assert.Equal(t, Commit("7n", "a"), c)
	assert.True(t, VerifyCommit("7", "na", c))
	assert.False(t, VerifyCommit("7", "nb", c))
	assert.False(t, VerifyCommit("7", "na", c[:31]))
	assert.False(t, VerifyCommit("7", "na", nil))
}

func TestCommitVerify(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		answer := rapid.String().Draw(t, "answer")
		nonce := rapid.String().Draw(t, "nonce")
		c := Commit(answer, nonce)
		if !VerifyCommit(answer, nonce, c) {
			t.Fatalf("verify %q %q", answer, nonce)
		}
		other := rapid.String().Draw(t, "other")
		if other != answer+nonce && VerifyCommit(other, "", c) {
			t.Fatalf("collision %q", other)
		}
	})
}
