// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("riddle")
	require.Nil(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("riddle"))
	assert.NotEqual(t, addr, ExecAddress("riddle-challenge-1"))
	assert.Equal(t, PubKeyToAddress(ExecPubKey("riddle")).String(), addr)
	assert.Len(t, ExecPubKey("riddle"), 32)
}

func TestCheckAddress(t *testing.T) {
	addr := ExecAddress("coins")
	a, err := NewAddrFromString(addr)
	require.Nil(t, err)
	assert.Equal(t, addr, a.String())
	assert.Equal(t, byte(0), a.Version)

	assert.Equal(t, ErrDecodeBase58, CheckAddress(""))
	assert.NotNil(t, CheckAddress("1abc"))

	//修改最后一个字符破坏校验和
	bad := []byte(addr)
	if bad[len(bad)-1] == '2' {
		bad[len(bad)-1] = '3'
	} else {
		bad[len(bad)-1] = '2'
	}
	assert.NotNil(t, CheckAddress(string(bad)))
	//缓存命中
	assert.NotNil(t, CheckAddress(string(bad)))
}

func TestExecPubKeyNameTooLong(t *testing.T) {
	name := make([]byte, MaxExecNameLength+1)
	assert.Panics(t, func() { ExecPubKey(string(name)) })
}
