// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drivers

import (
	"errors"
	"testing"

	"github.com/33cn/riddlerush/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	DriverBase
}

func newEcho() Driver {
	e := &echo{}
	e.SetChild(e)
	return e
}

func (e *echo) GetName() string { return "echo" }

func (e *echo) Query_Echo(in *types.Int64) (types.Message, error) {
	if in.Data < 0 {
		return nil, errors.New("negative")
	}
	return &types.Int64{Data: in.Data + 1}, nil
}

func (e *echo) Query_Nil(in *types.ReqNil) (types.Message, error) {
	return nil, nil
}

// 签名不对，不会被当作查询方法
func (e *echo) Query_Bad(in int) error {
	return nil
}

func init() {
	Register("echo", newEcho, 10)
}

func TestQueryDispatch(t *testing.T) {
	d, err := LoadDriver("echo", -1)
	require.Nil(t, err)

	reply, err := d.Query("Echo", types.Encode(&types.Int64{Data: 41}))
	require.Nil(t, err)
	assert.Equal(t, int64(42), reply.(*types.Int64).Data)

	_, err = d.Query("Echo", types.Encode(&types.Int64{Data: -1}))
	assert.EqualError(t, err, "negative")

	_, err = d.Query("Nil", nil)
	assert.Equal(t, types.ErrEmpty, err)

	_, err = d.Query("Bad", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = d.Query("None", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)

	_, err = d.Query("Echo", []byte{0xff, 0xff})
	assert.Equal(t, types.ErrDecode, err)

	methods := ListMethod(d)
	assert.Len(t, methods, 2)
}

func TestLoadDriver(t *testing.T) {
	_, err := LoadDriver("echo", 9)
	assert.Equal(t, types.ErrExecNotFound, err)
	d, err := LoadDriver("echo", 10)
	require.Nil(t, err)
	assert.Equal(t, "echo", d.GetName())
	assert.Equal(t, ExecAddress("echo"), d.(*echo).GetAddr())
	assert.True(t, IsDriverAddress(ExecAddress("echo")))
	assert.Contains(t, ListDrivers(), "echo")

	_, err = LoadDriver("none", -1)
	assert.Equal(t, types.ErrExecNotFound, err)
	assert.Panics(t, func() { Register("echo", newEcho, 0) })

	_, err = d.Exec(&types.Transaction{}, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	set, err := d.ExecLocal(&types.Transaction{}, &types.ReceiptData{}, 0)
	require.Nil(t, err)
	assert.Len(t, set.KV, 0)
}
