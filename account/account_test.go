// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"math"
	"testing"

	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	addr2 = "1EDnnePAZN48aC2hiTDzhkczfF39g1pZZX"
)

func newTestAccountDB(t *testing.T) *DB {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.Nil(t, err)
	return NewCoinsAccount(db)
}

func TestGenesisInit(t *testing.T) {
	acc := newTestAccountDB(t)
	receipt, err := acc.GenesisInit(addr1, 1000*types.Coin)
	require.Nil(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, []byte("mavl-coins-bty-"+addr1), receipt.KV[0].Key)
	assert.Equal(t, 1000*types.Coin, acc.LoadAccount(addr1).Balance)

	_, err = acc.GenesisInit(addr1, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.GenesisInit(addr1, 1000)
	require.Nil(t, err)

	receipt, err := acc.Transfer(addr1, addr2, 300)
	require.Nil(t, err)
	require.Len(t, receipt.Logs, 2)
	require.Len(t, receipt.KV, 2)
	var r types.ReceiptAccountTransfer
	require.Nil(t, types.Decode(receipt.Logs[0].Log, &r))
	assert.Equal(t, int64(1000), r.Prev.Balance)
	assert.Equal(t, int64(700), r.Current.Balance)
	require.Nil(t, types.Decode(receipt.Logs[1].Log, &r))
	assert.Equal(t, int64(0), r.Prev.Balance)
	assert.Equal(t, int64(300), r.Current.Balance)

	accs := acc.LoadAccounts([]string{addr1, addr2})
	assert.Equal(t, int64(700), accs[0].Balance)
	assert.Equal(t, int64(300), accs[1].Balance)

	_, err = acc.Transfer(addr1, addr2, 701)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
	assert.Nil(t, acc.CheckTransfer(addr1, addr2, 700))
}

func TestTransferOverflow(t *testing.T) {
	acc := newTestAccountDB(t)
	acc.SaveAccount(&types.Account{Addr: addr2, Balance: math.MaxInt64 - 1})
	_, err := acc.GenesisInit(addr1, 10)
	require.Nil(t, err)
	_, err = acc.Transfer(addr1, addr2, 2)
	assert.Equal(t, types.ErrBalanceOverflow, err)
	_, err = acc.GenesisInit(addr2, 2)
	assert.Equal(t, types.ErrBalanceOverflow, err)
}
