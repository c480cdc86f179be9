// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/riddlerush/common"
	"github.com/33cn/riddlerush/common/address"
	"github.com/33cn/riddlerush/common/crypto"
	"github.com/33cn/riddlerush/common/crypto/secp256k1"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.Nil(t, err)
	assert.Equal(t, "goleveldb", cfg.Store.Name)
	assert.Equal(t, "datadir", cfg.Store.DbPath)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Nil(t, err)
	assert.Equal(t, "local", cfg.Title)

	path := filepath.Join(t.TempDir(), "riddle.toml")
	require.Nil(t, os.WriteFile(path, []byte("[store]\nname=\"memdb\"\n"), 0600))
	cfg, err = LoadConfig(path)
	require.Nil(t, err)
	assert.Equal(t, "memdb", cfg.Store.Name)

	require.Nil(t, os.WriteFile(path, []byte("[store]\nname=\"mysql\"\n"), 0600))
	_, err = LoadConfig(path)
	assert.NotNil(t, err)
}

func TestDecodePrivKey(t *testing.T) {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	priv, err := c.GenKey()
	require.Nil(t, err)

	decoded, err := DecodePrivKey(common.ToHex(priv.Bytes()))
	require.Nil(t, err)
	assert.True(t, priv.Equals(decoded))

	_, err = DecodePrivKey("0xzz")
	assert.NotNil(t, err)
}

func newTestCmd(t *testing.T, key string) *cobra.Command {
	path := filepath.Join(t.TempDir(), "riddle.toml")
	require.Nil(t, os.WriteFile(path, []byte("[store]\nname=\"goleveldb\"\ndbPath=\""+filepath.Join(t.TempDir(), "datadir")+"\"\n"), 0600))
	cmd := &cobra.Command{}
	cmd.Flags().String("conf", path, "")
	cmd.Flags().String("key", key, "")
	cmd.Flags().Int64("time", 100, "")
	return cmd
}

func TestExecCtx(t *testing.T) {
	c, err := crypto.New(secp256k1.Name)
	require.Nil(t, err)
	priv, err := c.GenKey()
	require.Nil(t, err)
	addr := address.PubKeyToAddress(priv.PubKey().Bytes()).String()

	ctx, err := NewExecCtx(newTestCmd(t, common.ToHex(priv.Bytes())))
	require.Nil(t, err)
	defer ctx.Close()
	assert.Equal(t, addr, ctx.From())
	assert.Equal(t, int64(100), ctx.Executor().Now())

	_, err = ctx.Executor().Genesis(addr, 1000)
	require.Nil(t, err)
	assert.Equal(t, int64(1000), ctx.Executor().Balance(addr))

	noKey, err := NewExecCtx(newTestCmd(t, ""))
	require.Nil(t, err)
	defer noKey.Close()
	assert.Equal(t, "", noKey.From())
	_, _, err = noKey.SendTx("none", nil)
	assert.Equal(t, ErrNoKey, err)
}
