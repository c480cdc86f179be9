// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"

	"github.com/33cn/riddlerush/common"
	"github.com/33cn/riddlerush/common/address"
	"github.com/33cn/riddlerush/common/crypto"
	"github.com/33cn/riddlerush/common/crypto/secp256k1"
	"github.com/33cn/riddlerush/types"
	"github.com/spf13/cobra"
)

// KeyResult 新生成的私钥
type KeyResult struct {
	PrivKey string `json:"privkey"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

// BalanceResult 地址余额
type BalanceResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
	Amount  int64  `json:"amount"`
}

// KeygenCmd 生成新的secp256k1私钥
func KeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new secp256k1 private key",
		Run:   keygen,
	}
	return cmd
}

func keygen(cmd *cobra.Command, args []string) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	pub := priv.PubKey().Bytes()
	PrintJSON(&KeyResult{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddress(pub).String(),
	})
}

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		GenesisCmd(),
		GetBalanceCmd(),
	)

	return cmd
}

// GenesisCmd 执行第一笔交易之前给地址分配余额
func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Mint balance to an address before any transaction",
		Run:   genesis,
	}
	addGenesisFlags(cmd)
	return cmd
}

func addGenesisFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
}

func genesis(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	if err := address.CheckAddress(addr); err != nil {
		fmt.Fprintln(os.Stderr, types.ErrInvalidAddress)
		return
	}
	amount, err := types.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	if _, err := ctx.Executor().Genesis(addr, amount); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printBalance(ctx, addr)
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account addr")
	cmd.MarkFlagRequired("addr")
}

func balance(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	if err := address.CheckAddress(addr); err != nil {
		fmt.Fprintln(os.Stderr, types.ErrInvalidAddress)
		return
	}
	ctx, err := NewExecCtx(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer ctx.Close()
	printBalance(ctx, addr)
}

func printBalance(ctx *ExecCtx, addr string) {
	amount := ctx.Executor().Balance(addr)
	PrintJSON(&BalanceResult{Addr: addr, Balance: types.FormatAmount(amount), Amount: amount})
}
