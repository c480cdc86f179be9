// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/33cn/riddlerush/common"
	"github.com/33cn/riddlerush/plugin/dapp/riddle/executor"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	sc "github.com/33cn/riddlerush/system/dapp/commands"
	"github.com/33cn/riddlerush/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RiddleCmd riddle命令
func RiddleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "riddle",
		Short: "riddle challenge management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		RiddleInitCmd(),
		RiddleCreateCmd(),
		RiddleCommitCmd(),
		RiddleSubmitCmd(),
		RiddleSolutionRevealCmd(),
		RiddleSubmissionRevealCmd(),
		RiddleSetterClaimCmd(),
		RiddleSubmitterClaimCmd(),
		RiddleSetterCloseCmd(),
		ShowChallengeCmd(),
		ShowSubmissionCmd(),
		ShowPhaseCmd(),
		ShowSettlementCmd(),
		ListChallengeCmd(),
	)

	return cmd
}

// RiddleInitCmd 初始化全局配置
func RiddleInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the riddle global config",
		Run:   riddleInit,
	}
	return cmd
}

func riddleInit(cmd *cobra.Command, args []string) {
	sc.RunTx(cmd, rty.RiddleX, rty.NewInitAction(), parseRiddleLogs)
}

// RiddleCreateCmd 创建挑战
func RiddleCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new riddle challenge",
		Run:   riddleCreate,
	}
	addRiddleCreateFlags(cmd)
	return cmd
}

func addRiddleCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("question", "q", "", "question, an arithmetic expression")
	cmd.MarkFlagRequired("question")
	cmd.Flags().Int64P("submissionDeadline", "s", 0, "submission deadline(unix seconds)")
	cmd.MarkFlagRequired("submissionDeadline")
	cmd.Flags().Int64P("revealDeadline", "r", 0, "answer reveal deadline(unix seconds)")
	cmd.MarkFlagRequired("revealDeadline")
	cmd.Flags().Int64P("claimDeadline", "c", 0, "claim deadline(unix seconds)")
	cmd.MarkFlagRequired("claimDeadline")
	cmd.Flags().StringP("fee", "f", "", "entry fee in coins")
	cmd.MarkFlagRequired("fee")
}

func riddleCreate(cmd *cobra.Command, args []string) {
	question, _ := cmd.Flags().GetString("question")
	sdl, _ := cmd.Flags().GetInt64("submissionDeadline")
	ardl, _ := cmd.Flags().GetInt64("revealDeadline")
	cdl, _ := cmd.Flags().GetInt64("claimDeadline")
	feeStr, _ := cmd.Flags().GetString("fee")

	fee, err := parseFee(feeStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	sc.RunTx(cmd, rty.RiddleX, rty.NewCreateAction(question, sdl, ardl, cdl, fee), parseRiddleLogs)
}

func parseFee(s string) (uint64, error) {
	fee, err := types.ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if fee < 0 {
		return 0, types.ErrAmount
	}
	return uint64(fee), nil
}

// CommitResult 本地计算的承诺，nonce需要保存到公布答案时使用
type CommitResult struct {
	Answer     string `json:"answer"`
	Nonce      string `json:"nonce"`
	Commitment string `json:"commitment"`
}

// RiddleCommitCmd 计算答案的承诺，不发送交易
func RiddleCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Compute the commitment of an answer",
		Run:   riddleCommit,
	}
	addRiddleCommitFlags(cmd)
	return cmd
}

func addRiddleCommitFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("answer", "a", "", "plaintext answer")
	cmd.MarkFlagRequired("answer")
	cmd.Flags().StringP("nonce", "n", "", "nonce, random uuid if empty")
}

func riddleCommit(cmd *cobra.Command, args []string) {
	answer, _ := cmd.Flags().GetString("answer")
	nonce, _ := cmd.Flags().GetString("nonce")
	if nonce == "" {
		nonce = uuid.New().String()
	}
	sc.PrintJSON(&CommitResult{
		Answer:     answer,
		Nonce:      nonce,
		Commitment: common.ToHex(executor.Commit(answer, nonce)),
	})
}

// RiddleSubmitCmd 提交答案的承诺并支付报名费
func RiddleSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a commitment to a challenge",
		Run:   riddleSubmit,
	}
	addRiddleSubmitFlags(cmd)
	return cmd
}

func addRiddleSubmitFlags(cmd *cobra.Command) {
	addChallengeIDFlag(cmd)
	cmd.Flags().StringP("commitment", "m", "", "hex commitment from `riddle commit`")
	cmd.Flags().StringP("answer", "a", "", "plaintext answer, commit locally when commitment is empty")
	cmd.Flags().StringP("nonce", "n", "", "nonce used with answer")
}

func riddleSubmit(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	commitStr, _ := cmd.Flags().GetString("commitment")
	answer, _ := cmd.Flags().GetString("answer")
	nonce, _ := cmd.Flags().GetString("nonce")

	var commitment []byte
	switch {
	case commitStr != "":
		var err error
		commitment, err = common.FromHex(commitStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	case answer != "" && nonce != "":
		commitment = executor.Commit(answer, nonce)
	default:
		fmt.Fprintln(os.Stderr, "commitment or answer with nonce required")
		return
	}
	sc.RunTx(cmd, rty.RiddleX, rty.NewSubmitAction(id, commitment), parseRiddleLogs)
}

// RiddleSolutionRevealCmd 计算并公布标准答案
func RiddleSolutionRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal-solution",
		Short: "Evaluate the question and publish the solution",
		Run:   riddleSolutionReveal,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func riddleSolutionReveal(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunTx(cmd, rty.RiddleX, rty.NewSolutionRevealAction(id), parseRiddleLogs)
}

// RiddleSubmissionRevealCmd 公布自己的答案
func RiddleSubmissionRevealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the plaintext answer of a submission",
		Run:   riddleSubmissionReveal,
	}
	addRiddleRevealFlags(cmd)
	return cmd
}

func addRiddleRevealFlags(cmd *cobra.Command) {
	addChallengeIDFlag(cmd)
	cmd.Flags().StringP("answer", "a", "", "plaintext answer")
	cmd.MarkFlagRequired("answer")
	cmd.Flags().StringP("nonce", "n", "", "nonce used in commit")
	cmd.MarkFlagRequired("nonce")
}

func riddleSubmissionReveal(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	answer, _ := cmd.Flags().GetString("answer")
	nonce, _ := cmd.Flags().GetString("nonce")
	sc.RunTx(cmd, rty.RiddleX, rty.NewSubmissionRevealAction(id, nonce, answer), parseRiddleLogs)
}

// RiddleSetterClaimCmd 出题人领取分成
func RiddleSetterClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setter-claim",
		Short: "Claim the setter cut of a challenge",
		Run:   riddleSetterClaim,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func riddleSetterClaim(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunTx(cmd, rty.RiddleX, rty.NewSetterClaimAction(id), parseRiddleLogs)
}

// RiddleSubmitterClaimCmd 玩家领取奖金
func RiddleSubmitterClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the winner share of a challenge",
		Run:   riddleSubmitterClaim,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func riddleSubmitterClaim(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunTx(cmd, rty.RiddleX, rty.NewSubmitterClaimAction(id), parseRiddleLogs)
}

// RiddleSetterCloseCmd 领取截止后关闭挑战，剩余资金退给出题人
func RiddleSetterCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close a challenge after the claim deadline",
		Run:   riddleSetterClose,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func riddleSetterClose(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunTx(cmd, rty.RiddleX, rty.NewSetterCloseAction(id), parseRiddleLogs)
}

// ShowChallengeCmd 查询挑战
func ShowChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Show a challenge",
		Run:   showChallenge,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func showChallenge(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunQuery(cmd, rty.RiddleX, rty.FuncNameGetChallenge, &rty.ReqRiddleChallenge{ChallengeId: id}, nil)
}

// ShowSubmissionCmd 查询提交
func ShowSubmissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submission",
		Short: "Show a submission",
		Run:   showSubmission,
	}
	addChallengeIDFlag(cmd)
	cmd.Flags().StringP("addr", "a", "", "submitter address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func showSubmission(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	addr, _ := cmd.Flags().GetString("addr")
	req := &rty.ReqRiddleSubmission{ChallengeId: id, Submitter: addr}
	sc.RunQuery(cmd, rty.RiddleX, rty.FuncNameGetSubmission, req, parseSubmission)
}

// SubmissionResult 承诺用hex显示
type SubmissionResult struct {
	ChallengeID   uint64 `json:"challengeID"`
	Submitter     string `json:"submitter"`
	Commitment    string `json:"commitment"`
	Revealed      bool   `json:"revealed"`
	AnswerCorrect bool   `json:"answerCorrect"`
	Claimed       bool   `json:"claimed"`
}

func parseSubmission(res interface{}) (interface{}, error) {
	s := res.(*rty.Submission)
	return &SubmissionResult{
		ChallengeID:   s.ChallengeId,
		Submitter:     s.Submitter,
		Commitment:    common.ToHex(s.EncryptedAnswer),
		Revealed:      s.Revealed,
		AnswerCorrect: s.AnswerCorrect,
		Claimed:       s.Claimed,
	}, nil
}

// ShowPhaseCmd 查询挑战所处阶段，时间由--time决定
func ShowPhaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Show the phase of a challenge",
		Run:   showPhase,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func showPhase(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunQuery(cmd, rty.RiddleX, rty.FuncNameGetChallengePhase, &rty.ReqRiddleChallenge{ChallengeId: id}, nil)
}

// ShowSettlementCmd 查询分成和奖金
func ShowSettlementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settlement",
		Short: "Show the setter cut and winner share of a challenge",
		Run:   showSettlement,
	}
	addChallengeIDFlag(cmd)
	return cmd
}

func showSettlement(cmd *cobra.Command, args []string) {
	id, _ := cmd.Flags().GetUint64("challengeID")
	sc.RunQuery(cmd, rty.RiddleX, rty.FuncNameGetSettlement, &rty.ReqRiddleChallenge{ChallengeId: id}, parseSettlement)
}

// SettlementResult 金额按币显示
type SettlementResult struct {
	ChallengeID uint64 `json:"challengeID"`
	Pot         string `json:"pot"`
	SetterCut   string `json:"setterCut"`
	Winners     uint64 `json:"winners"`
	Share       string `json:"share"`
	Held        string `json:"held"`
}

func parseSettlement(res interface{}) (interface{}, error) {
	s := res.(*rty.ReplyRiddleSettlement)
	return &SettlementResult{
		ChallengeID: s.ChallengeId,
		Pot:         types.FormatAmount(int64(s.Pot)),
		SetterCut:   types.FormatAmount(int64(s.SetterCut)),
		Winners:     s.Winners,
		Share:       types.FormatAmount(int64(s.Share)),
		Held:        types.FormatAmount(s.Held),
	}, nil
}

// ListChallengeCmd 按出题人或玩家列出挑战
func ListChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List challenges by setter or submitter",
		Run:   listChallenge,
	}
	addListChallengeFlags(cmd)
	return cmd
}

func addListChallengeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "setter or submitter address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().BoolP("submitter", "", false, "list challenges the address submitted to")
	cmd.Flags().Int32P("count", "n", rty.DefaultCount, "count")
	cmd.Flags().Int32P("direction", "d", 0, "0: desc, 1: asc")
	cmd.Flags().StringP("from", "", "", "continue after this challenge id")
}

func listChallenge(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	submitter, _ := cmd.Flags().GetBool("submitter")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	from, _ := cmd.Flags().GetString("from")

	if from != "" {
		if _, err := strconv.ParseUint(from, 10, 64); err != nil {
			fmt.Fprintln(os.Stderr, types.ErrInvalidParam)
			return
		}
	}
	funcName := rty.FuncNameListChallengesBySetter
	if submitter {
		funcName = rty.FuncNameListChallengesBySubmitter
	}
	req := &types.ReqAddr{Addr: addr, Count: count, Direction: direction, Primary: from}
	sc.RunQuery(cmd, rty.RiddleX, funcName, req, nil)
}

func addChallengeIDFlag(cmd *cobra.Command) {
	cmd.Flags().Uint64P("challengeID", "i", 0, "challenge id")
	cmd.MarkFlagRequired("challengeID")
}

// RiddleLogResult riddle回执
type RiddleLogResult struct {
	Ty         int32    `json:"ty"`
	Action     string   `json:"action"`
	ID         uint64   `json:"challengeID"`
	Addr       string   `json:"addr,omitempty"`
	Amount     string   `json:"amount,omitempty"`
	Submitters []string `json:"submitters,omitempty"`
}

func parseRiddleLogs(res interface{}) (interface{}, error) {
	logs := res.([]*types.ReceiptLog)
	var result []*RiddleLogResult
	for _, l := range logs {
		if l.Ty < rty.TyLogRiddleInit || l.Ty > rty.TyLogRiddleSetterClose {
			continue
		}
		var receipt rty.ReceiptRiddle
		if err := types.Decode(l.Log, &receipt); err != nil {
			return nil, err
		}
		r := &RiddleLogResult{
			Ty:         l.Ty,
			Action:     rty.ActionName(receipt.Action),
			ID:         receipt.ChallengeId,
			Addr:       receipt.Addr,
			Submitters: receipt.Submitters,
		}
		if receipt.Amount > 0 {
			r.Amount = types.FormatAmount(receipt.Amount)
		}
		result = append(result, r)
	}
	return result, nil
}
