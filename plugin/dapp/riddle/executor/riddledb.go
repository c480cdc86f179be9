// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor riddle
import (
	"math"

	"github.com/33cn/riddlerush/account"
	dbm "github.com/33cn/riddlerush/common/db"
	"github.com/33cn/riddlerush/executor/drivers"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/types"
)

/*
  挑战的生命周期:
    create -> Submission --t>=sdl--> AwaitingSolution --reveal--> Reveal
           --t>=ardl--> Claim --t>=cdl--> Closed --setter close--> 删除
  提交的生命周期:
    submit -> Committed --reveal--> Revealed --claim--> Claimed

  资金都在挑战自己的地址上，pot 只增不减，每次领取都按 pot 计算份额
*/

// Action 一笔riddle交易的执行上下文
type Action struct {
	coinsAccount *account.DB
	db           drivers.StateDB
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	index        int
	cfg          *subConfig
}

// NewAction new
func NewAction(r *Riddle, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		index:        index,
		cfg:          getSubConfig(),
	}
}

// GetReceiptLog 每个action一条日志，本地索引由它生成
func (action *Action) GetReceiptLog(ty int32, c *rty.Challenge, amount int64, submitters []string) *types.ReceiptLog {
	r := &rty.ReceiptRiddle{
		Addr:       action.fromaddr,
		Action:     ty,
		Amount:     amount,
		Submitters: submitters,
	}
	if c != nil {
		r.ChallengeId = c.Id
		r.Setter = c.Setter
	}
	return &types.ReceiptLog{Ty: rty.LogTy(ty), Log: types.Encode(r)}
}

func (action *Action) setKV(key []byte, value types.Message) *types.KeyValue {
	kv := &types.KeyValue{Key: key}
	if value != nil {
		kv.Value = types.Encode(value)
	}
	//value为nil时提交会删除这个key
	action.db.Set(kv.Key, kv.Value)
	return kv
}

func (action *Action) saveChallenge(c *rty.Challenge) *types.KeyValue {
	return action.setKV(ChallengeKey(c.Id), c)
}

func (action *Action) saveSubmission(s *rty.Submission) *types.KeyValue {
	return action.setKV(SubmissionKey(s.ChallengeId, s.Submitter), s)
}

func (action *Action) getGlobalConfig() (*rty.GlobalConfig, error) {
	value, err := action.db.Get(globalConfigKey)
	if err == types.ErrNotFound {
		return nil, rty.ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	var cfg rty.GlobalConfig
	if err := types.Decode(value, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getChallenge(db dbm.KV, id uint64) (*rty.Challenge, error) {
	value, err := db.Get(ChallengeKey(id))
	if err == types.ErrNotFound {
		return nil, rty.ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}
	var c rty.Challenge
	if err := types.Decode(value, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func getSubmission(db dbm.KV, id uint64, submitter string) (*rty.Submission, error) {
	value, err := db.Get(SubmissionKey(id, submitter))
	if err == types.ErrNotFound {
		return nil, rty.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	var s rty.Submission
	if err := types.Decode(value, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// 挑战地址上的余额
func (action *Action) held(id uint64) int64 {
	return action.coinsAccount.LoadAccount(ChallengeAddress(id)).GetBalance()
}

func (action *Action) isAuthority() bool {
	if len(action.cfg.Authority) == 0 {
		return true
	}
	for _, addr := range action.cfg.Authority {
		if addr == action.fromaddr {
			return true
		}
	}
	return false
}

// Initialize 创建全局配置，只能执行一次
func (action *Action) Initialize(payload *rty.RiddleInit) (*types.Receipt, error) {
	if !action.isAuthority() {
		rlog.Error("Initialize", "addr", action.fromaddr, "err", rty.ErrNotAuthority)
		return nil, rty.ErrNotAuthority
	}
	_, err := action.getGlobalConfig()
	if err == nil {
		return nil, rty.ErrAlreadyInitialized
	}
	if err != rty.ErrNotInitialized {
		return nil, err
	}
	kv := action.setKV(globalConfigKey, &rty.GlobalConfig{NextChallengeId: 0, Authority: action.fromaddr})
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{kv},
		Logs: []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionInit, nil, 0, nil)},
	}, nil
}

// CreateChallenge 调用者成为出题人，并把报名费作为奖池的第一份
func (action *Action) CreateChallenge(create *rty.RiddleCreate) (*types.Receipt, error) {
	cfg, err := action.getGlobalConfig()
	if err != nil {
		return nil, err
	}
	if create.SubmissionDeadline <= action.blocktime {
		return nil, rty.ErrSubmissionDeadlinePassed
	}
	if create.SubmissionDeadline >= create.AnswerRevealDeadline {
		return nil, rty.ErrAnswerRevealDeadlinBeforeSubmissionDeadline
	}
	if create.AnswerRevealDeadline >= create.ClaimDeadline {
		return nil, rty.ErrAnswerRevealDeadlinBeforeClaimDeadline
	}
	if len(create.Question) > rty.MaxQuestionLength {
		return nil, rty.ErrQuestionTooLong
	}
	if create.EntryFee == 0 {
		return nil, rty.ErrZeroEntryFee
	}
	if create.EntryFee >= uint64(types.MaxCoin) {
		return nil, types.ErrAmount
	}
	solution, err := CanonicalSolution(create.Question)
	if err != nil {
		return nil, err
	}
	if len(solution) > rty.MaxQuestionLength {
		return nil, rty.ErrSolutionTooLong
	}

	id := cfg.NextChallengeId
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, ChallengeAddress(id), int64(create.EntryFee))
	if err != nil {
		rlog.Error("CreateChallenge.Transfer", "addr", action.fromaddr, "id", id, "amount", create.EntryFee, "err", err)
		return nil, err
	}
	c := &rty.Challenge{
		Id:                   id,
		Question:             create.Question,
		SubmissionDeadline:   create.SubmissionDeadline,
		AnswerRevealDeadline: create.AnswerRevealDeadline,
		ClaimDeadline:        create.ClaimDeadline,
		EntryFee:             create.EntryFee,
		Setter:               action.fromaddr,
		Pot:                  create.EntryFee,
	}
	cfg.NextChallengeId = id + 1
	kv := []*types.KeyValue{action.setKV(globalConfigKey, cfg), action.saveChallenge(c)}
	logs := []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionCreate, c, int64(create.EntryFee), nil)}
	rlog.Debug("CreateChallenge", "id", id, "setter", c.Setter, "fee", c.EntryFee)
	return types.MergeReceipt(receipt, &types.Receipt{KV: kv, Logs: logs}), nil
}

// CreateSubmission 玩家提交答案的承诺并支付报名费
func (action *Action) CreateSubmission(submit *rty.RiddleSubmit) (*types.Receipt, error) {
	c, err := getChallenge(action.db, submit.ChallengeId)
	if err != nil {
		return nil, err
	}
	if action.blocktime >= c.SubmissionDeadline {
		return nil, rty.ErrSubmissionDeadlinePassed
	}
	if len(submit.Commitment) != rty.CommitmentLen {
		return nil, rty.ErrInvalidCommitment
	}
	_, err = getSubmission(action.db, c.Id, action.fromaddr)
	if err == nil {
		return nil, rty.ErrSubmissionExists
	}
	if err != rty.ErrSubmissionNotFound {
		return nil, err
	}
	if c.Submissions() >= action.cfg.MaxSubmissions {
		return nil, rty.ErrTooManySubmissions
	}
	if c.Pot > math.MaxUint64-c.EntryFee {
		return nil, types.ErrAmount
	}
	receipt, err := action.coinsAccount.Transfer(action.fromaddr, ChallengeAddress(c.Id), int64(c.EntryFee))
	if err != nil {
		rlog.Error("CreateSubmission.Transfer", "addr", action.fromaddr, "id", c.Id, "amount", c.EntryFee, "err", err)
		return nil, err
	}
	s := &rty.Submission{
		ChallengeId:     c.Id,
		Submitter:       action.fromaddr,
		EncryptedAnswer: append([]byte{}, submit.Commitment...),
	}
	c.Pot += c.EntryFee
	kv := []*types.KeyValue{action.saveSubmission(s), action.saveChallenge(c)}
	logs := []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSubmit, c, int64(c.EntryFee), nil)}
	return types.MergeReceipt(receipt, &types.Receipt{KV: kv, Logs: logs}), nil
}

// ChallengeSolutionReveal 提交截止后任何人都可以公布标准答案，重复调用不做任何修改
func (action *Action) ChallengeSolutionReveal(reveal *rty.RiddleSolutionReveal) (*types.Receipt, error) {
	c, err := getChallenge(action.db, reveal.ChallengeId)
	if err != nil {
		return nil, err
	}
	if action.blocktime <= c.SubmissionDeadline {
		return nil, rty.ErrSolutionRevealDeadlineNotMet
	}
	if c.Solution != "" {
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	if rty.GetPhase(c, action.blocktime) != rty.PhaseAwaitingSolution {
		return nil, rty.ErrChallengePhase
	}
	solution, err := CanonicalSolution(c.Question)
	if err != nil {
		return nil, err
	}
	if len(solution) > rty.MaxQuestionLength {
		return nil, rty.ErrSolutionTooLong
	}
	c.Solution = solution
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   []*types.KeyValue{action.saveChallenge(c)},
		Logs: []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSolutionReveal, c, 0, nil)},
	}, nil
}

// SubmissionSolutionReveal 玩家公开答案，和承诺一致才算揭示成功
func (action *Action) SubmissionSolutionReveal(reveal *rty.RiddleSubmissionReveal) (*types.Receipt, error) {
	c, err := getChallenge(action.db, reveal.ChallengeId)
	if err != nil {
		return nil, err
	}
	s, err := getSubmission(action.db, c.Id, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if s.Submitter != action.fromaddr {
		return nil, rty.ErrNotTheSubmitter
	}
	if s.Revealed {
		return nil, rty.ErrSubmissionAlreadyRevealed
	}
	if len(reveal.Plaintext) > rty.MaxQuestionLength {
		return nil, rty.ErrSolutionTooLong
	}
	if c.Solution == "" {
		return nil, rty.ErrSolutionNotRevealed
	}
	if rty.GetPhase(c, action.blocktime) != rty.PhaseReveal {
		return nil, rty.ErrChallengePhase
	}
	if !VerifyCommit(reveal.Plaintext, reveal.Nonce, s.EncryptedAnswer) {
		rlog.Debug("SubmissionSolutionReveal", "id", c.Id, "addr", action.fromaddr, "err", rty.ErrAnswerMismatch)
		return nil, rty.ErrAnswerMismatch
	}
	s.Revealed = true
	kv := []*types.KeyValue{}
	if reveal.Plaintext == c.Solution {
		s.AnswerCorrect = true
		c.CorrectSubmissions++
		kv = append(kv, action.saveChallenge(c))
	}
	kv = append(kv, action.saveSubmission(s))
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSubmissionReveal, c, 0, nil)},
	}, nil
}

// SetterClaim 出题人在领奖期领取 pot 的 SetterCutPct%
func (action *Action) SetterClaim(claim *rty.RiddleSetterClaim) (*types.Receipt, error) {
	c, err := getChallenge(action.db, claim.ChallengeId)
	if err != nil {
		return nil, err
	}
	if c.Setter != action.fromaddr {
		return nil, rty.ErrNotTheSetter
	}
	if action.blocktime <= c.AnswerRevealDeadline {
		return nil, rty.ErrWithdrawTooEarly
	}
	if action.blocktime >= c.ClaimDeadline {
		return nil, rty.ErrWithdrawTooLate
	}
	if c.SetterCutClaimed {
		return nil, rty.ErrSetterCutClaimed
	}
	cut := rty.SetterCut(c.Pot)
	if uint64(action.held(c.Id)) < cut {
		rlog.Error("SetterClaim", "id", c.Id, "cut", cut, "held", action.held(c.Id), "err", rty.ErrInsufficientFunds)
		return nil, rty.ErrInsufficientFunds
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	//pot不足10时分成为0，只记录已领取
	if cut > 0 {
		transfer, err := action.coinsAccount.Transfer(ChallengeAddress(c.Id), c.Setter, int64(cut))
		if err != nil {
			rlog.Error("SetterClaim.Transfer", "id", c.Id, "addr", c.Setter, "amount", cut, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, transfer)
	}
	c.SetterCutClaimed = true
	kv := []*types.KeyValue{action.saveChallenge(c)}
	logs := []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSetterClaim, c, int64(cut), nil)}
	return types.MergeReceipt(receipt, &types.Receipt{KV: kv, Logs: logs}), nil
}

// SubmitterClaim 玩家在领奖期领取自己的份额
func (action *Action) SubmitterClaim(claim *rty.RiddleSubmitterClaim) (*types.Receipt, error) {
	c, err := getChallenge(action.db, claim.ChallengeId)
	if err != nil {
		return nil, err
	}
	if action.blocktime <= c.AnswerRevealDeadline {
		return nil, rty.ErrWithdrawTooEarly
	}
	if action.blocktime >= c.ClaimDeadline {
		return nil, rty.ErrWithdrawTooLate
	}
	s, err := getSubmission(action.db, c.Id, action.fromaddr)
	if err != nil {
		return nil, err
	}
	if s.Submitter != action.fromaddr {
		return nil, rty.ErrNotTheSubmitter
	}
	if s.ChallengeId != c.Id {
		return nil, rty.ErrChallengeMismatch
	}
	if s.Claimed {
		return nil, rty.ErrSubmissionClaimed
	}
	//有人答对时只有答对的人可以领取
	if c.CorrectSubmissions > 0 && !s.AnswerCorrect {
		return nil, rty.ErrNotCorrect
	}
	share, err := rty.WinnerShare(c)
	if err != nil {
		return nil, err
	}
	if uint64(action.held(c.Id)) < share {
		rlog.Error("SubmitterClaim", "id", c.Id, "share", share, "held", action.held(c.Id), "err", rty.ErrInsufficientFunds)
		return nil, rty.ErrInsufficientFunds
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if share > 0 {
		transfer, err := action.coinsAccount.Transfer(ChallengeAddress(c.Id), s.Submitter, int64(share))
		if err != nil {
			rlog.Error("SubmitterClaim.Transfer", "id", c.Id, "addr", s.Submitter, "amount", share, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, transfer)
	}
	s.Claimed = true
	kv := []*types.KeyValue{action.saveSubmission(s)}
	logs := []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSubmitterClaim, c, int64(share), nil)}
	return types.MergeReceipt(receipt, &types.Receipt{KV: kv, Logs: logs}), nil
}

// SetterClose 领奖期结束后出题人取回剩余资金，并删除挑战和所有提交
func (action *Action) SetterClose(closeAction *rty.RiddleSetterClose) (*types.Receipt, error) {
	c, err := getChallenge(action.db, closeAction.ChallengeId)
	if err != nil {
		return nil, err
	}
	if c.Setter != action.fromaddr {
		return nil, rty.ErrNotTheSetter
	}
	if action.blocktime <= c.ClaimDeadline {
		return nil, rty.ErrWithdrawTooEarly
	}
	values, err := action.db.List(SubmissionPrefix(c.Id), nil, 0, dbm.ListASC)
	if err != nil && err != types.ErrNotFound {
		rlog.Error("SetterClose.List", "id", c.Id, "err", err)
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	held := action.held(c.Id)
	if held > 0 {
		transfer, err := action.coinsAccount.Transfer(ChallengeAddress(c.Id), c.Setter, held)
		if err != nil {
			rlog.Error("SetterClose.Transfer", "id", c.Id, "addr", c.Setter, "amount", held, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, transfer)
	}
	var kv []*types.KeyValue
	var submitters []string
	for _, value := range values {
		var s rty.Submission
		if err := types.Decode(value, &s); err != nil {
			return nil, err
		}
		submitters = append(submitters, s.Submitter)
		kv = append(kv, action.setKV(SubmissionKey(c.Id, s.Submitter), nil))
	}
	kv = append(kv, action.setKV(ChallengeKey(c.Id), nil))
	logs := []*types.ReceiptLog{action.GetReceiptLog(rty.RiddleActionSetterClose, c, held, submitters)}
	rlog.Debug("SetterClose", "id", c.Id, "swept", held, "submissions", len(submitters))
	return types.MergeReceipt(receipt, &types.Receipt{KV: kv, Logs: logs}), nil
}
