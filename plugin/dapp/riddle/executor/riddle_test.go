// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strings"
	"testing"

	"github.com/33cn/riddlerush/common/address"
	"github.com/33cn/riddlerush/common/crypto"
	"github.com/33cn/riddlerush/common/crypto/secp256k1"
	dbm "github.com/33cn/riddlerush/common/db"
	chainexec "github.com/33cn/riddlerush/executor"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testBalance = int64(1000000)

type testUser struct {
	priv crypto.PrivKey
	addr string
}

var (
	testS, testA, testB, testC *testUser
	testUsers                  []*testUser
)

func init() {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 8; i++ {
		priv, err := c.GenKey()
		if err != nil {
			panic(err)
		}
		testUsers = append(testUsers, &testUser{priv: priv, addr: address.PubKeyToAddress(priv.PubKey().Bytes()).String()})
	}
	testS, testA, testB, testC = testUsers[0], testUsers[1], testUsers[2], testUsers[3]
}

type testEnv struct {
	t     require.TestingT
	exec  *chainexec.Executor
	clock *chainexec.ManualClock
	nonce int64
}

// 每个环境一个新的内存数据库，所有测试账户在第一笔交易之前分配余额
func newTestEnv(t require.TestingT, sub string) *testEnv {
	var subcfg []byte
	if sub != "" {
		subcfg = []byte(sub)
	}
	Init(rty.RiddleX, subcfg)
	db, err := dbm.NewDB("riddle", dbm.MemDBBackendStr, "", 0)
	require.Nil(t, err)
	clock := chainexec.NewManualClock(0)
	exec, err := chainexec.New(nil, db, clock)
	require.Nil(t, err)
	for _, u := range testUsers {
		_, err := exec.Genesis(u.addr, testBalance)
		require.Nil(t, err)
	}
	return &testEnv{t: t, exec: exec, clock: clock}
}

func (env *testEnv) send(u *testUser, now int64, action *rty.RiddleAction) error {
	env.clock.Set(now)
	env.nonce++
	tx := types.CreateTx(rty.RiddleX, action, env.nonce)
	tx.Sign(secp256k1.ID, u.priv)
	_, err := env.exec.Exec(tx)
	return err
}

func (env *testEnv) mustSend(u *testUser, now int64, action *rty.RiddleAction) {
	require.Nil(env.t, env.send(u, now, action), rty.ActionName(action.Ty))
}

func (env *testEnv) challenge(id uint64) (*rty.Challenge, error) {
	msg, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetChallenge, &rty.ReqRiddleChallenge{ChallengeId: id})
	if err != nil {
		return nil, err
	}
	return msg.(*rty.Challenge), nil
}

func (env *testEnv) mustChallenge(id uint64) *rty.Challenge {
	c, err := env.challenge(id)
	require.Nil(env.t, err)
	return c
}

func (env *testEnv) submission(id uint64, u *testUser) (*rty.Submission, error) {
	msg, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetSubmission, &rty.ReqRiddleSubmission{ChallengeId: id, Submitter: u.addr})
	if err != nil {
		return nil, err
	}
	return msg.(*rty.Submission), nil
}

func (env *testEnv) balance(u *testUser) int64 {
	return env.exec.Balance(u.addr)
}

// 初始化并创建 "1+2*3" 的挑战，sdl=100 ardl=200 cdl=300 fee=1000
func (env *testEnv) setupChallenge() uint64 {
	env.mustSend(testS, 1, rty.NewInitAction())
	env.mustSend(testS, 10, rty.NewCreateAction("1+2*3", 100, 200, 300, 1000))
	return 0
}

func TestScenarioSingleWinner(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	env.mustSend(testB, 51, rty.NewSubmitAction(id, Commit("wrong", "nb")))
	c := env.mustChallenge(id)
	assert.Equal(t, uint64(3000), c.Pot)
	assert.Equal(t, int64(3000), env.exec.Balance(ChallengeAddress(id)))

	env.mustSend(testC, 150, rty.NewSolutionRevealAction(id))
	assert.Equal(t, "7", env.mustChallenge(id).Solution)

	env.mustSend(testA, 160, rty.NewSubmissionRevealAction(id, "na", "7"))
	env.mustSend(testB, 160, rty.NewSubmissionRevealAction(id, "nb", "wrong"))
	c = env.mustChallenge(id)
	assert.Equal(t, uint64(1), c.CorrectSubmissions)
	sa, err := env.submission(id, testA)
	require.Nil(t, err)
	assert.True(t, sa.Revealed)
	assert.True(t, sa.AnswerCorrect)
	sb, err := env.submission(id, testB)
	require.Nil(t, err)
	assert.True(t, sb.Revealed)
	assert.False(t, sb.AnswerCorrect)

	env.mustSend(testS, 250, rty.NewSetterClaimAction(id))
	assert.Equal(t, testBalance-1000+300, env.balance(testS))
	env.mustSend(testA, 250, rty.NewSubmitterClaimAction(id))
	assert.Equal(t, testBalance-1000+2700, env.balance(testA))
	assert.Equal(t, rty.ErrNotCorrect, env.send(testB, 250, rty.NewSubmitterClaimAction(id)))
	assert.Equal(t, testBalance-1000, env.balance(testB))
	assert.Equal(t, int64(0), env.exec.Balance(ChallengeAddress(id)))

	//重复领取
	assert.Equal(t, rty.ErrSetterCutClaimed, env.send(testS, 251, rty.NewSetterClaimAction(id)))
	assert.Equal(t, rty.ErrSubmissionClaimed, env.send(testA, 251, rty.NewSubmitterClaimAction(id)))
}

func TestScenarioNoCorrectRefund(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("wrong", "na")))
	env.mustSend(testB, 51, rty.NewSubmitAction(id, Commit("wrong", "nb")))
	env.mustSend(testS, 150, rty.NewSolutionRevealAction(id))
	env.mustSend(testA, 160, rty.NewSubmissionRevealAction(id, "na", "wrong"))
	env.mustSend(testB, 160, rty.NewSubmissionRevealAction(id, "nb", "wrong"))
	assert.Equal(t, uint64(0), env.mustChallenge(id).CorrectSubmissions)

	msg, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetSettlement, &rty.ReqRiddleChallenge{ChallengeId: id})
	require.Nil(t, err)
	settle := msg.(*rty.ReplyRiddleSettlement)
	assert.Equal(t, uint64(300), settle.SetterCut)
	assert.Equal(t, uint64(2), settle.Winners)
	assert.Equal(t, uint64(1350), settle.Share)
	assert.Equal(t, int64(3000), settle.Held)

	env.mustSend(testA, 250, rty.NewSubmitterClaimAction(id))
	env.mustSend(testB, 250, rty.NewSubmitterClaimAction(id))
	env.mustSend(testS, 250, rty.NewSetterClaimAction(id))
	assert.Equal(t, testBalance-1000+1350, env.balance(testA))
	assert.Equal(t, testBalance-1000+1350, env.balance(testB))
	assert.Equal(t, testBalance-1000+300, env.balance(testS))
}

func TestScenarioSubmitAtDeadline(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	assert.Equal(t, rty.ErrSubmissionDeadlinePassed, env.send(testA, 100, rty.NewSubmitAction(id, Commit("7", "na"))))
	assert.Equal(t, testBalance, env.balance(testA))
	env.mustSend(testA, 99, rty.NewSubmitAction(id, Commit("7", "na")))
}

func TestScenarioRevealMismatch(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	env.mustSend(testS, 150, rty.NewSolutionRevealAction(id))
	assert.Equal(t, rty.ErrAnswerMismatch, env.send(testA, 160, rty.NewSubmissionRevealAction(id, "na", "wrong")))
	s, err := env.submission(id, testA)
	require.Nil(t, err)
	assert.False(t, s.Revealed)
	assert.False(t, s.AnswerCorrect)

	//nonce错误也不匹配
	assert.Equal(t, rty.ErrAnswerMismatch, env.send(testA, 160, rty.NewSubmissionRevealAction(id, "nb", "7")))
	env.mustSend(testA, 161, rty.NewSubmissionRevealAction(id, "na", "7"))
	assert.Equal(t, rty.ErrSubmissionAlreadyRevealed, env.send(testA, 162, rty.NewSubmissionRevealAction(id, "na", "7")))
}

func TestScenarioSetterClose(t *testing.T) {
	env := newTestEnv(t, "")
	env.mustSend(testS, 1, rty.NewInitAction())
	env.mustSend(testS, 10, rty.NewCreateAction("1+2*3", 100, 200, 300, 7))
	id := uint64(0)
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("1", "na")))
	env.mustSend(testB, 51, rty.NewSubmitAction(id, Commit("2", "nb")))
	env.mustSend(testS, 150, rty.NewSolutionRevealAction(id))
	env.mustSend(testS, 250, rty.NewSetterClaimAction(id))
	env.mustSend(testA, 250, rty.NewSubmitterClaimAction(id))
	env.mustSend(testB, 250, rty.NewSubmitterClaimAction(id))
	//pot=21 cut=2 share=9，剩余1
	assert.Equal(t, int64(1), env.exec.Balance(ChallengeAddress(id)))
	assert.Equal(t, testBalance-7+9, env.balance(testA))

	assert.Equal(t, rty.ErrNotTheSetter, env.send(testA, 301, rty.NewSetterCloseAction(id)))
	assert.Equal(t, rty.ErrWithdrawTooEarly, env.send(testS, 300, rty.NewSetterCloseAction(id)))
	env.mustSend(testS, 301, rty.NewSetterCloseAction(id))
	assert.Equal(t, testBalance-7+2+1, env.balance(testS))
	assert.Equal(t, int64(0), env.exec.Balance(ChallengeAddress(id)))

	_, err := env.challenge(id)
	assert.Equal(t, rty.ErrChallengeNotFound, err)
	_, err = env.submission(id, testA)
	assert.Equal(t, rty.ErrSubmissionNotFound, err)
	_, err = env.submission(id, testB)
	assert.Equal(t, rty.ErrSubmissionNotFound, err)
	_, err = env.exec.Query(rty.RiddleX, rty.FuncNameListChallengesBySetter, &types.ReqAddr{Addr: testS.addr})
	assert.Equal(t, types.ErrNotFound, err)
	_, err = env.exec.Query(rty.RiddleX, rty.FuncNameListChallengesBySubmitter, &types.ReqAddr{Addr: testA.addr})
	assert.Equal(t, types.ErrNotFound, err)

	assert.Equal(t, rty.ErrChallengeNotFound, env.send(testS, 302, rty.NewSetterCloseAction(id)))
}

func TestScenarioInvalidExpression(t *testing.T) {
	env := newTestEnv(t, "")
	env.mustSend(testS, 1, rty.NewInitAction())
	assert.Equal(t, rty.ErrInvalidExpression, env.send(testS, 10, rty.NewCreateAction("1+*2", 100, 200, 300, 1000)))
	assert.Equal(t, testBalance, env.balance(testS))
	_, err := env.challenge(0)
	assert.Equal(t, rty.ErrChallengeNotFound, err)
}

func TestInitialize(t *testing.T) {
	env := newTestEnv(t, `{"authority":["`+testS.addr+`"]}`)
	assert.Equal(t, rty.ErrNotInitialized, env.send(testS, 10, rty.NewCreateAction("1", 100, 200, 300, 1)))
	_, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetGlobalConfig, &types.ReqNil{})
	assert.Equal(t, rty.ErrNotInitialized, err)

	assert.Equal(t, rty.ErrNotAuthority, env.send(testA, 1, rty.NewInitAction()))
	env.mustSend(testS, 1, rty.NewInitAction())
	assert.Equal(t, rty.ErrAlreadyInitialized, env.send(testS, 2, rty.NewInitAction()))

	env.mustSend(testA, 10, rty.NewCreateAction("1", 100, 200, 300, 1))
	env.mustSend(testB, 10, rty.NewCreateAction("2", 100, 200, 300, 1))
	msg, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetGlobalConfig, &types.ReqNil{})
	require.Nil(t, err)
	cfg := msg.(*rty.GlobalConfig)
	assert.Equal(t, uint64(2), cfg.NextChallengeId)
	assert.Equal(t, testS.addr, cfg.Authority)
	assert.Equal(t, testA.addr, env.mustChallenge(0).Setter)
	assert.Equal(t, testB.addr, env.mustChallenge(1).Setter)
	env.mustSend(testC, 150, rty.NewSolutionRevealAction(1))
	assert.Equal(t, "2", env.mustChallenge(1).Solution)
}

func TestCreateChallengeChecks(t *testing.T) {
	env := newTestEnv(t, "")
	env.mustSend(testS, 1, rty.NewInitAction())
	now := int64(50)
	cases := []struct {
		action *rty.RiddleAction
		err    error
	}{
		{rty.NewCreateAction("1", 50, 200, 300, 1), rty.ErrSubmissionDeadlinePassed},
		{rty.NewCreateAction("1", 49, 200, 300, 1), rty.ErrSubmissionDeadlinePassed},
		{rty.NewCreateAction("1", 200, 200, 300, 1), rty.ErrAnswerRevealDeadlinBeforeSubmissionDeadline},
		{rty.NewCreateAction("1", 100, 300, 300, 1), rty.ErrAnswerRevealDeadlinBeforeClaimDeadline},
		{rty.NewCreateAction("1", 100, 200, 300, 0), rty.ErrZeroEntryFee},
		{rty.NewCreateAction("1", 100, 200, 300, uint64(types.MaxCoin)), types.ErrAmount},
		{rty.NewCreateAction("1", 100, 200, 300, uint64(testBalance)+1), types.ErrNoBalance},
		{rty.NewCreateAction("1/3/1"+strings.Repeat("0", 240), 100, 200, 300, 1), rty.ErrSolutionTooLong},
	}
	for i, c := range cases {
		assert.Equal(t, c.err, env.send(testS, now, c.action), i)
	}
	assert.Equal(t, testBalance, env.balance(testS))

	//题目长度按字节计算，空白也算
	q256 := "1" + strings.Repeat("+1", 127) + " "
	require.Equal(t, 256, len(q256))
	assert.Equal(t, rty.ErrQuestionTooLong, env.send(testS, now, rty.NewCreateAction(q256+" ", 100, 200, 300, 1)))
	env.mustSend(testS, now, rty.NewCreateAction(q256, 100, 200, 300, 1))
	env.mustSend(testA, 150, rty.NewSolutionRevealAction(0))
	assert.Equal(t, "128", env.mustChallenge(0).Solution)
}

func TestSolutionRevealChecks(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	assert.Equal(t, rty.ErrSolutionRevealDeadlineNotMet, env.send(testA, 99, rty.NewSolutionRevealAction(id)))
	assert.Equal(t, rty.ErrSolutionRevealDeadlineNotMet, env.send(testA, 100, rty.NewSolutionRevealAction(id)))
	assert.Equal(t, rty.ErrChallengeNotFound, env.send(testA, 150, rty.NewSolutionRevealAction(9)))

	env.mustSend(testA, 101, rty.NewSolutionRevealAction(id))
	c := env.mustChallenge(id)
	assert.Equal(t, "7", c.Solution)
	//第二次不做任何修改
	env.mustSend(testB, 150, rty.NewSolutionRevealAction(id))
	assert.Equal(t, c, env.mustChallenge(id))
}

func TestSolutionRevealAfterWindow(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	assert.Equal(t, rty.ErrChallengePhase, env.send(testA, 200, rty.NewSolutionRevealAction(id)))
	assert.Equal(t, rty.ErrSolutionNotRevealed, env.send(testA, 199, rty.NewSubmissionRevealAction(id, "na", "7")))

	//没有答案时所有提交者平分
	env.mustSend(testA, 201, rty.NewSubmitterClaimAction(id))
	assert.Equal(t, testBalance-1000+1800, env.balance(testA))
}

func TestSubmissionChecks(t *testing.T) {
	env := newTestEnv(t, `{"maxSubmissions":2}`)
	id := env.setupChallenge()
	assert.Equal(t, rty.ErrChallengeNotFound, env.send(testA, 50, rty.NewSubmitAction(9, Commit("7", "na"))))
	assert.Equal(t, rty.ErrInvalidCommitment, env.send(testA, 50, rty.NewSubmitAction(id, []byte("short"))))
	assert.Equal(t, rty.ErrInvalidCommitment, env.send(testA, 50, rty.NewSubmitAction(id, nil)))
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	assert.Equal(t, rty.ErrSubmissionExists, env.send(testA, 51, rty.NewSubmitAction(id, Commit("8", "na"))))
	//出题人也可以参与
	env.mustSend(testS, 52, rty.NewSubmitAction(id, Commit("7", "ns")))
	assert.Equal(t, rty.ErrTooManySubmissions, env.send(testB, 53, rty.NewSubmitAction(id, Commit("7", "nb"))))
	assert.Equal(t, uint64(3000), env.mustChallenge(id).Pot)
	assert.Equal(t, testBalance, env.balance(testB))
}

func TestSubmissionRevealChecks(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	env.mustSend(testS, 150, rty.NewSolutionRevealAction(id))

	assert.Equal(t, rty.ErrSubmissionNotFound, env.send(testB, 160, rty.NewSubmissionRevealAction(id, "na", "7")))
	assert.Equal(t, rty.ErrSolutionTooLong, env.send(testA, 160, rty.NewSubmissionRevealAction(id, "na", strings.Repeat("7", 257))))
	assert.Equal(t, rty.ErrChallengePhase, env.send(testA, 200, rty.NewSubmissionRevealAction(id, "na", "7")))
	env.mustSend(testA, 199, rty.NewSubmissionRevealAction(id, "na", "7"))
}

func TestClaimWindow(t *testing.T) {
	env := newTestEnv(t, "")
	id := env.setupChallenge()
	env.mustSend(testA, 50, rty.NewSubmitAction(id, Commit("7", "na")))
	env.mustSend(testS, 150, rty.NewSolutionRevealAction(id))
	env.mustSend(testA, 160, rty.NewSubmissionRevealAction(id, "na", "7"))

	assert.Equal(t, rty.ErrNotTheSetter, env.send(testA, 250, rty.NewSetterClaimAction(id)))
	assert.Equal(t, rty.ErrWithdrawTooEarly, env.send(testS, 200, rty.NewSetterClaimAction(id)))
	assert.Equal(t, rty.ErrWithdrawTooLate, env.send(testS, 300, rty.NewSetterClaimAction(id)))
	assert.Equal(t, rty.ErrWithdrawTooEarly, env.send(testA, 200, rty.NewSubmitterClaimAction(id)))
	assert.Equal(t, rty.ErrWithdrawTooLate, env.send(testA, 300, rty.NewSubmitterClaimAction(id)))
	assert.Equal(t, rty.ErrSubmissionNotFound, env.send(testB, 250, rty.NewSubmitterClaimAction(id)))

	env.mustSend(testS, 201, rty.NewSetterClaimAction(id))
	env.mustSend(testA, 299, rty.NewSubmitterClaimAction(id))
	assert.Equal(t, testBalance-1000+200, env.balance(testS))
	assert.Equal(t, testBalance-1000+1800, env.balance(testA))
}

func TestQueryPhaseAndList(t *testing.T) {
	env := newTestEnv(t, "")
	env.mustSend(testS, 1, rty.NewInitAction())
	for i := 0; i < 3; i++ {
		env.mustSend(testS, 10, rty.NewCreateAction("1+1", 100, 200, 300, 10))
	}
	env.mustSend(testA, 20, rty.NewSubmitAction(1, Commit("2", "n")))

	phase := func(now int64) string {
		env.clock.Set(now)
		msg, err := env.exec.Query(rty.RiddleX, rty.FuncNameGetChallengePhase, &rty.ReqRiddleChallenge{ChallengeId: 1})
		require.Nil(t, err)
		return msg.(*rty.ReplyRiddlePhase).PhaseName
	}
	assert.Equal(t, "Submission", phase(99))
	assert.Equal(t, "AwaitingSolution", phase(100))
	env.mustSend(testA, 150, rty.NewSolutionRevealAction(1))
	assert.Equal(t, "Reveal", phase(150))
	assert.Equal(t, "Claim", phase(200))
	assert.Equal(t, "Closed", phase(300))

	list := func(req *types.ReqAddr, fn string) []uint64 {
		msg, err := env.exec.Query(rty.RiddleX, fn, req)
		require.Nil(t, err)
		var ids []uint64
		for _, c := range msg.(*rty.ReplyRiddleChallengeList).Challenges {
			ids = append(ids, c.Id)
		}
		return ids
	}
	assert.Equal(t, []uint64{0, 1, 2}, list(&types.ReqAddr{Addr: testS.addr, Direction: dbm.ListASC}, rty.FuncNameListChallengesBySetter))
	assert.Equal(t, []uint64{2, 1, 0}, list(&types.ReqAddr{Addr: testS.addr, Direction: dbm.ListDESC}, rty.FuncNameListChallengesBySetter))
	assert.Equal(t, []uint64{1, 2}, list(&types.ReqAddr{Addr: testS.addr, Direction: dbm.ListASC, Primary: "0", Count: 2}, rty.FuncNameListChallengesBySetter))
	assert.Equal(t, []uint64{1}, list(&types.ReqAddr{Addr: testA.addr}, rty.FuncNameListChallengesBySubmitter))

	_, err := env.exec.Query(rty.RiddleX, rty.FuncNameListChallengesBySetter, &types.ReqAddr{})
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = env.exec.Query(rty.RiddleX, rty.FuncNameListChallengesBySetter, &types.ReqAddr{Addr: testS.addr, Primary: "x"})
	assert.Equal(t, types.ErrInvalidParam, err)
}

func TestExecBadAction(t *testing.T) {
	env := newTestEnv(t, "")
	assert.Equal(t, types.ErrActionNotSupport, env.send(testS, 1, &rty.RiddleAction{Ty: rty.RiddleActionCreate}))
	assert.Equal(t, types.ErrActionNotSupport, env.send(testS, 1, &rty.RiddleAction{Ty: 100, Init: &rty.RiddleInit{}}))

	r := newRiddle()
	tx := types.CreateTx(rty.RiddleX, rty.NewSetterCloseAction(1), 0)
	assert.Equal(t, "SetterClose", r.GetActionName(tx))
	tx.Payload = []byte("bad payload")
	assert.Equal(t, "unknown", r.GetActionName(tx))
	assert.Equal(t, types.ErrDecode, r.CheckTx(tx, 0))
}

// 任意提交数和答案组合下，领取和关闭之后奖池正好分完，总余额不变
func TestPotConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		env := newTestEnv(t, "")
		fee := rapid.Uint64Range(1, 5000).Draw(t, "fee")
		n := rapid.IntRange(0, len(testUsers)-1).Draw(t, "submitters")
		env.mustSend(testS, 1, rty.NewInitAction())
		env.mustSend(testS, 10, rty.NewCreateAction("6*7", 100, 200, 300, fee))

		players := testUsers[1 : n+1]
		answers := make([]string, n)
		revealed := make([]bool, n)
		for i, u := range players {
			answers[i] = rapid.SampledFrom([]string{"42", "41", "42.0"}).Draw(t, "answer")
			env.mustSend(u, 20, rty.NewSubmitAction(0, Commit(answers[i], u.addr)))
		}
		c := env.mustChallenge(0)
		require.Equal(t, (1+uint64(n))*fee, c.Pot)
		require.Equal(t, int64(c.Pot), env.exec.Balance(ChallengeAddress(0)))

		env.mustSend(testS, 150, rty.NewSolutionRevealAction(0))
		var correct uint64
		for i, u := range players {
			revealed[i] = rapid.Bool().Draw(t, "reveal")
			if revealed[i] {
				env.mustSend(u, 160, rty.NewSubmissionRevealAction(0, u.addr, answers[i]))
				if answers[i] == "42" {
					correct++
				}
			}
		}
		c = env.mustChallenge(0)
		require.Equal(t, correct, c.CorrectSubmissions)

		env.mustSend(testS, 250, rty.NewSetterClaimAction(0))
		for i, u := range players {
			err := env.send(u, 250, rty.NewSubmitterClaimAction(0))
			if correct > 0 && !(revealed[i] && answers[i] == "42") {
				require.Equal(t, rty.ErrNotCorrect, err)
				continue
			}
			require.Nil(t, err)
		}
		env.mustSend(testS, 301, rty.NewSetterCloseAction(0))
		require.Equal(t, int64(0), env.exec.Balance(ChallengeAddress(0)))

		var total int64
		for _, u := range testUsers {
			total += env.balance(u)
		}
		require.Equal(t, testBalance*int64(len(testUsers)), total)
	})
}
