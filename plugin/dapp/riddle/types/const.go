// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// RiddleX 执行器名
const RiddleX = "riddle"

// riddle action ty
const (
	RiddleActionInit = iota
	RiddleActionCreate
	RiddleActionSubmit
	RiddleActionSolutionReveal
	RiddleActionSubmissionReveal
	RiddleActionSetterClaim
	RiddleActionSubmitterClaim
	RiddleActionSetterClose
)

// log ty
const (
	TyLogRiddleInit = iota + 2001
	TyLogRiddleCreate
	TyLogRiddleSubmit
	TyLogRiddleSolutionReveal
	TyLogRiddleSubmissionReveal
	TyLogRiddleSetterClaim
	TyLogRiddleSubmitterClaim
	TyLogRiddleSetterClose
)

// query func name
const (
	FuncNameGetGlobalConfig           = "GetGlobalConfig"
	FuncNameGetChallenge              = "GetChallenge"
	FuncNameGetSubmission             = "GetSubmission"
	FuncNameGetChallengePhase         = "GetChallengePhase"
	FuncNameGetSettlement             = "GetSettlement"
	FuncNameListChallengesBySetter    = "ListChallengesBySetter"
	FuncNameListChallengesBySubmitter = "ListChallengesBySubmitter"
)

const (
	// SetterCutPct 出题人从奖池中分得的百分比
	SetterCutPct = 10
	// MaxQuestionLength 题目和答案的最大字节数
	MaxQuestionLength = 256
	// MaxSubmissions 每个挑战默认最多的提交数
	MaxSubmissions = 10000
	// CommitmentLen keccak256 承诺的长度
	CommitmentLen = 32
	// DefaultCount 列表查询默认条数
	DefaultCount = int32(20)
	// MaxCount 列表查询最多条数
	MaxCount = int32(100)
)

var actionName = map[int32]string{
	RiddleActionInit:             "Init",
	RiddleActionCreate:           "Create",
	RiddleActionSubmit:           "Submit",
	RiddleActionSolutionReveal:   "SolutionReveal",
	RiddleActionSubmissionReveal: "SubmissionReveal",
	RiddleActionSetterClaim:      "SetterClaim",
	RiddleActionSubmitterClaim:   "SubmitterClaim",
	RiddleActionSetterClose:      "SetterClose",
}

// ActionName action的名字
func ActionName(ty int32) string {
	if name, ok := actionName[ty]; ok {
		return name
	}
	return "unknown"
}

// LogTy 每个action对应的log类型
func LogTy(ty int32) int32 {
	return int32(TyLogRiddleInit) + ty
}
