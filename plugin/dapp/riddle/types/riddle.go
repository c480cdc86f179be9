// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// GlobalConfig 全局配置，保存下一个挑战的id
type GlobalConfig struct {
	NextChallengeId uint64 `protobuf:"varint,1,opt,name=nextChallengeId,proto3" json:"nextChallengeId"`
	// 执行初始化的地址
	Authority string `protobuf:"bytes,2,opt,name=authority,proto3" json:"authority"`
}

func (m *GlobalConfig) Reset()         { *m = GlobalConfig{} }
func (m *GlobalConfig) String() string { return proto.CompactTextString(m) }
func (*GlobalConfig) ProtoMessage()    {}

// Challenge 一个谜题挑战
type Challenge struct {
	Id                   uint64 `protobuf:"varint,1,opt,name=id,proto3" json:"id"`
	Question             string `protobuf:"bytes,2,opt,name=question,proto3" json:"question"`
	Solution             string `protobuf:"bytes,3,opt,name=solution,proto3" json:"solution"`
	SubmissionDeadline   int64  `protobuf:"varint,4,opt,name=submissionDeadline,proto3" json:"submissionDeadline"`
	AnswerRevealDeadline int64  `protobuf:"varint,5,opt,name=answerRevealDeadline,proto3" json:"answerRevealDeadline"`
	ClaimDeadline        int64  `protobuf:"varint,6,opt,name=claimDeadline,proto3" json:"claimDeadline"`
	EntryFee             uint64 `protobuf:"varint,7,opt,name=entryFee,proto3" json:"entryFee"`
	Setter               string `protobuf:"bytes,8,opt,name=setter,proto3" json:"setter"`
	Pot                  uint64 `protobuf:"varint,9,opt,name=pot,proto3" json:"pot"`
	SetterCutClaimed     bool   `protobuf:"varint,10,opt,name=setterCutClaimed,proto3" json:"setterCutClaimed"`
	CorrectSubmissions   uint64 `protobuf:"varint,11,opt,name=correctSubmissions,proto3" json:"correctSubmissions"`
}

func (m *Challenge) Reset()         { *m = Challenge{} }
func (m *Challenge) String() string { return proto.CompactTextString(m) }
func (*Challenge) ProtoMessage()    {}

// Submissions 提交数，奖池中除了出题人的一份，每份对应一个提交
func (m *Challenge) Submissions() uint64 {
	if m == nil || m.EntryFee == 0 || m.Pot == 0 {
		return 0
	}
	return m.Pot/m.EntryFee - 1
}

// Submission 玩家的一次提交
type Submission struct {
	ChallengeId     uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Submitter       string `protobuf:"bytes,2,opt,name=submitter,proto3" json:"submitter"`
	EncryptedAnswer []byte `protobuf:"bytes,3,opt,name=encryptedAnswer,proto3" json:"encryptedAnswer"`
	Revealed        bool   `protobuf:"varint,4,opt,name=revealed,proto3" json:"revealed"`
	AnswerCorrect   bool   `protobuf:"varint,5,opt,name=answerCorrect,proto3" json:"answerCorrect"`
	Claimed         bool   `protobuf:"varint,6,opt,name=claimed,proto3" json:"claimed"`
}

func (m *Submission) Reset()         { *m = Submission{} }
func (m *Submission) String() string { return proto.CompactTextString(m) }
func (*Submission) ProtoMessage()    {}

// RiddleAction 交易的payload
type RiddleAction struct {
	Ty               int32                   `protobuf:"varint,1,opt,name=ty,proto3" json:"ty"`
	Init             *RiddleInit             `protobuf:"bytes,2,opt,name=init,proto3" json:"init,omitempty"`
	Create           *RiddleCreate           `protobuf:"bytes,3,opt,name=create,proto3" json:"create,omitempty"`
	Submit           *RiddleSubmit           `protobuf:"bytes,4,opt,name=submit,proto3" json:"submit,omitempty"`
	SolutionReveal   *RiddleSolutionReveal   `protobuf:"bytes,5,opt,name=solutionReveal,proto3" json:"solutionReveal,omitempty"`
	SubmissionReveal *RiddleSubmissionReveal `protobuf:"bytes,6,opt,name=submissionReveal,proto3" json:"submissionReveal,omitempty"`
	SetterClaim      *RiddleSetterClaim      `protobuf:"bytes,7,opt,name=setterClaim,proto3" json:"setterClaim,omitempty"`
	SubmitterClaim   *RiddleSubmitterClaim   `protobuf:"bytes,8,opt,name=submitterClaim,proto3" json:"submitterClaim,omitempty"`
	SetterClose      *RiddleSetterClose      `protobuf:"bytes,9,opt,name=setterClose,proto3" json:"setterClose,omitempty"`
}

func (m *RiddleAction) Reset()         { *m = RiddleAction{} }
func (m *RiddleAction) String() string { return proto.CompactTextString(m) }
func (*RiddleAction) ProtoMessage()    {}

// GetInit get
func (m *RiddleAction) GetInit() *RiddleInit {
	if m != nil {
		return m.Init
	}
	return nil
}

// GetCreate get
func (m *RiddleAction) GetCreate() *RiddleCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

// GetSubmit get
func (m *RiddleAction) GetSubmit() *RiddleSubmit {
	if m != nil {
		return m.Submit
	}
	return nil
}

// GetSolutionReveal get
func (m *RiddleAction) GetSolutionReveal() *RiddleSolutionReveal {
	if m != nil {
		return m.SolutionReveal
	}
	return nil
}

// GetSubmissionReveal get
func (m *RiddleAction) GetSubmissionReveal() *RiddleSubmissionReveal {
	if m != nil {
		return m.SubmissionReveal
	}
	return nil
}

// GetSetterClaim get
func (m *RiddleAction) GetSetterClaim() *RiddleSetterClaim {
	if m != nil {
		return m.SetterClaim
	}
	return nil
}

// GetSubmitterClaim get
func (m *RiddleAction) GetSubmitterClaim() *RiddleSubmitterClaim {
	if m != nil {
		return m.SubmitterClaim
	}
	return nil
}

// GetSetterClose get
func (m *RiddleAction) GetSetterClose() *RiddleSetterClose {
	if m != nil {
		return m.SetterClose
	}
	return nil
}

// RiddleInit 初始化全局配置
type RiddleInit struct{}

func (m *RiddleInit) Reset()         { *m = RiddleInit{} }
func (m *RiddleInit) String() string { return proto.CompactTextString(m) }
func (*RiddleInit) ProtoMessage()    {}

// RiddleCreate 创建挑战，答案由题目求值得到
type RiddleCreate struct {
	Question             string `protobuf:"bytes,1,opt,name=question,proto3" json:"question"`
	SubmissionDeadline   int64  `protobuf:"varint,2,opt,name=submissionDeadline,proto3" json:"submissionDeadline"`
	AnswerRevealDeadline int64  `protobuf:"varint,3,opt,name=answerRevealDeadline,proto3" json:"answerRevealDeadline"`
	ClaimDeadline        int64  `protobuf:"varint,4,opt,name=claimDeadline,proto3" json:"claimDeadline"`
	EntryFee             uint64 `protobuf:"varint,5,opt,name=entryFee,proto3" json:"entryFee"`
}

func (m *RiddleCreate) Reset()         { *m = RiddleCreate{} }
func (m *RiddleCreate) String() string { return proto.CompactTextString(m) }
func (*RiddleCreate) ProtoMessage()    {}

// RiddleSubmit 提交答案的承诺
type RiddleSubmit struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Commitment  []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment"`
}

func (m *RiddleSubmit) Reset()         { *m = RiddleSubmit{} }
func (m *RiddleSubmit) String() string { return proto.CompactTextString(m) }
func (*RiddleSubmit) ProtoMessage()    {}

// RiddleSolutionReveal 公布标准答案
type RiddleSolutionReveal struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
}

func (m *RiddleSolutionReveal) Reset()         { *m = RiddleSolutionReveal{} }
func (m *RiddleSolutionReveal) String() string { return proto.CompactTextString(m) }
func (*RiddleSolutionReveal) ProtoMessage()    {}

// RiddleSubmissionReveal 玩家公开答案和nonce
type RiddleSubmissionReveal struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Nonce       string `protobuf:"bytes,2,opt,name=nonce,proto3" json:"nonce"`
	Plaintext   string `protobuf:"bytes,3,opt,name=plaintext,proto3" json:"plaintext"`
}

func (m *RiddleSubmissionReveal) Reset()         { *m = RiddleSubmissionReveal{} }
func (m *RiddleSubmissionReveal) String() string { return proto.CompactTextString(m) }
func (*RiddleSubmissionReveal) ProtoMessage()    {}

// RiddleSetterClaim 出题人领取分成
type RiddleSetterClaim struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
}

func (m *RiddleSetterClaim) Reset()         { *m = RiddleSetterClaim{} }
func (m *RiddleSetterClaim) String() string { return proto.CompactTextString(m) }
func (*RiddleSetterClaim) ProtoMessage()    {}

// RiddleSubmitterClaim 玩家领奖
type RiddleSubmitterClaim struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
}

func (m *RiddleSubmitterClaim) Reset()         { *m = RiddleSubmitterClaim{} }
func (m *RiddleSubmitterClaim) String() string { return proto.CompactTextString(m) }
func (*RiddleSubmitterClaim) ProtoMessage()    {}

// RiddleSetterClose 出题人关闭挑战
type RiddleSetterClose struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
}

func (m *RiddleSetterClose) Reset()         { *m = RiddleSetterClose{} }
func (m *RiddleSetterClose) String() string { return proto.CompactTextString(m) }
func (*RiddleSetterClose) ProtoMessage()    {}

// ReceiptRiddle 每个action的回执，本地索引由它生成
type ReceiptRiddle struct {
	ChallengeId uint64   `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Addr        string   `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr"`
	Setter      string   `protobuf:"bytes,3,opt,name=setter,proto3" json:"setter"`
	Action      int32    `protobuf:"varint,4,opt,name=action,proto3" json:"action"`
	Amount      int64    `protobuf:"varint,5,opt,name=amount,proto3" json:"amount"`
	Submitters  []string `protobuf:"bytes,6,rep,name=submitters,proto3" json:"submitters,omitempty"`
}

func (m *ReceiptRiddle) Reset()         { *m = ReceiptRiddle{} }
func (m *ReceiptRiddle) String() string { return proto.CompactTextString(m) }
func (*ReceiptRiddle) ProtoMessage()    {}

// ReqRiddleChallenge 按id查询
type ReqRiddleChallenge struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
}

func (m *ReqRiddleChallenge) Reset()         { *m = ReqRiddleChallenge{} }
func (m *ReqRiddleChallenge) String() string { return proto.CompactTextString(m) }
func (*ReqRiddleChallenge) ProtoMessage()    {}

// ReqRiddleSubmission 按挑战和提交人查询
type ReqRiddleSubmission struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Submitter   string `protobuf:"bytes,2,opt,name=submitter,proto3" json:"submitter"`
}

func (m *ReqRiddleSubmission) Reset()         { *m = ReqRiddleSubmission{} }
func (m *ReqRiddleSubmission) String() string { return proto.CompactTextString(m) }
func (*ReqRiddleSubmission) ProtoMessage()    {}

// ReplyRiddlePhase 挑战当前所处的阶段
type ReplyRiddlePhase struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Phase       int32  `protobuf:"varint,2,opt,name=phase,proto3" json:"phase"`
	PhaseName   string `protobuf:"bytes,3,opt,name=phaseName,proto3" json:"phaseName"`
	Now         int64  `protobuf:"varint,4,opt,name=now,proto3" json:"now"`
}

func (m *ReplyRiddlePhase) Reset()         { *m = ReplyRiddlePhase{} }
func (m *ReplyRiddlePhase) String() string { return proto.CompactTextString(m) }
func (*ReplyRiddlePhase) ProtoMessage()    {}

// ReplyRiddleSettlement 按当前状态计算的分配结果
type ReplyRiddleSettlement struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Pot         uint64 `protobuf:"varint,2,opt,name=pot,proto3" json:"pot"`
	SetterCut   uint64 `protobuf:"varint,3,opt,name=setterCut,proto3" json:"setterCut"`
	Winners     uint64 `protobuf:"varint,4,opt,name=winners,proto3" json:"winners"`
	Share       uint64 `protobuf:"varint,5,opt,name=share,proto3" json:"share"`
	Held        int64  `protobuf:"varint,6,opt,name=held,proto3" json:"held"`
}

func (m *ReplyRiddleSettlement) Reset()         { *m = ReplyRiddleSettlement{} }
func (m *ReplyRiddleSettlement) String() string { return proto.CompactTextString(m) }
func (*ReplyRiddleSettlement) ProtoMessage()    {}

// ReplyRiddleChallengeList 挑战列表
type ReplyRiddleChallengeList struct {
	Challenges []*Challenge `protobuf:"bytes,1,rep,name=challenges,proto3" json:"challenges"`
}

func (m *ReplyRiddleChallengeList) Reset()         { *m = ReplyRiddleChallengeList{} }
func (m *ReplyRiddleChallengeList) String() string { return proto.CompactTextString(m) }
func (*ReplyRiddleChallengeList) ProtoMessage()    {}

// RiddleRecord 本地索引中保存的记录
type RiddleRecord struct {
	ChallengeId uint64 `protobuf:"varint,1,opt,name=challengeId,proto3" json:"challengeId"`
	Addr        string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr"`
}

func (m *RiddleRecord) Reset()         { *m = RiddleRecord{} }
func (m *RiddleRecord) String() string { return proto.CompactTextString(m) }
func (*RiddleRecord) ProtoMessage()    {}
