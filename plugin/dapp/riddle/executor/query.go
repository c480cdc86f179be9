// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"strconv"

	dbm "github.com/33cn/riddlerush/common/db"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/types"
)

// Query_GetGlobalConfig 全局配置
func (r *Riddle) Query_GetGlobalConfig(in *types.ReqNil) (types.Message, error) {
	value, err := r.GetStateDB().Get(globalConfigKey)
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

// Query_GetChallenge 按id查询挑战
func (r *Riddle) Query_GetChallenge(in *rty.ReqRiddleChallenge) (types.Message, error) {
	return getChallenge(r.GetStateDB(), in.ChallengeId)
}

// Query_GetSubmission 查询提交
func (r *Riddle) Query_GetSubmission(in *rty.ReqRiddleSubmission) (types.Message, error) {
	return getSubmission(r.GetStateDB(), in.ChallengeId, in.Submitter)
}

// Query_GetChallengePhase 当前时间挑战所处的阶段
func (r *Riddle) Query_GetChallengePhase(in *rty.ReqRiddleChallenge) (types.Message, error) {
	c, err := getChallenge(r.GetStateDB(), in.ChallengeId)
	if err != nil {
		return nil, err
	}
	now := r.GetBlockTime()
	phase := rty.GetPhase(c, now)
	return &rty.ReplyRiddlePhase{ChallengeId: c.Id, Phase: phase, PhaseName: rty.PhaseName(phase), Now: now}, nil
}

// Query_GetSettlement 按当前状态计算出题人分成和每人份额
func (r *Riddle) Query_GetSettlement(in *rty.ReqRiddleChallenge) (types.Message, error) {
	c, err := getChallenge(r.GetStateDB(), in.ChallengeId)
	if err != nil {
		return nil, err
	}
	reply := &rty.ReplyRiddleSettlement{
		ChallengeId: c.Id,
		Pot:         c.Pot,
		SetterCut:   rty.SetterCut(c.Pot),
		Winners:     rty.Winners(c),
		Held:        r.GetCoinsAccount().LoadAccount(ChallengeAddress(c.Id)).GetBalance(),
	}
	if share, err := rty.WinnerShare(c); err == nil {
		reply.Share = share
	}
	return reply, nil
}

// Query_ListChallengesBySetter 出题人创建的挑战，Primary为上一页最后一个挑战id
func (r *Riddle) Query_ListChallengesBySetter(in *types.ReqAddr) (types.Message, error) {
	return r.listChallenges(in, calcSetterIndexPrefix(in.Addr), calcSetterIndexKey)
}

// Query_ListChallengesBySubmitter 玩家参与的挑战
func (r *Riddle) Query_ListChallengesBySubmitter(in *types.ReqAddr) (types.Message, error) {
	return r.listChallenges(in, calcSubmitterIndexPrefix(in.Addr), calcSubmitterIndexKey)
}

func (r *Riddle) listChallenges(in *types.ReqAddr, prefix []byte, keyFn func(string, uint64) []byte) (types.Message, error) {
	if in.Addr == "" {
		return nil, types.ErrInvalidAddress
	}
	count := in.Count
	if count <= 0 {
		count = rty.DefaultCount
	}
	if count > rty.MaxCount {
		count = rty.MaxCount
	}
	var key []byte
	if in.Primary != "" {
		id, err := strconv.ParseUint(in.Primary, 10, 64)
		if err != nil {
			return nil, types.ErrInvalidParam
		}
		key = keyFn(in.Addr, id)
	}
	values := dbm.NewListHelper(r.GetQueryDB()).List(prefix, key, count, in.Direction)
	reply := &rty.ReplyRiddleChallengeList{}
	for _, value := range values {
		var record rty.RiddleRecord
		if err := types.Decode(value, &record); err != nil {
			rlog.Error("listChallenges", "decode", err)
			continue
		}
		c, err := getChallenge(r.GetStateDB(), record.ChallengeId)
		if err != nil {
			rlog.Error("listChallenges", "id", record.ChallengeId, "err", err)
			continue
		}
		reply.Challenges = append(reply.Challenges, c)
	}
	if len(reply.Challenges) == 0 {
		return nil, types.ErrNotFound
	}
	return reply, nil
}
