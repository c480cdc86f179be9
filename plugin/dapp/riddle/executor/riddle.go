// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sync"

	"github.com/33cn/riddlerush/executor/drivers"
	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/33cn/riddlerush/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.riddle")

var (
	registerOnce sync.Once
	subCfgMu     sync.RWMutex
	subCfg       = defaultSubConfig()
)

type subConfig struct {
	// 允许初始化的地址，为空时任何人都可以初始化
	Authority      []string `json:"authority"`
	MaxSubmissions uint64   `json:"maxSubmissions"`
}

func defaultSubConfig() *subConfig {
	return &subConfig{MaxSubmissions: rty.MaxSubmissions}
}

func getSubConfig() *subConfig {
	subCfgMu.RLock()
	defer subCfgMu.RUnlock()
	return subCfg
}

// Init 注册riddle执行器，每次调用都会用新的子配置替换旧的
func Init(name string, sub []byte) {
	cfg := defaultSubConfig()
	types.MustDecode(sub, cfg)
	if cfg.MaxSubmissions == 0 {
		cfg.MaxSubmissions = rty.MaxSubmissions
	}
	subCfgMu.Lock()
	subCfg = cfg
	subCfgMu.Unlock()
	registerOnce.Do(func() {
		drivers.Register(GetName(), newRiddle, 0)
	})
}

// GetName 执行器名
func GetName() string {
	return newRiddle().GetName()
}

// Riddle 谜题挑战执行器
type Riddle struct {
	drivers.DriverBase
}

func newRiddle() drivers.Driver {
	r := &Riddle{}
	r.SetChild(r)
	return r
}

// GetName get
func (r *Riddle) GetName() string {
	return rty.RiddleX
}

// GetActionName action名
func (r *Riddle) GetActionName(tx *types.Transaction) string {
	var action rty.RiddleAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return "unknown"
	}
	return rty.ActionName(action.Ty)
}

// CheckTx payload必须能解码
func (r *Riddle) CheckTx(tx *types.Transaction, index int) error {
	var action rty.RiddleAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return types.ErrDecode
	}
	return nil
}

// Exec 按action类型分发
func (r *Riddle) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rty.RiddleAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	rlog.Debug("exec riddle tx", "action", rty.ActionName(action.Ty), "from", tx.From())
	actiondb := NewAction(r, tx, index)
	switch {
	case action.Ty == rty.RiddleActionInit && action.GetInit() != nil:
		return actiondb.Initialize(action.GetInit())
	case action.Ty == rty.RiddleActionCreate && action.GetCreate() != nil:
		return actiondb.CreateChallenge(action.GetCreate())
	case action.Ty == rty.RiddleActionSubmit && action.GetSubmit() != nil:
		return actiondb.CreateSubmission(action.GetSubmit())
	case action.Ty == rty.RiddleActionSolutionReveal && action.GetSolutionReveal() != nil:
		return actiondb.ChallengeSolutionReveal(action.GetSolutionReveal())
	case action.Ty == rty.RiddleActionSubmissionReveal && action.GetSubmissionReveal() != nil:
		return actiondb.SubmissionSolutionReveal(action.GetSubmissionReveal())
	case action.Ty == rty.RiddleActionSetterClaim && action.GetSetterClaim() != nil:
		return actiondb.SetterClaim(action.GetSetterClaim())
	case action.Ty == rty.RiddleActionSubmitterClaim && action.GetSubmitterClaim() != nil:
		return actiondb.SubmitterClaim(action.GetSubmitterClaim())
	case action.Ty == rty.RiddleActionSetterClose && action.GetSetterClose() != nil:
		return actiondb.SetterClose(action.GetSetterClose())
	}
	return nil, types.ErrActionNotSupport
}
