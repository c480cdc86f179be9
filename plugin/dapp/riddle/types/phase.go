// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 挑战的阶段，由截止时间和是否已公布答案决定
const (
	PhaseSubmission = int32(iota + 1)
	PhaseAwaitingSolution
	PhaseReveal
	PhaseClaim
	PhaseClosed
)

var phaseName = map[int32]string{
	PhaseSubmission:       "Submission",
	PhaseAwaitingSolution: "AwaitingSolution",
	PhaseReveal:           "Reveal",
	PhaseClaim:            "Claim",
	PhaseClosed:           "Closed",
}

// PhaseName 阶段的名字
func PhaseName(phase int32) string {
	if name, ok := phaseName[phase]; ok {
		return name
	}
	return "unknown"
}

// GetPhase now时刻挑战所处的阶段，所有截止时间都是开区间
func GetPhase(c *Challenge, now int64) int32 {
	switch {
	case now < c.SubmissionDeadline:
		return PhaseSubmission
	case now < c.AnswerRevealDeadline:
		if c.Solution == "" {
			return PhaseAwaitingSolution
		}
		return PhaseReveal
	case now < c.ClaimDeadline:
		return PhaseClaim
	default:
		return PhaseClosed
	}
}
