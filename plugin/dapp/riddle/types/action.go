// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// NewInitAction init
func NewInitAction() *RiddleAction {
	return &RiddleAction{Ty: RiddleActionInit, Init: &RiddleInit{}}
}

// NewCreateAction create
func NewCreateAction(question string, sdl, ardl, cdl int64, entryFee uint64) *RiddleAction {
	return &RiddleAction{
		Ty: RiddleActionCreate,
		Create: &RiddleCreate{
			Question:             question,
			SubmissionDeadline:   sdl,
			AnswerRevealDeadline: ardl,
			ClaimDeadline:        cdl,
			EntryFee:             entryFee,
		},
	}
}

// NewSubmitAction submit
func NewSubmitAction(id uint64, commitment []byte) *RiddleAction {
	return &RiddleAction{Ty: RiddleActionSubmit, Submit: &RiddleSubmit{ChallengeId: id, Commitment: commitment}}
}

// NewSolutionRevealAction solution reveal
func NewSolutionRevealAction(id uint64) *RiddleAction {
	return &RiddleAction{Ty: RiddleActionSolutionReveal, SolutionReveal: &RiddleSolutionReveal{ChallengeId: id}}
}

// NewSubmissionRevealAction submission reveal
func NewSubmissionRevealAction(id uint64, nonce, plaintext string) *RiddleAction {
	return &RiddleAction{
		Ty:               RiddleActionSubmissionReveal,
		SubmissionReveal: &RiddleSubmissionReveal{ChallengeId: id, Nonce: nonce, Plaintext: plaintext},
	}
}

// NewSetterClaimAction setter claim
func NewSetterClaimAction(id uint64) *RiddleAction {
	return &RiddleAction{Ty: RiddleActionSetterClaim, SetterClaim: &RiddleSetterClaim{ChallengeId: id}}
}

// NewSubmitterClaimAction submitter claim
func NewSubmitterClaimAction(id uint64) *RiddleAction {
	return &RiddleAction{Ty: RiddleActionSubmitterClaim, SubmitterClaim: &RiddleSubmitterClaim{ChallengeId: id}}
}

// NewSetterCloseAction setter close
func NewSetterCloseAction(id uint64) *RiddleAction {
	return &RiddleAction{Ty: RiddleActionSetterClose, SetterClose: &RiddleSetterClose{ChallengeId: id}}
}
