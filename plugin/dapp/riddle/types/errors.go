// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrSubmissionDeadlinePassed                    = errors.New("ErrSubmissionDeadlinePassed")
	ErrAnswerRevealDeadlinBeforeSubmissionDeadline = errors.New("ErrAnswerRevealDeadlinBeforeSubmissionDeadline")
	ErrAnswerRevealDeadlinBeforeClaimDeadline      = errors.New("ErrAnswerRevealDeadlinBeforeClaimDeadline")
	ErrQuestionTooLong                             = errors.New("ErrQuestionTooLong")
	ErrSolutionTooLong                             = errors.New("ErrSolutionTooLong")
	ErrZeroEntryFee                                = errors.New("ErrZeroEntryFee")
	ErrInvalidExpression                           = errors.New("ErrInvalidExpression")
	ErrWithdrawTooEarly                            = errors.New("ErrWithdrawTooEarly")
	ErrWithdrawTooLate                             = errors.New("ErrWithdrawTooLate")
	ErrInsufficientFunds                           = errors.New("ErrInsufficientFunds")
	ErrSolutionRevealDeadlineNotMet                = errors.New("ErrSolutionRevealDeadlineNotMet")
	ErrSubmissionAlreadyRevealed                   = errors.New("ErrSubmissionAlreadyRevealed")
	ErrNotTheSubmitter                             = errors.New("ErrNotTheSubmitter")
	ErrSolutionNotRevealed                         = errors.New("ErrSolutionNotRevealed")
	ErrAnswerMismatch                              = errors.New("ErrAnswerMismatch")
	ErrZeroCorrectSubmissions                      = errors.New("ErrZeroCorrectSubmissions")
)

var (
	ErrNotCorrect         = errors.New("ErrNotCorrect")
	ErrNotTheSetter       = errors.New("ErrNotTheSetter")
	ErrSetterCutClaimed   = errors.New("ErrSetterCutClaimed")
	ErrSubmissionClaimed  = errors.New("ErrSubmissionClaimed")
	ErrSubmissionExists   = errors.New("ErrSubmissionExists")
	ErrChallengeNotFound  = errors.New("ErrChallengeNotFound")
	ErrSubmissionNotFound = errors.New("ErrSubmissionNotFound")
	ErrNotInitialized     = errors.New("ErrNotInitialized")
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	ErrNotAuthority       = errors.New("ErrNotAuthority")
	ErrInvalidCommitment  = errors.New("ErrInvalidCommitment")
	ErrTooManySubmissions = errors.New("ErrTooManySubmissions")
	ErrChallengePhase     = errors.New("ErrChallengePhase")
	ErrChallengeMismatch  = errors.New("ErrChallengeMismatch")
)

// 表达式求值的内部错误，对外统一为 ErrInvalidExpression
var (
	ErrInvalidCharacter      = errors.New("ErrInvalidCharacter")
	ErrInvalidNumber         = errors.New("ErrInvalidNumber")
	ErrUnexpectedEnd         = errors.New("ErrUnexpectedEnd")
	ErrDivisionByZero        = errors.New("ErrDivisionByZero")
	ErrUnbalancedParenthesis = errors.New("ErrUnbalancedParenthesis")
	ErrNonFiniteResult       = errors.New("ErrNonFiniteResult")
)
