// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestChallenge() *Challenge {
	return &Challenge{
		SubmissionDeadline:   100,
		AnswerRevealDeadline: 200,
		ClaimDeadline:        300,
		EntryFee:             1000,
		Pot:                  3000,
	}
}

func TestGetPhase(t *testing.T) {
	c := newTestChallenge()
	assert.Equal(t, PhaseSubmission, GetPhase(c, 99))
	assert.Equal(t, PhaseAwaitingSolution, GetPhase(c, 100))
	assert.Equal(t, PhaseAwaitingSolution, GetPhase(c, 199))
	c.Solution = "7"
	assert.Equal(t, PhaseReveal, GetPhase(c, 100))
	assert.Equal(t, PhaseReveal, GetPhase(c, 199))
	assert.Equal(t, PhaseClaim, GetPhase(c, 200))
	assert.Equal(t, PhaseClaim, GetPhase(c, 299))
	assert.Equal(t, PhaseClosed, GetPhase(c, 300))
	assert.Equal(t, "Reveal", PhaseName(PhaseReveal))
	assert.Equal(t, "unknown", PhaseName(0))
}

func TestSettlementSingleWinner(t *testing.T) {
	c := newTestChallenge()
	c.CorrectSubmissions = 1
	assert.Equal(t, uint64(300), SetterCut(c.Pot))
	assert.Equal(t, uint64(2), c.Submissions())
	assert.Equal(t, uint64(1), Winners(c))
	share, err := WinnerShare(c)
	require.Nil(t, err)
	assert.Equal(t, uint64(2700), share)
}

func TestSettlementRefund(t *testing.T) {
	c := newTestChallenge()
	assert.Equal(t, uint64(2), Winners(c))
	share, err := WinnerShare(c)
	require.Nil(t, err)
	assert.Equal(t, uint64(1350), share)
}

func TestSettlementNoSubmitters(t *testing.T) {
	c := newTestChallenge()
	c.Pot = c.EntryFee
	_, err := WinnerShare(c)
	assert.Equal(t, ErrZeroCorrectSubmissions, err)
}

func TestSetterCutNoOverflow(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64/10), SetterCut(math.MaxUint64))
	assert.Equal(t, uint64(0), SetterCut(9))
	assert.Equal(t, uint64(1), SetterCut(10))
}

func TestActionName(t *testing.T) {
	assert.Equal(t, "Submit", ActionName(RiddleActionSubmit))
	assert.Equal(t, "unknown", ActionName(100))
	assert.Equal(t, int32(TyLogRiddleSetterClose), LogTy(RiddleActionSetterClose))
}

func TestNoOverDistribution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fee := rapid.Uint64Range(1, 1e12).Draw(t, "fee")
		subs := rapid.Uint64Range(1, 10000).Draw(t, "subs")
		correct := rapid.Uint64Range(0, subs).Draw(t, "correct")
		c := &Challenge{EntryFee: fee, Pot: (subs + 1) * fee, CorrectSubmissions: correct}
		cut := SetterCut(c.Pot)
		share, err := WinnerShare(c)
		if err != nil {
			t.Fatalf("share: %v", err)
		}
		paid := cut + share*Winners(c)
		if paid > c.Pot {
			t.Fatalf("paid %d over pot %d", paid, c.Pot)
		}
		if c.Pot-paid >= Winners(c) {
			t.Fatalf("residual %d too large for %d winners", c.Pot-paid, Winners(c))
		}
	})
}
