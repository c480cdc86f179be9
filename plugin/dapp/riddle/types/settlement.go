// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "math/bits"

// SetterCut floor(pot * SetterCutPct / 100)，乘法用128位避免溢出
func SetterCut(pot uint64) uint64 {
	hi, lo := bits.Mul64(pot, SetterCutPct)
	quo, _ := bits.Div64(hi, lo, 100)
	return quo
}

// Winners 参与分奖的人数。有人答对时只分给答对的人，否则所有提交者平分
func Winners(c *Challenge) uint64 {
	if c.CorrectSubmissions > 0 {
		return c.CorrectSubmissions
	}
	return c.Submissions()
}

// WinnerShare 每个获奖者的份额 floor((pot - setterCut) / winners)
func WinnerShare(c *Challenge) (uint64, error) {
	winners := Winners(c)
	if winners == 0 {
		return 0, ErrZeroCorrectSubmissions
	}
	return (c.Pot - SetterCut(c.Pot)) / winners, nil
}
