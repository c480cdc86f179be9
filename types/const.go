// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/shopspring/decimal"
)

// coin conversation
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e17
)

// CoinsX 余额执行器名，账户的key前缀也由它决定
const CoinsX = "coins"

// CheckAmount 金额必须为正且不超过MaxCoin
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

// FormatAmount 最小单位转为币，保留4位小数
func FormatAmount(amount int64) string {
	return decimal.New(amount, -8).StringFixed(4)
}

// ParseAmount 带小数的字符串转为最小单位
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	v := d.Mul(decimal.New(Coin, 0))
	if !v.Equal(v.Truncate(0)) {
		return 0, ErrAmount
	}
	return v.IntPart(), nil
}
