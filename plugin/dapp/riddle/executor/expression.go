// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	rty "github.com/33cn/riddlerush/plugin/dapp/riddle/types"
	"github.com/pkg/errors"
)

// 四则运算求值
//
//	E -> T (('+'|'-') T)*
//	T -> F (('*'|'/') F)*
//	F -> number | '(' E ')'
//
// 同级运算从左到右结合
type exprParser struct {
	expr string
	pos  int
}

// EvaluateExpression 去掉空白后对整个输入求值，返回的错误是求值器内部错误
func EvaluateExpression(expr string) (float64, error) {
	p := &exprParser{expr: strings.Map(dropSpace, expr)}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.pos < len(p.expr) {
		if p.expr[p.pos] == ')' {
			return 0, errors.Wrapf(rty.ErrUnbalancedParenthesis, "pos %d", p.pos)
		}
		return 0, errors.Wrapf(rty.ErrInvalidCharacter, "%q at pos %d", p.expr[p.pos], p.pos)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, rty.ErrNonFiniteResult
	}
	return v, nil
}

// CanonicalSolution 题目求值后的标准答案文本，最短的可还原十进制表示，不使用指数形式
func CanonicalSolution(question string) (string, error) {
	v, err := EvaluateExpression(question)
	if err != nil {
		rlog.Debug("CanonicalSolution", "question", question, "err", err)
		return "", rty.ErrInvalidExpression
	}
	if v == 0 {
		//-0
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}

func (p *exprParser) peek() (byte, bool) {
	if p.pos >= len(p.expr) {
		return 0, false
	}
	return p.expr[p.pos], true
}

func (p *exprParser) expression() (float64, error) {
	result, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return result, nil
		}
		p.pos++
		v, err := p.term()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			result += v
		} else {
			result -= v
		}
	}
}

func (p *exprParser) term() (float64, error) {
	result, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			return result, nil
		}
		p.pos++
		v, err := p.factor()
		if err != nil {
			return 0, err
		}
		if c == '*' {
			result *= v
			continue
		}
		if v == 0 {
			return 0, errors.Wrapf(rty.ErrDivisionByZero, "pos %d", p.pos)
		}
		result /= v
	}
}

func (p *exprParser) factor() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, rty.ErrUnexpectedEnd
	}
	switch {
	case isNumberChar(c):
		start := p.pos
		for p.pos < len(p.expr) && isNumberChar(p.expr[p.pos]) {
			p.pos++
		}
		v, err := strconv.ParseFloat(p.expr[start:p.pos], 64)
		if err != nil {
			return 0, errors.Wrapf(rty.ErrInvalidNumber, "%q", p.expr[start:p.pos])
		}
		return v, nil
	case c == '(':
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return 0, errors.Wrapf(rty.ErrUnexpectedEnd, "missing ) at pos %d", p.pos)
		}
		p.pos++
		return v, nil
	}
	return 0, errors.Wrapf(rty.ErrInvalidCharacter, "%q at pos %d", c, p.pos)
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}
