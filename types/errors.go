// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 框架通用错误
var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrAmount            = errors.New("ErrAmount")
	ErrBalanceOverflow   = errors.New("ErrBalanceOverflow")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrExecNotFound      = errors.New("ErrExecNotFound")
	ErrExecNameNotAllow  = errors.New("ErrExecNameNotAllow")
	ErrSign              = errors.New("ErrSign")
	ErrDecode            = errors.New("ErrDecode")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrNilTransaction    = errors.New("ErrNilTransaction")
	ErrEmpty             = errors.New("ErrEmpty")
	ErrConfig            = errors.New("ErrConfig")
	ErrExecClosed        = errors.New("ErrExecClosed")
	ErrGenesisNotAllowed = errors.New("ErrGenesisNotAllowed")
	ErrTxDup             = errors.New("ErrTxDup")
)
