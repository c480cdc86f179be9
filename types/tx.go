// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/riddlerush/common"
	"github.com/33cn/riddlerush/common/address"
	"github.com/33cn/riddlerush/common/crypto"
)

// CreateTx 构造一个未签名的交易
func CreateTx(execer string, action Message, nonce int64) *Transaction {
	return &Transaction{Execer: []byte(execer), Payload: Encode(action), Nonce: nonce}
}

// Hash 交易的hash不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

// Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

// Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	return CheckSign(Encode(&copytx), tx.GetSignature())
}

// CheckSign 按签名类型找到加密驱动并验证
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(crypto.GetName(sign.Ty))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

// From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddress(tx.GetSignature().GetPubkey()).String()
}

// GetSignature get
func (tx *Transaction) GetSignature() *Signature {
	if tx != nil {
		return tx.Signature
	}
	return nil
}

// GetPubkey get
func (m *Signature) GetPubkey() []byte {
	if m != nil {
		return m.Pubkey
	}
	return nil
}
