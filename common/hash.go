// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package common 哈希与编码的公共函数
package common

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

//Sha256 对数据做一次sha256
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}

//Sha2Sum 双重sha256
func Sha2Sum(b []byte) (out [32]byte) {
	s := sha256.Sum256(b)
	return sha256.Sum256(s[:])
}

//Rimp160AfterSha256 ripemd160(sha256(b))
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	rimpHash := ripemd160.New()
	rimpHash.Write(Sha256(b))
	copy(out[:], rimpHash.Sum(nil))
	return
}

// Keccak256 computes the legacy (pre-FIPS) Keccak-256 digest of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

//ToHex []byte -> hex
func ToHex(b []byte) string {
	h := hex.EncodeToString(b)
	if len(h) == 0 {
		return ""
	}
	return "0x" + h
}

//HashHex []byte -> hex，不带0x前缀
func HashHex(d []byte) string {
	return hex.EncodeToString(d)
}

//FromHex hex -> []byte
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		return hex.DecodeString(s)
	}
	return []byte{}, nil
}

// CopyBytes Returns an exact copy of the provided bytes
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return
}
