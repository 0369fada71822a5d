// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package xval

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Reference vector checked by SelfTest.
const (
	selfTestSerial  = "123456789012"
	selfTestXValue  = "21FE-AAC9-F165-B606"
	selfTestPayload = "0000000000000801"
	selfTestDigest  = "cf25d903b5df19a73e27533ffc2ce0862ae20557"
)

// SelfTest checks that HMAC-SHA1 and DES-ECB reproduce a known vector. It is
// meant to run once at startup; a failure is reported as AlgorithmUnavailable.
func SelfTest() error {
	mac := hmac.New(sha1.New, paddedSerial(selfTestSerial))
	mac.Write([]byte(ssbMagic))
	if got := hex.EncodeToString(mac.Sum(nil)); got != selfTestDigest {
		return decodeErr(AlgorithmUnavailable, fmt.Errorf("HMAC-SHA1 digest mismatch: %s", got))
	}
	p, err := Decrypt(selfTestSerial, selfTestXValue)
	if err != nil {
		return decodeErr(AlgorithmUnavailable, err)
	}
	if p.Hex() != selfTestPayload {
		return decodeErr(AlgorithmUnavailable, fmt.Errorf("DES-ECB plaintext mismatch: %s", p.Hex()))
	}
	return nil
}
