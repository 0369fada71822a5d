// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package xval

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// ssbMagic is the HMAC message used for key derivation.
const ssbMagic = "XBOX360SSB"

// XValueLen is the number of hex digits in a normalized X value.
const XValueLen = 2 * PayloadSize

var (
	serialPattern = regexp.MustCompile(`^[0-9]{12}$`)
	xvaluePattern = regexp.MustCompile(`^[0-9A-F]{16}$`)
)

// ValidSerial reports whether s is exactly 12 ASCII decimal digits.
func ValidSerial(s string) bool {
	return serialPattern.MatchString(s)
}

// NormalizeXValue strips dash separators and upper-cases the result.
// The dashboard shows X values grouped as XXXX-XXXX-XXXX-XXXX.
func NormalizeXValue(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", ""))
}

// ValidXValue reports whether s is 16 hex digits once normalized.
func ValidXValue(s string) bool {
	return xvaluePattern.MatchString(NormalizeXValue(s))
}

// Decrypt recovers the 8-byte payload from an X value using the paired
// console serial number. The serial itself is not validated here.
func Decrypt(serial, xvalue string) (Payload, error) {
	norm := NormalizeXValue(xvalue)
	if len(norm) != XValueLen {
		return Payload{}, decodeErr(MalformedInput, fmt.Errorf("want %d hex digits, got %d", XValueLen, len(norm)))
	}
	ciphertext, err := hex.DecodeString(norm)
	if err != nil {
		return Payload{}, decodeErr(MalformedInput, err)
	}
	plain, err := DecryptBlock(serial, ciphertext)
	if err != nil {
		return Payload{}, err
	}
	var p Payload
	copy(p[:], plain)
	return p, nil
}

// DecryptBlock decrypts raw ciphertext with DES-ECB and no padding under the
// key derived from serial. The ciphertext must be a multiple of 8 bytes;
// empty input decrypts to an empty result.
func DecryptBlock(serial string, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%des.BlockSize != 0 {
		return nil, decodeErr(BlockSizeMismatch, fmt.Errorf("ciphertext length %d is not a multiple of %d", len(ciphertext), des.BlockSize))
	}
	block, err := newKeyedCipher(serial)
	if err != nil {
		return nil, err
	}
	plain := make([]byte, len(ciphertext))
	if err := decryptECB(block, plain, ciphertext); err != nil {
		return nil, decodeErr(DecryptionFailed, err)
	}
	return plain, nil
}

// DeriveKey computes the parity-adjusted DES key for a serial number:
// HMAC-SHA1 keyed with the serial plus one trailing NUL over the SSB magic,
// truncated to the first 8 bytes of the digest.
func DeriveKey(serial string) []byte {
	mac := hmac.New(sha1.New, paddedSerial(serial))
	mac.Write([]byte(ssbMagic))
	digest := mac.Sum(nil)
	key := make([]byte, des.BlockSize)
	copy(key, digest[:des.BlockSize])
	setOddParity(key)
	return key
}

// paddedSerial appends the single zero byte the historical scheme keys with.
func paddedSerial(serial string) []byte {
	b := make([]byte, len(serial)+1)
	copy(b, serial)
	return b
}

func newKeyedCipher(serial string) (cipher.Block, error) {
	return newDESCipher(DeriveKey(serial))
}

func newDESCipher(key []byte) (cipher.Block, error) {
	if len(key) != des.BlockSize {
		return nil, decodeErr(KeySetupFailed, fmt.Errorf("key length %d", len(key)))
	}
	if isWeakKey(key) {
		return nil, decodeErr(KeySetupFailed, fmt.Errorf("weak DES key %X", key))
	}
	block, err := des.NewCipher(key)
	if err != nil {
		return nil, decodeErr(KeySetupFailed, err)
	}
	return block, nil
}

// decryptECB runs the block cipher independently over each block.
func decryptECB(block cipher.Block, dst, src []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("block decrypt: %v", r)
		}
	}()
	bs := block.BlockSize()
	for i := 0; i < len(src); i += bs {
		block.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
	return nil
}

// setOddParity sets the low bit of each byte so it has an odd number of ones.
func setOddParity(key []byte) {
	for i, b := range key {
		b &= 0xFE
		if !oddOnes(b) {
			b |= 0x01
		}
		key[i] = b
	}
}

func oddOnes(b byte) bool {
	b ^= b >> 4
	b ^= b >> 2
	b ^= b >> 1
	return b&1 == 1
}

// weakKeys lists the 4 weak and 12 semi-weak DES keys in parity-adjusted form.
var weakKeys = [][]byte{
	{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
	{0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE, 0xFE},
	{0x1F, 0x1F, 0x1F, 0x1F, 0x0E, 0x0E, 0x0E, 0x0E},
	{0xE0, 0xE0, 0xE0, 0xE0, 0xF1, 0xF1, 0xF1, 0xF1},

	{0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE},
	{0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01, 0xFE, 0x01},
	{0x1F, 0xE0, 0x1F, 0xE0, 0x0E, 0xF1, 0x0E, 0xF1},
	{0xE0, 0x1F, 0xE0, 0x1F, 0xF1, 0x0E, 0xF1, 0x0E},
	{0x01, 0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1},
	{0xE0, 0x01, 0xE0, 0x01, 0xF1, 0x01, 0xF1, 0x01},
	{0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E, 0xFE},
	{0xFE, 0x1F, 0xFE, 0x1F, 0xFE, 0x0E, 0xFE, 0x0E},
	{0x01, 0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E},
	{0x1F, 0x01, 0x1F, 0x01, 0x0E, 0x01, 0x0E, 0x01},
	{0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1, 0xFE},
	{0xFE, 0xE0, 0xFE, 0xE0, 0xFE, 0xF1, 0xFE, 0xF1},
}

func isWeakKey(key []byte) bool {
	for _, w := range weakKeys {
		if bytes.Equal(key, w) {
			return true
		}
	}
	return false
}
