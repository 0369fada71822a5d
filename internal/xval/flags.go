// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package xval

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// PayloadSize is the size of a decrypted X value: one DES block.
const PayloadSize = 8

// Payload is a decrypted X value.
type Payload [PayloadSize]byte

// ParsePayload reads 16 hex digits (dashes allowed) as an already-decrypted payload.
func ParsePayload(s string) (Payload, error) {
	norm := NormalizeXValue(s)
	if !xvaluePattern.MatchString(norm) {
		return Payload{}, &ValidationError{Field: FieldXValue, Value: s}
	}
	var p Payload
	if _, err := hex.Decode(p[:], []byte(norm)); err != nil {
		return Payload{}, decodeErr(MalformedInput, err)
	}
	return p, nil
}

// Words splits the payload big-endian: High is bytes 0-3, Low is bytes 4-7.
func (p Payload) Words() Words {
	return Words{
		High: int32(binary.BigEndian.Uint32(p[0:4])),
		Low:  int32(binary.BigEndian.Uint32(p[4:8])),
	}
}

// Hex returns the payload as 16 upper-case hex digits.
func (p Payload) Hex() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

// String renders each byte as 0x-prefixed hex, space separated.
func (p Payload) String() string {
	parts := make([]string, len(p))
	for i, b := range p {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return strings.Join(parts, " ")
}

// Words is the (low, high) pair of signed 32-bit secdata words.
type Words struct {
	Low  int32
	High int32
}

const allOnes = int32(-1) // 0xFFFFFFFF

// ValidPair reports whether at most one of the words is populated. A serial
// paired with the wrong X value usually decrypts to two nonzero words.
func (w Words) ValidPair() bool {
	return IsValidPair(w.Low, w.High)
}

// Clean reports whether both words are zero.
func (w Words) Clean() bool {
	return IsClean(w.Low, w.High)
}

// Status classifies the pair with the same priority order as Describe.
func (w Words) Status() Status {
	switch {
	case w.Low == 0 && w.High == 0:
		return StatusClean
	case w.Low == allOnes && w.High == allOnes:
		return StatusInvalid
	case w.Low != 0 && w.High != 0:
		return StatusDecryptionError
	default:
		return StatusFlagged
	}
}

// Describe returns the labels for the pair.
func (w Words) Describe() []Label {
	return Describe(w.Low, w.High)
}

// IsValidPair is false only when both words are nonzero.
func IsValidPair(low, high int32) bool {
	return !(low != 0 && high != 0)
}

// IsClean is true iff both words are zero.
func IsClean(low, high int32) bool {
	return low == 0 && high == 0
}

// Status is the top-level verdict for a decrypted X value.
type Status int

const (
	StatusClean Status = iota
	StatusInvalid
	StatusDecryptionError
	StatusFlagged
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusInvalid:
		return "invalid"
	case StatusDecryptionError:
		return "decryption error"
	case StatusFlagged:
		return "flagged"
	default:
		return fmt.Sprintf("status %d", int(s))
	}
}

// MessageID is the translation key for the status. The first three share
// their key with the matching Label.
func (s Status) MessageID() string {
	switch s {
	case StatusClean:
		return string(LabelClean)
	case StatusInvalid:
		return string(LabelInvalid)
	case StatusDecryptionError:
		return string(LabelDecryptionError)
	default:
		return "xval.status.flagged"
	}
}

// Flag is a secdata violation bit found in the low word.
type Flag uint32

const (
	FlagAuthExFailure           Flag = 0x0001
	FlagAuthExNoTable           Flag = 0x0002
	FlagAuthExReserved          Flag = 0x0004
	FlagInvalidDVDGeometry      Flag = 0x0008
	FlagInvalidDVDDMI           Flag = 0x0010
	FlagDVDKeyvaultPairMismatch Flag = 0x0020
	FlagCRLDataInvalid          Flag = 0x0040
	FlagCRLCertificateRevoked   Flag = 0x0080
	FlagUnauthorizedInstall     Flag = 0x0100
	FlagKeyvaultPolicyViolation Flag = 0x0200
	FlagConsoleBanned           Flag = 0x0400
	FlagODDViolation            Flag = 0x0800
)

// unknownFlagMask covers bits with no assigned meaning.
const unknownFlagMask uint32 = 0xFFFFF000

// flagOrder is the declaration order labels are emitted in.
var flagOrder = []struct {
	flag  Flag
	label Label
}{
	{FlagAuthExFailure, LabelAuthExFailure},
	{FlagAuthExNoTable, LabelAuthExNoTable},
	{FlagAuthExReserved, LabelAuthExReserved},
	{FlagInvalidDVDGeometry, LabelInvalidDVDGeometry},
	{FlagInvalidDVDDMI, LabelInvalidDVDDMI},
	{FlagDVDKeyvaultPairMismatch, LabelDVDKeyvaultPairMismatch},
	{FlagCRLDataInvalid, LabelCRLDataInvalid},
	{FlagCRLCertificateRevoked, LabelCRLCertificateRevoked},
	{FlagUnauthorizedInstall, LabelUnauthorizedInstall},
	{FlagKeyvaultPolicyViolation, LabelKeyvaultPolicyViolation},
	{FlagConsoleBanned, LabelConsoleBanned},
	{FlagODDViolation, LabelODDViolation},
}

// Label identifies one human-readable result. The value doubles as the
// message ID used for translation; String gives the English text.
type Label string

const (
	LabelClean                   Label = "xval.status.clean"
	LabelInvalid                 Label = "xval.status.invalid"
	LabelDecryptionError         Label = "xval.status.decryption_error"
	LabelAuthExFailure           Label = "xval.flag.auth_ex_failure"
	LabelAuthExNoTable           Label = "xval.flag.auth_ex_no_table"
	LabelAuthExReserved          Label = "xval.flag.auth_ex_reserved"
	LabelInvalidDVDGeometry      Label = "xval.flag.invalid_dvd_geometry"
	LabelInvalidDVDDMI           Label = "xval.flag.invalid_dvd_dmi"
	LabelDVDKeyvaultPairMismatch Label = "xval.flag.dvd_keyvault_pair_mismatch"
	LabelCRLDataInvalid          Label = "xval.flag.crl_data_invalid"
	LabelCRLCertificateRevoked   Label = "xval.flag.crl_certificate_revoked"
	LabelUnauthorizedInstall     Label = "xval.flag.unauthorized_install"
	LabelKeyvaultPolicyViolation Label = "xval.flag.keyvault_policy_violation"
	LabelConsoleBanned           Label = "xval.flag.console_banned"
	LabelODDViolation            Label = "xval.flag.odd_violation"
	LabelUnknownViolations       Label = "xval.flag.unknown"
)

var labelText = map[Label]string{
	LabelClean:                   "clean",
	LabelInvalid:                 "invalid",
	LabelDecryptionError:         "decryption error",
	LabelAuthExFailure:           "AuthEx (AP25) Challenge Failure",
	LabelAuthExNoTable:           "AuthEx (AP25) Table Missing",
	LabelAuthExReserved:          "AuthEx (AP25) Reserved Flag",
	LabelInvalidDVDGeometry:      "Invalid DVD Geometry",
	LabelInvalidDVDDMI:           "Invalid DVD DMI",
	LabelDVDKeyvaultPairMismatch: "DVD Keyvault Pair Mismatch",
	LabelCRLDataInvalid:          "Invalid CRL Data",
	LabelCRLCertificateRevoked:   "CRL Certificate Revoked",
	LabelUnauthorizedInstall:     "Unauthorized Install",
	LabelKeyvaultPolicyViolation: "KeyVault Policy Violation",
	LabelConsoleBanned:           "Console Banned",
	LabelODDViolation:            "ODD Violation",
	LabelUnknownViolations:       "Unknown Violation(s)",
}

func (l Label) String() string {
	if s, ok := labelText[l]; ok {
		return s
	}
	return string(l)
}

// Labels returns every known label, top-level statuses first.
func Labels() []Label {
	out := []Label{LabelClean, LabelInvalid, LabelDecryptionError}
	for _, f := range flagOrder {
		out = append(out, f.label)
	}
	return append(out, LabelUnknownViolations)
}

// Describe maps a (low, high) pair to its labels. Clean, invalid and
// decryption error are exclusive and checked in that order; otherwise each
// set bit of low contributes a label in declaration order.
func Describe(low, high int32) []Label {
	switch (Words{Low: low, High: high}).Status() {
	case StatusClean:
		return []Label{LabelClean}
	case StatusInvalid:
		return []Label{LabelInvalid}
	case StatusDecryptionError:
		return []Label{LabelDecryptionError}
	}

	bits := uint32(low)
	labels := []Label{}
	for _, f := range flagOrder {
		if bits&uint32(f.flag) != 0 {
			labels = append(labels, f.label)
		}
	}
	if bits&unknownFlagMask != 0 {
		labels = append(labels, LabelUnknownViolations)
	}
	return labels
}

// FlagsText concatenates the English labels with no separator, the way the
// dashboard tool historically printed them.
func FlagsText(labels []Label) string {
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l.String())
	}
	return b.String()
}
