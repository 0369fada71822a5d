// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package xval

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_TopLevel(t *testing.T) {
	tests := []struct {
		name      string
		low, high int32
		want      []Label
	}{
		{name: "clean", low: 0, high: 0, want: []Label{LabelClean}},
		{name: "invalid", low: -1, high: -1, want: []Label{LabelInvalid}},
		{name: "decryption error", low: 5, high: 3, want: []Label{LabelDecryptionError}},
		{name: "low all ones only", low: -1, high: 7, want: []Label{LabelDecryptionError}},
		{name: "high only", low: 0, high: 1, want: []Label{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.low, tt.high)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Describe(%d, %d) = %v, want %v", tt.low, tt.high, got, tt.want)
			}
		})
	}
}

func TestDescribe_TextExact(t *testing.T) {
	assert.Equal(t, "clean", FlagsText(Describe(0, 0)))
	assert.Equal(t, "invalid", FlagsText(Describe(int32(-1), int32(-1))))
	assert.Equal(t, "decryption error", FlagsText(Describe(5, 3)))
}

func TestDescribe_SingleFlag(t *testing.T) {
	got := Describe(1, 0)
	assert.Equal(t, []Label{LabelAuthExFailure}, got)
	assert.Equal(t, "AuthEx (AP25) Challenge Failure", FlagsText(got))
}

func TestDescribe_MultipleFlagsInDeclarationOrder(t *testing.T) {
	got := Describe(0x0801, 0)
	assert.Equal(t, []Label{LabelAuthExFailure, LabelODDViolation}, got)
	assert.Equal(t, "AuthEx (AP25) Challenge FailureODD Violation", FlagsText(got))
}

func TestDescribe_EveryBit(t *testing.T) {
	for i, f := range flagOrder {
		got := Describe(int32(f.flag), 0)
		require.Len(t, got, 1, "bit %d", i)
		assert.Equal(t, f.label, got[0])
		assert.Equal(t, Flag(1)<<uint(i), f.flag)
	}
	all := Describe(0x0FFF, 0)
	assert.Len(t, all, 12)
	assert.Equal(t, Labels()[3:15], all)
}

func TestDescribe_UnknownBits(t *testing.T) {
	assert.Equal(t, []Label{LabelUnknownViolations}, Describe(0x1000, 0))
	assert.Equal(t, []Label{LabelConsoleBanned, LabelUnknownViolations}, Describe(0x00400400, 0))
	// sign bit of the low word
	assert.Equal(t, []Label{LabelUnknownViolations}, Describe(int32(-0x80000000), 0))
}

func TestValidPairAndClean(t *testing.T) {
	tests := []struct {
		name             string
		low, high        int32
		validPair, clean bool
	}{
		{name: "both zero", low: 0, high: 0, validPair: true, clean: true},
		{name: "low only", low: 1, high: 0, validPair: true, clean: false},
		{name: "high only", low: 0, high: 1, validPair: true, clean: false},
		{name: "both set", low: 5, high: 3, validPair: false, clean: false},
		{name: "all ones", low: -1, high: -1, validPair: false, clean: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPair(tt.low, tt.high); got != tt.validPair {
				t.Errorf("IsValidPair(%d, %d) = %v, want %v", tt.low, tt.high, got, tt.validPair)
			}
			if got := IsClean(tt.low, tt.high); got != tt.clean {
				t.Errorf("IsClean(%d, %d) = %v, want %v", tt.low, tt.high, got, tt.clean)
			}
			w := Words{Low: tt.low, High: tt.high}
			if w.ValidPair() != tt.validPair || w.Clean() != tt.clean {
				t.Errorf("Words%+v: ValidPair() = %v, Clean() = %v", w, w.ValidPair(), w.Clean())
			}
		})
	}
}

func TestPayload_Words(t *testing.T) {
	p, err := ParsePayload("8000000000000801")
	require.NoError(t, err)
	w := p.Words()
	assert.Equal(t, int32(-0x80000000), w.High)
	assert.Equal(t, int32(0x0801), w.Low)
	// both words populated
	assert.Equal(t, StatusDecryptionError, w.Status())
	assert.Equal(t, []Label{LabelDecryptionError}, w.Describe())

	p, err = ParsePayload("8000000000000000")
	require.NoError(t, err)
	w = p.Words()
	assert.Equal(t, int32(-0x80000000), w.High)
	assert.Equal(t, int32(0), w.Low)
	assert.Equal(t, StatusFlagged, w.Status())
	assert.Empty(t, w.Describe())

	p, err = ParsePayload("ffff-ffff-ffff-ffff")
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, p.Words().Status())
	assert.Equal(t, []Label{LabelInvalid}, p.Words().Describe())
}

func TestPayload_Render(t *testing.T) {
	p := Payload{0x00, 0x01, 0x0a, 0xff, 0x10, 0x20, 0x08, 0x01}
	assert.Equal(t, "0x00 0x01 0x0a 0xff 0x10 0x20 0x08 0x01", p.String())
	assert.Equal(t, "00010AFF10200801", p.Hex())
}

func TestParsePayload_Invalid(t *testing.T) {
	_, err := ParsePayload("xyz")
	assert.ErrorIs(t, err, ErrInvalidXValue)
}

func TestLabels_AllHaveText(t *testing.T) {
	labels := Labels()
	assert.Len(t, labels, 16)
	for _, l := range labels {
		assert.NotEqual(t, string(l), l.String(), "label %s has no English text", l)
	}
	assert.Equal(t, "something.else", Label("something.else").String())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "clean", StatusClean.String())
	assert.Equal(t, "flagged", StatusFlagged.String())
	assert.Equal(t, "status 42", Status(42).String())
}
