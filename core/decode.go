// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"github.com/cooltrainer/xval/internal/logging"
	"github.com/cooltrainer/xval/internal/xval"
)

// DecodeResult is the outcome of decrypting one serial / X value pair.
type DecodeResult struct {
	Serial      string       `json:"serial" yaml:"serial"`
	XValue      string       `json:"xvalue" yaml:"xvalue"`
	Payload     xval.Payload `json:"-" yaml:"-"`
	PayloadHex  string       `json:"payload" yaml:"payload"`
	Low         int32        `json:"low" yaml:"low"`
	High        int32        `json:"high" yaml:"high"`
	Status      xval.Status  `json:"-" yaml:"-"`
	StatusText  string       `json:"status" yaml:"status"`
	IsValidPair bool         `json:"valid_pair" yaml:"valid_pair"`
	IsClean     bool         `json:"clean" yaml:"clean"`
	Labels      []xval.Label `json:"labels" yaml:"labels"`
	FlagsText   string       `json:"flags_text" yaml:"flags_text"`
}

// Decode validates both inputs, decrypts the X value with the serial's key
// and interprets the result. Validation failures return a
// *xval.ValidationError; decryption failures a *xval.DecodeError.
func Decode(serial, xvalue string) (DecodeResult, error) {
	if !xval.ValidSerial(serial) {
		return DecodeResult{}, &xval.ValidationError{Field: xval.FieldSerial, Value: serial}
	}
	if !xval.ValidXValue(xvalue) {
		return DecodeResult{}, &xval.ValidationError{Field: xval.FieldXValue, Value: xvalue}
	}

	payload, err := xval.Decrypt(serial, xvalue)
	if err != nil {
		logging.Debugf("decrypt failed for serial %s: %v", serial, err)
		return DecodeResult{}, err
	}

	res := interpret(payload)
	res.Serial = serial
	res.XValue = xval.NormalizeXValue(xvalue)
	logging.Debugf("decoded serial %s: status=%s valid_pair=%t", serial, res.StatusText, res.IsValidPair)
	return res, nil
}

// Interpret runs the flag interpreter over an already-decrypted payload
// given as 16 hex digits.
func Interpret(payloadHex string) (DecodeResult, error) {
	payload, err := xval.ParsePayload(payloadHex)
	if err != nil {
		return DecodeResult{}, err
	}
	return interpret(payload), nil
}

func interpret(p xval.Payload) DecodeResult {
	w := p.Words()
	labels := w.Describe()
	status := w.Status()
	return DecodeResult{
		Payload:     p,
		PayloadHex:  p.Hex(),
		Low:         w.Low,
		High:        w.High,
		Status:      status,
		StatusText:  status.String(),
		IsValidPair: w.ValidPair(),
		IsClean:     w.Clean(),
		Labels:      labels,
		FlagsText:   xval.FlagsText(labels),
	}
}
