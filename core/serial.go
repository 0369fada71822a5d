// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"time"

	"github.com/cooltrainer/xval/internal/serial"
)

// SerialReport is the manufacturing information carried by a serial number.
type SerialReport struct {
	Serial      string    `json:"serial" yaml:"serial"`
	Line        int       `json:"line" yaml:"line"`
	Number      int       `json:"number" yaml:"number"`
	Year        int       `json:"year" yaml:"year"`
	Week        int       `json:"week" yaml:"week"`
	MfgDate     time.Time `json:"-" yaml:"-"`
	MfgDateText string    `json:"mfg_date" yaml:"mfg_date"`
	Factory     int       `json:"factory" yaml:"factory"`
	Country     string    `json:"country" yaml:"country"`
	FactoryName string    `json:"factory_name" yaml:"factory_name"`
}

// DescribeSerial parses serial and resolves its factory country with namer.
// A nil namer leaves FactoryName as the ISO code.
func DescribeSerial(s string, namer serial.CountryNamer) (SerialReport, error) {
	info, err := serial.Parse(s)
	if err != nil {
		return SerialReport{}, err
	}
	date := info.MfgDate()
	return SerialReport{
		Serial:      info.Serial,
		Line:        info.Line,
		Number:      info.Number,
		Year:        info.Year,
		Week:        info.Week,
		MfgDate:     date,
		MfgDateText: date.Format(serial.DateLayout),
		Factory:     info.Factory,
		Country:     info.FactoryCountry(),
		FactoryName: info.FactoryName(namer),
	}, nil
}
