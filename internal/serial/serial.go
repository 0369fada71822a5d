// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package serial extracts manufacturing metadata from an Xbox 360 console
// serial number.
//
// A serial is twelve digits, LNNNNNNYWWFF:
//
//	L      production line
//	NNNNNN units built on this line this week
//	Y      last digit of the production year
//	WW     week of the production year
//	FF     factory code
//
// The metadata is informational only and plays no part in X value decryption.
package serial

import (
	"time"

	"github.com/cooltrainer/xval/internal/xval"
)

// Info is the parsed form of a serial number.
type Info struct {
	Serial  string
	Line    int
	Number  int
	RawYear int
	Year    int
	Week    int
	Factory int
}

// Parse splits a serial into its fixed-width fields.
func Parse(s string) (Info, error) {
	if !xval.ValidSerial(s) {
		return Info{}, &xval.ValidationError{Field: xval.FieldSerial, Value: s}
	}
	raw := digits(s, 7, 8)
	return Info{
		Serial:  s,
		Line:    digits(s, 0, 1),
		Number:  digits(s, 1, 7),
		RawYear: raw,
		Year:    normalizeYear(raw),
		Week:    digits(s, 8, 10),
		Factory: digits(s, 10, 12),
	}, nil
}

// digits reads s[from:to] as a decimal number. s is already validated.
func digits(s string, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// normalizeYear maps the single year digit onto 2005-2014: 5-9 are 2005-2009
// and 0-4 are 2010-2014.
func normalizeYear(d int) int {
	if d < 5 {
		return 2010 + d
	}
	return 2000 + d
}

// MfgDate returns the first day of the manufacture week.
func (i Info) MfgDate() time.Time {
	return WeekStart(i.Year, i.Week)
}

// FactoryCountry returns the ISO 3166 alpha-2 code for the factory, or ""
// when the code is not in the table.
func (i Info) FactoryCountry() string {
	code, err := FactoryCountry(i.Factory)
	if err != nil {
		return ""
	}
	return code
}

// FactoryName resolves the factory country to a display name. A nil namer
// yields the bare ISO code.
func (i Info) FactoryName(namer CountryNamer) string {
	code := i.FactoryCountry()
	if code == "" {
		return ""
	}
	if namer == nil {
		return code
	}
	return namer.CountryName(code)
}
