// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package serial

import "fmt"

// factories maps factory codes to ISO 3166 alpha-2 country codes. Empty
// entries are codes with no known location.
var factories = [10]string{
	"",
	"",
	"MX",
	"HU",
	"",
	"CN",
	"TW",
	"US", // unconfirmed
	"",
	"",
}

// IndexError reports a factory code outside the lookup table.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("factory code %d outside table [0,%d)", e.Index, e.Len)
}

// FactoryCountry looks up a factory code. Codes outside the table return an
// *IndexError rather than reading past it.
func FactoryCountry(code int) (string, error) {
	if code < 0 || code >= len(factories) {
		return "", &IndexError{Index: code, Len: len(factories)}
	}
	return factories[code], nil
}

// CountryNamer turns an ISO 3166 alpha-2 code into a display name.
type CountryNamer interface {
	CountryName(code string) string
}

// CountryNamerFunc adapts a function to CountryNamer.
type CountryNamerFunc func(code string) string

func (f CountryNamerFunc) CountryName(code string) string { return f(code) }
