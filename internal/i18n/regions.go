// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Regions resolves ISO 3166 country codes to names in a fixed language.
// It satisfies serial.CountryNamer.
type Regions struct {
	namer display.Namer
}

// NewRegions returns a resolver for lang, falling back to English when the
// tag cannot be parsed.
func NewRegions(lang string) Regions {
	t, err := language.Parse(lang)
	if err != nil {
		t = language.English
	}
	return Regions{namer: display.Regions(t)}
}

// CurrentRegions returns a resolver for the active language.
func CurrentRegions() Regions {
	mu.RLock()
	t := tag
	mu.RUnlock()
	return Regions{namer: display.Regions(t)}
}

// CountryName returns the display name for code, or code itself when it is
// not a known region. The empty code yields "".
func (r Regions) CountryName(code string) string {
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil || r.namer == nil {
		return code
	}
	if name := r.namer.Name(region); name != "" {
		return name
	}
	return code
}
