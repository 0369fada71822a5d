// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every message ID referenced from Go code exists in
// the primary locale, that every other locale carries the same IDs, and
// reports IDs nobody uses.
//
// Usage, from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cooltrainer/xval/util/mapst"
	"github.com/cooltrainer/xval/util/slicest"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// keyPattern matches i18n.T / i18n.TOr calls and bare literals that look like
// message IDs (decoder labels are plain string constants).
var keyPattern = regexp.MustCompile(`i18n\.TO?r?\("([^"]+)"|"((?:xval\.(?:status|flag)|cli)\.[a-z_.]+)"`)

type set = map[string]struct{}

type report struct {
	used      set
	primary   set
	undefined []string
	orphaned  []string
	missing   map[string][]string // locale file -> IDs
}

func (r *report) failed() bool {
	return len(r.undefined) > 0 || len(r.missing) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (*report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return nil, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return nil, err
	}
	files = slicesWithout(files, filepath.Join(locales, primaryLocale))
	others, err := slicest.MapX(files, loadKeysFromLocale)
	if err != nil {
		return nil, err
	}

	r := &report{
		used:      used,
		primary:   primary,
		undefined: mapst.SortedKeys(notIn(used, primary)),
		orphaned:  mapst.SortedKeys(notIn(primary, used)),
		missing:   map[string][]string{},
	}
	for i, keys := range others {
		if miss := notIn(primary, keys); len(miss) > 0 {
			r.missing[filepath.Base(files[i])] = mapst.SortedKeys(miss)
		}
	}
	return r, nil
}

func (r *report) print(w io.Writer) {
	fmt.Fprintf(w, "✅ Found %d unique translation keys used in source code.\n", len(r.used))
	fmt.Fprintf(w, "✅ Loaded %d keys from primary locale (%s).\n\n", len(r.primary), primaryLocale)

	section := func(title, prefix string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s: %s\n", prefix, k)
		}
		fmt.Fprintln(w)
	}
	section("Undefined Keys (used in code but not in primary locale)", "Undefined", r.undefined)
	section("Orphaned Keys (in primary locale but not used in code)", "Orphaned", r.orphaned)
	for _, file := range mapst.SortedKeys(r.missing) {
		section("Missing Keys in "+file, "Missing", r.missing[file])
	}

	switch {
	case r.failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// findUsedKeys scans non-test .go files below root. Directories the go tool
// ignores, plus tools/, are skipped.
func findUsedKeys(root string) (set, error) {
	keys := set{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || name == "testdata" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyPattern.FindAllStringSubmatch(string(content), -1) {
			// match[1] is from an i18n call, match[2] from a bare literal
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (set, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	keys := set{}
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys set) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func notIn(a, b set) set {
	return mapst.Filter(a, func(k string, _ struct{}) bool {
		_, ok := b[k]
		return !ok
	})
}

func slicesWithout(s []string, drop string) []string {
	out := s[:0:0]
	for _, v := range s {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
