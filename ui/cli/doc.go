// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the xval command-line interface using Cobra. It
// wires configuration, logging and localization, and renders results from
// the `core` package. CLI code should remain thin and delegate decoding to
// `core`.
package cli
