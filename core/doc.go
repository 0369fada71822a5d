// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core is the entry point for callers that render X value and serial
// number information. It validates plain string input, runs the decoder and
// returns plain result structs. Presentation (labels in other languages,
// styling, output formats) is left to the caller.
package core
