// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package xval decrypts the "X value" shown on the Xbox 360 dashboard's
// system information screen and interprets the secdata flags it carries.
//
// The key is HMAC-SHA1 over the magic "XBOX360SSB", keyed with the console
// serial followed by one NUL byte; the first 8 digest bytes become a DES key
// and the 8-byte X value is decrypted with DES-ECB and no padding. The scheme
// is reproduced bit for bit and is not a security recommendation.
//
// Everything here is a pure function of its inputs and safe for concurrent use.
package xval
