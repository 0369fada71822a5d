// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// TestLoggingHelpers_WriteToBuffer verifies the helpers write formatted
// messages to L. The test swaps L for a buffer-backed logger and restores it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()
	SetOutput(&buf)
	SetLevel("debug")

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	defer func() { L = prev }()
	SetOutput(&buf)

	SetLevel("info")
	Debugf("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	SetDebug(true)
	Debugf("shown")
	assert.Contains(t, buf.String(), "shown")
	SetDebug(false)
	assert.Equal(t, clog.InfoLevel, L.GetLevel())
}

func TestSetLevel_UnknownFallsBackToInfo(t *testing.T) {
	prev := L
	defer func() { L = prev }()
	L = clog.New(&bytes.Buffer{})

	SetLevel("loud")
	assert.Equal(t, clog.InfoLevel, L.GetLevel())
	SetLevel(" WARN ")
	assert.Equal(t, clog.WarnLevel, L.GetLevel())
}
