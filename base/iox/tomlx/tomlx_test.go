// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	Name  string
	Width float64
	Tags  []string
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	in := testStruct{Name: "curve", Width: 1.5, Tags: []string{"a", "b"}}
	assert.NoError(t, Save(&in, fn))

	var out testStruct
	assert.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytes(t *testing.T) {
	var out testStruct
	assert.NoError(t, ReadBytes(&out, []byte("Name = \"x\"\nWidth = 2.0\n")))
	assert.Equal(t, testStruct{Name: "x", Width: 2}, out)

	assert.Error(t, ReadBytes(&out, []byte("Bogus = 1\n")))
	assert.Error(t, Open(&out, filepath.Join(t.TempDir(), "missing.toml")))
}
