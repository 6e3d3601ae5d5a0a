// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for decoding and encoding TOML
// using github.com/pelletier/go-toml/v2.
package tomlx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("tomlx.Open %s: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using TOML encoding.
// Unknown keys are an error.
func Read(v any, reader io.Reader) error {
	d := toml.NewDecoder(reader)
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(v, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write writes the given object using TOML encoding.
func Write(v any, writer io.Writer) error {
	return toml.NewEncoder(writer).Encode(v)
}

// WriteBytes writes the given object, returning bytes of the encoding.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}
