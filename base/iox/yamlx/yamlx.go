// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for decoding and encoding YAML
// using gopkg.in/yaml.v3.
package yamlx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, f); err != nil {
		return fmt.Errorf("yamlx.Open %s: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader using YAML encoding.
// Unknown keys are an error; an empty document leaves v unchanged.
func Read(v any, reader io.Reader) error {
	d := yaml.NewDecoder(reader)
	d.KnownFields(true)
	err := d.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes reads the given object from the given bytes using YAML encoding.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Save writes the given object to the given filename using YAML encoding.
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

// Write writes the given object using YAML encoding.
func Write(v any, writer io.Writer) error {
	e := yaml.NewEncoder(writer)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return err
	}
	return e.Close()
}

// WriteBytes writes the given object, returning bytes of the encoding.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}
