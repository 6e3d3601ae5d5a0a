// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex saves and loads rendered plot images and provides
// pixel comparison helpers for renderer tests.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats are the image file formats plots can be saved in.
type Formats int32 //enums:enum

const (
	None Formats = iota
	PNG
	JPEG
	TIFF
	BMP
)

var extFormats = map[string]Formats{
	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

// FormatOf returns the format implied by the extension of filename.
func FormatOf(filename string) (Formats, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return None, fmt.Errorf("imagex: no image format for file %q", filename)
}

// Save encodes im into filename, in the format given by its extension.
func Save(im image.Image, filename string) (err error) {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(file)
	if err = Write(im, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes im to w in format f. JPEG uses quality 90.
func Write(im image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, im)
	case JPEG:
		return jpeg.Encode(w, im, &jpeg.Options{Quality: 90})
	case TIFF:
		return tiff.Encode(w, im, nil)
	case BMP:
		return bmp.Encode(w, im)
	}
	return fmt.Errorf("imagex: cannot encode format %d", f)
}

// Open decodes the image in filename. Any format written by [Save]
// can be read back.
func Open(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("imagex: decoding %q: %w", filename, err)
	}
	return im, nil
}
