// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruits int32

var fruitNames = []string{"Apple", "Pear"}

func TestStringParse(t *testing.T) {
	assert.Equal(t, "Pear", String(fruits(1), fruitNames))
	assert.Equal(t, "7", String(fruits(7), fruitNames))

	v, err := Parse[fruits]("apple", fruitNames, "fruits")
	assert.NoError(t, err)
	assert.Equal(t, fruits(0), v)

	v, err = Parse[fruits]("1", fruitNames, "fruits")
	assert.NoError(t, err)
	assert.Equal(t, fruits(1), v)

	_, err = Parse[fruits]("banana", fruitNames, "fruits")
	assert.Error(t, err)

	assert.Equal(t, []fruits{0, 1}, Values[fruits](fruitNames))
}
