// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ponydex/pkg/convert"
)

func TestToIntD(t *testing.T) {
	cases := map[string]int{
		"":    7,
		"3":   3,
		"-2":  -2,
		"abc": 7,
		"1.5": 7,
	}

	for input, want := range cases {
		assert.Equal(t, want, convert.ToIntD(input, 7), "input %q", input)
	}
}
