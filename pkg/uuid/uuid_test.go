// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ponydex/pkg/uuid"
)

/*
TestNew verifies that generated IDs are valid and time-ordered.
*/
func TestNew(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.True(t, uuid.IsValid(first))
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('7'), first[14])
}

/*
TestIsValid verifies rejection of malformed input.
*/
func TestIsValid(t *testing.T) {
	assert.True(t, uuid.IsValid("0190a6d2-5c3e-7c1a-9b3e-2f6d8a1b2c3d"))
	assert.False(t, uuid.IsValid("pony"))
	assert.False(t, uuid.IsValid(""))
}
