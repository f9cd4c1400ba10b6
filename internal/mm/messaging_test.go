//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func plainmaker(ll int) (*MessageMaker, *bytes.Buffer) {
	var b bytes.Buffer
	m := NewMessageMaker("Reflex Disparity", "RFX", "9.9.9", ll)
	m.BW = true
	m.Out = &b
	return m, &b
}

func TestEmitThreshold(t *testing.T) {
	m, b := plainmaker(MSGWARN)
	m.NOTE("too chatty")
	assert.Empty(t, b.String())

	m.WARN("heads up")
	assert.Equal(t, "[RFX] heads up\n", b.String())

	b.Reset()
	m.MAND("always")
	assert.Equal(t, "[RFX] always\n", b.String())
}

func TestColorInBlackAndWhite(t *testing.T) {
	m, _ := plainmaker(0)
	assert.Equal(t, "[git: abc]", m.Color("[git: C4abcC0]"))
	assert.Equal(t, "bold", m.Styled("S1boldS0"))

	m.BW = false
	m.Win = false
	assert.Equal(t, "x"+GREEN+"abc"+RESET, m.Color("xC4abcC0"))
}

func TestEFExits(t *testing.T) {
	m, b := plainmaker(0)
	code := -1
	m.Exit = func(c int) { code = c }

	m.EF(nil, "nothing()")
	assert.Equal(t, -1, code)

	m.EF(errors.New("kaboom"), "something()")
	assert.Equal(t, 1, code)
	assert.Contains(t, b.String(), "(something()) UNRECOVERABLE ERROR")
	assert.Contains(t, b.String(), "kaboom")
}

func TestTimer(t *testing.T) {
	m, b := plainmaker(TIMETRACKERMSGTHRESH)
	now := time.Now()
	m.Timer("A1", "sets built", now, now)
	assert.Contains(t, b.String(), "[A1: ")
	assert.Contains(t, b.String(), "sets built")
}
