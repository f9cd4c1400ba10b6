//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func quietmsg(t *testing.T) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	old := Msg
	Msg = NewMessageMakerWithDefaults()
	Msg.BW = true
	Msg.Out = &b
	t.Cleanup(func() { Msg = old })
	return &b
}

func TestBuildDefaultConfig(t *testing.T) {
	c := BuildDefaultConfig()
	assert.Equal(t, vv.MEASURELEV, c.Measure)
	assert.Equal(t, vv.NORMNFC, c.Normalization)
	assert.True(t, c.StripAffixes)
	assert.False(t, c.ProtoLangs)
	assert.Equal(t, "Gloss", c.GlossColumn)
	assert.Equal(t, runtime.NumCPU(), c.WorkerCount)
}

func TestConfigAtLaunchExplicitFile(t *testing.T) {
	quietmsg(t)
	p := filepath.Join(t.TempDir(), "mine.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"Measure": "normalized", "StripAffixes": false, "WorkerCount": 100000}`), 0644))

	c, err := ConfigAtLaunch(p)
	require.NoError(t, err)
	assert.Equal(t, "normalized", c.Measure)
	assert.False(t, c.StripAffixes)
	// untouched fields keep their defaults
	assert.Equal(t, vv.NORMNFC, c.Normalization)
	assert.Equal(t, runtime.NumCPU(), c.WorkerCount)
	assert.Same(t, Config, c)
}

func TestConfigAtLaunchBrokenFile(t *testing.T) {
	b := quietmsg(t)
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"Measure": `), 0644))

	c, err := ConfigAtLaunch(p)
	require.NoError(t, err)
	assert.Equal(t, vv.MEASURELEV, c.Measure)
	assert.Contains(t, b.String(), "Could not parse")
}

func TestConfigAtLaunchMissingExplicitFile(t *testing.T) {
	quietmsg(t)
	_, err := ConfigAtLaunch(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "rfx-conf.json")
	c := BuildDefaultConfig()
	c.ProtoLangs = true
	require.NoError(t, WriteConfigFile(p, c, false))
	assert.ErrorIs(t, WriteConfigFile(p, c, false), os.ErrExist)
	require.NoError(t, WriteConfigFile(p, c, true))

	back, err := ReadConfigFile(p)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestCachePath(t *testing.T) {
	c := BuildDefaultConfig()
	c.CacheFile = "/tmp/x.db"
	assert.Equal(t, "/tmp/x.db", CachePath(c))
	c.CacheFile = ""
	assert.True(t, strings.HasSuffix(CachePath(c), vv.CACHEFILE))
}

func TestVersionLine(t *testing.T) {
	quietmsg(t)
	GitCommit = "abc123"
	t.Cleanup(func() { GitCommit = "" })

	c := BuildDefaultConfig()
	line := Msg.ColStyle(VersionLine(*c))
	assert.Equal(t, "[RFX] Reflex Disparity (v"+vv.VERSION+") [git: abc123] [gl=1]", line)
	assert.Contains(t, Msg.ColStyle(BuildInfo(*c)), runtime.Version())
}
