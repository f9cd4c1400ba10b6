//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"github.com/e-gun/ReflexDisparity/internal/load"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sheet = `ProtoForm,Reflex,GlottoCode,Gloss
*tulak,*tulak,,bite
*tulak,tulak,taga1269,bite
*tulak,tulaq,cebu1242,
*mata,mata,taga1269,eye
`

const languoids = `id,family_id,parent_id,name,level
aust1307,,,Austronesian,family
mala1545,aust1307,aust1307,Malayo-Polynesian,family
grea1283,aust1307,mala1545,Greater Central Philippine,family
taga1269,aust1307,grea1283,Tagalog,language
cebu1242,aust1307,grea1283,Cebuano,language
`

// workspace - a temp dir holding a config file, a sheet and a languoid export; returns the dir and the config path
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	write(t, filepath.Join(dir, "sheet.csv"), sheet)
	write(t, filepath.Join(dir, "languoid.csv"), languoids)

	conf, err := json.Marshal(map[string]any{
		"GlottologCSV": filepath.Join(dir, "languoid.csv"),
		"CacheFile":    filepath.Join(dir, "cache.db"),
		"QuietStart":   true,
	})
	require.NoError(t, err)
	cp := filepath.Join(dir, "conf.json")
	write(t, cp, string(conf))
	return dir, cp
}

func write(t *testing.T, path string, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

// execute - run rfx with args; returns stdout, the terminal messages, and the error
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, msgs bytes.Buffer

	old := lnch.Msg
	lnch.Msg = lnch.NewMessageMakerWithDefaults()
	lnch.Msg.BW = true
	lnch.Msg.Out = &msgs
	t.Cleanup(func() { lnch.Msg = old })

	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&msgs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), msgs.String(), err
}

func TestDisparity(t *testing.T) {
	dir, cp := workspace(t)
	sp := filepath.Join(dir, "sheet.csv")

	out, _, err := execute(t, "--config", cp, "disparity", sp)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2 cognate sets\n"))
	assert.Contains(t, out, "*tulak ‘bite’: 2 reflexes")
	assert.Contains(t, out, "*mata ‘eye’: 1 reflex")
	assert.Less(t, strings.Index(out, "*tulak"), strings.Index(out, "*mata"))

	out, _, err = execute(t, "--config", cp, "disparity", sp, "--sets", "*mata")
	require.NoError(t, err)
	assert.Contains(t, out, "*mata ‘eye’")
	assert.NotContains(t, out, "*tulak")

	out, msgs, err := execute(t, "--config", cp, "disparity", sp, "--sets", "*zzz")
	require.NoError(t, err)
	assert.Equal(t, "2 cognate sets\n", out)
	assert.Contains(t, msgs, "no cognate set for '*zzz'")

	out, _, err = execute(t, "--config", cp, "disparity", sp, "--protolangs", "--sets", "*tulak")
	require.NoError(t, err)
	assert.Contains(t, out, "*tulak ‘bite’: 3 reflexes")
}

func TestDisparityFailures(t *testing.T) {
	dir, cp := workspace(t)

	_, _, err := execute(t, "--config", cp, "disparity", filepath.Join(dir, "sheet.xlsx"))
	var ue *load.UnsupportedFileTypeError
	assert.True(t, errors.As(err, &ue))

	bad := filepath.Join(dir, "bad.csv")
	write(t, bad, "ProtoForm,Reflex\n*tulak,tulak\n")
	_, _, err = execute(t, "--config", cp, "disparity", bad)
	var fe *load.FormatError
	assert.True(t, errors.As(err, &fe))

	_, _, err = execute(t, "--config", cp, "disparity", filepath.Join(dir, "sheet.csv"), "--measure", "hamming")
	assert.Error(t, err)

	_, _, err = execute(t, "--config", cp, "disparity", filepath.Join(dir, "sheet.csv"), "--strip", "--no-strip")
	assert.Error(t, err)

	_, _, err = execute(t, "--config", filepath.Join(dir, "nope.json"), "disparity", filepath.Join(dir, "sheet.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRank(t *testing.T) {
	dir, cp := workspace(t)

	out, _, err := execute(t, "--config", cp, "--wc", "2", "rank", filepath.Join(dir, "sheet.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 sets: mean 0.500")
	assert.Less(t, strings.Index(out, "*mata"), strings.Index(out, "*tulak"))

	out, _, err = execute(t, "--config", cp, "rank", filepath.Join(dir, "sheet.csv"), "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "*mata")
	assert.NotContains(t, out, "*tulak")
}

func TestRankStripping(t *testing.T) {
	dir, cp := workspace(t)
	sp := filepath.Join(dir, "affixed.csv")
	write(t, sp, "ProtoForm,Reflex,GlottoCode\n*tulak,tulak,taga1269\n*tulak,tulak-en,cebu1242\n")

	out, _, err := execute(t, "--config", cp, "rank", sp)
	require.NoError(t, err)
	assert.Contains(t, out, "1 sets: mean 0.000")

	out, _, err = execute(t, "--config", cp, "rank", sp, "--no-strip")
	require.NoError(t, err)
	assert.Contains(t, out, "1 sets: mean 3.000")
}

func TestListUsesTheCache(t *testing.T) {
	dir, cp := workspace(t)

	out, _, err := execute(t, "--config", cp, "list", "grea1283")
	require.NoError(t, err)
	assert.Equal(t, "grea1283 cebu1242 taga1269\n", out)

	out, _, err = execute(t, "--config", cp, "list", "--format", "--leaves", "grea1283")
	require.NoError(t, err)
	assert.Equal(t, `"cebu1242", "taga1269"`+"\n", out)

	// everything needed is now in the cache
	require.NoError(t, os.Remove(filepath.Join(dir, "languoid.csv")))
	out, _, err = execute(t, "--config", cp, "list", "grea1283")
	require.NoError(t, err)
	assert.Equal(t, "grea1283 cebu1242 taga1269\n", out)

	_, _, err = execute(t, "--config", cp, "list", "mala1545")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAttach(t *testing.T) {
	dir, cp := workspace(t)
	out := filepath.Join(dir, "classified.tsv")

	_, msgs, err := execute(t, "--config", cp, "attach", filepath.Join(dir, "sheet.csv"), out, "-v")
	require.NoError(t, err)
	assert.Contains(t, msgs, "cebu1242")

	rows, err := load.ReadTable(out)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, vv.CLASSIFICATIONHEADER, rows[0][4])
	assert.Equal(t, "", rows[1][4])
	assert.Equal(t, "Austronesian, Malayo-Polynesian, Greater Central Philippine", rows[2][4])
}

func TestConfigAndVersion(t *testing.T) {
	_, cp := workspace(t)

	out, _, err := execute(t, "--config", cp, "--gl", "3", "config")
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, vv.MEASURELEV, back["Measure"])
	assert.Equal(t, float64(3), back["LogLevel"])

	out, _, err = execute(t, "--config", cp, "version")
	require.NoError(t, err)
	assert.Contains(t, out, vv.MYNAME+" (v"+vv.VERSION)
}

func TestSplitCodes(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitcodes([]string{"a,b", "c a"}))
}

func TestProfileSurvivesAFailedRun(t *testing.T) {
	dir, cp := workspace(t)
	old := profiledir
	profiledir = t.TempDir()
	t.Cleanup(func() {
		StopProfiling()
		profiledir = old
	})

	_, _, err := execute(t, "--config", cp, "--pc", "disparity", filepath.Join(dir, "sheet.csv"), "--measure", "hamming")
	require.Error(t, err)
	// the post-run hook was skipped, so the profile is still open
	require.NotNil(t, profiler)

	StopProfiling()
	assert.Nil(t, profiler)
	info, err := os.Stat(filepath.Join(profiledir, "cpu.pprof"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// and a second run may profile again
	_, _, err = execute(t, "--config", cp, "--pc", "version")
	require.NoError(t, err)
	assert.Nil(t, profiler)
}

func TestHelpMentionsNormalization(t *testing.T) {
	out, _, err := execute(t, "disparity", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "none to compare the cells exactly as written")
	assert.Contains(t, longhelp(), "--norm none")
}
