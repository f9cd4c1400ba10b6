//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/mm"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"os"
	"path/filepath"
	"runtime"
)

const (
	JSONINDENT = "  "
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// ConfigSearchPath - where a config file might be: the current directory first, then ~/.config/
func ConfigSearchPath() []string {
	paths := []string{filepath.Join(vv.CONFIGLOCATION, vv.CONFIGBASIC)}
	if h, e := os.UserHomeDir(); e == nil {
		paths = append(paths, fmt.Sprintf(vv.CONFIGALTAPTH, h)+vv.CONFIGBASIC)
	}
	return paths
}

// ConfigAtLaunch - read the configuration values from JSON; command line flags get applied on top of this later
func ConfigAtLaunch(explicit string) (*str.CurrentConfiguration, error) {
	const (
		FAIL1 = "could not open config file '%s': %w"
		FAIL2 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		FAIL3 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FOUND = "'%s' loaded"
		NONE  = "no config file found; using built-in defaults"
	)

	Config = BuildDefaultConfig()

	candidates := ConfigSearchPath()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf(FAIL1, explicit, err)
		}
		candidates = []string{explicit}
	}

	found := ""
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			found = c
			break
		}
	}

	if found == "" {
		Msg.TMI(NONE)
	} else {
		loaded, err := ReadConfigFile(found)
		if err != nil {
			Msg.CRIT(fmt.Sprintf(FAIL2, found))
		} else {
			Config = loaded
			Msg.TMI(fmt.Sprintf(FOUND, found))
		}
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL3, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}
	if Config.WorkerCount < 1 {
		Config.WorkerCount = 1
	}

	return Config, nil
}

// ReadConfigFile - defaults overwritten by whatever the file sets
func ReadConfigFile(path string) (*str.CurrentConfiguration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// decoding on top of the defaults means a file only needs the fields it wants to change
	c := BuildDefaultConfig()
	if err = json.NewDecoder(f).Decode(c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

// WriteConfigFile - save a configuration as indented JSON; refuses to clobber unless told to
func WriteConfigFile(path string, c *str.CurrentConfiguration, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("'%s': %w", path, os.ErrExist)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	js, err := json.MarshalIndent(c, "", JSONINDENT)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(js, '\n'), vv.WRITEPERMS)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CacheFile = ""
	c.GlossColumn = vv.COLGLOSS
	c.GlottologCSV = vv.GLOTTOLOGCSV
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.Measure = vv.DEFAULTMEASURE
	c.NoCache = false
	c.Normalization = vv.DEFAULTNORMALIZE
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.ProtoLangs = vv.PROTOLANGS
	c.QuietStart = false
	c.StripAffixes = vv.STRIPAFFIXES
	c.WorkerCount = runtime.NumCPU()
	return &c
}

// CachePath - Config.CacheFile, or the default location next to the config file
func CachePath(c *str.CurrentConfiguration) string {
	if c.CacheFile != "" {
		return c.CacheFile
	}
	h, e := os.UserHomeDir()
	if e != nil {
		return vv.CACHEFILE
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CACHEFILE
}

// UserConfigPath - ~/.config/rfx-conf.json
func UserConfigPath() (string, error) {
	h, e := os.UserHomeDir()
	if e != nil {
		return "", e
	}
	return fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGBASIC, nil
}

// UpdateMessageMakerWithConfig - the MessageMaker is built before the config is read
func UpdateMessageMakerWithConfig(m *mm.MessageMaker, c *str.CurrentConfiguration) {
	if c.BlackAndWhite {
		m.BW = true
	}
	m.LLvl = c.LogLevel
}
