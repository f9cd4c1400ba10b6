//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"io"
)

// runconfig - 'rfx config': show the configuration that flags and files produce; optionally keep it
func runconfig(w io.Writer, save bool, force bool, cfg *str.CurrentConfiguration) error {
	js, err := json.MarshalIndent(cfg, "", lnch.JSONINDENT)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintln(w, string(js)); err != nil {
		return err
	}

	if !save {
		return nil
	}
	path, err := lnch.UserConfigPath()
	if err != nil {
		return err
	}
	if err = lnch.WriteConfigFile(path, cfg, force); err != nil {
		return err
	}
	lnch.Msg.MAND(fmt.Sprintf("configuration saved to '%s'", path))
	return nil
}
