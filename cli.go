//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/cog"
	"github.com/e-gun/ReflexDisparity/internal/gen"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"github.com/e-gun/ReflexDisparity/internal/load"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"path/filepath"
	"runtime"
	"strings"
	"text/template"
)

//
// COMMAND TREE
//

// rootflags - the persistent flags; each one overrides the config file only if it was given
type rootflags struct {
	config string
	gl     int
	bw     bool
	wc     int
	pc     bool
	pm     bool
}

// sheetflags - the local flags shared by the commands that load a reflex sheet
type sheetflags struct {
	strip      bool
	nostrip    bool
	protolangs bool
	measure    string
	norm       string
	gloss      string
}

var (
	profiler   interface{ Stop() }
	profiledir = "."
)

// StopProfiling - flush a --pc/--pm profile; safe to call when none is running
func StopProfiling() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// NewRootCommand - 'rfx' and all of its subcommands
func NewRootCommand() *cobra.Command {
	var rf rootflags

	root := &cobra.Command{
		Use:           "rfx",
		Short:         fmt.Sprintf("%s: pairwise edit distances among the reflexes of a protoform", vv.MYNAME),
		Long:          longhelp(),
		Version:       vv.VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := lnch.ConfigAtLaunch(rf.config)
			if err != nil {
				return err
			}
			rf.apply(cmd, cfg)
			lnch.UpdateMessageMakerWithConfig(lnch.Msg, cfg)
			lnch.Msg.TMI(fmt.Sprintf("%s v.%s [gl=%d] [wc=%d]", vv.MYNAME, vv.VERSION, cfg.LogLevel, cfg.WorkerCount))

			// pkg/profile only allows one profile at a time
			switch {
			case cfg.ProfileCPU:
				profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(profiledir), profile.Quiet, profile.NoShutdownHook)
				lnch.Msg.NOTE(fmt.Sprintf("cpu profiling to %s", filepath.Join(profiledir, "cpu.pprof")))
			case cfg.ProfileMEM:
				profiler = profile.Start(profile.MemProfile, profile.ProfilePath(profiledir), profile.Quiet, profile.NoShutdownHook)
				lnch.Msg.NOTE(fmt.Sprintf("memory profiling to %s", filepath.Join(profiledir, "mem.pprof")))
			}
			return nil
		},
		// not reached when RunE fails: main() calls StopProfiling() before exiting
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			StopProfiling()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.config, "config", "", "configuration file (default: ./"+vv.CONFIGBASIC+" or ~/.config/"+vv.CONFIGBASIC+")")
	pf.IntVar(&rf.gl, "gl", vv.DEFAULTGOLOGLEVEL, "log level: 0 is silent; 5 is very noisy")
	pf.BoolVar(&rf.bw, "bw", false, "no color in terminal output")
	pf.IntVar(&rf.wc, "wc", 0, "number of workers (default NumCPU)")
	pf.BoolVar(&rf.pc, "pc", false, "write a cpu profile to ./cpu.pprof")
	pf.BoolVar(&rf.pm, "pm", false, "write a memory profile to ./mem.pprof")

	root.AddCommand(
		newDisparityCommand(),
		newRankCommand(),
		newListCommand(),
		newAttachCommand(),
		newConfigCommand(),
		newVersionCommand(),
	)
	return root
}

func (rf *rootflags) apply(cmd *cobra.Command, cfg *str.CurrentConfiguration) {
	const (
		WCMSG = "Refusing to set a workercount of %d ---> setting workercount value to %d"
	)
	fl := cmd.Flags()
	if fl.Changed("gl") {
		cfg.LogLevel = rf.gl
	}
	if fl.Changed("bw") {
		cfg.BlackAndWhite = rf.bw
	}
	if fl.Changed("wc") {
		wc := min(max(rf.wc, 1), runtime.NumCPU())
		if wc != rf.wc {
			lnch.Msg.CRIT(fmt.Sprintf(WCMSG, rf.wc, wc))
		}
		cfg.WorkerCount = wc
	}
	if fl.Changed("pc") {
		cfg.ProfileCPU = rf.pc
	}
	if fl.Changed("pm") {
		cfg.ProfileMEM = rf.pm
	}
}

func addsheetflags(cmd *cobra.Command, sf *sheetflags) {
	fl := cmd.Flags()
	fl.BoolVar(&sf.strip, "strip", vv.STRIPAFFIXES, "strip affix markers from reflexes")
	fl.BoolVar(&sf.nostrip, "no-strip", false, "compare reflexes exactly as written")
	fl.BoolVar(&sf.protolangs, "protolangs", vv.PROTOLANGS, "keep rows without a glottocode")
	fl.StringVar(&sf.measure, "measure", "", "distance measure: "+strings.Join(cog.MeasureNames(), ", "))
	fl.StringVar(&sf.norm, "norm", "", "unicode normalization of protoforms and reflexes: nfc (default), nfd, or none to compare the cells exactly as written")
	fl.StringVar(&sf.gloss, "gloss", "", "name of the gloss column")
	cmd.MarkFlagsMutuallyExclusive("strip", "no-strip")
}

func (sf *sheetflags) apply(cmd *cobra.Command, cfg *str.CurrentConfiguration) {
	fl := cmd.Flags()
	if fl.Changed("strip") {
		cfg.StripAffixes = sf.strip
	}
	if sf.nostrip {
		cfg.StripAffixes = false
	}
	if fl.Changed("protolangs") {
		cfg.ProtoLangs = sf.protolangs
	}
	if sf.measure != "" {
		cfg.Measure = sf.measure
	}
	if sf.norm != "" {
		cfg.Normalization = sf.norm
	}
	if sf.gloss != "" {
		cfg.GlossColumn = sf.gloss
	}
}

// loadoptions - the part of the configuration the loader cares about
func loadoptions(cfg *str.CurrentConfiguration) load.Options {
	return load.Options{
		ProtoLangs:    cfg.ProtoLangs,
		StripAffixes:  cfg.StripAffixes,
		Normalization: cfg.Normalization,
		GlossColumn:   cfg.GlossColumn,
	}
}

func newDisparityCommand() *cobra.Command {
	var sf sheetflags
	var sets string

	cmd := &cobra.Command{
		Use:   "disparity SHEET",
		Short: "print the distance matrix and mean distance of each cognate set in a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.apply(cmd, lnch.Config)
			return rundisparity(cmd.OutOrStdout(), args[0], gen.SplitList(sets, vv.SELECTORSEP), lnch.Config)
		},
	}
	addsheetflags(cmd, &sf)
	cmd.Flags().StringVar(&sets, "sets", "", "comma separated protoforms to report on (default: all)")
	return cmd
}

func newRankCommand() *cobra.Command {
	var sf sheetflags
	var top int

	cmd := &cobra.Command{
		Use:   "rank SHEET",
		Short: "order the cognate sets of a sheet by mean distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.apply(cmd, lnch.Config)
			return runrank(cmd.Context(), cmd.OutOrStdout(), args[0], top, lnch.Config)
		},
	}
	addsheetflags(cmd, &sf)
	cmd.Flags().IntVar(&top, "top", vv.DEFAULTRANKTOP, "only show the first N sets (0: all)")
	return cmd
}

func newListCommand() *cobra.Command {
	var format, leaves bool

	cmd := &cobra.Command{
		Use:   "list CODE [CODE...]",
		Short: "list a languoid and everything under it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runlist(cmd.Context(), cmd.OutOrStdout(), splitcodes(args), format, leaves, lnch.Config)
		},
	}
	cmd.Flags().BoolVar(&format, "format", false, `print the codes as "a", "b", "c"`)
	cmd.Flags().BoolVar(&leaves, "leaves", false, "only print languoids without children")
	return cmd
}

func newAttachCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "attach IN OUT",
		Short: "add a classification column to a sheet that carries glottocodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runattach(cmd.Context(), args[0], args[1], verbose, lnch.Config)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "announce each glottocode as it is looked up")
	return cmd
}

func newConfigCommand() *cobra.Command {
	var save, force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration; --save writes it to ~/.config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runconfig(cmd.OutOrStdout(), save, force, lnch.Config)
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the configuration to ~/.config/"+vv.CONFIGBASIC)
	cmd.Flags().BoolVar(&force, "force", false, "let --save overwrite an existing file")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			lnch.PrintVersion(w, *lnch.Config)
			lnch.PrintBuildInfo(w, *lnch.Config)
			lnch.PrintCopyright(w, *lnch.Config)
		},
	}
}

// splitcodes - "a,b c" and "a b" and "a" "b" all mean the same thing
func splitcodes(args []string) []string {
	var codes []string
	for _, a := range args {
		for _, f := range strings.Fields(a) {
			codes = append(codes, gen.SplitList(f, vv.SELECTORSEP)...)
		}
	}
	return gen.Unique(codes)
}

func longhelp() string {
	m := map[string]string{
		"name":   vv.MYNAME,
		"proto":  vv.COLPROTOFORM,
		"reflex": vv.COLREFLEX,
		"code":   vv.COLGLOTTOCODE,
		"gloss":  vv.COLGLOSS,
		"conf":   vv.CONFIGBASIC,
		"home":   fmt.Sprintf(vv.CONFIGALTAPTH, "~"),
		"csv":    vv.GLOTTOLOGCSV,
		"cache":  vv.CACHEFILE,
	}
	var b bytes.Buffer
	t := template.Must(template.New("help").Parse(vv.LONGHELP))
	if err := t.Execute(&b, m); err != nil {
		return vv.MYNAME
	}
	return lnch.Msg.ColStyle(b.String())
}
