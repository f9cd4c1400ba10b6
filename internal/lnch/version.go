//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"github.com/e-gun/ReflexDisparity/internal/str"
	"github.com/e-gun/ReflexDisparity/internal/vv"
	"io"
	"runtime"
)

//
// VERSION INFO BUILD TIME INJECTION
//

// these next variables should be injected at build time: 'go build -ldflags "-X github.com/e-gun/ReflexDisparity/internal/lnch.GitCommit=$GIT_COMMIT"', etc

var GitCommit string
var VersSuppl string
var BuildDate string

// VersionLine - "[RFX] Reflex Disparity (v0.3.2) [git: 64974732] [gl=1]", color tags included
func VersionLine(cc str.CurrentConfiguration) string {
	const (
		SN = "[C1%sC0] "
		GC = " [C4git: C4%sC0]"
		LL = " [C6gl=%dC0]"
		ME = "C5%sC0 (C2v%sC0)"
	)
	sn := fmt.Sprintf(SN, vv.SHORTNAME)
	gc := ""
	if GitCommit != "" {
		gc = fmt.Sprintf(GC, GitCommit)
	}

	ll := fmt.Sprintf(LL, cc.LogLevel)
	versioninfo := fmt.Sprintf(ME, vv.MYNAME, vv.VERSION+VersSuppl)
	return sn + versioninfo + gc + ll
}

// BuildInfo - build date, go version, platform, workers; style tags included
func BuildInfo(cc str.CurrentConfiguration) string {
	// example:
	// 	Built:	2023-11-14@19:02:51		Golang:	go1.21.4
	//	System:	darwin-arm64			WKvCPU:	20/20
	const (
		BD = "\tS1Built:S0\tC3%sC0\t"
		GV = "\tS1Golang:S0\tC3%sC0\n"
		SY = "\tS1System:S0\tC3%s-%sC0\t"
		WC = "\t\tS1WKvCPU:S0\tC3%dC0/C3%dC0"
	)

	bi := ""
	if BuildDate != "" {
		bi = fmt.Sprintf(BD, BuildDate)
	}
	bi += fmt.Sprintf(GV, runtime.Version())
	bi += fmt.Sprintf(SY, runtime.GOOS, runtime.GOARCH)
	bi += fmt.Sprintf(WC, cc.WorkerCount, runtime.NumCPU())
	return bi
}

func PrintVersion(w io.Writer, cc str.CurrentConfiguration) {
	fmt.Fprintln(w, Msg.ColStyle(VersionLine(cc)))
}

func PrintBuildInfo(w io.Writer, cc str.CurrentConfiguration) {
	fmt.Fprintln(w, Msg.ColStyle(BuildInfo(cc)))
}

// PrintCopyright - the GPL notice, unless Config.QuietStart
func PrintCopyright(w io.Writer, cc str.CurrentConfiguration) {
	if cc.QuietStart {
		return
	}
	fmt.Fprintln(w, fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJMAIL))
}
