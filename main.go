//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"github.com/e-gun/ReflexDisparity/internal/lnch"
	"os"
	"os/signal"
)

func main() {
	// cpu profile: rfx --pc ...
	// mem profile: rfx --pm ...
	// go tool pprof --pdf ./rfx /path/to/cpu.pprof > profile.pdf

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	StopProfiling()
	if err != nil {
		stop()
		lnch.Msg.EF(err, "rfx")
	}
}
