//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"runtime"
	"strings"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND              = -1
	MSGCRIT              = 0
	MSGWARN              = 1
	MSGNOTE              = 2
	MSGFYI               = 3
	MSGPEEK              = 4
	MSGTMI               = 5
	TIMETRACKERMSGTHRESH = MSGFYI
	RESET                = "\033[0m"
	BLUE1                = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2                = "\033[38;5;68m"  // SteelBlue3
	CYAN1                = "\033[38;5;109m" // LightSkyBlue3
	CYAN2                = "\033[38;5;117m" // SkyBlue1
	GREEN                = "\033[38;5;70m"  // Chartreuse3
	RED1                 = "\033[38;5;160m" // Red3
	RED2                 = "\033[38;5;168m" // HotPink3
	YELLOW1              = "\033[38;5;178m" // Gold3
	YELLOW2              = "\033[38;5;143m" // DarkKhaki
	GREY1                = "\033[38;5;254m" // Grey89
	GREY2                = "\033[38;5;247m" // Grey62
	GREY3                = "\033[38;5;242m" // Grey42
	WHITE                = "\033[38;5;255m" // Grey93
	BLINK                = "\033[30;0;5m"
	PANIC                = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2               = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

// MessageMaker - all terminal chatter goes through one of these
type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
	Out  io.Writer
	Exit func(int)
}

// NewMessageMaker - a MessageMaker that writes to stderr; color is off if stderr is not a terminal
func NewMessageMaker(longname, shortname, version string, loglevel int) *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}

	bw := !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())

	return &MessageMaker{
		Lnc:  time.Now(),
		BW:   bw,
		LLvl: loglevel,
		LNm:  longname,
		SNm:  shortname,
		Ver:  version,
		Win:  w,
		Out:  os.Stderr,
		Exit: os.Exit,
	}
}

func (m *MessageMaker) plain() bool {
	return m.Win || m.BW
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[RFX] 112 cognate sets built"

	if m.LLvl < threshold {
		return
	}

	if !m.plain() {
		var color string

		switch threshold {
		case MSGMAND:
			color = GREEN
		case MSGCRIT:
			color = RED1
		case MSGWARN:
			color = YELLOW2
		case MSGNOTE:
			color = YELLOW1
		case MSGFYI:
			color = CYAN2
		case MSGPEEK:
			color = BLUE2
		case MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Fprintf(m.Out, "[%s%s%s] %s%s%s\n", YELLOW1, m.SNm, RESET, color, message, RESET)
	} else {
		// terminal color codes not w's friend
		fmt.Fprintf(m.Out, "[%s] %s\n", m.SNm, message)
	}
}

// MAND - message that always prints
func (m *MessageMaker) MAND(s string) {
	m.Emit(s, MSGMAND)
}

// CRIT - critical message
func (m *MessageMaker) CRIT(s string) {
	m.Emit(s, MSGCRIT)
}

// WARN - warning message
func (m *MessageMaker) WARN(s string) {
	m.Emit(s, MSGWARN)
}

// NOTE - notice
func (m *MessageMaker) NOTE(s string) {
	m.Emit(s, MSGNOTE)
}

// FYI - informational
func (m *MessageMaker) FYI(s string) {
	m.Emit(s, MSGFYI)
}

// PEEK - look under the hood
func (m *MessageMaker) PEEK(s string) {
	m.Emit(s, MSGPEEK)
}

// TMI - too much information
func (m *MessageMaker) TMI(s string) {
	m.Emit(s, MSGTMI)
}

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if !m.plain() {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if !m.plain() {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EF - report error and function, then exit
func (m *MessageMaker) EF(err error, fn string) {
	if err == nil {
		return
	}
	if m.plain() {
		fmt.Fprintf(m.Out, "[%s v.%s] (%s) UNRECOVERABLE ERROR\n", m.LNm, m.Ver, fn)
	} else {
		fmt.Fprintf(m.Out, PANIC2, YELLOW2, m.LNm, m.Ver, RESET, CYAN2, fn, RESET, RED1, RESET)
	}
	fmt.Fprintln(m.Out, err)
	m.Exit(1)
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[A2: 0.041s][Δ: 0.012s] 112 cognate sets built"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}
