//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BlackAndWhite bool
	CacheFile     string // "" means vv.CACHEFILE inside the config folder
	GlossColumn   string
	GlottologCSV  string
	LogLevel      int
	Measure       string // "levenshtein" or "normalized"
	NoCache       bool
	Normalization string // "nfc", "nfd", "none"
	ProfileCPU    bool
	ProfileMEM    bool
	ProtoLangs    bool // keep rows without a glottocode, i.e. the protoforms themselves
	QuietStart    bool
	StripAffixes  bool
	WorkerCount   int
}
