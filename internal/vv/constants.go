//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	MYNAME    = "Reflex Disparity"
	SHORTNAME = "RFX"
	VERSION   = "0.3.2"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "rfx-conf.json"
	CACHEFILE      = "rfx-glottocache.db" // lives next to the config file unless Config.CacheFile says otherwise
	GLOTTOLOGCSV   = "languoid.csv"       // the glottolog "languoid" export

	// column headers expected in a reflex sheet: matched exactly
	COLPROTOFORM  = "ProtoForm"
	COLREFLEX     = "Reflex"
	COLGLOTTOCODE = "GlottoCode"
	COLGLOSS      = "Gloss"

	// column headers in a glottolog languoid export
	COLGLID     = "id"
	COLGLPARENT = "parent_id"
	COLGLNAME   = "name"

	CLASSIFICATIONHEADER = "Classification"
	GLOTTOCODEPATTERN    = `[a-z]{4}[0-9]{4}`
	GLOTTOSAMPLEROW      = 2 // the first row is a header; the second is often a protoform without a code

	BLACKANDWHITE     = false
	DEFAULTGOLOGLEVEL = 1
	DEFAULTMEASURE    = MEASURELEV
	DEFAULTNORMALIZE  = NORMNFC
	DEFAULTRANKTOP    = 0 // 0 = show every set
	STRIPAFFIXES      = true
	PROTOLANGS        = false
	WRITEPERMS        = 0644

	MEASURELEV  = "levenshtein"
	MEASURENORM = "normalized"

	NORMNFC  = "nfc"
	NORMNFD  = "nfd"
	NORMNONE = "none"

	SELECTORSEP = ","
)
