//    ReflexDisparity
//    Copyright: E Gunderson 2022-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the  
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or 
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2022-26"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/ReflexDisparity"

	LONGHELP = `C5{{.name}}C0 measures how far the reflexes of a reconstructed protoform have drifted apart.

A sheet needs the columns "C3{{.proto}}C0", "C3{{.reflex}}C0", "C3{{.code}}C0" and, optionally, "C3{{.gloss}}C0".
Reflexes are grouped by protoform, affix markers (C4maN-C0, C4-enC0, C4<um>C0) are optionally stripped,
and each group gets a pairwise edit distance matrix and a mean distance.
Protoforms and reflexes are NFC-normalized before grouping and comparison; "C3--norm noneC0" keeps
every cell exactly as written.

Configuration is read from "C3{{.conf}}C0" in the current directory or in "C3{{.home}}C0".
Glottolog lookups use "C3{{.csv}}C0" and are cached in "C3{{.cache}}C0".`
)
