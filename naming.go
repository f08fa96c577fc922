package glyphatlas

import (
	"strconv"

	"github.com/gogpu/glyphatlas/internal/imageio"
)

// dataSuffix is appended to the base name of the metadata file.
const dataSuffix = "-data.lua"

// BaseName returns the output base name of an export:
// family and style concatenated, a dash, the size and "pt".
//
//	BaseName("Go", "Regular", 16) == "GoRegular-16pt"
func BaseName(family, style string, size int) string {
	return family + style + "-" + strconv.Itoa(size) + "pt"
}

// imageFileName returns the atlas image file name for base.
func imageFileName(base string, f imageio.Format) string {
	return base + f.Ext()
}

// dataFileName returns the metadata file name for base.
func dataFileName(base string) string {
	return base + dataSuffix
}
