package syscalls

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

//nolint:gochecknoglobals
var codePages = map[uint32]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	862:   charmap.CodePage862,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28605: charmap.ISO8859_15,
	65001: unicode.UTF8,
}

// CodePageEncoding returns the text encoding of a Windows code page. Unknown
// code pages fall back to Windows-1252.
func CodePageEncoding(cp uint32) encoding.Encoding {
	if enc, ok := codePages[cp]; ok {
		return enc
	}

	return charmap.Windows1252
}

// ANSIEncoding returns the text encoding of the system's ANSI code page, the
// default for text operations without an explicit encoding.
func ANSIEncoding() encoding.Encoding {
	return CodePageEncoding(ANSICodePage())
}
