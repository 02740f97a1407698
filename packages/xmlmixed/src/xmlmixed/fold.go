package xmlmixed

import (
	"strings"

	"xmlmixed-go/packages/xmlmixed/src/modes"
	"xmlmixed-go/packages/xmlmixed/src/util"
)

// FindCdataFold returns the inside of the CDATA section whose open marker
// is the first one at or after start on its line. The marker only counts
// when the tokenizer classified it as a CDATA open token; the section may
// end on a later line. An unterminated section has no range.
func FindCdataFold(doc modes.Document, start util.Position) (util.Range, bool) {
	text := doc.Line(start.Line)
	idx := indexFrom(text, cdataOpen, start.Ch)
	if idx < 0 {
		return util.Range{}, false
	}
	if !strings.Contains(doc.TokenTypeAt(util.Pos(start.Line, idx+1)), StyleCdataOpen) {
		return util.Range{}, false
	}

	from := util.Pos(start.Line, idx+len(cdataOpen))
	if end := indexFrom(text, cdataClose, from.Ch); end >= 0 {
		return util.Range{From: from, To: util.Pos(start.Line, end)}, true
	}
	for line := start.Line + 1; line <= doc.LastLine(); line++ {
		if end := strings.Index(doc.Line(line), cdataClose); end >= 0 {
			return util.Range{From: from, To: util.Pos(line, end)}, true
		}
	}
	return util.Range{}, false
}

// RegisterCdataFold installs FindCdataFold as the "cdata" fold helper,
// applicable in every mode.
func RegisterCdataFold(r *modes.Registry) {
	r.RegisterFoldHelper(modes.FoldHelper{
		Name:      "cdata",
		Predicate: func(modes.Mode) bool { return true },
		Fold:      FindCdataFold,
	})
}
