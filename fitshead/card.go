package fitshead

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"
)

// cardWidth is the fixed width of one FITS header card.
const cardWidth = 80

// renderHeader renders every card of a header in insertion order, one
// card per line joined by sep, without trailing padding, and ends with
// the END card. No trailing separator is emitted.
func renderHeader(hdr *fitsio.Header, sep string) string {
	var b strings.Builder
	for i := range hdr.Keys() {
		b.WriteString(renderCard(hdr.Card(i)))
		b.WriteString(sep)
	}
	b.WriteString("END")
	return b.String()
}

// renderCard renders a single card in fixed-width format, trimmed of
// trailing blanks.
func renderCard(card *fitsio.Card) string {
	switch card.Name {
	case "COMMENT", "HISTORY", "":
		// Commentary cards carry free text and no value indicator.
		text := card.Comment
		if s, ok := card.Value.(string); ok && s != "" {
			text = s
		}
		return strings.TrimRight(fmt.Sprintf("%-8s %s", card.Name, text), " ")
	}

	line := fmt.Sprintf("%-8s= %s", card.Name, renderValue(card.Value))
	if card.Comment != "" {
		line += " / " + card.Comment
	}
	if len(line) > cardWidth {
		line = line[:cardWidth]
	}
	return strings.TrimRight(line, " ")
}

// renderValue formats a card value the way it appears on disk: quoted
// left-justified strings, everything else right-justified in the
// 20-column value field.
func renderValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return strings.Repeat(" ", 20)
	case bool:
		flag := "F"
		if v {
			flag = "T"
		}
		return fmt.Sprintf("%20s", flag)
	case string:
		return fmt.Sprintf("'%-8s'", v)
	case float64:
		return fmt.Sprintf("%20s", strconv.FormatFloat(v, 'G', -1, 64))
	case float32:
		return fmt.Sprintf("%20s", strconv.FormatFloat(float64(v), 'G', -1, 32))
	case complex64, complex128:
		return fmt.Sprintf("%20v", v)
	default:
		return fmt.Sprintf("%20v", v)
	}
}
