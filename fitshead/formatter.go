package fitshead

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/astrogo/fitsio"
	json "github.com/goccy/go-json"
)

// FormatText renders the headers selected by keys as fixed-width
// cards. Each block starts with a "# HDU <key> in <filename>:" line;
// blocks after the first are preceded by one blank line. The result
// carries no trailing newline.
func FormatText(c *Container, keys []ExtKey) (string, error) {
	var b strings.Builder
	for i, key := range keys {
		hdr, err := c.HeaderFor(key)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "# HDU %s in %s:\n", key, c.Filename())
		b.WriteString(renderHeader(hdr, "\n"))
	}
	return b.String(), nil
}

// FormatJSON renders the headers selected by keys as one 2-space
// indented JSON document with top-level "filename" and "hdulist"
// keys. Card order inside each "cards" object follows header
// insertion order.
func FormatJSON(c *Container, keys []ExtKey) (string, error) {
	doc := jsonDocument{
		Filename: c.Filename(),
		HDUList:  make([]jsonHDU, 0, len(keys)),
	}
	for _, key := range keys {
		hdr, err := c.HeaderFor(key)
		if err != nil {
			return "", err
		}
		doc.HDUList = append(doc.HDUList, jsonHDU{HDU: key, Cards: newCardSet(hdr)})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type jsonDocument struct {
	Filename string    `json:"filename"`
	HDUList  []jsonHDU `json:"hdulist"`
}

type jsonHDU struct {
	HDU   ExtKey  `json:"hdu"`
	Cards cardSet `json:"cards"`
}

type jsonCard struct {
	Key   string
	Value interface{}
}

// cardSet marshals header cards as a JSON object that preserves card
// order, which plain maps cannot do.
type cardSet []jsonCard

// newCardSet flattens a header into an ordered card set. Repeated
// keywords keep their first position but take their last value.
func newCardSet(hdr *fitsio.Header) cardSet {
	keys := hdr.Keys()
	seen := make(map[string]int, len(keys))
	cards := make(cardSet, 0, len(keys))
	for i, k := range keys {
		card := hdr.Card(i)
		if j, ok := seen[k]; ok {
			cards[j].Value = card.Value
			continue
		}
		seen[k] = len(cards)
		cards = append(cards, jsonCard{Key: k, Value: card.Value})
	}
	return cards
}

func (cs cardSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, card := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(card.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(card.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
