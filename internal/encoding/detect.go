// Package encoding normalizes the byte encoding of uploaded files.
// Benefits portals and banks export reimbursement CSVs in a mix of
// UTF-8, UTF-16 and legacy Windows code pages, often with a BOM.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffLen = 4096

type byteOrderMark struct {
	prefix  []byte
	decoder func() *encoding.Decoder
}

var byteOrderMarks = []byteOrderMark{
	// A UTF-8 BOM needs no decoder, only stripping.
	{prefix: []byte{0xEF, 0xBB, 0xBF}, decoder: nil},
	{prefix: []byte{0xFF, 0xFE}, decoder: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{prefix: []byte{0xFE, 0xFF}, decoder: unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// charsetDecoder maps a chardet charset name to a decoder, or nil when
// the content can be used as-is.
func charsetDecoder(charset string) (*encoding.Decoder, bool) {
	switch charset {
	case "UTF-8":
		return nil, true
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252.NewDecoder(), true
	case "ISO-8859-15":
		return charmap.ISO8859_15.NewDecoder(), true
	default:
		return nil, false
	}
}

// UTF8Reader sniffs the encoding of r and returns a reader yielding
// UTF-8 with any BOM removed. The sniff order is BOM, then a UTF-8
// validity check, then chardet heuristics, with Windows-1252 as the
// final fallback since it decodes any byte sequence.
func UTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing encoding: %w", err)
	}

	for _, bom := range byteOrderMarks {
		if !bytes.HasPrefix(head, bom.prefix) {
			continue
		}

		if bom.decoder == nil {
			_, _ = br.Discard(len(bom.prefix))
			return br, nil
		}

		return transform.NewReader(br, bom.decoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if best, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if dec, ok := charsetDecoder(best.Charset); ok {
			if dec == nil {
				return br, nil
			}

			return transform.NewReader(br, dec), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}
