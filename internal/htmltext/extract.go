// Package htmltext turns pasted HTML into the visible text a reader sees.
package htmltext

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// hidden lists elements whose content is never shown to a reader.
const hidden = "script, style, noscript, template, iframe, svg, head"

// Extract returns the whitespace-normalized visible text of an HTML document
// read from r. Block elements are separated by spaces while inline markup
// such as <b> joins its text to the surrounding words. Documents that are not valid UTF-8 are decoded
// from their detected charset first.
func Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find(hidden).Remove()

	var b strings.Builder
	collectText(doc.Selection, &b)
	return normalizeWhitespace(b.String()), nil
}

// ExtractString is Extract for an in-memory document.
func ExtractString(html string) (string, error) {
	return Extract(strings.NewReader(html))
}

// Title returns the trimmed <title> of an HTML document, if any.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(utf8Reader([]byte(html)))
	if err != nil {
		return ""
	}
	return normalizeWhitespace(doc.Find("title").First().Text())
}

// utf8Reader converts data to UTF-8. Valid UTF-8 is passed through untouched.
func utf8Reader(data []byte) io.Reader {
	if utf8.Valid(data) {
		return bytes.NewReader(data)
	}
	r, err := charset.NewReader(bytes.NewReader(data), "text/html; charset="+DetectCharset(data))
	if err != nil {
		return bytes.NewReader(data)
	}
	return r
}

// DetectCharset guesses the charset of data, defaulting to utf-8.
func DetectCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// inline lists phrasing elements that can sit inside a word.
var inline = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true,
	"code": true, "data": true, "del": true, "dfn": true, "em": true, "font": true,
	"i": true, "ins": true, "kbd": true, "label": true, "mark": true, "q": true,
	"s": true, "samp": true, "small": true, "span": true, "strong": true,
	"sub": true, "sup": true, "time": true, "u": true, "var": true,
}

// collectText walks s in document order. Any element that is not inline
// is padded with spaces.
func collectText(s *goquery.Selection, b *strings.Builder) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			b.WriteString(c.Text())
		case name == "#comment":
		case inline[name]:
			collectText(c, b)
		default:
			b.WriteByte(' ')
			collectText(c, b)
			b.WriteByte(' ')
		}
	})
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
