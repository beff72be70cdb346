package xbrl

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed XBRL-style filing. SEC filings are tagged HTML/XML
// where machine-oriented financial facts and human-readable narrative text
// share one tree.
type Document struct {
	root *html.Node
}

// Parse reads an XBRL-style filing from r.
//
// Content without any markup structure returns ErrNotXBRL. Markup without
// an XBRL root element returns ErrMalformed with detail. Both are expected
// for the non-XBRL exhibits bundled inside a filing directory and callers
// are expected to skip the file and continue.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	root := doc.Get(0)
	if !hasMarkup(root) {
		return nil, ErrNotXBRL
	}
	if findXBRLRoot(root) == nil {
		return nil, fmt.Errorf("%w: no xbrl root element", ErrMalformed)
	}

	return &Document{root: root}, nil
}

// NarrativeText extracts the human-readable narrative embedded in the
// filing: the visible text of every narrative block element, joined by
// single spaces, in document order.
//
// A narrative block is a paragraph or division element containing at least
// one styled span. Tagged numeric facts live outside such blocks, so the
// predicate cheaply separates disclosure prose from machine-oriented data
// without a schema-aware XBRL reader.
func (d *Document) NarrativeText() string {
	var parts []string
	walk(d.root, func(n *html.Node) {
		if !isNarrativeBlock(n) {
			return
		}
		if text := collapseSpace(nodeText(n)); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// isNarrativeBlock reports whether n is a paragraph or division element
// with a descendant span. The predicate is deliberately narrow: only p and
// div qualify, not arbitrary elements that happen to contain a span.
func isNarrativeBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.Data != "p" && n.Data != "div" {
		return false
	}
	return hasDescendant(n, "span")
}

// hasMarkup reports whether the tree contains any element beyond the
// html/head/body scaffolding the parser inserts around bare text.
func hasMarkup(root *html.Node) bool {
	found := false
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "html", "head", "body":
			return
		}
		found = true
	})
	return found
}

// findXBRLRoot locates the element the extractor indexes into: any element
// whose tag name carries an xbrl marker, namespaced or not.
func findXBRLRoot(root *html.Node) *html.Node {
	var match *html.Node
	walk(root, func(n *html.Node) {
		if match != nil {
			return
		}
		if n.Type == html.ElementNode && strings.Contains(strings.ToLower(n.Data), "xbrl") {
			match = n
		}
	})
	return match
}

func hasDescendant(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}

// nodeText concatenates the raw text nodes under n in document order.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
	})
	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
