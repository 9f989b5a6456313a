package page

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Element is a single node (or the document root) in a parsed HTML tree.
// Attribute maps passed to Find and FindAll match exactly; a nil map
// matches on tag name alone.
type Element interface {
	// Tag returns the lowercase tag name of the element.
	Tag() string
	// Text returns the element's text content with surrounding whitespace trimmed.
	Text() string
	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
	// Find returns the first descendant matching tag and attributes.
	Find(tag string, attrs map[string]string) (Element, bool)
	// FindAll returns all descendants matching tag and attributes.
	FindAll(tag string, attrs map[string]string) []Element
	// Select returns all descendants matching a CSS selector.
	Select(selector string) []Element
}

// Document is the root element of a parsed page.
type Document = Element

type node struct {
	sel *goquery.Selection
}

// Parse reads HTML from r and returns the document root.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &node{sel: doc.Selection}, nil
}

func (n *node) Tag() string {
	return goquery.NodeName(n.sel)
}

func (n *node) Text() string {
	return strings.TrimSpace(n.sel.Text())
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) Find(tag string, attrs map[string]string) (Element, bool) {
	sel := n.sel.Find(buildSelector(tag, attrs)).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &node{sel: sel}, true
}

func (n *node) FindAll(tag string, attrs map[string]string) []Element {
	return wrap(n.sel.Find(buildSelector(tag, attrs)))
}

func (n *node) Select(selector string) []Element {
	return wrap(n.sel.Find(selector))
}

func wrap(sel *goquery.Selection) []Element {
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &node{sel: s})
	})
	return elements
}

// buildSelector turns a tag name and exact-match attributes into a CSS
// selector. Attribute keys are sorted so the selector is deterministic.
func buildSelector(tag string, attrs map[string]string) string {
	if len(attrs) == 0 {
		return tag
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(tag)
	for _, k := range keys {
		fmt.Fprintf(&b, "[%s=%q]", k, attrs[k])
	}
	return b.String()
}
