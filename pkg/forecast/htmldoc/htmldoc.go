// Package htmldoc adapts golang.org/x/net/html trees to forecast.Document.
// Structural markers are CSS class tokens.
package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/spencer-p/lowtides/pkg/forecast"
)

var headings = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Node is an element within a Document.
type Node struct {
	n *html.Node
}

var (
	_ forecast.Document = (*Document)(nil)
	_ forecast.Node     = (*Node)(nil)
)

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// FindAll returns the elements whose class attribute holds every class in
// marker, which may list several separated by spaces.
func (d *Document) FindAll(marker string) []forecast.Node {
	want := strings.Fields(marker)
	if len(want) == 0 {
		return nil
	}

	var result []forecast.Node
	walk(d.root, func(n *html.Node) {
		if hasClasses(n, want) {
			result = append(result, &Node{n})
		}
	})
	return result
}

func (n *Node) Text() string {
	return collectText(n.n)
}

func (n *Node) Heading() (string, bool) {
	h := first(n.n, func(c *html.Node) bool {
		for _, a := range headings {
			if c.DataAtom == a {
				return true
			}
		}
		return false
	})
	if h == nil {
		return "", false
	}
	return collectText(h), true
}

func (n *Node) Rows() ([][]string, bool) {
	table := first(n.n, isAtom(atom.Table))
	if table == nil {
		return nil, false
	}

	var rows [][]string
	walk(table, func(tr *html.Node) {
		if tr.DataAtom != atom.Tr {
			return
		}
		cells := []string{}
		walk(tr, func(td *html.Node) {
			if td.DataAtom == atom.Td {
				cells = append(cells, collectText(td))
			}
		})
		rows = append(rows, cells)
	})
	return rows, true
}

// walk calls fn on every element beneath and including root, in document
// order.
func walk(root *html.Node, fn func(*html.Node)) {
	if root.Type == html.ElementNode {
		fn(root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// first finds the first element strictly beneath root matching ok.
func first(root *html.Node, ok func(*html.Node) bool) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && ok(c) {
			return c
		}
		if found := first(c, ok); found != nil {
			return found
		}
	}
	return nil
}

func isAtom(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.DataAtom == a
	}
}

func hasClasses(n *html.Node, want []string) bool {
	have := strings.Fields(getAttr(n, "class"))
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// getAttr returns the value of an attribute on a node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// collectText concatenates every text node beneath n, as a browser's
// textContent would.
func collectText(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return sb.String()
}
