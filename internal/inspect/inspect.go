// Package inspect walks rendered HTML documents.
package inspect

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func Parse(b []byte) (*html.Node, error) {
	return html.Parse(bytes.NewReader(b))
}

// IDCounts returns how many elements carry each id attribute.
func IDCounts(root *html.Node) map[string]int {
	counts := make(map[string]int)
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if id := Attr(n, "id"); id != "" {
			counts[id]++
		}
	})
	return counts
}

func ByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && Attr(n, "id") == id {
			found = n
		}
	})
	return found
}

// All returns every descendant element of n with the given tag, in document order.
func All(n *html.Node, tag atom.Atom) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) {
		if c != n && c.Type == html.ElementNode && c.DataAtom == tag {
			out = append(out, c)
		}
	})
	return out
}

// FirstWithClass returns the first descendant whose class list contains class.
func FirstWithClass(n *html.Node, class string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found != nil || c == n || c.Type != html.ElementNode {
			return
		}
		for _, cl := range strings.Fields(Attr(c, "class")) {
			if cl == class {
				found = c
				return
			}
		}
	})
	return found
}

// Children returns the direct element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text concatenates all text below n.
func Text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
