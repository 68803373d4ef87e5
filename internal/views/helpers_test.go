package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

// parse renders n and returns the parsed document root
func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// findAll returns every element below n matching pred, in document order
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && pred(c) {
			out = append(out, c)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func byClass(n *html.Node, class string) []*html.Node {
	return findAll(n, func(c *html.Node) bool { return hasClass(c, class) })
}

func byTag(n *html.Node, tag string) []*html.Node {
	return findAll(n, func(c *html.Node) bool { return c.Data == tag })
}

// text concatenates every text node below n
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, strings.TrimSpace(text(n)))
	}
	return out
}
