package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element builds a detached element node. attrs are key/value pairs.
func element(tag, class string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}

	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}

	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func appendChildren(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}

	return parent
}
