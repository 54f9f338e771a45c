// Package xmlpipe implements the XML pipe specialization described by the
// system's component design: a generic, DOM-like intermediate tree plus a
// Pipe that matches on fully-qualified tag name and attribute conditions.
package xmlpipe

import (
	"encoding/xml"
	"io"
	"strings"

	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Element is one node of the DOM-like tree a Strategy's parse step produces
// from raw XML bytes. Name is fully qualified (space + local, matching
// encoding/xml's xml.Name) so dialects that mix namespaces (xmi:, uml:) are
// distinguishable without string surgery.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
	CharData string
}

// QualifiedName renders Name as "{space}local", the fully-qualified form
// AssociatedTag is matched against.
func (e *Element) QualifiedName() string {
	if e.Name.Space == "" {
		return e.Name.Local
	}
	return "{" + e.Name.Space + "}" + e.Name.Local
}

// Attr returns the value of the attribute named key, ignoring its
// namespace, and whether it was present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// Parse decodes raw bytes into a DOM-like Element tree rooted at the
// document's single root element.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))

	var root *Element
	stack := []*Element{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, umlerrors.NewParseError("", 0, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].CharData += string(t)
			}
		}
	}

	if root == nil {
		return nil, umlerrors.NewInvalidFormatError("xml", "", "document has no root element", nil)
	}
	return root, nil
}

// Walk calls fn for el and every descendant, depth-first, preorder. Any
// ordered sequence built by appending in Walk order matches source document
// order.
func Walk(el *Element, fn func(*Element)) {
	fn(el)
	for _, child := range el.Children {
		Walk(child, fn)
	}
}
