// Package soap implements the envelope codec for the ERP's XML-RPC style
// protocol: request encoding, response decoding into a navigable field tree,
// and normalization of the service's inconsistent collection encoding.
package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedResponse indicates a response body that is not well-formed XML
// or lacks the expected Envelope/Body wrapper.
var ErrMalformedResponse = errors.New("malformed envelope")

// ErrFault indicates a protocol-level fault element returned by the remote
// service inside an otherwise well-formed envelope.
var ErrFault = errors.New("remote fault")

// Param is a single named request parameter. Order is preserved on the wire.
type Param struct {
	Key   string
	Value string
}

const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	functionNS = "urn:sap-com:document:sap:rfc:functions"
)

// Encode builds a request envelope for the given operation, wrapping params as
// same-named child elements inside an operation-named container. Parameter
// values are XML-escaped; operation and parameter names come from a fixed
// operation table, never from user input.
func Encode(operation string, params []Param) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<soapenv:Envelope xmlns:soapenv="` + envelopeNS + `" xmlns:urn="` + functionNS + `">`)
	b.WriteString(`<soapenv:Header/><soapenv:Body>`)
	b.WriteString(`<urn:` + operation + `>`)
	for _, p := range params {
		b.WriteString(`<` + p.Key + `>`)
		xml.EscapeText(&b, []byte(p.Value))
		b.WriteString(`</` + p.Key + `>`)
	}
	b.WriteString(`</urn:` + operation + `>`)
	b.WriteString(`</soapenv:Body></soapenv:Envelope>`)
	return b.String()
}

// Node is one element of a decoded response tree. Tag names have their
// namespace prefixes stripped so fields are addressable directly. Repeated
// sibling elements are kept in document order; cardinality decisions belong
// to Normalize, not the decoder.
type Node struct {
	Name     string
	Children []*Node
	text     strings.Builder
}

// Decode parses an XML response body into a field tree and returns the Body
// content node of the envelope.
func Decode(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root := &Node{}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{Name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, child)
			stack = append(stack, child)
		case xml.EndElement:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: unbalanced element %q", ErrMalformedResponse, t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			stack[len(stack)-1].text.Write(t)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: truncated document", ErrMalformedResponse)
	}

	envelope := root.Child("Envelope")
	if envelope == nil {
		return nil, fmt.Errorf("%w: missing Envelope element", ErrMalformedResponse)
	}
	body := envelope.Child("Body")
	if body == nil {
		return nil, fmt.Errorf("%w: missing Body element", ErrMalformedResponse)
	}

	if fault := body.Child("Fault"); fault != nil {
		reason := fault.Path("faultstring").Text()
		if reason == "" {
			reason = "unspecified fault"
		}
		return nil, fmt.Errorf("%w: %s", ErrFault, reason)
	}

	return body, nil
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path walks first-matching children by name and returns the final node, or nil.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Items returns all child elements with the given name, in document order.
func (n *Node) Items(name string) []*Node {
	if n == nil {
		return nil
	}
	var items []*Node
	for _, c := range n.Children {
		if c.Name == name {
			items = append(items, c)
		}
	}
	return items
}

// Text returns the element's character data with surrounding whitespace removed.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.text.String())
}

// HasElements reports whether the node contains child elements.
func (n *Node) HasElements() bool {
	return n != nil && len(n.Children) > 0
}
