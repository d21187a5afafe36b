// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyDocument is returned by Parse for input without a root element.
var ErrEmptyDocument = errors.New("dom: no root element")

// WriteTo serializes e and its subtree as XML. Attributes are written in
// insertion order.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	enc := xml.NewEncoder(cw)
	if err := e.encode(enc); err != nil {
		return cw.n, fmt.Errorf("dom: encode <%s>: %w", e.tag, err)
	}
	if err := enc.Flush(); err != nil {
		return cw.n, fmt.Errorf("dom: flush: %w", err)
	}
	return cw.n, nil
}

// String returns the XML serialization of e.
func (e *Element) String() string {
	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (e *Element) encode(enc *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: e.tag}}
	for _, a := range e.attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.text != "" {
		if err := enc.EncodeToken(xml.CharData(e.text)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Parse reads one XML element tree from r. The result is detached.
// Namespace prefixes are dropped and whitespace-only character data is
// ignored.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dom: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := NewElement(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.SetAttr(a.Name.Local, a.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if s := string(t); strings.TrimSpace(s) != "" {
				top := stack[len(stack)-1]
				top.text += s
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
