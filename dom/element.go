// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dom

import "slices"

// Attr is a single name/value attribute. Attributes keep the order in which
// they were first set.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the document tree.
type Element struct {
	tag      string
	attrs    []Attr
	text     string
	parent   *Element
	children []*Element

	// root is set only on a Document's body element.
	root bool
}

// NewElement returns a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	i := e.attrIndex(name)
	if i < 0 {
		return "", false
	}
	return e.attrs[i].Value, true
}

// AttrOr returns the value of the named attribute, or def when unset.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute, keeping its position when it already exists.
func (e *Element) SetAttr(name, value string) *Element {
	if i := e.attrIndex(name); i >= 0 {
		e.attrs[i].Value = value
		return e
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	if i := e.attrIndex(name); i >= 0 {
		e.attrs = slices.Delete(e.attrs, i, i+1)
	}
}

// Attrs returns a copy of the element's attributes in insertion order.
func (e *Element) Attrs() []Attr {
	return slices.Clone(e.attrs)
}

func (e *Element) attrIndex(name string) int {
	return slices.IndexFunc(e.attrs, func(a Attr) bool { return a.Name == name })
}

// Text returns the element's character data.
func (e *Element) Text() string { return e.text }

// SetText replaces the element's character data.
func (e *Element) SetText(s string) { e.text = s }

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// AppendChild moves child to the end of e's children. A child that already
// has a parent is detached from it first.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil || child == e {
		return child
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// InsertBefore inserts child immediately before ref. When ref is nil or not a
// child of e, child is appended.
func (e *Element) InsertBefore(child, ref *Element) *Element {
	if child == nil || child == e {
		return child
	}
	if child == ref {
		return child
	}
	child.Remove()
	i := slices.Index(e.children, ref)
	if ref == nil || i < 0 {
		child.parent = e
		e.children = append(e.children, child)
		return child
	}
	child.parent = e
	e.children = slices.Insert(e.children, i, child)
	return child
}

// RemoveChild detaches child from e. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
	return true
}

// RemoveChildren detaches every child of e.
func (e *Element) RemoveChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

// Remove detaches e from its parent. It does nothing for a detached element.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// IsConnected reports whether e is, or descends from, a document body. A nil
// element is never connected.
func (e *Element) IsConnected() bool {
	for n := e; n != nil; n = n.parent {
		if n.root {
			return true
		}
	}
	return false
}

// ElementByID returns the first element in e's subtree, e included, whose id
// attribute equals id, in depth-first document order.
func (e *Element) ElementByID(id string) *Element {
	return e.Find(func(n *Element) bool {
		v, ok := n.Attr("id")
		return ok && v == id
	})
}

// Find returns the first element in e's subtree, e included, matching fn in
// depth-first document order.
func (e *Element) Find(fn func(*Element) bool) *Element {
	if e == nil {
		return nil
	}
	if fn(e) {
		return e
	}
	for _, c := range e.children {
		if n := c.Find(fn); n != nil {
			return n
		}
	}
	return nil
}

// FindAll returns every element in e's subtree, e included, matching fn in
// depth-first document order.
func (e *Element) FindAll(fn func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if fn(n) {
			out = append(out, n)
		}
	})
	return out
}

// ElementsByTag returns every element in e's subtree with the given tag.
func (e *Element) ElementsByTag(tag string) []*Element {
	return e.FindAll(func(n *Element) bool { return n.tag == tag })
}

func (e *Element) walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}

// Document owns the connected root of a tree.
type Document struct {
	body *Element
}

// NewDocument returns an empty document with a connected body element.
func NewDocument() *Document {
	return &Document{body: &Element{tag: "body", root: true}}
}

// Body returns the document's root element. Anything appended under it is
// connected.
func (d *Document) Body() *Element { return d.body }

// ElementByID searches the whole document.
func (d *Document) ElementByID(id string) *Element {
	return d.body.ElementByID(id)
}
