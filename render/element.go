// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sort"
	"strconv"
)

// ElementType is the primitive kind of an Element.
type ElementType string

// Element types understood by every backend. Backends skip other types.
const (
	Circle ElementType = "circle"
	Rect   ElementType = "rect"
	Line   ElementType = "line"
	Path   ElementType = "path"
	Text   ElementType = "text"
	Group  ElementType = "group"
)

// Attributes holds free-form backend attributes. Values should be strings
// or numbers; backends coerce them with FormatValue.
type Attributes map[string]any

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Element is one transient drawing instruction passed to Render or Update.
//
// Position fields are optional: nil means unset, so an Update only moves what
// it names. Their meaning depends on Type:
//   - circle: X, Y center and Radius
//   - rect: X, Y corner, Width and Height
//   - line: X, Y start and X2, Y2 end
//   - text: X, Y anchor and Text
//   - group: X, Y translation of Children
//
// Attributes["id"] is the join key used by Update.
type Element struct {
	Type ElementType

	X, Y          *float64
	X2, Y2        *float64
	Width, Height *float64
	Radius        *float64

	Text       string
	Attributes Attributes
	Children   []Element
}

// Num returns a pointer to v for the optional position fields.
func Num(v float64) *float64 { return &v }

// NewCircle returns a circle element centered at (cx, cy).
func NewCircle(cx, cy, r float64) Element {
	return Element{Type: Circle, X: Num(cx), Y: Num(cy), Radius: Num(r)}
}

// NewRect returns a rect element with its top-left corner at (x, y).
func NewRect(x, y, w, h float64) Element {
	return Element{Type: Rect, X: Num(x), Y: Num(y), Width: Num(w), Height: Num(h)}
}

// NewLine returns a line element from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Element {
	return Element{Type: Line, X: Num(x1), Y: Num(y1), X2: Num(x2), Y2: Num(y2)}
}

// NewPath returns a path element with the given path data.
func NewPath(d string) Element {
	return Element{Type: Path, Attributes: Attributes{"d": d}}
}

// NewText returns a text element anchored at (x, y).
func NewText(x, y float64, s string) Element {
	return Element{Type: Text, X: Num(x), Y: Num(y), Text: s}
}

// NewGroup returns a group element holding children.
func NewGroup(children ...Element) Element {
	return Element{Type: Group, Children: children}
}

// With returns a copy of e with attribute key set to value. The receiver's
// attribute map is not modified.
func (e Element) With(key string, value any) Element {
	attrs := make(Attributes, len(e.Attributes)+1)
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	attrs[key] = value
	e.Attributes = attrs
	return e
}

// ID returns the element's join key, or "" when it has none.
func (e Element) ID() string {
	v, ok := e.Attributes["id"]
	if !ok || v == nil {
		return ""
	}
	return FormatValue(v)
}

// FormatValue coerces an attribute value to its string form. Floats use the
// shortest representation that round-trips.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
