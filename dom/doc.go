// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package dom is a small retained document tree used as the host for
// vector renderers.
//
// A Document owns a connected root element. Elements created with
// NewElement start detached; they become connected once appended, directly
// or through ancestors, under the document root. Renderers require a
// connected container at Init time, mirroring how a browser renderer
// refuses a node that is not in the page.
//
//	doc := dom.NewDocument()
//	chart := dom.NewElement("div")
//	doc.Body().AppendChild(chart)
//	chart.IsConnected() // true
//
// The tree serializes to XML with WriteTo and can be read back with Parse.
// It is not safe for concurrent use.
package dom
