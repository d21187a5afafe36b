// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg implements render.Renderer on a retained dom tree.
//
// The renderer builds an <svg> root inside a connected *dom.Element
// container. Each layer is a <g data-layer="id" data-z-index="z"> child of
// the root, kept in ascending z-index order. Render appends converted
// elements to a layer group (or the root), and Update mutates nodes joined
// by their id attribute, optionally adding SMIL <animate> keyframes sampled
// from an easing curve.
//
//	doc := dom.NewDocument()
//	host := doc.Body().AppendChild(dom.NewElement("div"))
//
//	r := svg.New()
//	if err := r.Init(host, render.Config{Width: 105, Height: 68}); err != nil {
//		return err
//	}
//	defer r.Destroy()
//
//	if _, err := r.AddLayer("markers", 10); err != nil {
//		return err
//	}
//	shot := render.NewCircle(88, 34, 1).With("id", "shot-1").With("fill", "#e63946")
//	if err := r.Render([]render.Element{shot}, &render.RenderOptions{Layer: "markers"}); err != nil {
//		return err
//	}
//	_, err := r.WriteTo(os.Stdout)
package svg
