// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// fakeContainer is a host node whose attachment is controlled by the test.
type fakeContainer struct {
	connected bool
}

func (c *fakeContainer) IsConnected() bool { return c != nil && c.connected }

// fakeContent records what the base asked of a layer node.
type fakeContent struct {
	id       string
	cleared  int
	visible  bool
	opacity  float64
	removed  bool
	contents []Element
}

func (c *fakeContent) Clear()                     { c.cleared++; c.contents = nil }
func (c *fakeContent) SetVisible(visible bool)    { c.visible = visible }
func (c *fakeContent) SetOpacity(opacity float64) { c.opacity = opacity }
func (c *fakeContent) Remove()                    { c.removed = true }

type fakeBackend struct {
	contextErr error
	created    []string
	contents   map[string]*fakeContent
	resized    []Config
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{contents: make(map[string]*fakeContent)}
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Capabilities() Capabilities {
	return Capabilities{Vector: true, PartialUpdates: true}
}

func (b *fakeBackend) CreateContext(Container, Config) error { return b.contextErr }

func (b *fakeBackend) CreateLayer(id string, _ int) (LayerContent, error) {
	if id == "broken" {
		return nil, errors.New("no room")
	}
	c := &fakeContent{id: id, visible: true, opacity: 1}
	b.contents[id] = c
	b.created = append(b.created, id)
	return c, nil
}

func (b *fakeBackend) Resize(cfg Config) { b.resized = append(b.resized, cfg) }

// fakeRenderer completes Base with trivial Render and Update so it satisfies
// Renderer.
type fakeRenderer struct {
	*Base
	backend *fakeBackend
}

func newFakeRenderer() *fakeRenderer {
	b := newFakeBackend()
	return &fakeRenderer{Base: NewBase(b), backend: b}
}

func (r *fakeRenderer) Render(data []Element, opts *RenderOptions) error {
	if err := r.CheckInitialized("rendering"); err != nil {
		return err
	}
	if opts != nil {
		if l := r.Layer(opts.Layer); l != nil {
			if opts.Clear {
				l.Clear()
			}
			c := l.Content().(*fakeContent)
			c.contents = append(c.contents, data...)
		}
	}
	Emit(r.Events(), TopicRender, RenderEvent{Data: data})
	return nil
}

func (r *fakeRenderer) Update(data []Element, _ *Transition) error {
	if err := r.CheckInitialized("updating"); err != nil {
		return err
	}
	Emit(r.Events(), TopicUpdate, UpdateEvent{Data: data, Unmatched: len(data)})
	return nil
}

var _ Renderer = (*fakeRenderer)(nil)

func mustInit(r Renderer) {
	if err := r.Init(&fakeContainer{connected: true}, Config{Width: 105, Height: 68}); err != nil {
		panic(err)
	}
}
