// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/gogpu/pitch"
	"github.com/gogpu/pitch/dom"
	"github.com/gogpu/pitch/engine"
	"github.com/gogpu/pitch/internal/cache"
	"github.com/gogpu/pitch/markings"
	"github.com/gogpu/pitch/preview"
	"github.com/gogpu/pitch/render"
)

// pngRenderer is reported for previews, which always go through gg's
// software rasterizer rather than an engine tier.
const pngRenderer = "preview"

// errNoExport is returned when the selected renderer cannot serialize its
// surface.
var errNoExport = errors.New("server: renderer cannot export")

type handlers struct {
	preferred    engine.Type
	previewWidth int
	maxWidth     int

	// cache holds GET responses keyed by their normalized parameters.
	cache *cache.LRU[string, cached]
}

// cached is a rendered response body with the renderer that produced it.
type cached struct {
	contentType string
	renderer    string
	body        []byte
}

// renderRequest is the POST /render payload.
type renderRequest struct {
	Orientation string           `json:"orientation"`
	Padding     float64          `json:"padding"`
	Events      []markings.Event `json:"events"`
}

// ============================================================
// Health Check Handlers
// ============================================================

func (h *handlers) live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// ready reports ready once a renderer can be created. "detected" lists the
// tiers whose platform probe succeeds; "selectable" lists the tiers the
// engine can actually build a renderer for.
func (h *handlers) ready(c fiber.Ctx) error {
	support := engine.Detect()
	selectable := engine.Selectable()
	body := fiber.Map{
		"status": "ready",
		"detected": fiber.Map{
			"gpu":    support.GPU,
			"raster": support.Raster,
			"svg":    support.SVG,
		},
		"selectable": selectable,
	}
	if len(selectable) == 0 {
		body["status"] = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}

// ============================================================
// Pitch Handlers
// ============================================================

func (h *handlers) pitchSVG(c fiber.Ctx) error {
	o, pad, err := layout(c.Query("orientation"), c.Query("padding"))
	if err != nil {
		return badRequest(c, err)
	}

	key := fmt.Sprintf("svg|%s|%g", o, pad)
	if hit, ok := h.cache.Get(key); ok {
		return send(c, hit, "HIT")
	}
	out, t, err := h.drawSVG(o, pad, nil)
	if err != nil {
		return renderFailed(c, err)
	}
	res := cached{contentType: "image/svg+xml", renderer: string(t), body: out}
	h.cache.Set(key, res)
	return send(c, res, "MISS")
}

func (h *handlers) pitchPNG(c fiber.Ctx) error {
	o, pad, err := layout(c.Query("orientation"), c.Query("padding"))
	if err != nil {
		return badRequest(c, err)
	}
	width, err := h.width(c.Query("width"))
	if err != nil {
		return badRequest(c, err)
	}
	thumb, err := h.thumbWidth(c.Query("thumb"))
	if err != nil {
		return badRequest(c, err)
	}

	key := fmt.Sprintf("png|%s|%g|%d|%d", o, pad, width, thumb)
	if hit, ok := h.cache.Get(key); ok {
		return send(c, hit, "HIT")
	}

	g, s := layoutFor(o, pad)
	img, err := preview.Render(g, s, markings.DefaultTheme(), nil, preview.Options{Width: width})
	if err != nil {
		pitch.Logger().Error("preview failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if thumb > 0 {
		img, err = preview.Thumbnail(img, thumb)
		if err != nil {
			return badRequest(c, err)
		}
	}

	var buf bytes.Buffer
	if err := preview.EncodePNG(&buf, img); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	res := cached{contentType: "image/png", renderer: pngRenderer, body: buf.Bytes()}
	h.cache.Set(key, res)
	return send(c, res, "MISS")
}

// render draws the posted events on a pitch and returns the SVG document.
func (h *handlers) render(c fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body required",
		})
	}

	var req renderRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		pitch.Logger().Debug("render: decode failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid JSON payload",
		})
	}

	o, err := pitch.ParseOrientation(req.Orientation)
	if err != nil {
		return badRequest(c, err)
	}
	if !validPadding(req.Padding) {
		return badRequest(c, fmt.Errorf("padding must be a finite non-negative number, got %v", req.Padding))
	}

	var invalid []string
	for _, e := range req.Events {
		if err := e.Validate(); err != nil {
			invalid = append(invalid, err.Error())
		}
	}
	if len(invalid) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "invalid events",
			"details": invalid,
		})
	}

	out, t, err := h.drawSVG(o, req.Padding, req.Events)
	if err != nil {
		return renderFailed(c, err)
	}
	c.Set("X-Pitch-Renderer", string(t))
	c.Set("Content-Type", "image/svg+xml")
	return c.Send(out)
}

// drawSVG creates a renderer through the engine, attaches it to a detached
// document host and serializes the result.
func (h *handlers) drawSVG(o pitch.Orientation, pad float64, events []markings.Event) ([]byte, engine.Type, error) {
	eng, err := engine.New(engine.Options{Preferred: h.preferred})
	if err != nil {
		return nil, "", err
	}
	r := eng.Renderer()
	w, ok := r.(io.WriterTo)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", errNoExport, eng.Type())
	}

	g, s := layoutFor(o, pad)
	size := s.Size()
	host := dom.NewDocument().Body().AppendChild(dom.NewElement("div"))
	if err := r.Init(host, render.Config{Width: size.Width, Height: size.Height}); err != nil {
		return nil, "", err
	}
	defer r.Destroy()

	if err := markings.Draw(r, g, s, markings.DefaultTheme(), events); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), eng.Type(), nil
}

// ============================================================
// Helpers
// ============================================================

func layout(orientation, padding string) (pitch.Orientation, float64, error) {
	o, err := pitch.ParseOrientation(orientation)
	if err != nil {
		return 0, 0, err
	}
	if padding == "" {
		return o, 0, nil
	}
	pad, err := strconv.ParseFloat(padding, 64)
	if err != nil || !validPadding(pad) {
		return 0, 0, fmt.Errorf("invalid padding %q", padding)
	}
	return o, pad, nil
}

// validPadding rejects negative and non-finite padding, which would yield
// an empty or NaN viewport.
func validPadding(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func layoutFor(o pitch.Orientation, pad float64) (*pitch.Geometry, pitch.Scale) {
	g := pitch.NewGeometry(pitch.StandardDimensions(), o)
	s := pitch.NewScale(pitch.ScaleOptions{
		Dimensions:  pitch.StandardDimensions().Oriented(o),
		Orientation: o,
		Padding:     pitch.Uniform(pad),
	})
	return g, s
}

func (h *handlers) width(raw string) (int, error) {
	if raw == "" {
		return h.previewWidth, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w <= 0 {
		return 0, fmt.Errorf("invalid width %q", raw)
	}
	if h.maxWidth > 0 && w > h.maxWidth {
		return 0, fmt.Errorf("width %d exceeds maximum %d", w, h.maxWidth)
	}
	return w, nil
}

// thumbWidth parses the optional thumbnail width. Zero means no thumbnail;
// larger values share the preview width limit.
func (h *handlers) thumbWidth(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid thumb %q", raw)
	}
	if h.maxWidth > 0 && v > h.maxWidth {
		return 0, fmt.Errorf("thumb %d exceeds maximum %d", v, h.maxWidth)
	}
	return v, nil
}

func send(c fiber.Ctx, res cached, cacheStatus string) error {
	c.Set("X-Cache", cacheStatus)
	c.Set("X-Pitch-Renderer", res.renderer)
	c.Set("Content-Type", res.contentType)
	return c.Send(res.body)
}

func renderFailed(c fiber.Ctx, err error) error {
	pitch.Logger().Error("render failed", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
