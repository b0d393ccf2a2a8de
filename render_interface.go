// render_interface.go - Render backend interface for translated TA contexts

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/DreamEngine

License: GPLv3 or later
*/

/*
render_interface.go - Render Backend Contract

A RenderBackend consumes the output of the translator: textures created on
demand during conversion, then per-frame vertex/index arrays bracketing a
sequence of surface draws. Backends are pluggable — software rasterizer,
headless recorder for tests, and an Ebiten display backend in non-headless
builds — and all consume the identical surface stream.
*/

package main

import "fmt"

// RenderError provides detailed error context for render operations
type RenderError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("render %s failed: %s", e.Operation, e.Details)
}

// RenderBackend consumes translated TA draw contexts
type RenderBackend interface {
	// Texture management
	CreateTexture(format PixelFormat, filter FilterMode, wrapU, wrapV WrapMode,
		mipmaps bool, width, height int, data []byte) TextureHandle
	DestroyTexture(handle TextureHandle)

	// Frame bracketing. The vertex and index slices stay valid until
	// EndTASurfaces returns.
	BeginTASurfaces(videoWidth, videoHeight int, verts []Vertex, indices []int32)
	DrawTASurface(surf *Surface)
	EndTASurfaces()
}

// Draw order across lists: opaque first, then alpha-tested punch-through,
// then blended translucency.
var renderListOrder = [3]int{
	TA_LIST_OPAQUE,
	TA_LIST_PUNCH_THROUGH,
	TA_LIST_TRANSLUCENT,
}

// RenderContextUntil draws rc, stopping after the surface whose running
// index equals endSurf. Used for single-stepping a frame; returns whether
// the sentinel was hit.
func RenderContextUntil(b RenderBackend, rc *TRContext, videoWidth, videoHeight, endSurf int) bool {
	b.BeginTASurfaces(videoWidth, videoHeight, rc.Verts[:rc.NumVerts], rc.Indices[:rc.NumIndices])

	stopped := false
	n := 0
	for _, listType := range renderListOrder {
		list := &rc.Lists[listType]
		for i := 0; i < list.NumSurfs; i++ {
			b.DrawTASurface(&rc.Surfs[list.Surfs[i]])
			if n == endSurf {
				stopped = true
				break
			}
			n++
		}
		if stopped {
			break
		}
	}

	b.EndTASurfaces()
	return stopped
}

// RenderContext draws the whole context
func RenderContext(b RenderBackend, rc *TRContext, videoWidth, videoHeight int) {
	RenderContextUntil(b, rc, videoWidth, videoHeight, -1)
}

// renderSurfCount is the number of surfaces RenderContext will draw
func renderSurfCount(rc *TRContext) int {
	n := 0
	for _, listType := range renderListOrder {
		n += rc.Lists[listType].NumSurfs
	}
	return n
}
