// render_backend_headless.go - Recording Render Backend

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
render_backend_headless.go - Headless Render Backend

Records the call stream a real backend would receive. Used by the test
suite and by CI runs that convert captures without presenting them.
*/

package main

// HeadlessTexture captures the parameters of one CreateTexture call
type HeadlessTexture struct {
	Format  PixelFormat
	Filter  FilterMode
	WrapU   WrapMode
	WrapV   WrapMode
	Mipmaps bool
	Width   int
	Height  int
	Data    []byte
}

// HeadlessRenderBackend records draw traffic instead of rendering it
type HeadlessRenderBackend struct {
	nextHandle TextureHandle

	Textures  map[TextureHandle]*HeadlessTexture
	Destroyed []TextureHandle

	VideoWidth  int
	VideoHeight int
	Verts       []Vertex
	Indices     []int32
	Drawn       []Surface

	BeginCalls int
	EndCalls   int
}

func NewHeadlessRenderBackend() *HeadlessRenderBackend {
	return &HeadlessRenderBackend{
		Textures: make(map[TextureHandle]*HeadlessTexture),
	}
}

func (h *HeadlessRenderBackend) CreateTexture(format PixelFormat, filter FilterMode,
	wrapU, wrapV WrapMode, mipmaps bool, width, height int, data []byte) TextureHandle {
	h.nextHandle++
	pixels := make([]byte, len(data))
	copy(pixels, data)
	h.Textures[h.nextHandle] = &HeadlessTexture{
		Format:  format,
		Filter:  filter,
		WrapU:   wrapU,
		WrapV:   wrapV,
		Mipmaps: mipmaps,
		Width:   width,
		Height:  height,
		Data:    pixels,
	}
	return h.nextHandle
}

func (h *HeadlessRenderBackend) DestroyTexture(handle TextureHandle) {
	delete(h.Textures, handle)
	h.Destroyed = append(h.Destroyed, handle)
}

func (h *HeadlessRenderBackend) BeginTASurfaces(videoWidth, videoHeight int,
	verts []Vertex, indices []int32) {
	h.BeginCalls++
	h.VideoWidth = videoWidth
	h.VideoHeight = videoHeight
	h.Verts = verts
	h.Indices = indices
	h.Drawn = h.Drawn[:0]
}

func (h *HeadlessRenderBackend) DrawTASurface(surf *Surface) {
	h.Drawn = append(h.Drawn, *surf)
}

func (h *HeadlessRenderBackend) EndTASurfaces() {
	h.EndCalls++
}
