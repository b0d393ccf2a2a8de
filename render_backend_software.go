// render_backend_software.go - Software Rasterizer Render Backend

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
render_backend_software.go - Software Rasterizer

Rasterizes translated TA surfaces into an RGBA framebuffer. Implements the
full surface state the translator emits: the eight depth comparisons over
1/w depth, back/front culling, the PVR blend factor set, the four texture
shading instructions, punch-through alpha testing and per-axis
repeat/clamp/mirror texture addressing with point or bilinear sampling.

Triangles arrive as CCW index triples over the shared vertex arena, so
culling reduces to the sign of the screen-space area.
*/

package main

import (
	"math"
	"sync"
)

type softwareTexture struct {
	filter FilterMode
	wrapU  WrapMode
	wrapV  WrapMode
	width  int
	height int
	pixels []byte
}

// SoftwareRenderBackend rasterizes translated contexts on the CPU
type SoftwareRenderBackend struct {
	mutex sync.Mutex

	width, height int
	colorBuffer   []byte
	depthBuffer   []float32
	frontBuffer   []byte

	nextHandle TextureHandle
	textures   map[TextureHandle]*softwareTexture

	verts   []Vertex
	indices []int32
}

func NewSoftwareRenderBackend() *SoftwareRenderBackend {
	return &SoftwareRenderBackend{
		textures: make(map[TextureHandle]*softwareTexture),
	}
}

func (b *SoftwareRenderBackend) CreateTexture(format PixelFormat, filter FilterMode,
	wrapU, wrapV WrapMode, mipmaps bool, width, height int, data []byte) TextureHandle {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	pixels := make([]byte, len(data))
	copy(pixels, data)
	b.nextHandle++
	b.textures[b.nextHandle] = &softwareTexture{
		filter: filter,
		wrapU:  wrapU,
		wrapV:  wrapV,
		width:  width,
		height: height,
		pixels: pixels,
	}
	return b.nextHandle
}

func (b *SoftwareRenderBackend) DestroyTexture(handle TextureHandle) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	delete(b.textures, handle)
}

func (b *SoftwareRenderBackend) BeginTASurfaces(videoWidth, videoHeight int,
	verts []Vertex, indices []int32) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.width != videoWidth || b.height != videoHeight {
		b.width = videoWidth
		b.height = videoHeight
		pixelCount := videoWidth * videoHeight
		b.colorBuffer = make([]byte, pixelCount*4)
		b.depthBuffer = make([]float32, pixelCount)
		b.frontBuffer = make([]byte, pixelCount*4)
	}

	for i := range b.colorBuffer {
		b.colorBuffer[i] = 0
	}
	// Depth is 1/w: zero is infinitely far
	for i := range b.depthBuffer {
		b.depthBuffer[i] = 0
	}

	b.verts = verts
	b.indices = indices
}

func (b *SoftwareRenderBackend) DrawTASurface(surf *Surface) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for i := surf.FirstVert; i+3 <= surf.FirstVert+surf.NumVerts; i += 3 {
		v0 := &b.verts[b.indices[i]]
		v1 := &b.verts[b.indices[i+1]]
		v2 := &b.verts[b.indices[i+2]]
		b.rasterizeTriangle(surf, v0, v1, v2)
	}
}

func (b *SoftwareRenderBackend) EndTASurfaces() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	copy(b.frontBuffer, b.colorBuffer)
}

// GetFrame returns the last completed frame as RGBA bytes
func (b *SoftwareRenderBackend) GetFrame() []byte {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.frontBuffer
}

func (b *SoftwareRenderBackend) GetDimensions() (int, int) {
	return b.width, b.height
}

func swEdgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func (b *SoftwareRenderBackend) rasterizeTriangle(surf *Surface, v0, v1, v2 *Vertex) {
	area := swEdgeFunction(v0.XYZ[0], v0.XYZ[1], v1.XYZ[0], v1.XYZ[1], v2.XYZ[0], v2.XYZ[1])
	if area == 0 {
		return
	}

	// Index generation makes front faces CCW (positive area)
	switch surf.Params.Cull {
	case CULL_BACK:
		if area < 0 {
			return
		}
	case CULL_FRONT:
		if area > 0 {
			return
		}
	}
	if area < 0 {
		v0, v2 = v2, v0
		area = -area
	}
	invArea := 1.0 / area

	minX := int(math.Floor(float64(min3f(v0.XYZ[0], v1.XYZ[0], v2.XYZ[0]))))
	maxX := int(math.Ceil(float64(max3f(v0.XYZ[0], v1.XYZ[0], v2.XYZ[0]))))
	minY := int(math.Floor(float64(min3f(v0.XYZ[1], v1.XYZ[1], v2.XYZ[1]))))
	maxY := int(math.Ceil(float64(max3f(v0.XYZ[1], v1.XYZ[1], v2.XYZ[1]))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > b.width {
		maxX = b.width
	}
	if maxY > b.height {
		maxY = b.height
	}

	tex := b.textures[surf.Params.Texture]
	alphaRef := float32(surf.Params.AlphaRef) / 255.0

	for y := minY; y < maxY; y++ {
		rowBase := y * b.width
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0 := swEdgeFunction(v1.XYZ[0], v1.XYZ[1], v2.XYZ[0], v2.XYZ[1], px, py)
			w1 := swEdgeFunction(v2.XYZ[0], v2.XYZ[1], v0.XYZ[0], v0.XYZ[1], px, py)
			w2 := swEdgeFunction(v0.XYZ[0], v0.XYZ[1], v1.XYZ[0], v1.XYZ[1], px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			z := w0*v0.XYZ[2] + w1*v1.XYZ[2] + w2*v2.XYZ[2]
			pixelIndex := rowBase + x
			if !depthCompare(surf.Params.DepthFunc, z, b.depthBuffer[pixelIndex]) {
				continue
			}

			r, g, bl, a := interpColor(v0.Color, v1.Color, v2.Color, w0, w1, w2)
			if surf.Params.IgnoreAlpha {
				a = 1
			}

			if tex != nil {
				u := w0*v0.UV[0] + w1*v1.UV[0] + w2*v2.UV[0]
				vcoord := w0*v0.UV[1] + w1*v1.UV[1] + w2*v2.UV[1]
				tr, tg, tb, ta := tex.sample(u, vcoord)
				if surf.Params.IgnoreTexAlpha {
					ta = 1
				}
				r, g, bl, a = shadeCombine(surf.Params.Shade, r, g, bl, a, tr, tg, tb, ta)
			}

			if surf.Params.OffsetColor {
				or, og, ob, _ := interpColor(v0.OffsetColor, v1.OffsetColor, v2.OffsetColor, w0, w1, w2)
				r = clampf(r+or, 0, 1)
				g = clampf(g+og, 0, 1)
				bl = clampf(bl+ob, 0, 1)
			}

			if surf.Params.AlphaTest && a < alphaRef {
				continue
			}

			bufIdx := pixelIndex * 4
			if surf.Params.SrcBlend != BLEND_NONE || surf.Params.DstBlend != BLEND_NONE {
				const inv255 = float32(1.0 / 255.0)
				dr := float32(b.colorBuffer[bufIdx]) * inv255
				dg := float32(b.colorBuffer[bufIdx+1]) * inv255
				db := float32(b.colorBuffer[bufIdx+2]) * inv255
				da := float32(b.colorBuffer[bufIdx+3]) * inv255

				sf := blendFactor(surf.Params.SrcBlend, r, g, bl, a, dr, dg, db, da)
				df := blendFactor(surf.Params.DstBlend, r, g, bl, a, dr, dg, db, da)
				r = clampf(r*sf[0]+dr*df[0], 0, 1)
				g = clampf(g*sf[1]+dg*df[1], 0, 1)
				bl = clampf(bl*sf[2]+db*df[2], 0, 1)
				a = clampf(a*sf[3]+da*df[3], 0, 1)
			}

			b.colorBuffer[bufIdx] = uint8(r * 255)
			b.colorBuffer[bufIdx+1] = uint8(g * 255)
			b.colorBuffer[bufIdx+2] = uint8(bl * 255)
			b.colorBuffer[bufIdx+3] = uint8(a * 255)

			if surf.Params.DepthWrite {
				b.depthBuffer[pixelIndex] = z
			}
		}
	}
}

func depthCompare(fn DepthFunc, newZ, oldZ float32) bool {
	switch fn {
	case DEPTH_NEVER:
		return false
	case DEPTH_LESS:
		return newZ < oldZ
	case DEPTH_EQUAL:
		return newZ == oldZ
	case DEPTH_LEQUAL:
		return newZ <= oldZ
	case DEPTH_GREATER:
		return newZ > oldZ
	case DEPTH_NEQUAL:
		return newZ != oldZ
	case DEPTH_GEQUAL:
		return newZ >= oldZ
	default:
		return true
	}
}

// shadeCombine applies the PVR texture shading instruction
func shadeCombine(mode ShadeMode, r, g, b, a, tr, tg, tb, ta float32) (float32, float32, float32, float32) {
	switch mode {
	case SHADE_DECAL:
		return tr, tg, tb, ta
	case SHADE_MODULATE:
		return r * tr, g * tg, b * tb, ta
	case SHADE_DECAL_ALPHA:
		return tr*ta + r*(1-ta), tg*ta + g*(1-ta), tb*ta + b*(1-ta), a
	default: // SHADE_MODULATE_ALPHA
		return r * tr, g * tg, b * tb, a * ta
	}
}

// blendFactor returns per-channel blend factors for one BlendFunc
func blendFactor(fn BlendFunc, sr, sg, sb, sa, dr, dg, db, da float32) [4]float32 {
	switch fn {
	case BLEND_ZERO:
		return [4]float32{0, 0, 0, 0}
	case BLEND_ONE:
		return [4]float32{1, 1, 1, 1}
	case BLEND_SRC_COLOR:
		return [4]float32{sr, sg, sb, sa}
	case BLEND_ONE_MINUS_SRC_COLOR:
		return [4]float32{1 - sr, 1 - sg, 1 - sb, 1 - sa}
	case BLEND_SRC_ALPHA:
		return [4]float32{sa, sa, sa, sa}
	case BLEND_ONE_MINUS_SRC_ALPHA:
		return [4]float32{1 - sa, 1 - sa, 1 - sa, 1 - sa}
	case BLEND_DST_ALPHA:
		return [4]float32{da, da, da, da}
	case BLEND_ONE_MINUS_DST_ALPHA:
		return [4]float32{1 - da, 1 - da, 1 - da, 1 - da}
	case BLEND_DST_COLOR:
		return [4]float32{dr, dg, db, da}
	case BLEND_ONE_MINUS_DST_COLOR:
		return [4]float32{1 - dr, 1 - dg, 1 - db, 1 - da}
	default:
		return [4]float32{0, 0, 0, 0}
	}
}

func interpColor(c0, c1, c2 uint32, w0, w1, w2 float32) (r, g, b, a float32) {
	const inv255 = float32(1.0 / 255.0)
	r = (w0*float32(uint8(c0>>16)) + w1*float32(uint8(c1>>16)) + w2*float32(uint8(c2>>16))) * inv255
	g = (w0*float32(uint8(c0>>8)) + w1*float32(uint8(c1>>8)) + w2*float32(uint8(c2>>8))) * inv255
	b = (w0*float32(uint8(c0)) + w1*float32(uint8(c1)) + w2*float32(uint8(c2))) * inv255
	a = (w0*float32(uint8(c0>>24)) + w1*float32(uint8(c1>>24)) + w2*float32(uint8(c2>>24))) * inv255
	return
}

func (t *softwareTexture) wrap(coord float32, mode WrapMode) float32 {
	switch mode {
	case WRAP_CLAMP_TO_EDGE:
		return clampf(coord, 0, 1)
	case WRAP_MIRRORED_REPEAT:
		f := coord * 0.5
		f = f - float32(math.Floor(float64(f)))
		f *= 2
		if f > 1 {
			f = 2 - f
		}
		return f
	default:
		f := coord - float32(math.Floor(float64(coord)))
		if f < 0 {
			f += 1
		}
		return f
	}
}

func (t *softwareTexture) texelAt(x, y int) (r, g, b, a float32) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	const inv255 = float32(1.0 / 255.0)
	idx := (y*t.width + x) * 4
	return float32(t.pixels[idx]) * inv255, float32(t.pixels[idx+1]) * inv255,
		float32(t.pixels[idx+2]) * inv255, float32(t.pixels[idx+3]) * inv255
}

func (t *softwareTexture) sample(u, v float32) (r, g, b, a float32) {
	if t.width == 0 || t.height == 0 {
		return 1, 1, 1, 1
	}
	u = t.wrap(u, t.wrapU)
	v = t.wrap(v, t.wrapV)

	if t.filter == FILTER_NEAREST {
		return t.texelAt(int(u*float32(t.width)), int(v*float32(t.height)))
	}

	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	dx := fx - float32(x0)
	dy := fy - float32(y0)

	r00, g00, b00, a00 := t.texelAt(x0, y0)
	r10, g10, b10, a10 := t.texelAt(x0+1, y0)
	r01, g01, b01, a01 := t.texelAt(x0, y0+1)
	r11, g11, b11, a11 := t.texelAt(x0+1, y0+1)

	lerp := func(p00, p10, p01, p11 float32) float32 {
		top := p00 + (p10-p00)*dx
		bot := p01 + (p11-p01)*dx
		return top + (bot-top)*dy
	}
	return lerp(r00, r10, r01, r11), lerp(g00, g10, g01, g11),
		lerp(b00, b10, b01, b11), lerp(a00, a10, a01, a11)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3f(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3f(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
