// render_backend_ebiten.go - Ebiten Display Backend

//go:build !headless

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
render_backend_ebiten.go - Ebiten Render Backend and Viewer

Presents a translated TA context in a window. Surfaces are submitted with
ebiten.Image.DrawTriangles: the translator's vertex arena maps directly to
ebiten vertices (screen-space XY, UV scaled to texel coordinates, packed
colors split to float channels) and the surface blend state maps to an
ebiten.Blend. Mirrored texture addressing has no ebiten equivalent and
falls back to repeat.

The viewer loop displays the composed frame; pressing C copies the
conversion trace to the system clipboard, Escape quits.
*/

package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

type ebitenTexture struct {
	img    *ebiten.Image
	filter FilterMode
	wrapU  WrapMode
	wrapV  WrapMode
}

// EbitenRenderBackend renders translated contexts into an offscreen image
type EbitenRenderBackend struct {
	width, height int
	target        *ebiten.Image
	white         *ebiten.Image

	nextHandle TextureHandle
	textures   map[TextureHandle]*ebitenTexture

	verts   []Vertex
	indices []int32
}

func NewEbitenRenderBackend() (*EbitenRenderBackend, error) {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &EbitenRenderBackend{
		white:    white,
		textures: make(map[TextureHandle]*ebitenTexture),
	}, nil
}

func (eb *EbitenRenderBackend) CreateTexture(format PixelFormat, filter FilterMode,
	wrapU, wrapV WrapMode, mipmaps bool, width, height int, data []byte) TextureHandle {
	img := ebiten.NewImage(width, height)
	pixels := make([]byte, len(data))
	copy(pixels, data)
	img.WritePixels(pixels)

	eb.nextHandle++
	eb.textures[eb.nextHandle] = &ebitenTexture{
		img:    img,
		filter: filter,
		wrapU:  wrapU,
		wrapV:  wrapV,
	}
	return eb.nextHandle
}

func (eb *EbitenRenderBackend) DestroyTexture(handle TextureHandle) {
	if tex, ok := eb.textures[handle]; ok {
		tex.img.Deallocate()
		delete(eb.textures, handle)
	}
}

func (eb *EbitenRenderBackend) BeginTASurfaces(videoWidth, videoHeight int,
	verts []Vertex, indices []int32) {
	if eb.target == nil || eb.width != videoWidth || eb.height != videoHeight {
		eb.width = videoWidth
		eb.height = videoHeight
		eb.target = ebiten.NewImage(videoWidth, videoHeight)
	}
	eb.target.Clear()
	eb.verts = verts
	eb.indices = indices
}

func (eb *EbitenRenderBackend) DrawTASurface(surf *Surface) {
	src := eb.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	texW, texH := float32(1), float32(1)
	var tex *ebitenTexture
	if t, ok := eb.textures[surf.Params.Texture]; ok {
		tex = t
		src = t.img
		w, h := t.img.Bounds().Dx(), t.img.Bounds().Dy()
		texW, texH = float32(w), float32(h)
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = translateEbitenBlend(surf.Params.SrcBlend, surf.Params.DstBlend)
	if tex != nil {
		if tex.filter == FILTER_BILINEAR {
			op.Filter = ebiten.FilterLinear
		}
		if tex.wrapU != WRAP_CLAMP_TO_EDGE || tex.wrapV != WRAP_CLAMP_TO_EDGE {
			op.Address = ebiten.AddressRepeat
		}
	}

	numTris := surf.NumVerts / 3
	ev := make([]ebiten.Vertex, 0, numTris*3)
	ei := make([]uint32, 0, numTris*3)
	for i := surf.FirstVert; i+3 <= surf.FirstVert+surf.NumVerts; i += 3 {
		for k := 0; k < 3; k++ {
			v := &eb.verts[eb.indices[i+k]]
			const inv255 = float32(1.0 / 255.0)
			ev = append(ev, ebiten.Vertex{
				DstX:   v.XYZ[0],
				DstY:   v.XYZ[1],
				SrcX:   v.UV[0] * texW,
				SrcY:   v.UV[1] * texH,
				ColorR: float32(uint8(v.Color>>16)) * inv255,
				ColorG: float32(uint8(v.Color>>8)) * inv255,
				ColorB: float32(uint8(v.Color)) * inv255,
				ColorA: vertexAlpha(surf, v.Color),
			})
			ei = append(ei, uint32(len(ei)))
		}
	}
	eb.target.DrawTriangles32(ev, ei, src, &op)
}

func vertexAlpha(surf *Surface, color uint32) float32 {
	if surf.Params.IgnoreAlpha {
		return 1
	}
	return float32(uint8(color>>24)) / 255.0
}

func (eb *EbitenRenderBackend) EndTASurfaces() {}

// translateEbitenBlend maps a surface's blend factors to an ebiten.Blend.
// BLEND_NONE/NONE is source-replace.
func translateEbitenBlend(src, dst BlendFunc) ebiten.Blend {
	if src == BLEND_NONE && dst == BLEND_NONE {
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
			BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	}
	s := ebitenBlendFactor(src)
	d := ebitenBlendFactor(dst)
	return ebiten.Blend{
		BlendFactorSourceRGB:        s,
		BlendFactorSourceAlpha:      s,
		BlendFactorDestinationRGB:   d,
		BlendFactorDestinationAlpha: d,
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}

func ebitenBlendFactor(fn BlendFunc) ebiten.BlendFactor {
	switch fn {
	case BLEND_ONE:
		return ebiten.BlendFactorOne
	case BLEND_SRC_COLOR:
		return ebiten.BlendFactorSourceColor
	case BLEND_ONE_MINUS_SRC_COLOR:
		return ebiten.BlendFactorOneMinusSourceColor
	case BLEND_SRC_ALPHA:
		return ebiten.BlendFactorSourceAlpha
	case BLEND_ONE_MINUS_SRC_ALPHA:
		return ebiten.BlendFactorOneMinusSourceAlpha
	case BLEND_DST_ALPHA:
		return ebiten.BlendFactorDestinationAlpha
	case BLEND_ONE_MINUS_DST_ALPHA:
		return ebiten.BlendFactorOneMinusDestinationAlpha
	case BLEND_DST_COLOR:
		return ebiten.BlendFactorDestinationColor
	case BLEND_ONE_MINUS_DST_COLOR:
		return ebiten.BlendFactorOneMinusDestinationColor
	default:
		return ebiten.BlendFactorZero
	}
}

// ContextViewer is the ebiten game loop presenting one converted frame
type ContextViewer struct {
	backend *EbitenRenderBackend
	rc      *TRContext

	clipboardOK bool
}

// RunEbitenViewer opens a window showing the rendered context
func RunEbitenViewer(backend *EbitenRenderBackend, rc *TRContext, videoWidth, videoHeight int) error {
	viewer := &ContextViewer{backend: backend, rc: rc}
	viewer.clipboardOK = clipboard.Init() == nil

	RenderContext(backend, rc, videoWidth, videoHeight)

	ebiten.SetWindowSize(videoWidth*2, videoHeight*2)
	ebiten.SetWindowTitle("DreamEngine TA Viewer (c) 2024 - 2026 Zayn Otley")
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(viewer)
}

func (cv *ContextViewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyC) && cv.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(cv.traceText()))
	}
	return nil
}

func (cv *ContextViewer) Draw(screen *ebiten.Image) {
	if cv.backend.target != nil {
		var op ebiten.DrawImageOptions
		screen.DrawImage(cv.backend.target, &op)
	}
}

func (cv *ContextViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cv.backend.width, cv.backend.height
}

func (cv *ContextViewer) traceText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "surfs=%d verts=%d indices=%d\n",
		cv.rc.NumSurfs, cv.rc.NumVerts, cv.rc.NumIndices)
	for i := 0; i < cv.rc.NumParams; i++ {
		p := &cv.rc.Params[i]
		fmt.Fprintf(&sb, "%06x list=%d vert=%d surf=%d vtx=%d\n",
			p.Offset, p.ListType, p.VertType, p.LastSurf, p.LastVert)
	}
	return sb.String()
}
