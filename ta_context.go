// ta_context.go - Tile Accelerator Conversion Contexts

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
ta_context.go - Captured TA Context and Renderer-Ready Draw Context

TAContext is an immutable snapshot of one frame of TA state: the raw
parameter stream, the background geometry programmed through ISP_BACKGND_T,
and the handful of registers the translator consults (palette format,
texture stride, punch-through alpha reference, autosort).

TRContext is the renderer-ready result: fixed-capacity arenas of surfaces,
vertices and triangle indices, plus the per-list draw orderings. Arenas are
addressed by integer index; nothing in a TRContext points outside it. All
storage is reset at the start of each conversion and reused.
*/

package main

// TextureHandle identifies a backend texture. Zero means untextured.
type TextureHandle uint32

// TAContext is the captured input state for one frame
type TAContext struct {
	// Raw parameter stream as written to the TA polygon FIFO
	Params []byte

	// Background geometry referenced by ISP_BACKGND_T
	BgVertices []byte
	BgISP      ISPWord
	BgTSP      TSPWord
	BgTCW      TCWWord
	BgDepth    float32

	// PAL_RAM_CTRL palette entry format
	PaletteFmt uint32

	// TEXT_CONTROL stride, in units of 32 texels
	TextureStride uint32

	// PT_ALPHA_REF punch-through alpha reference
	AlphaRef uint8

	// FPU_PARAM_CFG region header autosort
	Autosort bool

	VideoWidth  int
	VideoHeight int
}

// SurfaceParams is the full render state of a drawable batch. Two surfaces
// are merge candidates iff their packed keys are bit-identical.
type SurfaceParams struct {
	DepthWrite     bool
	DepthFunc      DepthFunc
	Cull           CullFace
	SrcBlend       BlendFunc
	DstBlend       BlendFunc
	Shade          ShadeMode
	IgnoreAlpha    bool
	IgnoreTexAlpha bool
	OffsetColor    bool
	AlphaTest      bool
	AlphaRef       uint8
	Texture        TextureHandle
}

// Full packs the render state into a single integer for merge comparison
func (p *SurfaceParams) Full() uint64 {
	var k uint64
	if p.DepthWrite {
		k |= 1
	}
	k |= uint64(p.DepthFunc) << 1
	k |= uint64(p.Cull) << 5
	k |= uint64(p.SrcBlend) << 7
	k |= uint64(p.DstBlend) << 11
	k |= uint64(p.Shade) << 15
	if p.IgnoreAlpha {
		k |= 1 << 17
	}
	if p.IgnoreTexAlpha {
		k |= 1 << 18
	}
	if p.OffsetColor {
		k |= 1 << 19
	}
	if p.AlphaTest {
		k |= 1 << 20
	}
	k |= uint64(p.AlphaRef) << 21
	k |= uint64(p.Texture) << 29
	return k
}

// Surface is a drawable batch of vertices sharing render state.
//
// While parsing, FirstVert/NumVerts describe a range in TRContext.Verts.
// After index generation they are rebased to describe a range in
// TRContext.Indices, at which point NumVerts is always a multiple of 3.
type Surface struct {
	Params    SurfaceParams
	FirstVert int
	NumVerts  int

	// Position of this surface's first triangle within the original
	// strip, for winding parity on expansion
	StripOffset int
}

// Vertex is a translated TA vertex. Color and OffsetColor are packed ARGB
// words (byte order B,G,R,A in memory).
type Vertex struct {
	XYZ         [3]float32
	UV          [2]float32
	Color       uint32
	OffsetColor uint32
}

// DisplayList holds the draw order of one TA list as indices into the
// surface arena
type DisplayList struct {
	Surfs        []int
	NumSurfs     int
	NumOrigSurfs int
}

// ParamTrace is a per-command diagnostic record written in parse order
type ParamTrace struct {
	Offset   int
	ListType int
	VertType int
	LastSurf int
	LastVert int
}

// TRContext is the renderer-ready output of one conversion
type TRContext struct {
	Surfs    []Surface
	NumSurfs int

	Verts    []Vertex
	NumVerts int

	Indices    []int32
	NumIndices int

	Lists [TA_NUM_LISTS]DisplayList

	Params    []ParamTrace
	NumParams int

	// Sort working storage, sized once so sorting never allocates
	minZ        []float32
	sortScratch []int
}

// NewTRContext allocates a draw context at full capacity
func NewTRContext() *TRContext {
	rc := &TRContext{
		Surfs:       make([]Surface, TR_MAX_SURFS),
		Verts:       make([]Vertex, TR_MAX_VERTS),
		Indices:     make([]int32, TR_MAX_INDICES),
		Params:      make([]ParamTrace, TR_MAX_PARAMS),
		minZ:        make([]float32, TR_MAX_SURFS),
		sortScratch: make([]int, TR_MAX_SURFS),
	}
	for i := range rc.Lists {
		rc.Lists[i].Surfs = make([]int, TR_MAX_SURFS)
	}
	return rc
}

// Reset prepares the context for a new conversion. Arena contents are left
// in place; only the counters are cleared.
func (rc *TRContext) Reset() {
	rc.NumSurfs = 0
	rc.NumVerts = 0
	rc.NumIndices = 0
	rc.NumParams = 0
	for i := range rc.Lists {
		rc.Lists[i].NumSurfs = 0
		rc.Lists[i].NumOrigSurfs = 0
	}
}
