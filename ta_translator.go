// ta_translator.go - TA Display List to Draw Context Translation

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
ta_translator.go - Tile Accelerator Display List Translation

This module converts a captured TA parameter stream into a renderer-ready
draw context. It walks the tagged variable-length command stream, tracks
the current list and vertex format, decodes the nine vertex encodings and
the sprite/background special cases, and batches geometry into surfaces.

Pipeline per conversion:
1. Synthesize the background quad from the ISP_BACKGND_T geometry.
2. Parse the parameter stream, reserving surfaces and vertices.
3. Back-to-front sort of translucent and punch-through triangles.
4. Strip expansion to CCW indexed triangles with adjacent-surface merging.

Vertices are written into the arena at the current surface's cursor and
only claimed when the surface commits, so a discarded sprite leaves no
trace. Translucent and punch-through strips are split into per-triangle
surfaces at commit time so the depth sort stays well-defined; the split
shares vertex storage between adjacent triangles.

The translator is single-threaded: one Translator owns one conversion at a
time, including the texture decode scratch.
*/

package main

import (
	"fmt"
	"math"
)

// Translator converts captured TA contexts. One instance owns its texture
// decode scratch and must not run two conversions concurrently.
type Translator struct {
	backend RenderBackend
	cache   TextureCache
	decode  TexDecodeFunc
	scratch []byte

	// Per-conversion state
	ctx      *TAContext
	rc       *TRContext
	listType int
	vertType int

	// Set when the previous vertex ended a strip; the next vertex then
	// continues on a fresh surface cloned from the current one
	lastEOS bool

	// Face colors latched by intensity-mode global parameters (r,g,b,a)
	faceColor       [4]uint8
	faceOffsetColor [4]uint8

	// Base colors latched by the sprite global parameter, already packed
	spriteColor       uint32
	spriteOffsetColor uint32
}

// NewTranslator creates a translator bound to a render backend and a
// texture cache. A nil decoder selects the built-in PVR texture decoder.
func NewTranslator(backend RenderBackend, cache TextureCache, decode TexDecodeFunc) *Translator {
	if decode == nil {
		decode = pvrTexDecode
	}
	return &Translator{
		backend: backend,
		cache:   cache,
		decode:  decode,
		scratch: make([]byte, PVR_TEX_SCRATCH_SIZE),
	}
}

// ConvertContext translates ctx into rc. rc is reset first; on return it
// holds the sorted, indexed draw context for the frame.
func (t *Translator) ConvertContext(ctx *TAContext, rc *TRContext) {
	TAInitTables()

	rc.Reset()
	t.ctx = ctx
	t.rc = rc
	t.listType = TA_LIST_NONE
	t.vertType = TA_VERT_NONE
	t.lastEOS = false

	t.parseBackground()
	t.parseParams()

	if ctx.Autosort {
		t.sortRenderList(TA_LIST_TRANSLUCENT)
		t.sortRenderList(TA_LIST_PUNCH_THROUGH)
	}
	for list := 0; list < TA_NUM_LISTS; list++ {
		t.generateIndices(list)
	}

	t.ctx = nil
	t.rc = nil
}

// =============================================================================
// Color and coordinate decoding
// =============================================================================

func le32(b []byte, off int) uint32 {
	_ = b[off+3]
	return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
}

func lef32(b []byte, off int) float32 {
	return math.Float32frombits(le32(b, off))
}

// ftou8 converts a float color channel to an 8-bit channel, saturating.
// Converting NaN to int32 gives an implementation-dependent value (MinInt32
// on amd64, zero on arm64); on those platforms the clamps map it to zero.
func ftou8(x float32) uint8 {
	v := int32(x * 255.0)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// fmulu8 multiplies two 8-bit channels
func fmulu8(a, b uint8) uint8 {
	return uint8(uint32(a) * uint32(b) / 255)
}

func packColor(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// packIntensity modulates a latched face color by a vertex intensity.
// Alpha is carried through unmodulated.
func packIntensity(c *[4]uint8, intensity float32) uint32 {
	i := ftou8(intensity)
	return packColor(fmulu8(c[0], i), fmulu8(c[1], i), fmulu8(c[2], i), c[3])
}

// uv16 reinterprets the two 16-bit UV fields of word w as floats. The
// texel U coordinate lives in the high half of the word and V in the low
// half, so the first 16-bit field read from memory is V.
func uv16(w uint32) (u, v float32) {
	u = math.Float32frombits(w & 0xffff0000)
	v = math.Float32frombits(w << 16)
	return
}

// =============================================================================
// Arena management
// =============================================================================

func (t *Translator) curSurf() *Surface {
	return &t.rc.Surfs[t.rc.NumSurfs-1]
}

// reserveSurf claims the next surface in the arena. When copyPrev is set
// the new surface inherits the previous surface's render state, which is
// how a strip continues past an end-of-strip vertex without a fresh
// global parameter.
func (t *Translator) reserveSurf(copyPrev bool) *Surface {
	rc := t.rc
	if rc.NumSurfs >= len(rc.Surfs) {
		panic(fmt.Sprintf("ta: surface arena overflow (%d)", rc.NumSurfs))
	}
	surf := &rc.Surfs[rc.NumSurfs]
	if copyPrev {
		surf.Params = rc.Surfs[rc.NumSurfs-1].Params
	} else {
		surf.Params = SurfaceParams{}
	}
	surf.FirstVert = rc.NumVerts
	surf.NumVerts = 0
	surf.StripOffset = 0
	rc.NumSurfs++
	return surf
}

// appendVert stages a vertex at the current surface's cursor. The arena
// counter only advances when the surface commits, so uncommitted vertices
// are simply abandoned.
func (t *Translator) appendVert() *Vertex {
	rc := t.rc
	surf := t.curSurf()
	slot := rc.NumVerts + surf.NumVerts
	if slot >= len(rc.Verts) {
		panic(fmt.Sprintf("ta: vertex arena overflow (%d)", slot))
	}
	v := &rc.Verts[slot]
	*v = Vertex{}
	surf.NumVerts++
	return v
}

func (t *Translator) appendToList(list *DisplayList, surfIdx int) {
	if list.NumSurfs >= len(list.Surfs) {
		panic(fmt.Sprintf("ta: display list overflow (%d)", list.NumSurfs))
	}
	list.Surfs[list.NumSurfs] = surfIdx
	list.NumSurfs++
}

// commitSurf commits the current surface to the current list. Opaque
// strips commit whole. Translucent and punch-through strips are split into
// one surface per triangle so the sort can order them individually: each
// triangle surface claims one vertex of advancement and the final two
// shared vertices are claimed at the end.
func (t *Translator) commitSurf() {
	rc := t.rc
	if t.listType < 0 || t.listType >= TA_NUM_LISTS {
		panic(fmt.Sprintf("ta: commit with invalid list type %d", t.listType))
	}
	list := &rc.Lists[t.listType]
	list.NumOrigSurfs++

	surf := t.curSurf()
	surfIdx := rc.NumSurfs - 1
	numVerts := surf.NumVerts

	if t.listType == TA_LIST_TRANSLUCENT || t.listType == TA_LIST_PUNCH_THROUGH {
		for i := 0; i < numVerts-2; i++ {
			s := surf
			idx := surfIdx
			if i > 0 {
				s = t.reserveSurf(true)
				idx = rc.NumSurfs - 1
			}
			s.FirstVert = rc.NumVerts
			s.NumVerts = 3
			s.StripOffset = i
			t.appendToList(list, idx)
			rc.NumVerts++
		}
		rc.NumVerts += 2
		return
	}

	t.appendToList(list, surfIdx)
	rc.NumVerts += numVerts
}

// =============================================================================
// Parameter stream parsing
// =============================================================================

func (t *Translator) parseParams() {
	data := t.ctx.Params
	off := 0
	for off+4 <= len(data) {
		pcw := PCW(le32(data, off))

		if taListTypeValid(pcw, t.listType) {
			t.listType = pcw.ListType()
		}

		switch pcw.ParaType() {
		case TA_PARAM_END_OF_LIST:
			t.lastEOS = false
			t.listType = TA_LIST_NONE
			t.vertType = TA_VERT_NONE
		case TA_PARAM_USER_TILE_CLIP:
			// Tile clipping does not affect translation
		case TA_PARAM_OBJ_LIST_SET:
			panic("ta: OBJ_LIST_SET is not supported")
		case TA_PARAM_POLY_OR_VOL, TA_PARAM_SPRITE:
			t.parsePolyParam(data[off:])
		case TA_PARAM_VERTEX:
			t.parseVertexParam(data[off:])
		default:
			panic(fmt.Sprintf("ta: unsupported parameter type %d", pcw.ParaType()))
		}

		t.traceParam(off)
		off += taParamSize(pcw, t.vertType)
	}
}

func (t *Translator) traceParam(off int) {
	rc := t.rc
	if rc.NumParams >= len(rc.Params) {
		panic(fmt.Sprintf("ta: parameter trace overflow (%d)", rc.NumParams))
	}
	rc.Params[rc.NumParams] = ParamTrace{
		Offset:   off,
		ListType: t.listType,
		VertType: t.vertType,
		LastSurf: rc.NumSurfs - 1,
		LastVert: rc.NumVerts - 1,
	}
	rc.NumParams++
}

// parsePolyParam handles a global parameter: latch face/sprite colors,
// then reserve a surface carrying the translated render state.
func (t *Translator) parsePolyParam(data []byte) {
	pcw := PCW(le32(data, 0))
	polyType := taPolyType(pcw)
	t.vertType = taVertType(pcw)
	t.lastEOS = false

	switch polyType {
	case TA_POLY_PACKED, TA_POLY_VOL_PACKED:
		// Colors arrive per vertex
	case TA_POLY_INTENSITY, TA_POLY_VOL_INTENSITY:
		t.faceColor[0] = ftou8(lef32(data, 20))
		t.faceColor[1] = ftou8(lef32(data, 24))
		t.faceColor[2] = ftou8(lef32(data, 28))
		t.faceColor[3] = ftou8(lef32(data, 16))
	case TA_POLY_INTENSITY_OFFSET:
		t.faceColor[0] = ftou8(lef32(data, 36))
		t.faceColor[1] = ftou8(lef32(data, 40))
		t.faceColor[2] = ftou8(lef32(data, 44))
		t.faceColor[3] = ftou8(lef32(data, 32))
		t.faceOffsetColor[0] = ftou8(lef32(data, 52))
		t.faceOffsetColor[1] = ftou8(lef32(data, 56))
		t.faceOffsetColor[2] = ftou8(lef32(data, 60))
		t.faceOffsetColor[3] = ftou8(lef32(data, 48))
	case TA_POLY_SPRITE:
		t.spriteColor = le32(data, 16)
		t.spriteOffsetColor = le32(data, 20)
	case TA_POLY_MODVOL:
		// Modifier volumes are detected and skipped; no surface
		return
	default:
		panic(fmt.Sprintf("ta: unsupported poly type %d", polyType))
	}

	isp := ISPWord(le32(data, 4))
	tsp := TSPWord(le32(data, 8))
	tcw := TCWWord(le32(data, 12))

	surf := t.reserveSurf(false)
	p := &surf.Params
	p.DepthWrite = !isp.ZWriteDisable()
	p.DepthFunc = translateDepthFunc(isp.DepthCompareMode())
	p.Cull = translateCull(isp.CullingMode())
	p.SrcBlend = translateSrcBlendFunc(tsp.SrcAlphaInstr())
	p.DstBlend = translateDstBlendFunc(tsp.DstAlphaInstr())
	p.Shade = translateShadeMode(tsp.TextureShadingInstr())
	p.IgnoreAlpha = !tsp.UseAlpha()
	p.IgnoreTexAlpha = tsp.IgnoreTexAlpha()
	p.OffsetColor = pcw.Offset()
	p.AlphaTest = t.listType == TA_LIST_PUNCH_THROUGH
	p.AlphaRef = t.ctx.AlphaRef

	// List-level overrides
	if t.listType != TA_LIST_TRANSLUCENT && t.listType != TA_LIST_TRANSLUCENT_MODVOL {
		p.SrcBlend = BLEND_NONE
		p.DstBlend = BLEND_NONE
	} else if t.ctx.Autosort {
		// Sorted back-to-front; ties must still draw
		p.DepthFunc = DEPTH_LEQUAL
	}
	if t.listType == TA_LIST_PUNCH_THROUGH {
		p.DepthFunc = DEPTH_GEQUAL
	}

	if pcw.Texture() {
		p.Texture = t.convertTexture(tsp, tcw)
	}
}

// parseVertexParam handles one vertex parameter in the format selected by
// the most recent global parameter
func (t *Translator) parseVertexParam(data []byte) {
	if t.vertType == TA_VERT_MODVOL {
		return
	}

	pcw := PCW(le32(data, 0))
	if t.lastEOS {
		t.reserveSurf(true)
		t.lastEOS = false
	}

	switch t.vertType {
	case TA_VERT_SPRITE, TA_VERT_TEX_SPRITE:
		t.parseSpriteVert(pcw, data)
		return
	case TA_VERT_PACKED:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.Color = le32(data, 24)
	case TA_VERT_FLOAT:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.Color = packColor(
			ftou8(lef32(data, 20)), ftou8(lef32(data, 24)),
			ftou8(lef32(data, 28)), ftou8(lef32(data, 16)))
	case TA_VERT_INTENSITY:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.Color = packIntensity(&t.faceColor, lef32(data, 24))
	case TA_VERT_TEX_PACKED:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0] = lef32(data, 16)
		v.UV[1] = lef32(data, 20)
		v.Color = le32(data, 24)
		v.OffsetColor = le32(data, 28)
	case TA_VERT_TEX_PACKED_UV16:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0], v.UV[1] = uv16(le32(data, 16))
		v.Color = le32(data, 24)
		v.OffsetColor = le32(data, 28)
	case TA_VERT_TEX_FLOAT:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0] = lef32(data, 16)
		v.UV[1] = lef32(data, 20)
		v.Color = packColor(
			ftou8(lef32(data, 36)), ftou8(lef32(data, 40)),
			ftou8(lef32(data, 44)), ftou8(lef32(data, 32)))
		v.OffsetColor = packColor(
			ftou8(lef32(data, 52)), ftou8(lef32(data, 56)),
			ftou8(lef32(data, 60)), ftou8(lef32(data, 48)))
	case TA_VERT_TEX_FLOAT_UV16:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0], v.UV[1] = uv16(le32(data, 16))
		v.Color = packColor(
			ftou8(lef32(data, 36)), ftou8(lef32(data, 40)),
			ftou8(lef32(data, 44)), ftou8(lef32(data, 32)))
		v.OffsetColor = packColor(
			ftou8(lef32(data, 52)), ftou8(lef32(data, 56)),
			ftou8(lef32(data, 60)), ftou8(lef32(data, 48)))
	case TA_VERT_TEX_INTENSITY:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0] = lef32(data, 16)
		v.UV[1] = lef32(data, 20)
		v.Color = packIntensity(&t.faceColor, lef32(data, 24))
		v.OffsetColor = packIntensity(&t.faceOffsetColor, lef32(data, 28))
	case TA_VERT_TEX_INTENSITY_UV16:
		v := t.appendVert()
		v.XYZ[0] = lef32(data, 4)
		v.XYZ[1] = lef32(data, 8)
		v.XYZ[2] = lef32(data, 12)
		v.UV[0], v.UV[1] = uv16(le32(data, 16))
		v.Color = packIntensity(&t.faceColor, lef32(data, 24))
		v.OffsetColor = packIntensity(&t.faceOffsetColor, lef32(data, 28))
	default:
		panic(fmt.Sprintf("ta: unsupported vertex type %d", t.vertType))
	}

	if pcw.EndOfStrip() {
		t.commitSurf()
		t.lastEOS = true
	}
}

// parseSpriteVert handles a sprite parameter carrying a whole quad. The
// input visits the corners a,b,c,d clockwise; d has only X and Y, so its Z
// is solved from the plane of a,b,c and its UV completes the
// parallelogram. The quad is emitted as the strip a,b,d,c.
func (t *Translator) parseSpriteVert(pcw PCW, data []byte) {
	if !pcw.EndOfStrip() {
		panic("ta: sprite quad without end of strip")
	}

	var ax, ay, az = lef32(data, 4), lef32(data, 8), lef32(data, 12)
	var bx, by, bz = lef32(data, 16), lef32(data, 20), lef32(data, 24)
	var cx, cy, cz = lef32(data, 28), lef32(data, 32), lef32(data, 36)
	var dx, dy = lef32(data, 40), lef32(data, 44)

	// Plane of a,b,c
	abx, aby, abz := ax-bx, ay-by, az-bz
	cbx, cby, cbz := cx-bx, cy-by, cz-bz
	nx := aby*cbz - abz*cby
	ny := abz*cbx - abx*cbz
	nz := abx*cby - aby*cbx
	length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if length == 0 {
		// Degenerate quad; drop it without committing
		return
	}
	nx /= length
	ny /= length
	nz /= length
	if nz == 0 {
		// Edge-on; Z for d is unsolvable
		return
	}
	dPlane := nx*bx + ny*by + nz*bz
	dz := (dPlane - nx*dx - ny*dy) / nz

	var au, av, bu, bv, cu, cv float32
	if t.vertType == TA_VERT_TEX_SPRITE {
		au, av = uv16(le32(data, 52))
		bu, bv = uv16(le32(data, 56))
		cu, cv = uv16(le32(data, 60))
	}

	va := t.appendVert()
	va.XYZ = [3]float32{ax, ay, az}
	va.UV = [2]float32{au, av}
	va.Color = t.spriteColor
	va.OffsetColor = t.spriteOffsetColor

	vb := t.appendVert()
	vb.XYZ = [3]float32{bx, by, bz}
	vb.UV = [2]float32{bu, bv}
	vb.Color = t.spriteColor
	vb.OffsetColor = t.spriteOffsetColor

	vd := t.appendVert()
	vd.XYZ = [3]float32{dx, dy, dz}
	vd.UV = [2]float32{
		bu + (au - bu) + (cu - bu),
		bv + (av - bv) + (cv - bv),
	}
	vd.Color = t.spriteColor
	vd.OffsetColor = t.spriteOffsetColor

	vc := t.appendVert()
	vc.XYZ = [3]float32{cx, cy, cz}
	vc.UV = [2]float32{cu, cv}
	vc.Color = t.spriteColor
	vc.OffsetColor = t.spriteOffsetColor

	t.commitSurf()
	t.lastEOS = true
}

// =============================================================================
// Background quad
// =============================================================================

// parseBackground synthesizes the framebuffer-clearing quad from the
// ISP_BACKGND_T geometry. Three vertices are parsed; the fourth is the
// parallelogram completion, taking its colors from the first.
func (t *Translator) parseBackground() {
	ctx := t.ctx
	isp := ctx.BgISP
	tsp := ctx.BgTSP
	tcw := ctx.BgTCW

	surf := t.reserveSurf(false)
	p := &surf.Params
	p.DepthWrite = !isp.ZWriteDisable()
	p.DepthFunc = translateDepthFunc(isp.DepthCompareMode())
	p.Cull = translateCull(isp.CullingMode())
	p.SrcBlend = BLEND_NONE
	p.DstBlend = BLEND_NONE
	p.Shade = translateShadeMode(tsp.TextureShadingInstr())
	p.IgnoreAlpha = !tsp.UseAlpha()
	p.IgnoreTexAlpha = tsp.IgnoreTexAlpha()
	p.OffsetColor = isp.Offset()
	if isp.Texture() {
		p.Texture = t.convertTexture(tsp, tcw)
	}

	data := ctx.BgVertices
	off := 0
	for i := 0; i < 3; i++ {
		v := t.appendVert()
		v.XYZ[0] = lef32(data, off)
		v.XYZ[1] = lef32(data, off+4)
		v.XYZ[2] = lef32(data, off+8)
		off += 12
		if isp.Texture() {
			v.UV[0] = lef32(data, off)
			v.UV[1] = lef32(data, off+4)
			off += 8
		}
		v.Color = le32(data, off)
		off += 4
		if isp.Offset() {
			v.OffsetColor = le32(data, off)
			off += 4
		}
	}

	// TODO: honor ISP_BACKGND_D and overwrite vertex depth with BgDepth
	// when the depth register is in use with texturing

	rc := t.rc
	va := &rc.Verts[rc.NumVerts+0]
	vb := &rc.Verts[rc.NumVerts+1]
	vc := &rc.Verts[rc.NumVerts+2]
	vd := t.appendVert()
	for c := 0; c < 3; c++ {
		vd.XYZ[c] = vb.XYZ[c] + (vb.XYZ[c] - va.XYZ[c]) + (vc.XYZ[c] - va.XYZ[c])
	}
	for c := 0; c < 2; c++ {
		vd.UV[c] = vb.UV[c] + (vb.UV[c] - va.UV[c]) + (vc.UV[c] - va.UV[c])
	}
	vd.Color = va.Color
	vd.OffsetColor = va.OffsetColor

	t.listType = TA_LIST_OPAQUE
	t.commitSurf()
	t.listType = TA_LIST_NONE
	t.lastEOS = false
}
