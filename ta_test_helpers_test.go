// ta_test_helpers_test.go - Shared builders for TA translation tests

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

package main

import (
	"math"
)

// paramBuilder assembles raw TA parameter streams for tests
type paramBuilder struct {
	buf []byte
}

func (b *paramBuilder) word(w uint32) *paramBuilder {
	b.buf = append(b.buf, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	return b
}

func (b *paramBuilder) f32(v float32) *paramBuilder {
	return b.word(math.Float32bits(v))
}

func (b *paramBuilder) pad(words int) *paramBuilder {
	for i := 0; i < words; i++ {
		b.word(0)
	}
	return b
}

func (b *paramBuilder) bytes() []byte {
	return b.buf
}

// PCW assembly

func testPCW(paraType, listType int) uint32 {
	return uint32(paraType)<<29 | uint32(listType)<<24
}

const (
	pcwEOS     = 1 << 28
	pcwUV16    = 1 << 0
	pcwOffset  = 1 << 2
	pcwTexture = 1 << 3
	pcwColType = 4 // shift
)

// ISP assembly: depth compare in 31:29, cull in 28:27, z write disable 26
func testISP(depthCode, cullCode uint32, zWriteDisable bool) uint32 {
	w := depthCode<<29 | cullCode<<27
	if zWriteDisable {
		w |= 1 << 26
	}
	return w
}

// TSP assembly: src blend 31:29, dst blend 28:26, use alpha 20
func testTSP(srcCode, dstCode uint32, useAlpha bool) uint32 {
	w := srcCode<<29 | dstCode<<26
	if useAlpha {
		w |= 1 << 20
	}
	return w
}

// appendPolyPacked emits a packed-color global parameter (poly type 0,
// vertex type 0)
func appendPolyPacked(b *paramBuilder, listType int, isp, tsp, tcw uint32) {
	b.word(testPCW(TA_PARAM_POLY_OR_VOL, listType))
	b.word(isp)
	b.word(tsp)
	b.word(tcw)
	b.pad(4)
}

// appendPolyPackedCull is appendPolyPacked with an explicit cull mode
func appendPolyPackedCull(b *paramBuilder, listType int, cullCode uint32) {
	appendPolyPacked(b, listType, testISP(4, cullCode, false), testTSP(1, 0, true), 0)
}

// appendPolyIntensity emits an intensity-mode global parameter carrying a
// face color (poly type 1, vertex type 2)
func appendPolyIntensity(b *paramBuilder, listType int, isp, tsp uint32, faceA, faceR, faceG, faceB float32) {
	b.word(testPCW(TA_PARAM_POLY_OR_VOL, listType) | 2<<pcwColType)
	b.word(isp)
	b.word(tsp)
	b.word(0)
	b.f32(faceA).f32(faceR).f32(faceG).f32(faceB)
}

// appendVertPacked emits a vertex type 0 parameter
func appendVertPacked(b *paramBuilder, x, y, z float32, color uint32, eos bool) {
	pcw := testPCW(TA_PARAM_VERTEX, 0)
	if eos {
		pcw |= pcwEOS
	}
	b.word(pcw)
	b.f32(x).f32(y).f32(z)
	b.pad(2)
	b.word(color)
	b.pad(1)
}

// appendVertIntensity emits a vertex type 2 parameter
func appendVertIntensity(b *paramBuilder, x, y, z, intensity float32, eos bool) {
	pcw := testPCW(TA_PARAM_VERTEX, 0)
	if eos {
		pcw |= pcwEOS
	}
	b.word(pcw)
	b.f32(x).f32(y).f32(z)
	b.pad(2)
	b.f32(intensity)
	b.pad(1)
}

// appendEndOfList terminates the current list
func appendEndOfList(b *paramBuilder) {
	b.word(testPCW(TA_PARAM_END_OF_LIST, 0))
	b.pad(7)
}

// uv16Word packs two float UVs into a 16-bit UV word: U in the high half,
// V in the low half
func uv16Word(u, v float32) uint32 {
	return (math.Float32bits(u) & 0xffff0000) | (math.Float32bits(v) >> 16)
}

// appendSprite emits a sprite global parameter followed by one quad.
// Corners are visited a,b,c clockwise with d supplying only X and Y.
func appendSprite(b *paramBuilder, listType int, textured bool, baseColor uint32,
	a, bb, c [3]float32, dx, dy float32, auv, buv, cuv [2]float32) {
	pcw := testPCW(TA_PARAM_SPRITE, listType)
	if textured {
		pcw |= pcwTexture
	}
	b.word(pcw)
	b.word(testISP(4, 0, false))
	b.word(testTSP(1, 0, true))
	b.word(0)
	b.word(baseColor)
	b.word(0)
	b.pad(2)

	vpcw := testPCW(TA_PARAM_VERTEX, 0) | pcwEOS
	b.word(vpcw)
	b.f32(a[0]).f32(a[1]).f32(a[2])
	b.f32(bb[0]).f32(bb[1]).f32(bb[2])
	b.f32(c[0]).f32(c[1]).f32(c[2])
	b.f32(dx).f32(dy)
	b.pad(1)
	b.word(uv16Word(auv[0], auv[1]))
	b.word(uv16Word(buv[0], buv[1]))
	b.word(uv16Word(cuv[0], cuv[1]))
}

// testBgVertices builds an untextured background triangle at depth z
func testBgVertices(z float32) []byte {
	var b paramBuilder
	// x, y, z, packed color per vertex
	b.f32(0).f32(0).f32(z).word(0xff101010)
	b.f32(640).f32(0).f32(z).word(0xff101010)
	b.f32(0).f32(480).f32(z).word(0xff101010)
	return b.bytes()
}

// testContext builds a minimal context around a parameter stream
func testContext(params []byte) *TAContext {
	return &TAContext{
		Params:      params,
		BgVertices:  testBgVertices(0.0001),
		BgISP:       ISPWord(testISP(7, 0, false)), // always
		BgTSP:       TSPWord(testTSP(1, 0, false)),
		AlphaRef:    0x80,
		VideoWidth:  640,
		VideoHeight: 480,
	}
}

// convertParams runs a conversion over params with a headless backend and
// returns the context
func convertParams(params []byte) (*TRContext, *HeadlessRenderBackend) {
	backend := NewHeadlessRenderBackend()
	translator := NewTranslator(backend, NewMapTextureCache(), nil)
	rc := NewTRContext()
	translator.ConvertContext(testContext(params), rc)
	return rc, backend
}

// Background contribution to every conversion
const (
	bgSurfs   = 1
	bgVerts   = 4
	bgIndices = 6
)
