// pvr_bits_test.go - Test suite for PVR control word decoding

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

import "testing"

func TestPVR_PCWFields(t *testing.T) {
	pcw := PCW(uint32(TA_PARAM_VERTEX)<<29 | 1<<28 | uint32(TA_LIST_PUNCH_THROUGH)<<24 |
		1<<6 | 2<<4 | 1<<3 | 1<<2 | 1<<1 | 1<<0)

	if pcw.ParaType() != TA_PARAM_VERTEX {
		t.Errorf("Expected para type %d, got %d", TA_PARAM_VERTEX, pcw.ParaType())
	}
	if !pcw.EndOfStrip() {
		t.Error("Expected end of strip set")
	}
	if pcw.ListType() != TA_LIST_PUNCH_THROUGH {
		t.Errorf("Expected list %d, got %d", TA_LIST_PUNCH_THROUGH, pcw.ListType())
	}
	if !pcw.Volume() || pcw.ColType() != 2 || !pcw.Texture() || !pcw.Offset() ||
		!pcw.Gouraud() || !pcw.UV16Bit() {
		t.Error("Object control bits decoded incorrectly")
	}
}

func TestPVR_ISPFields(t *testing.T) {
	isp := ISPWord(6<<29 | 2<<27 | 1<<26 | 1<<25 | 1<<24)
	if isp.DepthCompareMode() != 6 {
		t.Errorf("Expected depth mode 6, got %d", isp.DepthCompareMode())
	}
	if isp.CullingMode() != 2 {
		t.Errorf("Expected cull mode 2, got %d", isp.CullingMode())
	}
	if !isp.ZWriteDisable() || !isp.Texture() || !isp.Offset() {
		t.Error("ISP flag bits decoded incorrectly")
	}
}

func TestPVR_TSPFields(t *testing.T) {
	tsp := TSPWord(4<<29 | 5<<26 | 1<<20 | 1<<19 | 1<<18 | 1<<16 |
		2<<13 | 3<<6 | 5<<3 | 2)

	if tsp.SrcAlphaInstr() != 4 || tsp.DstAlphaInstr() != 5 {
		t.Errorf("Expected blend instrs 4/5, got %d/%d", tsp.SrcAlphaInstr(), tsp.DstAlphaInstr())
	}
	if !tsp.UseAlpha() || !tsp.IgnoreTexAlpha() {
		t.Error("Alpha flags decoded incorrectly")
	}
	if !tsp.FlipU() || tsp.FlipV() || !tsp.ClampU() || tsp.ClampV() {
		t.Error("Wrap flags decoded incorrectly")
	}
	if tsp.FilterMode() != 2 {
		t.Errorf("Expected filter mode 2, got %d", tsp.FilterMode())
	}
	if tsp.TextureShadingInstr() != 3 {
		t.Errorf("Expected shading instr 3, got %d", tsp.TextureShadingInstr())
	}
	if tsp.TextureUSize() != 5 || tsp.TextureVSize() != 2 {
		t.Errorf("Expected sizes 5/2, got %d/%d", tsp.TextureUSize(), tsp.TextureVSize())
	}
}

func TestPVR_TCWFields(t *testing.T) {
	tcw := TCWWord(1<<31 | 1<<30 | 5<<27 | 1<<26 | 1<<25 | 0x15<<21 | 0x1234)
	if !tcw.MipMapped() || !tcw.VQCompressed() {
		t.Error("TCW flag bits decoded incorrectly")
	}
	if tcw.PixelFormat() != 5 {
		t.Errorf("Expected pixel format 5, got %d", tcw.PixelFormat())
	}
	if !tcw.ScanOrderLinear() || !tcw.StrideSelect() {
		t.Error("Scan order bits decoded incorrectly")
	}
	if !tcw.PalettedFormat() {
		t.Error("Expected paletted format")
	}
}

func TestPVR_TextureGeometry(t *testing.T) {
	tsp := TSPWord(3<<3 | 2) // 64x32
	if w := taTextureWidth(tsp, 0, 0); w != 64 {
		t.Errorf("Expected width 64, got %d", w)
	}
	if h := taTextureHeight(tsp); h != 32 {
		t.Errorf("Expected height 32, got %d", h)
	}

	// Strided linear texture takes its width from TEXT_CONTROL
	strided := TCWWord(1<<26 | 1<<25)
	if w := taTextureWidth(tsp, strided, 10); w != 320 {
		t.Errorf("Expected strided width 320, got %d", w)
	}
	if taTextureMipmaps(strided | 1<<31) {
		t.Error("Strided textures cannot be mipmapped")
	}
	if !taTextureMipmaps(TCWWord(1 << 31)) {
		t.Error("Expected mipmapped twiddled texture")
	}
}

func TestPVR_ListTypeValid(t *testing.T) {
	poly := PCW(testPCW(TA_PARAM_POLY_OR_VOL, TA_LIST_TRANSLUCENT))
	if !taListTypeValid(poly, TA_LIST_NONE) {
		t.Error("Expected a global parameter to open a list")
	}
	if taListTypeValid(poly, TA_LIST_OPAQUE) {
		t.Error("Expected the list type to latch while a list is open")
	}
	vert := PCW(testPCW(TA_PARAM_VERTEX, TA_LIST_TRANSLUCENT))
	if taListTypeValid(vert, TA_LIST_NONE) {
		t.Error("Expected vertex parameters not to open a list")
	}
}

func TestPVR_PolyTypeClassification(t *testing.T) {
	cases := []struct {
		name string
		pcw  PCW
		want int
	}{
		{"packed", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0)), TA_POLY_PACKED},
		{"float", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 1<<4), TA_POLY_PACKED},
		{"intensity", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 2<<4), TA_POLY_INTENSITY},
		{"intensity offset", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 2<<4 | pcwTexture | pcwOffset), TA_POLY_INTENSITY_OFFSET},
		{"sprite", PCW(testPCW(TA_PARAM_SPRITE, 0)), TA_POLY_SPRITE},
		{"modvol", PCW(testPCW(TA_PARAM_POLY_OR_VOL, TA_LIST_OPAQUE_MODVOL)), TA_POLY_MODVOL},
	}
	for _, tc := range cases {
		if got := taPolyType(tc.pcw); got != tc.want {
			t.Errorf("%s: expected poly type %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestPVR_VertTypeClassification(t *testing.T) {
	cases := []struct {
		name string
		pcw  PCW
		want int
	}{
		{"packed", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0)), TA_VERT_PACKED},
		{"tex packed", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | pcwTexture), TA_VERT_TEX_PACKED},
		{"tex packed uv16", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | pcwTexture | pcwUV16), TA_VERT_TEX_PACKED_UV16},
		{"float", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 1<<4), TA_VERT_FLOAT},
		{"tex float", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 1<<4 | pcwTexture), TA_VERT_TEX_FLOAT},
		{"intensity", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 2<<4), TA_VERT_INTENSITY},
		{"tex intensity uv16", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 2<<4 | pcwTexture | pcwUV16), TA_VERT_TEX_INTENSITY_UV16},
		{"sprite", PCW(testPCW(TA_PARAM_SPRITE, 0)), TA_VERT_SPRITE},
		{"tex sprite", PCW(testPCW(TA_PARAM_SPRITE, 0) | pcwTexture), TA_VERT_TEX_SPRITE},
		{"modvol", PCW(testPCW(TA_PARAM_POLY_OR_VOL, TA_LIST_TRANSLUCENT_MODVOL)), TA_VERT_MODVOL},
	}
	for _, tc := range cases {
		if got := taVertType(tc.pcw); got != tc.want {
			t.Errorf("%s: expected vert type %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestPVR_ParamSizes(t *testing.T) {
	TAInitTables()

	cases := []struct {
		name     string
		pcw      PCW
		vertType int
		want     int
	}{
		{"end of list", PCW(testPCW(TA_PARAM_END_OF_LIST, 0)), TA_VERT_NONE, 32},
		{"poly packed", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0)), TA_VERT_NONE, 32},
		{"poly intensity offset", PCW(testPCW(TA_PARAM_POLY_OR_VOL, 0) | 2<<4 | pcwTexture | pcwOffset), TA_VERT_NONE, 64},
		{"sprite global", PCW(testPCW(TA_PARAM_SPRITE, 0)), TA_VERT_NONE, 32},
		{"vertex packed", PCW(testPCW(TA_PARAM_VERTEX, 0)), TA_VERT_PACKED, 32},
		{"vertex tex float", PCW(testPCW(TA_PARAM_VERTEX, 0)), TA_VERT_TEX_FLOAT, 64},
		{"vertex tex float uv16", PCW(testPCW(TA_PARAM_VERTEX, 0)), TA_VERT_TEX_FLOAT_UV16, 64},
		{"vertex sprite", PCW(testPCW(TA_PARAM_VERTEX, 0)), TA_VERT_TEX_SPRITE, 64},
		{"vertex modvol", PCW(testPCW(TA_PARAM_VERTEX, 0)), TA_VERT_MODVOL, 64},
	}
	for _, tc := range cases {
		if got := taParamSize(tc.pcw, tc.vertType); got != tc.want {
			t.Errorf("%s: expected size %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestPVR_TranslationTables(t *testing.T) {
	wantDepth := [8]DepthFunc{DEPTH_NEVER, DEPTH_GREATER, DEPTH_EQUAL, DEPTH_GEQUAL,
		DEPTH_LESS, DEPTH_NEQUAL, DEPTH_LEQUAL, DEPTH_ALWAYS}
	for code, want := range wantDepth {
		if got := translateDepthFunc(uint32(code)); got != want {
			t.Errorf("Depth code %d: expected %d, got %d", code, want, got)
		}
	}

	wantCull := [4]CullFace{CULL_NONE, CULL_NONE, CULL_BACK, CULL_FRONT}
	for code, want := range wantCull {
		if got := translateCull(uint32(code)); got != want {
			t.Errorf("Cull code %d: expected %d, got %d", code, want, got)
		}
	}

	// Blend code 2 is "other color": destination color as a source factor,
	// source color as a destination factor
	if translateSrcBlendFunc(2) != BLEND_DST_COLOR {
		t.Error("Expected src blend code 2 to map to DST_COLOR")
	}
	if translateDstBlendFunc(2) != BLEND_SRC_COLOR {
		t.Error("Expected dst blend code 2 to map to SRC_COLOR")
	}
	if translateSrcBlendFunc(4) != BLEND_SRC_ALPHA || translateDstBlendFunc(5) != BLEND_ONE_MINUS_SRC_ALPHA {
		t.Error("Alpha blend codes translated incorrectly")
	}

	wantShade := [4]ShadeMode{SHADE_DECAL, SHADE_MODULATE, SHADE_DECAL_ALPHA, SHADE_MODULATE_ALPHA}
	for code, want := range wantShade {
		if got := translateShadeMode(uint32(code)); got != want {
			t.Errorf("Shade code %d: expected %d, got %d", code, want, got)
		}
	}
}
