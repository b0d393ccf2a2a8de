// pvr_constants.go - PowerVR2 (HOLLY/CLX2) Tile Accelerator Definitions

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
pvr_constants.go - PowerVR2 Tile Accelerator Parameter Definitions

This file contains parameter type codes, display list identifiers and bit
field definitions for the Sega Dreamcast PowerVR2 (CLX2) Tile Accelerator
emulation. The TA accepts a stream of 32/64 byte parameters, each tagged by
a Parameter Control Word (PCW), and sorts geometry into five display lists
for deferred per-tile rendering.

Field positions are sourced from the SEGA Dreamcast hardware documentation
(HOLLY/CORE ASIC) for register-level accuracy.
*/

package main

// TA parameter types (PCW bits 31:29)
const (
	TA_PARAM_END_OF_LIST    = 0 // Terminate the current display list
	TA_PARAM_USER_TILE_CLIP = 1 // Tile clipping rectangle (ignored by the translator)
	TA_PARAM_OBJ_LIST_SET   = 2 // Direct object list write (unsupported)
	TA_PARAM_RESERVED0      = 3
	TA_PARAM_POLY_OR_VOL    = 4 // Polygon or modifier volume global parameter
	TA_PARAM_SPRITE         = 5 // Sprite global parameter
	TA_PARAM_RESERVED1      = 6
	TA_PARAM_VERTEX         = 7 // Vertex parameter
	TA_NUM_PARAMS           = 8
)

// TA display list types (PCW bits 26:24)
const (
	TA_LIST_OPAQUE             = 0
	TA_LIST_OPAQUE_MODVOL      = 1
	TA_LIST_TRANSLUCENT        = 2
	TA_LIST_TRANSLUCENT_MODVOL = 3
	TA_LIST_PUNCH_THROUGH      = 4
	TA_NUM_LISTS               = 5

	// Sentinel used between END_OF_LIST and the next list-opening parameter
	TA_LIST_NONE = -1
)

// TA vertex parameter formats. Types 0-8 are single-volume polygon
// vertices, 9-14 are the two-volume variants, 15/16 are sprites and 17 is
// a modifier volume vertex.
const (
	TA_VERT_PACKED             = 0
	TA_VERT_FLOAT              = 1
	TA_VERT_INTENSITY          = 2
	TA_VERT_TEX_PACKED         = 3
	TA_VERT_TEX_PACKED_UV16    = 4
	TA_VERT_TEX_FLOAT          = 5
	TA_VERT_TEX_FLOAT_UV16     = 6
	TA_VERT_TEX_INTENSITY      = 7
	TA_VERT_TEX_INTENSITY_UV16 = 8
	TA_VERT_VOL_PACKED         = 9
	TA_VERT_VOL_INTENSITY      = 10
	TA_VERT_VOL_TEX_PACKED     = 11
	TA_VERT_VOL_TEX_PACKED16   = 12
	TA_VERT_VOL_TEX_INTENSITY  = 13
	TA_VERT_VOL_TEX_INT16      = 14
	TA_VERT_SPRITE             = 15
	TA_VERT_TEX_SPRITE         = 16
	TA_VERT_MODVOL             = 17
	TA_NUM_VERTS               = 18

	TA_VERT_NONE = -1
)

// TA global (polygon) parameter formats
const (
	TA_POLY_PACKED           = 0 // Vertex colors carried per-vertex
	TA_POLY_INTENSITY        = 1 // Face color supplied in the global parameter
	TA_POLY_INTENSITY_OFFSET = 2 // Face color and face offset color supplied
	TA_POLY_VOL_PACKED       = 3
	TA_POLY_VOL_INTENSITY    = 4
	TA_POLY_SPRITE           = 5
	TA_POLY_MODVOL           = 6
	TA_NUM_POLYS             = 7
)

// TCW pixel formats
const (
	PVR_PXL_ARGB1555 = 0
	PVR_PXL_RGB565   = 1
	PVR_PXL_ARGB4444 = 2
	PVR_PXL_YUV422   = 3
	PVR_PXL_BUMPMAP  = 4
	PVR_PXL_PAL4BPP  = 5
	PVR_PXL_PAL8BPP  = 6
	PVR_PXL_RESERVED = 7
)

// PAL_RAM_CTRL palette entry formats
const (
	PVR_PAL_ARGB1555 = 0
	PVR_PAL_RGB565   = 1
	PVR_PAL_ARGB4444 = 2
	PVR_PAL_ARGB8888 = 3
)

// Output context capacities. The converter treats overflow as a
// programming error on the capture side and aborts.
const (
	TR_MAX_SURFS   = 0x4000
	TR_MAX_VERTS   = 0x10000
	TR_MAX_INDICES = 3 * TR_MAX_VERTS
	TR_MAX_PARAMS  = 0x10000
)

// Largest decodable texture is 1024x1024 RGBA8888
const PVR_TEX_SCRATCH_SIZE = 1024 * 1024 * 4

// DepthFunc is the backend depth comparison. PVR depth values are 1/w, so
// GREATER passes for geometry closer to the eye.
type DepthFunc uint8

const (
	DEPTH_NONE DepthFunc = iota
	DEPTH_NEVER
	DEPTH_LESS
	DEPTH_EQUAL
	DEPTH_LEQUAL
	DEPTH_GREATER
	DEPTH_NEQUAL
	DEPTH_GEQUAL
	DEPTH_ALWAYS
)

// CullFace selects which winding is discarded by the backend
type CullFace uint8

const (
	CULL_NONE CullFace = iota
	CULL_FRONT
	CULL_BACK
)

// BlendFunc is the backend blend factor
type BlendFunc uint8

const (
	BLEND_NONE BlendFunc = iota
	BLEND_ZERO
	BLEND_ONE
	BLEND_SRC_COLOR
	BLEND_ONE_MINUS_SRC_COLOR
	BLEND_SRC_ALPHA
	BLEND_ONE_MINUS_SRC_ALPHA
	BLEND_DST_ALPHA
	BLEND_ONE_MINUS_DST_ALPHA
	BLEND_DST_COLOR
	BLEND_ONE_MINUS_DST_COLOR
)

// ShadeMode is the texture/vertex color combine instruction
type ShadeMode uint8

const (
	SHADE_DECAL ShadeMode = iota
	SHADE_MODULATE
	SHADE_DECAL_ALPHA
	SHADE_MODULATE_ALPHA
)

// FilterMode is the texture sampling filter
type FilterMode uint8

const (
	FILTER_NEAREST FilterMode = iota
	FILTER_BILINEAR
)

// WrapMode is the per-axis texture addressing mode
type WrapMode uint8

const (
	WRAP_REPEAT WrapMode = iota
	WRAP_CLAMP_TO_EDGE
	WRAP_MIRRORED_REPEAT
)

// PixelFormat describes texture data handed to the backend
type PixelFormat uint8

const (
	PIXEL_FORMAT_RGBA PixelFormat = iota
)

// Fixed translation tables from PVR field encodings to backend enums.
// Table order matches the hardware encoding and must not be reordered.

var pvrDepthFuncs = [8]DepthFunc{
	DEPTH_NEVER,
	DEPTH_GREATER,
	DEPTH_EQUAL,
	DEPTH_GEQUAL,
	DEPTH_LESS,
	DEPTH_NEQUAL,
	DEPTH_LEQUAL,
	DEPTH_ALWAYS,
}

var pvrCullFace = [4]CullFace{
	CULL_NONE,
	CULL_NONE,
	CULL_BACK,
	CULL_FRONT,
}

var pvrSrcBlendFuncs = [8]BlendFunc{
	BLEND_ZERO,
	BLEND_ONE,
	BLEND_DST_COLOR,
	BLEND_ONE_MINUS_DST_COLOR,
	BLEND_SRC_ALPHA,
	BLEND_ONE_MINUS_SRC_ALPHA,
	BLEND_DST_ALPHA,
	BLEND_ONE_MINUS_DST_ALPHA,
}

var pvrDstBlendFuncs = [8]BlendFunc{
	BLEND_ZERO,
	BLEND_ONE,
	BLEND_SRC_COLOR,
	BLEND_ONE_MINUS_SRC_COLOR,
	BLEND_SRC_ALPHA,
	BLEND_ONE_MINUS_SRC_ALPHA,
	BLEND_DST_ALPHA,
	BLEND_ONE_MINUS_DST_ALPHA,
}

var pvrShadeModes = [4]ShadeMode{
	SHADE_DECAL,
	SHADE_MODULATE,
	SHADE_DECAL_ALPHA,
	SHADE_MODULATE_ALPHA,
}

func translateDepthFunc(mode uint32) DepthFunc {
	return pvrDepthFuncs[mode&7]
}

func translateCull(mode uint32) CullFace {
	return pvrCullFace[mode&3]
}

func translateSrcBlendFunc(instr uint32) BlendFunc {
	return pvrSrcBlendFuncs[instr&7]
}

func translateDstBlendFunc(instr uint32) BlendFunc {
	return pvrDstBlendFuncs[instr&7]
}

func translateShadeMode(instr uint32) ShadeMode {
	return pvrShadeModes[instr&3]
}
