// pvr_bits.go - PowerVR2 Control Word Accessors and Parameter Size Tables

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
pvr_bits.go - PCW/ISP/TSP/TCW Word Decoding

Every TA parameter leads with a 32-bit Parameter Control Word. Global
parameters additionally carry the ISP (image synthesis), TSP (texture and
shading) and TCW (texture control) instruction words. This file provides
typed views of those words plus the derived classification used by the
stream parser:

- taPolyType:  global parameter format 0-6
- taVertType:  vertex parameter format 0-17
- taParamSize: byte length of the parameter at the stream cursor

Sizes depend on both the PCW and the vertex format selected by the most
recent global parameter, so the tables are keyed accordingly. TAInitTables
builds them once; repeated calls are no-ops.
*/

package main

import "sync"

// PCW is the Parameter Control Word leading every TA parameter
type PCW uint32

func (p PCW) ParaType() int    { return int(p>>29) & 7 }
func (p PCW) EndOfStrip() bool { return p&(1<<28) != 0 }
func (p PCW) ListType() int    { return int(p>>24) & 7 }

// Object control bits. These override the matching ISP/TSP bits, so the
// translator always consults the PCW for them.
func (p PCW) UV16Bit() bool { return p&(1<<0) != 0 }
func (p PCW) Gouraud() bool { return p&(1<<1) != 0 }
func (p PCW) Offset() bool  { return p&(1<<2) != 0 }
func (p PCW) Texture() bool { return p&(1<<3) != 0 }
func (p PCW) ColType() int  { return int(p>>4) & 3 }
func (p PCW) Volume() bool  { return p&(1<<6) != 0 }
func (p PCW) Shadow() bool  { return p&(1<<7) != 0 }

// ISPWord is the ISP/TSP instruction word of a global parameter
type ISPWord uint32

func (w ISPWord) DepthCompareMode() uint32 { return uint32(w>>29) & 7 }
func (w ISPWord) CullingMode() uint32      { return uint32(w>>27) & 3 }
func (w ISPWord) ZWriteDisable() bool      { return w&(1<<26) != 0 }
func (w ISPWord) Texture() bool            { return w&(1<<25) != 0 }
func (w ISPWord) Offset() bool             { return w&(1<<24) != 0 }
func (w ISPWord) Gouraud() bool            { return w&(1<<23) != 0 }
func (w ISPWord) UV16Bit() bool            { return w&(1<<22) != 0 }

// TSPWord is the TSP instruction word of a global parameter
type TSPWord uint32

func (w TSPWord) SrcAlphaInstr() uint32       { return uint32(w>>29) & 7 }
func (w TSPWord) DstAlphaInstr() uint32       { return uint32(w>>26) & 7 }
func (w TSPWord) SrcSelect() bool             { return w&(1<<25) != 0 }
func (w TSPWord) DstSelect() bool             { return w&(1<<24) != 0 }
func (w TSPWord) FogControl() uint32          { return uint32(w>>22) & 3 }
func (w TSPWord) ColorClamp() bool            { return w&(1<<21) != 0 }
func (w TSPWord) UseAlpha() bool              { return w&(1<<20) != 0 }
func (w TSPWord) IgnoreTexAlpha() bool        { return w&(1<<19) != 0 }
func (w TSPWord) FlipU() bool                 { return w&(1<<18) != 0 }
func (w TSPWord) FlipV() bool                 { return w&(1<<17) != 0 }
func (w TSPWord) ClampU() bool                { return w&(1<<16) != 0 }
func (w TSPWord) ClampV() bool                { return w&(1<<15) != 0 }
func (w TSPWord) FilterMode() uint32          { return uint32(w>>13) & 3 }
func (w TSPWord) SuperSample() bool           { return w&(1<<12) != 0 }
func (w TSPWord) MipMapDAdjust() uint32       { return uint32(w>>8) & 15 }
func (w TSPWord) TextureShadingInstr() uint32 { return uint32(w>>6) & 3 }
func (w TSPWord) TextureUSize() uint32        { return uint32(w>>3) & 7 }
func (w TSPWord) TextureVSize() uint32        { return uint32(w) & 7 }

// TCWWord is the Texture Control Word of a global parameter
type TCWWord uint32

func (w TCWWord) MipMapped() bool          { return w&(1<<31) != 0 }
func (w TCWWord) VQCompressed() bool       { return w&(1<<30) != 0 }
func (w TCWWord) PixelFormat() uint32      { return uint32(w>>27) & 7 }
func (w TCWWord) ScanOrderLinear() bool    { return w&(1<<26) != 0 }
func (w TCWWord) StrideSelect() bool       { return w&(1<<25) != 0 }
func (w TCWWord) PaletteSelector() uint32  { return uint32(w>>21) & 0x3f }
func (w TCWWord) TextureAddress() uint32   { return (uint32(w) & 0x1fffff) << 3 }
func (w TCWWord) PalettedFormat() bool {
	f := w.PixelFormat()
	return f == PVR_PXL_PAL4BPP || f == PVR_PXL_PAL8BPP
}

// taTextureWidth returns the texture width in texels. Strided (linear,
// non-mipmapped) textures take their width from the TEXT_CONTROL stride
// register in units of 32 texels.
func taTextureWidth(tsp TSPWord, tcw TCWWord, strideReg uint32) int {
	if tcw.StrideSelect() && tcw.ScanOrderLinear() {
		return int(strideReg&0x1f) * 32
	}
	return 8 << tsp.TextureUSize()
}

func taTextureHeight(tsp TSPWord) int {
	return 8 << tsp.TextureVSize()
}

// taTextureStride returns the source row pitch in texels
func taTextureStride(tsp TSPWord, tcw TCWWord, strideReg uint32) int {
	if tcw.StrideSelect() && tcw.ScanOrderLinear() {
		return int(strideReg&0x1f) * 32
	}
	return 8 << tsp.TextureUSize()
}

// taTextureMipmaps reports whether the texture carries a mipmap chain.
// Strided textures cannot be mipmapped.
func taTextureMipmaps(tcw TCWWord) bool {
	return tcw.MipMapped() && !tcw.ScanOrderLinear()
}

// taListTypeValid reports whether the PCW's list type field should be
// adopted as the current list. The TA only latches a list type while no
// list is open, and only from parameters that open one.
func taListTypeValid(pcw PCW, currentList int) bool {
	if currentList != TA_LIST_NONE {
		return false
	}
	switch pcw.ParaType() {
	case TA_PARAM_OBJ_LIST_SET, TA_PARAM_POLY_OR_VOL, TA_PARAM_SPRITE:
		return true
	}
	return false
}

// taPolyType classifies a global parameter into formats 0-6
func taPolyType(pcw PCW) int {
	if pcw.ListType() == TA_LIST_OPAQUE_MODVOL ||
		pcw.ListType() == TA_LIST_TRANSLUCENT_MODVOL {
		return TA_POLY_MODVOL
	}
	if pcw.ParaType() == TA_PARAM_SPRITE {
		return TA_POLY_SPRITE
	}
	if pcw.Volume() {
		if pcw.ColType() == 2 {
			return TA_POLY_VOL_INTENSITY
		}
		return TA_POLY_VOL_PACKED
	}
	// Offset color is only valid on textured geometry, so intensity mode
	// splits on texture+offset.
	if pcw.ColType() == 2 {
		if pcw.Texture() && pcw.Offset() {
			return TA_POLY_INTENSITY_OFFSET
		}
		return TA_POLY_INTENSITY
	}
	return TA_POLY_PACKED
}

// taVertType classifies the vertex format selected by a global parameter
func taVertType(pcw PCW) int {
	if pcw.ListType() == TA_LIST_OPAQUE_MODVOL ||
		pcw.ListType() == TA_LIST_TRANSLUCENT_MODVOL {
		return TA_VERT_MODVOL
	}
	if pcw.ParaType() == TA_PARAM_SPRITE {
		if pcw.Texture() {
			return TA_VERT_TEX_SPRITE
		}
		return TA_VERT_SPRITE
	}
	if pcw.Volume() {
		switch pcw.ColType() {
		case 2, 3:
			if !pcw.Texture() {
				return TA_VERT_VOL_INTENSITY
			}
			if pcw.UV16Bit() {
				return TA_VERT_VOL_TEX_INT16
			}
			return TA_VERT_VOL_TEX_INTENSITY
		default:
			if !pcw.Texture() {
				return TA_VERT_VOL_PACKED
			}
			if pcw.UV16Bit() {
				return TA_VERT_VOL_TEX_PACKED16
			}
			return TA_VERT_VOL_TEX_PACKED
		}
	}
	switch pcw.ColType() {
	case 1:
		if !pcw.Texture() {
			return TA_VERT_FLOAT
		}
		if pcw.UV16Bit() {
			return TA_VERT_TEX_FLOAT_UV16
		}
		return TA_VERT_TEX_FLOAT
	case 2, 3:
		if !pcw.Texture() {
			return TA_VERT_INTENSITY
		}
		if pcw.UV16Bit() {
			return TA_VERT_TEX_INTENSITY_UV16
		}
		return TA_VERT_TEX_INTENSITY
	default:
		if !pcw.Texture() {
			return TA_VERT_PACKED
		}
		if pcw.UV16Bit() {
			return TA_VERT_TEX_PACKED_UV16
		}
		return TA_VERT_TEX_PACKED
	}
}

var (
	taTablesOnce sync.Once
	taPolySizes  [TA_NUM_POLYS]int
	taVertSizes  [TA_NUM_VERTS]int
)

// TAInitTables builds the parameter size tables. Idempotent; called on
// every conversion entry.
func TAInitTables() {
	taTablesOnce.Do(func() {
		for i := range taPolySizes {
			taPolySizes[i] = 32
		}
		taPolySizes[TA_POLY_INTENSITY_OFFSET] = 64
		taPolySizes[TA_POLY_VOL_INTENSITY] = 64

		for i := range taVertSizes {
			taVertSizes[i] = 32
		}
		for _, t := range []int{
			TA_VERT_TEX_FLOAT, TA_VERT_TEX_FLOAT_UV16,
			TA_VERT_VOL_TEX_PACKED, TA_VERT_VOL_TEX_PACKED16,
			TA_VERT_VOL_TEX_INTENSITY, TA_VERT_VOL_TEX_INT16,
			TA_VERT_SPRITE, TA_VERT_TEX_SPRITE, TA_VERT_MODVOL,
		} {
			taVertSizes[t] = 64
		}
	})
}

// taParamSize returns the byte length of the parameter beginning with pcw.
// vertType is the format selected by the most recent global parameter and
// only matters for TA_PARAM_VERTEX.
func taParamSize(pcw PCW, vertType int) int {
	switch pcw.ParaType() {
	case TA_PARAM_POLY_OR_VOL, TA_PARAM_SPRITE:
		return taPolySizes[taPolyType(pcw)]
	case TA_PARAM_VERTEX:
		if vertType < 0 || vertType >= TA_NUM_VERTS {
			return 32
		}
		return taVertSizes[vertType]
	default:
		return 32
	}
}
