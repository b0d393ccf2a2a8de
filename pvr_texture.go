// pvr_texture.go - PVR Texture Cache Binding and Decoding

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
pvr_texture.go - Texture Binding and PVR Format Decoding

The translator binds textures on demand: when a global parameter flags
texturing, the (TSP, TCW) pair is looked up in the texture cache and, if
the cached backend handle is missing or stale, the raw PVR texture memory
is decoded into the translator's RGBA scratch and handed to the backend.

The decoder handles the 16-bit direct formats (ARGB1555, RGB565, ARGB4444)
and the 4/8-bit paletted formats, in both twiddled and linear scan order,
including the stride override for linear textures and the mipmap chain
offset for twiddled ones. VQ-compressed and YUV422 textures are rejected.

Cache note: entries are keyed purely on (TSP, TCW). The decode also
consults TEXT_CONTROL and PAL_RAM_CTRL, so two frames that differ only in
palette state will incorrectly share an entry; invalidation via Dirty is
the downstream fix point.
*/

package main

import "fmt"

// TextureCacheEntry is one cached guest texture. Texture and Palette view
// guest memory; the remaining fields are owned by the translator.
type TextureCacheEntry struct {
	Handle TextureHandle
	Dirty  bool

	Texture []byte
	Palette []byte

	Filter  FilterMode
	WrapU   WrapMode
	WrapV   WrapMode
	Format  PixelFormat
	Width   int
	Height  int
	Mipmaps bool
}

// TextureCache resolves a (TSP, TCW) pair to a cache entry. A nil result
// is fatal to the conversion: the capture must register every texture the
// stream references.
type TextureCache interface {
	FindTexture(tsp TSPWord, tcw TCWWord) *TextureCacheEntry
}

// TexDecodeFunc decodes raw PVR texture memory into RGBA8888
type TexDecodeFunc func(src, palette []byte, width, height, stride int,
	tcw TCWWord, paletteFmt uint32, dst []byte) error

// MapTextureCache is the default in-memory cache used by the capture
// loader and the tests
type MapTextureCache struct {
	entries map[uint64]*TextureCacheEntry
}

func NewMapTextureCache() *MapTextureCache {
	return &MapTextureCache{entries: make(map[uint64]*TextureCacheEntry)}
}

func textureKey(tsp TSPWord, tcw TCWWord) uint64 {
	return uint64(tsp)<<32 | uint64(tcw)
}

// RegisterTexture installs guest texture memory for a (TSP, TCW) pair
func (c *MapTextureCache) RegisterTexture(tsp TSPWord, tcw TCWWord, texture, palette []byte) *TextureCacheEntry {
	entry := &TextureCacheEntry{Texture: texture, Palette: palette}
	c.entries[textureKey(tsp, tcw)] = entry
	return entry
}

func (c *MapTextureCache) FindTexture(tsp TSPWord, tcw TCWWord) *TextureCacheEntry {
	return c.entries[textureKey(tsp, tcw)]
}

// convertTexture resolves a (TSP, TCW) pair to a backend texture handle,
// decoding and uploading on a cache miss or a dirty entry
func (t *Translator) convertTexture(tsp TSPWord, tcw TCWWord) TextureHandle {
	entry := t.cache.FindTexture(tsp, tcw)
	if entry == nil {
		panic(fmt.Sprintf("ta: no texture cache entry for tsp=%08x tcw=%08x", uint32(tsp), uint32(tcw)))
	}
	if entry.Handle != 0 && !entry.Dirty {
		return entry.Handle
	}
	if entry.Handle != 0 {
		t.backend.DestroyTexture(entry.Handle)
		entry.Handle = 0
	}

	width := taTextureWidth(tsp, tcw, t.ctx.TextureStride)
	height := taTextureHeight(tsp)
	stride := taTextureStride(tsp, tcw, t.ctx.TextureStride)

	err := t.decode(entry.Texture, entry.Palette, width, height, stride,
		tcw, t.ctx.PaletteFmt, t.scratch)
	if err != nil {
		panic(&RenderError{Operation: "texture decode",
			Details: fmt.Sprintf("tsp=%08x tcw=%08x", uint32(tsp), uint32(tcw)), Err: err})
	}

	filter := FILTER_BILINEAR
	if tsp.FilterMode() == 0 {
		filter = FILTER_NEAREST
	}
	wrapU := translateWrap(tsp.ClampU(), tsp.FlipU())
	wrapV := translateWrap(tsp.ClampV(), tsp.FlipV())
	mipmaps := taTextureMipmaps(tcw)

	entry.Handle = t.backend.CreateTexture(PIXEL_FORMAT_RGBA, filter, wrapU, wrapV,
		mipmaps, width, height, t.scratch[:width*height*4])
	entry.Filter = filter
	entry.WrapU = wrapU
	entry.WrapV = wrapV
	entry.Format = PIXEL_FORMAT_RGBA
	entry.Width = width
	entry.Height = height
	entry.Mipmaps = mipmaps
	entry.Dirty = false
	return entry.Handle
}

func translateWrap(clamp, flip bool) WrapMode {
	if clamp {
		return WRAP_CLAMP_TO_EDGE
	}
	if flip {
		return WRAP_MIRRORED_REPEAT
	}
	return WRAP_REPEAT
}

// =============================================================================
// PVR format decoding
// =============================================================================

// twiddleIndex maps a texel coordinate to its position in PVR twiddled
// (Morton) order within a square of the given dimension
func twiddleIndex(x, y, size int) int {
	idx := 0
	for bit := 0; (1 << bit) < size; bit++ {
		idx |= ((y >> bit) & 1) << (2 * bit)
		idx |= ((x >> bit) & 1) << (2*bit + 1)
	}
	return idx
}

// mipOffsetTexels is the texel offset of the top mip level. Twiddled
// mipmap chains store the smallest level first.
func mipOffsetTexels(size int) int {
	offset := 0
	for level := 1; level < size; level *= 2 {
		offset += level * level
	}
	return offset + 1 // 1x1 level plus its padding texel
}

func argb1555ToRGBA(texel uint16) (r, g, b, a uint8) {
	r = uint8((texel >> 10 & 0x1f) << 3)
	g = uint8((texel >> 5 & 0x1f) << 3)
	b = uint8((texel & 0x1f) << 3)
	a = 0
	if texel&0x8000 != 0 {
		a = 0xff
	}
	return
}

func rgb565ToRGBA(texel uint16) (r, g, b, a uint8) {
	r = uint8((texel >> 11 & 0x1f) << 3)
	g = uint8((texel >> 5 & 0x3f) << 2)
	b = uint8((texel & 0x1f) << 3)
	a = 0xff
	return
}

func argb4444ToRGBA(texel uint16) (r, g, b, a uint8) {
	r = uint8((texel >> 8 & 0xf) << 4)
	g = uint8((texel >> 4 & 0xf) << 4)
	b = uint8((texel & 0xf) << 4)
	a = uint8((texel >> 12 & 0xf) << 4)
	return
}

func texel16ToRGBA(texel uint16, pixelFmt uint32) (r, g, b, a uint8) {
	switch pixelFmt {
	case PVR_PXL_RGB565:
		return rgb565ToRGBA(texel)
	case PVR_PXL_ARGB4444:
		return argb4444ToRGBA(texel)
	default:
		return argb1555ToRGBA(texel)
	}
}

// paletteEntryToRGBA expands one palette index through PAL_RAM_CTRL format
func paletteEntryToRGBA(palette []byte, index int, paletteFmt uint32) (r, g, b, a uint8) {
	switch paletteFmt {
	case PVR_PAL_ARGB8888:
		off := index * 4
		c := le32(palette, off)
		return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
	default:
		off := index * 2
		texel := uint16(palette[off]) | uint16(palette[off+1])<<8
		switch paletteFmt {
		case PVR_PAL_RGB565:
			return rgb565ToRGBA(texel)
		case PVR_PAL_ARGB4444:
			return argb4444ToRGBA(texel)
		default:
			return argb1555ToRGBA(texel)
		}
	}
}

// pvrTexDecode decodes raw PVR texture memory into RGBA8888. dst must hold
// width*height*4 bytes.
func pvrTexDecode(src, palette []byte, width, height, stride int,
	tcw TCWWord, paletteFmt uint32, dst []byte) error {
	if tcw.VQCompressed() {
		return fmt.Errorf("pvr: VQ compressed textures are not supported")
	}
	pixelFmt := tcw.PixelFormat()
	if pixelFmt == PVR_PXL_YUV422 || pixelFmt == PVR_PXL_BUMPMAP || pixelFmt == PVR_PXL_RESERVED {
		return fmt.Errorf("pvr: unsupported pixel format %d", pixelFmt)
	}
	if width <= 0 || height <= 0 || width*height*4 > len(dst) {
		return fmt.Errorf("pvr: bad texture dimensions %dx%d", width, height)
	}

	twiddled := !tcw.ScanOrderLinear()
	palBank := int(tcw.PaletteSelector())

	// Twiddling operates on squares; rectangular textures are a row or
	// column of squares of the shorter dimension.
	sq := width
	if height < sq {
		sq = height
	}

	base := 0
	if twiddled && tcw.MipMapped() {
		base = mipOffsetTexels(width)
	}

	srcIndex := func(x, y int) int {
		if !twiddled {
			return y*stride + x
		}
		var block, bx, by int
		if width >= height {
			block = x / sq
			bx, by = x%sq, y
		} else {
			block = y / sq
			bx, by = x, y%sq
		}
		return base + block*sq*sq + twiddleIndex(bx, by, sq)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a uint8
			idx := srcIndex(x, y)
			switch {
			case pixelFmt == PVR_PXL_PAL4BPP:
				texel := src[idx/2]
				if idx&1 != 0 {
					texel >>= 4
				}
				r, g, b, a = paletteEntryToRGBA(palette, palBank*16+int(texel&0xf), paletteFmt)
			case pixelFmt == PVR_PXL_PAL8BPP:
				// 8bpp banks use the top two selector bits
				r, g, b, a = paletteEntryToRGBA(palette, (palBank>>4)*256+int(src[idx]), paletteFmt)
			default:
				texel := uint16(src[idx*2]) | uint16(src[idx*2+1])<<8
				r, g, b, a = texel16ToRGBA(texel, pixelFmt)
			}
			out := (y*width + x) * 4
			dst[out] = r
			dst[out+1] = g
			dst[out+2] = b
			dst[out+3] = a
		}
	}
	return nil
}
