// ta_dump.go - TA Context Capture File I/O

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
ta_dump.go - Capture File Format

A .tad capture holds everything a conversion needs: the TA register state
the translator consults, the background vertex bytes, the raw parameter
stream and the referenced guest texture memory keyed by (TSP, TCW).

Layout (little endian):

	magic "TADC", version u32
	bg ISP/TSP/TCW u32, bg depth f32
	palette format u32, texture stride u32, alpha ref u32, autosort u32
	video width u32, video height u32
	bg vertex byte count u32, bytes
	parameter byte count u32, bytes
	texture count u32, then per texture:
	    tsp u32, tcw u32, texture byte count u32, bytes,
	    palette byte count u32, bytes
*/

package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var tadMagic = []byte{'T', 'A', 'D', 'C'}

const tadVersion = 1

// Payload sanity limits; a capture larger than this is corrupt
const (
	tadMaxPayload  = 64 << 20
	tadMaxTextures = 4096
)

var errTadMagic = errors.New("tad: invalid magic in header")

// DumpError provides detailed error context for capture I/O
type DumpError struct {
	Operation string
	Details   string
	Err       error
}

func (e *DumpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capture %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("capture %s failed: %s", e.Operation, e.Details)
}

type tadHeader struct {
	Magic   [4]byte
	Version uint32

	BgISP   uint32
	BgTSP   uint32
	BgTCW   uint32
	BgDepth float32

	PaletteFmt    uint32
	TextureStride uint32
	AlphaRef      uint32
	Autosort      uint32

	VideoWidth  uint32
	VideoHeight uint32
}

// LoadTADump reads a capture and returns the context plus a texture cache
// populated with the referenced guest texture memory
func LoadTADump(r io.Reader) (*TAContext, *MapTextureCache, error) {
	var hdr tadHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, nil, &DumpError{Operation: "load", Details: "short header", Err: err}
	}
	if string(hdr.Magic[:]) != string(tadMagic) {
		return nil, nil, &DumpError{Operation: "load", Details: "header", Err: errTadMagic}
	}
	if hdr.Version != tadVersion {
		return nil, nil, &DumpError{Operation: "load",
			Details: fmt.Sprintf("unsupported version %d", hdr.Version)}
	}

	ctx := &TAContext{
		BgISP:         ISPWord(hdr.BgISP),
		BgTSP:         TSPWord(hdr.BgTSP),
		BgTCW:         TCWWord(hdr.BgTCW),
		BgDepth:       hdr.BgDepth,
		PaletteFmt:    hdr.PaletteFmt,
		TextureStride: hdr.TextureStride,
		AlphaRef:      uint8(hdr.AlphaRef),
		Autosort:      hdr.Autosort != 0,
		VideoWidth:    int(hdr.VideoWidth),
		VideoHeight:   int(hdr.VideoHeight),
	}

	var err error
	if ctx.BgVertices, err = readBlob(r, "background vertices"); err != nil {
		return nil, nil, err
	}
	if ctx.Params, err = readBlob(r, "parameters"); err != nil {
		return nil, nil, err
	}

	var numTextures uint32
	if err := binary.Read(r, binary.LittleEndian, &numTextures); err != nil {
		return nil, nil, &DumpError{Operation: "load", Details: "texture count", Err: err}
	}
	if numTextures > tadMaxTextures {
		return nil, nil, &DumpError{Operation: "load",
			Details: fmt.Sprintf("texture count %d exceeds limit", numTextures)}
	}

	cache := NewMapTextureCache()
	for i := uint32(0); i < numTextures; i++ {
		var tsp, tcw uint32
		if err := binary.Read(r, binary.LittleEndian, &tsp); err != nil {
			return nil, nil, &DumpError{Operation: "load", Details: "texture key", Err: err}
		}
		if err := binary.Read(r, binary.LittleEndian, &tcw); err != nil {
			return nil, nil, &DumpError{Operation: "load", Details: "texture key", Err: err}
		}
		texture, err := readBlob(r, "texture memory")
		if err != nil {
			return nil, nil, err
		}
		palette, err := readBlob(r, "palette memory")
		if err != nil {
			return nil, nil, err
		}
		cache.RegisterTexture(TSPWord(tsp), TCWWord(tcw), texture, palette)
	}

	return ctx, cache, nil
}

// SaveTADump writes a capture for ctx, including every texture registered
// in the cache
func SaveTADump(w io.Writer, ctx *TAContext, cache *MapTextureCache) error {
	hdr := tadHeader{
		Version:       tadVersion,
		BgISP:         uint32(ctx.BgISP),
		BgTSP:         uint32(ctx.BgTSP),
		BgTCW:         uint32(ctx.BgTCW),
		BgDepth:       ctx.BgDepth,
		PaletteFmt:    ctx.PaletteFmt,
		TextureStride: ctx.TextureStride,
		AlphaRef:      uint32(ctx.AlphaRef),
		VideoWidth:    uint32(ctx.VideoWidth),
		VideoHeight:   uint32(ctx.VideoHeight),
	}
	copy(hdr.Magic[:], tadMagic)
	if ctx.Autosort {
		hdr.Autosort = 1
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return &DumpError{Operation: "save", Details: "header", Err: err}
	}

	if err := writeBlob(w, ctx.BgVertices); err != nil {
		return err
	}
	if err := writeBlob(w, ctx.Params); err != nil {
		return err
	}

	var numTextures uint32
	if cache != nil {
		numTextures = uint32(len(cache.entries))
	}
	if err := binary.Write(w, binary.LittleEndian, numTextures); err != nil {
		return &DumpError{Operation: "save", Details: "texture count", Err: err}
	}
	if cache != nil {
		for key, entry := range cache.entries {
			if err := binary.Write(w, binary.LittleEndian, uint32(key>>32)); err != nil {
				return &DumpError{Operation: "save", Details: "texture key", Err: err}
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(key)); err != nil {
				return &DumpError{Operation: "save", Details: "texture key", Err: err}
			}
			if err := writeBlob(w, entry.Texture); err != nil {
				return err
			}
			if err := writeBlob(w, entry.Palette); err != nil {
				return err
			}
		}
	}
	return nil
}

func readBlob(r io.Reader, what string) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, &DumpError{Operation: "load", Details: what, Err: err}
	}
	if length > tadMaxPayload {
		return nil, &DumpError{Operation: "load",
			Details: fmt.Sprintf("%s length %d exceeds limit", what, length)}
	}
	if length == 0 {
		return nil, nil
	}
	blob := make([]byte, length)
	if _, err := io.ReadFull(r, blob); err != nil {
		return nil, &DumpError{Operation: "load", Details: what, Err: err}
	}
	return blob, nil
}

func writeBlob(w io.Writer, blob []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(blob))); err != nil {
		return &DumpError{Operation: "save", Details: "blob length", Err: err}
	}
	if len(blob) > 0 {
		if _, err := w.Write(blob); err != nil {
			return &DumpError{Operation: "save", Details: "blob payload", Err: err}
		}
	}
	return nil
}
