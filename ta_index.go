// ta_index.go - Strip Expansion and Surface Merging

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
ta_index.go - Triangle Index Generation

The TA submits clockwise triangle strips; the backends draw counter-
clockwise indexed triangles. This pass expands every surface's strip into
index triples, restoring CCW winding from the triangle's position in its
original strip, and merges maximal runs of adjacent surfaces whose packed
render state is bit-identical so they issue as one draw call.

After this pass a surface's FirstVert/NumVerts describe its range in the
index arena rather than the vertex arena.
*/

package main

import "fmt"

// generateIndices expands one display list into the index arena, merging
// adjacent surfaces with identical render state
func (t *Translator) generateIndices(listType int) {
	rc := t.rc
	list := &rc.Lists[listType]

	out := 0
	i := 0
	for i < list.NumSurfs {
		rootIdx := list.Surfs[i]
		root := &rc.Surfs[rootIdx]
		rootKey := root.Params.Full()
		firstIndex := rc.NumIndices

		j := i
		for j < list.NumSurfs {
			surf := &rc.Surfs[list.Surfs[j]]
			if j > i && surf.Params.Full() != rootKey {
				break
			}
			t.emitSurfIndices(surf)
			j++
		}

		root.FirstVert = firstIndex
		root.NumVerts = rc.NumIndices - firstIndex
		list.Surfs[out] = rootIdx
		out++
		i = j
	}
	list.NumSurfs = out
}

// emitSurfIndices expands one strip surface. Odd strip positions keep the
// submission order, even positions swap the trailing pair; either way the
// emitted triangle winds CCW.
func (t *Translator) emitSurfIndices(surf *Surface) {
	for j := 0; j < surf.NumVerts-2; j++ {
		v := int32(surf.FirstVert + j)
		if (surf.StripOffset+j)&1 != 0 {
			t.emitTri(v, v+1, v+2)
		} else {
			t.emitTri(v, v+2, v+1)
		}
	}
}

func (t *Translator) emitTri(i0, i1, i2 int32) {
	rc := t.rc
	if rc.NumIndices+3 > len(rc.Indices) {
		panic(fmt.Sprintf("ta: index arena overflow (%d)", rc.NumIndices))
	}
	rc.Indices[rc.NumIndices] = i0
	rc.Indices[rc.NumIndices+1] = i1
	rc.Indices[rc.NumIndices+2] = i2
	rc.NumIndices += 3
}
