// ta_sort_test.go - Test suite for depth sorting

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

func TestSort_OrdersByMinZ(t *testing.T) {
	minZ := make([]float32, 8)
	surfs := []int{0, 1, 2, 3, 4}
	keys := []float32{0.9, 0.1, 0.5, 0.3, 0.7}
	for i, k := range keys {
		minZ[i] = k
	}

	mergeSortSurfs(surfs, make([]int, len(surfs)), minZ)

	want := []int{1, 3, 2, 4, 0}
	for i := range want {
		if surfs[i] != want[i] {
			t.Errorf("Position %d: expected surface %d, got %d", i, want[i], surfs[i])
		}
	}
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	// Equal-depth decals must keep submission order
	minZ := make([]float32, 8)
	surfs := []int{3, 1, 4, 0, 2}
	minZ[3] = 0.5
	minZ[1] = 0.5
	minZ[4] = 0.1
	minZ[0] = 0.5
	minZ[2] = 0.1

	mergeSortSurfs(surfs, make([]int, len(surfs)), minZ)

	want := []int{4, 2, 3, 1, 0}
	for i := range want {
		if surfs[i] != want[i] {
			t.Errorf("Position %d: expected surface %d, got %d", i, want[i], surfs[i])
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	minZ := make([]float32, 16)
	surfs := make([]int, 16)
	for i := range surfs {
		surfs[i] = i
		minZ[i] = float32((i * 7) % 5)
	}
	scratch := make([]int, len(surfs))

	mergeSortSurfs(surfs, scratch, minZ)
	first := make([]int, len(surfs))
	copy(first, surfs)

	mergeSortSurfs(surfs, scratch, minZ)
	for i := range surfs {
		if surfs[i] != first[i] {
			t.Fatalf("Second sort changed position %d: %d vs %d", i, first[i], surfs[i])
		}
	}
}

func TestSort_AutosortedListNonDecreasing(t *testing.T) {
	var b paramBuilder
	cullCodes := []uint32{0, 2, 3, 0, 2}
	zs := []float32{0.8, 0.2, 0.6, 0.4, 0.2}
	for i := range zs {
		appendPolyPackedCull(&b, TA_LIST_TRANSLUCENT, cullCodes[i])
		appendVertPacked(&b, 0, 0, zs[i], 0x80ffffff, false)
		appendVertPacked(&b, 0, 10, zs[i]+0.05, 0x80ffffff, false)
		appendVertPacked(&b, 10, 0, zs[i]+0.1, 0x80ffffff, true)
	}
	appendEndOfList(&b)

	backend := NewHeadlessRenderBackend()
	translator := NewTranslator(backend, NewMapTextureCache(), nil)
	rc := NewTRContext()
	ctx := testContext(b.bytes())
	ctx.Autosort = true
	translator.ConvertContext(ctx, rc)

	list := &rc.Lists[TA_LIST_TRANSLUCENT]
	prev := float32(-1)
	for i := 0; i < list.NumSurfs; i++ {
		surf := &rc.Surfs[list.Surfs[i]]
		// Surfaces are rebased to the index arena; recover the minimum Z
		// through the emitted indices
		minZ := float32(0)
		for j := 0; j < surf.NumVerts; j++ {
			z := rc.Verts[rc.Indices[surf.FirstVert+j]].XYZ[2]
			if j == 0 || z < minZ {
				minZ = z
			}
		}
		if minZ < prev {
			t.Errorf("Surface %d out of order: minz %v after %v", i, minZ, prev)
		}
		prev = minZ
	}
}
