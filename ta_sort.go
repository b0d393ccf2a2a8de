// ta_sort.go - Back-To-Front Surface Sorting

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
ta_sort.go - Depth Sorting of Translucent and Punch-Through Lists

When the region headers request autosort, translucent and punch-through
triangles draw back to front by their minimum vertex depth. Sub-pixel
layered decals are emitted at identical depth and rely on submission order
surviving the sort, so this is a stable bottom-up merge sort over a
pre-allocated scratch buffer. Nothing here allocates.
*/

package main

// sortRenderList stable-sorts a display list by ascending per-triangle
// minimum Z. Surfaces in sortable lists are always single triangles.
func (t *Translator) sortRenderList(listType int) {
	rc := t.rc
	list := &rc.Lists[listType]

	for i := 0; i < list.NumSurfs; i++ {
		surfIdx := list.Surfs[i]
		surf := &rc.Surfs[surfIdx]
		minZ := rc.Verts[surf.FirstVert].XYZ[2]
		for j := 1; j < surf.NumVerts; j++ {
			z := rc.Verts[surf.FirstVert+j].XYZ[2]
			if z < minZ {
				minZ = z
			}
		}
		rc.minZ[surfIdx] = minZ
	}

	mergeSortSurfs(list.Surfs[:list.NumSurfs], rc.sortScratch, rc.minZ)
}

// mergeSortSurfs is a bottom-up stable merge sort of surface indices
// keyed by minZ
func mergeSortSurfs(surfs, scratch []int, minZ []float32) {
	n := len(surfs)
	if n < 2 {
		return
	}
	src := surfs
	dst := scratch[:n]
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			hi := lo + 2*width
			if mid > n {
				mid = n
			}
			if hi > n {
				hi = n
			}
			mergeRun(src, dst, lo, mid, hi, minZ)
		}
		src, dst = dst, src
	}
	if &src[0] != &surfs[0] {
		copy(surfs, src)
	}
}

func mergeRun(src, dst []int, lo, mid, hi int, minZ []float32) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		// Taking the left run on ties keeps the sort stable
		if i < mid && (j >= hi || minZ[src[i]] <= minZ[src[j]]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
	}
}
