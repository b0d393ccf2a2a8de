// main.go - Main entry point for the DreamEngine TA translator

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
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

func boilerPlate() {
	fmt.Println("\nDreamEngine - Sega Dreamcast PowerVR2 Tile Accelerator translation.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/DreamEngine")
	fmt.Println("License: GPLv3 or later")
}

func usage() {
	fmt.Println("Usage: dreamengine [-step|-view] capture.tad [out.png]")
	os.Exit(1)
}

func main() {
	boilerPlate()

	args := os.Args[1:]
	mode := ""
	if len(args) > 0 && (args[0] == "-step" || args[0] == "-view") {
		mode = args[0]
		args = args[1:]
	}
	if len(args) < 1 {
		usage()
	}
	captureFile := args[0]
	outFile := "frame.png"
	if len(args) > 1 {
		outFile = args[1]
	}

	f, err := os.Open(captureFile)
	if err != nil {
		fmt.Printf("Error opening capture: %v\n", err)
		os.Exit(1)
	}
	ctx, cache, err := LoadTADump(f)
	f.Close()
	if err != nil {
		fmt.Printf("Error loading capture: %v\n", err)
		os.Exit(1)
	}

	rc := NewTRContext()

	switch mode {
	case "-view":
		backend, err := NewEbitenRenderBackend()
		if err != nil {
			fmt.Printf("Error initializing viewer: %v\n", err)
			os.Exit(1)
		}
		translator := NewTranslator(backend, cache, nil)
		translator.ConvertContext(ctx, rc)
		reportContext(rc)
		if err := RunEbitenViewer(backend, rc, ctx.VideoWidth, ctx.VideoHeight); err != nil {
			fmt.Printf("Viewer error: %v\n", err)
			os.Exit(1)
		}

	case "-step":
		backend := NewSoftwareRenderBackend()
		translator := NewTranslator(backend, cache, nil)
		translator.ConvertContext(ctx, rc)
		reportContext(rc)
		monitor := NewSurfaceMonitor(backend, rc, ctx.VideoWidth, ctx.VideoHeight)
		if err := monitor.Run(); err != nil {
			fmt.Printf("Monitor error: %v\n", err)
			os.Exit(1)
		}

	default:
		backend := NewSoftwareRenderBackend()
		translator := NewTranslator(backend, cache, nil)
		translator.ConvertContext(ctx, rc)
		reportContext(rc)
		RenderContext(backend, rc, ctx.VideoWidth, ctx.VideoHeight)
		if err := writeFramePNG(backend, outFile); err != nil {
			fmt.Printf("Error writing frame: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", outFile)
	}
}

func reportContext(rc *TRContext) {
	fmt.Printf("Converted %d params: %d surfaces, %d vertices, %d indices\n",
		rc.NumParams, rc.NumSurfs, rc.NumVerts, rc.NumIndices)
	for listType := 0; listType < TA_NUM_LISTS; listType++ {
		list := &rc.Lists[listType]
		if list.NumOrigSurfs > 0 {
			fmt.Printf("  list %d: %d surfaces (%d before merging)\n",
				listType, list.NumSurfs, list.NumOrigSurfs)
		}
	}
}

// writeFramePNG saves the rendered frame, upscaled 2x for inspection
func writeFramePNG(backend *SoftwareRenderBackend, path string) error {
	width, height := backend.GetDimensions()
	frame := backend.GetFrame()

	src := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(src.Pix, frame)

	dst := image.NewRGBA(image.Rect(0, 0, width*2, height*2))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
