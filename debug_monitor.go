// debug_monitor.go - Interactive Surface Stepper

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
debug_monitor.go - Surface Step Monitor

Single-steps a converted context one surface at a time by advancing the
end-surface sentinel through RenderContextUntil. The terminal is switched
to raw mode so each keypress acts immediately:

	space/n  draw one more surface
	r        restart from the first surface
	f        finish the frame
	q        quit

After each step the monitor prints the surface's list, render state and
triangle count, mirroring the trace records the translator writes.
*/

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// SurfaceMonitor steps a backend through one converted frame
type SurfaceMonitor struct {
	backend RenderBackend
	rc      *TRContext
	width   int
	height  int
	endSurf int
}

func NewSurfaceMonitor(backend RenderBackend, rc *TRContext, width, height int) *SurfaceMonitor {
	return &SurfaceMonitor{
		backend: backend,
		rc:      rc,
		width:   width,
		height:  height,
	}
}

// Run drives the stepper until the user quits or the frame completes
func (m *SurfaceMonitor) Run() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return &RenderError{Operation: "monitor", Details: "raw terminal", Err: err}
	}
	defer term.Restore(fd, oldState)

	total := renderSurfCount(m.rc)
	fmt.Printf("stepping %d surfaces; space steps, r restarts, f finishes, q quits\r\n", total)

	buf := make([]byte, 1)
	for {
		RenderContextUntil(m.backend, m.rc, m.width, m.height, m.endSurf)
		m.printStatus(total)

		if _, err := os.Stdin.Read(buf); err != nil {
			return &RenderError{Operation: "monitor", Details: "stdin", Err: err}
		}
		switch buf[0] {
		case ' ', 'n':
			if m.endSurf < total-1 {
				m.endSurf++
			}
		case 'r':
			m.endSurf = 0
		case 'f':
			m.endSurf = total - 1
		case 'q', 3: // q or ctrl-c
			fmt.Printf("\r\n")
			return nil
		}
	}
}

func (m *SurfaceMonitor) printStatus(total int) {
	surf, listType := m.surfAt(m.endSurf)
	if surf == nil {
		fmt.Printf("surface -/%d\r\n", total)
		return
	}
	p := &surf.Params
	fmt.Printf("surface %d/%d list=%d tris=%d depth=%d write=%v cull=%d blend=%d/%d tex=%d\r\n",
		m.endSurf+1, total, listType, surf.NumVerts/3,
		p.DepthFunc, p.DepthWrite, p.Cull, p.SrcBlend, p.DstBlend, p.Texture)
}

// surfAt resolves a running surface index in draw order
func (m *SurfaceMonitor) surfAt(n int) (*Surface, int) {
	for _, listType := range renderListOrder {
		list := &m.rc.Lists[listType]
		if n < list.NumSurfs {
			return &m.rc.Surfs[list.Surfs[n]], listType
		}
		n -= list.NumSurfs
	}
	return nil, TA_LIST_NONE
}
