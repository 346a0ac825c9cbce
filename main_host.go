package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"gldemo/app"
	"gldemo/demo"
	"gldemo/hal"
	"gldemo/internal/buildinfo"
)

func main() {
	var hc hal.HeadlessConfig
	var cfg app.Config
	var win hal.Config
	var useGL, list, version bool
	var depth string
	flag.StringVar(&cfg.Demo, "demo", "16", "Demo to run (see -list).")
	flag.BoolVar(&list, "list", false, "List the demos and exit.")
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&hc.Unpaced, "unpaced", false, "Step as fast as possible in headless mode.")
	flag.IntVar(&hc.Hz, "hz", 60, "Frame rate; also converts static demo hold times into frames.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = until the demo ends).")
	flag.IntVar(&cfg.Frames, "frames", 0, "Override the demo's frame count.")
	flag.BoolVar(&useGL, "gl", false, "Draw through OpenGL 2.1 (needs a glfw-tagged build).")
	flag.StringVar(&cfg.Pipeline, "pipeline", "", "Force the transform pipeline: legacy or uniform.")
	flag.StringVar(&depth, "depth", "auto", "Depth test: auto, on or off.")
	flag.StringVar(&cfg.ScenePath, "scene", "", "YAML file overriding the demo's scene.")
	flag.StringVar(&cfg.Dump, "dump", "", "Write the last frame to this PNG file.")
	flag.BoolVar(&cfg.HUD, "hud", true, "Draw the overlay in software mode.")
	flag.BoolVar(&cfg.Verbose, "v", false, "Debug logging.")
	flag.IntVar(&win.Width, "width", 640, "Viewport width.")
	flag.IntVar(&win.Height, "height", 480, "Viewport height.")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if list {
		for _, id := range demo.IDs() {
			d, _ := demo.Lookup(id)
			fmt.Printf("%-5s %-14s %s\n", id, d.Program, d.Title)
		}
		return
	}

	var err error
	if cfg.Depth, err = app.ParseDepthMode(depth); err != nil {
		fail(err)
	}
	cfg.Hz = hc.Hz
	win.Hz = hc.Hz
	win.Title = "gldemo " + cfg.Demo
	newApp := func(h hal.HAL) (func() error, error) { return app.New(h, cfg) }

	switch {
	case hc.Enabled:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, win, newApp, hc)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	case useGL:
		err = hal.RunGL(win, newApp)
	default:
		err = hal.RunWindow(win, newApp)
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
	os.Exit(1)
}
