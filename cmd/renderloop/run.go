// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/renderloop"
	"github.com/gogpu/renderloop/egl"
	"github.com/gogpu/renderloop/egl/soft"
	"github.com/gogpu/renderloop/host"
	"github.com/gogpu/renderloop/skeleton"
)

// closeTimeout bounds how long run waits for the worker after the surface
// is destroyed.
const closeTimeout = 5 * time.Second

type runOptions struct {
	configPath string
	duration   time.Duration
	out        string
	scale      float64
	width      int
	height     int
	verbose    bool
}

type runResult struct {
	stats   renderloop.Stats
	elapsed time.Duration
	frame   *image.RGBA
	loopErr error
}

// runScene plays the UI thread's part: it creates a window, reports it as
// available, lets the loop render for the requested duration, destroys the
// surface and waits for the worker to finish.
func runScene(ctx context.Context, o runOptions) (runResult, error) {
	if o.width <= 0 || o.height <= 0 {
		return runResult{}, fmt.Errorf("surface size must be positive, got %dx%d", o.width, o.height)
	}
	if o.scale <= 0 {
		return runResult{}, fmt.Errorf("scale must be > 0, got %v", o.scale)
	}

	cfg := skeleton.Defaults()
	if o.configPath != "" {
		loaded, err := skeleton.LoadFile(o.configPath)
		if err != nil {
			return runResult{}, err
		}
		cfg = *loaded
	}

	// egl.Open("soft") hands out the shared display, so the window must
	// live there too.
	win := soft.Default().NewWindow(o.width, o.height)
	h := host.New(func(egl.NativeWindow, int, int) (renderloop.Renderer, error) {
		return skeleton.New(win, cfg), nil
	}, host.WithLoopOptions(renderloop.WithDriverName("soft")))

	start := time.Now()
	if err := h.SurfaceAvailable(win.Handle(), o.width, o.height); err != nil {
		return runResult{}, err
	}
	loop, _ := h.Loop(win.Handle())

	timer := time.NewTimer(o.duration)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	case <-loop.Done():
	}

	h.SurfaceDestroyed(win.Handle())
	win.Release()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	closeErr := h.Close(closeCtx)
	if errors.Is(closeErr, context.DeadlineExceeded) {
		return runResult{}, closeErr
	}

	res := runResult{
		stats:   loop.Stats(),
		elapsed: time.Since(start),
		frame:   win.Snapshot(),
		loopErr: loop.Err(),
	}
	if res.loopErr != nil {
		return res, res.loopErr
	}
	if o.out != "" {
		if err := writePNG(o.out, res.frame, o.scale); err != nil {
			return res, err
		}
	}
	return res, nil
}

// writePNG encodes img to path, resampled by scale.
func writePNG(path string, img image.Image, scale float64) error {
	if scale != 1 {
		b := img.Bounds()
		w := max(1, int(float64(b.Dx())*scale))
		h := max(1, int(float64(b.Dy())*scale))
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func printResult(w io.Writer, o runOptions, res runResult) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Frames:        %d\n", res.stats.Frames)
	p.Fprintf(w, "Elapsed:       %v\n", res.elapsed.Round(time.Millisecond))
	p.Fprintf(w, "Average FPS:   %.1f\n", averageFPS(res.stats.Frames, res.elapsed))
	p.Fprintf(w, "Swap failures: %d\n", res.stats.SwapFailures)
	p.Fprintf(w, "Time slept:    %v\n", res.stats.Slept.Round(time.Millisecond))
	if o.out != "" {
		b := res.frame.Bounds()
		p.Fprintf(w, "Wrote %s (%dx%d, scale %.2f)\n", o.out, b.Dx(), b.Dy(), o.scale)
	}
}

func averageFPS(frames uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}
