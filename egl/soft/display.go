// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"sync"

	"github.com/gogpu/renderloop/egl"
)

// displayHandle is the only display handle a Display hands out.
const displayHandle egl.Display = 1

// Display is an in-process EGL implementation. It implements egl.Driver.
//
// A Display owns its windows, contexts and surfaces. EGL keeps the last
// error and the current binding per thread; Display keeps one of each,
// which matches the single render goroutine that drives it.
//
// All methods are safe for concurrent use.
type Display struct {
	name string

	mu          sync.Mutex
	configs     []ConfigDesc
	faults      map[Step]egl.ErrorCode
	initialized bool
	lastErr     egl.ErrorCode
	nextHandle  uintptr

	windows  map[egl.NativeWindow]*Window
	contexts map[egl.ContextHandle]*contextState
	surfaces map[egl.Surface]*surfaceState

	currentCtx  egl.ContextHandle
	currentDraw egl.Surface

	stats Stats
}

type contextState struct {
	config  int
	version int32
}

type surfaceState struct {
	config int
	window *Window
}

// Stats counts the objects a Display created and destroyed.
type Stats struct {
	CreatedContexts   int
	DestroyedContexts int
	CreatedSurfaces   int
	DestroyedSurfaces int
	Swaps             int
	FailedSwaps       int
	MakeCurrentCalls  int
}

// LiveContexts returns contexts created and not yet destroyed.
func (s Stats) LiveContexts() int { return s.CreatedContexts - s.DestroyedContexts }

// LiveSurfaces returns surfaces created and not yet destroyed.
func (s Stats) LiveSurfaces() int { return s.CreatedSurfaces - s.DestroyedSurfaces }

// NewDisplay creates a display with the default config table.
func NewDisplay(opts ...Option) *Display {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Display{
		name:       o.name,
		configs:    o.configs,
		faults:     make(map[Step]egl.ErrorCode),
		lastErr:    egl.Success,
		nextHandle: 0x100,
		windows:    make(map[egl.NativeWindow]*Window),
		contexts:   make(map[egl.ContextHandle]*contextState),
		surfaces:   make(map[egl.Surface]*surfaceState),
	}
	for step, code := range o.faults {
		d.faults[step] = code
	}
	return d
}

// NewWindow creates a native window of the given size.
func (d *Display) NewWindow(width, height int) *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	h := egl.NativeWindow(d.allocHandle())
	w := newWindow(h, width, height)
	d.windows[h] = w
	return w
}

// Window looks up a window by its native handle.
func (d *Display) Window(h egl.NativeWindow) (*Window, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, ok := d.windows[h]
	return w, ok
}

// InjectFault makes every later call at step fail with code until
// ClearFault is called.
func (d *Display) InjectFault(step Step, code egl.ErrorCode) {
	d.mu.Lock()
	d.faults[step] = code
	d.mu.Unlock()
}

// ClearFault removes a fault injected for step.
func (d *Display) ClearFault(step Step) {
	d.mu.Lock()
	delete(d.faults, step)
	d.mu.Unlock()
}

// Stats returns a snapshot of the object counters.
func (d *Display) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Current returns the current context and draw surface.
func (d *Display) Current() (egl.ContextHandle, egl.Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentCtx, d.currentDraw
}

// Terminate destroys every context and surface and returns the display to
// the uninitialized state.
func (d *Display) Terminate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for h := range d.contexts {
		delete(d.contexts, h)
		d.stats.DestroyedContexts++
	}
	for h, s := range d.surfaces {
		s.window.unbind()
		delete(d.surfaces, h)
		d.stats.DestroyedSurfaces++
	}
	d.currentCtx, d.currentDraw = egl.NoContext, egl.NoSurface
	d.initialized = false
}

// Name implements egl.Driver.
func (d *Display) Name() string { return d.name }

// GetDisplay implements egl.Driver.
func (d *Display) GetDisplay() egl.Display {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fault(StepGetDisplay) {
		return egl.NoDisplay
	}
	d.succeed()
	return displayHandle
}

// Initialize implements egl.Driver.
func (d *Display) Initialize(h egl.Display) (int32, int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if h != displayHandle {
		return 0, 0, d.setErr(egl.BadDisplay)
	}
	if d.fault(StepInitialize) {
		return 0, 0, false
	}
	d.initialized = true
	d.succeed()
	return 1, 4, true
}

// ChooseConfig implements egl.Driver.
func (d *Display) ChooseConfig(h egl.Display, attribs []int32, size int) ([]egl.Config, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		return nil, d.setErr(code)
	}
	if d.fault(StepChooseConfig) {
		return nil, false
	}
	want := egl.ParseAttribList(attribs)
	for key := range want {
		if !configKeys[key] {
			return nil, d.setErr(egl.BadAttribute)
		}
	}
	var out []egl.Config
	for i, c := range d.configs {
		if len(out) >= size {
			break
		}
		if c.matches(want) {
			out = append(out, egl.Config(i+1))
		}
	}
	d.succeed()
	return out, true
}

// CreateContext implements egl.Driver.
func (d *Display) CreateContext(h egl.Display, c egl.Config, share egl.ContextHandle, attribs []int32) egl.ContextHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		d.setErr(code)
		return egl.NoContext
	}
	cfg, ok := d.config(c)
	if !ok {
		d.setErr(egl.BadConfig)
		return egl.NoContext
	}
	if share != egl.NoContext {
		if _, ok := d.contexts[share]; !ok {
			d.setErr(egl.BadContext)
			return egl.NoContext
		}
	}
	if d.fault(StepCreateContext) {
		return egl.NoContext
	}

	version := int32(1)
	for key, val := range egl.ParseAttribList(attribs) {
		if key != egl.ContextClientVersion {
			d.setErr(egl.BadAttribute)
			return egl.NoContext
		}
		version = val
	}
	bit, ok := clientBit(version)
	if !ok || cfg.RenderableType&bit == 0 {
		d.setErr(egl.BadConfig)
		return egl.NoContext
	}

	ctx := egl.ContextHandle(d.allocHandle())
	d.contexts[ctx] = &contextState{config: int(c), version: version}
	d.stats.CreatedContexts++
	d.succeed()
	return ctx
}

// CreateWindowSurface implements egl.Driver.
func (d *Display) CreateWindowSurface(h egl.Display, c egl.Config, win egl.NativeWindow) egl.Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		d.setErr(code)
		return egl.NoSurface
	}
	cfg, ok := d.config(c)
	if !ok {
		d.setErr(egl.BadConfig)
		return egl.NoSurface
	}
	if cfg.SurfaceType&egl.WindowBit == 0 {
		d.setErr(egl.BadMatch)
		return egl.NoSurface
	}
	if d.fault(StepCreateWindowSurface) {
		return egl.NoSurface
	}
	w, ok := d.windows[win]
	if !ok {
		d.setErr(egl.BadNativeWindow)
		return egl.NoSurface
	}
	if code := w.bind(cfg); code != egl.Success {
		d.setErr(code)
		return egl.NoSurface
	}

	s := egl.Surface(d.allocHandle())
	d.surfaces[s] = &surfaceState{config: int(c), window: w}
	d.stats.CreatedSurfaces++
	d.succeed()
	return s
}

// MakeCurrent implements egl.Driver.
func (d *Display) MakeCurrent(h egl.Display, draw, read egl.Surface, ctx egl.ContextHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stats.MakeCurrentCalls++
	if h != displayHandle {
		return d.setErr(egl.BadDisplay)
	}
	if ctx == egl.NoContext {
		if draw != egl.NoSurface || read != egl.NoSurface {
			return d.setErr(egl.BadMatch)
		}
		d.currentCtx, d.currentDraw = egl.NoContext, egl.NoSurface
		d.succeed()
		return true
	}
	if !d.initialized {
		return d.setErr(egl.NotInitialized)
	}
	cs, ok := d.contexts[ctx]
	if !ok {
		return d.setErr(egl.BadContext)
	}
	ds, ok := d.surfaces[draw]
	if !ok {
		return d.setErr(egl.BadSurface)
	}
	if _, ok := d.surfaces[read]; !ok {
		return d.setErr(egl.BadSurface)
	}
	if ds.config != cs.config {
		return d.setErr(egl.BadMatch)
	}
	if d.fault(StepMakeCurrent) {
		return false
	}
	d.currentCtx, d.currentDraw = ctx, draw
	d.succeed()
	return true
}

// SwapBuffers implements egl.Driver.
func (d *Display) SwapBuffers(h egl.Display, s egl.Surface) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		d.stats.FailedSwaps++
		return d.setErr(code)
	}
	ss, ok := d.surfaces[s]
	if !ok {
		d.stats.FailedSwaps++
		return d.setErr(egl.BadSurface)
	}
	if d.fault(StepSwapBuffers) {
		d.stats.FailedSwaps++
		return false
	}
	if code := ss.window.present(); code != egl.Success {
		d.stats.FailedSwaps++
		return d.setErr(code)
	}
	d.stats.Swaps++
	d.succeed()
	return true
}

// DestroyContext implements egl.Driver.
func (d *Display) DestroyContext(h egl.Display, ctx egl.ContextHandle) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		return d.setErr(code)
	}
	if _, ok := d.contexts[ctx]; !ok {
		return d.setErr(egl.BadContext)
	}
	delete(d.contexts, ctx)
	if d.currentCtx == ctx {
		d.currentCtx, d.currentDraw = egl.NoContext, egl.NoSurface
	}
	d.stats.DestroyedContexts++
	d.succeed()
	return true
}

// DestroySurface implements egl.Driver.
func (d *Display) DestroySurface(h egl.Display, s egl.Surface) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if code := d.checkDisplay(h); code != egl.Success {
		return d.setErr(code)
	}
	ss, ok := d.surfaces[s]
	if !ok {
		return d.setErr(egl.BadSurface)
	}
	ss.window.unbind()
	delete(d.surfaces, s)
	if d.currentDraw == s {
		d.currentDraw = egl.NoSurface
	}
	d.stats.DestroyedSurfaces++
	d.succeed()
	return true
}

// GetError implements egl.Driver.
func (d *Display) GetError() egl.ErrorCode {
	d.mu.Lock()
	defer d.mu.Unlock()
	code := d.lastErr
	d.lastErr = egl.Success
	return code
}

// The helpers below must be called with d.mu held.

func (d *Display) allocHandle() uintptr {
	d.nextHandle++
	return d.nextHandle
}

func (d *Display) checkDisplay(h egl.Display) egl.ErrorCode {
	if h != displayHandle {
		return egl.BadDisplay
	}
	if !d.initialized {
		return egl.NotInitialized
	}
	return egl.Success
}

func (d *Display) config(c egl.Config) (ConfigDesc, bool) {
	i := int(c) - 1
	if i < 0 || i >= len(d.configs) {
		return ConfigDesc{}, false
	}
	return d.configs[i], true
}

// fault records the injected error for step, if any.
func (d *Display) fault(step Step) bool {
	code, ok := d.faults[step]
	if ok {
		d.lastErr = code
	}
	return ok
}

func (d *Display) setErr(code egl.ErrorCode) bool {
	d.lastErr = code
	return false
}

func (d *Display) succeed() {
	d.lastErr = egl.Success
}
