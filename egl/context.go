// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

// Context owns an EGL display, config, rendering context and window
// surface, bound together and made current on the initializing thread.
//
// A Context is only ever handed out by a successful Initialize, and stays
// valid until Teardown. It is not safe for concurrent use: every method
// must be called from the goroutine (and OS thread) that initialized it.
type Context struct {
	driver  Driver
	display Display
	config  Config
	context ContextHandle
	surface Surface

	major, minor int32
}

// Initialize creates a rendering context for win and makes it current on
// the calling thread.
//
// Steps run in EGL order: get display, initialize, choose config, create
// context, create window surface, make current. On failure the returned
// *Error names the failing step and carries the driver's error code, and
// every handle acquired by earlier steps has been released.
func Initialize(drv Driver, win NativeWindow, opts ...Option) (*Context, error) {
	if drv == nil {
		return nil, ErrNilDriver
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{driver: drv}
	log := Logger().With("driver", drv.Name())

	c.display = drv.GetDisplay()
	if c.display == NoDisplay {
		return nil, c.fail(KindDisplayUnavailable)
	}

	major, minor, ok := drv.Initialize(c.display)
	if !ok {
		return nil, c.fail(KindInitFailed)
	}
	c.major, c.minor = major, minor
	log.Debug("egl: display initialized", "version_major", major, "version_minor", minor)

	configs, ok := drv.ChooseConfig(c.display, o.attribs.ConfigList(), 1)
	if !ok || len(configs) == 0 {
		return nil, c.fail(KindConfigUnavailable)
	}
	c.config = configs[0]

	c.context = drv.CreateContext(c.display, c.config, NoContext, o.attribs.ContextList())
	if c.context == NoContext {
		return nil, c.fail(KindContextCreationFailed)
	}

	c.surface = drv.CreateWindowSurface(c.display, c.config, win)
	if c.surface == NoSurface {
		return nil, c.fail(KindSurfaceCreationFailed)
	}

	if !drv.MakeCurrent(c.display, c.surface, c.surface, c.context) {
		return nil, c.fail(KindMakeCurrentFailed)
	}

	log.Debug("egl: context current", "config", uint64(c.config), "window", uint64(win))
	return c, nil
}

// fail reads the pending error code, releases whatever was acquired so far
// and returns the step error.
func (c *Context) fail(kind Kind) error {
	err := &Error{Kind: kind, Code: c.driver.GetError(), Driver: c.driver.Name()}
	c.release()
	Logger().Debug("egl: initialize failed", "step", kind.String(), "code", err.Code.String())
	return err
}

// IsValid reports whether c holds a live context and surface.
func (c *Context) IsValid() bool {
	return c != nil && c.context != NoContext && c.surface != NoSurface
}

// Version returns the EGL version reported by the display.
func (c *Context) Version() (major, minor int32) {
	if c == nil {
		return 0, 0
	}
	return c.major, c.minor
}

// Display returns the display handle, or NoDisplay once torn down.
func (c *Context) Display() Display {
	if !c.IsValid() {
		return NoDisplay
	}
	return c.display
}

// Surface returns the window surface handle, or NoSurface once torn down.
func (c *Context) Surface() Surface {
	if !c.IsValid() {
		return NoSurface
	}
	return c.surface
}

// Handle returns the rendering context handle, or NoContext once torn down.
func (c *Context) Handle() ContextHandle {
	if !c.IsValid() {
		return NoContext
	}
	return c.context
}

// SwapBuffers presents the back buffer.
// The error is informational: a failed swap leaves the context usable.
func (c *Context) SwapBuffers() error {
	if !c.IsValid() {
		return ErrContextInvalid
	}
	if !c.driver.SwapBuffers(c.display, c.surface) {
		return &SwapError{Code: c.driver.GetError()}
	}
	return nil
}

// Teardown unbinds and destroys the context and surface and resets both
// handles to their sentinels. It is safe on a nil Context and on one that
// was already torn down; both are no-ops.
func (c *Context) Teardown() {
	if c == nil || c.driver == nil {
		return
	}
	c.release()
}

func (c *Context) release() {
	drv := c.driver
	log := Logger()

	if c.display != NoDisplay && (c.context != NoContext || c.surface != NoSurface) {
		// Unbinding is best effort; the context may never have been current.
		drv.MakeCurrent(c.display, NoSurface, NoSurface, NoContext)
	}
	if c.context != NoContext {
		if !drv.DestroyContext(c.display, c.context) {
			log.Warn("egl: destroy context failed", "code", drv.GetError().String())
		}
		c.context = NoContext
	}
	if c.surface != NoSurface {
		if !drv.DestroySurface(c.display, c.surface) {
			log.Warn("egl: destroy surface failed", "code", drv.GetError().String())
		}
		c.surface = NoSurface
	}
	c.config = NoConfig
}
