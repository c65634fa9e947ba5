// Package window wraps GLFW window and context creation for the render
// loop: it opens an OpenGL 4.1 core context, initializes the GL bindings
// and forwards input events to plain callback funcs.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gl3d"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Config controls window creation.
type Config struct {
	Title  string
	Width  int
	Height int

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
	// Resizable allows the user to resize the window.
	Resizable bool
}

// DefaultConfig returns an 800x600 resizable window with vsync on.
func DefaultConfig() Config {
	return Config{Title: "gl3d", Width: 800, Height: 600, VSync: true, Resizable: true}
}

// Window owns a GLFW window and its OpenGL context.
type Window struct {
	w *glfw.Window

	// Input callbacks, nil until set.
	OnResize      func(width, height int)
	OnKey         func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	OnCursorMove  func(x, y float64)
	OnScroll      func(dx, dy float64)
	OnMouseButton func(button glfw.MouseButton, action glfw.Action)
}

// New initializes GLFW, opens a window with a 4.1 core context, makes
// the context current and initializes the GL bindings. Must be called
// from the main goroutine.
func New(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gl3d: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl3d: create window: %w", err)
	}
	gw.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		gw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl3d: init gl: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	win := &Window{w: gw}
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		if win.OnResize != nil {
			win.OnResize(width, height)
		}
	})
	gw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if win.OnKey != nil {
			win.OnKey(key, action, mods)
		}
	})
	gw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if win.OnCursorMove != nil {
			win.OnCursorMove(x, y)
		}
	})
	gw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if win.OnScroll != nil {
			win.OnScroll(dx, dy)
		}
	})
	gw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if win.OnMouseButton != nil {
			win.OnMouseButton(button, action)
		}
	})

	gl3d.Logger().Info("window opened",
		"title", cfg.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))
	return win, nil
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() (width, height int) {
	return w.w.GetSize()
}

// FramebufferSize returns the framebuffer size in pixels. On high-DPI
// displays this differs from Size.
func (w *Window) FramebufferSize() (width, height int) {
	return w.w.GetFramebufferSize()
}

// CursorPos returns the cursor position in screen coordinates.
func (w *Window) CursorPos() (x, y float64) {
	return w.w.GetCursorPos()
}

// MouseDown reports whether the given mouse button is pressed.
func (w *Window) MouseDown(button glfw.MouseButton) bool {
	return w.w.GetMouseButton(button) == glfw.Press
}

// ShouldClose reports whether the user asked the window to close.
func (w *Window) ShouldClose() bool { return w.w.ShouldClose() }

// SetShouldClose marks the window for closing.
func (w *Window) SetShouldClose(v bool) { w.w.SetShouldClose(v) }

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() { w.w.SwapBuffers() }

// PollEvents processes pending input events and runs callbacks.
func (w *Window) PollEvents() { glfw.PollEvents() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.w.Destroy()
	glfw.Terminate()
}
