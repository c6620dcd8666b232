// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system opens GLFW windows with a current OpenGL context.
package system

import (
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"lugl.org/lugl/base/errors"
	"lugl.org/lugl/gpu"
	"lugl.org/lugl/gpu/glgpu"
)

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

// WindowOptions are the options for [NewWindow].
type WindowOptions struct {
	// Title is the window title.
	Title string

	// Size is the window size in screen coordinates.
	Size image.Point

	// Fullscreen makes the window fullscreen on the primary monitor.
	Fullscreen bool

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}

// Window is a GLFW window whose OpenGL context is current
// on the thread that created it.
type Window struct {
	Glw *glfw.Window

	gpu *glgpu.Backend
}

// NewWindow initializes GLFW, opens a window with an OpenGL 4.1 core
// context, makes the context current and loads the OpenGL functions.
// It must be called from the main goroutine.
func NewWindow(opts WindowOptions) (*Window, error) {
	if opts.Size.X <= 0 || opts.Size.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("system.NewWindow: invalid size %v", opts.Size))
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(fmt.Errorf("system.NewWindow: initializing GLFW: %w", err))
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var mon *glfw.Monitor
	if opts.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, mon, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("system.NewWindow: creating window: %w", err))
	}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	}
	if err := glgpu.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("system.NewWindow: initializing OpenGL: %w", err))
	}
	slog.Info("system.NewWindow: opened", "title", opts.Title, "size", opts.Size, "fullscreen", opts.Fullscreen, "gl", glgpu.Version())
	return &Window{Glw: glw, gpu: &glgpu.Backend{}}, nil
}

// GPU returns the graphics backend for the window context.
func (w *Window) GPU() gpu.Backend {
	return w.gpu
}

// ShouldClose returns whether the user has asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

// SwapBuffers shows the frame that was drawn.
func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the size of the drawable area in pixels.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.Glw.GetFramebufferSize()
	return image.Pt(x, y)
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Glw.Destroy()
	glfw.Terminate()
}
