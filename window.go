package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"wirecube/internal/config"
	"wirecube/internal/frame"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

// runWindow opens the window and ticks the cube once per display refresh
// until the window is closed or ctx is cancelled.
func runWindow(ctx context.Context, cfg config.Config, opts frame.Options) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	// one buffer swap per display refresh
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	surface, err := newGLSurface(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer surface.Delete()

	updater := frame.NewUpdater(surface, opts)
	sched := &frame.ManualScheduler{}
	if err := updater.Start(sched); err != nil {
		return err
	}
	present(window, surface)

	lastFpsTime := glfw.GetTime()
	frameCount := 0

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			updater.Stop()
		}

		// FPS Counter Update (every 1 second)
		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frameCount))
			frameCount = 0
			lastFpsTime = currentTime
		}

		ran, err := sched.Step()
		if err != nil {
			return err
		}
		if !ran {
			break
		}
		present(window, surface)
	}
	updater.Stop()
	return nil
}

func present(window *glfw.Window, surface *glSurface) {
	surface.Flush()
	window.SwapBuffers()
	glfw.PollEvents()
}
