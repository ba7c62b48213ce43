// Command gen renders sample windows with the OpenGL backend, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *mui.Context) // declares the windows
	frames int                    // frames to run before capturing (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot, so
	// only the projection changes.
	renderer.Resize(s.width, s.height)

	// Fresh GUI per screenshot so no window state leaks between captures.
	ui := mui.New(renderer,
		mui.WithStyle(mui.GTAStyle()),
		mui.WithTextMeasurer(mui.MonospaceMeasurer{CharWidth: opengl.CharWidth, LineHeight: opengl.LineHeight}),
	)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		s.draw(ui.Begin())
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns every screenshot to generate.
func buildScreenshots() []screenshot {
	var (
		name    = "Carl Johnson"
		volume  = float32(0.65)
		speed   = float32(1.5)
		checked = true
		lines   = make([]string, 200)
	)
	for i := range lines {
		lines[i] = fmt.Sprintf("Line %d: scrollable content", i+1)
	}

	return []screenshot{
		{
			name: "basic_window", width: 400, height: 300,
			draw: func(ctx *mui.Context) {
				if ctx.BeginWindow("Basic Window", mui.NewRect(50, 50, 300, 200)) {
					ctx.LayoutRow([]float32{80, mui.Fill}, 0)
					ctx.Label("Label:")
					ctx.Button("Click Me")
					ctx.EndWindow()
				}
			},
		},
		{
			name: "popup", width: 500, height: 400, frames: 3,
			draw: func(ctx *mui.Context) {
				if ctx.BeginWindow("Popup Dialog", mui.NewRect(50, 50, 400, 300)) {
					ctx.LayoutRow([]float32{mui.Fill}, 0)
					ctx.Label("Click the button to open a popup:")
					ctx.Button("Open Popup")
					if !ctx.PopupOpen("My Popup") && ctx.Frame() == 1 {
						ctx.OpenPopup("My Popup")
						ctx.Container("My Popup").Rect = mui.NewRect(150, 150, 0, 0)
					}
					if ctx.BeginPopup("My Popup") {
						ctx.LayoutRow([]float32{mui.Fill}, 0)
						ctx.Label("This is a popup dialog!")
						ctx.Button("Close")
						ctx.EndPopup()
					}
					ctx.EndWindow()
				}
			},
		},
		{
			name: "widgets", width: 400, height: 220,
			draw: func(ctx *mui.Context) {
				if ctx.BeginWindow("Widgets", mui.NewRect(10, 10, 380, 200), mui.NoClose()) {
					ctx.LayoutRow([]float32{90, mui.Fill}, 0)
					ctx.Label("Name:")
					ctx.Textbox("name", &name)
					ctx.Label("Volume:")
					ctx.Slider("volume", &volume, 0, 1)
					ctx.Label("Speed:")
					ctx.Number("speed", &speed, 0.1, mui.WithFormat("%.1f"))
					ctx.LayoutRow([]float32{mui.Fill}, 0)
					ctx.Checkbox("VSync", &checked)
					ctx.LayoutRow([]float32{mui.Fill, mui.Fill, mui.Fill}, 0)
					ctx.Button("Left", mui.WithAlign(mui.AlignLeft))
					ctx.Button("Center")
					ctx.Button("Right", mui.WithAlign(mui.AlignRight))
					ctx.EndWindow()
				}
			},
		},
		{
			name: "tree", width: 400, height: 260,
			draw: func(ctx *mui.Context) {
				if ctx.BeginWindow("Tree", mui.NewRect(10, 10, 380, 240), mui.NoClose()) {
					if ctx.Header("Open Header", mui.DefaultOpen()) {
						ctx.Text("Visible content inside the header.")
					}
					ctx.Header("Closed Header")
					if ctx.BeginTreeNode("Root", mui.DefaultOpen()) {
						ctx.Label("Child 1")
						if ctx.BeginTreeNode("Child 2", mui.DefaultOpen()) {
							ctx.Label("Nested item A")
							ctx.Label("Nested item B")
							ctx.EndTreeNode()
						}
						ctx.EndTreeNode()
					}
					ctx.EndWindow()
				}
			},
		},
		{
			name: "scroll", width: 400, height: 260, frames: 3,
			draw: func(ctx *mui.Context) {
				if ctx.BeginWindow("Log", mui.NewRect(10, 10, 380, 240), mui.NoClose()) {
					ctx.LayoutRow([]float32{mui.Fill}, -1)
					if ctx.BeginPanel("lines") {
						clip := ctx.BeginListClipper(len(lines), ctx.TextHeight())
						for i := clip.StartIdx; i < clip.EndIdx; i++ {
							ctx.Label(lines[i])
						}
						clip.End()
						ctx.EndPanel()
					}
					ctx.EndWindow()
				}
			},
		},
	}
}
