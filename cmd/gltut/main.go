// Command gltut opens a window and renders a clear color or a triangle
// into it every frame.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"
	"github.com/xlab/closer"
	"golang.org/x/image/colornames"

	"github.com/gogpu/gltut"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width     = flag.Int("width", 800, "window width")
		height    = flag.Int("height", 600, "window height")
		backend   = flag.String("backend", "vulkan", "graphics backend: vulkan or noop")
		modeName  = flag.String("mode", "draw", "render mode: clear or draw")
		clearName = flag.String("clear", "cornflowerblue", "clear color name (clear mode)")
		present   = flag.String("present", "fifo", "present mode: fifo, mailbox or immediate")
		fallback  = flag.Bool("fallback", false, "force a software adapter")
		frames    = flag.Int("frames", 0, "exit after this many frames (0 = until closed)")
		verbose   = flag.Bool("v", false, "log per-frame diagnostics")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	gltut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	be, err := gltut.ParseBackend(*backend)
	if err != nil {
		log.Fatalf("gltut: %v", err)
	}
	mode, err := gltut.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("gltut: %v", err)
	}
	pm, err := gltut.ParsePresentMode(*present)
	if err != nil {
		log.Fatalf("gltut: %v", err)
	}
	clearColor, err := parseColor(*clearName)
	if err != nil {
		log.Fatalf("gltut: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("gltut: init glfw: %v", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := openWindow(*width, *height, "gltut")
	if err != nil {
		glfw.Terminate()
		log.Fatalf("gltut: %v", err)
	}

	if be == gltut.BackendVulkan {
		exts, err := vulkanPreflight(win)
		if err != nil {
			win.destroy()
			glfw.Terminate()
			log.Fatalf("gltut: %v", err)
		}
		gltut.Logger().Debug("gltut: vulkan loader ready", "instance_extensions", len(exts))
	}

	r, err := gltut.New(win,
		gltut.WithBackend(be),
		gltut.WithPresentMode(pm),
		gltut.WithForceFallbackAdapter(*fallback),
	)
	if err != nil {
		win.destroy()
		glfw.Terminate()
		log.Fatalf("gltut: create renderer: %v", err)
	}
	log.Printf("gltut: %s on %s, %s", mode, r.Info(), r.Format())

	win.onResize(func(w, h int) {
		if err := r.Resize(w, h); err != nil {
			log.Printf("gltut: resize: %v", err)
		}
	})

	var (
		quit atomic.Bool
		done = make(chan struct{})
	)
	// On SIGINT the closer goroutine asks the loop to stop and waits for
	// teardown to finish on the main thread.
	closer.Bind(func() {
		select {
		case <-done:
			return
		default:
		}
		quit.Store(true)
		<-done
	})

	runErr := run(r, win, mode, clearColor, *frames, &quit)

	// Renderer first: the surface must not outlive the window.
	r.Destroy()
	win.destroy()
	glfw.Terminate()
	close(done)

	if runErr != nil {
		closer.Fatalln("gltut:", runErr)
	}
	closer.Close()
}

func run(r *gltut.Renderer, win *window, mode gltut.Mode, clearColor gputypes.Color, limit int, quit *atomic.Bool) error {
	start := time.Now()
	var n int
	for !win.shouldClose() && !quit.Load() {
		glfw.PollEvents()
		if win.shouldClose() {
			break
		}
		if err := r.RenderFrame(mode, clearColor); err != nil {
			return err
		}
		n++
		if limit > 0 && n >= limit {
			break
		}
	}
	stats := r.Stats()
	elapsed := time.Since(start)
	log.Printf("gltut: %d presented, %d skipped in %v (%.1f fps)",
		stats.Presented, stats.Skipped, elapsed.Round(time.Millisecond),
		float64(stats.Presented)/elapsed.Seconds())
	return nil
}

// parseColor resolves an SVG 1.1 color name.
func parseColor(name string) (gputypes.Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return gputypes.Color{}, fmt.Errorf("unknown color %q", name)
	}
	return gltut.ColorFrom(color.Color(c)), nil
}
