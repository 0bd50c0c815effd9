// Package loop runs the fixed-FPS Input → Update → Draw cycle of one terminal session.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/trajectory/internal/config"
	"github.com/tomz197/trajectory/internal/draw"
	"github.com/tomz197/trajectory/internal/input"
	"github.com/tomz197/trajectory/internal/logging"
	"github.com/tomz197/trajectory/internal/object"
	"github.com/tomz197/trajectory/internal/sim"
)

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of stdout
	Settings     config.Settings
	Logger       *log.Logger // Nil discards
}

// session holds the per-connection state of the loop.
type session struct {
	sim          *sim.Simulator
	canvas       *draw.Canvas
	renderer     *draw.CanvasRenderer
	chunkWriter  *draw.ChunkWriter
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	running      bool
}

// Run starts the simulation loop with the standard Input → Update → Draw cycle.
// It blocks until the user quits, the input ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s := newSession(r, w, opts)
	defer s.stream.Close()

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
		draw.ClearScreen(w)
	}()
	draw.ClearScreen(w)

	s.logger.Info("session started",
		"cols", s.canvas.TerminalWidth(), "rows", s.canvas.TerminalHeight())

	lastTime := time.Now()
	for s.running {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled")
			return nil
		default:
		}

		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), config.MaxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		s.processInput()

		// ===== UPDATE PHASE =====
		s.updateScreen()
		s.sim.Update(delta)

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	s.logger.Info("session ended")
	return nil
}

func newSession(r *bufio.Reader, w io.Writer, opts Options) *session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(termSizeFunc)
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &session{
		sim:          sim.New(opts.Settings, logger, object.NewScreen(config.ViewWidth, config.ViewHeight)),
		canvas:       canvas,
		renderer:     draw.NewCanvasRenderer(canvas, w),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		stream:       input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		running:      true,
	}
}

// processInput applies all pending events in arrival order.
func (s *session) processInput() {
	for _, ev := range input.ReadInput(s.stream) {
		switch ev.Kind {
		case input.EventKey:
			s.applyKey(ev.Key)
		case input.EventPointer:
			s.applyPointer(ev.Pointer)
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// Every frame starts from a cleared screen, so a resize needs no extra cleanup.
func (s *session) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(s.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.logger.Debug("resize", "cols", renderWidth, "rows", renderHeight)
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), config.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// drawFrame renders the scene and the HUD and writes them out.
func (s *session) drawFrame() error {
	s.renderer.Begin()
	s.sim.Render(s.renderer)
	drawHUD(s.renderer, s.canvas, s.sim.Status())
	return s.renderer.Flush(s.chunkWriter)
}
