package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/trajectory/internal/config"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 100, 40, 100, 40, 0, 0},
		{"too wide", 260, 40, config.MaxTermWidth, 40, 30, 0},
		{"too tall", 100, 80, 100, config.MaxTermHeight, 0, 10},
		{"empty", 0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := clampTermSize(tt.w, tt.h)
			if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
				t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d, want %d, %d, %d, %d",
					tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestRunAppliesInputUntilQuit(t *testing.T) {
	// Authoring on, draw one block with the mouse, launch once, then quit
	in := "b" +
		"\x1b[<0;11;11M" +
		"\x1b[<32;30;20M" +
		"\x1b[<0;41;31m" +
		" " +
		"q"

	var out bytes.Buffer
	err := Run(context.Background(), bufio.NewReader(strings.NewReader(in)), &out, Options{
		TermSizeFunc: fixedSize(100, 40),
		Settings:     config.Default(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "\033[?1006h") || !strings.Contains(got, "\033[?1006l") {
		t.Error("mouse reporting not enabled and disabled")
	}
	if !strings.Contains(got, "balls 1/1  blocks 1") {
		t.Errorf("final HUD does not show one ball and one block")
	}
	if !strings.HasSuffix(got, "\033[H\033[2J") {
		t.Error("screen not cleared on exit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{
			TermSizeFunc: fixedSize(80, 24),
			Settings:     config.Default(),
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
