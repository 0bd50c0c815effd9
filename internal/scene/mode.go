package scene

import "github.com/tomz197/trajectory/internal/object"

// Mode is the pointer interaction state. Exactly one variant is active at a time.
type Mode interface {
	// String names the mode for the HUD.
	String() string
	mode()
}

// Idle waits for the next pointer press.
type Idle struct{}

// DraggingOutlet moves the outlet with the pointer.
type DraggingOutlet struct{}

// RotatingAngle aims the outlet at the pointer.
type RotatingAngle struct{}

// DrawingBlock spans a preview block between the anchor and the pointer.
type DrawingBlock struct {
	AnchorX, AnchorY float64
	Preview          object.Block
}

// DraggingBlock keeps the bound block centered on the pointer.
type DraggingBlock struct {
	Block *object.Block
}

func (Idle) mode()           {}
func (DraggingOutlet) mode() {}
func (RotatingAngle) mode()  {}
func (DrawingBlock) mode()   {}
func (DraggingBlock) mode()  {}

func (Idle) String() string           { return "idle" }
func (DraggingOutlet) String() string { return "move outlet" }
func (RotatingAngle) String() string  { return "aim" }
func (DrawingBlock) String() string   { return "draw block" }
func (DraggingBlock) String() string  { return "move block" }
