// Package scene holds the pure state transitions behind both canvas
// variants. Models are immutable values; stepping a model with a message
// returns the next model plus the commands the driver must execute.
// Nothing in this package touches time, randomness or I/O.
package scene

import (
	"shape-studio/services/generator"
	"shape-studio/services/types"
)

// Msg is a discrete event fed into a model's transition function.
type Msg interface {
	isMsg()
}

// TickMsg is delivered by the driver once per spawn interval.
type TickMsg struct{}

// ShapeMsg delivers a generated shape back into the model.
type ShapeMsg struct {
	Shape types.Shape
}

// ToggleMsg flips the studio's start/stop flag.
type ToggleMsg struct{}

// ClearMsg empties the shape list, leaving everything else untouched.
type ClearMsg struct{}

// SetWidthMsg carries the raw text of the canvas width input.
type SetWidthMsg struct{ Raw string }

// SetHeightMsg carries the raw text of the canvas height input.
type SetHeightMsg struct{ Raw string }

// SetMinSideMsg carries the raw text of the minimum side input.
type SetMinSideMsg struct{ Raw string }

// SetMaxSideMsg carries the raw text of the maximum side input.
type SetMaxSideMsg struct{ Raw string }

func (TickMsg) isMsg()       {}
func (ShapeMsg) isMsg()      {}
func (ToggleMsg) isMsg()     {}
func (ClearMsg) isMsg()      {}
func (SetWidthMsg) isMsg()   {}
func (SetHeightMsg) isMsg()  {}
func (SetMinSideMsg) isMsg() {}
func (SetMaxSideMsg) isMsg() {}

// Command is an external effect a transition requests from the driver.
// The driver performs it and feeds the result back as a new Msg.
type Command interface {
	isCommand()
}

// GenerateCommand asks the driver for one random shape within Bounds.
// Its result arrives as a ShapeMsg.
type GenerateCommand struct {
	Bounds generator.Bounds
}

func (GenerateCommand) isCommand() {}

// prepend puts a shape at the front of the list, newest first.
func prepend(shapes []types.Shape, s types.Shape) []types.Shape {
	next := make([]types.Shape, 0, len(shapes)+1)
	next = append(next, s)
	return append(next, shapes...)
}
