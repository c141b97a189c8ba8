package component

import (
	"zombie-dash/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 11

// Renderable carries drawing hints. Nothing in the simulation reads it.
type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	RenderOrder int // higher is drawn later
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
