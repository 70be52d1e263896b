package ebitenrun

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hynessight/tweener"
)

// Sprite is an image placed by a tweener.Node3D. The node's world X and Y are
// screen pixels, its Z rotation is the on-screen angle, and its X and Y scale
// stretch the image around its center. It implements tweener.Transform
// through the node and tweener.Graphic through SetColor.
type Sprite struct {
	*tweener.Node3D
	Image *ebiten.Image

	color      tweener.Color
	colorScale ebiten.ColorScale
}

// NewSprite creates a white-tinted sprite drawing img.
func NewSprite(name string, img *ebiten.Image) *Sprite {
	s := &Sprite{Node3D: tweener.NewNode3D(name), Image: img}
	s.SetColor(tweener.ColorWhite)
	return s
}

// SetColor tints the sprite.
func (s *Sprite) SetColor(c tweener.Color) {
	s.color = c
	s.colorScale = colorScaleOf(c)
}

// Color returns the current tint.
func (s *Sprite) Color() tweener.Color {
	return s.color
}

// ColorScale returns the tint in the premultiplied form ebiten draws with.
func (s *Sprite) ColorScale() ebiten.ColorScale {
	return s.colorScale
}

// Draw renders the sprite onto dst. Disposed sprites and sprites without an
// image draw nothing.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if s.Image == nil || !s.Alive() {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = geoMOf(s.Node3D, s.Image)
	op.ColorScale.ScaleWithColorScale(s.colorScale)
	dst.DrawImage(s.Image, &op)
}

// LayeredSprite stacks several images on one node, each layer with its own
// tint. It implements tweener.Renderer with one material slot per layer.
type LayeredSprite struct {
	*tweener.Node3D
	Layers []*ebiten.Image

	colors      []tweener.Color
	colorScales []ebiten.ColorScale
}

// NewLayeredSprite creates a sprite with one white-tinted layer per image,
// drawn in order.
func NewLayeredSprite(name string, layers ...*ebiten.Image) *LayeredSprite {
	s := &LayeredSprite{
		Node3D:      tweener.NewNode3D(name),
		Layers:      layers,
		colors:      make([]tweener.Color, len(layers)),
		colorScales: make([]ebiten.ColorScale, len(layers)),
	}
	for i := range layers {
		s.SetMaterialColor(i, tweener.ColorWhite)
	}
	return s
}

// SetMaterialColor tints layer index. Out-of-range indexes are ignored.
func (s *LayeredSprite) SetMaterialColor(index int, c tweener.Color) {
	if index < 0 || index >= len(s.colors) {
		return
	}
	s.colors[index] = c
	s.colorScales[index] = colorScaleOf(c)
}

// MaterialColor returns the tint of layer index, or the zero Color when out
// of range.
func (s *LayeredSprite) MaterialColor(index int) tweener.Color {
	if index < 0 || index >= len(s.colors) {
		return tweener.Color{}
	}
	return s.colors[index]
}

// Draw renders every layer onto dst.
func (s *LayeredSprite) Draw(dst *ebiten.Image) {
	if !s.Alive() {
		return
	}
	for i, img := range s.Layers {
		if img == nil {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM = geoMOf(s.Node3D, img)
		op.ColorScale.ScaleWithColorScale(s.colorScales[i])
		dst.DrawImage(img, &op)
	}
}

func colorScaleOf(c tweener.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	return cs
}

// geoMOf projects n onto the screen plane, pivoting img around its center.
func geoMOf(n *tweener.Node3D, img *ebiten.Image) ebiten.GeoM {
	b := img.Bounds()
	pos := n.Position(tweener.SpaceWorld)
	rot := n.EulerAngles(tweener.SpaceWorld)
	scale := n.LocalScale()

	var g ebiten.GeoM
	g.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	g.Scale(scale[0], scale[1])
	g.Rotate(mgl64.DegToRad(rot[2]))
	g.Translate(pos[0], pos[1])
	return g
}
