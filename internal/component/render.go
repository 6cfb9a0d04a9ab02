// internal/component/render.go
package component

import "image/color"

// Renderable цвет и радиус круга для отрисовки
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
