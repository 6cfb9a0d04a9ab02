// internal/component/camera.go
package component

// Camera поворачивает весь игровой мир вокруг центра экрана.
type Camera struct {
	Rotation float64 // радианы, накапливается без нормализации
}

func (c *Camera) SetRotation(radians float64) {
	c.Rotation = radians
}
