// internal/component/movement.go
package component

// Position центр сущности в мировых координатах
type Position struct {
	X, Y float64
}

// Velocity скорость в пикселях в секунду
type Velocity struct {
	X, Y float64
}

// Gravity ускорение по Y; есть только у мяча
type Gravity struct {
	Y float64
}
