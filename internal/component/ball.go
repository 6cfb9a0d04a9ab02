// internal/component/ball.go
package component

// Ball игрок. Crashed ставится один раз и больше не снимается.
type Ball struct {
	Radius  float64
	Crashed bool
}
