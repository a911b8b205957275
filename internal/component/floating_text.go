// internal/component/floating_text.go
package component

import "image/color"

// FloatingText — всплывающий текст (числа урона) над точкой мира.
type FloatingText struct {
	Text     string
	Age      float64
	Lifetime float64
	Color    color.RGBA
}
