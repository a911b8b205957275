// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces — набор шрифтов интерфейса: обычный текст и крупные заголовки.
type Faces struct {
	Regular font.Face
	Title   font.Face
}

// LoadFaces готовит шрифты из встроенного Go Regular, без файлов на диске.
func LoadFaces() (*Faces, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build regular face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    36,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build title face: %w", err)
	}
	return &Faces{Regular: regular, Title: title}, nil
}
