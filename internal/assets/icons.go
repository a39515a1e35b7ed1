package assets

import (
	"bytes"
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/disintegration/imaging"

	"neonicons/internal/render"
)

// appIconSize is the edge length used for the window/app icon
const appIconSize = 256

// AppIcon renders the neon bird and wraps it as the application icon resource
func AppIcon() (fyne.Resource, error) {
	img, err := render.RenderIcon(appIconSize)
	if err != nil {
		return nil, fmt.Errorf("render app icon: %w", err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode app icon: %w", err)
	}
	return fyne.NewStaticResource("app.png", buf.Bytes()), nil
}
