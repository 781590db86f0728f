// Package ebiten bridges the Dear ImGui ebiten backend into the ECS. The
// backend lives in a singleton so systems and the game loop share one
// instance.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}
