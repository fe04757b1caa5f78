package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"voxel-lab/internal/picker"
)

// Picker casts raylib screen rays from the scene's current camera.
type Picker struct {
	Scene  *Scene
	Blocks picker.Blocks
}

// Pick implements picker.Picker.
func (p Picker) Pick(x, y float32) []picker.Hit {
	ray := rl.GetScreenToWorldRay(rl.NewVector2(x, y), p.Scene.Camera)
	return p.Blocks.Cast(picker.Ray{
		Origin: fromVector3(ray.Position),
		Dir:    fromVector3(ray.Direction),
	})
}
