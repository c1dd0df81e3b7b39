package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/fenster/pkg/camera"
	"github.com/philipparndt/fenster/pkg/geometry"
)

// worldScale converts millimeters to the meter-sized units raylib's default
// clip planes are set up for
const worldScale = 0.001

func toVector3(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: float32(v.X * worldScale),
		Y: float32(v.Y * worldScale),
		Z: float32(v.Z * worldScale),
	}
}

// toCamera3D mirrors the engine camera
func toCamera3D(cam *camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(cam.Position),
		Target:     toVector3(cam.Target),
		Up:         rl.Vector3{X: float32(cam.Up.X), Y: float32(cam.Up.Y), Z: float32(cam.Up.Z)},
		Fovy:       float32(mgl64.RadToDeg(cam.FOV)),
		Projection: rl.CameraPerspective,
	}
}

// toMatrix converts a part transform in millimeters to a scaled raylib matrix.
// Both libraries index matrix elements column by column.
func toMatrix(m mgl64.Mat4) rl.Matrix {
	m = mgl64.Scale3D(worldScale, worldScale, worldScale).Mul4(m)
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}
