package geometry

// Box tessellates an axis-aligned box into 12 triangles wound counter-clockwise
// when seen from outside, so CalculateNormal agrees with the stored normal.
func Box(b BoundingBox) []Triangle {
	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	faces := []struct {
		normal     Vector3
		a, b, c, d Vector3
	}{
		{NewVector3(-1, 0, 0), NewVector3(x0, y0, z0), NewVector3(x0, y0, z1), NewVector3(x0, y1, z1), NewVector3(x0, y1, z0)},
		{NewVector3(1, 0, 0), NewVector3(x1, y0, z0), NewVector3(x1, y1, z0), NewVector3(x1, y1, z1), NewVector3(x1, y0, z1)},
		{NewVector3(0, -1, 0), NewVector3(x0, y0, z0), NewVector3(x1, y0, z0), NewVector3(x1, y0, z1), NewVector3(x0, y0, z1)},
		{NewVector3(0, 1, 0), NewVector3(x0, y1, z0), NewVector3(x0, y1, z1), NewVector3(x1, y1, z1), NewVector3(x1, y1, z0)},
		{NewVector3(0, 0, -1), NewVector3(x0, y0, z0), NewVector3(x0, y1, z0), NewVector3(x1, y1, z0), NewVector3(x1, y0, z0)},
		{NewVector3(0, 0, 1), NewVector3(x0, y0, z1), NewVector3(x1, y0, z1), NewVector3(x1, y1, z1), NewVector3(x0, y1, z1)},
	}

	triangles := make([]Triangle, 0, 12)
	for _, f := range faces {
		triangles = append(triangles,
			NewTriangle(f.normal, f.a, f.b, f.c),
			NewTriangle(f.normal, f.a, f.c, f.d),
		)
	}
	return triangles
}
