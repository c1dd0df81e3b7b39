package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex: pixel position plus view depth
type screenVertex struct {
	x, y, z float64
}

// fillTriangleWithDepth fills a triangle with depth testing. With alpha below
// 1 the color is blended over what is already there and the depth buffer is
// left untouched, so transparent triangles never hide anything drawn later.
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, v [3]screenVertex, col color.RGBA, alpha float64) {
	// Sort vertices by Y coordinate (top to bottom)
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}

	x1, y1, z1 := v[0].x, v[0].y, v[0].z
	x2, y2, z2 := v[1].x, v[1].y, v[1].z
	x3, y3, z3 := v[2].x, v[2].y, v[2].z

	bounds := img.Bounds()
	width := bounds.Max.X
	opaque := alpha >= 1

	// Scanline algorithm with depth interpolation
	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xs, zs [2]float64
		found := 0
		edge := func(ax, ay, az, bx, by, bz float64) {
			if found == 2 || ay == by || fy < ay || fy > by {
				return
			}
			t := (fy - ay) / (by - ay)
			xs[found] = ax + t*(bx-ax)
			zs[found] = az + t*(bz-az)
			found++
		}
		edge(x1, y1, z1, x2, y2, z2)
		edge(x2, y2, z2, x3, y3, z3)
		edge(x1, y1, z1, x3, y3, z3)
		if found < 2 {
			continue
		}

		xStart, xEnd, zStart, zEnd := xs[0], xs[1], zs[0], zs[1]
		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		// Clamp to image bounds
		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

		for x := xStartInt; x <= xEndInt; x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if idx < 0 || idx >= len(zbuffer) || z >= zbuffer[idx] {
				continue
			}
			if opaque {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			} else {
				img.SetRGBA(x, y, blend(img.RGBAAt(x, y), col, alpha))
			}
		}
	}
}

func blend(dst, src color.RGBA, alpha float64) color.RGBA {
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(d)*(1-alpha) + float64(s)*alpha))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
