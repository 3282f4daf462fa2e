// Profiling:
// go build ./profile/collision
// go tool pprof -http=":8000" -nodefraction=0.001 ./collision cpu.pprof

package main

import (
	"github.com/phanxgames/rowan"
	"github.com/pkg/profile"
)

func main() {
	entities := 200
	iters := 100
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(entities, iters)
	p.Stop()
}

// run builds a grid of overlapping rotated polygons and hammers the
// pairwise narrow-phase collision test.
func run(numEntities, iters int) {
	polys := make([]*rowan.Polygon2D, numEntities)
	for i := range polys {
		x := float64(i%20) * 12
		y := float64(i/20) * 12
		polys[i] = rowan.NewRectangle(x, y, 16, 16)
		polys[i].Rotate(float64(i * 7))
	}

	hits := 0
	for range iters {
		for i := range polys {
			for j := i + 1; j < len(polys); j++ {
				if polys[i].CollidesWith(&polys[j].Entity) {
					hits++
				}
			}
		}
	}
	_ = hits
}
