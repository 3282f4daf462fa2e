package rowan

import "testing"

func squareEntity(points []Pointf) *fakeShape {
	f := newFakeShape()
	f.SetBounds(BoundingQuad(points))
	f.SetCollisionPath(NewPath(points))
	return f
}

func TestPathCopiesPoints(t *testing.T) {
	points := []Pointf{{0, 0}, {10, 0}, {10, 10}}
	path := NewPath(points)
	points[0] = Pointf{99, 99}
	assertPointNear(t, "first point", path.Points()[0], Pointf{0, 0})
}

func TestPathTooFewPointsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPath with 2 points should panic")
		}
	}()
	NewPath([]Pointf{{0, 0}, {1, 1}})
}

func TestRectanglePath(t *testing.T) {
	path := NewRectanglePath(2, 3, 10, 20)
	points := path.Points()
	if len(points) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(points))
	}
	assertPointNear(t, "top-left", points[0], Pointf{2, 3})
	assertPointNear(t, "bottom-right", points[2], Pointf{12, 23})
}

func TestPathTranslate(t *testing.T) {
	path := NewRectanglePath(0, 0, 10, 10)
	path.Translate(Pointf{5, 5})
	assertPointNear(t, "first point", path.Points()[0], Pointf{5, 5})
	assertPointNear(t, "bounds top-left", path.Bounds()[BoundaryTopLeft], Pointf{5, 5})
}

// --- Intersection tri-state ---

func TestIntersectionDisjoint(t *testing.T) {
	a := NewPath([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := NewPath([]Pointf{{20, 20}, {30, 20}, {30, 30}, {20, 30}})
	if got := Intersection(a, b); got != CollisionNoIntersection {
		t.Errorf("Intersection = %d, want CollisionNoIntersection", got)
	}
}

func TestIntersectionOverlapping(t *testing.T) {
	a := NewPath([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := NewPath([]Pointf{{5, 5}, {15, 5}, {15, 15}, {5, 15}})
	if got := Intersection(a, b); got != CollisionIntersects {
		t.Errorf("Intersection = %d, want CollisionIntersects", got)
	}
}

func TestIntersectionContainment(t *testing.T) {
	outer := NewPath([]Pointf{{0, 0}, {100, 0}, {100, 100}, {0, 100}})
	inner := NewPath([]Pointf{{40, 40}, {60, 40}, {60, 60}, {40, 60}})
	if got := Intersection(outer, inner); got != CollisionIntersects {
		t.Errorf("outer vs inner = %d, want CollisionIntersects", got)
	}
	if got := Intersection(inner, outer); got != CollisionIntersects {
		t.Errorf("inner vs outer = %d, want CollisionIntersects", got)
	}
}

func TestIntersectionTouchingEdges(t *testing.T) {
	a := NewPath([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := NewPath([]Pointf{{10, 0}, {20, 0}, {20, 10}, {10, 10}})
	// Boundary contact counts as an intersection.
	if got := Intersection(a, b); got != CollisionIntersects {
		t.Errorf("touching squares = %d, want CollisionIntersects", got)
	}
}

func TestIntersectionConcave(t *testing.T) {
	// U-shaped polygon; the probe square sits inside the notch.
	u := NewPath([]Pointf{
		{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 10}, {10, 10}, {10, 30}, {0, 30},
	})
	probe := NewPath([]Pointf{{12, 20}, {18, 20}, {18, 28}, {12, 28}})
	if got := Intersection(u, probe); got != CollisionNoIntersection {
		t.Errorf("square in concave notch = %d, want CollisionNoIntersection", got)
	}
}

func TestIntersectionNilPath(t *testing.T) {
	a := NewRectanglePath(0, 0, 10, 10)
	if got := Intersection(a, nil); got != CollisionNoGeometry {
		t.Errorf("Intersection(a, nil) = %d, want CollisionNoGeometry", got)
	}
	if got := Intersection(nil, a); got != CollisionNoGeometry {
		t.Errorf("Intersection(nil, a) = %d, want CollisionNoGeometry", got)
	}
}

// --- CollidesWith ---

func TestCollidesWithDisjointSquares(t *testing.T) {
	a := squareEntity([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := squareEntity([]Pointf{{20, 20}, {30, 20}, {30, 30}, {20, 30}})
	if a.CollidesWith(&b.Entity) {
		t.Error("disjoint squares should not collide")
	}
}

func TestCollidesWithOverlappingSquares(t *testing.T) {
	a := squareEntity([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := squareEntity([]Pointf{{5, 5}, {15, 5}, {15, 15}, {5, 15}})
	if !a.CollidesWith(&b.Entity) {
		t.Error("overlapping squares should collide")
	}
	if !b.CollidesWith(&a.Entity) {
		t.Error("collision should be symmetric")
	}
}

func TestCollidesWithMissingPathLogsOnce(t *testing.T) {
	rec := installRecorder(t)
	a := squareEntity([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := newFakeShape() // no collision path

	if a.CollidesWith(&b.Entity) {
		t.Error("missing path should degrade to no collision")
	}
	if len(rec.errors) != 1 {
		t.Errorf("%d logged errors, want exactly 1", len(rec.errors))
	}
}

func TestCollidesWithMissingPathDuringSceneTransition(t *testing.T) {
	rec := installRecorder(t)
	scene := newStubScene("switching")
	scene.switching = true

	a := squareEntity([]Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := newFakeShape() // no collision path
	b.AddAsGameObject(scene)

	if a.CollidesWith(&b.Entity) {
		t.Error("missing path should degrade to no collision")
	}
	if len(rec.errors) != 0 {
		t.Errorf("%d logged errors during scene transition, want 0", len(rec.errors))
	}
}

// --- Segment and containment primitives ---

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Pointf
		want           bool
	}{
		{"crossing", Pointf{0, 0}, Pointf{10, 10}, Pointf{0, 10}, Pointf{10, 0}, true},
		{"parallel", Pointf{0, 0}, Pointf{10, 0}, Pointf{0, 5}, Pointf{10, 5}, false},
		{"collinear overlapping", Pointf{0, 0}, Pointf{10, 0}, Pointf{5, 0}, Pointf{15, 0}, true},
		{"collinear disjoint", Pointf{0, 0}, Pointf{10, 0}, Pointf{11, 0}, Pointf{20, 0}, false},
		{"endpoint touch", Pointf{0, 0}, Pointf{10, 0}, Pointf{10, 0}, Pointf{10, 10}, true},
		{"near miss", Pointf{0, 0}, Pointf{10, 0}, Pointf{5, 1}, Pointf{5, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2); got != tt.want {
				t.Errorf("segmentsIntersect = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Pointf{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !pointInPolygon(Pointf{5, 5}, square) {
		t.Error("center should be inside")
	}
	if pointInPolygon(Pointf{15, 5}, square) {
		t.Error("point to the right should be outside")
	}
	if pointInPolygon(Pointf{-1, 5}, square) {
		t.Error("point to the left should be outside")
	}
}
