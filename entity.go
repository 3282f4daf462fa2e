package rowan

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Transformable is the capability interface concrete entity types implement.
// The base [Entity] does not store transform state; it derives everything
// from these accessors and primitives, so a concrete type only has to get
// the relative operations right.
//
// Each mutating primitive must update the concrete type's own geometric
// representation and recompute the entity's boundaries and collision path to
// match. Identity and tags are never touched by transform operations.
// Accessors must be pure reads.
type Transformable interface {
	// Translation returns the entity's current translation.
	Translation() Pointf

	// Rotation returns the entity's accumulated rotation in degrees.
	// The value is unbounded; use [Entity.RotationWithin360] for the
	// normalized equivalent.
	Rotation() float64

	// Scale returns the entity's current scale.
	Scale() Pointf

	// Translate moves the entity by delta.
	Translate(delta Pointf)

	// RotateAround rotates the entity by deg degrees about the pivot.
	RotateAround(deg float64, pivot Pointf)

	// ScaleAround adds factor to the entity's scale, scaling its geometry
	// about the pivot.
	ScaleAround(factor Pointf, pivot Pointf)
}

// Entity is the base of every drawable game object: identity, transform
// access, boundary quad, collision path, render flag, behaviors, and tags.
//
// Concrete types embed Entity, implement [Transformable], and wire the two
// together with [Entity.Init]:
//
//	type Ship struct {
//		rowan.Entity
//		// geometry...
//	}
//
//	func NewShip() *Ship {
//		s := &Ship{}
//		s.Init("Ship", s)
//		return s
//	}
//
// An Entity must not be reused after [Entity.Destroy].
type Entity struct {
	rawID uuid.UUID
	class string
	id    string // debug id, built lazily by ID

	transform     Transformable
	boundaries    []Pointf
	collisionPath *Path
	shouldRender  bool
	behaviors     []Behavior
	tags          []string

	// scene is the non-owning back-reference set by AddAsGameObject /
	// AddAsGUIObject. Collision testing consults it for the
	// scene-transition state.
	scene Scene
}

// Init assigns the entity's identity and wires the concrete type's
// [Transformable] implementation. Must be called exactly once, from the
// concrete type's constructor.
func (e *Entity) Init(class string, transform Transformable) {
	if transform == nil {
		panic("rowan: entity transform must not be nil")
	}
	if e.transform != nil {
		panic("rowan: entity already initialized")
	}
	e.rawID = uuid.New()
	e.class = class
	e.transform = transform
}

// RawID returns the entity's globally-unique identifier, assigned at Init
// and never reassigned.
func (e *Entity) RawID() uuid.UUID {
	return e.rawID
}

// ID returns the entity's human-readable composite id (class name plus raw
// identifier). The string is built on first use and cached.
func (e *Entity) ID() string {
	if e.id == "" {
		e.id = e.class + "_" + e.rawID.String()
	}
	return e.id
}

// Class returns the class name the entity was initialized with.
func (e *Entity) Class() string {
	return e.class
}

// --- Transform access ---

// Translation returns the entity's current translation.
func (e *Entity) Translation() Pointf {
	return e.transform.Translation()
}

// Rotation returns the entity's accumulated rotation in degrees.
func (e *Entity) Rotation() float64 {
	return e.transform.Rotation()
}

// RotationWithin360 returns the rotation normalized by mod 360. The result
// is in [0, 360) for non-negative rotations and (-360, 0] otherwise.
func (e *Entity) RotationWithin360() float64 {
	return math.Mod(e.transform.Rotation(), 360)
}

// Scale returns the entity's current scale.
func (e *Entity) Scale() Pointf {
	return e.transform.Scale()
}

// Translate moves the entity by delta.
func (e *Entity) Translate(delta Pointf) {
	e.transform.Translate(delta)
}

// RotateAround rotates the entity by deg degrees about the pivot.
func (e *Entity) RotateAround(deg float64, pivot Pointf) {
	e.transform.RotateAround(deg, pivot)
}

// ScaleAround adds factor to the entity's scale about the pivot.
func (e *Entity) ScaleAround(factor Pointf, pivot Pointf) {
	e.transform.ScaleAround(factor, pivot)
}

// Rotate rotates the entity by deg degrees about its center.
func (e *Entity) Rotate(deg float64) {
	e.transform.RotateAround(deg, e.Center())
}

// ScaleBy adds factor to the entity's scale, scaling about its center.
func (e *Entity) ScaleBy(factor Pointf) {
	e.transform.ScaleAround(factor, e.Center())
}

// ScaleUniform adds v to both scale axes, scaling about the center.
func (e *Entity) ScaleUniform(v float64) {
	e.ScaleBy(Uniform(v))
}

// SetTranslation sets the entity's translation to target.
//
// Absolute setters are expressed purely in terms of the relative primitives,
// so applying the same target twice is a no-op on the second call.
func (e *Entity) SetTranslation(target Pointf) {
	e.transform.Translate(target.Sub(e.transform.Translation()))
}

// SetRotation sets the entity's rotation to target degrees, rotating about
// its center.
func (e *Entity) SetRotation(target float64) {
	e.Rotate(target - e.transform.Rotation())
}

// SetScale sets the entity's scale to target, scaling about its center.
func (e *Entity) SetScale(target Pointf) {
	e.ScaleBy(target.Sub(e.transform.Scale()))
}

// Transformation returns the entity's composed affine transform for the
// rendering layer: scale, then rotation, then translation.
func (e *Entity) Transformation() ebiten.GeoM {
	var geom ebiten.GeoM
	scale := e.transform.Scale()
	geom.Scale(scale.X, scale.Y)
	geom.Rotate(e.transform.Rotation() * math.Pi / 180)
	translation := e.transform.Translation()
	geom.Translate(translation.X, translation.Y)
	return geom
}

// --- Boundaries ---

// SetBounds sets the entity's boundary quad. The slice must contain exactly
// 4 points in [Boundary] order; any other length is an engine/content bug
// and aborts the run through the fatal reporter path.
func (e *Entity) SetBounds(bounds []Pointf) {
	if len(bounds) != boundaryCount {
		reporter.Fatal("the game crashed due to a boundary error",
			fmt.Errorf("rowan: entity %s boundaries must contain exactly %d points, got %d",
				e.ID(), boundaryCount, len(bounds)))
		return
	}
	e.boundaries = bounds
}

// Bounds returns the entity's boundary quad in [Boundary] order.
// The returned slice MUST NOT be mutated; use TranslateBounds instead.
func (e *Entity) Bounds() []Pointf {
	return e.boundaries
}

// Bound returns the boundary point at the given corner.
// An out-of-range corner is a programmer error and panics.
func (e *Entity) Bound(corner Boundary) Pointf {
	return e.boundaries[corner]
}

// Center returns the centroid of the entity's boundary quad.
func (e *Entity) Center() Pointf {
	return CenterOf(e.boundaries)
}

// TranslateBounds moves every boundary point by delta in place.
// Concrete types call this after translating their geometry.
func (e *Entity) TranslateBounds(delta Pointf) {
	for i := range e.boundaries {
		e.boundaries[i] = e.boundaries[i].Add(delta)
	}
}

// --- Collision path ---

// SetCollisionPath replaces the entity's collision outline. A nil path is a
// valid transient state (mid-destruction, scene transition); collision
// tests against it degrade to "not colliding".
func (e *Entity) SetCollisionPath(path *Path) {
	e.collisionPath = path
}

// CollisionPath returns the entity's collision outline, or nil.
func (e *Entity) CollisionPath() *Path {
	return e.collisionPath
}

// --- Render flag ---

// ShouldRender reports whether the entity should be rendered.
func (e *Entity) ShouldRender() bool {
	return e.shouldRender
}

// SetShouldRender sets whether the entity should be rendered.
func (e *Entity) SetShouldRender(render bool) {
	e.shouldRender = render
}

// --- Scene attachment ---

// AddAsGameObject registers the entity with the scene's game object list
// and remembers the scene as the entity's origin.
func (e *Entity) AddAsGameObject(origin Scene) {
	e.scene = origin
	origin.AddGameObject(e)
}

// AddAsGUIObject registers the entity with the scene's GUI object list
// and remembers the scene as the entity's origin.
func (e *Entity) AddAsGUIObject(origin Scene) {
	e.scene = origin
	origin.AddGUIObject(e)
}

// Scene returns the entity's origin scene, or nil if it was never added to
// one (or has been destroyed).
func (e *Entity) Scene() Scene {
	return e.scene
}

// --- Destruction ---

// Destroy severs every reference between the entity and the origin scene:
// the scene's object lists, behavior-listener set, and taggable index. All
// attached behaviors are destroyed and cleared, tags are cleared, and the
// collision path and boundaries are released.
//
// The entity must not be used again afterwards.
func (e *Entity) Destroy(origin Scene) {
	origin.RemoveGameObject(e)
	origin.RemoveGUIObject(e)
	origin.RemoveBehaviorListener(e)
	origin.RemoveTaggableEntity(e)

	e.DestroyAllBehaviors()
	e.ClearAllBehaviors()
	e.ClearTags()

	e.collisionPath = nil
	e.boundaries = nil
	e.scene = nil
}

// String returns a debug description of the entity.
func (e *Entity) String() string {
	return fmt.Sprintf("Entity{id=%s, shouldRender=%t, translation=%v, rotation=%v, scale=%v, bounds=%v, behaviors=%d, tags=%v}",
		e.ID(), e.shouldRender, e.Translation(), e.Rotation(), e.Scale(),
		e.boundaries, len(e.behaviors), e.tags)
}
