// Package rowan is the entity, behavior, collision, and tag core for 2D games
// built on [Ebitengine].
//
// Rowan provides the pieces underneath a scene-based game: transformable
// entities with stable identities, exact polygon collision testing, pluggable
// per-entity behaviors with init/update/destroy lifecycles, and a tag registry
// for finding entities across scenes.
//
// # Entities
//
// An [Entity] is anything that can be positioned, transformed, tagged, and
// destroyed. Concrete types embed Entity and implement [Transformable] so the
// base can express absolute setters in terms of the relative primitives:
//
//	square := rowan.NewRectangle(0, 0, 32, 32)
//	square.SetTranslation(rowan.Pointf{X: 100, Y: 50})
//	square.Rotate(45)
//
// Entities hand the rendering layer a composed affine transform via
// [Entity.Transformation], and answer geometry queries from their 4-point
// boundary quad ([Entity.Bounds], [Entity.Bound], [Entity.Center]).
//
// # Collision
//
// Each entity owns an optional collision [Path], a closed polygon outline.
// [Entity.CollidesWith] performs an exact narrow-phase intersection test:
//
//	if bullet.CollidesWith(ship) {
//		// ...
//	}
//
// A missing path degrades to "not colliding" and is reported through the
// package error reporter, unless the entity's scene is mid-transition.
// [Intersection] exposes the underlying tri-state result directly.
//
// # Behaviors
//
// A [Behavior] attaches init/update/destroy hooks to an entity. Scenes drive
// them once per frame through [Entity.InitBehaviors] and
// [Entity.UpdateBehaviors]. Built-in tween behaviors ([NewMoveTo],
// [NewRotateTo], [NewScaleTo]) animate transforms using [gween].
//
// # Tags
//
// A [TagRegistry] indexes taggable entities per scene. It is an explicit
// object rather than package state, so multiple engine instances and tests
// can each hold their own:
//
//	registry := rowan.NewTagRegistry()
//	registry.AddEntityList(scene)
//	square.AddTag("enemy", scene, registry)
//	enemies := registry.AllWithTag("enemy")
//
// The update loop is single-threaded and cooperative; nothing in rowan
// blocks. The one exception is [TagRegistry.AllWithTag], which fans out
// across scene lists in parallel and requires that the registry is not
// mutated concurrently.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package rowan
