package rowan

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// --- Entity tag set ---

// AddTag adds a tag to the entity's tag set, adds the tag to the registry's
// master catalogue, and registers the entity under the origin scene so tag
// queries can find it. Duplicate adds are no-ops; insertion order is
// preserved. The origin scene must already be registered with the registry.
func (e *Entity) AddTag(tag string, origin Scene, registry *TagRegistry) *Entity {
	registry.AddTagToMasterList(tag)
	registry.AddEntity(origin, e)
	if !slices.Contains(e.tags, tag) {
		e.tags = append(e.tags, tag)
	}
	return e
}

// RemoveTag removes a tag from the entity's tag set if present.
func (e *Entity) RemoveTag(tag string) *Entity {
	if i := slices.Index(e.tags, tag); i >= 0 {
		e.tags = slices.Delete(e.tags, i, i+1)
	}
	return e
}

// HasTag reports whether the entity carries the given tag.
func (e *Entity) HasTag(tag string) bool {
	return slices.Contains(e.tags, tag)
}

// Tags returns the entity's tags in insertion order.
// The returned slice MUST NOT be mutated.
func (e *Entity) Tags() []string {
	return e.tags
}

// ClearTags removes every tag from the entity.
func (e *Entity) ClearTags() {
	e.tags = nil
}

// --- Tag registry ---

// TagRegistry indexes taggable entities per scene, plus a master catalogue
// of known tag strings. It holds no ownership: entity lifetimes belong to
// their scenes, and destroying an entity must remove it from the registry
// (the scene's RemoveTaggableEntity path).
//
// The registry is an explicit object rather than package state; the engine
// or world context owns one and passes it to whatever needs tag lookups.
//
// A scene must be registered with AddEntityList before its list can be
// queried or mutated; operating on an unregistered scene is a programmer
// error and panics.
type TagRegistry struct {
	masterTags  []string
	entityLists map[Scene][]*Entity
}

// NewTagRegistry creates an empty tag registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{
		entityLists: make(map[Scene][]*Entity),
	}
}

// AddEntityList registers a scene with the registry. No-op if the scene is
// already registered.
func (r *TagRegistry) AddEntityList(scene Scene) {
	if _, ok := r.entityLists[scene]; !ok {
		r.entityLists[scene] = []*Entity{}
	}
}

// RemoveEntityList deregisters a scene and drops its entity list. The
// entities themselves are untouched.
func (r *TagRegistry) RemoveEntityList(scene Scene) {
	delete(r.entityLists, scene)
}

// EntityList returns the registered entities for the scene, in registration
// order. The returned slice MUST NOT be mutated.
func (r *TagRegistry) EntityList(scene Scene) []*Entity {
	return r.list(scene)
}

// AddEntity registers an entity under the scene. Duplicate adds are no-ops;
// an entity appears at most once per scene list.
func (r *TagRegistry) AddEntity(scene Scene, e *Entity) {
	list := r.list(scene)
	if !slices.Contains(list, e) {
		r.entityLists[scene] = append(list, e)
	}
}

// RemoveEntity removes an entity from the scene's list if present.
func (r *TagRegistry) RemoveEntity(scene Scene, e *Entity) {
	list := r.list(scene)
	if i := slices.Index(list, e); i >= 0 {
		r.entityLists[scene] = slices.Delete(list, i, i+1)
	}
}

// ClearEntityList empties the scene's entity list without deregistering
// the scene. The old backing array is dropped so the registry stops
// holding the cleared entities.
func (r *TagRegistry) ClearEntityList(scene Scene) {
	r.list(scene) // registration check
	r.entityLists[scene] = []*Entity{}
}

// AllInListWithTag returns the scene's entities that carry the given tag,
// preserving the scene list's order.
func (r *TagRegistry) AllInListWithTag(scene Scene, tag string) []*Entity {
	var matched []*Entity
	for _, e := range r.list(scene) {
		if e.HasTag(tag) {
			matched = append(matched, e)
		}
	}
	return matched
}

// AllWithTag returns the entities carrying the given tag across every
// registered scene. The scan fans out in parallel over a snapshot of the
// scene lists: per-scene relative order is preserved, but ordering across
// scenes is unspecified.
//
// The caller must guarantee no concurrent structural mutation of the
// registry (scene or entity add/remove) during the scan. The read-only scan
// is safe only under that discipline; the registry does no locking.
func (r *TagRegistry) AllWithTag(tag string) []*Entity {
	lists := make([][]*Entity, 0, len(r.entityLists))
	for _, list := range r.entityLists {
		lists = append(lists, list)
	}

	results := make([][]*Entity, len(lists))
	var g errgroup.Group
	for i, list := range lists {
		g.Go(func() error {
			var matched []*Entity
			for _, e := range list {
				if e.HasTag(tag) {
					matched = append(matched, e)
				}
			}
			results[i] = matched
			return nil
		})
	}
	// The scan functions never return errors.
	_ = g.Wait()

	var all []*Entity
	for _, matched := range results {
		all = append(all, matched...)
	}
	return all
}

// AddTagToMasterList adds a tag string to the master catalogue. Duplicates
// are no-ops; insertion order is preserved. The catalogue is independent of
// entity tag membership.
func (r *TagRegistry) AddTagToMasterList(tag string) {
	if !slices.Contains(r.masterTags, tag) {
		r.masterTags = append(r.masterTags, tag)
	}
}

// DoesTagExist reports whether the tag is in the master catalogue.
func (r *TagRegistry) DoesTagExist(tag string) bool {
	return slices.Contains(r.masterTags, tag)
}

// ClearTags empties the master tag catalogue.
func (r *TagRegistry) ClearTags() {
	r.masterTags = nil
}

// Reset clears every scene's entity list, drops all scene registrations,
// and clears the master tag catalogue. Used at full-engine teardown.
func (r *TagRegistry) Reset() {
	clear(r.entityLists)
	r.ClearTags()
}

// list returns the scene's entity list, panicking if the scene was never
// registered. Registration-before-use ordering is the caller's job.
func (r *TagRegistry) list(scene Scene) []*Entity {
	list, ok := r.entityLists[scene]
	if !ok {
		panic("rowan: scene is not registered with the tag registry")
	}
	return list
}
