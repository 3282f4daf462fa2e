package rowan

// Scene is the collaborator interface the entity core calls back into.
// The scene layer owns its entities; rowan only holds non-owning references.
//
// Implementations must be comparable (pointer receivers are the usual case)
// because scenes key the tag registry's per-scene entity lists.
type Scene interface {
	// AddGameObject and AddGUIObject register an entity with the scene's
	// respective draw lists. Called by [Entity.AddAsGameObject] and
	// [Entity.AddAsGUIObject].
	AddGameObject(e *Entity)
	AddGUIObject(e *Entity)

	// RemoveGameObject and RemoveGUIObject drop an entity from the scene's
	// draw lists. Called during [Entity.Destroy].
	RemoveGameObject(e *Entity)
	RemoveGUIObject(e *Entity)

	// AddBehaviorListener marks an entity as having behaviors that need
	// per-frame init/update calls. The scene decides whether the entity is
	// already listed. RemoveBehaviorListener undoes it.
	AddBehaviorListener(e *Entity)
	RemoveBehaviorListener(e *Entity)

	// RemoveTaggableEntity drops the entity from the scene's taggable
	// index. Called during [Entity.Destroy].
	RemoveTaggableEntity(e *Entity)

	// IsSwitchingScenes reports whether the scene is mid-transition.
	// While true, collision tests against entities with missing collision
	// paths are expected and not reported.
	IsSwitchingScenes() bool
}
