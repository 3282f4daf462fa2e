package rowan

// Behavior is a pluggable unit of logic attached to an entity. The scene
// invokes the hooks at well-defined phases: Init once when the scene loads,
// Update every frame, and Destroy when the entity or scene is torn down.
type Behavior interface {
	Init(e *Entity)
	Update(e *Entity)
	Destroy()
}

// BehaviorFuncs adapts plain functions into a Behavior. Nil fields are
// skipped.
type BehaviorFuncs struct {
	OnInit    func(e *Entity)
	OnUpdate  func(e *Entity)
	OnDestroy func()
}

func (b *BehaviorFuncs) Init(e *Entity) {
	if b.OnInit != nil {
		b.OnInit(e)
	}
}

func (b *BehaviorFuncs) Update(e *Entity) {
	if b.OnUpdate != nil {
		b.OnUpdate(e)
	}
}

func (b *BehaviorFuncs) Destroy() {
	if b.OnDestroy != nil {
		b.OnDestroy()
	}
}

// AddBehavior appends the behavior to the entity's list and registers the
// entity as a behavior listener with the origin scene. The same behavior
// instance may be attached more than once; insertion order is preserved.
func (e *Entity) AddBehavior(behavior Behavior, origin Scene) *Entity {
	e.behaviors = append(e.behaviors, behavior)
	origin.AddBehaviorListener(e)
	return e
}

// RemoveBehavior removes one matching behavior instance from the entity's
// list. If no behaviors remain, the entity is deregistered from the origin
// scene's behavior listeners.
func (e *Entity) RemoveBehavior(behavior Behavior, origin Scene) *Entity {
	for i, b := range e.behaviors {
		if b == behavior {
			copy(e.behaviors[i:], e.behaviors[i+1:])
			e.behaviors[len(e.behaviors)-1] = nil
			e.behaviors = e.behaviors[:len(e.behaviors)-1]
			break
		}
	}
	if len(e.behaviors) == 0 {
		origin.RemoveBehaviorListener(e)
	}
	return e
}

// Behaviors returns the entity's behavior list in insertion order.
// The returned slice MUST NOT be mutated.
func (e *Entity) Behaviors() []Behavior {
	return e.behaviors
}

// InitBehaviors calls Init on every attached behavior in insertion order.
//
// Iteration runs over a point-in-time copy of the list, so a hook that
// attaches or removes behaviors mid-iteration cannot corrupt the walk or
// cause missed or duplicate invocations.
func (e *Entity) InitBehaviors() {
	snapshot := make([]Behavior, len(e.behaviors))
	copy(snapshot, e.behaviors)
	for _, b := range snapshot {
		b.Init(e)
	}
}

// UpdateBehaviors calls Update on every attached behavior in insertion
// order, iterating over a point-in-time copy like InitBehaviors.
func (e *Entity) UpdateBehaviors() {
	snapshot := make([]Behavior, len(e.behaviors))
	copy(snapshot, e.behaviors)
	for _, b := range snapshot {
		b.Update(e)
	}
}

// DestroyAllBehaviors calls Destroy on every attached behavior in list
// order. The list itself is left untouched; callers follow up with
// ClearAllBehaviors.
func (e *Entity) DestroyAllBehaviors() {
	for _, b := range e.behaviors {
		b.Destroy()
	}
}

// ClearAllBehaviors empties the behavior list without calling Destroy.
func (e *Entity) ClearAllBehaviors() {
	e.behaviors = nil
}
