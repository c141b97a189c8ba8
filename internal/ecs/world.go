package ecs

// EntityID is a handle into a World. IDs are never reused within a World.
type EntityID uint64

// NilEntity means "no entity"; CreateEntity never returns it.
const NilEntity EntityID = 0

// ComponentType keys a component store. Each component type owns one value.
type ComponentType uint8

// Component is any value the World can store against an entity.
type Component interface {
	Type() ComponentType
}

// World is the central entity registry and component store.
//
// Entities keep the order they were created in. Killing an entity only marks
// it dead; its components stay readable until it is destroyed, so code running
// later in the same tick can still look at where it was.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool // present = not yet destroyed
	order      []EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID, marks it alive and appends it to the
// iteration order.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	w.order = append(w.order, id)
	return id
}

// MarkDead flags the entity dead without releasing it. It reports whether the
// call changed anything, so the first caller can run a dying action.
func (w *World) MarkDead(id EntityID) bool {
	if !w.alive[id] {
		return false
	}
	w.alive[id] = false
	return true
}

// DestroyEntity removes the entity, its components and its slot in the order.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Alive reports whether the entity exists and has not been marked dead.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Exists reports whether the entity has not been destroyed yet.
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Len returns the number of entities not yet destroyed.
func (w *World) Len() int { return len(w.order) }

// Entities returns a snapshot of every entity not yet destroyed, in creation
// order. Entities created after the call are not part of the snapshot.
func (w *World) Entities() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Purge destroys every entity marked dead and returns how many were removed.
func (w *World) Purge() int {
	n := 0
	kept := w.order[:0]
	for _, id := range w.order {
		if w.alive[id] {
			kept = append(kept, id)
			continue
		}
		delete(w.alive, id)
		for _, store := range w.components {
			delete(store, id)
		}
		n++
	}
	w.order = kept
	return n
}

// Add attaches a component to an entity.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type, in
// creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
	for _, id := range w.order {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}
