package interact

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

// Kind tags what a clickable entity is. Dispatch switches on this tag;
// nothing walks scene hierarchies to figure out what was hit.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindStation  Kind = "station"
	KindTrash    Kind = "trash"
)

// Station identifies which counter station an entity represents
type Station string

const (
	StationCups      Station = "cups"
	StationPastry    Station = "pastry_display"
	StationEspresso  Station = "espresso_machine"
	StationMilk      Station = "milk_steamer"
	StationVanilla   Station = "vanilla_syrup"
	StationCaramel   Station = "caramel_syrup"
	StationChocolate Station = "chocolate_syrup"
)

// Entity is a resolvable interaction target. Customers carry the owning
// customer ID; stations carry their station tag.
type Entity struct {
	ID         string
	Kind       Kind
	Station    Station
	CustomerID uuid.UUID
}

// Registry maps every clickable ID, including sub-part IDs like a
// customer's head or a machine's lever, to its root entity.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]Entity
	parts    map[string][]string // root ID -> registered sub-part IDs
}

// NewRegistry creates an empty entity registry
func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Entity),
		parts:    make(map[string][]string),
	}
}

// Register adds an entity under its own ID and every sub-part ID.
// Re-registering an ID overwrites the previous mapping.
func (r *Registry) Register(e Entity, subParts ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[e.ID] = e
	for _, part := range subParts {
		r.entities[part] = e
	}
	r.parts[e.ID] = append([]string(nil), subParts...)
}

// RegisterStation is shorthand for a station entity whose ID is the tag
func (r *Registry) RegisterStation(station Station, subParts ...string) {
	r.Register(Entity{ID: string(station), Kind: KindStation, Station: station}, subParts...)
}

// RegisterCustomer maps a customer and its sub-parts to the customer ID
func (r *Registry) RegisterCustomer(customerID uuid.UUID, subParts ...string) {
	r.Register(Entity{
		ID:         customerID.String(),
		Kind:       KindCustomer,
		CustomerID: customerID,
	}, subParts...)
}

// Deregister removes an entity and all its registered sub-parts
func (r *Registry) Deregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, part := range r.parts[id] {
		delete(r.entities, part)
	}
	delete(r.parts, id)
	delete(r.entities, id)
}

// Resolve returns the root entity for a clicked target ID
func (r *Registry) Resolve(targetID string) (Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[targetID]
	if !ok {
		return Entity{}, fmt.Errorf("%w: %s", domain.ErrUnknownEntity, targetID)
	}
	return e, nil
}
