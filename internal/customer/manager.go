package customer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/metrics"
	"github.com/osse101/CafeRush_Go/internal/order"
	"github.com/osse101/CafeRush_Go/internal/utils"
)

// Config tunes customer movement and capacity
type Config struct {
	MaxCustomers    int
	QueueSlots      int
	WalkSpeed       float64 // distance units per second
	EntryDistance   float64 // initial distance from the entry point to the slot
	ArriveThreshold float64 // distance below which the customer has arrived
	ExitDuration    float64 // seconds the exit walk takes
}

// DefaultConfig returns the standard cafe layout tuning
func DefaultConfig() Config {
	return Config{
		MaxCustomers:    DefaultMaxCustomers,
		QueueSlots:      DefaultQueueSlots,
		WalkSpeed:       DefaultWalkSpeed,
		EntryDistance:   DefaultEntryDistance,
		ArriveThreshold: DefaultArriveThreshold,
		ExitDuration:    DefaultExitDuration,
	}
}

// Manager owns the customer list and drives the per-customer state machine
// Entering -> Waiting -> Leaving -> removed. The order book is updated in
// lockstep: an order is registered exactly when its customer starts Waiting
// and purged whenever its customer is removed.
type Manager struct {
	mu        sync.Mutex
	cfg       Config
	customers []*domain.Customer
	spawned   int
	generator *order.Generator
	book      *order.Book
	bus       event.Bus
	index     func(int) int
	now       func() time.Time
}

// NewManager creates a manager with the default clock and RNG
func NewManager(cfg Config, generator *order.Generator, book *order.Book, bus event.Bus) *Manager {
	return &Manager{
		cfg:       cfg,
		generator: generator,
		book:      book,
		bus:       bus,
		index:     utils.RandomIndex,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithRandom overrides the random index source. Used by tests.
func (m *Manager) WithRandom(index func(int) int) *Manager {
	m.index = index
	return m
}

// Spawn creates a new customer in the Entering state.
// Rejected when the cafe is at capacity; callers treat that as a silent
// skip, not a queued retry.
func (m *Manager) Spawn(ctx context.Context) (domain.Customer, error) {
	m.mu.Lock()
	if len(m.customers) >= m.cfg.MaxCustomers {
		m.mu.Unlock()
		return domain.Customer{}, domain.ErrCustomerCap
	}

	c := &domain.Customer{
		ID:             uuid.New(),
		Type:           domain.CustomerTypes[m.index(len(domain.CustomerTypes))],
		State:          domain.CustomerStateEntering,
		Slot:           m.freeSlot(),
		DistanceToSlot: m.cfg.EntryDistance,
		SpawnedAt:      m.now(),
	}
	m.spawned++
	m.customers = append(m.customers, c)
	snapshot := *c
	active := len(m.customers)
	m.mu.Unlock()

	metrics.CustomersSpawned.Inc()
	metrics.CustomersActive.Set(float64(active))

	m.publish(ctx, event.NewCustomerStateChangedEvent(snapshot, ""))
	logger.FromContext(ctx).Info("Customer spawned",
		"customer_id", snapshot.ID, "type", snapshot.Type, "slot", snapshot.Slot)
	return snapshot, nil
}

// freeSlot picks the queue slot for the next customer: the spawn counter
// modulo the ring size, advanced past occupied slots. Caller holds the lock.
func (m *Manager) freeSlot() int {
	slot := m.spawned % m.cfg.QueueSlots
	for i := 0; i < m.cfg.QueueSlots; i++ {
		candidate := (slot + i) % m.cfg.QueueSlots
		if !m.slotOccupied(candidate) {
			return candidate
		}
	}
	// Every slot taken; the capacity check makes this unreachable unless
	// the cap exceeds the ring size, in which case slots are shared.
	return slot
}

func (m *Manager) slotOccupied(slot int) bool {
	for _, c := range m.customers {
		if c.Slot == slot && c.State != domain.CustomerStateLeaving {
			return true
		}
	}
	return false
}

// Tick advances every customer by one frame delta: Entering customers walk
// toward their slot and transition to Waiting on arrival (registering their
// order); Leaving customers finish their exit walk and are removed.
func (m *Manager) Tick(ctx context.Context, dt time.Duration) {
	m.mu.Lock()
	var arrived []*domain.Customer
	var departed []*domain.Customer
	kept := m.customers[:0]

	for _, c := range m.customers {
		switch c.State {
		case domain.CustomerStateEntering:
			c.DistanceToSlot -= m.cfg.WalkSpeed * dt.Seconds()
			if c.DistanceToSlot < m.cfg.ArriveThreshold {
				c.DistanceToSlot = 0
				c.State = domain.CustomerStateWaiting
				arrived = append(arrived, c)
			}
			kept = append(kept, c)
		case domain.CustomerStateLeaving:
			c.ExitRemaining -= dt.Seconds()
			if c.ExitRemaining <= 0 {
				departed = append(departed, c)
			} else {
				kept = append(kept, c)
			}
		default:
			kept = append(kept, c)
		}
	}
	m.customers = kept
	active := len(m.customers)
	m.mu.Unlock()

	metrics.CustomersActive.Set(float64(active))

	for _, c := range arrived {
		m.registerOrder(ctx, c)
	}
	for _, c := range departed {
		m.finishRemoval(ctx, c)
	}
}

// registerOrder generates and registers the order for a newly Waiting
// customer, making the order content visible on the order panel.
func (m *Manager) registerOrder(ctx context.Context, c *domain.Customer) {
	log := logger.FromContext(ctx)

	o := domain.Order{
		ID:         uuid.New(),
		CustomerID: c.ID,
		Items:      m.generator.Generate(),
		CreatedAt:  m.now(),
	}
	if err := m.book.Register(ctx, o); err != nil {
		// A Waiting customer without a book entry is the inconsistency the
		// resolver reports as "order not yet registered"; log and carry on.
		log.Error("Failed to register order for arriving customer",
			"customer_id", c.ID, "error", err)
	} else {
		m.mu.Lock()
		c.OrderID = o.ID
		m.mu.Unlock()
	}

	m.publish(ctx, event.NewCustomerStateChangedEvent(*c, domain.CustomerStateEntering))
	log.Info("Customer waiting", "customer_id", c.ID, "order_id", o.ID, "items", len(o.Items))
}

// finishRemoval drops a customer whose exit walk completed. Its order was
// already removed at resolution time; a lingering entry indicates a broken
// invariant and is purged defensively.
func (m *Manager) finishRemoval(ctx context.Context, c *domain.Customer) {
	if _, found := m.book.RemoveByCustomer(ctx, c.ID); found {
		logger.FromContext(ctx).Error("Departed customer still had an active order",
			"customer_id", c.ID)
	}
	m.publish(ctx, event.NewCustomerRemovedEvent(c.ID.String()))
}

// BeginLeaving transitions a Waiting customer to Leaving and starts its
// exit walk. Only successful order resolution calls this.
func (m *Manager) BeginLeaving(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	c := m.find(id)
	if c == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	if c.State != domain.CustomerStateWaiting {
		m.mu.Unlock()
		return fmt.Errorf("%w: customer %s is %s", domain.ErrCustomerEntering, id, c.State)
	}
	c.State = domain.CustomerStateLeaving
	c.OrderID = uuid.Nil
	c.ExitRemaining = m.cfg.ExitDuration
	snapshot := *c
	m.mu.Unlock()

	m.publish(ctx, event.NewCustomerStateChangedEvent(snapshot, domain.CustomerStateWaiting))
	return nil
}

// Remove force-removes a customer and purges its order in the same step,
// regardless of state. Used on session reset.
func (m *Manager) Remove(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	c := m.find(id)
	if c == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, id)
	}
	for i, existing := range m.customers {
		if existing.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			break
		}
	}
	active := len(m.customers)
	m.mu.Unlock()

	metrics.CustomersActive.Set(float64(active))
	m.book.RemoveByCustomer(ctx, id)
	m.publish(ctx, event.NewCustomerRemovedEvent(id.String()))
	return nil
}

// Get returns a snapshot of the customer with the given ID
func (m *Manager) Get(id uuid.UUID) (domain.Customer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c := m.find(id); c != nil {
		return *c, true
	}
	return domain.Customer{}, false
}

// Customers returns snapshots of all customers in spawn order
func (m *Manager) Customers() []domain.Customer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Customer, len(m.customers))
	for i, c := range m.customers {
		out[i] = *c
	}
	return out
}

// Count returns the number of customers currently in the cafe
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.customers)
}

// SetMaxCustomers raises or lowers the capacity (upgrade effect)
func (m *Manager) SetMaxCustomers(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg.MaxCustomers = n
}

// MaxCustomers returns the current capacity
func (m *Manager) MaxCustomers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.MaxCustomers
}

// Reset drops every customer and every order in one step
func (m *Manager) Reset(ctx context.Context) {
	m.mu.Lock()
	m.customers = nil
	m.spawned = 0
	m.mu.Unlock()

	m.book.Clear()
	metrics.CustomersActive.Set(0)
}

// find returns the customer with the given ID; caller holds the lock
func (m *Manager) find(id uuid.UUID) *domain.Customer {
	for _, c := range m.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *Manager) publish(ctx context.Context, e event.Event) {
	if err := m.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Error("Failed to publish customer event", "type", e.Type, "error", err)
	}
}
