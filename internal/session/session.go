package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CafeRush_Go/internal/customer"
	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/economy"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/interact"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/metrics"
	"github.com/osse101/CafeRush_Go/internal/minigame"
	"github.com/osse101/CafeRush_Go/internal/order"
	"github.com/osse101/CafeRush_Go/internal/serve"
	"github.com/osse101/CafeRush_Go/internal/utils"
)

// Session is the explicit context object for one play session. Every piece
// of mutable play state hangs off it; nothing lives in package globals.
// All player input enters through Interact, which serializes on the session
// lock, so the held-item slot and the pending ingredient need no extra
// synchronization.
type Session struct {
	mu       sync.Mutex
	registry *menu.Registry
	entities *interact.Registry
	book     *order.Book
	managers *customer.Manager
	ledger   *economy.Ledger
	runner   *minigame.Runner
	resolver *serve.Resolver
	bus      event.Bus

	held          *domain.HeldItem
	pending       domain.Ingredient // applied to the held cup when the active game completes
	pendingSet    bool
	startingMoney int
	index         func(int) int
}

// Deps bundles the collaborators a session composes
type Deps struct {
	Registry  *menu.Registry
	Entities  *interact.Registry
	Book      *order.Book
	Customers *customer.Manager
	Ledger    *economy.Ledger
	Runner    *minigame.Runner
	Resolver  *serve.Resolver
	Bus       event.Bus

	StartingMoney int
}

// New creates a session and subscribes it to the customer lifecycle so the
// entity registry tracks spawns and removals.
func New(deps Deps) *Session {
	s := &Session{
		registry:      deps.Registry,
		entities:      deps.Entities,
		book:          deps.Book,
		managers:      deps.Customers,
		ledger:        deps.Ledger,
		runner:        deps.Runner,
		resolver:      deps.Resolver,
		bus:           deps.Bus,
		startingMoney: deps.StartingMoney,
		index:         utils.RandomIndex,
	}

	deps.Bus.Subscribe(event.CustomerStateChanged, s.onCustomerStateChanged)
	deps.Bus.Subscribe(event.CustomerRemoved, s.onCustomerRemoved)
	return s
}

// WithRandom overrides the random index source. Used by tests.
func (s *Session) WithRandom(index func(int) int) *Session {
	s.index = index
	return s
}

// onCustomerStateChanged registers freshly spawned customers as clickable
// entities. Spawn is the transition with an empty old state.
func (s *Session) onCustomerStateChanged(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[event.CustomerStateChangedPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	if p.OldState != "" {
		return nil
	}
	id, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return err
	}
	s.entities.RegisterCustomer(id, p.CustomerID+"/body", p.CustomerID+"/head")
	return nil
}

func (s *Session) onCustomerRemoved(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[event.CustomerRemovedPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	s.entities.Deregister(p.CustomerID)
	return nil
}

// Interact handles one player click on the given target. While a mini-game
// is active the interaction is modal: every input feeds the game and the
// rest of the cafe is unreachable.
func (s *Session) Interact(ctx context.Context, targetID string) error {
	if _, ok := logger.InteractionIDFromContext(ctx); !ok {
		ctx = logger.WithInteractionID(ctx, logger.GenerateInteractionID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runner.Active() {
		return s.feedMiniGame(ctx)
	}

	entity, err := s.entities.Resolve(targetID)
	if err != nil {
		s.report(ctx, InteractionStation, err)
		return err
	}

	switch entity.Kind {
	case interact.KindStation:
		err = s.interactStation(ctx, entity.Station)
		s.report(ctx, InteractionStation, err)
	case interact.KindTrash:
		err = s.discardHeld(ctx)
		s.report(ctx, InteractionTrash, err)
	case interact.KindCustomer:
		err = s.serveCustomer(ctx, entity)
	default:
		err = fmt.Errorf("%w: kind %s", domain.ErrUnknownEntity, entity.Kind)
		s.report(ctx, InteractionStation, err)
	}
	return err
}

// feedMiniGame routes one input to the active game. Completion applies the
// pending ingredient and stamps the quality onto the held cup. Caller holds
// the session lock.
func (s *Session) feedMiniGame(ctx context.Context) error {
	quality, done, err := s.runner.Input(ctx)
	if err != nil {
		s.report(ctx, InteractionMiniGame, err)
		return err
	}
	if !done {
		return nil
	}

	if s.held.IsCup() && s.pendingSet {
		s.held.Contents.Add(s.pending)
		s.held.Quality = quality
	}
	s.pending = ""
	s.pendingSet = false

	s.publishResult(ctx, InteractionMiniGame, metrics.OutcomeSuccess,
		fmt.Sprintf("quality %d", quality))
	return nil
}

// interactStation dispatches a station click. Caller holds the session lock.
func (s *Session) interactStation(ctx context.Context, station interact.Station) error {
	switch station {
	case interact.StationCups:
		if s.held != nil {
			return domain.ErrHandsFull
		}
		s.held = domain.NewCup()
		return nil

	case interact.StationPastry:
		if s.held != nil {
			return domain.ErrHandsFull
		}
		pastries := s.registry.Pastries()
		s.held = domain.NewPastry(pastries[s.index(len(pastries))].ID)
		return nil

	case interact.StationEspresso:
		if !s.held.IsCup() {
			return domain.ErrCupRequired
		}
		cfg := minigame.DefaultTimingConfig()
		if s.ledger.HasUpgrade(menu.UpgradeBurrGrinder) {
			cfg.ClosePad = BurrGrinderClosePad
		}
		if err := s.runner.StartTiming(ctx, cfg); err != nil {
			return err
		}
		s.pending = domain.IngredientEspresso
		s.pendingSet = true
		return nil

	case interact.StationMilk:
		if !s.held.IsCup() {
			return domain.ErrCupRequired
		}
		cfg := minigame.DefaultTapConfig()
		if s.ledger.HasUpgrade(menu.UpgradePressureSteamer) {
			cfg.Threshold = PressureSteamerThreshold
		}
		if err := s.runner.StartTap(ctx, cfg); err != nil {
			return err
		}
		s.pending = domain.IngredientMilk
		s.pendingSet = true
		return nil

	case interact.StationVanilla:
		return s.addSyrup(domain.IngredientVanilla)
	case interact.StationCaramel:
		return s.addSyrup(domain.IngredientCaramel)
	case interact.StationChocolate:
		return s.addSyrup(domain.IngredientChocolate)
	}
	return fmt.Errorf("%w: station %s", domain.ErrUnknownEntity, station)
}

// addSyrup applies a syrup flag instantly, no mini-game involved
func (s *Session) addSyrup(ing domain.Ingredient) error {
	if !s.held.IsCup() {
		return domain.ErrCupRequired
	}
	s.held.Contents.Add(ing)
	return nil
}

// discardHeld empties the player's hands. Caller holds the session lock.
func (s *Session) discardHeld(ctx context.Context) error {
	if s.held == nil {
		return domain.ErrNothingHeld
	}
	logger.FromContext(ctx).Info("Held item discarded", "kind", s.held.Kind)
	s.held = nil
	return nil
}

// serveCustomer hands the held item to a customer. On a match the held slot
// is cleared; on a mismatch the item stays in hand. Caller holds the lock.
func (s *Session) serveCustomer(ctx context.Context, entity interact.Entity) error {
	res, err := s.resolver.Serve(ctx, s.held, entity.CustomerID)
	if err != nil {
		s.report(ctx, InteractionCustomer, err)
		return err
	}

	s.held = nil
	s.publishResult(ctx, InteractionCustomer, metrics.OutcomeSuccess,
		fmt.Sprintf("+$%d", res.Receipt.Total))
	metrics.Interactions.WithLabelValues(InteractionCustomer, metrics.OutcomeSuccess).Inc()
	return nil
}

// CancelMiniGame aborts the active game. The pending ingredient is dropped
// and the cup keeps its prior contents and quality.
func (s *Session) CancelMiniGame(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.runner.Cancel(ctx); err != nil {
		return err
	}
	s.pending = ""
	s.pendingSet = false
	return nil
}

// BuyUpgrade purchases an upgrade and applies its effect immediately
func (s *Session) BuyUpgrade(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upgrade, err := s.ledger.BuyUpgrade(ctx, id)
	if err != nil {
		s.report(ctx, InteractionUpgrade, err)
		return err
	}

	if upgrade.ID == menu.UpgradePastryDisplay {
		s.managers.SetMaxCustomers(s.managers.MaxCustomers() + PastryDisplayExtraSeats)
	}
	s.publishResult(ctx, InteractionUpgrade, metrics.OutcomeSuccess, upgrade.DisplayName)
	metrics.Interactions.WithLabelValues(InteractionUpgrade, metrics.OutcomeSuccess).Inc()
	return nil
}

// SpawnCustomer admits one customer, subject to the capacity cap
func (s *Session) SpawnCustomer(ctx context.Context) (domain.Customer, error) {
	return s.managers.Spawn(ctx)
}

// Tick advances the whole session one frame: customer walks and the active
// mini-game, in that order.
func (s *Session) Tick(ctx context.Context, dt time.Duration) {
	s.managers.Tick(ctx, dt)
	s.runner.Tick(ctx)
}

// Held returns the currently held item, nil for empty hands
func (s *Session) Held() *domain.HeldItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held == nil {
		return nil
	}
	copy := *s.held
	return &copy
}

// Snapshot assembles the read-only view consumed by presentation
func (s *Session) Snapshot() domain.GameState {
	money, rating, served := s.ledger.Totals()
	return domain.GameState{
		Money:           money,
		Rating:          rating,
		CustomersServed: served,
		ActiveOrders:    s.book.Active(),
		Customers:       s.managers.Customers(),
		OwnedUpgrades:   s.ledger.OwnedUpgrades(),
		HeldItem:        s.Held(),
		MiniGameActive:  s.runner.Active(),
	}
}

// Reset returns the session to its opening state: customers and orders
// dropped, hands emptied, any game cancelled, totals restored.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	if s.runner.Active() {
		if err := s.runner.Cancel(ctx); err != nil {
			logger.FromContext(ctx).Error("Failed to cancel mini-game on reset", "error", err)
		}
	}
	s.held = nil
	s.pending = ""
	s.pendingSet = false
	s.mu.Unlock()

	for _, c := range s.managers.Customers() {
		s.entities.Deregister(c.ID.String())
	}
	s.managers.Reset(ctx)
	s.ledger.Reset(ctx, s.startingMoney)

	if err := s.bus.Publish(ctx, event.NewSessionResetEvent()); err != nil {
		logger.FromContext(ctx).Error("Failed to publish session reset", "error", err)
	}
	logger.FromContext(ctx).Info("Session reset")
}

// report publishes a rejected-interaction result when err is non-nil and a
// success result otherwise, keeping the metrics labels consistent.
func (s *Session) report(ctx context.Context, kind string, err error) {
	if err != nil {
		s.publishResult(ctx, kind, metrics.OutcomeRejected, err.Error())
		metrics.Interactions.WithLabelValues(kind, metrics.OutcomeRejected).Inc()
		logger.FromContext(ctx).Warn("Interaction rejected", "kind", kind, "reason", err)
		return
	}
	s.publishResult(ctx, kind, metrics.OutcomeSuccess, "")
	metrics.Interactions.WithLabelValues(kind, metrics.OutcomeSuccess).Inc()
}

func (s *Session) publishResult(ctx context.Context, kind, outcome, message string) {
	id, _ := logger.InteractionIDFromContext(ctx)
	if err := s.bus.Publish(ctx, event.NewInteractionResultEvent(id, kind, outcome, message)); err != nil {
		logger.FromContext(ctx).Error("Failed to publish interaction result", "error", err)
	}
}
