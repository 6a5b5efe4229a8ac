package scripting

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/game/equipment"
	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
)

// Workspace is the world a script manipulates: an item catalog, named grids, one
// equipment manager and every instance spawned so far, keyed by InstanceID.
//
// Workspace is not safe for concurrent use.
type Workspace struct {
	registry  *inventory.Registry
	grids     map[string]*inventory.Grid
	equipment *equipment.Manager
	items     map[string]*inventory.ItemInstance
	logger    *zap.Logger
}

// NewWorkspace returns an empty Workspace over reg.
//
// Precondition: reg must be non-nil; logger may be nil.
// Postcondition: Returns a Workspace with no grids and no instances.
func NewWorkspace(reg *inventory.Registry, logger *zap.Logger) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{
		registry:  reg,
		grids:     make(map[string]*inventory.Grid),
		equipment: equipment.NewManager(logger.Named("equipment")),
		items:     make(map[string]*inventory.ItemInstance),
		logger:    logger,
	}
}

// Registry returns the item catalog.
func (w *Workspace) Registry() *inventory.Registry { return w.registry }

// Equipment returns the workspace's equipment manager.
func (w *Workspace) Equipment() *equipment.Manager { return w.equipment }

// AddGrid registers g under name and tracks the items it already holds.
//
// Precondition: name must be non-empty and unused; g must be non-nil.
func (w *Workspace) AddGrid(name string, g *inventory.Grid) error {
	if name == "" {
		return fmt.Errorf("scripting: Workspace.AddGrid: empty grid name")
	}
	if g == nil {
		return fmt.Errorf("scripting: Workspace.AddGrid: nil grid %q", name)
	}
	if _, dup := w.grids[name]; dup {
		return fmt.Errorf("scripting: Workspace.AddGrid: grid %q already exists", name)
	}
	w.grids[name] = g
	for _, it := range g.Items() {
		w.Track(it)
	}
	return nil
}

// NewGrid creates a grid of the given size and registers it under name.
func (w *Workspace) NewGrid(name string, width, height int) (*inventory.Grid, error) {
	g, err := inventory.NewGrid(width, height, w.logger.Named("grid").With(zap.String("grid", name)))
	if err != nil {
		return nil, fmt.Errorf("scripting: Workspace.NewGrid %q: %w", name, err)
	}
	if err := w.AddGrid(name, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Grid returns the grid registered under name.
func (w *Workspace) Grid(name string) (*inventory.Grid, bool) {
	g, ok := w.grids[name]
	return g, ok
}

// GridNames returns the registered grid names in lexicographic order.
func (w *Workspace) GridNames() []string {
	names := make([]string, 0, len(w.grids))
	for name := range w.grids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spawn creates a new instance of the catalog item itemID and tracks it.
//
// Postcondition: The instance is in no grid and no slot.
func (w *Workspace) Spawn(itemID string, count int) (*inventory.ItemInstance, error) {
	def, ok := w.registry.Item(itemID)
	if !ok {
		return nil, fmt.Errorf("scripting: Workspace.Spawn: unknown item %q", itemID)
	}
	it := inventory.NewItemInstance(def, count)
	w.Track(it)
	return it, nil
}

// Track makes an instance addressable by its InstanceID.
func (w *Workspace) Track(it *inventory.ItemInstance) {
	if it != nil {
		w.items[it.InstanceID] = it
	}
}

// Item returns the tracked instance with the given InstanceID.
func (w *Workspace) Item(instanceID string) (*inventory.ItemInstance, bool) {
	it, ok := w.items[instanceID]
	return it, ok
}
