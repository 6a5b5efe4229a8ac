package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pedrocgb/Medieval-Project/internal/config"
	"github.com/pedrocgb/Medieval-Project/internal/game/inventory"
	"github.com/pedrocgb/Medieval-Project/internal/observability"
	"github.com/pedrocgb/Medieval-Project/internal/scripting"
)

const (
	backpackGrid = "backpack"
	stashGrid    = "stash"
)

var flagPlain bool

var runCmd = &cobra.Command{
	Use:   "run [script.lua...]",
	Short: "Run scenario scripts against a fresh backpack and stash",
	Long: `Builds the configured backpack and stash, places the starting items,
executes each script in order against the same workspace and prints every grid
and the equipment set.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagPlain, "plain", false, "print grids without colour")
}

func runRun(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg, logger := setup()
	defer func() { _ = logger.Sync() }()

	ws, err := buildWorkspace(cfg, logger)
	if err != nil {
		return err
	}

	runner := scripting.NewRunner(ws, cfg.Scripting.InstructionLimit, observability.Component(logger, "scripting"))
	for _, path := range args {
		scriptStart := time.Now()
		if err := runner.RunFile(path); err != nil {
			return err
		}
		logger.Info("script complete",
			zap.String("script", path),
			zap.Duration("elapsed", time.Since(scriptStart)),
		)
	}

	printWorkspace(cmd.OutOrStdout(), ws, !flagPlain)
	logger.Info("invsim finished", zap.Duration("elapsed", time.Since(start)))
	return nil
}

// buildWorkspace loads the catalog, creates the configured grids and seeds the
// backpack with the starting items, if any.
func buildWorkspace(cfg config.Config, logger *zap.Logger) (*scripting.Workspace, error) {
	reg := inventory.NewRegistry()
	n, err := reg.LoadDir(cfg.Content.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	logger.Info("item catalog loaded", zap.Int("items", n), zap.String("dir", cfg.Content.ItemsDir))

	ws := scripting.NewWorkspace(reg, observability.Component(logger, "workspace"))
	backpack, err := ws.NewGrid(backpackGrid, cfg.Inventory.Backpack.Width, cfg.Inventory.Backpack.Height)
	if err != nil {
		return nil, err
	}
	if _, err := ws.NewGrid(stashGrid, cfg.Inventory.Stash.Width, cfg.Inventory.Stash.Height); err != nil {
		return nil, err
	}

	if cfg.Content.StartingItems == "" {
		return ws, nil
	}
	items, err := inventory.LoadStartingItems(cfg.Content.StartingItems)
	if err != nil {
		return nil, err
	}
	placed, skipped, err := inventory.PlaceStarting(backpack, reg, items)
	if err != nil {
		return nil, err
	}
	for _, it := range placed {
		ws.Track(it)
	}
	for _, it := range skipped {
		ws.Track(it)
	}
	logger.Info("starting items placed",
		zap.Int("placed", len(placed)),
		zap.Int("skipped", len(skipped)),
	)
	return ws, nil
}

func printWorkspace(w io.Writer, ws *scripting.Workspace, colour bool) {
	for _, name := range ws.GridNames() {
		g, _ := ws.Grid(name)
		fmt.Fprintf(w, "%s (%dx%d, %d free)\n", name, g.Width(), g.Height(), g.FreeCellCount())
		if colour {
			fmt.Fprintln(w, renderStyled(g))
		} else {
			fmt.Fprint(w, inventory.Render(g))
		}
		for _, it := range g.Items() {
			fmt.Fprintf(w, "  %-24s x%-3d at (%d,%d) rot %d\n", it.Def.Name, it.StackCount(), it.X(), it.Y(), it.Rotation().Degrees())
		}
		fmt.Fprintln(w)
	}

	equipped := ws.Equipment().Set().Equipped()
	fmt.Fprintf(w, "equipment (%d)\n", len(equipped))
	for _, e := range equipped {
		fmt.Fprintf(w, "  %-12s %s\n", e.Slot.DisplayName(), e.Item.Def.Name)
	}
}
