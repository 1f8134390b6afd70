package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"text/tabwriter"
	"time"

	"shopkeep/config"
	"shopkeep/internal/domain/catalog"
	"shopkeep/internal/domain/engine"
	"shopkeep/internal/domain/entity"
	"shopkeep/internal/domain/repository"
	logs "shopkeep/internal/infra/log"
	"shopkeep/internal/infra/persistence"
	"shopkeep/internal/infra/random"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// maxBoxesPerDay keeps the merchant from spending every coin on a single morning.
const maxBoxesPerDay = 3

type runOptions struct {
	days        int
	firstSeed   int64
	runs        int
	gold        int
	catalogPath string
	save        bool
}

func (o runOptions) validate() error {
	switch {
	case o.days <= 0:
		return errors.New("days must be positive")
	case o.runs <= 0:
		return errors.New("runs must be positive")
	case o.gold <= 0:
		return errors.New("gold must be positive")
	case o.save && o.runs > 1:
		return errors.New("save only works with a single run")
	}

	return nil
}

// dayLedger is one line of a run's ledger.
type dayLedger struct {
	Day       int
	Boxes     int
	Crafted   int
	Customers int
	Served    int
	Earned    int
	Gold      int
	Stock     int
}

type runResult struct {
	seed   int64
	days   []dayLedger
	final  entity.GameState
	events []entity.GameEvent
}

// runSimulations plays every seeded run concurrently and prints the ledgers in seed order.
func runSimulations(ctx context.Context, w io.Writer, opts runOptions) error {
	base, err := catalog.LoadFile(opts.catalogPath)
	if err != nil {
		return err
	}
	c, err := catalog.New(base)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog")
	}

	results := make([]*runResult, opts.runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range opts.runs {
		seed := opts.firstSeed + int64(i)
		g.Go(func() error {
			result, err := playGame(gctx, c, seed, opts.gold, opts.days)
			if err != nil {
				return errors.Wrapf(err, "run with seed %d", seed)
			}
			results[i] = result

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		printLedger(w, result)
	}
	if len(results) > 1 {
		printSummary(w, results)
	}

	if opts.save {
		return saveGame(ctx, results[0])
	}

	return nil
}

// playGame plays days full day cycles with a private seeded engine.
func playGame(ctx context.Context, c *catalog.Catalog, seed int64, gold, days int) (*runResult, error) {
	m := &merchant{engine: engine.New(c, random.NewSeededLCG(seed))}
	m.apply(m.engine.NewGame(gold))

	result := &runResult{seed: seed}
	for range days {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		row, err := m.playDay()
		if err != nil {
			return nil, err
		}
		result.days = append(result.days, row)
	}
	result.final = m.state
	result.events = m.events

	return result, nil
}

// merchant is a greedy player: it buys the dearest affordable boxes, crafts the most valuable
// recipes it can and sells each customer the best matching item in stock.
type merchant struct {
	engine *engine.Engine
	state  entity.GameState
	events []entity.GameEvent
}

func (m *merchant) apply(result engine.Result) {
	m.state = result.State
	m.events = append(m.events, result.Effects.Events...)
}

func (m *merchant) step(result engine.Result, err error) error {
	if err != nil {
		return errors.Wrapf(err, "day %d", m.state.Day)
	}
	m.apply(result)

	return nil
}

func (m *merchant) playDay() (dayLedger, error) {
	row := dayLedger{Day: m.state.Day}
	earningsBefore := m.state.TotalEarnings

	if err := m.step(m.engine.BeginCrafting(m.state)); err != nil {
		return row, err
	}
	row.Boxes = m.buyBoxes()
	row.Crafted = m.craftAll()

	if err := m.step(m.engine.OpenShop(m.state)); err != nil {
		return row, err
	}
	row.Customers = len(m.state.Customers)
	row.Served = m.serveAll()

	if err := m.step(m.engine.EndDay(m.state)); err != nil {
		return row, err
	}
	row.Earned = m.state.TotalEarnings - earningsBefore
	row.Gold = m.state.Gold
	for _, count := range m.state.Inventory {
		row.Stock += count
	}

	if err := m.step(m.engine.StartNewDay(m.state)); err != nil {
		return row, err
	}

	return row, nil
}

func (m *merchant) buyBoxes() int {
	boxes := m.engine.Catalog().Boxes()
	opened := 0
	for opened < maxBoxesPerDay {
		var pick *entity.BoxType
		for i := range boxes {
			if boxes[i].Cost <= m.state.Gold {
				pick = &boxes[i]
			}
		}
		if pick == nil {
			break
		}

		result, err := m.engine.OpenBox(m.state, pick.ID)
		if err != nil {
			break
		}
		m.apply(result)
		opened++
	}

	return opened
}

func (m *merchant) craftAll() int {
	crafted := 0
	for {
		var best *entity.Recipe
		for _, recipe := range m.engine.Catalog().Recipes() {
			if !engine.CanCraft(m.state, recipe) {
				continue
			}
			if best == nil || recipe.SellPrice > best.SellPrice {
				best = &recipe
			}
		}
		if best == nil {
			return crafted
		}

		result, err := m.engine.CraftItem(m.state, best.ID)
		if err != nil {
			return crafted
		}
		m.apply(result)
		crafted++
	}
}

func (m *merchant) serveAll() int {
	actions := []engine.SaleAction{engine.ActionSell, engine.ActionAcceptLower, engine.ActionBarter}

	served := 0
	customers := append([]entity.Customer(nil), m.state.Customers...)
	for _, customer := range customers {
		entries := engine.SortByMatchQualityAndRarity(m.engine.Inventory(m.state), customer)

	entriesLoop:
		for _, entry := range entries {
			if engine.MatchQuality(entry.Recipe, customer) == engine.MatchNone {
				break
			}
			for _, action := range actions {
				result, err := m.engine.ServeCustomer(m.state, customer.ID, entry.Recipe.ID, action)
				if err != nil {
					continue
				}
				m.apply(result)
				served++

				break entriesLoop
			}
		}
	}

	return served
}

func printLedger(w io.Writer, result *runResult) {
	fmt.Fprintf(w, "Seed %d\n", result.seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "day\tboxes\tcrafted\tcustomers\tserved\tearned\tgold\tstock\t")
	for _, row := range result.days {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			row.Day, row.Boxes, row.Crafted, row.Customers, row.Served, row.Earned, row.Gold, row.Stock)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "Total earnings %d, final gold %d\n\n", result.final.TotalEarnings, result.final.Gold)
}

func printSummary(w io.Writer, results []*runResult) {
	best, worst := results[0], results[0]
	total := 0
	for _, result := range results {
		total += result.final.Gold
		if result.final.Gold > best.final.Gold {
			best = result
		}
		if result.final.Gold < worst.final.Gold {
			worst = result
		}
	}

	fmt.Fprintf(w, "Runs %d, mean final gold %d, best seed %d (%d), worst seed %d (%d)\n",
		len(results), total/len(results), best.seed, best.final.Gold, worst.seed, worst.final.Gold)
}

// saveGame replaces the configured save slot with the simulated game and its event log.
func saveGame(ctx context.Context, result *runResult) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	storage, closeStorage, err := persistence.OpenForTool(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Error("Failed to close storage", slog.Any("error", err))
		}
	}()

	slot := cfg.Game.Slot
	err = storage.TxManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GameStateRepo().SaveSnapshot(ctx, &entity.Snapshot{
			Slot:      slot,
			Version:   entity.SnapshotVersion,
			State:     result.final,
			UpdatedAt: time.Now(),
		}); err != nil {
			return errors.Wrap(err, "failed to save game state")
		}

		if err := repoFactory.EventRepo().DeleteEvents(ctx, slot); err != nil {
			return errors.Wrap(err, "failed to reset event log")
		}
		if len(result.events) == 0 {
			return nil
		}

		events := make([]*entity.GameEvent, 0, len(result.events))
		for _, event := range result.events {
			event.Slot = slot
			events = append(events, &event)
		}

		return errors.Wrap(repoFactory.EventRepo().AppendEvents(ctx, events), "failed to record events")
	})
	if err != nil {
		return err
	}

	logger.Info("Saved simulated game",
		slog.String("slot", slot),
		slog.Int("day", result.final.Day),
		slog.Int("events", len(result.events)),
	)

	return nil
}
