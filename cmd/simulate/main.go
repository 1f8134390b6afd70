package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - run:   Play a number of days with the greedy merchant and print a ledger
// - quote: Print the catalog price list

func main() {
	// Subcommand definitions
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	quoteCmd := flag.NewFlagSet("quote", flag.ExitOnError)

	// run parameters
	runDays := runCmd.Int("days", 7, "Number of days to play")
	runSeed := runCmd.Int64("seed", 1, "Seed of the first run")
	runRuns := runCmd.Int("runs", 1, "Number of runs, seeded seed, seed+1, ...")
	runGold := runCmd.Int("gold", 100, "Starting gold")
	runCatalog := runCmd.String("catalog", "", "Optional catalog override file")
	runSave := runCmd.Bool("save", false, "Save the final game of a single run to the configured storage")

	// quote parameters
	quoteCatalog := quoteCmd.String("catalog", "", "Optional catalog override file")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := simulateFlags{
		Run: runFlags{
			cmd:     runCmd,
			days:    runDays,
			seed:    runSeed,
			runs:    runRuns,
			gold:    runGold,
			catalog: runCatalog,
			save:    runSave,
		},
		Quote: quoteFlags{
			cmd:     quoteCmd,
			catalog: quoteCatalog,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type simulateFlags struct {
	Run   runFlags
	Quote quoteFlags
}

type runFlags struct {
	cmd     *flag.FlagSet
	days    *int
	seed    *int64
	runs    *int
	gold    *int
	catalog *string
	save    *bool
}

type quoteFlags struct {
	cmd     *flag.FlagSet
	catalog *string
}

func runSubcommand(ctx context.Context, flags *simulateFlags) error {
	switch os.Args[1] {
	case "run":
		return handleRun(ctx, flags)
	case "quote":
		return handleQuote(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleRun(ctx context.Context, flags *simulateFlags) error {
	if err := flags.Run.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse run flags")
	}

	opts := runOptions{
		days:        *flags.Run.days,
		firstSeed:   *flags.Run.seed,
		runs:        *flags.Run.runs,
		gold:        *flags.Run.gold,
		catalogPath: *flags.Run.catalog,
		save:        *flags.Run.save,
	}
	if err := opts.validate(); err != nil {
		return err
	}

	return runSimulations(ctx, os.Stdout, opts)
}

func handleQuote(flags *simulateFlags) error {
	if err := flags.Quote.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse quote flags")
	}

	return printPriceList(os.Stdout, *flags.Quote.catalog)
}

func printUsage() {
	fmt.Println(`Usage: simulate <command> [options]

Commands:
  run     Play a number of days with the greedy merchant and print a ledger
  quote   Print the catalog price list

Examples:
  simulate run -days 14 -seed 42
  simulate run -days 30 -seed 1 -runs 8
  simulate quote -catalog ./config/catalog.yaml`)
}
