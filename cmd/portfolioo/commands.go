package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"Portfolioo/internal/holdings"
	"Portfolioo/internal/recorder"
	"Portfolioo/internal/report"
)

// reportCmd runs one calculation pass and prints it.
type reportCmd struct {
	summaryOnly bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute target amounts and print the rebalancing report" }
func (*reportCmd) Usage() string {
	return `portfolioo report [-s]

  Reads the holdings file and the cash balance, computes every holding's
  target amount and prints amount, target and difference.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summaryOnly, "s", false, "Print only the total and cash summary line")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	p, err := a.sched.RunPass(recorder.TriggerManual)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.summaryOnly {
		fmt.Println(report.FormatSummaryLine(p))
	} else {
		fmt.Print(report.FormatReport(p))
	}
	return subcommands.ExitSuccess
}

// cashCmd shows or sets the persisted cash balance.
type cashCmd struct {
	note string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "show or set the cash balance" }
func (*cashCmd) Usage() string {
	return `portfolioo cash [-note <text>] [<amount>]

  Without argument, prints the current cash balance. With an amount such as
  1,200,000 the balance is replaced and saved for the next calculation.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.note, "note", "manual", "Note stored with the cash change")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: expected at most one amount")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if f.NArg() == 0 {
		state := a.sched.Cash.GetState()
		fmt.Printf("%d (updated %s)\n", state.Amount, state.UpdatedAt.Format("2006-01-02 15:04"))
		return subcommands.ExitSuccess
	}

	amount, err := holdings.ParseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	if err := a.sched.SetCash(amount, c.note); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving cash: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runCmd keeps recalculating on the configured schedule.
type runCmd struct {
	now bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "recalculate on the configured cron schedule" }
func (*runCmd) Usage() string {
	return `portfolioo run [-now]

  Runs until SIGINT or SIGTERM, logging a report on every scheduled pass.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.now, "now", os.Getenv("RUN_ON_START") == "true", "Run one pass immediately on start")
}

func (c *runCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Println("[INFO] Portfolioo starting...")
	a, err := openApp()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := a.sched.Register(a.cfg.Schedule.RecalcCron); err != nil {
		log.Printf("[FATAL] register cron tasks: %v", err)
		return subcommands.ExitFailure
	}
	a.sched.Start()
	defer a.sched.Stop()

	if c.now {
		log.Println("[INFO] running first pass now")
		a.sched.RunNow()
	}

	log.Println("[INFO] Portfolioo is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case <-ctx.Done():
	}
	return subcommands.ExitSuccess
}
