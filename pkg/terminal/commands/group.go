package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/terminal/export"
)

// GroupScanner is the engine surface the CLI needs for group scans.
type GroupScanner interface {
	ScanGroup(ctx context.Context, npis []string, concurrencyHint int) (*domain.GroupScanResult, error)
}

type GroupCmd struct {
	timeout     time.Duration
	concurrency int
	scanner     GroupScanner
	reporter    *export.Reporter
}

func NewGroupCmd(scanner GroupScanner, reporter *export.Reporter) *cobra.Command {
	gc := &GroupCmd{scanner: scanner, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "group <npi>...",
		Short: "Analyze a practice group of providers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  gc.run,
	}

	cmd.Flags().DurationVar(&gc.timeout, "timeout", 5*time.Minute, "Overall deadline for the batch")
	cmd.Flags().IntVar(&gc.concurrency, "concurrency", 5, "Maximum scans in flight")

	return cmd
}

func (gc *GroupCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), gc.timeout)
	defer cancel()

	group, err := gc.scanner.ScanGroup(ctx, args, gc.concurrency)
	if err != nil {
		return fmt.Errorf("group scan failed: %w", err)
	}

	return gc.reporter.HandleGroup(group)
}
