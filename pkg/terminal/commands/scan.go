package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/terminal/export"
)

// Scanner is the engine surface the CLI needs for single scans.
type Scanner interface {
	ScanOne(ctx context.Context, npi string) (*domain.ScanResult, error)
}

type ScanCmd struct {
	timeout  time.Duration
	scanner  Scanner
	reporter *export.Reporter
}

func NewScanCmd(scanner Scanner, reporter *export.Reporter) *cobra.Command {
	sc := &ScanCmd{scanner: scanner, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "scan <npi>",
		Short: "Analyze one provider's revenue opportunity",
		Args:  cobra.ExactArgs(1),
		RunE:  sc.run,
	}

	cmd.Flags().DurationVar(&sc.timeout, "timeout", 60*time.Second, "Overall deadline for the scan")

	return cmd
}

func (sc *ScanCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), sc.timeout)
	defer cancel()

	result, err := sc.scanner.ScanOne(ctx, args[0])
	if err != nil {
		return fmt.Errorf("scan failed for %s: %w", args[0], err)
	}

	return sc.reporter.HandleScan(result)
}
