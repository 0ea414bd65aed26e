package cmd

import (
	"fmt"
	"os"

	"roster-manager/core/config"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"
	"roster-manager/core/sheet"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	rosterFile     string
	delegationFile string
	baselineTotal  int
)

// reconcileCmd reconciles a roster workbook against a delegation workbook
// without starting the server.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a roster workbook against a delegation workbook",
	Long: `Reconcile the attendee roster against a delegation (proxy) list.

Both inputs are xlsx workbooks. The roster contributes its ID column; the
delegation workbook is flattened, every non-blank cell across all sheets.
The report shows unique counts, duplicate counts, union and intersection
sizes, and the configured baseline membership total.

Examples:
  # Reconcile with the configured baseline
  roster-manager reconcile --roster roster.xlsx --delegation proxies.xlsx

  # Override the baseline for this run
  roster-manager reconcile --roster roster.xlsx --delegation proxies.xlsx --baseline 10905`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&rosterFile, "roster", "", "Path to the roster workbook (required)")
	reconcileCmd.Flags().StringVar(&delegationFile, "delegation", "", "Path to the delegation workbook (required)")
	reconcileCmd.Flags().IntVar(&baselineTotal, "baseline", 0, "Baseline membership total (defaults to configuration)")
	_ = reconcileCmd.MarkFlagRequired("roster")
	_ = reconcileCmd.MarkFlagRequired("delegation")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	baseline := baselineTotal
	if baseline <= 0 {
		baseline = cfg.Reconcile.BaselineTotal
	}

	rosterIDs, err := readRosterIDs(rosterFile)
	if err != nil {
		return err
	}

	delegation, err := readDelegation(delegationFile)
	if err != nil {
		return err
	}

	summary := reconcile.Summarize(delegation, rosterIDs, baseline)
	printSummary(l, summary)
	return nil
}

func readRosterIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer f.Close()

	rows, err := sheet.ParseRoster(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster workbook: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func readDelegation(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open delegation workbook: %w", err)
	}
	defer f.Close()

	values, err := sheet.Flatten(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse delegation workbook: %w", err)
	}
	return values, nil
}

func printSummary(l *zap.Logger, s reconcile.Summary) {
	l.Info("Reconciliation report",
		zap.Int("baseline_total", s.BaselineTotal),
		zap.Int("unique_delegation", s.UniqueDelegation),
		zap.Int("unique_roster", s.UniqueRoster),
		zap.Int("delegation_duplicate_keys", s.DelegationDuplicateKeys),
		zap.Int("delegation_excess", s.DelegationExcess),
		zap.Int("roster_duplicate_keys", s.RosterDuplicateKeys),
		zap.Int("roster_excess", s.RosterExcess),
		zap.Int("total_unique", s.TotalUnique),
		zap.Int("both_present", s.BothPresent),
	)
}
