package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"normtest/adapters/excel"
	"normtest/domain/normality"
	"normtest/internal/config"
	"normtest/internal/container"
	"normtest/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli carries the settings shared by every subcommand
type cli struct {
	alpha  float64
	lang   string
	digits int

	cfg *config.Config
	app *container.Container
}

func newRootCmd() *cobra.Command {
	env := &cli{}

	rootCmd := &cobra.Command{
		Use:          "normtest",
		Short:        "Normality test critical values and decisions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.init(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if env.app != nil {
				return env.app.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Float64Var(&env.alpha, "alpha", normality.DefaultAlpha, "Significance level")
	rootCmd.PersistentFlags().StringVar(&env.lang, "lang", normality.DefaultLanguage, "Output language (en, pt-BR)")
	rootCmd.PersistentFlags().IntVar(&env.digits, "digits", normality.DefaultDigits, "Digits shown in FULL output")

	rootCmd.AddCommand(
		newCriticalCmd(env),
		newFitCmd(env),
		newEvaluateCmd(env),
		newBatteryCmd(env),
		newExportTablesCmd(env),
		newResultsCmd(env),
		newServeCmd(env),
	)
	return rootCmd
}

func (e *cli) init(ctx context.Context) error {
	// A missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := container.Open(ctx, cfg)
	if err != nil {
		return err
	}
	e.cfg, e.app = cfg, app
	return nil
}

// testContext starts from the configured defaults and applies only the
// flags the user actually set
func (e *cli) testContext(cmd *cobra.Command) normality.TestContext {
	tc := e.cfg.Defaults
	flags := cmd.Flags()
	if flags.Changed("alpha") {
		tc.Alpha = e.alpha
	}
	if flags.Changed("lang") {
		tc.Language = e.lang
	}
	if flags.Changed("digits") {
		tc.Digits = e.digits
	}
	return tc
}

func newCriticalCmd(env *cli) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "critical [test]",
		Short: "Look up a critical value",
		Long: `Look up the critical value of a test for a sample size and significance level.

Example: normtest critical lilliefors --n 23 --alpha 0.05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc := env.testContext(cmd)
			cv, err := env.app.Service.CriticalValue(args[0], n, tc.Alpha)
			if err != nil {
				return err
			}
			printCriticalValue(cmd.OutOrStdout(), cv)
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newFitCmd(env *cli) *cobra.Command {
	var (
		n         int
		statistic float64
		pValue    float64
		mode      string
		detail    string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "fit [test]",
		Short: "Decide on an already computed statistic",
		Long: `Compare a test statistic with its critical value, or a p-value with alpha.

Example: normtest fit shapiro_wilk --n 20 --statistic 0.969 --detail full`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := normality.ParseTestID(args[0])
			if err != nil {
				return err
			}
			m, err := normality.ParseMode(mode)
			if err != nil {
				return err
			}
			d, err := normality.ParseDetailLevel(detail)
			if err != nil {
				return err
			}

			req := normality.FitRequest{Test: id, N: n, Statistic: statistic, Mode: m, Detail: d}
			if cmd.Flags().Changed("p-value") {
				req.PValue = &pValue
			}

			ev, err := env.app.Service.Fit(cmd.Context(), env.testContext(cmd), req)
			if err != nil {
				return err
			}
			return printEvaluation(cmd.OutOrStdout(), ev, asJSON)
		},
	}

	cmd.Flags().IntVar(&n, "n", 0, "Sample size")
	cmd.Flags().Float64Var(&statistic, "statistic", 0, "Test statistic")
	cmd.Flags().Float64Var(&pValue, "p-value", 0, "P-value (required in p_value mode)")
	cmd.Flags().StringVar(&mode, "mode", "critical", "Comparison mode: critical|p_value")
	cmd.Flags().StringVar(&detail, "detail", "short", "Detail level: short|full|binary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("statistic")
	return cmd
}

// sampleFlags reads observations from --values or from --file/--column
type sampleFlags struct {
	file   string
	column string
	values []float64
}

func (s *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.file, "file", "", "xlsx or csv file holding the sample")
	cmd.Flags().StringVar(&s.column, "column", "", "Column to read (default: first column)")
	cmd.Flags().Float64SliceVar(&s.values, "values", nil, "Inline observations, comma separated")
}

func (s *sampleFlags) load() ([]float64, error) {
	switch {
	case len(s.values) > 0 && s.file != "":
		return nil, fmt.Errorf("use either --values or --file, not both")
	case len(s.values) > 0:
		return s.values, nil
	case s.file != "":
		return excel.NewDataReader(s.file).ReadColumn(s.column)
	default:
		return nil, fmt.Errorf("a sample is required: pass --file or --values")
	}
}

func newEvaluateCmd(env *cli) *cobra.Command {
	var (
		sample sampleFlags
		mode   string
		detail string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [test]",
		Short: "Compute a test statistic from a sample and decide",
		Long: `Read a numeric column, compute the statistic of one test and decide.

Example: normtest evaluate sw --file heights.xlsx --column height --detail full`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := normality.ParseTestID(args[0])
			if err != nil {
				return err
			}
			m, err := normality.ParseMode(mode)
			if err != nil {
				return err
			}
			d, err := normality.ParseDetailLevel(detail)
			if err != nil {
				return err
			}
			values, err := sample.load()
			if err != nil {
				return err
			}

			ev, err := env.app.Service.Evaluate(cmd.Context(), env.testContext(cmd), id, values, m, d)
			if err != nil {
				return err
			}
			return printEvaluation(cmd.OutOrStdout(), ev, asJSON)
		},
	}

	sample.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", "critical", "Comparison mode: critical|p_value")
	cmd.Flags().StringVar(&detail, "detail", "short", "Detail level: short|full|binary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newBatteryCmd(env *cli) *cobra.Command {
	var (
		sample sampleFlags
		detail string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Run every normality test on one sample",
		Long: `Run all five tests concurrently. Each test uses its critical-value table when
alpha is tabulated, otherwise its p-value; tests that can do neither are skipped.

Example: normtest battery --file sample.csv --format markdown --out results.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := normality.ParseDetailLevel(detail)
			if err != nil {
				return err
			}
			values, err := sample.load()
			if err != nil {
				return err
			}
			tc := env.testContext(cmd)

			battery, err := env.app.Service.EvaluateAll(cmd.Context(), tc, values, d)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "markdown", "md":
				md, err := env.app.Renderer.Markdown(battery.Results(), tc)
				if err != nil {
					return err
				}
				fmt.Fprint(w, md)
			case "html":
				page, err := env.app.Renderer.HTML(battery.Results(), tc)
				if err != nil {
					return err
				}
				fmt.Fprint(w, string(page))
			case "text", "":
				printBattery(w, battery)
			default:
				return fmt.Errorf("unknown format %q (text|markdown|html)", format)
			}

			if out != "" {
				return excel.ExportResults(out, batteryRecords(battery, tc))
			}
			return nil
		},
	}

	sample.register(cmd)
	cmd.Flags().StringVar(&detail, "detail", "short", "Detail level: short|full|binary")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text|markdown|html")
	cmd.Flags().StringVar(&out, "out", "", "Also write the results to an xlsx or csv file")
	return cmd
}

func newExportTablesCmd(env *cli) *cobra.Command {
	var (
		out   string
		tests []string
	)

	cmd := &cobra.Command{
		Use:   "export-tables",
		Short: "Write the critical-value tables to an xlsx workbook",
		Long: `Write one sheet per test with every tabulated row, the gap anchors and the
extrapolation rule beyond the table.

Example: normtest export-tables --out tables.xlsx --test ks --test lilliefors`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]normality.TestID, 0, len(tests))
			for _, t := range tests {
				id, err := normality.ParseTestID(t)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if err := excel.ExportTables(out, ids...); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Tables written to %s", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "critical_values.xlsx", "Output xlsx path")
	cmd.Flags().StringSliceVar(&tests, "test", nil, "Tests to export (default: all)")
	return cmd
}

func newResultsCmd(env *cli) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "results",
		Short: "List stored results (newest first)",
		Long: `List results from the PostgreSQL ledger, newest first.

Without DATABASE_URL each invocation keeps its results in memory and forgets
them on exit, so there is nothing to list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !env.cfg.UsesDatabase() {
				return fmt.Errorf("no result ledger: set DATABASE_URL to store and list results across runs")
			}
			recs, err := env.app.Service.RecentResults(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(recs)
			}
			printRecords(cmd.OutOrStdout(), recs)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the records as JSON (importable with migrate)")
	return cmd
}

func newServeCmd(env *cli) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = env.cfg.Server.Port
			}
			gin.SetMode(env.cfg.Server.GinMode)
			return ui.NewServer(env.app.Service).Start(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (default: PORT or 8080)")
	return cmd
}
