package main

import (
	"errors"
	"fmt"

	"csvsift/internal/filter"
	"csvsift/internal/locator"
	"csvsift/internal/logging"
	"csvsift/internal/present"
	"csvsift/internal/records"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type filterOptions struct {
	file  string
	by    string
	min   int
	max   int
	value string
	out   string
	force bool
}

var filterOpts filterOptions

// filterCmd runs one filter without the menu
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter a file once and optionally save the matches",
	Long: `Applies a single filter to a data file, prints the matching records and,
with --out, saves them as a new CSV file.

Examples:
  csvsift filter --by age --min 30 --max 45
  csvsift filter --file people --by city --value austin --out austin
  csvsift filter --by id --min 7 --out seven.csv --force`,
	Args: cobra.NoArgs,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterOpts.file, "file", "f", "", "Data file (default from config)")
	filterCmd.Flags().StringVar(&filterOpts.by, "by", "", "Field to filter on: age, city, last_name, first_name, id")
	filterCmd.Flags().IntVar(&filterOpts.min, "min", -1, "Minimum for age/id filters")
	filterCmd.Flags().IntVar(&filterOpts.max, "max", -1, "Maximum for age/id filters (default: --min)")
	filterCmd.Flags().StringVar(&filterOpts.value, "value", "", "Value for city/name filters")
	filterCmd.Flags().StringVarP(&filterOpts.out, "out", "o", "", "Save matches to this file")
	filterCmd.Flags().BoolVar(&filterOpts.force, "force", false, "Overwrite --out if it exists")
	_ = filterCmd.MarkFlagRequired("by")
}

func runFilter(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	log := currentLogger()
	opts := filterOpts

	kind, err := filter.ParseName(opts.by)
	if err != nil {
		return err
	}
	pred, err := predicateFromFlags(kind, opts)
	if err != nil {
		return err
	}

	path := locator.Resolve(workDir, locator.Normalize(opts.file, c.DefaultFile, c.Extension))
	ds, err := records.Load(path)
	if err != nil {
		return err
	}
	logging.For(log, logging.CategoryLoader).Info("dataset loaded", zap.String("path", path), zap.Int("rows", ds.Len()))

	res := filter.Apply(ds, pred)
	logging.For(log, logging.CategoryFilter).Info("filter applied",
		zap.Stringer("kind", kind),
		zap.Int("matched", len(res.Records)),
		zap.Int("skipped", res.Skipped))

	out := cmd.OutOrStdout()
	st := styles()
	present.New(out, c.View, st).Show(res, ds.Header)

	if opts.out == "" || res.Empty() {
		return nil
	}

	name := locator.Normalize(opts.out, "", c.Extension)
	target := locator.Resolve(workDir, name)
	if locator.Exists(target) && !opts.force {
		return fmt.Errorf("the file '%s' already exists (use --force to overwrite)", name)
	}
	if err := records.Save(target, res.Records); err != nil {
		logging.For(log, logging.CategoryPersist).Error("save failed", zap.String("path", target), zap.Error(err))
		return fmt.Errorf("an error occurred while saving to %s: %w", name, err)
	}
	logging.For(log, logging.CategoryPersist).Info("results saved", zap.String("path", target), zap.Int("rows", len(res.Records)))
	fmt.Fprintf(out, "\n%s\n", st.Success.Render("Data saved to "+name))
	return nil
}

func predicateFromFlags(kind filter.Kind, opts filterOptions) (filter.Predicate, error) {
	if !kind.IsRange() {
		return filter.NewText(kind, opts.value)
	}
	if opts.min < 0 {
		return nil, errors.New("--min is required (and must be 0 or more) for " + kind.String())
	}
	hi := opts.max
	if hi < 0 {
		hi = opts.min
	}
	return filter.NewRange(kind, opts.min, hi)
}
