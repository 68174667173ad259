package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rvask/symgrad/internal/config"
	"github.com/rvask/symgrad/internal/expr"
	"github.com/rvask/symgrad/internal/funcs"
	"github.com/rvask/symgrad/internal/numdiff"
	"github.com/rvask/symgrad/internal/storage"
	"github.com/rvask/symgrad/internal/tui"
	"github.com/rvask/symgrad/internal/viz"
)

var (
	dataDir    string
	variable   string
	from       float64
	to         float64
	samples    int
	configFile string
	trace      bool
	noSimplify bool
	tolerance  float64
	step       float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symgrad",
		Short: "symbolic differentiation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".symgrad", "data directory")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log simplifier rewrites to stderr")
	rootCmd.PersistentFlags().BoolVar(&noSimplify, "no-simplify", false, "disable simplification on construction")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tol", 0, "constant-recognition tolerance (0 = default)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "differentiate the built-in sample functions",
		RunE:  runDemo,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "plot a function and its derivative",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotFunction,
	}
	plotCmd.Flags().StringVar(&variable, "var", "x", "variable to sweep")
	plotCmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "sweep start")
	plotCmd.Flags().Float64Var(&to, "to", config.DefaultTo, "sweep end")
	plotCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	plotCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [function]",
		Short: "sample a function and its derivative, save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepFunction,
	}
	sweepCmd.Flags().StringVar(&variable, "var", "x", "variable to sweep")
	sweepCmd.Flags().Float64Var(&from, "from", config.DefaultFrom, "sweep start")
	sweepCmd.Flags().Float64Var(&to, "to", config.DefaultTo, "sweep end")
	sweepCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sweeps",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a saved sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved sweep as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	jacobianCmd := &cobra.Command{
		Use:   "jacobian [function]",
		Short: "compare numeric and symbolic derivatives",
		Args:  cobra.ExactArgs(1),
		RunE:  compareJacobian,
	}
	jacobianCmd.Flags().Float64Var(&step, "h", 0, "finite-difference step (0 = automatic)")

	exploreCmd := &cobra.Command{
		Use:   "explore [function]",
		Short: "interactive explorer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := funcs.Get(args[0])
			if err != nil {
				return err
			}
			return tui.Run(sample)
		},
	}

	funcsCmd := &cobra.Command{
		Use:   "funcs",
		Short: "list built-in functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFORMULA\tVARS")
			for _, s := range funcs.All() {
				fmt.Fprintf(w, "%s\t%s\t%v\n", s.Name, s.Formula, s.Vars)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(demoCmd, plotCmd, sweepCmd, listCmd, showCmd, exportCmd, jacobianCmd, exploreCmd, funcsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// builder returns construction settings derived from the global flags.
func builder() expr.Builder {
	b := expr.Builder{DisableSimplify: noSimplify, Tol: tolerance}
	if trace {
		b.Trace = os.Stderr
	}
	return b
}

func runDemo(cmd *cobra.Command, args []string) error {
	b := builder()

	for _, s := range funcs.All() {
		f := s.Build()
		fmt.Printf("%s\n", viz.Header.Render("f = "+s.Formula))
		fmt.Printf("  tree: %s\n", viz.Dim.Render(f.String()))

		names := append([]string(nil), s.Vars...)
		sort.Strings(names)

		for _, v := range names {
			d := b.Derivative(f, v)
			fmt.Printf("  df/d%s = %s\n", v, viz.Formula.Render(d.String()))
		}

		fv, err := expr.Evaluate(f, s.At)
		if err != nil {
			return err
		}
		fmt.Printf("  f%s = %s\n", fmtPoint(names, s.At), viz.Value.Render(fmt.Sprintf("%g", fv)))
		for _, v := range names {
			dv, err := expr.Evaluate(b.Derivative(f, v), s.At)
			if err != nil {
				return err
			}
			fmt.Printf("  df/d%s%s = %s\n", v, fmtPoint(names, s.At), viz.Value.Render(fmt.Sprintf("%g", dv)))
		}
		fmt.Println()
	}
	return nil
}

func fmtPoint(names []string, at expr.Bindings) string {
	out := "("
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%g", at[n])
	}
	return out + ")"
}

func argOrDefault(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// applyConfig merges a YAML config under the CLI flags: flags that were set
// explicitly win; a missing function argument falls back to the config, then
// to the package default.
func applyConfig(cmd *cobra.Command, name *string) error {
	if configFile == "" {
		if *name == "" {
			*name = config.DefaultFunction
		}
		return nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *name == "" {
		*name = cfg.Function
	}
	if !cmd.Flags().Changed("var") {
		variable = cfg.Variable
	}
	if !cmd.Flags().Changed("from") {
		from = cfg.From
	}
	if !cmd.Flags().Changed("to") {
		to = cfg.To
	}
	if !cmd.Flags().Changed("samples") {
		samples = cfg.Samples
	}
	if !cmd.Flags().Changed("no-simplify") {
		noSimplify = !cfg.Simplify
	}
	if !cmd.Flags().Changed("trace") {
		trace = cfg.Trace
	}
	if !cmd.Flags().Changed("tol") {
		tolerance = cfg.Tolerance
	}
	return nil
}

// sweep samples f and df/d<variable> over [from, to], holding the sample's
// other variables at their demo-point values. Non-finite values are skipped.
func sweep(s funcs.Sample) (xs, fs, dfs []float64, err error) {
	b := builder()
	f := s.Build()
	d := b.Derivative(s.Build(), variable)

	if samples < 2 {
		samples = 2
	}
	at := make(expr.Bindings, len(s.At))
	for k, v := range s.At {
		at[k] = v
	}

	dx := (to - from) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := from + float64(i)*dx
		at[variable] = x

		fv, err := expr.Evaluate(f, at)
		if err != nil {
			return nil, nil, nil, err
		}
		dv, err := expr.Evaluate(d, at)
		if err != nil {
			return nil, nil, nil, err
		}
		if math.IsNaN(fv) || math.IsInf(fv, 0) || math.IsNaN(dv) || math.IsInf(dv, 0) {
			continue
		}
		xs = append(xs, x)
		fs = append(fs, fv)
		dfs = append(dfs, dv)
	}
	return xs, fs, dfs, nil
}

func plotFunction(cmd *cobra.Command, args []string) error {
	name := argOrDefault(args)
	if err := applyConfig(cmd, &name); err != nil {
		return err
	}
	s, err := funcs.Get(name)
	if err != nil {
		return err
	}

	_, fs, dfs, err := sweep(s)
	if err != nil {
		return err
	}
	if len(fs) == 0 {
		return fmt.Errorf("no finite samples for %s over [%g, %g]", name, from, to)
	}

	caption := fmt.Sprintf("f = %s", s.Formula)
	dCaption := fmt.Sprintf("df/d%s", variable)
	fmt.Println(viz.PlotPair(fs, dfs, caption, dCaption))
	return nil
}

func sweepFunction(cmd *cobra.Command, args []string) error {
	name := argOrDefault(args)
	if err := applyConfig(cmd, &name); err != nil {
		return err
	}
	s, err := funcs.Get(name)
	if err != nil {
		return err
	}

	xs, fs, dfs, err := sweep(s)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Function: s.Name,
		Formula:  s.Formula,
		Variable: variable,
		From:     from,
		To:       to,
	}, xs, fs, dfs)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(xs))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFUNCTION\tVAR\tRANGE\tSAMPLES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%s\n",
			r.ID, r.Function, r.Variable, r.From, r.To, r.Samples,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, fs, dfs, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("f = %s", meta.Formula)
	dCaption := fmt.Sprintf("df/d%s", meta.Variable)
	fmt.Println(viz.PlotPair(fs, dfs, caption, dCaption))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	xs, fs, dfs, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta *storage.RunMetadata `json:"meta"`
		X    []float64            `json:"x"`
		F    []float64            `json:"f"`
		Df   []float64            `json:"df"`
	}{meta, xs, fs, dfs}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func compareJacobian(cmd *cobra.Command, args []string) error {
	s, err := funcs.Get(args[0])
	if err != nil {
		return err
	}
	b := builder()

	grad, err := numdiff.Gradient(s.Build(), s.Vars, s.At, step)
	if err != nil {
		return err
	}

	fmt.Printf("f = %s at %v\n\n", s.Formula, s.At)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VAR\tNUMERIC\tSYMBOLIC\tABS ERR")
	for i, v := range s.Vars {
		d := b.Derivative(s.Build(), v)
		sym, err := expr.Evaluate(d, s.At)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.8f\t%.8f\t%.2e\n", v, grad[i], sym, math.Abs(grad[i]-sym))
	}
	return w.Flush()
}
