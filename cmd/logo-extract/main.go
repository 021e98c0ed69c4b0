package main

import (
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ironsheep/logo-extract/internal/config"
	"github.com/ironsheep/logo-extract/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	flagOut           string
	flagConfig        string
	flagStrategy      string
	flagThreshold     float64
	flagChannelCutoff int
	flagMeanCutoff    float64
	flagBackground    string
	flagRefine        bool
	flagFeather       float64
	flagVariants      []string
	flagFallbackFull  bool
)

var rootCmd = &cobra.Command{
	Use:   "logo-extract <image>",
	Short: "Extract a transparency-masked logo from a flat near-white image",
	Long: `logo-extract separates logo content from a near-white background and writes
one cropped, alpha-matted output image per configured crop variant (for
example "graphic only" and "graphic plus caption").`,
	Version: Version,
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagOut, "out", "o", ".", "Output directory")
	flags.StringVar(&flagConfig, "config", "", "Path to JSON config file")
	flags.StringVar(&flagStrategy, "strategy", "distance", "Classifier strategy: distance or brightness")
	flags.Float64VarP(&flagThreshold, "threshold", "t", 50, "Color-distance threshold (0-441) for the distance strategy")
	flags.IntVar(&flagChannelCutoff, "channel-cutoff", 150, "Per-channel brightness cutoff for the brightness strategy (0-255)")
	flags.Float64Var(&flagMeanCutoff, "mean-cutoff", 180, "Mean brightness cutoff for the brightness strategy (0-255)")
	flags.StringVar(&flagBackground, "background", "#ffffff", "Reference background color as hex")
	flags.BoolVar(&flagRefine, "refine", true, "Clean the content mask with a 3x3 morphological open+close")
	flags.Float64Var(&flagFeather, "feather", 2, "Soft-edge falloff width in pixels, 0 for a hard edge")
	flags.StringSliceVar(&flagVariants, "variant", nil, "Crop variant as label:fraction:output (repeatable)")
	flags.BoolVar(&flagFallbackFull, "fallback-full", false, "Treat the whole image as content when no content is detected")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(cfg.Variants),
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)
	p.OnVariant = func(pipeline.VariantResult) {
		bar.Add(1)
	}

	results, err := p.Run(args[0])
	if err != nil {
		return err
	}
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	for _, r := range results {
		fmt.Printf("%s: %dx%d -> %s\n", r.Label, r.Width, r.Height, r.Path)
	}
	return nil
}

// buildConfig layers the run configuration: defaults, then the optional
// config file, then any flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.LoadFromFile(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.Output.Dir = flagOut
	}
	if flags.Changed("strategy") {
		cfg.Classifier.Strategy = flagStrategy
	}
	if flags.Changed("threshold") {
		cfg.Classifier.Threshold = flagThreshold
	}
	if flags.Changed("channel-cutoff") {
		cfg.Classifier.ChannelCutoff = flagChannelCutoff
	}
	if flags.Changed("mean-cutoff") {
		cfg.Classifier.MeanCutoff = flagMeanCutoff
	}
	if flags.Changed("background") {
		cfg.Classifier.Background = flagBackground
	}
	if flags.Changed("refine") {
		cfg.Matting.Refine = flagRefine
	}
	if flags.Changed("feather") {
		cfg.Matting.Feather = flagFeather
	}
	if flags.Changed("fallback-full") {
		cfg.Output.FallbackFullBounds = flagFallbackFull
	}
	if flags.Changed("variant") {
		variants := make([]config.Variant, 0, len(flagVariants))
		for _, s := range flagVariants {
			v, err := config.ParseVariant(s)
			if err != nil {
				return nil, err
			}
			variants = append(variants, v)
		}
		cfg.Variants = variants
	}
	return cfg, nil
}

func main() {
	// Progress lines go to stdout; diagnostics stay on stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"logo-extract {{.Version}}\n  Build time: %s\n  Git commit: %s\n", BuildTime, GitCommit))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
