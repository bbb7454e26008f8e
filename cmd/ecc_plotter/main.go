// ecc_plotter renders BER/BLER performance charts for the NSC/Viterbi and
// Reed-Solomon coding schemes from tabulated simulation results.
package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/user/ecc_plotter_go/internal/config"
	"github.com/user/ecc_plotter_go/internal/pipeline"
)

var (
	cfgFile      string
	resultsDir   string
	imagesDir    string
	selectPolicy string
	charts       []string
	reportPath   string
)

var rootCmd = &cobra.Command{
	Use:   "ecc_plotter",
	Short: "Render BER/BLER charts from channel-coding simulation results",
	Long: `ecc_plotter reads the CSV result tables produced by the coding
simulations and renders publication-style semilog comparison charts, each
saved as a 300 DPI PNG and an SVG.

Run without arguments it reads results/, writes images/ and renders every
chart in the catalog (nsc_ber, rs_ber, rs_bler).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if cfgFile != "" {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		// Flags set on the command line override the config file.
		if cmd.Flags().Changed("results") {
			cfg.Results = resultsDir
		}
		if cmd.Flags().Changed("images") {
			cfg.Images = imagesDir
		}
		if cmd.Flags().Changed("select") {
			cfg.Select = selectPolicy
		}
		if cmd.Flags().Changed("charts") {
			cfg.Charts = charts
		}
		if cmd.Flags().Changed("report") {
			cfg.Report = reportPath
		}

		pl, err := pipeline.New(cfg)
		if err != nil {
			return err
		}
		return pl.Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "optional YAML run configuration")
	rootCmd.Flags().StringVar(&resultsDir, "results", "results", "directory containing result CSV files")
	rootCmd.Flags().StringVar(&imagesDir, "images", "images", "directory chart images are written to")
	rootCmd.Flags().StringVar(&selectPolicy, "select", "first", "candidate selection policy (first, newest, strict)")
	rootCmd.Flags().StringSliceVar(&charts, "charts", nil, "subset of charts to render (nsc_ber, rs_ber, rs_bler)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "also write a summary PDF collecting all charts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
