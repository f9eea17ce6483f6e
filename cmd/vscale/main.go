// Command vscale loads series data from a CSV file, drives a value scale
// through a list of interactions and prints the resulting ticks, renders
// the panel to PNG or dumps the scale state.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdobler/valuescale"
	"github.com/vdobler/valuescale/internal/config"
)

var (
	// Version is set at build time.
	Version = "dev"

	cfgFile string
	cfg     *config.Config
	log     = logrus.New()
	logFile io.Closer
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (TOML, YAML or JSON)")
	config.Flags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(ticksCmd, renderCmd, stateCmd, versionCmd)
}

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vscale",
	Short: "Value axis calibration tool",
	Long: `vscale auto-scales a value axis over CSV series data, applies scroll,
zoom and gesture operations and reports the calibrated tick marks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(viper.New(), cmd.Root().PersistentFlags(), cfgFile)
		if err != nil {
			return err
		}
		log, logFile, err = cfg.NewLogger()
		if err != nil {
			return err
		}
		valuescale.SetLogger(log)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vscale version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vscale " + Version)
	},
}

var ticksCmd = &cobra.Command{
	Use:   "ticks FILE.csv",
	Short: "Print the calibrated ticks as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newChart(cfg, args[0])
		if err != nil {
			return err
		}
		if err := c.run(cfg); err != nil {
			return err
		}
		if err := writeTicks(os.Stdout, c.scale.Calibrate()); err != nil {
			return err
		}
		return c.save(cfg)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render FILE.csv OUT.png",
	Short: "Render the panel and its value axis to PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newChart(cfg, args[0])
		if err != nil {
			return err
		}
		if err := c.run(cfg); err != nil {
			return err
		}
		if err := c.render(cfg, args[1]); err != nil {
			return err
		}
		log.WithField("file", args[1]).Info("rendered")
		return c.save(cfg)
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the scale state as JSON",
	Long: `state prints the state loaded with --state, or the default state,
after applying the formatter and calibrator flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := valuescale.NewValueScale(valuescale.NewSeriesPanel(cfg.Height))
		if err := configure(s, cfg); err != nil {
			return err
		}
		return valuescale.WriteState(os.Stdout, s.SaveState())
	},
}
