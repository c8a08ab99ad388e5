package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spencer-p/lowtides/pkg/forecast"
	"github.com/spencer-p/lowtides/pkg/report"
	"github.com/spencer-p/lowtides/pkg/tideforecast"
)

var cfgFile string

// rootCmd prints today's daylight low tides for every configured location.
var rootCmd = &cobra.Command{
	Use:   "lowtides",
	Short: "Print today's daylight low tides",
	Long: `Reads today's tide table from tide-forecast.com for each configured
location and prints the low tides that happen between sunrise and sunset.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		locs, err := configuredLocations()
		if err != nil {
			return err
		}
		locs, err = tideforecast.Select(locs, viper.GetStringSlice("location"))
		if err != nil {
			return err
		}

		timeout := viper.GetDuration("timeout")
		client := tideforecast.NewClient(timeout, viper.GetString("user_agent"))
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout+5*time.Second)
		defer cancel()

		drift := viper.GetDuration("sun_drift")
		reports := report.Collect(ctx, locs, func(ctx context.Context, loc tideforecast.Location) (*forecast.Result, error) {
			res, err := client.LowTides(ctx, loc)
			if err != nil {
				log.Printf("Failed to read %s: %v", loc.Name, err)
				return nil, err
			}
			warnDrift(loc, res, drift)
			return res, nil
		})

		out := cmd.OutOrStdout()
		if viper.GetBool("json") {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		return report.Write(out, reports)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lowtides.yaml)")

	rootCmd.Flags().StringSliceP("location", "l", nil, "location IDs to report on (default all)")
	rootCmd.Flags().Duration("timeout", 20*time.Second, "timeout for fetching each tide page")
	rootCmd.Flags().Bool("json", false, "print JSON instead of text")
	rootCmd.Flags().Duration("sun-drift", 30*time.Minute, "warn when a page's sunrise or sunset is this far from the computed one (0 disables)")
	rootCmd.Flags().String("user-agent", "lowtides/1.0", "User-Agent header for page requests")

	for key, flag := range map[string]string{
		"location":   "location",
		"timeout":    "timeout",
		"json":       "json",
		"sun_drift":  "sun-drift",
		"user_agent": "user-agent",
	} {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".lowtides" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lowtides")
	}

	viper.SetEnvPrefix("lowtides")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func warnDrift(loc tideforecast.Location, res *forecast.Result, thresh time.Duration) {
	if thresh <= 0 || loc.Place.Location == nil {
		return
	}
	rise, set, ok := report.Drift(res, loc.Place, time.Now())
	if ok && report.Drifted(rise, set, thresh) {
		log.Printf("%s: page sunrise/sunset off by %s/%s from computed", loc.Name, rise, set)
	}
}
