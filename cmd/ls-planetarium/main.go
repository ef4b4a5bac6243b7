// Command ls-planetarium is a terminal planetarium with telescope mount
// tracking.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-planetarium/internal/config"
	"github.com/litescript/ls-planetarium/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ls-planetarium",
	Short: "Terminal planetarium with mount tracking",
	Long: `ls-planetarium draws the sky for an observing site in the terminal:
stars, constellations, deep-sky objects, planets, the Sun and Moon, with a
reticle that follows a telescope mount feed.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/ls-planetarium/config.yaml)")
	_ = viper.BindPFlag("config", flags.Lookup("config"))

	local := rootCmd.Flags()
	local.String("observer", "", "observer site name")
	local.Float64("lat", 0, "observer latitude in degrees, north positive")
	local.Float64("lon", 0, "observer longitude in degrees, east positive")
	local.Float64("ra", 0, "startup view right ascension in degrees")
	local.Float64("dec", 0, "startup view declination in degrees")
	local.Float64("fov", 0, "startup field of view in degrees")
	local.String("ephemeris", "", "planet positions: horizons, elements or auto")
	local.String("mount-replay", "", "JSON-lines file of mount observations to replay")
	local.String("log-level", "", "log level (debug, info, warn, error)")
	local.String("log-file", "", "log file used while the UI owns the terminal")
	local.String("metrics-addr", "", "serve Prometheus metrics on this address")
	local.Bool("snapshot", false, "render one frame to stdout and exit")
	local.Bool("no-color", false, "disable colour in snapshot output")

	// Unset flags leave the key to the file, environment or default.
	for flag, key := range flagKeys {
		_ = viper.BindPFlag(key, local.Lookup(flag))
	}
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"observer":     "observer.name",
	"lat":          "observer.lat",
	"lon":          "observer.lon",
	"ra":           "view.ra",
	"dec":          "view.dec",
	"fov":          "view.fov",
	"ephemeris":    "ephemeris.mode",
	"mount-replay": "mount.replay",
	"log-level":    "logging.level",
	"log-file":     "logging.file",
	"metrics-addr": "metrics.addr",
}

func initConfig() {
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LSPLANET")
	// LSPLANET_OBSERVER_LAT for observer.lat
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = viper.ReadInConfig()
}
