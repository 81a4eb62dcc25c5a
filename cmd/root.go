// Package cmd provides the root command and CLI setup for peek.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/peek/internal/adapter"
	"github.com/mouse-blink/peek/internal/domain"
)

var settings domain.SettingsStore

// plainFlag forces the non-interactive table shell even on a TTY.
var plainFlag bool

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	settings = adapter.NewViperSettings(
		viper.GetViper(),
		filepath.Join(configFolderPath, configFileName),
	)
}

const rootLongDescription = `Peek is a live property inspector for declarative view trees: annotate
any node of your tree with values, and peek aggregates every annotated
property into one searchable, filterable panel with on-screen highlight
linking back to the node that produced it.

Run "peek demo" to explore the inspector against a sample tree.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peek",
		Short: "Live property inspector for view trees",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, false, "force plain table output instead of the interactive panel")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")

	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
