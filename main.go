package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/aep/app"
	"github.com/AnkushinDaniil/aep/entity/constants"
	"github.com/AnkushinDaniil/aep/entity/format"
	"github.com/AnkushinDaniil/aep/entity/mode"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("Parameter determination failed")
	}
}

func newRootCmd() *cobra.Command {
	var (
		constantsPath string
		formatText    string
		modeText      string
		output        string
		debug         bool
	)

	cmd := &cobra.Command{
		Use:           "aep",
		Short:         "Determine the parameters of the zero-parameter two-field cosmology",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogger(debug)

			f, err := format.UnmarshalText(formatText)
			if err != nil {
				return err
			}
			m, err := mode.UnmarshalText(modeText)
			if err != nil {
				return err
			}

			k := constants.Default()
			if constantsPath != "" {
				k, err = constants.Load(constantsPath)
				if err != nil {
					return err
				}
			}

			return app.New(k, f, m, output, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&constantsPath, "constants", "c", "", "YAML file overriding the built-in constants")
	cmd.Flags().StringVarP(&formatText, "format", "f", "text", "Output format: text|json|html")
	cmd.Flags().StringVarP(&modeText, "mode", "m", "full", "Report mode: full|final")
	cmd.Flags().StringVarP(&output, "output", "o", app.DefaultOutput, "Chart file for the html format")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	return cmd
}

func setupLogger(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}
