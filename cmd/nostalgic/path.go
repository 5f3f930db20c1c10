package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/excalamus/nostalgic/pkg/paths"
)

// newPathCommand creates the path command
func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path [program]",
		Short: MsgPathShort,
		Long: `Print the settings file path a program will use. With no argument the
path is derived for this tool itself; with a program name, for that program.
The NOSTALGIC_CONFIG_FILE environment variable overrides the derived path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			var err error
			switch {
			case settingsFile != "":
				path, err = paths.Normalize(settingsFile)
			case len(args) == 1:
				path, err = paths.ConfigFileFor(args[0])
			default:
				path, err = paths.DefaultConfigFile()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
