package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newShowCommand creates the show command
func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFile()
			if err != nil {
				return err
			}

			section, err := loadSection(path)
			if err != nil {
				return err
			}
			if len(section) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoSettings)
				return nil
			}

			for _, key := range sortedKeys(section) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", formatBold(key), renderValue(section[key]))
			}
			return nil
		},
	}
}
