package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/excalamus/nostalgic/pkg/errors"
)

// newGetCommand creates the get command
func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: MsgGetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			path, err := resolveFile()
			if err != nil {
				return err
			}

			section, err := loadSection(path)
			if err != nil {
				return err
			}

			raw, ok := section[key]
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no such setting '%s' in %q", key, path)
			}

			// strings print bare for shell consumption
			if s, isString := raw.(string); isString {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderValue(raw))
			}
			return nil
		},
	}
}
