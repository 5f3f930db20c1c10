package main

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
	"github.com/excalamus/nostalgic/pkg/settings"
	"github.com/excalamus/nostalgic/pkg/value"
)

// newSetCommand creates the set command
func newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: MsgSetShort,
		Long: `Update one setting in a settings file, creating the file if needed. VALUE is
parsed as a TOML literal (42, 1.5, true, "text", [1, 2], {a = 1}); anything
that does not parse is stored as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, literal := args[0], args[1]

			path, err := resolveFile()
			if err != nil {
				return err
			}

			r, err := settings.New(path)
			if err != nil {
				return err
			}

			// declare whatever the file already holds so it survives the rewrite
			section, err := loadSection(path)
			if err != nil && !errors.IsErrorCode(err, errors.ErrFileNotFound) {
				return err
			}
			for _, existing := range sortedKeys(section) {
				if existing == settings.ConfigFileKey {
					continue
				}
				if _, err := r.Declare(existing, cty.NullVal(cty.DynamicPseudoType), nil, nil); err != nil {
					return err
				}
			}
			if len(section) > 0 {
				if err := r.ReadFile("", false); err != nil {
					return err
				}
			}

			v := parseLiteral(literal)
			if !r.Has(key) {
				if _, err := r.Declare(key, cty.NullVal(cty.DynamicPseudoType), nil, nil); err != nil {
					return err
				}
			}
			if err := r.SetValue(key, v); err != nil {
				return err
			}

			if err := r.WriteFile("", false); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, literal)
			return nil
		},
	}
}

// parseLiteral interprets a command-line argument as a TOML value. Arguments
// that are not valid TOML literals are taken as plain strings, so quoting is
// only needed to force string interpretation of something like "42".
func parseLiteral(s string) cty.Value {
	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte("v = "+s), &doc); err == nil {
		if raw, ok := doc["v"]; ok {
			if v, err := value.Decode(raw); err == nil {
				return v
			}
		}
	}
	return cty.StringVal(s)
}
