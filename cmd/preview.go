// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/scheme"
	"github.com/tinge-cli/tinge/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Bool("hex", false, "Annotate each swatch with its hex value")
	lo.Must0(viper.BindPFlag(key.PreviewHex, previewCmd.Flags().Lookup("hex")))

	previewCmd.Flags().StringP("filter", "f", "", "Show only slots fuzzy-matching the given name")
	previewCmd.Flags().StringP("image", "i", "", "Generate a throwaway scheme from an image and preview it")
}

// previewCmd renders stored scheme files as colored swatch strips.
var previewCmd = &cobra.Command{
	Use:     "preview [scheme]...",
	Short:   "Preview scheme files in the terminal",
	Long:    `Render one or more scheme files as colored swatch strips, slot by slot, directly in the terminal.`,
	Example: "  tinge preview ~/.local/share/tinge/schemes/sunset.yaml\n  tinge preview --image sunset.png --hex",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	},
	PreRun: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && lo.Must(cmd.Flags().GetString("image")) == "" {
			handleErr(errors.New("provide scheme files or --image"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		opts := tui.PreviewOptions{
			Hex:    viper.GetBool(key.PreviewHex),
			Filter: lo.Must(cmd.Flags().GetString("filter")),
		}

		var schemes []*scheme.Scheme

		if image := lo.Must(cmd.Flags().GetString("image")); image != "" {
			system, err := scheme.ParseSystem(viper.GetString(key.GenerateSystem))
			handleErr(err)

			variant, err := scheme.ParseVariant(viper.GetString(key.GenerateVariant))
			handleErr(err)

			generated, err := tui.Generate(image, scheme.Params{
				Author:    viper.GetString(key.GenerateAuthor),
				System:    system,
				Variant:   variant,
				Workers:   viper.GetInt(key.GenerateWorkers),
				Quality:   viper.GetInt(key.QuantizeQuality),
				MaxColors: viper.GetInt(key.QuantizeMaxColors),
			})
			handleErr(err)

			schemes = append(schemes, generated)
		}

		for _, path := range args {
			loaded, err := scheme.Load(path)
			handleErr(err)

			schemes = append(schemes, loaded)
		}

		for i, s := range schemes {
			fmt.Println(tui.RenderScheme(s, opts))

			if i < len(schemes)-1 {
				fmt.Println()
			}
		}
	},
}
