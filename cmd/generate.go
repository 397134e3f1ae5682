// Package cmd implements the command-line interface for tinge.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tinge-cli/tinge/constant"
	"github.com/tinge-cli/tinge/filesystem"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/key"
	"github.com/tinge-cli/tinge/scheme"
	"github.com/tinge-cli/tinge/style"
	"github.com/tinge-cli/tinge/tui"
	"github.com/tinge-cli/tinge/util"
	"github.com/tinge-cli/tinge/where"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("name", "n", "", "Scheme name (defaults to the image file stem)")
	generateCmd.Flags().StringP("slug", "s", "", "Scheme slug (defaults to the slugified name)")
	generateCmd.Flags().StringP("description", "d", "", "Scheme description")
	generateCmd.Flags().StringP("author", "a", "", "Scheme author")
	lo.Must0(viper.BindPFlag(key.GenerateAuthor, generateCmd.Flags().Lookup("author")))

	generateCmd.Flags().String("system", "", "Scheme system to generate")
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("system", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"base16", "base24"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.GenerateSystem, generateCmd.Flags().Lookup("system")))

	generateCmd.Flags().String("variant", "", "Scheme variant to generate")
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"dark", "light"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.GenerateVariant, generateCmd.Flags().Lookup("variant")))

	generateCmd.Flags().IntP("workers", "w", 0, "Worker count of the pixel scan")
	lo.Must0(viper.BindPFlag(key.GenerateWorkers, generateCmd.Flags().Lookup("workers")))

	generateCmd.Flags().IntP("quality", "q", 1, "Sampling stride of the dominant color pass")
	lo.Must0(viper.BindPFlag(key.QuantizeQuality, generateCmd.Flags().Lookup("quality")))

	generateCmd.Flags().IntP("max-colors", "m", 15, "Maximum number of dominant colors to extract")
	lo.Must0(viper.BindPFlag(key.QuantizeMaxColors, generateCmd.Flags().Lookup("max-colors")))

	generateCmd.Flags().StringP("output", "o", "", "Directory to write the scheme file into")
	generateCmd.Flags().Bool("stdout", false, "Print the scheme to stdout instead of writing a file")
	generateCmd.Flags().BoolP("json", "j", false, "Render the scheme as JSON instead of YAML")
	generateCmd.Flags().BoolP("preview", "p", false, "Show a swatch preview of the generated scheme")
	generateCmd.Flags().BoolP("force", "f", false, "Overwrite existing scheme files without asking")
	generateCmd.Flags().Bool("quiet", false, "Suppress progress and success output")

	generateCmd.MarkFlagsMutuallyExclusive("stdout", "output")
}

// generateCmd turns an image into a scheme file.
var generateCmd = &cobra.Command{
	Use:     "generate <image>",
	Aliases: []string{"gen"},
	Short:   "Generate a color scheme from an image",
	Long: `Generate a base16 or base24 color scheme from an image.

The image's pixels are matched against pure hue anchors, reconciled with its
dominant colors, and assembled into a background-to-foreground ramp plus
accent slots in the tinted-theming scheme layout.`,
	Example: `  tinge generate sunset.png
  tinge generate --system base24 --variant light -p forest.jpg
  tinge gen --stdout -j wallpaper.webp`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		system, err := scheme.ParseSystem(viper.GetString(key.GenerateSystem))
		handleErr(err)

		variant, err := scheme.ParseVariant(viper.GetString(key.GenerateVariant))
		handleErr(err)

		var (
			description = lo.Must(cmd.Flags().GetString("description"))
			output      = lo.Must(cmd.Flags().GetString("output"))
			toStdout    = lo.Must(cmd.Flags().GetBool("stdout"))
			asJson      = lo.Must(cmd.Flags().GetBool("json"))
			preview     = lo.Must(cmd.Flags().GetBool("preview"))
			force       = lo.Must(cmd.Flags().GetBool("force"))
			quiet       = lo.Must(cmd.Flags().GetBool("quiet"))
		)

		params := scheme.Params{
			Name:      lo.Must(cmd.Flags().GetString("name")),
			Slug:      lo.Must(cmd.Flags().GetString("slug")),
			Author:    viper.GetString(key.GenerateAuthor),
			System:    system,
			Variant:   variant,
			Workers:   viper.GetInt(key.GenerateWorkers),
			Quality:   viper.GetInt(key.QuantizeQuality),
			MaxColors: viper.GetInt(key.QuantizeMaxColors),
		}
		if description != "" {
			params.Description = mo.Some(description)
		}

		// The spinner would fight piped output for the terminal.
		run := tui.Generate
		if quiet || toStdout {
			run = scheme.Generate
		}

		generated, err := run(args[0], params)
		handleErr(err)

		var data []byte
		if asJson {
			data, err = generated.JSON()
		} else {
			data, err = generated.YAML()
		}
		handleErr(err)

		if toStdout {
			fmt.Println(string(data))
		} else {
			target, err := writeScheme(generated, data, output, asJson, force)
			handleErr(err)

			if target != "" && !quiet {
				fmt.Printf(
					"%s generated %s\n",
					icon.Get(icon.Success),
					style.Bold(target),
				)
			}
		}

		if preview {
			fmt.Println(tui.RenderScheme(generated, tui.PreviewOptions{
				Hex: viper.GetBool(key.PreviewHex),
			}))
		}
	},
}

// writeScheme places the rendered scheme under the output directory, falling
// back to the schemes directory when none is given. It returns the written
// path, or an empty string when the user declined to overwrite.
func writeScheme(generated *scheme.Scheme, data []byte, output string, asJson, force bool) (string, error) {
	dir := where.Schemes()
	if output != "" {
		dir = output
		if err := filesystem.API().MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	extension := constant.SchemeFileExtension
	if asJson {
		extension = ".json"
	}

	path := filepath.Join(dir, util.SanitizeFilename(generated.Slug)+extension)

	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return "", err
	}

	if exists && !force {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return "", fmt.Errorf("%s already exists, pass --force to overwrite", path)
		}

		confirm := survey.Confirm{
			Message: fmt.Sprintf("%s already exists. Overwrite?", filepath.Base(path)),
			Default: false,
		}
		var overwrite bool
		if err := survey.AskOne(&confirm, &overwrite); err != nil {
			return "", err
		}

		if !overwrite {
			return "", nil
		}
	}

	if err := filesystem.API().WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}
