package configcmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/basket/internal/cli"
	"github.com/thenoetrevino/basket/internal/config"
	"gopkg.in/yaml.v3"
)

// ShowCmd returns the config show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file, .env and
BASKET_ environment variables have been applied.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.NoAppAnnotation: "true"},
		RunE:        runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	c, err := cli.Session(cmd, formatter)
	if err != nil {
		return err
	}
	cfg := c.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if formatter.Quiet {
		path, err := config.Path()
		if err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_PATH_ERROR", err, "")
		}
		formatter.Printf("%s\n", path)
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return formatter.Fail(cli.ExitError, "CONFIG_MARSHAL_ERROR", err, "")
	}

	if formatter.JSON {
		// Reuse the YAML field names and duration strings.
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return formatter.Fail(cli.ExitError, "CONFIG_MARSHAL_ERROR", err, "")
		}
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"config":  doc,
		})
	}

	formatter.Printf("%s", data)
	return nil
}
