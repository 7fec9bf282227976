package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/devtools/internal/config"
	"github.com/ryan-rushton/devtools/internal/messages"
	"github.com/ryan-rushton/devtools/internal/tools/base64conv"
	"github.com/ryan-rushton/devtools/internal/tools/jsonfmt"
	"github.com/ryan-rushton/devtools/internal/tools/uuidgen"
)

// standalone returns a subcommand that runs one tool without the shell.
func standalone(use, short string, aliases []string, build func(*config.Config) tea.Model) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, closer, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closer.Close()

			log.Info("starting standalone tool", "command", use)
			p := tea.NewProgram(messages.Standalone(build(cfg)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(
		standalone("uuid", "Generate UUIDs", []string{"uuidgen"}, func(cfg *config.Config) tea.Model {
			version, _ := uuidgen.ParseVersion(cfg.UUIDVersion)
			return uuidgen.New(uuidgen.Options{Version: version, ExportDir: cfg.ExportDir})
		}),
		standalone("json", "Beautify JSON", []string{"jsonfmt"}, func(cfg *config.Config) tea.Model {
			return jsonfmt.New(jsonfmt.Options{Indent: cfg.Indent(), ExportDir: cfg.ExportDir})
		}),
		standalone("base64", "Encode and decode base64", []string{"b64"}, func(*config.Config) tea.Model {
			return base64conv.New()
		}),
	)
}
