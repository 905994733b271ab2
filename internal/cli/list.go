package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/mcport/internal/claude"
	"github.com/danieljhkim/mcport/internal/engine"
	"github.com/danieljhkim/mcport/internal/planner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the Codex MCP servers and their Claude Code form",
	Long: `Decode the Codex config and convert every MCP server without contacting
Claude Code. Servers that cannot be converted are shown with the reason.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseOutputFormat(outputName)
		if err != nil {
			return err
		}

		convertOpts, err := convertOptions(resolveEnv, envFile)
		if err != nil {
			return err
		}

		paths, err := resolvePaths(codexConfigPath, claudeBin)
		if err != nil {
			return err
		}

		eng := newEngine(paths, newLogger(cmd.ErrOrStderr(), verbose))
		result, err := eng.List(cmd.Context(), &engine.ListRequest{
			ConfigPath: paths.CodexConfig,
			Convert:    convertOpts,
		})
		if err != nil {
			return err
		}

		out := newConsole(cmd.OutOrStdout())
		if format != outputText {
			return writeDocument(out.w, format, result)
		}
		renderList(out, result)
		return nil
	},
}

func renderList(c *console, result *engine.ListResult) {
	c.Section(fmt.Sprintf("Codex MCP servers (%s)", result.ConfigPath))
	c.Blank()

	if len(result.Servers) == 0 {
		c.Dim("  No MCP servers found in Codex config.")
		return
	}

	for _, s := range result.Servers {
		if s.Target == nil {
			_, _ = failColor.Fprintf(c.w, " ✗ %s\n", boldColor.Sprint(s.Source.Name))
			_, _ = dimColor.Fprintln(c.w, detailIndent+s.Error)
			continue
		}

		fmt.Fprintf(c.w, " • %s [%s]\n", boldColor.Sprint(s.Source.Name), transportLabel(s.Target))
		preview, err := claude.EncodeIndent(s.Target, "  ")
		if err != nil {
			preview = err.Error()
		}
		_, _ = dimColor.Fprintln(c.w, indentLines(preview, detailIndent))
		if s.Ambiguous {
			_, _ = warningColor.Fprintf(c.w, "%s⚠ %s\n", detailIndent, planner.WarningAmbiguous)
		}
	}

	c.Blank()
	c.Info(countLabel(len(result.Servers), "server", "servers"))
}
