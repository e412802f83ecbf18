package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/search"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Print the ranked candidates for a query",
	Long:  "Resolve query text the way the launcher does and print one candidate per line: name, source and action separated by tabs.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	apps := env.apps.Load(provider.LoadOptions{
		ShowHidden: env.cfg.ShowHidden || hiddenFlag,
		Overrides:  env.overrides,
	})
	res := env.resolver.Resolve(ctx, strings.Join(args, " "), provider.Candidates(apps), env.history)
	return printResult(cmd.OutOrStdout(), res)
}

func printResult(w io.Writer, res search.Result) error {
	if res.ColorMode {
		if res.Color == nil {
			_, err := fmt.Fprintln(w, "color\tinvalid")
			return err
		}
		_, err := fmt.Fprintf(w, "color\t%s\t%s\n", res.Color.Hex(), res.Color.CSS())
		return err
	}
	for _, c := range res.Candidates {
		name := strings.Join(strings.Fields(c.Name), " ")
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", name, c.Source, c.Action); err != nil {
			return err
		}
	}
	return nil
}
