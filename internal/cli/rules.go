package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bls2brs/pkg/bls"
	"github.com/matzehuels/bls2brs/pkg/core/mapping"
)

// rulesCommand creates the rules command, which lists the brick names the
// converter recognizes or looks up the mapping of specific names.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [name...]",
		Short: "List or look up brick mapping rules",
		Long: `List the Blockland brick names and name patterns that have a Brickadia
equivalent. With arguments, show the mapping of each given UI name.`,
		Example: `  bls2brs rules
  bls2brs rules "4x6" "Castle Wall"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.lookupRules(args)
				return nil
			}
			c.listRules()
			return nil
		},
	}
}

// lookupRules prints the mapping of each name.
func (c *CLI) lookupRules(names []string) {
	for _, name := range names {
		m, ok := mapping.Map(name, bls.Brick{})
		if !ok {
			printWarning(c.Out, "%s: no mapping", displayName(name))
			continue
		}
		printSuccess(c.Out, "%s: %d %s", displayName(name), len(m), plural(len(m), "brick"))
		for _, d := range m {
			printDetail(c.Out, "%s", d)
		}
	}
}

// listRules prints the literal names as a table, then the patterns.
func (c *CLI) listRules() {
	names := mapping.LiteralNames()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		m, _ := mapping.Map(name, bls.Brick{})
		rows = append(rows, []string{name, fmt.Sprint(len(m)), targetAssets(m)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Bricks", "Target").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleValue.Padding(0, 1)
			}
			return StyleDim.Padding(0, 1)
		})

	printTitle(c.Out, fmt.Sprintf("Named bricks (%d)", len(names)))
	fmt.Fprintln(c.Out, t.Render())

	printTitle(c.Out, "Patterns")
	for _, p := range mapping.Patterns() {
		printInfo(c.Out, "%s", p)
	}
}

// targetAssets lists the distinct assets of a mapping in order.
func targetAssets(m mapping.Mapping) string {
	seen := make(map[string]bool, len(m))
	var assets []string
	for _, d := range m {
		if !seen[d.Asset] {
			seen[d.Asset] = true
			assets = append(assets, d.Asset)
		}
	}
	return strings.Join(assets, ", ")
}
