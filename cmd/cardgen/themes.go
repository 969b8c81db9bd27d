package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

var themesType string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the categories and card number prefixes of each card type",
	RunE:  runThemes,
}

func init() {
	themesCmd.Flags().StringVar(&themesType, "type", "", "only list this card type")
}

func runThemes(cmd *cobra.Command, _ []string) error {
	var selected []*profiles.Profile
	if themesType != "" {
		p, ok := profiles.Lookup(entities.CardType(themesType))
		if !ok {
			return fmt.Errorf("unknown card type %q", themesType)
		}
		selected = append(selected, p)
	} else {
		selected = profiles.All()
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, p := range selected {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%s field, expires after %d years)\n", p.Title, p.CategoryField, p.ExpiryYears)
		fmt.Fprintln(tw, "KEY\tLABEL\tPREFIX\tALIASES")
		for _, cat := range p.Catalog.Categories() {
			theme := p.Catalog.Theme(cat)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				cat.Key(), theme.Label, p.Prefix(theme), strings.Join(p.Catalog.Aliases(cat), ","))
		}
		fmt.Fprintf(tw, "*\t%s\t%s\t\n", p.Catalog.Fallback().Label, p.FallbackPrefix)
	}

	return tw.Flush()
}
