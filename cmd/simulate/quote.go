package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shopkeep/internal/domain/catalog"

	"github.com/pkg/errors"
)

// printPriceList prints every recipe with its derived sell price, then the supply boxes.
func printPriceList(w io.Writer, catalogPath string) error {
	base, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return err
	}
	c, err := catalog.New(base)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RECIPE\tNAME\tTYPE\tRARITY\tPRICE")
	for _, recipe := range c.Recipes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", recipe.ID, recipe.Name, recipe.Type, recipe.Rarity, recipe.SellPrice)
	}
	fmt.Fprintln(tw, "\t\t\t\t")
	fmt.Fprintln(tw, "BOX\tNAME\tMATERIALS\t\tCOST")
	for _, box := range c.Boxes() {
		fmt.Fprintf(tw, "%s\t%s\t%d-%d\t\t%d\n", box.ID, box.Name, box.MaterialCount.Min, box.MaterialCount.Max, box.Cost)
	}

	return errors.WithStack(tw.Flush())
}
