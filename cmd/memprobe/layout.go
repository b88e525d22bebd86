package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/memaccess/internal/conv"
	"github.com/hupe1980/memaccess/strategy"
)

func (app *appCtx) layoutCommand() *cobra.Command {
	var index int64

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "print array base offset and index scale per element kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if index < 0 {
				return fmt.Errorf("invalid --index %d: must not be negative", index)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "KIND\tSIZE\tBASE OFFSET\tINDEX SCALE\tOFFSET[%d]\n", index)
			for _, k := range strategy.Kinds() {
				l := app.provider.Layout(k)
				elem := "-"
				if l.Valid() {
					scaled, err := conv.ScaleOffset(index, l.IndexScale)
					if err != nil {
						return err
					}
					off, err := conv.AddOffset(l.BaseOffset, scaled)
					if err != nil {
						return err
					}
					elem = fmt.Sprint(off)
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", k, k.Size(), l.BaseOffset, l.IndexScale, elem)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&index, "index", 0, "also print the byte offset of element INDEX")
	return cmd
}
