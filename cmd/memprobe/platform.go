package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/memaccess"
	"github.com/hupe1980/memaccess/strategy"
)

func (app *appCtx) platformCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "report byte order, alignment tolerance and strategy roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := memaccess.Describe(app.provider)
			app.logger.LogPlatform(cmd.Context(), p)

			order := "little-endian"
			if p.BigEndian {
				order = "big-endian"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "arch\t%s\n", p.Arch)
			fmt.Fprintf(w, "os\t%s\n", p.GOOS)
			fmt.Fprintf(w, "byte order\t%s\n", order)
			fmt.Fprintf(w, "pointer size\t%d\n", p.PointerSize)
			fmt.Fprintf(w, "unaligned access\t%t\n", p.UnalignedAccessAllowed)
			fmt.Fprintf(w, "intrinsic\t%t\n", p.IntrinsicAvailable)
			for _, t := range []strategy.Type{strategy.TypeStandard, strategy.TypeAlignmentAware, strategy.TypePlatformAware} {
				fmt.Fprintf(w, "%s\t%s\n", t, p.Roles[t])
			}
			return w.Flush()
		},
	}
}
