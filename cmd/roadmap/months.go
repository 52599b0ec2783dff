package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gdd-roadmap/pkg/datemath"
)

func runMonths(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	months := datemath.ParseMonths(text)
	quarters := datemath.TotalQuarters(months)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "months:   %d\n", months)
	fmt.Fprintf(out, "quarters: %d\n", quarters)
	fmt.Fprintf(out, "labels:   %s\n", strings.Join(datemath.QuarterLabels(quarters), " "))
	return nil
}
