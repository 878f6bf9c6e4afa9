package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/payment-recovery/pkg/action"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

type codeRow struct {
	Code   codes.ErrorCode    `json:"code"`
	Group  string             `json:"group"`
	Action action.ErrorAction `json:"action"`
}

func newCodesCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List every error code with its action group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}

			var rows []codeRow
			found := group == ""
			for _, g := range action.Groups() {
				if group != "" && g.Name != group {
					continue
				}
				found = true
				for _, c := range g.Codes {
					rows = append(rows, codeRow{Code: c, Group: g.Name, Action: g.Action})
				}
			}
			if !found {
				return fmt.Errorf("unknown action group %q", group)
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return writeJSON(out, rows)
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "CODE\tGROUP\tACTION")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Code, r.Group, r.Action)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only list codes of this action group")
	return cmd
}
