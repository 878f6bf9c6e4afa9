package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/payment-recovery/pkg/action"
	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
	"github.com/Goden-Gun/payment-recovery/pkg/codes"
)

type classifiedDetail struct {
	Index   int                `json:"index"`
	Code    codes.ErrorCode    `json:"code"`
	Message string             `json:"message,omitempty"`
	Action  action.ErrorAction `json:"action"`
}

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <failure.json|->",
		Short: "Print the error details of a failure and the actions each one resolves to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}
			failure, err := readFailure(args[0])
			if err != nil {
				return err
			}

			details := classifier.Classify(failure)
			rows := make([]classifiedDetail, len(details))
			for i, d := range details {
				rows[i] = classifiedDetail{Index: i, Code: d.Code, Message: d.Message, Action: action.Resolve(d.Code)}
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return writeJSON(out, rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(out, "no error details")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "#\tCODE\tACTION\tMESSAGE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Index, r.Code, r.Action, r.Message)
			}
			return tw.Flush()
		},
	}
}
