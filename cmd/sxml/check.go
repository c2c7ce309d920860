package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Check that XML documents are well-formed",
		Long:  `Check that XML documents are well-formed. Every file is reported, the command fails if any of them is invalid.`,
		RunE:  a.runCheck,
	}
	addDecodeFlags(cmd)
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	names := inputNames(args)
	ntokens := make([]int, len(names))
	errs := make([]error, len(names))

	g := new(errgroup.Group)
	g.SetLimit(a.cfg.Jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := a.decodeFile(name, cmd.InOrStdin())
			if err != nil {
				errs[i] = err
			} else {
				ntokens[i] = len(doc.Tokens)
			}
			return nil
		})
	}
	g.Wait()

	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()
	w := cmd.OutOrStdout()
	failed := 0
	for i, name := range names {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(w, "%s %v\n", bad("FAIL"), errs[i])
		} else {
			fmt.Fprintf(w, "%s   %s: %d tokens\n", ok("OK"), name, ntokens[i])
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d documents are invalid", failed, len(names))
	}
	return nil
}
