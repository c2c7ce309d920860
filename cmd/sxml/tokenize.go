package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tdewolff/sxml/xml"
)

func (a *app) tokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [file...]",
		Short: "Print the tokens of XML documents",
		Long:  `Print the tokens of XML documents. Use - or no arguments to read from standard input.`,
		RunE:  a.runTokenize,
	}
	cmd.Flags().StringP("format", "f", "pretty", "output format (pretty|json|yaml|msgpack)")
	addDecodeFlags(cmd)
	return cmd
}

func addDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("chunk", 0, "maximum number of bytes per read, 0 reads as much as fits")
	cmd.Flags().Int("tokens", 64, "initial capacity of the token slice")
	cmd.Flags().Int("max-buf", 0, "maximum document size in bytes, 0 is unlimited")
	cmd.Flags().Bool("match-end-tags", false, "require end tags to match the name of their start tag")
	cmd.Flags().IntP("jobs", "j", 4, "number of files tokenized concurrently")
}

func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func (a *app) runTokenize(cmd *cobra.Command, args []string) error {
	names := inputNames(args)
	docs := make([]*xml.Document, len(names))

	g := new(errgroup.Group)
	g.SetLimit(a.cfg.Jobs)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			doc, err := a.decodeFile(name, cmd.InOrStdin())
			docs[i] = doc
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	files := make([]fileRecord, len(names))
	for i, name := range names {
		files[i] = newFileRecord(name, docs[i])
	}
	return writeFiles(cmd.OutOrStdout(), a.cfg.Format, files)
}
