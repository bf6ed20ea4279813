package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/candlekeep/candlekeep/internal/library"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

var (
	listFull   bool
	listFields string
	pagesSpec  string
)

func init() {
	listCmd.Flags().BoolVar(&listFull, "full", false, "show all metadata fields")
	listCmd.Flags().StringVar(&listFields, "fields", "", "comma-separated list of extra fields to show")
	pagesCmd.Flags().StringVarP(&pagesSpec, "pages", "p", "", "page ranges, e.g. '1-5,10-15' or '1,2,3'")
	_ = pagesCmd.MarkFlagRequired("pages")
	rootCmd.AddCommand(listCmd, tocCmd, pagesCmd)
}

func newQuery(env *libraryEnv) *library.Query {
	docs := repo.NewDocumentRepository(env.entc, env.logger)
	images := repo.NewImageRepository(env.entc, env.logger)
	return library.NewQuery(docs, images, env.logger)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		var fields []string
		if listFields != "" {
			for _, f := range strings.Split(listFields, ",") {
				fields = append(fields, strings.TrimSpace(f))
			}
		}
		out, err := newQuery(env).List(cmd.Context(), library.ListOptions{Full: listFull, Fields: fields})
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	},
}

var tocCmd = &cobra.Command{
	Use:   "toc <document-id>",
	Short: "Show a document's table of contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		env, err := openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		out, err := newQuery(env).TableOfContents(cmd.Context(), id)
		if err != nil {
			return err
		}
		cmd.Println(out)
		return nil
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages <document-id>",
	Short: "Extract pages from a document's canonical text",
	Long: `Extract specific pages from a document. Page numbers printed in the
source are resolved to canonical pages when the document's images carry
printed-page evidence; otherwise numbers are treated as canonical.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		env, err := openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		out, found, err := newQuery(env).GetPages(cmd.Context(), id, pagesSpec)
		if err != nil {
			return err
		}
		if !found {
			cmd.Println("No content found for requested pages.")
			return nil
		}
		cmd.Println(out)
		return nil
	},
}
