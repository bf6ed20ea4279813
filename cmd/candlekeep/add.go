package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/candlekeep/candlekeep/internal/library"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

var (
	addTitle        string
	addAuthor       string
	addCategory     string
	addTags         string
	addKeepOriginal bool
	addSkipHidden   bool
	addWorkers      int
)

func init() {
	for _, c := range []*cobra.Command{addPDFCmd, addMDCmd} {
		c.Flags().StringVar(&addTitle, "title", "", "override extracted title")
		c.Flags().StringVar(&addAuthor, "author", "", "override extracted author")
		c.Flags().StringVarP(&addCategory, "category", "c", "", "document category")
		c.Flags().StringVarP(&addTags, "tags", "t", "", "comma-separated tags")
	}
	addPDFCmd.Flags().BoolVar(&addKeepOriginal, "keep-original", true, "copy the original PDF into the library")
	addDirCmd.Flags().StringVarP(&addCategory, "category", "c", "", "document category")
	addDirCmd.Flags().StringVarP(&addTags, "tags", "t", "", "comma-separated tags")
	addDirCmd.Flags().BoolVar(&addKeepOriginal, "keep-original", true, "copy original PDFs into the library")
	addDirCmd.Flags().BoolVar(&addSkipHidden, "skip-hidden", true, "skip hidden files and directories")
	addDirCmd.Flags().IntVar(&addWorkers, "workers", 4, "concurrent ingestion workers")
	rootCmd.AddCommand(addPDFCmd, addMDCmd, addDirCmd)
}

var addPDFCmd = &cobra.Command{
	Use:   "add-pdf <file>",
	Short: "Add a PDF document to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args[0], addKeepOriginal)
	},
}

var addMDCmd = &cobra.Command{
	Use:   "add-md <file>",
	Short: "Add a markdown document to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args[0], false)
	},
}

var addDirCmd = &cobra.Command{
	Use:   "add-dir <directory>",
	Short: "Add every PDF and markdown file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := openLibrary(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		docs := repo.NewDocumentRepository(env.entc, env.logger)
		images := repo.NewImageRepository(env.entc, env.logger)
		ingestor := library.NewIngestor(docs, images, env.paths, env.logger)

		results, stats, err := ingestor.IngestDirectory(ctx, args[0], library.BatchOptions{
			SkipHidden:   addSkipHidden,
			Workers:      addWorkers,
			KeepOriginal: addKeepOriginal,
			Category:     addCategory,
			Tags:         splitTags(addTags),
		})
		if err != nil {
			return err
		}

		for _, r := range results {
			switch {
			case r.Err != "":
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %s\n", r.Path, r.Err)
			case r.Deduplicated:
				cmd.Printf("SKIP %s (duplicate of document %d)\n", r.Path, r.DocumentID)
			default:
				cmd.Printf("OK   %s (document %d)\n", r.Path, r.DocumentID)
			}
		}
		cmd.Printf("scanned=%d matched=%d succeeded=%d deduplicated=%d failed=%d\n",
			stats.Scanned, stats.Matched, stats.Succeeded, stats.Deduplicated, stats.Failed)
		return nil
	},
}

func runAdd(cmd *cobra.Command, path string, keepOriginal bool) error {
	ctx := cmd.Context()
	env, err := openLibrary(ctx)
	if err != nil {
		return err
	}
	defer env.close()

	docs := repo.NewDocumentRepository(env.entc, env.logger)
	images := repo.NewImageRepository(env.entc, env.logger)
	ingestor := library.NewIngestor(docs, images, env.paths, env.logger)

	result, err := ingestor.Ingest(ctx, path, library.IngestOptions{
		Title:        addTitle,
		Author:       addAuthor,
		Category:     addCategory,
		Tags:         splitTags(addTags),
		KeepOriginal: keepOriginal,
	})
	if err != nil {
		return err
	}

	doc := result.Document
	if result.Status == library.StatusDuplicate {
		cmd.Printf("Document already exists: %s (ID: %d)\n", doc.Title, doc.ID)
		return nil
	}

	cmd.Printf("Added document %d: %s\n", doc.ID, doc.Title)
	if doc.Author != "" {
		cmd.Printf("  Author:   %s\n", doc.Author)
	}
	if doc.PageCount != nil {
		cmd.Printf("  Pages:    %d\n", *doc.PageCount)
	}
	cmd.Printf("  Words:    %d\n", doc.WordCount)
	cmd.Printf("  Chapters: %d\n", doc.ChapterCount)
	if doc.ImageCount > 0 {
		cmd.Printf("  Images:   %d\n", doc.ImageCount)
	}
	cmd.Printf("  Markdown: %s\n", doc.MarkdownPath)
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
