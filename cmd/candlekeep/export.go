package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/candlekeep/candlekeep/internal/export"
	repo "github.com/candlekeep/candlekeep/internal/repository"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "catalog.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library catalog as an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openLibrary(cmd.Context())
		if err != nil {
			return err
		}
		defer env.close()

		docs := repo.NewDocumentRepository(env.entc, env.logger)
		svc := export.NewService(docs, env.logger)

		xlsx, err := svc.ExportCatalogXLSX(cmd.Context())
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, xlsx, 0o644); err != nil {
			return err
		}
		cmd.Printf("Wrote catalog to %s\n", exportOut)
		return nil
	},
}
