package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/rizkimcitra/folio"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Pre-render every page to static HTML",
	Long: `export renders the home page, the about page and one page per post
into the output directory, as <out>/blog/<slug>/index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := folio.New(siteCfg)
		defer app.Close()

		start := time.Now()
		n, err := app.Export(cmd.Context(), exportOut)
		if err != nil {
			return err
		}
		slog.Info("export finished", "pages", n, "out", exportOut, "took", time.Since(start))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "dist", "output directory")
}
