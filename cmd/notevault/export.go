package main

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/export"
	"github.com/dmitrijs2005/notevault/internal/client/models"
	"github.com/dmitrijs2005/notevault/internal/client/session"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <note-id>...",
	Short: "Download notes as .docx files",
	Long:  `Fetch each note from the server and write it as a Word document into the download directory.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.DownloadDir
		}
		api := client.NewHTTPClient(cfg.APIBaseURL, session.NewSQLiteStore(dbConn),
			client.WithLogger(logger), client.WithTimeout(cfg.RequestTimeout))
		sink := export.DirSink{Dir: dir}

		for _, id := range args {
			n, err := api.GetNote(cmd.Context(), models.ID(id))
			if err != nil {
				return fmt.Errorf("note %s: %s", id, client.UserMessage(err, err.Error()))
			}
			var buf bytes.Buffer
			if err := export.WriteDocx(&buf, *n, models.PrimaryFamily(models.FontStack(n.FontStyle))); err != nil {
				return fmt.Errorf("note %s: %w", id, err)
			}
			path, err := sink.Save(export.FileName(n.Title), buf.Bytes())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("dir", "", "output directory (defaults to the configured download directory)")
}
