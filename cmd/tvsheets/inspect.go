package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tvsheets-go/pkg/tvsheets"
	"github.com/ukaji3/tvsheets-go/pkg/tvsheets/models"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Print the shows stored in a workbook",
		Long: `Read a workbook written by tvsheets and print each sheet's episode
and cast blocks as tables. Defaults to ` + tvsheets.DefaultFileName + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := tvsheets.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}
			wb, err := tvsheets.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			writeWorkbook(cmd.OutOrStdout(), wb)
			return nil
		},
	}
}

func writeWorkbook(out io.Writer, wb *models.WorkbookData) {
	for i, sheet := range wb.Sheets {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", sheet.Name)

		episodes := make([][]string, 0, len(sheet.Show.Episodes))
		for _, ep := range sheet.Show.Episodes {
			episodes = append(episodes, stringRow(ep.Row()))
		}
		fmt.Fprintln(out, tvsheets.EpisodesLabel)
		fmt.Fprintln(out, renderTable(models.EpisodeHeader, episodes, []columnAlignment{alignRight, alignRight}))

		cast := make([][]string, 0, len(sheet.Show.Cast))
		for _, c := range sheet.Show.Cast {
			cast = append(cast, stringRow(c.Row()))
		}
		fmt.Fprintln(out, tvsheets.CastLabel)
		fmt.Fprintln(out, renderTable(models.CastHeader, cast, nil))
	}
}

func stringRow(values []interface{}) []string {
	row := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case float64:
			row[i] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			row[i] = fmt.Sprint(x)
		}
	}
	return row
}
