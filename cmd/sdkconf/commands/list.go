package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/settings"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	defaultStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("42"))
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newListCmd(args *RootArgs, k collection.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the records of the " + k.Name + " collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := args.Store()
			if err != nil {
				return err
			}

			t, err := s.Load(k)
			if err != nil {
				return err
			}

			records, err := collection.Records(t, k)
			if err != nil {
				return err
			}

			return renderRecords(cmd.OutOrStdout(), records, collection.Default(t, k))
		},
	}
}

func newRemoveCmd(args *RootArgs, k collection.Kind, remove func(settings.Tree, string) (settings.Tree, error)) *cobra.Command {
	id := new(string)

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a record from the " + k.Name + " collection",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := args.Store()
			if err != nil {
				return err
			}

			return s.Update(k, func(t settings.Tree) (settings.Tree, error) {
				return remove(t, *id)
			})
		},
	}

	cmd.Flags().StringVar(id, "id", "", "Id of the record to remove (required)")
	must(cmd.MarkFlagRequired("id"))

	return cmd
}

// renderRecords writes records as a table on terminals and as tab separated
// lines otherwise.
func renderRecords(w io.Writer, records []collection.Record, def string) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		mark := ""
		if r.ID == def {
			mark = "*"
		}

		rows = append(rows, []string{strconv.Itoa(r.Index), r.ID, r.Name, mark})
	}

	if !isTerminal(w) {
		for _, row := range rows {
			if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "ID", "NAME", "DEFAULT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][3] != "":
				return defaultStyle
			}

			return cellStyle
		})

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
