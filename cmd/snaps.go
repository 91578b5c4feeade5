package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/roamly/roamly/internal/sheet"
	"github.com/roamly/roamly/internal/ui"
)

var (
	snapsViewport float64
	snapsKeyboard float64
)

var snapsCmd = &cobra.Command{
	Use:   "snaps",
	Short: "Print the snap positions for a viewport",
	Long: `Prints where each configured snap point lands for a viewport of the given
height, optionally with a keyboard covering part of it. Positions are measured
from the top of the viewport; the last row is the hidden position.`,
	RunE: runSnaps,
}

func init() {
	snapsCmd.Flags().Float64Var(&snapsViewport, "viewport", 40, "Viewport height")
	snapsCmd.Flags().Float64Var(&snapsKeyboard, "keyboard", 0, "Keyboard height covering the bottom of the viewport")
	rootCmd.AddCommand(snapsCmd)
}

func runSnaps(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if snapsKeyboard < 0 {
		return fmt.Errorf("keyboard height must not be negative")
	}

	s, err := sheet.New(cfg.SheetOptions(), snapsViewport)
	if err != nil {
		return err
	}
	defer s.Close()
	if snapsKeyboard > 0 {
		s.KeyboardShown(snapsKeyboard)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSnapTable(s.Catalog()))
	return nil
}

// renderSnapTable lists every position in c, hidden last.
func renderSnapTable(c sheet.Catalog) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	muted := cell.Foreground(ui.ColorTextMuted)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.ColorBorder)).
		Headers("INDEX", "SNAP", "POSITION", "CONTENT").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row == c.HiddenIndex():
				return muted
			default:
				return cell
			}
		})

	for i := 0; i < c.Len(); i++ {
		label := "hidden"
		if f, ok := c.Fraction(i); ok {
			label = fmt.Sprintf("%g", f)
		}
		t.Row(
			fmt.Sprintf("%d", i),
			label,
			fmt.Sprintf("%.2f", c.At(i)),
			fmt.Sprintf("%.2f", sheet.ContentHeight(c, c.At(i))),
		)
	}

	summary := fmt.Sprintf("viewport %.2f, keyboard %.2f, usable %.2f", c.Viewport(), c.Keyboard(), c.Usable())
	if c.Clamped() {
		summary += " (clamped)"
	}
	return t.String() + "\n" + summary
}
