package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	mandel "github.com/marben/mandelzoom"
)

var (
	landmarkKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	landmarkNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the named landmarks",
		Long:  "Landmarks can be given to --region, or reached with the digit keys while exploring.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, l := range mandel.Landmarks {
				_, err := fmt.Fprintf(out, "%s %s %s\n    %s\n",
					landmarkKeyStyle.Render(fmt.Sprintf("[%d]", i+1)),
					landmarkNameStyle.Render(fmt.Sprintf("%-10s", l.Name)),
					l.Region,
					dimStyle.Render(l.Description))
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
