package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gs-coelho/cifra-carmesim/render"
)

func newRenderCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Solve a box and write the solution as an HTML chart",
		Long: `Solve the box read from standard input and write an HTML page showing
every crystal coloured by brightness, with the used crystals highlighted.

Examples:
  cifra render < box.txt
  cifra render -o box.html < box.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, sol, err := o.solve(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create HTML file: %w", err)
			}
			if err := render.HTML(f, g, sol); err != nil {
				f.Close()
				return fmt.Errorf("failed to render chart: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			log.WithFields(logrus.Fields{"path": output, "used": sol.Crystals}).Info("chart written")
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", sol.Crystals, sol.Brightness)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "solution.html", "Output HTML file")

	return cmd
}
