package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func sheetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets FILE",
		Short: "List the driver sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open workbook: %w", err)
			}
			defer f.Close()

			sheets, err := c.service().Sheets(f, filepath.Base(args[0]))
			if err != nil {
				return err
			}
			for _, name := range sheets {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
