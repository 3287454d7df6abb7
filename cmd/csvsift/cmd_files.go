package main

import (
	"fmt"
	"strings"

	"csvsift/internal/locator"

	"github.com/spf13/cobra"
)

// filesCmd lists candidate data files
var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the data files available in the working directory",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	files, err := locator.List(workDir, c.Extension)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintf(out, "No %s files found in the current directory.\n",
			strings.ToUpper(strings.TrimPrefix(c.Extension, ".")))
		return nil
	}
	for _, f := range files {
		fmt.Fprintln(out, f)
	}
	return nil
}
