package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gitgate/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the tool catalog as JSON",
	Long:  "Prints the discovery descriptors for the five repository operations,\nexactly as served by /metadata and the MCP tool list.",
	RunE:  runTools,
}

func runTools(cmd *cobra.Command, _ []string) error {
	data, err := json.MarshalIndent(tools.Catalog(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
