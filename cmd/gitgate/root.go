// gitgate exposes a fixed set of GitHub repository operations to agent
// clients: a REST surface, a tool-invocation endpoint, an SSE discovery
// channel, and an MCP server over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gitgate",
	Short: "GitHub repository gateway for agent clients",
	Long: "gitgate forwards a fixed set of GitHub repository operations\n" +
		"(list repos, read/write files, create branches and pull requests)\n" +
		"to the GitHub API, exposed over REST, tool invocation, SSE and MCP.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
