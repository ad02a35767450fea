// PandA: Plan-and-Audit prompt enhancement MCP server.
//
// A universal MCP server that integrates with any AI tool (Claude Code,
// OpenCode, Gemini CLI, Codex, Cursor, VS Code Copilot) and enhances its
// reasoning with structured planning and auditing frameworks.
//
// Usage:
//
//	panda serve               # Start MCP server (stdio transport)
//	panda serve --transport http --listen 127.0.0.1:8090
//	panda frameworks          # List registered frameworks
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
