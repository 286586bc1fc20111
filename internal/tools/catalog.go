// Package tools holds the static catalog of gateway operations. Every
// discovery surface (REST metadata, plugin manifest, SSE hello event, MCP
// tool list) is built from this one catalog so they cannot drift.
package tools

// Descriptor describes one invocable operation for client discovery.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func str(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// Catalog returns the five gateway operations. The slice is rebuilt on each
// call so callers can't mutate shared state.
func Catalog() []Descriptor {
	return []Descriptor{
		{
			Name:        "list_repositories",
			Description: "List the authenticated user's repositories, most recently updated first.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"visibility": map[string]any{
						"type":        "string",
						"enum":        []string{"all", "public", "private"},
						"description": "Repository visibility filter (default all)",
					},
				},
			},
		},
		{
			Name:        "get_file",
			Description: "Read a file from a repository, decoded to text.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner":  str("Repository owner"),
					"repo":   str("Repository name"),
					"path":   str("File path within the repository"),
					"branch": str("Branch or ref to read from (default: repository default branch)"),
				},
				"required": []string{"owner", "repo", "path"},
			},
		},
		{
			Name:        "create_or_update_file",
			Description: "Create a file or update it in place, committing with the given message.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner":   str("Repository owner"),
					"repo":    str("Repository name"),
					"path":    str("File path within the repository"),
					"content": str("New file content (plain text)"),
					"message": str("Commit message"),
					"branch":  str("Branch to commit to (default: repository default branch)"),
				},
				"required": []string{"owner", "repo", "path", "content", "message"},
			},
		},
		{
			Name:        "create_branch",
			Description: "Create a branch pointing at the head of a source branch.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner":       str("Repository owner"),
					"repo":        str("Repository name"),
					"branch":      str("Name of the branch to create"),
					"from_branch": str("Source branch (default: repository default branch)"),
				},
				"required": []string{"owner", "repo", "branch"},
			},
		},
		{
			Name:        "create_pull_request",
			Description: "Open a pull request from one branch into another.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner": str("Repository owner"),
					"repo":  str("Repository name"),
					"title": str("Pull request title"),
					"head":  str("Branch with the changes"),
					"base":  str("Branch to merge into"),
					"body":  str("Pull request description (default empty)"),
				},
				"required": []string{"owner", "repo", "title", "head", "base"},
			},
		},
	}
}

// Names returns the catalog's tool names in declaration order.
func Names() []string {
	descriptors := Catalog()
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name
	}
	return names
}
