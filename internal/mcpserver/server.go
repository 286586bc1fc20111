// Package mcpserver exposes the gateway's five repository operations as MCP
// tools, so editor and agent hosts can call them over stdio without going
// through the HTTP surface. Tool names and argument fields match the HTTP
// catalog exactly.
package mcpserver

import (
	"context"

	"gitgate/internal/github"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Service is the operation layer the MCP tools dispatch to. It matches the
// gateway's service so both front-ends share one implementation.
type Service interface {
	ListRepositories(ctx context.Context, visibility string) ([]github.RepositorySummary, error)
	GetFile(ctx context.Context, owner, repo, path, ref string) (*github.FileContent, error)
	CreateOrUpdateFile(ctx context.Context, in github.WriteFileInput) (*github.WriteResult, error)
	CreateBranch(ctx context.Context, in github.BranchInput) (*github.BranchResult, error)
	CreatePullRequest(ctx context.Context, in github.PullRequestInput) (*github.PullRequestResult, error)
}

// Server wraps the MCP SDK server with the repository tools registered.
type Server struct {
	MCPServer *sdkmcp.Server
	svc       Service
}

// New builds the MCP server for the given service.
func New(svc Service, version string) *Server {
	s := &Server{svc: svc}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "gitgate", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over the given transport until ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, transport)
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_repositories",
		Description: "List the authenticated user's repositories, most recently updated first.",
	}, s.handleListRepositories)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_file",
		Description: "Read a file from a repository, decoded to text.",
	}, s.handleGetFile)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "create_or_update_file",
		Description: "Create a file or update it in place, committing with the given message.",
	}, s.handleCreateOrUpdateFile)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "create_branch",
		Description: "Create a branch pointing at the head of a source branch.",
	}, s.handleCreateBranch)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "create_pull_request",
		Description: "Open a pull request from one branch into another.",
	}, s.handleCreatePullRequest)
}

// --- Tool input types ---

type listRepositoriesInput struct {
	Visibility string `json:"visibility,omitempty" jsonschema:"repository visibility filter (all, public, private; default all)"`
}

type listRepositoriesOutput struct {
	Repositories []github.RepositorySummary `json:"repositories"`
	Count        int                        `json:"count"`
}

type getFileInput struct {
	Owner  string `json:"owner" jsonschema:"repository owner"`
	Repo   string `json:"repo" jsonschema:"repository name"`
	Path   string `json:"path" jsonschema:"file path within the repository"`
	Branch string `json:"branch,omitempty" jsonschema:"branch or ref to read from"`
}

type writeFileInput struct {
	Owner   string `json:"owner" jsonschema:"repository owner"`
	Repo    string `json:"repo" jsonschema:"repository name"`
	Path    string `json:"path" jsonschema:"file path within the repository"`
	Content string `json:"content" jsonschema:"new file content (plain text)"`
	Message string `json:"message" jsonschema:"commit message"`
	Branch  string `json:"branch,omitempty" jsonschema:"branch to commit to"`
}

type createBranchInput struct {
	Owner      string `json:"owner" jsonschema:"repository owner"`
	Repo       string `json:"repo" jsonschema:"repository name"`
	Branch     string `json:"branch" jsonschema:"name of the branch to create"`
	FromBranch string `json:"from_branch,omitempty" jsonschema:"source branch (default: repository default branch)"`
}

type createPullRequestInput struct {
	Owner string `json:"owner" jsonschema:"repository owner"`
	Repo  string `json:"repo" jsonschema:"repository name"`
	Title string `json:"title" jsonschema:"pull request title"`
	Head  string `json:"head" jsonschema:"branch with the changes"`
	Base  string `json:"base" jsonschema:"branch to merge into"`
	Body  string `json:"body,omitempty" jsonschema:"pull request description"`
}

// --- Tool handlers ---

func (s *Server) handleListRepositories(ctx context.Context, _ *sdkmcp.CallToolRequest, input listRepositoriesInput) (*sdkmcp.CallToolResult, listRepositoriesOutput, error) {
	repos, err := s.svc.ListRepositories(ctx, input.Visibility)
	if err != nil {
		return nil, listRepositoriesOutput{}, err
	}
	if repos == nil {
		repos = []github.RepositorySummary{}
	}
	return nil, listRepositoriesOutput{Repositories: repos, Count: len(repos)}, nil
}

func (s *Server) handleGetFile(ctx context.Context, _ *sdkmcp.CallToolRequest, input getFileInput) (*sdkmcp.CallToolResult, github.FileContent, error) {
	file, err := s.svc.GetFile(ctx, input.Owner, input.Repo, input.Path, input.Branch)
	if err != nil {
		return nil, github.FileContent{}, err
	}
	return nil, *file, nil
}

func (s *Server) handleCreateOrUpdateFile(ctx context.Context, _ *sdkmcp.CallToolRequest, input writeFileInput) (*sdkmcp.CallToolResult, github.WriteResult, error) {
	res, err := s.svc.CreateOrUpdateFile(ctx, github.WriteFileInput{
		Owner:   input.Owner,
		Repo:    input.Repo,
		Path:    input.Path,
		Branch:  input.Branch,
		Content: input.Content,
		Message: input.Message,
	})
	if err != nil {
		return nil, github.WriteResult{}, err
	}
	return nil, *res, nil
}

func (s *Server) handleCreateBranch(ctx context.Context, _ *sdkmcp.CallToolRequest, input createBranchInput) (*sdkmcp.CallToolResult, github.BranchResult, error) {
	res, err := s.svc.CreateBranch(ctx, github.BranchInput{
		Owner:      input.Owner,
		Repo:       input.Repo,
		Branch:     input.Branch,
		FromBranch: input.FromBranch,
	})
	if err != nil {
		return nil, github.BranchResult{}, err
	}
	return nil, *res, nil
}

func (s *Server) handleCreatePullRequest(ctx context.Context, _ *sdkmcp.CallToolRequest, input createPullRequestInput) (*sdkmcp.CallToolResult, github.PullRequestResult, error) {
	res, err := s.svc.CreatePullRequest(ctx, github.PullRequestInput{
		Owner: input.Owner,
		Repo:  input.Repo,
		Title: input.Title,
		Head:  input.Head,
		Base:  input.Base,
		Body:  input.Body,
	})
	if err != nil {
		return nil, github.PullRequestResult{}, err
	}
	return nil, *res, nil
}
