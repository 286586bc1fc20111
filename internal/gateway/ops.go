package gateway

import (
	"context"

	"gitgate/internal/github"
)

// operation executes one named tool against decoded arguments. Both the
// REST adapter and /execute go through this table, which is what keeps
// their payloads identical.
type operation func(ctx context.Context, args map[string]any) (any, error)

func (s *Server) operations() map[string]operation {
	return map[string]operation{
		"list_repositories":     s.opListRepositories,
		"get_file":              s.opGetFile,
		"create_or_update_file": s.opCreateOrUpdateFile,
		"create_branch":         s.opCreateBranch,
		"create_pull_request":   s.opCreatePullRequest,
	}
}

// repositoryList is the list_repositories response envelope.
type repositoryList struct {
	Repositories []github.RepositorySummary `json:"repositories"`
	Count        int                        `json:"count"`
}

func (s *Server) opListRepositories(ctx context.Context, args map[string]any) (any, error) {
	visibility, err := optString(args, "visibility")
	if err != nil {
		return nil, err
	}
	repos, err := s.svc.ListRepositories(ctx, visibility)
	if err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []github.RepositorySummary{}
	}
	return repositoryList{Repositories: repos, Count: len(repos)}, nil
}

func (s *Server) opGetFile(ctx context.Context, args map[string]any) (any, error) {
	owner, repo, err := ownerRepo(args)
	if err != nil {
		return nil, err
	}
	path, err := reqString(args, "path")
	if err != nil {
		return nil, err
	}
	branch, err := optString(args, "branch")
	if err != nil {
		return nil, err
	}
	return s.svc.GetFile(ctx, owner, repo, path, branch)
}

func (s *Server) opCreateOrUpdateFile(ctx context.Context, args map[string]any) (any, error) {
	owner, repo, err := ownerRepo(args)
	if err != nil {
		return nil, err
	}
	path, err := reqString(args, "path")
	if err != nil {
		return nil, err
	}
	content, err := reqString(args, "content")
	if err != nil {
		return nil, err
	}
	message, err := reqString(args, "message")
	if err != nil {
		return nil, err
	}
	branch, err := optString(args, "branch")
	if err != nil {
		return nil, err
	}
	return s.svc.CreateOrUpdateFile(ctx, github.WriteFileInput{
		Owner:   owner,
		Repo:    repo,
		Path:    path,
		Branch:  branch,
		Content: content,
		Message: message,
	})
}

func (s *Server) opCreateBranch(ctx context.Context, args map[string]any) (any, error) {
	owner, repo, err := ownerRepo(args)
	if err != nil {
		return nil, err
	}
	branch, err := reqString(args, "branch")
	if err != nil {
		return nil, err
	}
	from, err := optString(args, "from_branch")
	if err != nil {
		return nil, err
	}
	return s.svc.CreateBranch(ctx, github.BranchInput{
		Owner:      owner,
		Repo:       repo,
		Branch:     branch,
		FromBranch: from,
	})
}

func (s *Server) opCreatePullRequest(ctx context.Context, args map[string]any) (any, error) {
	owner, repo, err := ownerRepo(args)
	if err != nil {
		return nil, err
	}
	title, err := reqString(args, "title")
	if err != nil {
		return nil, err
	}
	head, err := reqString(args, "head")
	if err != nil {
		return nil, err
	}
	base, err := reqString(args, "base")
	if err != nil {
		return nil, err
	}
	body, err := optString(args, "body")
	if err != nil {
		return nil, err
	}
	return s.svc.CreatePullRequest(ctx, github.PullRequestInput{
		Owner: owner,
		Repo:  repo,
		Title: title,
		Head:  head,
		Base:  base,
		Body:  body,
	})
}

func ownerRepo(args map[string]any) (string, string, error) {
	owner, err := reqString(args, "owner")
	if err != nil {
		return "", "", err
	}
	repo, err := reqString(args, "repo")
	if err != nil {
		return "", "", err
	}
	return owner, repo, nil
}

// reqString extracts a required string argument.
func reqString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", github.ArgErrorf("missing required argument: %s", key)
	}
	str, ok := v.(string)
	if !ok {
		return "", github.ArgErrorf("argument %s must be a string", key)
	}
	if str == "" {
		return "", github.ArgErrorf("missing required argument: %s", key)
	}
	return str, nil
}

// optString extracts an optional string argument; absent means empty.
func optString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	str, ok := v.(string)
	if !ok {
		return "", github.ArgErrorf("argument %s must be a string", key)
	}
	return str, nil
}
