// Package github implements the five repository operations the gateway
// exposes, as thin pass-throughs to the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"gitgate/internal/logging"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// listPageSize caps list_repositories at a single fixed page.
const listPageSize = 100

// RepositoriesService is the subset of the go-github Repositories API the
// service calls. Narrow interfaces keep the service mockable in tests.
type RepositoriesService interface {
	ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error)
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error)
}

// GitService is the subset of the go-github Git (refs) API the service calls.
type GitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error)
}

// PullRequestsService is the subset of the go-github PullRequests API the
// service calls.
type PullRequestsService interface {
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
}

// Service executes the gateway's repository operations against GitHub.
// It holds no mutable state; one instance is shared by every request.
type Service struct {
	repos  RepositoriesService
	git    GitService
	pulls  PullRequestsService
	logger *slog.Logger
}

// NewService builds a Service authenticated with the given bearer token.
func NewService(token string) *Service {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(context.Background(), ts))
	return &Service{
		repos:  client.Repositories,
		git:    client.Git,
		pulls:  client.PullRequests,
		logger: logging.New("github"),
	}
}

// NewServiceWithClients wires explicit API implementations. Used by tests.
func NewServiceWithClients(repos RepositoriesService, git GitService, pulls PullRequestsService) *Service {
	return &Service{
		repos:  repos,
		git:    git,
		pulls:  pulls,
		logger: logging.New("github"),
	}
}

// ListRepositories returns the authenticated user's repositories sorted by
// most recent update, capped at one page of listPageSize entries.
func (s *Service) ListRepositories(ctx context.Context, visibility string) ([]RepositorySummary, error) {
	if visibility == "" {
		visibility = "all"
	}
	switch visibility {
	case "all", "public", "private":
	default:
		return nil, argErrorf("invalid visibility %q (want all, public or private)", visibility)
	}

	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Visibility: visibility,
		Sort:       "updated",
		Direction:  "desc",
		ListOptions: github.ListOptions{
			PerPage: listPageSize,
		},
	}
	repos, _, err := s.repos.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	out := make([]RepositorySummary, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepositorySummary{
			Name:          r.GetName(),
			FullName:      r.GetFullName(),
			Owner:         r.GetOwner().GetLogin(),
			Private:       r.GetPrivate(),
			Description:   r.GetDescription(),
			URL:           r.GetHTMLURL(),
			DefaultBranch: r.GetDefaultBranch(),
		})
	}
	return out, nil
}

// GetFile fetches the file at path, optionally pinned to ref, and decodes its
// content from base64. A path resolving to a directory is a domain error.
func (s *Service) GetFile(ctx context.Context, owner, repo, path, ref string) (*FileContent, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, dir, _, err := s.repos.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s/%s: %w", owner, repo, path, err)
	}
	if dir != nil || file == nil {
		return nil, ErrIsDirectory
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &FileContent{
		Content: content,
		SHA:     file.GetSHA(),
		Size:    file.GetSize(),
		Path:    file.GetPath(),
	}, nil
}

// CreateOrUpdateFile commits content at a path, updating the file in place
// when it already exists. The existence pre-check fetches the current blob
// SHA so the write carries the optimistic-concurrency token; a 404 from the
// pre-check means the file does not exist yet and the write proceeds as a
// create. Any other pre-check failure aborts the write. The read-then-write
// pair is not atomic: a concurrent writer surfaces as an upstream conflict
// on the write, which is returned as-is.
func (s *Service) CreateOrUpdateFile(ctx context.Context, in WriteFileInput) (*WriteResult, error) {
	var getOpts *github.RepositoryContentGetOptions
	if in.Branch != "" {
		getOpts = &github.RepositoryContentGetOptions{Ref: in.Branch}
	}

	sha := ""
	existing, dir, _, err := s.repos.GetContents(ctx, in.Owner, in.Repo, in.Path, getOpts)
	switch {
	case err != nil && IsNotFound(err):
		// File does not exist yet: create fresh.
	case err != nil:
		return nil, fmt.Errorf("check existing file %s: %w", in.Path, err)
	case dir != nil:
		return nil, ErrIsDirectory
	case existing != nil:
		sha = existing.GetSHA()
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(in.Message),
		Content: []byte(in.Content),
	}
	if in.Branch != "" {
		opts.Branch = github.String(in.Branch)
	}

	var res *github.RepositoryContentResponse
	if sha != "" {
		opts.SHA = github.String(sha)
		res, _, err = s.repos.UpdateFile(ctx, in.Owner, in.Repo, in.Path, opts)
	} else {
		res, _, err = s.repos.CreateFile(ctx, in.Owner, in.Repo, in.Path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("write %s/%s/%s: %w", in.Owner, in.Repo, in.Path, err)
	}

	s.logger.Info("file committed",
		slog.String("repo", in.Owner+"/"+in.Repo),
		slog.String("path", in.Path),
		slog.Bool("update", sha != ""))

	return &WriteResult{
		Success: true,
		Path:    in.Path,
		Branch:  in.Branch,
		SHA:     res.Content.GetSHA(),
		Commit:  res.Commit.GetSHA(),
	}, nil
}

// CreateBranch creates a new branch pointing at the head commit of the
// source branch. When no source is given the repository's configured
// default branch is used.
func (s *Service) CreateBranch(ctx context.Context, in BranchInput) (*BranchResult, error) {
	from := in.FromBranch
	if from == "" {
		repo, _, err := s.repos.Get(ctx, in.Owner, in.Repo)
		if err != nil {
			return nil, fmt.Errorf("get repository %s/%s: %w", in.Owner, in.Repo, err)
		}
		from = repo.GetDefaultBranch()
	}

	ref, _, err := s.git.GetRef(ctx, in.Owner, in.Repo, "refs/heads/"+from)
	if err != nil {
		return nil, fmt.Errorf("resolve branch %s: %w", from, err)
	}

	created, _, err := s.git.CreateRef(ctx, in.Owner, in.Repo, &github.Reference{
		Ref:    github.String("refs/heads/" + in.Branch),
		Object: &github.GitObject{SHA: ref.GetObject().SHA},
	})
	if err != nil {
		return nil, fmt.Errorf("create branch %s: %w", in.Branch, err)
	}

	s.logger.Info("branch created",
		slog.String("repo", in.Owner+"/"+in.Repo),
		slog.String("branch", in.Branch),
		slog.String("from", from))

	return &BranchResult{
		Success:    true,
		Branch:     in.Branch,
		FromBranch: from,
		SHA:        created.GetObject().GetSHA(),
	}, nil
}

// CreatePullRequest opens a pull request from head into base.
func (s *Service) CreatePullRequest(ctx context.Context, in PullRequestInput) (*PullRequestResult, error) {
	pr, _, err := s.pulls.Create(ctx, in.Owner, in.Repo, &github.NewPullRequest{
		Title: github.String(in.Title),
		Head:  github.String(in.Head),
		Base:  github.String(in.Base),
		Body:  github.String(in.Body),
	})
	if err != nil {
		return nil, fmt.Errorf("create pull request %s -> %s: %w", in.Head, in.Base, err)
	}

	s.logger.Info("pull request opened",
		slog.String("repo", in.Owner+"/"+in.Repo),
		slog.Int("number", pr.GetNumber()))

	return &PullRequestResult{
		Success: true,
		Number:  pr.GetNumber(),
		URL:     pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		Head:    in.Head,
		Base:    in.Base,
	}, nil
}
