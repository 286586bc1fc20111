package github

import (
	"context"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/mock"
)

type MockRepositoriesService struct {
	mock.Mock
}

func (m *MockRepositoriesService) ListByAuthenticatedUser(ctx context.Context, opts *github.RepositoryListByAuthenticatedUserOptions) ([]*github.Repository, *github.Response, error) {
	args := m.Called(ctx, opts)
	var repos []*github.Repository
	if args.Get(0) != nil {
		repos = args.Get(0).([]*github.Repository)
	}
	return repos, responseArg(args, 1), args.Error(2)
}

func (m *MockRepositoriesService) Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	args := m.Called(ctx, owner, repo)
	var r *github.Repository
	if args.Get(0) != nil {
		r = args.Get(0).(*github.Repository)
	}
	return r, responseArg(args, 1), args.Error(2)
}

func (m *MockRepositoriesService) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	var file *github.RepositoryContent
	if args.Get(0) != nil {
		file = args.Get(0).(*github.RepositoryContent)
	}
	var dir []*github.RepositoryContent
	if args.Get(1) != nil {
		dir = args.Get(1).([]*github.RepositoryContent)
	}
	return file, dir, responseArg(args, 2), args.Error(3)
}

func (m *MockRepositoriesService) CreateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	var res *github.RepositoryContentResponse
	if args.Get(0) != nil {
		res = args.Get(0).(*github.RepositoryContentResponse)
	}
	return res, responseArg(args, 1), args.Error(2)
}

func (m *MockRepositoriesService) UpdateFile(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentFileOptions) (*github.RepositoryContentResponse, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	var res *github.RepositoryContentResponse
	if args.Get(0) != nil {
		res = args.Get(0).(*github.RepositoryContentResponse)
	}
	return res, responseArg(args, 1), args.Error(2)
}

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) GetRef(ctx context.Context, owner, repo, ref string) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref)
	var r *github.Reference
	if args.Get(0) != nil {
		r = args.Get(0).(*github.Reference)
	}
	return r, responseArg(args, 1), args.Error(2)
}

func (m *MockGitService) CreateRef(ctx context.Context, owner, repo string, ref *github.Reference) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref)
	var r *github.Reference
	if args.Get(0) != nil {
		r = args.Get(0).(*github.Reference)
	}
	return r, responseArg(args, 1), args.Error(2)
}

type MockPullRequestsService struct {
	mock.Mock
}

func (m *MockPullRequestsService) Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, pull)
	var pr *github.PullRequest
	if args.Get(0) != nil {
		pr = args.Get(0).(*github.PullRequest)
	}
	return pr, responseArg(args, 1), args.Error(2)
}

func responseArg(args mock.Arguments, i int) *github.Response {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*github.Response)
}
