package github

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(repos *MockRepositoriesService, git *MockGitService, pulls *MockPullRequestsService) *Service {
	if repos == nil {
		repos = &MockRepositoriesService{}
	}
	if git == nil {
		git = &MockGitService{}
	}
	if pulls == nil {
		pulls = &MockPullRequestsService{}
	}
	return NewServiceWithClients(repos, git, pulls)
}

func ghError(status int) error {
	return &github.ErrorResponse{
		Response: &http.Response{StatusCode: status, Request: &http.Request{}},
		Message:  http.StatusText(status),
	}
}

func base64Content(text string) *github.RepositoryContent {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	return &github.RepositoryContent{
		Type:     github.String("file"),
		Encoding: github.String("base64"),
		Content:  github.String(encoded),
	}
}

func TestListRepositories(t *testing.T) {
	t.Run("projects repositories and defaults visibility to all", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("ListByAuthenticatedUser", mock.Anything, mock.MatchedBy(func(opts *github.RepositoryListByAuthenticatedUserOptions) bool {
			return opts.Visibility == "all" && opts.Sort == "updated" && opts.ListOptions.PerPage == 100
		})).Return([]*github.Repository{
			{
				Name:          github.String("hello"),
				FullName:      github.String("octo/hello"),
				Owner:         &github.User{Login: github.String("octo")},
				Private:       github.Bool(true),
				Description:   github.String("demo"),
				HTMLURL:       github.String("https://github.com/octo/hello"),
				DefaultBranch: github.String("main"),
			},
		}, &github.Response{}, nil)

		out, err := svc.ListRepositories(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, RepositorySummary{
			Name:          "hello",
			FullName:      "octo/hello",
			Owner:         "octo",
			Private:       true,
			Description:   "demo",
			URL:           "https://github.com/octo/hello",
			DefaultBranch: "main",
		}, out[0])
		repos.AssertExpectations(t)
	})

	t.Run("rejects unknown visibility without calling upstream", func(t *testing.T) {
		svc := newTestService(nil, nil, nil)

		_, err := svc.ListRepositories(context.Background(), "secret")
		require.Error(t, err)
		assert.True(t, IsArgError(err))
	})

	t.Run("surfaces upstream errors", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("ListByAuthenticatedUser", mock.Anything, mock.Anything).
			Return(nil, nil, ghError(http.StatusUnauthorized))

		_, err := svc.ListRepositories(context.Background(), "all")
		assert.Error(t, err)
	})
}

func TestGetFile(t *testing.T) {
	t.Run("decodes content and pins the ref", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		file := base64Content("hello world\n")
		file.SHA = github.String("abc123")
		file.Size = github.Int(12)
		file.Path = github.String("README.md")

		repos.On("GetContents", mock.Anything, "octo", "hello", "README.md", mock.MatchedBy(func(opts *github.RepositoryContentGetOptions) bool {
			return opts != nil && opts.Ref == "dev"
		})).Return(file, nil, &github.Response{}, nil)

		out, err := svc.GetFile(context.Background(), "octo", "hello", "README.md", "dev")
		require.NoError(t, err)
		assert.Equal(t, "hello world\n", out.Content)
		assert.Equal(t, "abc123", out.SHA)
		assert.Equal(t, 12, out.Size)
		assert.Equal(t, "README.md", out.Path)
	})

	t.Run("omits ref options when no branch given", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "README.md", (*github.RepositoryContentGetOptions)(nil)).
			Return(base64Content("x"), nil, &github.Response{}, nil)

		_, err := svc.GetFile(context.Background(), "octo", "hello", "README.md", "")
		require.NoError(t, err)
		repos.AssertExpectations(t)
	})

	t.Run("directory path yields the domain error", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "docs", mock.Anything).
			Return(nil, []*github.RepositoryContent{{Path: github.String("docs/a.md")}}, &github.Response{}, nil)

		_, err := svc.GetFile(context.Background(), "octo", "hello", "docs", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIsDirectory)
		assert.Equal(t, "Path is a directory, not a file", err.Error())
	})

	t.Run("upstream error is surfaced, not classified as directory", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "missing.md", mock.Anything).
			Return(nil, nil, nil, ghError(http.StatusNotFound))

		_, err := svc.GetFile(context.Background(), "octo", "hello", "missing.md", "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrIsDirectory)
	})
}

func TestCreateOrUpdateFile(t *testing.T) {
	writeIn := WriteFileInput{
		Owner:   "octo",
		Repo:    "hello",
		Path:    "notes.txt",
		Branch:  "main",
		Content: "updated",
		Message: "update notes",
	}

	commitResponse := &github.RepositoryContentResponse{
		Content: &github.RepositoryContent{SHA: github.String("newsha")},
		Commit:  github.Commit{SHA: github.String("commitsha")},
	}

	t.Run("existing file: update carries the current sha", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		existing := base64Content("old")
		existing.SHA = github.String("oldsha")
		repos.On("GetContents", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(existing, nil, &github.Response{}, nil)

		repos.On("UpdateFile", mock.Anything, "octo", "hello", "notes.txt", mock.MatchedBy(func(opts *github.RepositoryContentFileOptions) bool {
			return opts.GetSHA() == "oldsha" &&
				opts.GetMessage() == "update notes" &&
				opts.GetBranch() == "main" &&
				string(opts.Content) == "updated"
		})).Return(commitResponse, &github.Response{}, nil)

		out, err := svc.CreateOrUpdateFile(context.Background(), writeIn)
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, "newsha", out.SHA)
		assert.Equal(t, "commitsha", out.Commit)
		repos.AssertExpectations(t)
	})

	t.Run("missing file: 404 pre-check is swallowed and create runs", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(nil, nil, nil, ghError(http.StatusNotFound))

		repos.On("CreateFile", mock.Anything, "octo", "hello", "notes.txt", mock.MatchedBy(func(opts *github.RepositoryContentFileOptions) bool {
			return opts.SHA == nil
		})).Return(commitResponse, &github.Response{}, nil)

		out, err := svc.CreateOrUpdateFile(context.Background(), writeIn)
		require.NoError(t, err)
		assert.True(t, out.Success)
		repos.AssertExpectations(t)
	})

	t.Run("non-404 pre-check failure aborts the write", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(nil, nil, nil, ghError(http.StatusInternalServerError))

		_, err := svc.CreateOrUpdateFile(context.Background(), writeIn)
		require.Error(t, err)
		repos.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repos.AssertNotCalled(t, "UpdateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("directory path aborts the write", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		repos.On("GetContents", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(nil, []*github.RepositoryContent{{}}, &github.Response{}, nil)

		_, err := svc.CreateOrUpdateFile(context.Background(), writeIn)
		assert.ErrorIs(t, err, ErrIsDirectory)
	})

	t.Run("write conflict is surfaced without retry", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		svc := newTestService(repos, nil, nil)

		existing := base64Content("old")
		existing.SHA = github.String("stale")
		repos.On("GetContents", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(existing, nil, &github.Response{}, nil)
		repos.On("UpdateFile", mock.Anything, "octo", "hello", "notes.txt", mock.Anything).
			Return(nil, nil, ghError(http.StatusConflict)).Once()

		_, err := svc.CreateOrUpdateFile(context.Background(), writeIn)
		require.Error(t, err)
		repos.AssertExpectations(t)
	})
}

func TestCreateBranch(t *testing.T) {
	headRef := &github.Reference{
		Ref:    github.String("refs/heads/main"),
		Object: &github.GitObject{SHA: github.String("headsha")},
	}

	t.Run("explicit source branch", func(t *testing.T) {
		git := &MockGitService{}
		svc := newTestService(nil, git, nil)

		git.On("GetRef", mock.Anything, "octo", "hello", "refs/heads/dev").
			Return(headRef, &github.Response{}, nil)
		git.On("CreateRef", mock.Anything, "octo", "hello", mock.MatchedBy(func(ref *github.Reference) bool {
			return ref.GetRef() == "refs/heads/feature" && ref.GetObject().GetSHA() == "headsha"
		})).Return(&github.Reference{
			Ref:    github.String("refs/heads/feature"),
			Object: &github.GitObject{SHA: github.String("headsha")},
		}, &github.Response{}, nil)

		out, err := svc.CreateBranch(context.Background(), BranchInput{
			Owner: "octo", Repo: "hello", Branch: "feature", FromBranch: "dev",
		})
		require.NoError(t, err)
		assert.Equal(t, &BranchResult{
			Success:    true,
			Branch:     "feature",
			FromBranch: "dev",
			SHA:        "headsha",
		}, out)
		git.AssertExpectations(t)
	})

	t.Run("no source branch: repository default branch is used", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		git := &MockGitService{}
		svc := newTestService(repos, git, nil)

		repos.On("Get", mock.Anything, "octo", "hello").
			Return(&github.Repository{DefaultBranch: github.String("trunk")}, &github.Response{}, nil)
		git.On("GetRef", mock.Anything, "octo", "hello", "refs/heads/trunk").
			Return(headRef, &github.Response{}, nil)
		git.On("CreateRef", mock.Anything, "octo", "hello", mock.Anything).
			Return(headRef, &github.Response{}, nil)

		out, err := svc.CreateBranch(context.Background(), BranchInput{
			Owner: "octo", Repo: "hello", Branch: "feature",
		})
		require.NoError(t, err)
		assert.Equal(t, "trunk", out.FromBranch)
		repos.AssertExpectations(t)
		git.AssertExpectations(t)
	})

	t.Run("missing source branch is surfaced", func(t *testing.T) {
		git := &MockGitService{}
		svc := newTestService(nil, git, nil)

		git.On("GetRef", mock.Anything, "octo", "hello", "refs/heads/ghost").
			Return(nil, nil, ghError(http.StatusNotFound))

		_, err := svc.CreateBranch(context.Background(), BranchInput{
			Owner: "octo", Repo: "hello", Branch: "feature", FromBranch: "ghost",
		})
		assert.Error(t, err)
	})
}

func TestCreatePullRequest(t *testing.T) {
	t.Run("opens head into base", func(t *testing.T) {
		pulls := &MockPullRequestsService{}
		svc := newTestService(nil, nil, pulls)

		pulls.On("Create", mock.Anything, "octo", "hello", mock.MatchedBy(func(pr *github.NewPullRequest) bool {
			return pr.GetTitle() == "Add feature" &&
				pr.GetHead() == "feature" &&
				pr.GetBase() == "main" &&
				pr.GetBody() == ""
		})).Return(&github.PullRequest{
			Number:  github.Int(7),
			HTMLURL: github.String("https://github.com/octo/hello/pull/7"),
			Title:   github.String("Add feature"),
		}, &github.Response{}, nil)

		out, err := svc.CreatePullRequest(context.Background(), PullRequestInput{
			Owner: "octo", Repo: "hello", Title: "Add feature", Head: "feature", Base: "main",
		})
		require.NoError(t, err)
		assert.Equal(t, &PullRequestResult{
			Success: true,
			Number:  7,
			URL:     "https://github.com/octo/hello/pull/7",
			Title:   "Add feature",
			Head:    "feature",
			Base:    "main",
		}, out)
	})

	t.Run("upstream rejection is surfaced", func(t *testing.T) {
		pulls := &MockPullRequestsService{}
		svc := newTestService(nil, nil, pulls)

		pulls.On("Create", mock.Anything, "octo", "hello", mock.Anything).
			Return(nil, nil, ghError(http.StatusUnprocessableEntity))

		_, err := svc.CreatePullRequest(context.Background(), PullRequestInput{
			Owner: "octo", Repo: "hello", Title: "dup", Head: "feature", Base: "main",
		})
		assert.Error(t, err)
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ghError(http.StatusNotFound)))
	assert.False(t, IsNotFound(ghError(http.StatusInternalServerError)))
	assert.False(t, IsNotFound(errors.New("dial tcp: timeout")))
	assert.False(t, IsNotFound(nil))
}
