package github

// RepositorySummary is the projection of an upstream repository returned by
// list_repositories. Field names are part of the wire contract.
type RepositorySummary struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Owner         string `json:"owner"`
	Private       bool   `json:"private"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	DefaultBranch string `json:"default_branch"`
}

// FileContent is a decoded file returned by get_file. SHA is the upstream
// revision token required to update the file.
type FileContent struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Size    int    `json:"size"`
	Path    string `json:"path"`
}

// WriteFileInput carries the arguments of create_or_update_file.
type WriteFileInput struct {
	Owner   string
	Repo    string
	Path    string
	Branch  string
	Content string
	Message string
}

// WriteResult reports a committed file write.
type WriteResult struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
	Branch  string `json:"branch,omitempty"`
	SHA     string `json:"sha,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// BranchInput carries the arguments of create_branch.
type BranchInput struct {
	Owner      string
	Repo       string
	Branch     string
	FromBranch string
}

// BranchResult reports a created branch and the commit it points at.
type BranchResult struct {
	Success    bool   `json:"success"`
	Branch     string `json:"branch"`
	FromBranch string `json:"from_branch"`
	SHA        string `json:"sha"`
}

// PullRequestInput carries the arguments of create_pull_request.
type PullRequestInput struct {
	Owner string
	Repo  string
	Title string
	Head  string
	Base  string
	Body  string
}

// PullRequestResult reports an opened pull request.
type PullRequestResult struct {
	Success bool   `json:"success"`
	Number  int    `json:"number"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Head    string `json:"head"`
	Base    string `json:"base"`
}
