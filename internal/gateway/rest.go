package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitgate/internal/github"
)

// REST adapter status policy: 400 for malformed requests and the directory
// domain error, 502 for upstream failures. The body is always the
// {error: message} envelope, matching the /execute inner error shape.

func (s *Server) handleListRepositories(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{}
	if v := r.URL.Query().Get("visibility"); v != "" {
		args["visibility"] = v
	}
	s.restInvoke(w, r, "list_repositories", args)
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{
		"owner": r.PathValue("owner"),
		"repo":  r.PathValue("repo"),
		"path":  r.PathValue("path"),
	}
	if v := r.URL.Query().Get("branch"); v != "" {
		args["branch"] = v
	}
	s.restInvoke(w, r, "get_file", args)
}

func (s *Server) handlePutFile(w http.ResponseWriter, r *http.Request) {
	args, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	args["owner"] = r.PathValue("owner")
	args["repo"] = r.PathValue("repo")
	args["path"] = r.PathValue("path")
	s.restInvoke(w, r, "create_or_update_file", args)
}

func (s *Server) handleCreateBranch(w http.ResponseWriter, r *http.Request) {
	args, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	args["owner"] = r.PathValue("owner")
	args["repo"] = r.PathValue("repo")
	s.restInvoke(w, r, "create_branch", args)
}

func (s *Server) handleCreatePullRequest(w http.ResponseWriter, r *http.Request) {
	args, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	args["owner"] = r.PathValue("owner")
	args["repo"] = r.PathValue("repo")
	s.restInvoke(w, r, "create_pull_request", args)
}

func (s *Server) restInvoke(w http.ResponseWriter, r *http.Request, tool string, args map[string]any) {
	out, err := s.ops[tool](r.Context(), args)
	if err != nil {
		writeJSON(w, restStatus(err), errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
		return nil, false
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, true
}

func restStatus(err error) int {
	if errors.Is(err, github.ErrIsDirectory) || github.IsArgError(err) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
