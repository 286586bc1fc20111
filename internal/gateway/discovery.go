package gateway

import (
	"net/http"

	"gitgate/internal/tools"
)

// Metadata is the discovery descriptor served by /metadata and emitted as
// the first SSE event.
type Metadata struct {
	Name        string             `json:"name"`
	Version     string             `json:"version"`
	Description string             `json:"description"`
	Protocol    string             `json:"protocol"`
	Tools       []tools.Descriptor `json:"tools"`
}

func (s *Server) metadata() Metadata {
	return Metadata{
		Name:        "gitgate",
		Version:     s.version,
		Description: "Gateway exposing GitHub repository operations to agent clients",
		Protocol:    "rest+sse",
		Tools:       tools.Catalog(),
	}
}

func (s *Server) handleMetadata(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.metadata())
}

type pluginAPI struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type pluginManifest struct {
	SchemaVersion       string            `json:"schema_version"`
	NameForHuman        string            `json:"name_for_human"`
	NameForModel        string            `json:"name_for_model"`
	DescriptionForHuman string            `json:"description_for_human"`
	DescriptionForModel string            `json:"description_for_model"`
	Auth                map[string]string `json:"auth"`
	API                 pluginAPI         `json:"api"`
	Tools               []string          `json:"tools"`
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	writeJSON(w, http.StatusOK, pluginManifest{
		SchemaVersion:       "v1",
		NameForHuman:        "gitgate",
		NameForModel:        "gitgate",
		DescriptionForHuman: "Browse and change GitHub repositories: list repos, read and write files, create branches and pull requests.",
		DescriptionForModel: "Gateway exposing GitHub repository operations to agent clients",
		Auth:                map[string]string{"type": "none"},
		API: pluginAPI{
			Type: "openapi",
			URL:  scheme + "://" + r.Host + "/openapi.json",
		},
		Tools: tools.Names(),
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.openAPIDocument())
}

// openAPIDocument describes the REST surface. The operation schemas come
// from the shared catalog so the document cannot drift from the dispatch
// table.
func (s *Server) openAPIDocument() map[string]any {
	byName := make(map[string]tools.Descriptor)
	for _, d := range tools.Catalog() {
		byName[d.Name] = d
	}

	jsonBody := func(schema map[string]any) map[string]any {
		return map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{"schema": schema},
			},
		}
	}
	okResponse := map[string]any{
		"200": map[string]any{"description": "Successful operation"},
	}
	pathParam := func(name string) map[string]any {
		return map[string]any{
			"name":     name,
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string"},
		}
	}
	repoParams := []map[string]any{pathParam("owner"), pathParam("repo")}

	return map[string]any{
		"openapi": "3.0.1",
		"info": map[string]any{
			"title":       "gitgate",
			"description": "Gateway exposing GitHub repository operations to agent clients",
			"version":     s.version,
		},
		"paths": map[string]any{
			"/health": map[string]any{
				"get": map[string]any{
					"operationId": "health",
					"summary":     "Liveness check",
					"responses":   okResponse,
				},
			},
			"/repos": map[string]any{
				"get": map[string]any{
					"operationId": "list_repositories",
					"summary":     byName["list_repositories"].Description,
					"parameters": []map[string]any{{
						"name":   "visibility",
						"in":     "query",
						"schema": map[string]any{"type": "string", "enum": []string{"all", "public", "private"}},
					}},
					"responses": okResponse,
				},
			},
			"/repos/{owner}/{repo}/contents/{path}": map[string]any{
				"get": map[string]any{
					"operationId": "get_file",
					"summary":     byName["get_file"].Description,
					"parameters": append(append([]map[string]any{}, repoParams...),
						pathParam("path"),
						map[string]any{
							"name":   "branch",
							"in":     "query",
							"schema": map[string]any{"type": "string"},
						}),
					"responses": okResponse,
				},
				"put": map[string]any{
					"operationId": "create_or_update_file",
					"summary":     byName["create_or_update_file"].Description,
					"parameters":  append(append([]map[string]any{}, repoParams...), pathParam("path")),
					"requestBody": jsonBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"content": map[string]any{"type": "string"},
							"message": map[string]any{"type": "string"},
							"branch":  map[string]any{"type": "string"},
						},
						"required": []string{"content", "message"},
					}),
					"responses": okResponse,
				},
			},
			"/repos/{owner}/{repo}/branches": map[string]any{
				"post": map[string]any{
					"operationId": "create_branch",
					"summary":     byName["create_branch"].Description,
					"parameters":  repoParams,
					"requestBody": jsonBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"branch":      map[string]any{"type": "string"},
							"from_branch": map[string]any{"type": "string"},
						},
						"required": []string{"branch"},
					}),
					"responses": okResponse,
				},
			},
			"/repos/{owner}/{repo}/pulls": map[string]any{
				"post": map[string]any{
					"operationId": "create_pull_request",
					"summary":     byName["create_pull_request"].Description,
					"parameters":  repoParams,
					"requestBody": jsonBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title": map[string]any{"type": "string"},
							"body":  map[string]any{"type": "string"},
							"head":  map[string]any{"type": "string"},
							"base":  map[string]any{"type": "string"},
						},
						"required": []string{"title", "head", "base"},
					}),
					"responses": okResponse,
				},
			},
			"/execute": map[string]any{
				"post": map[string]any{
					"operationId": "execute",
					"summary":     "Invoke a named tool with arguments",
					"requestBody": jsonBody(map[string]any{
						"type": "object",
						"properties": map[string]any{
							"tool":      map[string]any{"type": "string", "enum": tools.Names()},
							"arguments": map[string]any{"type": "object"},
						},
						"required": []string{"tool"},
					}),
					"responses": okResponse,
				},
			},
		},
	}
}
