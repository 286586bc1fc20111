package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type executeRequest struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

type resultEnvelope struct {
	Result any `json:"result"`
}

// handleExecute is the tool-invocation adapter: one endpoint, dispatch by
// tool name. Invocation failures never surface as non-200 status codes;
// they land inside the result envelope. Only an undecodable request body is
// a transport-level 400.
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON body: " + err.Error()})
		return
	}

	op, ok := s.ops[req.Tool]
	if !ok {
		writeJSON(w, http.StatusOK, resultEnvelope{
			Result: errorBody{Error: fmt.Sprintf("Unknown tool: %s", req.Tool)},
		})
		return
	}

	args := req.Arguments
	if args == nil {
		args = map[string]any{}
	}

	out, err := op(r.Context(), args)
	if err != nil {
		writeJSON(w, http.StatusOK, resultEnvelope{Result: errorBody{Error: err.Error()}})
		return
	}
	writeJSON(w, http.StatusOK, resultEnvelope{Result: out})
}
