package serve

import (
	"net/http"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/tools"
)

const serverVersion = "1.0.0"

var endpoints = []string{
	"GET / - this index",
	"GET /health - liveness and graph status",
	"GET /statistics - graph-wide statistics",
	"GET /entities - list entities, filter with ?type= and ?limit=",
	"GET /entities/{id} - fetch one entity",
	"GET /entities/{id}/neighbors - adjacent entities, filter with ?direction= and ?relationship_type=",
	"GET /path/{src}/{tgt} - shortest path between two entities",
	"GET /blast-radius/{id} - reachable entities by depth, bound with ?max_depth=",
	"GET /centrality - centrality scores, choose with ?metric= and ?top_n=",
	"GET /search - fuzzy name search, ?q= required",
	"POST /ask - natural-language question answered with graph context",
	"POST /load - load a graph file into the server",
	"GET /openai/tools - function-calling definitions for every tool",
	"POST /openai/call - invoke one tool by name",
	"POST /relationships - add one relationship",
	"POST /relationships/batch - add relationships atomically",
	"DELETE /relationships/{id} - remove a relationship",
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service":   "og",
		"version":   serverVersion,
		"endpoints": endpoints,
	})
}

// handleHealth always answers 200; a server without a graph is healthy,
// just empty.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":             "ok",
		"graph_loaded":       false,
		"entity_count":       0,
		"relationship_count": 0,
	}
	_ = s.state.Read(func(eng graph.Engine) error {
		stats, err := eng.Statistics()
		if err != nil {
			return err
		}
		body["graph_loaded"] = true
		body["entity_count"] = stats.TotalEntities
		body["relationship_count"] = stats.TotalRelationships
		return nil
	})
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	s.call(w, "get_statistics", map[string]any{})
}

func (s *Server) handleListEntities(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{}
	setQueryString(args, r, "type", "entity_type")
	if err := setQueryInt(args, r, "limit", "limit"); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "list_entities", args)
}

func (s *Server) handleGetEntity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	s.call(w, "get_entity", map[string]any{"entity_id": id})
}

func (s *Server) handleGetNeighbors(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	args := map[string]any{"entity_id": id}
	setQueryString(args, r, "direction", "direction")
	setQueryString(args, r, "relationship_type", "relationship_type")
	s.call(w, "get_neighbors", args)
}

func (s *Server) handleShortestPath(w http.ResponseWriter, r *http.Request) {
	src, ok := s.pathID(w, r, "src")
	if !ok {
		return
	}
	tgt, ok := s.pathID(w, r, "tgt")
	if !ok {
		return
	}
	s.call(w, "find_shortest_path", map[string]any{
		"source_id": src,
		"target_id": tgt,
	})
}

func (s *Server) handleBlastRadius(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	args := map[string]any{"entity_id": id}
	if err := setQueryInt(args, r, "max_depth", "max_depth"); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "get_blast_radius", args)
}

func (s *Server) handleCentrality(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{}
	setQueryString(args, r, "metric", "metric")
	if err := setQueryInt(args, r, "top_n", "top_n"); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "compute_centrality", args)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("q") == "" {
		s.writeError(w, model.Validationf("missing required query parameter %q", "q"))
		return
	}
	args := map[string]any{}
	setQueryString(args, r, "q", "query")
	setQueryString(args, r, "type", "entity_type")
	if err := setQueryInt(args, r, "limit", "limit"); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "search_entities", args)
}

type askRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

// handleAsk retrieves graph context for a natural-language question. The
// response carries the prompt-ready context block plus the entities and
// relationships behind it, compacted the same way tool responses are.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	var resp map[string]any
	err := s.state.Read(func(eng graph.Engine) error {
		res, err := s.retriever.Retrieve(eng, req.Question, req.TopK)
		if err != nil {
			return err
		}
		entities, err := tools.CompactList(res.Entities)
		if err != nil {
			return err
		}
		rels := make([]map[string]any, 0, len(res.Relationships))
		for _, rel := range res.Relationships {
			c, err := tools.CompactRelationship(rel)
			if err != nil {
				return err
			}
			rels = append(rels, c)
		}
		resp = map[string]any{
			"context":       res.Context,
			"entities":      entities,
			"relationships": rels,
			"stats":         res.Stats,
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "load_graph", map[string]any{"path": req.Path})
}

func (s *Server) handleOpenAITools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, tools.OpenAIToolDefs(s.dispatcher))
}

type openAICallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// handleOpenAICall executes a function call produced by a model. The
// result is wrapped in a "result" envelope so callers can feed it back as
// the function response verbatim.
func (s *Server) handleOpenAICall(w http.ResponseWriter, r *http.Request) {
	var req openAICallRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Name == "" {
		s.writeError(w, model.Validationf("function name is required"))
		return
	}
	result, err := s.dispatcher.Call(req.Name, req.Arguments)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (s *Server) handleAddRelationship(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := decodeBody(r, &args); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "add_relationship_tool", args)
}

func (s *Server) handleAddRelationshipsBatch(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := decodeBody(r, &args); err != nil {
		s.writeError(w, err)
		return
	}
	s.call(w, "add_relationships_batch", args)
}

func (s *Server) handleRemoveRelationship(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r, "id")
	if !ok {
		return
	}
	s.call(w, "remove_relationship_tool", map[string]any{"relationship_id": id})
}
