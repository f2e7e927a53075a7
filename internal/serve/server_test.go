package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthropics/og/internal/export"
	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/state"
	"github.com/anthropics/og/internal/tools"
)

func person(id, name string) *model.Person {
	p := &model.Person{Base: model.NewBase(model.KindPerson, name, "")}
	p.ID = id
	return p
}

func department(id, name string) *model.Department {
	d := &model.Department{
		Base:      model.NewBase(model.KindDepartment, name, ""),
		Code:      "PE",
		Headcount: 2,
	}
	d.ID = id
	return d
}

func system(id, name string) *model.System {
	s := &model.System{
		Base:        model.NewBase(model.KindSystem, name, ""),
		SystemType:  "application",
		Environment: "production",
		Criticality: "medium",
	}
	s.ID = id
	return s
}

func edge(id string, rt model.RelationshipType, src, tgt string) *model.Relationship {
	r := model.NewRelationship(rt, src, tgt)
	r.ID = id
	return r
}

// seedGraphFile writes the same two-component org the tool tests use: a
// three-person department and a three-system dependency chain.
func seedGraphFile(t *testing.T) string {
	t.Helper()
	eng := graph.NewMemory(graph.Options{})
	entities := []model.Entity{
		person("p1", "Dana Hoffman"),
		person("p2", "Miles Archer"),
		department("d1", "Platform Engineering"),
		system("s1", "Billing API"),
		system("s2", "Ledger Service"),
		system("s3", "Postgres Cluster"),
	}
	rels := []*model.Relationship{
		edge("r-works-1", model.RelWorksIn, "p1", "d1"),
		edge("r-manages", model.RelManages, "p1", "d1"),
		edge("r-works-2", model.RelWorksIn, "p2", "d1"),
		edge("r-dep-1", model.RelDependsOn, "s1", "s2"),
		edge("r-dep-2", model.RelDependsOn, "s2", "s3"),
	}
	for _, e := range entities {
		if err := eng.AddEntity(e); err != nil {
			t.Fatalf("seed entity %q: %v", e.Common().ID, err)
		}
	}
	for _, r := range rels {
		if err := eng.AddRelationship(r); err != nil {
			t.Fatalf("seed relationship %q: %v", r.ID, err)
		}
	}
	path := filepath.Join(t.TempDir(), "org.json")
	if err := export.WriteFile(eng, path); err != nil {
		t.Fatalf("write graph file: %v", err)
	}
	return path
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	h, _ := newHandlerWithPath(t)
	return h
}

func newHandlerWithPath(t *testing.T) (http.Handler, string) {
	t.Helper()
	path := seedGraphFile(t)
	svc := state.NewService(state.Options{})
	if _, err := svc.Load(path); err != nil {
		t.Fatalf("load graph: %v", err)
	}
	return NewServer(svc, tools.NewDispatcher(svc, nil), nil).Handler(), path
}

func emptyHandler(t *testing.T) http.Handler {
	t.Helper()
	svc := state.NewService(state.Options{})
	return NewServer(svc, tools.NewDispatcher(svc, nil), nil).Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return m
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeMap(t, rec)
	e, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("response %q has no error object", rec.Body.String())
	}
	kind, _ := e["kind"].(string)
	return kind
}

func TestRoutes_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"index", http.MethodGet, "/", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"statistics", http.MethodGet, "/statistics", "", http.StatusOK},
		{"list entities", http.MethodGet, "/entities?type=person", "", http.StatusOK},
		{"unknown entity type", http.MethodGet, "/entities?type=starship", "", http.StatusBadRequest},
		{"non-integer limit", http.MethodGet, "/entities?limit=abc", "", http.StatusBadRequest},
		{"get entity", http.MethodGet, "/entities/p1", "", http.StatusOK},
		{"missing entity", http.MethodGet, "/entities/ghost", "", http.StatusNotFound},
		{"neighbors", http.MethodGet, "/entities/p1/neighbors", "", http.StatusOK},
		{"bad direction", http.MethodGet, "/entities/p1/neighbors?direction=sideways", "", http.StatusBadRequest},
		{"unknown relationship type", http.MethodGet, "/entities/p1/neighbors?relationship_type=knows", "", http.StatusUnprocessableEntity},
		{"shortest path", http.MethodGet, "/path/s1/s3", "", http.StatusOK},
		{"unreachable path", http.MethodGet, "/path/p1/s1", "", http.StatusNotFound},
		{"blast radius", http.MethodGet, "/blast-radius/s1?max_depth=2", "", http.StatusOK},
		{"negative depth", http.MethodGet, "/blast-radius/s1?max_depth=-1", "", http.StatusBadRequest},
		{"centrality", http.MethodGet, "/centrality?metric=degree&top_n=2", "", http.StatusOK},
		{"unknown metric", http.MethodGet, "/centrality?metric=eigenvector", "", http.StatusBadRequest},
		{"search without q", http.MethodGet, "/search", "", http.StatusBadRequest},
		{"search", http.MethodGet, "/search?q=billing&type=system", "", http.StatusOK},
		{"openai tools", http.MethodGet, "/openai/tools", "", http.StatusOK},
		{"ask", http.MethodPost, "/ask", `{"question":"Who works in Platform Engineering?"}`, http.StatusOK},
		{"ask empty question", http.MethodPost, "/ask", `{"question":"  "}`, http.StatusBadRequest},
		{"ask malformed body", http.MethodPost, "/ask", `{not json`, http.StatusBadRequest},
		{"add relationship", http.MethodPost, "/relationships",
			`{"relationship_type":"manages","source_id":"p2","target_id":"d1"}`, http.StatusOK},
		{"domain violation", http.MethodPost, "/relationships",
			`{"relationship_type":"works_in","source_id":"s1","target_id":"d1"}`, http.StatusUnprocessableEntity},
		{"remove relationship", http.MethodDelete, "/relationships/r-works-1", "", http.StatusOK},
		{"remove missing relationship", http.MethodDelete, "/relationships/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newHandler(t), tt.method, tt.target, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("%s %s = %d, want %d (body %s)",
					tt.method, tt.target, rec.Code, tt.want, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
		})
	}
}

func TestNoGraphLoaded_MapsToConflict(t *testing.T) {
	h := emptyHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/statistics", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if kind := errorKind(t, rec); kind != string(model.ErrNoGraphLoaded) {
		t.Errorf("error kind = %q, want %q", kind, model.ErrNoGraphLoaded)
	}

	rec = doRequest(t, h, http.MethodPost, "/ask", `{"question":"who is here?"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("ask status = %d, want %d", rec.Code, http.StatusConflict)
	}

	// Health stays 200 with zeroed counts; an empty server is not broken.
	rec = doRequest(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	body := decodeMap(t, rec)
	if body["graph_loaded"] != false {
		t.Errorf("graph_loaded = %v, want false", body["graph_loaded"])
	}
	if body["entity_count"] != float64(0) {
		t.Errorf("entity_count = %v, want 0", body["entity_count"])
	}
}

func TestErrorBody_CarriesKindAndMessage(t *testing.T) {
	rec := doRequest(t, newHandler(t), http.MethodGet, "/entities/ghost", "")
	body := decodeMap(t, rec)
	e, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("response %q has no error object", rec.Body.String())
	}
	if e["kind"] != string(model.ErrNotFound) {
		t.Errorf("kind = %v, want %s", e["kind"], model.ErrNotFound)
	}
	msg, _ := e["message"].(string)
	if !strings.Contains(msg, "ghost") {
		t.Errorf("message = %q, want the entity id mentioned", msg)
	}
	if _, ok := e["items"]; ok {
		t.Errorf("items present on a non-batch error: %v", e["items"])
	}
}

func TestIDGuard_RejectsWithoutEcho(t *testing.T) {
	targets := []string{
		"/entities/bad.id",
		"/entities/bad.id/neighbors",
		"/blast-radius/bad.id",
		"/path/bad.id/s1",
		"/relationships/bad.id",
	}
	for _, target := range targets {
		method := http.MethodGet
		if strings.HasPrefix(target, "/relationships/") {
			method = http.MethodDelete
		}
		rec := doRequest(t, newHandler(t), method, target, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
			continue
		}
		if strings.Contains(rec.Body.String(), "bad.id") {
			t.Errorf("%s: response echoes the rejected id: %s", target, rec.Body.String())
		}
		body := decodeMap(t, rec)
		e, _ := body["error"].(map[string]any)
		if e["message"] != "invalid id format" {
			t.Errorf("%s: message = %v, want generic invalid id format", target, e["message"])
		}
	}
}

func TestBatch_RejectionReportsItems(t *testing.T) {
	h := newHandler(t)
	payload := `{"relationships":[
		{"relationship_type":"manages","source_id":"p2","target_id":"d1"},
		{"relationship_type":"works_in","source_id":"s1","target_id":"d1"}
	]}`
	rec := doRequest(t, h, http.MethodPost, "/relationships/batch", payload)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	e, _ := body["error"].(map[string]any)
	if e["kind"] != string(model.ErrBatchRejected) {
		t.Fatalf("kind = %v, want %s", e["kind"], model.ErrBatchRejected)
	}
	items, _ := e["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %v, want exactly the failing entry", e["items"])
	}
	first, _ := items[0].(map[string]any)
	if first["index"] != float64(1) {
		t.Errorf("items[0].index = %v, want 1", first["index"])
	}

	// The whole batch must have been rolled back.
	rec = doRequest(t, h, http.MethodGet, "/statistics", "")
	stats := decodeMap(t, rec)
	if stats["total_relationships"] != float64(5) {
		t.Errorf("total_relationships = %v, want 5 after rejected batch", stats["total_relationships"])
	}
}

func TestAsk_ReturnsContextAndSubgraph(t *testing.T) {
	rec := doRequest(t, newHandler(t), http.MethodPost, "/ask",
		`{"question":"Who works in Platform Engineering?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)

	ctx, _ := body["context"].(string)
	if !strings.Contains(ctx, "Platform Engineering") {
		t.Errorf("context %q does not mention the matched department", ctx)
	}
	entities, _ := body["entities"].([]any)
	if len(entities) == 0 {
		t.Fatalf("entities empty: %s", rec.Body.String())
	}
	first, _ := entities[0].(map[string]any)
	if _, ok := first["created_at"]; ok {
		t.Errorf("entities are not compacted: %v", first)
	}
	stats, _ := body["stats"].(map[string]any)
	if stats["entities_returned"] != float64(len(entities)) {
		t.Errorf("stats.entities_returned = %v, want %d", stats["entities_returned"], len(entities))
	}
}

func TestLoad_BringsServerOnline(t *testing.T) {
	h := emptyHandler(t)
	path := seedGraphFile(t)

	rec := doRequest(t, h, http.MethodPost, "/load", `{"path":`+jsonString(path)+`}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("load status = %d (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["entity_count"] != float64(6) {
		t.Errorf("entity_count = %v, want 6", body["entity_count"])
	}

	rec = doRequest(t, h, http.MethodGet, "/statistics", "")
	if rec.Code != http.StatusOK {
		t.Errorf("statistics after load = %d, want 200", rec.Code)
	}

	rec = doRequest(t, h, http.MethodPost, "/load", `{"path":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty path status = %d, want 400", rec.Code)
	}
}

// jsonString quotes a string as a JSON literal for test payloads.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestOpenAI_ToolsAndCall(t *testing.T) {
	h := newHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/openai/tools", "")
	var defs []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &defs); err != nil {
		t.Fatalf("decode tool defs: %v", err)
	}
	if len(defs) != 13 {
		t.Fatalf("len(defs) = %d, want 13", len(defs))
	}
	fn, _ := defs[0]["function"].(map[string]any)
	if fn["name"] != "load_graph" {
		t.Errorf("defs[0] = %v, want load_graph first", fn["name"])
	}

	rec = doRequest(t, h, http.MethodPost, "/openai/call",
		`{"name":"get_statistics","arguments":{}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("call status = %d (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	result, _ := body["result"].(map[string]any)
	if result["total_entities"] != float64(6) {
		t.Errorf("result.total_entities = %v, want 6", result["total_entities"])
	}

	rec = doRequest(t, h, http.MethodPost, "/openai/call", `{"name":"warp_core","arguments":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown function status = %d, want 400", rec.Code)
	}
	rec = doRequest(t, h, http.MethodPost, "/openai/call", `{"arguments":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", rec.Code)
	}
}

func TestIndex_ListsEveryRoute(t *testing.T) {
	rec := doRequest(t, newHandler(t), http.MethodGet, "/", "")
	body := decodeMap(t, rec)
	if body["service"] != "og" {
		t.Errorf("service = %v, want og", body["service"])
	}
	routes, _ := body["endpoints"].([]any)
	if len(routes) != len(endpoints) {
		t.Fatalf("endpoints = %d entries, want %d", len(routes), len(endpoints))
	}
	joined := rec.Body.String()
	for _, want := range []string{"/blast-radius/{id}", "/openai/call", "/relationships/batch"} {
		if !strings.Contains(joined, want) {
			t.Errorf("index is missing %s", want)
		}
	}
}

func TestWrite_PersistsToBackingFile(t *testing.T) {
	h, path := newHandlerWithPath(t)

	rec := doRequest(t, h, http.MethodPost, "/relationships",
		`{"relationship_type":"manages","source_id":"p2","target_id":"d1","weight":0.4}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeMap(t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}

	eng := graph.NewMemory(graph.Options{})
	counts, err := export.ImportFile(eng, path, false)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if counts.Relationships != 6 {
		t.Errorf("persisted relationships = %d, want 6", counts.Relationships)
	}
}
