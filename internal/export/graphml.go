package export

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
)

// GraphML export is one-way: attribute values are coerced to strings, so
// a round trip back into the engine is not supported. Use the JSON
// document format for that.

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

type xmlGraphML struct {
	XMLName xml.Name `xml:"graphml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Keys    []xmlKey `xml:"key"`
	Graph   xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type xmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	ID     string    `xml:"id,attr"`
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// keyRegistry assigns GraphML key ids (d0, d1, ...) in first-seen order,
// one per (domain, attribute) pair.
type keyRegistry struct {
	ids  map[string]string
	keys []xmlKey
}

func newKeyRegistry() *keyRegistry {
	return &keyRegistry{ids: make(map[string]string)}
}

func (r *keyRegistry) id(domain, name string) string {
	k := domain + "\x00" + name
	if id, ok := r.ids[k]; ok {
		return id
	}
	id := fmt.Sprintf("d%d", len(r.keys))
	r.ids[k] = id
	r.keys = append(r.keys, xmlKey{ID: id, For: domain, AttrName: name, AttrType: "string"})
	return id
}

// MarshalGraphML renders the graph as a GraphML document. Node ids carry
// the entity id; every other marshaled field becomes a string-typed data
// element, with per-node fields emitted in sorted order so output is
// deterministic.
func MarshalGraphML(eng graph.Engine) ([]byte, error) {
	entities, err := eng.ListEntities(graph.ListFilter{})
	if err != nil {
		return nil, err
	}

	reg := newKeyRegistry()
	nodes := make([]xmlNode, 0, len(entities))
	var edges []xmlEdge
	seen := make(map[string]bool)

	for _, e := range entities {
		raw, err := model.MarshalEntity(e)
		if err != nil {
			return nil, err
		}
		var fields map[string]any
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, model.Internalf("decode entity %q: %v", e.Common().ID, err)
		}
		node := xmlNode{ID: e.Common().ID}
		for _, name := range sortedFieldNames(fields) {
			if name == "id" {
				continue
			}
			val, ok := coerceAttr(fields[name])
			if !ok {
				continue
			}
			node.Data = append(node.Data, xmlData{Key: reg.id("node", name), Value: val})
		}
		nodes = append(nodes, node)
	}

	for _, e := range entities {
		rels, err := eng.Relationships(e.Common().ID, graph.DirectionBoth, "")
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			if seen[rel.ID] {
				continue
			}
			seen[rel.ID] = true
			raw, err := json.Marshal(rel)
			if err != nil {
				return nil, model.Internalf("encode relationship %q: %v", rel.ID, err)
			}
			var fields map[string]any
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, model.Internalf("decode relationship %q: %v", rel.ID, err)
			}
			edge := xmlEdge{ID: rel.ID, Source: rel.SourceID, Target: rel.TargetID}
			for _, name := range sortedFieldNames(fields) {
				switch name {
				case "id", "source_id", "target_id":
					continue
				}
				val, ok := coerceAttr(fields[name])
				if !ok {
					continue
				}
				edge.Data = append(edge.Data, xmlData{Key: reg.id("edge", name), Value: val})
			}
			edges = append(edges, edge)
		}
	}

	doc := xmlGraphML{
		Xmlns: graphmlNS,
		Keys:  reg.keys,
		Graph: xmlGraph{ID: "og", EdgeDefault: "directed", Nodes: nodes, Edges: edges},
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, model.Internalf("encode graphml: %v", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// WriteGraphML writes the GraphML rendering of eng to path, creating
// parent directories as needed.
func WriteGraphML(eng graph.Engine, path string) error {
	data, err := MarshalGraphML(eng)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return model.Persistencef("create export directory: %v", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return model.Persistencef("write graphml file: %v", err)
	}
	return nil
}

func sortedFieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// coerceAttr renders a decoded JSON value as a GraphML attribute string.
// Nil and empty composites are dropped entirely.
func coerceAttr(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		if val == "" {
			return "", false
		}
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case []any:
		if len(val) == 0 {
			return "", false
		}
	case map[string]any:
		if len(val) == 0 {
			return "", false
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(data), true
}
