// Package rag answers natural-language questions with graph context: it
// extracts keywords, fuzzy-matches them against entity names, expands one
// hop of neighbours, and renders the surviving subgraph as text an LLM can
// ground on.
package rag

import (
	"sort"
	"strings"

	"github.com/anthropics/og/internal/graph"
	"github.com/anthropics/og/internal/model"
	"github.com/anthropics/og/internal/search"
)

// Scores assigned outside fuzzy matching. Keyword hits keep their fuzzy
// score; entities pulled in purely by kind or adjacency rank below direct
// hits and above nothing.
const (
	typeMatchScore  = 60.0
	neighborScore   = 40.0
	seedBonus       = 5.0
	centralityBonus = 2.0
)

// DefaultTopK bounds a retrieval when the caller passes no limit.
const DefaultTopK = 20

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "shall": true, "can": true, "need": true, "dare": true,
	"ought": true, "used": true, "to": true, "of": true, "in": true,
	"for": true, "on": true, "with": true, "at": true, "by": true,
	"from": true, "as": true, "into": true, "through": true, "during": true,
	"before": true, "after": true, "above": true, "below": true,
	"between": true, "out": true, "off": true, "over": true, "under": true,
	"again": true, "further": true, "then": true, "once": true, "here": true,
	"there": true, "when": true, "where": true, "why": true, "how": true,
	"all": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"because": true, "but": true, "and": true, "or": true, "if": true,
	"while": true, "about": true, "what": true, "which": true, "who": true,
	"whom": true, "this": true, "that": true, "these": true, "those": true,
	"am": true, "it": true, "its": true, "i": true, "me": true, "my": true,
	"we": true, "our": true, "you": true, "your": true, "he": true,
	"him": true, "his": true, "she": true, "her": true, "they": true,
	"them": true, "their": true,
}

// pluralKinds maps common plural forms to the entity kind they name, since
// "how many people work in finance" should pull persons even though no kind
// is literally called people.
var pluralKinds = map[string]model.EntityType{
	"people":          model.KindPerson,
	"persons":         model.KindPerson,
	"departments":     model.KindDepartment,
	"roles":           model.KindRole,
	"systems":         model.KindSystem,
	"networks":        model.KindNetwork,
	"policies":        model.KindPolicy,
	"vendors":         model.KindVendor,
	"locations":       model.KindLocation,
	"vulnerabilities": model.KindVulnerability,
	"incidents":       model.KindIncident,
}

// Result is one answered question: the ranked subgraph plus a rendered
// context string.
type Result struct {
	Entities      []model.Entity
	Relationships []*model.Relationship
	Context       string
	Stats         Stats
}

// Stats reports how the retrieval arrived at its answer.
type Stats struct {
	Keywords              []string `json:"keywords_extracted"`
	TypeMatches           []string `json:"type_matches"`
	TotalCandidates       int      `json:"total_candidates"`
	EntitiesReturned      int      `json:"entities_returned"`
	RelationshipsReturned int      `json:"relationships_returned"`
}

// Retriever runs the retrieval pipeline against any engine.
type Retriever struct {
	threshold float64
}

// NewRetriever returns a retriever with the standard fuzzy cutoff.
func NewRetriever() *Retriever {
	return &Retriever{threshold: search.MinScore}
}

type candidate struct {
	entity model.Entity
	score  float64
}

// Retrieve answers question from eng, returning at most topK entities and
// the relationships that connect them.
func (r *Retriever) Retrieve(eng graph.Engine, question string, topK int) (*Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, model.Validationf("question must not be empty")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	keywords, kinds := extractKeywords(question)

	// Candidate scores keyed by entity id. Insertion order is tracked so
	// ties rank deterministically.
	scores := make(map[string]*candidate)
	var order []string
	admit := func(e model.Entity, score float64) {
		id := e.Common().ID
		if existing, ok := scores[id]; ok {
			if score > existing.score {
				existing.score = score
			}
			return
		}
		scores[id] = &candidate{entity: e, score: score}
		order = append(order, id)
	}

	for _, keyword := range keywords {
		matches, err := search.ByName(eng, keyword, "", topK)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if m.Score < r.threshold {
				continue
			}
			admit(m.Entity, m.Score)
		}
	}

	for _, kind := range kinds {
		entities, err := eng.ListEntities(graph.ListFilter{Kind: kind, Limit: topK})
		if err != nil {
			return nil, err
		}
		for _, e := range entities {
			if _, ok := scores[e.Common().ID]; !ok {
				admit(e, typeMatchScore)
			}
		}
	}

	// One hop of neighbour expansion: unseen neighbours join with a low
	// score, already-admitted ones get a bump for each seed touching them.
	seeds := append([]string(nil), order...)
	for _, id := range seeds {
		neighbors, err := eng.Neighbors(id, graph.DirectionBoth, graph.NeighborFilter{})
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			nbID := nb.Common().ID
			if existing, ok := scores[nbID]; ok {
				existing.score += seedBonus
			} else {
				admit(nb, neighborScore)
			}
		}
	}

	// Relationships whose both endpoints made it into the candidate set.
	var relationships []*model.Relationship
	seenRel := make(map[string]bool)
	for _, id := range order {
		rels, err := eng.Relationships(id, graph.DirectionBoth, "")
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			if seenRel[rel.ID] {
				continue
			}
			if _, ok := scores[rel.SourceID]; !ok {
				continue
			}
			if _, ok := scores[rel.TargetID]; !ok {
				continue
			}
			seenRel[rel.ID] = true
			relationships = append(relationships, rel)
		}
	}

	relCounts := make(map[string]int)
	for _, rel := range relationships {
		relCounts[rel.SourceID]++
		relCounts[rel.TargetID]++
	}
	for id, c := range scores {
		c.score += float64(relCounts[id]) * centralityBonus
	}

	ranked := append([]string(nil), order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]].score > scores[ranked[j]].score
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	top := make(map[string]bool, len(ranked))
	entities := make([]model.Entity, 0, len(ranked))
	for _, id := range ranked {
		top[id] = true
		entities = append(entities, scores[id].entity)
	}
	kept := make([]*model.Relationship, 0, len(relationships))
	for _, rel := range relationships {
		if top[rel.SourceID] && top[rel.TargetID] {
			kept = append(kept, rel)
		}
	}

	context, err := BuildContext(eng, entities, kept, DefaultMaxTokens)
	if err != nil {
		return nil, err
	}

	typeNames := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		typeNames = append(typeNames, string(kind))
	}
	return &Result{
		Entities:      entities,
		Relationships: kept,
		Context:       context,
		Stats: Stats{
			Keywords:              keywords,
			TypeMatches:           typeNames,
			TotalCandidates:       len(scores),
			EntitiesReturned:      len(entities),
			RelationshipsReturned: len(kept),
		},
	}, nil
}

// extractKeywords tokenizes the question, drops stopwords, and spots
// mentions of entity kinds, singular or plural.
func extractKeywords(question string) ([]string, []model.EntityType) {
	lower := strings.ToLower(question)

	keywords := []string{}
	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, "?.,!;:'\"()[]{}")
		if token == "" || stopwords[token] {
			continue
		}
		keywords = append(keywords, token)
	}

	var kinds []model.EntityType
	seen := make(map[model.EntityType]bool)
	for _, kind := range model.AllEntityTypes() {
		spoken := strings.ReplaceAll(string(kind), "_", " ")
		if strings.Contains(lower, spoken) || strings.Contains(lower, string(kind)) {
			kinds = append(kinds, kind)
			seen[kind] = true
		}
	}
	for plural, kind := range pluralKinds {
		if seen[kind] || !strings.Contains(lower, plural) {
			continue
		}
		kinds = append(kinds, kind)
		seen[kind] = true
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return keywords, kinds
}
