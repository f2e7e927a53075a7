package model

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// entityFactories builds an empty typed value for each entity kind. The map
// doubles as the authority on which kinds exist.
var entityFactories = map[EntityType]func() Entity{
	KindLocation:           func() Entity { return &Location{} },
	KindPolicy:             func() Entity { return &Policy{} },
	KindRegulation:         func() Entity { return &Regulation{} },
	KindControl:            func() Entity { return &Control{} },
	KindRisk:               func() Entity { return &Risk{} },
	KindThreat:             func() Entity { return &Threat{} },
	KindVulnerability:      func() Entity { return &Vulnerability{} },
	KindThreatActor:        func() Entity { return &ThreatActor{} },
	KindIncident:           func() Entity { return &Incident{} },
	KindNetwork:            func() Entity { return &Network{} },
	KindSystem:             func() Entity { return &System{} },
	KindIntegration:        func() Entity { return &Integration{} },
	KindDataAsset:          func() Entity { return &DataAsset{} },
	KindDataDomain:         func() Entity { return &DataDomain{} },
	KindDataFlow:           func() Entity { return &DataFlow{} },
	KindDepartment:         func() Entity { return &Department{} },
	KindOrganizationalUnit: func() Entity { return &OrganizationalUnit{} },
	KindPerson:             func() Entity { return &Person{} },
	KindRole:               func() Entity { return &Role{} },
	KindBusinessCapability: func() Entity { return &BusinessCapability{} },
	KindSite:               func() Entity { return &Site{} },
	KindGeography:          func() Entity { return &Geography{} },
	KindJurisdiction:       func() Entity { return &Jurisdiction{} },
	KindProductPortfolio:   func() Entity { return &ProductPortfolio{} },
	KindProduct:            func() Entity { return &Product{} },
	KindMarketSegment:      func() Entity { return &MarketSegment{} },
	KindCustomer:           func() Entity { return &Customer{} },
	KindVendor:             func() Entity { return &Vendor{} },
	KindContract:           func() Entity { return &Contract{} },
	KindInitiative:         func() Entity { return &Initiative{} },
}

// knownFields maps each kind to the set of JSON keys its struct declares,
// embedded Base included. Built once at init.
var knownFields = func() map[EntityType]map[string]bool {
	out := make(map[EntityType]map[string]bool, len(entityFactories))
	for kind, factory := range entityFactories {
		fields := map[string]bool{}
		collectJSONKeys(reflect.TypeOf(factory()).Elem(), fields)
		out[kind] = fields
	}
	return out
}()

func collectJSONKeys(t reflect.Type, into map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectJSONKeys(f.Type, into)
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			into[name] = true
		}
	}
}

// NewEntity returns an empty typed entity for kind.
func NewEntity(kind EntityType) (Entity, error) {
	factory, ok := entityFactories[kind]
	if !ok {
		return nil, Validationf("unknown entity type %q", kind)
	}
	return factory(), nil
}

// MarshalEntity renders e as canonical JSON.
func MarshalEntity(e Entity) ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, Persistencef("marshal %s: %v", e.Kind(), err)
	}
	return b, nil
}

// UnmarshalEntity decodes one entity document. The entity_type field selects
// the concrete kind. In strict mode unknown keys are a validation error; in
// lenient mode they are string-coerced into the extra bag (nulls dropped).
func UnmarshalEntity(data []byte, strict bool) (Entity, error) {
	var head struct {
		EntityType string `json:"entity_type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, Validationf("malformed entity document: %v", err)
	}
	kind, err := ParseEntityType(head.EntityType)
	if err != nil {
		return nil, err
	}
	e, _ := NewEntity(kind)
	if err := json.Unmarshal(data, e); err != nil {
		return nil, Validationf("decode %s: %v", kind, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, Validationf("malformed entity document: %v", err)
	}
	known := knownFields[kind]
	var unknown []string
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		if strict {
			return nil, Validationf("unknown field(s) for %s: %s", kind, strings.Join(unknown, ", "))
		}
		base := e.Common()
		if base.Extra == nil {
			base.Extra = map[string]string{}
		}
		for _, key := range unknown {
			var v any
			if err := json.Unmarshal(raw[key], &v); err != nil {
				continue
			}
			if s, ok := coerceString(v); ok {
				base.Extra[key] = s
			}
		}
	}

	e.Common().normalize(kind)
	return e, nil
}

// CloneEntity deep-copies e through the codec.
func CloneEntity(e Entity) (Entity, error) {
	data, err := MarshalEntity(e)
	if err != nil {
		return nil, err
	}
	return UnmarshalEntity(data, false)
}

// ApplyPatch merges a partial document into e and returns the patched
// entity. The id and entity_type fields are immutable; a patch naming either
// with a different value is rejected. Server managed fields (version,
// created_at, updated_at) in the patch are ignored.
func ApplyPatch(e Entity, patch map[string]any, strict bool) (Entity, error) {
	base := e.Common()
	if v, ok := patch["id"]; ok {
		if s, _ := v.(string); s != base.ID {
			return nil, Validationf("entity id is immutable")
		}
	}
	if v, ok := patch["entity_type"]; ok {
		if s, _ := v.(string); s != string(base.EntityType) {
			return nil, Validationf("entity_type is immutable")
		}
	}

	data, err := MarshalEntity(e)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Persistencef("re-decode %s: %v", e.Kind(), err)
	}
	for key, value := range patch {
		switch key {
		case "version", "created_at", "updated_at":
			continue
		}
		if value == nil {
			delete(doc, key)
			continue
		}
		doc[key] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, Validationf("encode patched %s: %v", e.Kind(), err)
	}
	patched, err := UnmarshalEntity(merged, strict)
	if err != nil {
		return nil, err
	}
	return patched, nil
}
