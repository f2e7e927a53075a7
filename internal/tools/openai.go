package tools

// FunctionDef is one entry in the OpenAI function-calling tool list.
type FunctionDef struct {
	Type     string       `json:"type"`
	Function FunctionSpec `json:"function"`
}

// FunctionSpec describes a callable function in OpenAI's schema dialect.
type FunctionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  functionParams `json:"parameters"`
}

type functionParams struct {
	Type       string                   `json:"type"`
	Properties map[string]functionParam `json:"properties"`
	Required   []string                 `json:"required"`
}

type functionParam struct {
	Type        string         `json:"type"`
	Description string         `json:"description,omitempty"`
	Items       *functionParam `json:"items,omitempty"`
}

// OpenAIToolDefs projects the registry into OpenAI function-calling
// definitions. Agents fetch these once and then POST tool calls back, so the
// definitions are derived from the same Param schemas the other transports
// use.
func OpenAIToolDefs(d *Dispatcher) []FunctionDef {
	tools := d.Tools()
	defs := make([]FunctionDef, 0, len(tools))
	for _, t := range tools {
		props := make(map[string]functionParam, len(t.Params))
		required := []string{}
		for _, p := range t.Params {
			fp := functionParam{Type: p.Type, Description: p.Description}
			if p.Type == "array" {
				fp.Items = &functionParam{Type: "object"}
			}
			props[p.Name] = fp
			if p.Required {
				required = append(required, p.Name)
			}
		}
		defs = append(defs, FunctionDef{
			Type: "function",
			Function: FunctionSpec{
				Name:        t.Name,
				Description: t.Description,
				Parameters: functionParams{
					Type:       "object",
					Properties: props,
					Required:   required,
				},
			},
		})
	}
	return defs
}
