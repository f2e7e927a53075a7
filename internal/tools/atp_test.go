package tools

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/anthropics/og/internal/model"
)

func atpLines(t *testing.T, out string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func decodeResponse(t *testing.T, line string) ATPResponse {
	t.Helper()
	var resp ATPResponse
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		t.Fatalf("decode response line %q: %v", line, err)
	}
	return resp
}

func TestServeATP_SuccessAndErrorLines(t *testing.T) {
	d, _ := newDispatcher(t)

	var in bytes.Buffer
	in.WriteString(`{"tool":"get_statistics"}` + "\n")
	in.WriteString(`{"tool":"get_entity","arguments":{"entity_id":"ghost"}}` + "\n")
	var out bytes.Buffer

	if err := ServeATP(d, &in, &out); err != nil {
		t.Fatalf("ServeATP: %v", err)
	}

	lines := atpLines(t, out.String())
	if len(lines) != 2 {
		t.Fatalf("responses = %d, want 2", len(lines))
	}

	first := decodeResponse(t, lines[0])
	if first.Error != nil {
		t.Fatalf("first line is an error: %+v", first.Error)
	}
	var stats struct {
		TotalEntities int `json:"total_entities"`
	}
	if err := json.Unmarshal(first.Result, &stats); err != nil {
		t.Fatalf("decode statistics result: %v", err)
	}
	if stats.TotalEntities != 6 {
		t.Errorf("total_entities = %d, want 6", stats.TotalEntities)
	}

	second := decodeResponse(t, lines[1])
	if second.Error == nil {
		t.Fatal("second line is not an error")
	}
	if got, want := second.Error.Kind, model.ErrNotFound; got != want {
		t.Errorf("error kind = %s, want %s", got, want)
	}
	if strings.Contains(lines[1], `"result"`) {
		t.Errorf("error line carries a result key: %s", lines[1])
	}
}

func TestServeATP_EmptyListKeepsResultKey(t *testing.T) {
	d, _ := newDispatcher(t)

	in := strings.NewReader(`{"tool":"list_entities","arguments":{"entity_type":"policy"}}` + "\n")
	var out bytes.Buffer
	if err := ServeATP(d, in, &out); err != nil {
		t.Fatalf("ServeATP: %v", err)
	}

	lines := atpLines(t, out.String())
	if len(lines) != 1 {
		t.Fatalf("responses = %d, want 1", len(lines))
	}
	if !strings.Contains(lines[0], `"result":[]`) {
		t.Errorf("empty list dropped the result key: %s", lines[0])
	}
}

func TestServeATP_UnknownTool(t *testing.T) {
	d, _ := newDispatcher(t)

	in := strings.NewReader(`{"tool":"warp_drive"}` + "\n")
	var out bytes.Buffer
	if err := ServeATP(d, in, &out); err != nil {
		t.Fatalf("ServeATP: %v", err)
	}

	resp := decodeResponse(t, atpLines(t, out.String())[0])
	if resp.Error == nil || resp.Error.Kind != model.ErrValidation {
		t.Fatalf("response = %+v, want validation error", resp)
	}
	if !strings.Contains(resp.Error.Message, "unknown tool") {
		t.Errorf("message = %q, want it to name the unknown tool", resp.Error.Message)
	}
}

func TestServeATP_BatchErrorCarriesItems(t *testing.T) {
	d, _ := newDispatcher(t)

	req := `{"tool":"add_relationships_batch","arguments":{"relationships":[` +
		`{"relationship_type":"manages","source_id":"p2","target_id":"d1"},` +
		`{"relationship_type":"works_in","source_id":"s1","target_id":"d1"}]}}`
	var out bytes.Buffer
	if err := ServeATP(d, strings.NewReader(req+"\n"), &out); err != nil {
		t.Fatalf("ServeATP: %v", err)
	}

	resp := decodeResponse(t, atpLines(t, out.String())[0])
	if resp.Error == nil || resp.Error.Kind != model.ErrBatchRejected {
		t.Fatalf("response = %+v, want batch_rejected", resp)
	}
	if len(resp.Error.Items) != 1 || resp.Error.Items[0].Index != 1 {
		t.Errorf("items = %+v, want one failure at index 1", resp.Error.Items)
	}
}

func TestServeATP_MalformedLineClosesStream(t *testing.T) {
	d, _ := newDispatcher(t)

	var in bytes.Buffer
	in.WriteString(`{"tool":"get_statistics"}` + "\n")
	in.WriteString(`{not json` + "\n")
	in.WriteString(`{"tool":"get_statistics"}` + "\n")
	var out bytes.Buffer

	if err := ServeATP(d, &in, &out); err != nil {
		t.Fatalf("ServeATP: %v", err)
	}

	lines := atpLines(t, out.String())
	if len(lines) != 2 {
		t.Fatalf("responses = %d, want 2 (success then terminal error)", len(lines))
	}
	last := decodeResponse(t, lines[1])
	if last.Error == nil || last.Error.Kind != model.ErrValidation {
		t.Fatalf("terminal line = %+v, want validation error", last)
	}
	if strings.Contains(last.Error.Message, "not json") {
		t.Errorf("terminal error echoes raw input: %q", last.Error.Message)
	}
}

func TestServeATP_EOFWithoutInput(t *testing.T) {
	d, _ := newDispatcher(t)

	var out bytes.Buffer
	if err := ServeATP(d, strings.NewReader(""), &out); err != nil {
		t.Fatalf("ServeATP on empty stream: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty stream produced output: %s", out.String())
	}
}
