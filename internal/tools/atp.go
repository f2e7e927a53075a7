package tools

import (
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/anthropics/og/internal/model"
)

// ATPRequest is one line of the ATP stream.
type ATPRequest struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// ATPError is the error half of a response line.
type ATPError struct {
	Kind    model.ErrorKind        `json:"kind"`
	Message string                 `json:"message"`
	Items   []model.BatchItemError `json:"items,omitempty"`
}

// ATPResponse decodes a response line: exactly one of Result or Error is
// present on the wire.
type ATPResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *ATPError       `json:"error"`
}

// atpSuccess always carries the result key, even for empty collections.
type atpSuccess struct {
	Result any `json:"result"`
}

type atpFailure struct {
	Error *ATPError `json:"error"`
}

// ServeATP runs the line-delimited JSON loop: one request object in, one
// response object out, until EOF. A stream-level decode failure emits a
// final error line and ends the loop, since the decoder cannot re-sync.
func ServeATP(d *Dispatcher, r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(r)
	enc := json.NewEncoder(w)

	for {
		var req ATPRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			d.logger.Warn("malformed request line, closing stream", zap.Error(err))
			return enc.Encode(atpFailure{Error: wireError(model.Validationf("malformed request"))})
		}

		result, err := d.Call(req.Tool, req.Arguments)
		if err != nil {
			err = enc.Encode(atpFailure{Error: wireError(err)})
		} else {
			err = enc.Encode(atpSuccess{Result: result})
		}
		if err != nil {
			return err
		}
	}
}

func wireError(err error) *ATPError {
	e := model.AsError(err)
	return &ATPError{Kind: e.Kind, Message: e.Message, Items: e.Items}
}
