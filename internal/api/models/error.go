// internal/api/models/error.go

package models

import "encoding/json"

const (
	MsgListingsNotFound = "apartments.json file not found"
	MsgListingsInvalid  = "apartments.json is not valid JSON"
)

// ErrorResponse is the JSON body sent when a request fails in a way the
// client can act on.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Bytes renders the payload as {"error": "<message>"}. encoding/json
// always compacts, so the separator is written by hand.
func (e ErrorResponse) Bytes() []byte {
	msg, _ := json.Marshal(e.Error)
	out := make([]byte, 0, len(msg)+12)
	out = append(out, `{"error": `...)
	out = append(out, msg...)
	return append(out, '}')
}
