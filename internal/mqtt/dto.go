// dto.go: wire format for published picks.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/phasenet"
)

// PickMessage is the JSON payload published for each pick.
type PickMessage struct {
	Source  string    `json:"source"`
	TraceID string    `json:"trace_id"`
	Time    time.Time `json:"time"`
	Phase   string    `json:"phase"`
}

// EncodePick serializes a pick for publishing, tagged with the node name.
func EncodePick(source string, pick phasenet.Pick) (string, error) {
	msg := PickMessage{
		Source:  source,
		TraceID: pick.TraceID,
		Time:    pick.Time,
		Phase:   pick.Phase,
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
