package amqp

import (
	"encoding/json"
	"time"
)

// ImportRequestMessage asks the importer worker to pull the last Days of
// bank statements into the record store. The worker owns fetching and
// classification; the message only carries the window.
type ImportRequestMessage struct {
	Days        int       `json:"days"`
	RequestedAt time.Time `json:"requested_at"`
}

func NewImportRequestMessage(days int) *ImportRequestMessage {
	return &ImportRequestMessage{
		Days:        days,
		RequestedAt: time.Now().UTC(),
	}
}

func (m *ImportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ImportRequestMessageFromJSON(data []byte) (*ImportRequestMessage, error) {
	var m ImportRequestMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
