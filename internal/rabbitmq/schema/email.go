package schema

import (
	"encoding/json"
)

type Email struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	IsHTML    bool   `json:"isHtml"`
	Recipient string `json:"recipient"`
}

func (e *Email) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *Email) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
