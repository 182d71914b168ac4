package portal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the portal backend's checklist item object.
type Record struct {
	ID            FlexID  `json:"id"`
	Date          string  `json:"date"`
	ChecklistType string  `json:"checklist_type"`
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name"`
	Completed     bool    `json:"completed"`
	UpdatedBy     UserRef `json:"updated_by"`
	UpdatedByName string  `json:"updated_by_name"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CreateBatchRequest is the body for POST /{resource}/create_checklist_batch/.
type CreateBatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchItem is one record to materialize.
type BatchItem struct {
	ChecklistType string `json:"checklist_type"`
	ItemID        string `json:"item_id"`
	ItemName      string `json:"item_name"`
	Date          string `json:"date"`
}

// FlexID is a backend primary key that the API has served both as a JSON
// number and as a string. It normalizes to the string form.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler for FlexID.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// String returns the normalized id.
func (f FlexID) String() string { return string(f) }

// UserRef is the updated_by field, which the serializer has emitted as a
// nested user object, a bare username string, or a numeric user id.
type UserRef struct {
	Username string
}

// UnmarshalJSON implements json.Unmarshaler for UserRef.
func (u *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		u.Username = ""
		return nil
	}

	switch data[0] {
	case '{':
		var obj struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		u.Username = obj.Username
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		u.Username = s
	default:
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("updated_by is neither object, string nor number: %w", err)
		}
		u.Username = strconv.FormatInt(n, 10)
	}
	return nil
}
