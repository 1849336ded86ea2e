package dto

import "encoding/json"

// ContentPutRequest payload for PUT /api/admin/content/:resource/:key.
type ContentPutRequest struct {
	Value     json.RawMessage `json:"value"`
	Draft     bool            `json:"draft"`
	SortOrder int             `json:"sortOrder"`
}
