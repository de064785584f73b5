package request

// LegacyInsertRequest inserts rows through the local query client.
type LegacyInsertRequest struct {
	Rows []map[string]any `json:"rows" binding:"required,min=1"`
}

// LegacyUpdateRequest updates the first row where eq_field equals eq_value.
// An empty eq_field is passed through so the client reports the missing
// filter.
type LegacyUpdateRequest struct {
	EqField string         `json:"eq_field"`
	EqValue any            `json:"eq_value"`
	Values  map[string]any `json:"values" binding:"required"`
}
