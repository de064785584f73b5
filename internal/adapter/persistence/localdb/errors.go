package localdb

const (
	// CodeNoRows mirrors PostgREST's code for Single on an empty result.
	CodeNoRows       = "PGRST116"
	CodeNoFilter     = "LOCAL_NO_FILTER"
	CodeUnknownTable = "LOCAL_UNKNOWN_TABLE"
	CodeStorage      = "LOCAL_STORAGE"
)

type QueryError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *QueryError) Error() string {
	return e.Code + ": " + e.Message
}

func storageError(err error) *QueryError {
	return &QueryError{Code: CodeStorage, Message: err.Error()}
}

// Result is the outcome of a multi-row operation.
type Result struct {
	Data  []Record    `json:"data"`
	Error *QueryError `json:"error"`
}

// SingleResult is the outcome of an operation addressing one row.
type SingleResult struct {
	Data  Record      `json:"data"`
	Error *QueryError `json:"error"`
}
