package output

import (
	"encoding/json"
	"fmt"

	"github.com/galkatzh/JAMD-events/internal/calendar"
)

const (
	jsonEncodeErrorTemplateConstant = "failed to encode JSON artifact: %w"
	jsonIndentConstant              = "  "
	jsonPrefixConstant              = ""
)

// EncodeJSON renders events as the two-space-indented JSON artifact.
func EncodeJSON(events []calendar.Event) ([]byte, error) {
	encodedRecords, encodeError := json.MarshalIndent(BuildRecords(events), jsonPrefixConstant, jsonIndentConstant)
	if encodeError != nil {
		return nil, fmt.Errorf(jsonEncodeErrorTemplateConstant, encodeError)
	}
	return append(encodedRecords, '\n'), nil
}
