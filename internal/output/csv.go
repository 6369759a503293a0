package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/galkatzh/JAMD-events/internal/calendar"
)

const csvEncodeErrorTemplateConstant = "failed to encode CSV artifact: %w"

var csvHeaderRow = []string{"title", "datetime", "date_display", "location", "url"}

// EncodeCSV renders events as the CSV artifact, one row per event.
func EncodeCSV(events []calendar.Event) ([]byte, error) {
	var outputBuffer bytes.Buffer
	csvWriter := csv.NewWriter(&outputBuffer)

	if writeError := csvWriter.Write(csvHeaderRow); writeError != nil {
		return nil, fmt.Errorf(csvEncodeErrorTemplateConstant, writeError)
	}

	for _, record := range BuildRecords(events) {
		row := []string{record.Title, record.DateTime, record.DateDisplay, record.Location, record.URL}
		if writeError := csvWriter.Write(row); writeError != nil {
			return nil, fmt.Errorf(csvEncodeErrorTemplateConstant, writeError)
		}
	}

	csvWriter.Flush()
	if flushError := csvWriter.Error(); flushError != nil {
		return nil, fmt.Errorf(csvEncodeErrorTemplateConstant, flushError)
	}

	return outputBuffer.Bytes(), nil
}
