package output

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/galkatzh/JAMD-events/internal/calendar"
)

const (
	icsArtifactFileNameConstant  = "calendar_events.ics"
	csvArtifactFileNameConstant  = "calendar_events.csv"
	jsonArtifactFileNameConstant = "calendar_events.json"

	artifactFileModeConstant = os.FileMode(0o644)

	temporaryFilePatternConstant        = ".artifact-*"
	temporaryFileErrorTemplateConstant  = "failed to create temporary artifact file: %w"
	artifactWriteErrorTemplateConstant  = "failed to write artifact %s: %w"
	artifactRenameErrorTemplateConstant = "failed to move artifact %s into place: %w"
	outputDirectoryErrorTemplate        = "failed to ensure output directory %s: %w"

	artifactWrittenDebugMessageConstant = "artifact written"
	writerLogFieldPathConstant          = "path"
	writerLogFieldBytesConstant         = "bytes"
)

// ArtifactNames lists the files the writer produces, in write order.
var ArtifactNames = []string{icsArtifactFileNameConstant, csvArtifactFileNameConstant, jsonArtifactFileNameConstant}

// Writer persists the scrape artifacts into a target directory.
type Writer struct {
	outputDirectory string
	logger          *zap.Logger
}

// NewWriter constructs a Writer targeting outputDirectory (defaulting to the working directory).
func NewWriter(logger *zap.Logger, outputDirectory string) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(outputDirectory) == 0 {
		outputDirectory = "."
	}
	return &Writer{outputDirectory: outputDirectory, logger: logger}
}

// WriteAll renders and writes every artifact, returning the written paths.
func (writer *Writer) WriteAll(events []calendar.Event) ([]string, error) {
	if directoryError := os.MkdirAll(writer.outputDirectory, 0o755); directoryError != nil {
		return nil, fmt.Errorf(outputDirectoryErrorTemplate, writer.outputDirectory, directoryError)
	}

	icsContent := []byte(EncodeICS(events))

	csvContent, csvError := EncodeCSV(events)
	if csvError != nil {
		return nil, csvError
	}

	jsonContent, jsonError := EncodeJSON(events)
	if jsonError != nil {
		return nil, jsonError
	}

	artifacts := []struct {
		fileName string
		content  []byte
	}{
		{fileName: icsArtifactFileNameConstant, content: icsContent},
		{fileName: csvArtifactFileNameConstant, content: csvContent},
		{fileName: jsonArtifactFileNameConstant, content: jsonContent},
	}

	writtenPaths := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		artifactPath := filepath.Join(writer.outputDirectory, artifact.fileName)
		if writeError := writer.writeAtomically(artifactPath, artifact.content); writeError != nil {
			return nil, writeError
		}
		writer.logger.Debug(
			artifactWrittenDebugMessageConstant,
			zap.String(writerLogFieldPathConstant, artifactPath),
			zap.Int(writerLogFieldBytesConstant, len(artifact.content)),
		)
		writtenPaths = append(writtenPaths, artifactPath)
	}

	return writtenPaths, nil
}

// writeAtomically stages content in a temporary file and renames it into place.
func (writer *Writer) writeAtomically(artifactPath string, content []byte) error {
	temporaryFile, temporaryError := os.CreateTemp(writer.outputDirectory, temporaryFilePatternConstant)
	if temporaryError != nil {
		return fmt.Errorf(temporaryFileErrorTemplateConstant, temporaryError)
	}
	temporaryPath := temporaryFile.Name()

	_, writeError := temporaryFile.Write(content)
	closeError := temporaryFile.Close()
	if writeError == nil {
		writeError = closeError
	}
	if writeError == nil {
		writeError = os.Chmod(temporaryPath, artifactFileModeConstant)
	}
	if writeError != nil {
		_ = os.Remove(temporaryPath)
		return fmt.Errorf(artifactWriteErrorTemplateConstant, artifactPath, writeError)
	}

	if renameError := os.Rename(temporaryPath, artifactPath); renameError != nil {
		_ = os.Remove(temporaryPath)
		return fmt.Errorf(artifactRenameErrorTemplateConstant, artifactPath, renameError)
	}

	return nil
}
