package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fweigt/tslabel/schema"
)

// UnlabeledMarker is what table output shows for records without a label.
const UnlabeledMarker = "—"

// Color variables for console output.
var (
	ErrorColor   = color.New(color.FgRed, color.Bold)    // ErrorColor marks records labeled as faulty.
	WarningColor = color.New(color.FgYellow, color.Bold) // WarningColor marks suspicious records.
	NormalColor  = color.New(color.FgGreen)              // NormalColor marks healthy records.
	OtherColor   = color.New(color.FgCyan)               // OtherColor covers custom label sets.
	AbsentColor  = color.New(color.FgHiBlack)            // AbsentColor marks unlabeled records.
)

// GetPlainLabel returns the plain text cell for a record label. Absent labels
// get an explicit marker so they are never conflated with an empty value.
func GetPlainLabel(label *schema.LabelValue) string {
	if label == nil {
		return UnlabeledMarker
	}
	return string(*label)
}

// GetColorLabel returns a colored label cell for table output. It uses
// GetPlainLabel to determine the string, then applies the matching color.
func GetColorLabel(label *schema.LabelValue) string {
	text := GetPlainLabel(label)
	if label == nil {
		return AbsentColor.Sprint(text)
	}
	switch *label {
	case schema.ErrorLabel:
		return ErrorColor.Sprint(text)
	case schema.WarningLabel:
		return WarningColor.Sprint(text)
	case schema.NormalLabel:
		return NormalColor.Sprint(text)
	default:
		return OtherColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
