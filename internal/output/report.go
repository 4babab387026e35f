package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned when a report format is not registered.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport writes results with the named formatter into dir and returns
// the written path. "all" writes the verbose console report and the trajectory
// CSV and returns the last path.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) (string, error) {
	if NormalizeFormatName(format) == "all" {
		var last string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVTrajectoryExporter{}} {
			path, err := WriteFormatted(f, results, dir, extensionFor(f.Name()))
			if err != nil {
				return "", err
			}
			last = path
		}
		return last, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, dir, extensionFor(f.Name()))
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
