package internal

import (
	"fmt"
	"strings"
)

type OutputFormat string

const (
	TableFormat OutputFormat = "table"
	JSONFormat  OutputFormat = "json"
)

type Config struct {
	LogLevel        string `env:"LOG_LEVEL,required=true"`
	EnforceCapacity bool   `env:"ENFORCE_CAPACITY,default=true"`
	SortQueries     bool   `env:"SORT_QUERIES,default=true"`
	OutputFormat    string `env:"OUTPUT_FORMAT,default=table"`
	ScriptPath      string `env:"SCRIPT_PATH"`
	Colours         bool   `env:"COLOURS,default=true"`
}

func ParseOutputFormat(str string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(str))); format {
	case TableFormat, JSONFormat:
		return format, nil
	default:
		return "", fmt.Errorf("OUTPUT_FORMAT must be %q or %q, got %q", TableFormat, JSONFormat, str)
	}
}
