package league

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/HeroArena_Go/internal/logger"
	"github.com/osse101/HeroArena_Go/internal/validation"
)

//go:embed schema/league_table.schema.json
var schemaFS embed.FS

var schemaValidator = validation.NewSchemaValidator(schemaFS)

// tableFile is the on-disk representation of a league table
type tableFile struct {
	Version string `json:"version"`
	Table
}

// LoadTable reads a league table from a JSON file.
// An empty path yields DefaultTable. A bad file is an error, never a silent fallback.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		logger.Info(LogMsgUsingDefaultTable)
		return DefaultTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadTable, err)
	}

	table, err := ParseTable(data)
	if err != nil {
		return nil, err
	}

	logger.Info(LogMsgLoadedTable, "path", path, "tiers", table.MaxLeague())
	return table, nil
}

// ParseTable decodes and validates a league table document
func ParseTable(data []byte) (*Table, error) {
	var file tableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseTable, err)
	}
	if err := schemaValidator.ValidateBytes(data, TableSchemaName); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidTable, err)
	}
	if file.Version != "" && file.Version != ConfigVersion1 {
		return nil, fmt.Errorf("%s: unsupported version %q", ErrContextInvalidTable, file.Version)
	}

	table := file.Table
	normalizeNames(table.TierNames)
	normalizeNames(table.CrateNames)

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidTable, err)
	}
	return &table, nil
}

func normalizeNames(names []string) {
	caser := cases.Title(language.English)
	for i, name := range names {
		names[i] = caser.String(strings.TrimSpace(name))
	}
}
