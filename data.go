package porygon

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var GlobalMoves = MoveRegistry{Moves: make(map[string]*Move)}

// MoveRegistry is the in-memory move table keyed by move identifier.
type MoveRegistry struct {
	Moves map[string]*Move
}

func SetGlobalMoves(mr MoveRegistry) {
	GlobalMoves = mr
}

// GetMove returns a fresh copy of the registered move, or nil when the
// identifier is unknown. Copies keep battle-local PP and type changes from
// leaking into the registry.
func (mr MoveRegistry) GetMove(identifier string) *Move {
	move, ok := mr.Moves[identifier]
	if !ok {
		return nil
	}

	return move.Copy()
}

var moveColumns = []string{
	"id", "identifier", "type", "power", "pp", "accuracy", "priority",
	"damage_class", "effect", "effect_chance", "target", "crit_rate",
	"min_hits", "max_hits",
}

// LoadMovesCSV takes in the bytes of a csv file whose header row names the
// move columns (id, identifier, type, power, pp, accuracy, priority,
// damage_class, effect, effect_chance, target, crit_rate, min_hits,
// max_hits, in any order). Empty cells become nil fields.
func LoadMovesCSV(fileBytes []byte) (MoveRegistry, error) {
	registry := MoveRegistry{Moves: make(map[string]*Move)}

	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	header, err := csvReader.Read()
	if err != nil {
		internalLogger.Error(err, "invalid move csv data")
		return registry, err
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid move csv data")
		return registry, err
	}

	internalLogger.Info("Loading Move Data")

	for _, row := range rows {
		rawRow := make(map[string]any, len(header))
		for i, column := range header {
			if i >= len(row) {
				break
			}

			rawRow[column] = csvCell(column, row[i])
		}

		move, err := NewMove(rawRow)
		if err != nil {
			internalLogger.WithName("move_parsing").Error(err, "invalid move row")
			return registry, err
		}

		registry.Moves[move.Identifier] = move
	}

	internalLogger.Info("Loaded moves", "count", len(registry.Moves))

	return registry, nil
}

// LoadMovesJSON takes in json listing persisted move records.
func LoadMovesJSON(fileBytes []byte) (MoveRegistry, error) {
	registry := MoveRegistry{Moves: make(map[string]*Move)}

	records := make([]MoveRecord, 0, 1000)
	if err := json.Unmarshal(fileBytes, &records); err != nil {
		internalLogger.Error(err, "Couldn't unmarshal move data")
		return registry, err
	}

	for _, record := range records {
		move, err := NewMoveFromRecord(record)
		if err != nil {
			internalLogger.WithName("move_parsing").Error(err, "invalid move record")
			return registry, err
		}

		registry.Moves[move.Identifier] = move
	}

	internalLogger.Info("Loaded moves", "count", len(registry.Moves))

	return registry, nil
}

// csvCell converts a raw cell so NewMove sees the same values a persisted
// record would carry. Numeric columns stay strings only when non-empty;
// empty cells are dropped entirely.
func csvCell(column string, cell string) any {
	if cell == "" {
		return nil
	}

	switch column {
	case "identifier", "type", "damage_class":
		return cell
	default:
		if n, err := strconv.Atoi(cell); err == nil {
			return n
		}
		return cell
	}
}

// Item is one holdable item record.
type Item struct {
	Name       string
	FlingPower int
}

var titleCaser = cases.Title(language.English)

// prettyName turns a dashed identifier into its display name,
// "thunder-punch" to "Thunder Punch".
func prettyName(identifier string) string {
	return titleCaser.String(strings.ReplaceAll(identifier, "-", " "))
}

// capitalize upper-cases only the first word, which is how field conditions
// read in battle messages.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[0:1]) + s[1:]
}
