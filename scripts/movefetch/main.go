package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"porygon"
)

const csvBase = "https://raw.githubusercontent.com/PokeAPI/pokeapi/master/data/v2/csv/"

func unwrap(err error) {
	if err != nil {
		panic(err)
	}
}

func fetchCSV(name string) [][]string {
	log.Printf("Fetching %s\n", name)

	response, err := http.Get(csvBase + name)
	unwrap(err)
	defer response.Body.Close()

	fileBytes, err := io.ReadAll(response.Body)
	unwrap(err)

	rows, err := csv.NewReader(strings.NewReader(string(fileBytes))).ReadAll()
	unwrap(err)

	return rows
}

// columnIndex maps a header row into name -> column offset.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	return index
}

func optional(cell string) *int {
	if cell == "" {
		return nil
	}

	n, err := strconv.Atoi(cell)
	unwrap(err)

	return &n
}

func required(cell string) int {
	n, err := strconv.Atoi(cell)
	unwrap(err)

	return n
}

type metaRow struct {
	critRate int
	minHits  *int
	maxHits  *int
}

// Joins the upstream move tables into the flat rows the engine's move
// loader reads: moves.csv for the core stats, types and damage classes
// resolved to their identifiers, and the meta table for crit rate and
// hit counts.
func main() {
	typeNames := make(map[int]string)
	typeRows := fetchCSV("types.csv")
	typeCols := columnIndex(typeRows[0])
	for _, row := range typeRows[1:] {
		typeNames[required(row[typeCols["id"]])] = row[typeCols["identifier"]]
	}

	classNames := make(map[int]string)
	classRows := fetchCSV("move_damage_classes.csv")
	classCols := columnIndex(classRows[0])
	for _, row := range classRows[1:] {
		classNames[required(row[classCols["id"]])] = row[classCols["identifier"]]
	}

	meta := make(map[int]metaRow)
	metaRows := fetchCSV("move_meta.csv")
	metaCols := columnIndex(metaRows[0])
	for _, row := range metaRows[1:] {
		meta[required(row[metaCols["move_id"]])] = metaRow{
			critRate: required(row[metaCols["crit_rate"]]),
			minHits:  optional(row[metaCols["min_hits"]]),
			maxHits:  optional(row[metaCols["max_hits"]]),
		}
	}

	records := make([]porygon.MoveRecord, 0, 1000)
	moveRows := fetchCSV("moves.csv")
	moveCols := columnIndex(moveRows[0])
	for _, row := range moveRows[1:] {
		id := required(row[moveCols["id"]])

		// Shadow moves and other non-mainline entries have no meta row.
		metaEntry, ok := meta[id]
		if !ok {
			log.Printf("Skipping %s: no meta row\n", row[moveCols["identifier"]])
			continue
		}

		records = append(records, porygon.MoveRecord{
			Id:           id,
			Identifier:   row[moveCols["identifier"]],
			Power:        optional(row[moveCols["power"]]),
			PP:           required(row[moveCols["pp"]]),
			Accuracy:     optional(row[moveCols["accuracy"]]),
			Priority:     required(row[moveCols["priority"]]),
			Type:         typeNames[required(row[moveCols["type_id"]])],
			DamageClass:  classNames[required(row[moveCols["damage_class_id"]])],
			Effect:       required(row[moveCols["effect_id"]]),
			EffectChance: optional(row[moveCols["effect_chance"]]),
			Target:       required(row[moveCols["target_id"]]),
			CritRate:     metaEntry.critRate,
			MinHits:      metaEntry.minHits,
			MaxHits:      metaEntry.maxHits,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Id < records[j].Id
	})

	log.Printf("Joined %d moves\n", len(records))

	unwrap(os.MkdirAll("./data", 0o755))

	recordsJson, err := json.MarshalIndent(records, "", "  ")
	unwrap(err)
	unwrap(os.WriteFile("./data/moves.json", recordsJson, 0o644))

	f, err := os.Create("./data/moves.csv")
	unwrap(err)
	defer f.Close()

	writer := csv.NewWriter(f)
	unwrap(writer.Write([]string{
		"id", "identifier", "type", "power", "pp", "accuracy", "priority",
		"damage_class", "effect", "effect_chance", "target", "crit_rate",
		"min_hits", "max_hits",
	}))

	cell := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}

	for _, r := range records {
		unwrap(writer.Write([]string{
			strconv.Itoa(r.Id), r.Identifier, r.Type, cell(r.Power),
			strconv.Itoa(r.PP), cell(r.Accuracy), strconv.Itoa(r.Priority),
			r.DamageClass, strconv.Itoa(r.Effect), cell(r.EffectChance),
			strconv.Itoa(r.Target), strconv.Itoa(r.CritRate),
			cell(r.MinHits), cell(r.MaxHits),
		}))
	}
	writer.Flush()
	unwrap(writer.Error())

	log.Println("Wrote ./data/moves.csv and ./data/moves.json")
}
