package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"catalog-cli/internal/model"
)

// DefaultSeedPath is the seed file looked up next to the working
// directory when no --seed flag or CATALOG_SEED override is given.
const DefaultSeedPath = "catalog.json"

// Seed is the outcome of the one-shot startup load. Rows that would
// break the store invariants (no id, blank name or description,
// duplicate id) are skipped rather than loaded; Skipped counts them so
// the list view can say so.
type Seed struct {
	Items   []model.Item
	Skipped int
}

// LoadSeed reads the seed file once at startup. JSON seeds carry an
// {"items": [...]} document; a .csv seed uses the flat
// id,name,description layout instead. Any error leaves the caller with
// an empty store and a persistent diagnostic; nothing is retried.
func LoadSeed(path string) (Seed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return parseCSVSeed(b)
	}
	return parseJSONSeed(b)
}

func parseJSONSeed(b []byte) (Seed, error) {
	var doc struct {
		Items []model.Item `json:"items"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return Seed{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return sift(doc.Items), nil
}

func parseCSVSeed(b []byte) (Seed, error) {
	r := csv.NewReader(strings.NewReader(string(b)))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return Seed{}, nil
		}
		return Seed{}, fmt.Errorf("csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range []string{"id", "name", "description"} {
		if _, ok := col[want]; !ok {
			return Seed{}, fmt.Errorf("csv header: missing %q column", want)
		}
	}

	var rows []model.Item
	skipped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Seed{}, fmt.Errorf("csv read: %w", err)
		}
		field := func(name string) string {
			i := col[name]
			if i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		id, err := strconv.Atoi(strings.TrimSpace(field("id")))
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, model.Item{ID: id, Name: field("name"), Description: field("description")})
	}
	out := sift(rows)
	out.Skipped += skipped
	return out, nil
}

// sift drops rows that would violate the store invariants and trims the
// rest, keeping the first occurrence of each id.
func sift(rows []model.Item) Seed {
	var out Seed
	seen := map[int]bool{}
	for _, it := range rows {
		if it.ID <= 0 || seen[it.ID] || model.Validate(it.Name, it.Description) != nil {
			out.Skipped++
			continue
		}
		seen[it.ID] = true
		out.Items = append(out.Items, model.NewItem(it.ID, it.Name, it.Description))
	}
	return out
}
