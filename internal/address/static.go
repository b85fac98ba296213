package address

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultLimit = 5

// StaticProvider suggests entries from a fixed address book.
// An entry matches when every word of the input prefixes some word of the entry.
type StaticProvider struct {
	entries []string
	limit   int
}

// NewStaticProvider returns a provider over entries with at most limit
// suggestions per query (limit <= 0 uses the default of 5).
func NewStaticProvider(entries []string, limit int) *StaticProvider {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &StaticProvider{entries: entries, limit: limit}
}

type addressBook struct {
	Addresses []string `yaml:"addresses"`
}

// LoadAddressBook reads a YAML file of the form
//
//	addresses:
//	  - 221B Baker Street, London
//	  - 1600 Amphitheatre Parkway, Mountain View, CA
func LoadAddressBook(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}
	var book addressBook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse address book: %w", err)
	}
	return book.Addresses, nil
}

// Predict implements Provider.
func (p *StaticProvider) Predict(ctx context.Context, input string) ([]string, error) {
	terms := strings.Fields(strings.ToLower(input))
	if len(terms) == 0 {
		return nil, nil
	}
	var out []string
	for _, entry := range p.entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if matches(strings.Fields(strings.ToLower(entry)), terms) {
			out = append(out, entry)
			if len(out) == p.limit {
				break
			}
		}
	}
	return out, nil
}

func matches(words, terms []string) bool {
	for _, term := range terms {
		found := false
		for _, w := range words {
			if strings.HasPrefix(strings.Trim(w, ",."), term) || strings.HasPrefix(w, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
