package state

import (
	"fmt"
	"os"
	"sort"
	"time"

	"go.yaml.in/yaml/v3"
)

// Receipt records one installed filter.
type Receipt struct {
	Name        string    `yaml:"name"`
	Version     string    `yaml:"version"`
	Path        string    `yaml:"path"`
	InstalledAt time.Time `yaml:"installed_at"`
}

// receiptsDoc is the on-disk layout of installed.yaml.
type receiptsDoc struct {
	Filters []Receipt `yaml:"filters"`
}

// Load reads the receipts file. A missing file yields an empty list.
func Load() ([]Receipt, error) {
	path, err := ReceiptsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading receipts %s: %w", path, err)
	}

	var doc receiptsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing receipts %s: %w", path, err)
	}
	return doc.Filters, nil
}

// Save writes the receipts file, creating the state directory if needed.
func Save(receipts []Receipt) error {
	if err := ensureDir(); err != nil {
		return err
	}
	path, err := ReceiptsPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(receiptsDoc{Filters: receipts})
	if err != nil {
		return fmt.Errorf("encoding receipts: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing receipts %s: %w", path, err)
	}
	return nil
}

// Add returns receipts with r added, replacing any existing receipt with the
// same name. The result is sorted by name.
func Add(receipts []Receipt, r Receipt) []Receipt {
	result := make([]Receipt, 0, len(receipts)+1)
	for _, existing := range receipts {
		if existing.Name != r.Name {
			result = append(result, existing)
		}
	}
	result = append(result, r)
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Remove returns receipts without the named entry and whether it was present.
func Remove(receipts []Receipt, name string) ([]Receipt, bool) {
	result := make([]Receipt, 0, len(receipts))
	found := false
	for _, r := range receipts {
		if r.Name == name {
			found = true
			continue
		}
		result = append(result, r)
	}
	return result, found
}

// Find returns the receipt with the given name, or nil.
func Find(receipts []Receipt, name string) *Receipt {
	for i := range receipts {
		if receipts[i].Name == name {
			return &receipts[i]
		}
	}
	return nil
}
