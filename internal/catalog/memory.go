package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"time"

	member "Girder/internal/calc/member"
)

// MemoryCatalog is an immutable in-process catalog. It backs tests and
// deployments without a database.
type MemoryCatalog struct {
	entries  map[string]Entry
	hash     string
	modified time.Time
}

func NewMemoryCatalog(entries []Entry, modified time.Time) *MemoryCatalog {
	byName := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byName[e.Designation] = e
	}
	return &MemoryCatalog{
		entries:  byName,
		hash:     contentHash(entries),
		modified: modified,
	}
}

func (c *MemoryCatalog) Lookup(_ context.Context, designation string) (Entry, error) {
	entry, ok := c.entries[designation]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

func (c *MemoryCatalog) ListAll(_ context.Context) ([]Entry, error) {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Designation < out[j].Designation })
	return out, nil
}

func (c *MemoryCatalog) Metadata(_ context.Context) (Metadata, error) {
	return Metadata{
		Count:        len(c.entries),
		ContentHash:  c.hash,
		LastModified: c.modified,
	}, nil
}

func contentHash(entries []Entry) string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Designation < sorted[j].Designation })

	h := sha256.New()
	for _, e := range sorted {
		fmt.Fprintf(h, "%s|%g|%g|%g|%g|%g|%g|%g|%g|%g\n",
			e.Designation,
			e.Section.AreaMM2, e.Section.DepthMM,
			e.Section.IxMM4, e.Section.IyMM4,
			e.Section.ZxMM3, e.Section.ZyMM3,
			e.Steel.DensityKGM3, e.Steel.FyMPa, e.Steel.E_GPa)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// s235 is the default grade attached to the built-in European sections.
var s235 = member.SteelProperties{DensityKGM3: 7850, FyMPa: 235, E_GPa: 210}

// BuiltinSections covers the common IPE and HEA ranges with catalog
// values (gross area, depth, second moments, elastic section moduli).
var BuiltinSections = []Entry{
	{"IPE 200", member.SectionProperties{AreaMM2: 2850, DepthMM: 200, IxMM4: 19.43e6, IyMM4: 1.42e6, ZxMM3: 194.3e3, ZyMM3: 28.5e3}, s235},
	{"IPE 240", member.SectionProperties{AreaMM2: 3910, DepthMM: 240, IxMM4: 38.92e6, IyMM4: 2.84e6, ZxMM3: 324.3e3, ZyMM3: 47.3e3}, s235},
	{"IPE 300", member.SectionProperties{AreaMM2: 5380, DepthMM: 300, IxMM4: 83.56e6, IyMM4: 6.04e6, ZxMM3: 557.1e3, ZyMM3: 80.5e3}, s235},
	{"IPE 360", member.SectionProperties{AreaMM2: 7270, DepthMM: 360, IxMM4: 162.7e6, IyMM4: 10.43e6, ZxMM3: 903.6e3, ZyMM3: 122.8e3}, s235},
	{"IPE 400", member.SectionProperties{AreaMM2: 8450, DepthMM: 400, IxMM4: 231.3e6, IyMM4: 13.18e6, ZxMM3: 1156e3, ZyMM3: 146.4e3}, s235},
	{"HEA 200", member.SectionProperties{AreaMM2: 5380, DepthMM: 190, IxMM4: 36.92e6, IyMM4: 13.36e6, ZxMM3: 388.6e3, ZyMM3: 133.6e3}, s235},
	{"HEA 240", member.SectionProperties{AreaMM2: 7680, DepthMM: 230, IxMM4: 77.63e6, IyMM4: 27.69e6, ZxMM3: 675.1e3, ZyMM3: 230.7e3}, s235},
	{"HEA 300", member.SectionProperties{AreaMM2: 11250, DepthMM: 290, IxMM4: 182.6e6, IyMM4: 63.1e6, ZxMM3: 1260e3, ZyMM3: 420.6e3}, s235},
}

// NewBuiltinCatalog wraps the built-in section table.
func NewBuiltinCatalog() *MemoryCatalog {
	return NewMemoryCatalog(BuiltinSections, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}
