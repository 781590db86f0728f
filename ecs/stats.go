package ecs

import "sort"

// StorageStats is a snapshot of the storage's contents, used by debug
// tooling.
type StorageStats struct {
	EntityCount    int
	ColumnCount    int
	SingletonCount int
	Columns        []ColumnStats
	SingletonTypes []string
}

// ColumnStats describes a single component column.
type ColumnStats struct {
	ComponentType string
	EntityCount   int
}

// CollectStats gathers statistics about all entities, component columns and
// singletons in the storage.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ColumnCount:    len(s.columns),
		SingletonCount: len(s.singletons),
	}

	for i := range s.slots {
		if s.slots[i].alive {
			stats.EntityCount++
		}
	}

	for typ, col := range s.columns {
		stats.Columns = append(stats.Columns, ColumnStats{
			ComponentType: typ.String(),
			EntityCount:   col.count(),
		})
	}
	sort.Slice(stats.Columns, func(i, j int) bool {
		return stats.Columns[i].ComponentType < stats.Columns[j].ComponentType
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
