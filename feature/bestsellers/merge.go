package bestsellers

import (
	"sort"
	"strings"

	"bestseller-sync/core/reconcile"
)

// unrankedSentinel orders unranked records after every real rank.
const unrankedSentinel = 1_000_000

// Collection is the merged, ordered content of one TargetGroup.
type Collection struct {
	Name    string
	Records []WorkRecord
	// Missing lists the configured list ids absent from the snapshot.
	Missing []string
}

// Group converts the collection for the reconcile engine.
func (c Collection) Group() reconcile.Group {
	records := make([]reconcile.Record, len(c.Records))
	for i, r := range c.Records {
		records[i] = r
	}
	return reconcile.Group{Name: c.Name, Records: records}
}

// BuildCollections merges the configured lists of every group, in group order.
func BuildCollections(overview *Overview, groups []TargetGroup) []Collection {
	index := overview.Index()
	out := make([]Collection, 0, len(groups))
	for _, g := range groups {
		out = append(out, mergeGroup(g, index))
	}
	return out
}

func mergeGroup(group TargetGroup, index map[string]List) Collection {
	c := Collection{Name: group.Name}
	byKey := make(map[string]int)
	var merged []WorkRecord

	for _, id := range group.Lists {
		l, ok := index[id]
		if !ok {
			c.Missing = append(c.Missing, id)
			continue
		}
		for _, rec := range ExtractList(l) {
			key := rec.MergeKey()
			pos, seen := byKey[key]
			if !seen {
				byKey[key] = len(merged)
				merged = append(merged, rec)
				continue
			}
			if betterRank(rec, merged[pos]) {
				merged[pos] = rec
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return lessRecord(merged[i], merged[j])
	})
	c.Records = merged
	return c
}

// betterRank reports whether incoming should replace stored. Equal ranks keep stored.
func betterRank(incoming, stored WorkRecord) bool {
	if !incoming.Ranked() {
		return false
	}
	return !stored.Ranked() || incoming.Rank < stored.Rank
}

func sortRank(r WorkRecord) int {
	if r.Ranked() {
		return r.Rank
	}
	return unrankedSentinel
}

func lessRecord(a, b WorkRecord) bool {
	if a.Ranked() != b.Ranked() {
		return a.Ranked()
	}
	if ra, rb := sortRank(a), sortRank(b); ra != rb {
		return ra < rb
	}
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
