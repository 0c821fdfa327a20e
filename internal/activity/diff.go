package activity

import (
	"reflect"
	"sort"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// Diff returns the names of fields whose values differ between prev and curr.
//
// Keys from both snapshots are considered: a key missing on either side is a
// change, and present values are compared with reflect.DeepEqual. The result
// is sorted and never nil. If either snapshot is nil, no diff is computed and
// the result is empty.
func Diff(prev, curr domain.Snapshot) []string {
	changed := []string{}
	if prev == nil || curr == nil {
		return changed
	}

	for k, pv := range prev {
		cv, ok := curr[k]
		if !ok || !reflect.DeepEqual(pv, cv) {
			changed = append(changed, k)
		}
	}
	for k := range curr {
		if _, ok := prev[k]; !ok {
			changed = append(changed, k)
		}
	}

	sort.Strings(changed)
	return changed
}
