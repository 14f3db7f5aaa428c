package core

import "sort"

// SkippedRosdepKeys lists dependency keys excluded from collection
// unconditionally, taken verbatim from the ROS 2 Rolling binary install
// docs. Some non-ROS packages do not install their package manifests
// (cyclonedds, fastcdr, fastrtps, iceoryx_binding_c, urdfdom_headers), and
// group dependencies are hard-coded in some packages
// (rti-connext-dds-5.3.1), so the standard database cannot resolve them.
var SkippedRosdepKeys = map[string]struct{}{
	"cyclonedds":            {},
	"fastcdr":               {},
	"fastrtps":              {},
	"iceoryx_binding_c":     {},
	"rti-connext-dds-5.3.1": {},
	"urdfdom_headers":       {},
}

type KeyFilter struct {
	skipped map[string]struct{}
}

func NewKeyFilter() KeyFilter {
	return KeyFilter{skipped: SkippedRosdepKeys}
}

// Filter collapses keys into a sorted unique list minus the skip list.
// The second return value holds the skip-listed keys that were actually
// seen, sorted, for reporting.
func (f KeyFilter) Filter(keys []string) ([]string, []string) {
	seen := map[string]struct{}{}
	skipped := map[string]struct{}{}
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := f.skipped[key]; ok {
			skipped[key] = struct{}{}
			continue
		}
		seen[key] = struct{}{}
	}
	return sortedKeys(seen), sortedKeys(skipped)
}

func sortedKeys(set map[string]struct{}) []string {
	var out []string
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
