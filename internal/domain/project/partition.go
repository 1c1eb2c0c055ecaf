package project

// PartitionByStatus groups projects by pipeline stage. Every stage is present
// in the result, the relative order of the input is preserved within each
// bucket, and each project lands in exactly one bucket. The partition is
// derived from the live collection on each call, never mutated separately.
func PartitionByStatus(projects []Project) map[Status][]Project {
	buckets := make(map[Status][]Project, len(Statuses()))
	for _, s := range Statuses() {
		buckets[s] = []Project{}
	}
	for _, p := range projects {
		buckets[p.Status] = append(buckets[p.Status], p)
	}
	return buckets
}
