package chained

import "fmt"

// Stats describes how bindings are spread over the buckets
type Stats struct {
	Buckets      int
	Bindings     int
	UsedBuckets  int
	EmptyBuckets int
	LongestChain int
}

func (s Stats) String() string {
	return fmt.Sprintf("buckets=%d bindings=%d used=%d empty=%d longest=%d",
		s.Buckets, s.Bindings, s.UsedBuckets, s.EmptyBuckets, s.LongestChain)
}

// Stats walks every bucket, so it costs O(buckets + bindings)
func (m *HashTable[V]) Stats() Stats {
	m.mustBeLive()
	st := Stats{
		Buckets:  len(m.buckets),
		Bindings: int(m.keys),
	}
	for i := range m.buckets {
		n := m.buckets[i].Len()
		if n == 0 {
			st.EmptyBuckets++
			continue
		}
		st.UsedBuckets++
		if n > st.LongestChain {
			st.LongestChain = n
		}
	}
	return st
}
