package assemble

// Kmers returns every k-length window over a read, one per offset, in the
// read's own order. A read of length L yields L-k+1 windows. A read
// shorter than k yields none; that isn't an error, the read just has no
// k-mers. Duplicate windows are kept, deduplication happens at edge
// insertion.
func Kmers(read string, k int) []string {
	if k < 1 || k > len(read) {
		return nil
	}

	mers := make([]string, 0, len(read)-k+1)
	for i := 0; i+k <= len(read); i++ {
		mers = append(mers, read[i:i+k])
	}
	return mers
}
