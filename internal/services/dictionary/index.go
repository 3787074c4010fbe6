package dictionary

// WordIndex is an immutable-after-build dictionary query structure. It
// keeps two complementary sorted indices over the same word list: one
// bucketed by word length, one by first letter. Membership queries
// binary-search whichever bucket is narrower for the candidate word.
type WordIndex struct {
	byLength map[int][]string
	byLetter map[rune][]string
	total    int
}

// BuildIndex constructs a WordIndex from an already-normalized word
// list. Every word lands in exactly one length bucket and exactly one
// first-letter bucket; both are sorted ascending by ordinal comparison.
// An empty list yields a valid, always-negative index.
func BuildIndex(words []string) *WordIndex {
	idx := &WordIndex{
		byLength: make(map[int][]string),
		byLetter: make(map[rune][]string),
	}

	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		idx.byLength[len(runes)] = append(idx.byLength[len(runes)], word)
		idx.byLetter[runes[0]] = append(idx.byLetter[runes[0]], word)
		idx.total++
	}

	for _, bucket := range idx.byLength {
		quicksort(bucket, 0, len(bucket)-1)
	}
	for _, bucket := range idx.byLetter {
		quicksort(bucket, 0, len(bucket)-1)
	}

	return idx
}

// Size returns the number of indexed words
func (idx *WordIndex) Size() int {
	return idx.total
}

// WordsOfLength returns the sorted bucket for the given length.
// Callers must not modify the returned slice.
func (idx *WordIndex) WordsOfLength(length int) []string {
	return idx.byLength[length]
}

// Contains reports whether the word is in the dictionary. The word
// must already be normalized. Absence of a bucket is a normal negative
// result, not an error.
func (idx *WordIndex) Contains(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 {
		return false
	}

	lengthBucket, ok := idx.byLength[len(runes)]
	if !ok {
		return false
	}
	letterBucket, ok := idx.byLetter[runes[0]]
	if !ok {
		return false
	}

	// Search the narrower candidate set; ties go to the length bucket.
	bucket := lengthBucket
	if len(letterBucket) < len(lengthBucket) {
		bucket = letterBucket
	}
	return search(bucket, word, 0, len(bucket)-1)
}

// quicksort sorts words[low..high] in place: midpoint pivot, pivot
// swapped to the end, left-to-right partition scan.
func quicksort(words []string, low, high int) {
	if low >= high {
		return
	}
	p := partition(words, low, high)
	quicksort(words, low, p-1)
	quicksort(words, p+1, high)
}

func partition(words []string, low, high int) int {
	mid := low + (high-low)/2
	words[mid], words[high] = words[high], words[mid]
	pivot := words[high]

	i := low
	for j := low; j < high; j++ {
		if words[j] <= pivot {
			words[i], words[j] = words[j], words[i]
			i++
		}
	}
	words[i], words[high] = words[high], words[i]
	return i
}

// search is a recursive binary search over a sorted bucket
func search(words []string, target string, low, high int) bool {
	if low > high {
		return false
	}
	mid := low + (high-low)/2
	switch {
	case words[mid] == target:
		return true
	case words[mid] < target:
		return search(words, target, mid+1, high)
	default:
		return search(words, target, low, mid-1)
	}
}
