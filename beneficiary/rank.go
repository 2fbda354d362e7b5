// SPDX-License-Identifier: MIT

package beneficiary

// Rank orders people with DefaultPolicy. See RankWith.
func Rank(people []Person) []Person {
	return RankWith(DefaultPolicy(), people)
}

// RankWith returns a new slice holding people in priority order under p.
// The input slice is not modified.
//
// The sort is a bottom-up merge sort: stable, O(n log n) time, O(n) extra space.
func RankWith(p Policy, people []Person) []Person {
	n := len(people)
	out := make([]Person, n)
	copy(out, people)
	if n < 2 {
		return out
	}

	buf := make([]Person, n)
	src, dst := out, buf
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(p, dst[lo:hi], src[lo:mid], src[mid:hi])
		}
		src, dst = dst, src
	}

	return src
}

// merge writes left and right into dst. On ties the left element goes first,
// which is what keeps the sort stable.
func merge(p Policy, dst, left, right []Person) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if p.Less(right[j], left[i]) {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
