package ngrammodel

import (
	"errors"
	"sort"
)

var errCountOverflow = errors.New("count accumulator overflow")

func sortUint64s(s []uint64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
