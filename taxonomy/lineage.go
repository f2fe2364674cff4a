// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxonomy

import (
	"slices"
	"strings"
)

// Unidentified is the suffix of the synthetic labels
// inserted when a lineage lacks a level.
const Unidentified = "_unidentified"

// maxBorrow is the number of characters
// taken from the next field
// to build an unidentified label.
//
// Two unresolved taxa whose next field share
// the first characters
// will be merged into the same label.
const maxBorrow = 12

// Normalize repairs a lineage
// so each field is aligned with a taxonomic level.
//
// Fields are separated by semicolons.
// For each level,
// in canonical order,
// if the field at that position does not start
// with the letter of the level
// a synthetic label is inserted,
// built with the letter of the level,
// the next field without its first letter
// (up to 12 characters),
// and the suffix "_unidentified".
// For example,
// the lineage "k__Bacteria;c__Bacilli"
// is normalized as "k__Bacteria;p__Bacilli_unidentified;c__Bacilli".
//
// Lineages shorter than the canonical depth
// are not extended.
// Spaces around the fields are removed
// and an empty lineage is returned unchanged.
func Normalize(lineage string) string {
	if strings.TrimSpace(lineage) == "" {
		return lineage
	}

	fields := strings.Split(lineage, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	for i, lv := range Levels() {
		if i >= len(fields) {
			break
		}
		f := fields[i]
		if f != "" && f[0] == lv.Letter() {
			continue
		}
		fields = slices.Insert(fields, i, unidentified(lv, f))
	}
	return strings.Join(fields, ";")
}

func unidentified(lv Level, next string) string {
	r := []rune(next)
	if len(r) > 0 {
		r = r[1:]
	}
	if len(r) > maxBorrow {
		r = r[:maxBorrow]
	}
	return string(lv.Letter()) + string(r) + Unidentified
}

// Split returns the taxon labels of a lineage.
// Spaces around the labels are removed,
// and empty trailing fields are ignored.
func Split(lineage string) []string {
	if strings.TrimSpace(lineage) == "" {
		return nil
	}
	fields := strings.Split(lineage, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// Label returns the label of a lineage
// at the given level,
// i.e., the first field with the prefix of the level
// and a non-empty name.
// It returns false if the lineage
// does not have a field for that level.
func Label(lineage string, lv Level) (string, bool) {
	p := lv.Prefix()
	if p == "" {
		return "", false
	}
	for _, f := range Split(lineage) {
		if len(f) > len(p) && strings.HasPrefix(f, p) {
			return f, true
		}
	}
	return "", false
}
