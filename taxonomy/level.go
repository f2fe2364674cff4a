// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxonomy implements the taxonomic ranks
// and lineage assignments
// used to build a taxonomy tree.
package taxonomy

import "strings"

// A Level is a taxonomic rank.
type Level int

// Valid levels,
// in canonical order.
const (
	Unknown Level = iota
	Kingdom
	Phylum
	Class
	Order
	Family
	Genus
	Species

	// Root is the level of the root node
	// of a taxonomy tree.
	// It is not a taxonomic rank.
	Root
)

var levelNames = map[Level]string{
	Unknown: "unknown",
	Kingdom: "kingdom",
	Phylum:  "phylum",
	Class:   "class",
	Order:   "order",
	Family:  "family",
	Genus:   "genus",
	Species: "species",
	Root:    "root",
}

// Levels returns the taxonomic levels
// in canonical order,
// from kingdom to species.
func Levels() []Level {
	return []Level{Kingdom, Phylum, Class, Order, Family, Genus, Species}
}

// Depth is the number of taxonomic levels
// in a complete lineage.
const Depth = 7

// String returns the name of the level.
func (lv Level) String() string {
	if s, ok := levelNames[lv]; ok {
		return s
	}
	return levelNames[Unknown]
}

// Letter returns the one letter code of the level
// (for example 'g' for genus).
// It returns 0 for the root
// and the unknown level.
func (lv Level) Letter() byte {
	if !lv.IsRank() {
		return 0
	}
	return levelNames[lv][0]
}

// Prefix returns the field prefix of a level
// (for example "g__" for genus).
func (lv Level) Prefix() string {
	if !lv.IsRank() {
		return ""
	}
	return string(lv.Letter()) + "__"
}

// IsRank returns true if the level
// is one of the seven taxonomic ranks.
func (lv Level) IsRank() bool {
	return lv >= Kingdom && lv <= Species
}

// ParseLevel returns the level with the given name.
// The name can be the full name of the level
// or its one letter code,
// in any case.
// If the name is not a taxonomic rank
// it returns Unknown.
func ParseLevel(name string) Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Unknown
	}
	for _, lv := range Levels() {
		if name == lv.String() {
			return lv
		}
	}
	if len(name) == 1 {
		return letterLevel(name[0])
	}
	if name == Root.String() {
		return Root
	}
	return Unknown
}

// LevelOf returns the level of a taxon label,
// as defined by its first letter
// (for example "g__Bacteroides" is a genus).
func LevelOf(label string) Level {
	if label == "" {
		return Unknown
	}
	return letterLevel(label[0])
}

func letterLevel(b byte) Level {
	for _, lv := range Levels() {
		if lv.Letter() == b {
			return lv
		}
	}
	return Unknown
}
