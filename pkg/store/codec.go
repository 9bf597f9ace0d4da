// Package store serializes trail's RecordSet to a single plaintext
// YAML file and owns the read-then-write cycle against it. The file is
// the only source of truth: every operation reads it in full and
// mutating operations rewrite it in full via an atomic replace.
package store

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/trail/pkg/types"
)

// header is written before the YAML document on every encode.
const header = "# Recently used paths, maintained by trail.\n" +
	"# This file is rewritten in full on every update; manual edits may be lost.\n"

// encodeShape pins the category order so encoded output is
// deterministic and diff-friendly.
type encodeShape struct {
	Files             []string `yaml:"files"`
	Directories       []string `yaml:"directories"`
	Projects          []string `yaml:"projects"`
	RemoteFiles       []string `yaml:"remote-files"`
	RemoteDirectories []string `yaml:"remote-directories"`
	RemoteProjects    []string `yaml:"remote-projects"`
}

// Encode renders rs as the on-disk representation: a comment header
// followed by a YAML mapping from each category name to its sequence.
func Encode(rs types.RecordSet) ([]byte, error) {
	shape := encodeShape{
		Files:             emptyIfNil(rs[types.CategoryFiles]),
		Directories:       emptyIfNil(rs[types.CategoryDirectories]),
		Projects:          emptyIfNil(rs[types.CategoryProjects]),
		RemoteFiles:       emptyIfNil(rs[types.CategoryRemoteFiles]),
		RemoteDirectories: emptyIfNil(rs[types.CategoryRemoteDirectories]),
		RemoteProjects:    emptyIfNil(rs[types.CategoryRemoteProjects]),
	}

	body, err := yaml.Marshal(&shape)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record set: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)
	return buf.Bytes(), nil
}

// Decode parses the on-disk representation back into a RecordSet. It
// is deliberately tolerant of tampering: a parse failure or a
// non-mapping top level yields an empty set, a non-sequence category
// value is replaced with an empty sequence, and non-string elements
// are filtered out. Keys outside the six fixed categories are dropped.
func Decode(data []byte) types.RecordSet {
	rs := types.NewRecordSet()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil || raw == nil {
		return rs
	}

	for _, cat := range types.Categories() {
		val, ok := raw[string(cat)]
		if !ok {
			continue
		}
		seq, ok := val.([]any)
		if !ok {
			continue
		}
		entries := make([]string, 0, len(seq))
		for _, el := range seq {
			if s, ok := el.(string); ok {
				entries = append(entries, s)
			}
		}
		rs[cat] = entries
	}

	return rs
}

// Repair normalizes an arbitrary RecordSet to the canonical six-key
// shape: missing categories are inserted empty, nil sequences are
// replaced with empty ones, and keys outside the fixed set are
// dropped. Repair is idempotent and is applied after every Decode so
// downstream code can rely on the shape regardless of external file
// tampering.
func Repair(rs types.RecordSet) types.RecordSet {
	out := types.NewRecordSet()
	for _, cat := range types.Categories() {
		if seq, ok := rs[cat]; ok && seq != nil {
			cp := make([]string, len(seq))
			copy(cp, seq)
			out[cat] = cp
		}
	}
	return out
}

func emptyIfNil(seq []string) []string {
	if seq == nil {
		return []string{}
	}
	return seq
}
