package reconstruct

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/katalvlaran/polyrec/basen"
)

// keysField is the reserved metadata key of a share document; every other
// top-level key is an x-coordinate.
const keysField = "keys"

// header mirrors the "keys" object: n shares available, k shares required.
type header struct {
	N int `json:"n"`
	K int `json:"k"`
}

// rawShare mirrors one encoded share entry as it appears on the wire.
type rawShare struct {
	Base  string `json:"base"`
	Value string `json:"value"`
}

// share is one parsed entry: the x-coordinate plus its still-encoded y.
type share struct {
	key   string   // original JSON key, drives the legacy lexicographic order
	x     *big.Int // x-coordinate decoded from the key (base 10)
	base  int      // radix of value; range-checked later by basen.Decode
	value string   // encoded y digit string
}

// Document is a parsed share document: the threshold header plus every
// share entry, stored in lexicographic key order. Parse one with
// ParseDocument, then call Points to decode the shares actually used.
type Document struct {
	n      int     // declared share count (informational)
	k      int     // threshold: number of shares consumed
	shares []share // all entries, lexicographic key order
}

// Available returns the declared number of shares n (informational only).
func (d *Document) Available() int { return d.n }

// Threshold returns k, the number of shares Points decodes.
func (d *Document) Threshold() int { return d.k }

// Len returns the number of share entries actually present.
func (d *Document) Len() int { return len(d.shares) }

// ParseDocument parses the JSON share-document shape: a required "keys"
// header {"n": …, "k": …} plus dynamic top-level keys, each an x-coordinate
// in base 10 mapping to {"base": "<b10>", "value": "<digits>"}.
//
// Structural violations — missing or malformed header, k < 1, a top-level
// key that is not a base-10 integer, a base field that is not a base-10
// integer — fail with ErrBadDocument (wrapped with the offending key).
// Digit-level validation of the value strings is deferred to Points, where
// basen.Decode reports the precise violation.
func ParseDocument(data []byte) (*Document, error) {
	// Dynamic keys force a RawMessage map; typed decoding happens per entry.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ParseDocument: %v: %w", err, ErrBadDocument)
	}

	hdrRaw, ok := raw[keysField]
	if !ok {
		return nil, fmt.Errorf("ParseDocument: missing %q header: %w", keysField, ErrBadDocument)
	}
	var hdr header
	if err := json.Unmarshal(hdrRaw, &hdr); err != nil {
		return nil, fmt.Errorf("ParseDocument: %q header: %v: %w", keysField, err, ErrBadDocument)
	}
	if hdr.K < 1 {
		return nil, fmt.Errorf("ParseDocument: threshold k = %d: %w", hdr.K, ErrBadDocument)
	}

	// Collect and sort the coordinate keys; map iteration order is random,
	// lexicographic order makes the stored document deterministic.
	keys := make([]string, 0, len(raw)-1)
	for key := range raw {
		if key != keysField {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	shares := make([]share, 0, len(keys))
	for _, key := range keys {
		x, ok := new(big.Int).SetString(key, 10)
		if !ok {
			return nil, fmt.Errorf("ParseDocument: x-coordinate key %q: %w", key, ErrBadDocument)
		}

		var entry rawShare
		if err := json.Unmarshal(raw[key], &entry); err != nil {
			return nil, fmt.Errorf("ParseDocument: share %q: %v: %w", key, err, ErrBadDocument)
		}
		base, err := strconv.Atoi(entry.Base)
		if err != nil {
			return nil, fmt.Errorf("ParseDocument: share %q: base %q: %w", key, entry.Base, ErrBadDocument)
		}

		shares = append(shares, share{key: key, x: x, base: base, value: entry.Value})
	}

	return &Document{n: hdr.N, k: hdr.K, shares: shares}, nil
}

// Points decodes the first k shares into exact sample points, each y parsed
// by basen.Decode in its stated base.
//
// Selection order: numeric by x-coordinate by default, so "first k" is a
// property of the declared coordinates rather than of JSON key order;
// WithInsertionOrder restores the lexicographic key order instead. Only
// ordering options apply here — WithDegree configures Reconstruct and has
// no effect on share selection.
//
// Errors:
//   - ErrNotEnoughShares — fewer than k entries in the document;
//   - basen sentinels    — a y value that does not decode under its base
//     (wrapped with the share's key for caller-side diagnostics).
func (d *Document) Points(opts ...Option) ([]Point, error) {
	o := gatherOptions(opts...)

	if len(d.shares) < d.k {
		return nil, fmt.Errorf("Points: need %d shares, have %d: %w", d.k, len(d.shares), ErrNotEnoughShares)
	}

	selected := append([]share(nil), d.shares...)
	if o.sortByX {
		sort.Slice(selected, func(i, j int) bool { return selected[i].x.Cmp(selected[j].x) < 0 })
	}
	selected = selected[:d.k]

	points := make([]Point, len(selected))
	for i, s := range selected {
		y, err := basen.Decode(s.value, s.base)
		if err != nil {
			return nil, fmt.Errorf("Points: share %q: %w", s.key, err)
		}
		points[i] = Point{X: s.x, Y: y}
	}

	return points, nil
}
