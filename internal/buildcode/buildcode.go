// Package buildcode implements the compact build-string boundary format:
//
//	<championId>.<level>.<item1>-...-<item6>.<8 talent ids>.<3 shard rows>
//
// 14 dot-separated segments, empty item slots serialized as 0, shard
// picks as 0-based column indices into the fixed 3×3 shard table. The
// format round-trips bit-exactly for any valid build.
package buildcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports a string that cannot be decoded. Callers treat it
// as "no build to restore", never as fatal.
var ErrMalformed = errors.New("buildcode: malformed build string")

const (
	segments  = 14
	itemSlots = 6
)

// Build is the decoded combatant configuration.
type Build struct {
	ChampionID int
	Level      int
	Items      [itemSlots]int // 0 = empty slot
	Runes      [8]int
	ShardRows  [3]int // 0-based column per shard row
}

// Encode serializes a build into the compact string form.
func Encode(b Build) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.", b.ChampionID, clampLevel(b.Level))

	for i, id := range b.Items {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	for _, id := range b.Runes {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(id))
	}
	for _, row := range b.ShardRows {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(clampShard(row)))
	}
	return sb.String()
}

// Decode parses the compact string form. Strings with fewer than 14
// segments or non-numeric fields are rejected with ErrMalformed. Level
// clamps to [1, 18]; missing or out-of-range shard indices map to 0.
func Decode(s string) (Build, error) {
	parts := strings.Split(s, ".")
	if len(parts) < segments {
		return Build{}, fmt.Errorf("%w: %d of %d segments", ErrMalformed, len(parts), segments)
	}

	var b Build
	var err error

	if b.ChampionID, err = strconv.Atoi(parts[0]); err != nil {
		return Build{}, fmt.Errorf("%w: champion id %q", ErrMalformed, parts[0])
	}
	if b.Level, err = strconv.Atoi(parts[1]); err != nil {
		return Build{}, fmt.Errorf("%w: level %q", ErrMalformed, parts[1])
	}
	b.Level = clampLevel(b.Level)

	items := strings.Split(parts[2], "-")
	for i := 0; i < itemSlots && i < len(items); i++ {
		if b.Items[i], err = strconv.Atoi(items[i]); err != nil {
			return Build{}, fmt.Errorf("%w: item %q", ErrMalformed, items[i])
		}
	}

	for i := 0; i < 8; i++ {
		if b.Runes[i], err = strconv.Atoi(parts[3+i]); err != nil {
			return Build{}, fmt.Errorf("%w: talent %q", ErrMalformed, parts[3+i])
		}
	}

	for i := 0; i < 3; i++ {
		row, err := strconv.Atoi(parts[11+i])
		if err != nil {
			return Build{}, fmt.Errorf("%w: shard %q", ErrMalformed, parts[11+i])
		}
		b.ShardRows[i] = clampShard(row)
	}

	return b, nil
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 18 {
		return 18
	}
	return level
}

// clampShard maps out-of-range shard column indices to 0.
func clampShard(col int) int {
	if col < 0 || col > 2 {
		return 0
	}
	return col
}
