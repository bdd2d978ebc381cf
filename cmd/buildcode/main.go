// Command buildcode encodes and decodes compact build strings.
//
// Usage:
//
//	buildcode decode <string>
//	buildcode encode <championId> <level> <item1,...,item6> <8 rune ids> <3 shard rows>
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/udisondev/arenacalc/internal/buildcode"
)

func main() {
	if len(os.Args) < 3 {
		usage()
	}

	switch os.Args[1] {
	case "decode":
		b, err := buildcode.Decode(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("champion %d, level %d\n", b.ChampionID, b.Level)
		fmt.Printf("items %v\n", b.Items)
		fmt.Printf("runes %v\n", b.Runes)
		fmt.Printf("shards %v\n", b.ShardRows)

	case "encode":
		// prog + subcommand + champion + level + items + 8 runes + 3 shards
		if len(os.Args) != 16 {
			usage()
		}
		b, err := parseEncode(os.Args[2:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(buildcode.Encode(b))

	default:
		usage()
	}
}

// parseEncode assembles a build from the 14 positional fields: champion
// id, level, the comma-joined item list, 8 rune ids and 3 shard rows.
func parseEncode(fields []string) (buildcode.Build, error) {
	var b buildcode.Build
	if len(fields) != 14 {
		return b, fmt.Errorf("encode takes 14 fields, got %d", len(fields))
	}

	var err error
	if b.ChampionID, err = strconv.Atoi(fields[0]); err != nil {
		return b, fmt.Errorf("champion id %q: not a number", fields[0])
	}
	if b.Level, err = strconv.Atoi(fields[1]); err != nil {
		return b, fmt.Errorf("level %q: not a number", fields[1])
	}

	for i, f := range strings.Split(fields[2], ",") {
		if i >= len(b.Items) {
			break
		}
		if b.Items[i], err = strconv.Atoi(f); err != nil {
			return b, fmt.Errorf("item %q: not a number", f)
		}
	}
	for i := 0; i < 8; i++ {
		if b.Runes[i], err = strconv.Atoi(fields[3+i]); err != nil {
			return b, fmt.Errorf("rune %q: not a number", fields[3+i])
		}
	}
	for i := 0; i < 3; i++ {
		if b.ShardRows[i], err = strconv.Atoi(fields[11+i]); err != nil {
			return b, fmt.Errorf("shard row %q: not a number", fields[11+i])
		}
	}
	return b, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: buildcode decode <string> | buildcode encode <championId> <level> <items> <8 runes> <3 shards>")
	os.Exit(2)
}
