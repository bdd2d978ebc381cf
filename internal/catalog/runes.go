package catalog

// Rune is a talent-tree node: a keystone or a minor rune. Runes that grant
// plain stats do so through Stats; runes with conditional behavior are
// matched by id in the bonus registry instead.
type Rune struct {
	ID       int       `yaml:"id"`
	Name     string    `yaml:"name"`
	Keystone bool      `yaml:"keystone"`
	Stats    ItemStats `yaml:"stats"`
}

// RunePage is a combatant's talent selection: two path ids, keystone plus
// three minors on the primary path and two minors on the secondary, and
// one shard column pick per shard row. Value-typed and freely replaceable.
type RunePage struct {
	PrimaryPath     int    `yaml:"primary_path"`
	SecondaryPath   int    `yaml:"secondary_path"`
	Keystone        int    `yaml:"keystone"`
	PrimaryMinors   [3]int `yaml:"primary_minors"`
	SecondaryMinors [2]int `yaml:"secondary_minors"`
	ShardRows       [3]int `yaml:"shard_rows"` // 0-based column per row
}

// RuneIDs flattens the page into the 8-integer talent sequence used by
// the compact build encoding: paths first, then keystone and minors.
func (p RunePage) RuneIDs() [8]int {
	return [8]int{
		p.PrimaryPath, p.SecondaryPath, p.Keystone,
		p.PrimaryMinors[0], p.PrimaryMinors[1], p.PrimaryMinors[2],
		p.SecondaryMinors[0], p.SecondaryMinors[1],
	}
}

// RunePageFromIDs rebuilds a page from the 8-integer sequence.
func RunePageFromIDs(ids [8]int, shards [3]int) RunePage {
	return RunePage{
		PrimaryPath:     ids[0],
		SecondaryPath:   ids[1],
		Keystone:        ids[2],
		PrimaryMinors:   [3]int{ids[3], ids[4], ids[5]},
		SecondaryMinors: [2]int{ids[6], ids[7]},
		ShardRows:       shards,
	}
}
