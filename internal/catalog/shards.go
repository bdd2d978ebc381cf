package catalog

// ShardID identifies one cell of the 3×3 stat-shard table.
type ShardID string

const (
	ShardAdaptiveForce ShardID = "adaptive"
	ShardAttackSpeed   ShardID = "attack_speed"
	ShardAbilityHaste  ShardID = "ability_haste"
	ShardMoveSpeed     ShardID = "move_speed"
	ShardScalingHealth ShardID = "scaling_health"
	ShardFlatHealth    ShardID = "flat_health"
	ShardTenacity      ShardID = "tenacity"
)

// ShardTable is the fixed 3×3 stat-shard layout. A build picks one shard
// per row by 0-based column index. The scaling-health cells in rows 2 and
// 3 resolve to 10 × character level at computation time; every other cell
// is a fixed value.
var ShardTable = [3][3]ShardID{
	{ShardAdaptiveForce, ShardAttackSpeed, ShardAbilityHaste},
	{ShardAdaptiveForce, ShardMoveSpeed, ShardScalingHealth},
	{ShardFlatHealth, ShardTenacity, ShardScalingHealth},
}

// ShardAt returns the shard at (row, col). Out-of-range columns map to
// column 0 rather than failing, matching the build-string decoder.
func ShardAt(row, col int) ShardID {
	if row < 0 || row > 2 {
		row = 0
	}
	if col < 0 || col > 2 {
		col = 0
	}
	return ShardTable[row][col]
}
