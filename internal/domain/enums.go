package domain

// Origin records who placed a value in a cell.
type Origin int

const (
	OriginNone   Origin = iota // cell is empty
	OriginUser                 // supplied by the caller
	OriginSolver               // derived by propagation or search
)

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked / hidden singles
	StrategyAdvanced                     // box/line reduction eliminations
)
