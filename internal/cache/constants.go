package cache

import "time"

// Default cache sizing
const (
	DefaultSize = 4096
	DefaultTTL  = 10 * time.Minute
)

// Kind separates the different integer results cached per item
type Kind uint8

const (
	KindPrice Kind = iota
	KindCraftingCost
	KindResultValue
)
