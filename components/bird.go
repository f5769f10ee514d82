package components

import "github.com/pthm-cable/flappy/neural"

// Bird bundles identity and the controlling network.
// Index is the slot within the generation; index 0 carries the unmutated
// champion clone.
type Bird struct {
	ID       uint32          `inspect:"label"`
	Index    int             `inspect:"label"`
	BornTick int32           `inspect:"skip"`
	Jumps    int32           `inspect:"label"`
	Brain    *neural.Network `inspect:"skip"`
}
