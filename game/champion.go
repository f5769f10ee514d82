package game

import (
	"math/rand"

	"github.com/pthm-cable/flappy/neural"
)

// Champion is the best-network slot. It is filled with a deep copy of the
// sole survivor whenever the live set shrinks to exactly one bird.
type Champion struct {
	net        *neural.Network
	birdID     uint32
	generation int
	tick       int32
	updates    int
}

// Has reports whether the slot holds a network.
func (c *Champion) Has() bool { return c.net != nil }

// Network returns the stored network, or nil. Callers must not modify it.
func (c *Champion) Network() *neural.Network { return c.net }

// BirdID returns the ID of the bird the network was copied from.
func (c *Champion) BirdID() uint32 { return c.birdID }

// Generation returns the generation the network was stored in.
func (c *Champion) Generation() int { return c.generation }

// Updates returns how many times the slot has been filled.
func (c *Champion) Updates() int { return c.updates }

func (c *Champion) store(net *neural.Network, birdID uint32, generation int, tick int32) {
	c.net = net.Clone()
	c.birdID = birdID
	c.generation = generation
	c.tick = tick
	c.updates++
}

// Offspring returns the network for slot index of the next generation:
// an unmutated copy for index 0, a mutated copy otherwise.
func (c *Champion) Offspring(rng *rand.Rand, index int, rate float64) *neural.Network {
	child := c.net.Clone()
	if index > 0 {
		neural.Mutate(rng, child, rate)
	}
	return child
}
