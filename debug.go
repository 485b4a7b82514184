package engine

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// globalDebug mirrors the most recently set Game debug flag so that tree
// operations (which lack a Game pointer) can check it cheaply. Only valid
// with a single Game.
var globalDebug bool

// debugLogger is the logger tree checks write to; SetDebugMode points it at
// the Game's logger.
var debugLogger zerolog.Logger = log.Logger

// debugMaxTreeDepth is the depth beyond which AddInternal warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(d *Drawable) {
	depth := 1
	for p := d.parent; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn().
			Int("depth", depth).
			Int("threshold", debugMaxTreeDepth).
			Str("node", d.Name).
			Msg("tree depth exceeds threshold")
	}
}

// debugMaxChildCount is the child count beyond which AddInternal warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *CompositeDrawable) {
	if n := len(c.children) + len(c.pending); n > debugMaxChildCount {
		debugLogger.Warn().
			Int("children", n).
			Int("threshold", debugMaxChildCount).
			Str("node", c.Name).
			Msg("child count exceeds threshold")
	}
}

// CountNodes returns the number of nodes in n's subtree, n included.
func CountNodes(n Node) int {
	count := 1
	if cn, ok := n.(compositeNode); ok {
		for _, child := range cn.composite().children {
			count += CountNodes(child)
		}
	}
	return count
}
