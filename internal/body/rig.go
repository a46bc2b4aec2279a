package body

import (
	"github.com/amplice/bug-fight-sub000/internal/genome"
)

// Leg is one articulated leg: the coxa->femur->tibia->tarsus pivot chain,
// plus its gait phase and body side. Tarsus may be nil for 3-segment styles.
type Leg struct {
	Coxa   *Node
	Femur  *Node
	Tibia  *Node
	Tarsus *Node

	Phase float32
	Side  float32 // -1 left, +1 right
}

// Chain returns the non-nil segment pivots in order.
func (l *Leg) Chain() []*Node {
	chain := make([]*Node, 0, 4)
	for _, seg := range []*Node{l.Coxa, l.Femur, l.Tibia, l.Tarsus} {
		if seg != nil {
			chain = append(chain, seg)
		}
	}
	return chain
}

// Rig collects the named parts the animator drives. Any pointer may be nil
// (no wings on ground creatures, no weapon on "none"); the animator checks
// before touching a part and degrades to fewer animated pieces.
type Rig struct {
	Root    *Node
	Abdomen *Node
	Thorax  *Node
	Head    *Node

	Eyes     []*Node
	Legs     []*Leg
	Antennae []*Node

	WingLeft  *Node
	WingRight *Node

	// Weapon is the whole weapon subtree root; Left/Right are the paired
	// halves for mandible/pincer/fang sequences, nil otherwise.
	Weapon      *Node
	WeaponLeft  *Node
	WeaponRight *Node
	WeaponKind  genome.WeaponType
}
