package model

import (
	"math"

	"github.com/philipparndt/fenster/pkg/product"
	"github.com/philipparndt/fenster/pkg/scene"
)

// sashSpec places one sash as fractions of the sash span, measured from the
// span center (-0.5 is the left edge, 0.5 the right edge).
type sashSpec struct {
	role        scene.Role
	left, right float64
	// hinge overrides the opening direction's hinge side when set
	hinge  product.Hinge
	handle bool
}

type dividerSpec struct {
	center, width float64
}

type layout struct {
	sashes   []sashSpec
	dividers []dividerSpec
}

// narrowest is the smallest sash share of the span
func (l layout) narrowest() float64 {
	n := 1.0
	for _, s := range l.sashes {
		n = math.Min(n, s.right-s.left)
	}
	return n
}

// meetingRail is how far the left sash of a double-leaf window reaches past
// the center to cover the meeting rail
const meetingRail = 0.02

// tripleSash is the share of the span each triple-leaf sash takes
const tripleSash = 0.30

var layouts = map[product.WindowType]layout{
	product.WindowSingle: {
		sashes: []sashSpec{{role: scene.RoleSingle, left: -0.5, right: 0.5, handle: true}},
	},
	product.WindowFixed: {
		sashes: []sashSpec{{role: scene.RoleSingle, left: -0.5, right: 0.5}},
	},
	product.WindowDoubleLeaf: {
		sashes: []sashSpec{
			{role: scene.RoleLeft, left: -0.5, right: meetingRail, hinge: product.HingeLeft, handle: true},
			{role: scene.RoleRight, left: meetingRail, right: 0.5, hinge: product.HingeRight},
		},
	},
	product.WindowTripleLeaf: {
		sashes: []sashSpec{
			{role: scene.RoleLeft, left: -1.0/3 - tripleSash/2, right: -1.0/3 + tripleSash/2, hinge: product.HingeLeft, handle: true},
			{role: scene.RoleCenter, left: -tripleSash / 2, right: tripleSash / 2},
			{role: scene.RoleRight, left: 1.0/3 - tripleSash/2, right: 1.0/3 + tripleSash/2, hinge: product.HingeRight},
		},
		dividers: []dividerSpec{
			{center: -1.0 / 6, width: 1.0 / 30},
			{center: 1.0 / 6, width: 1.0 / 30},
		},
	},
}
