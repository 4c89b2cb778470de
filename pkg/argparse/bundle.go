// SPDX-License-Identifier: MPL-2.0

package argparse

// newBundle groups children, in order, into a bundle argument.
func newBundle(children []*Argument) *Argument {
	return &Argument{kind: KindBundle, children: children}
}

// simplify collapses an empty bundle to a null argument and a bundle of one
// to that one argument. Larger bundles are returned unchanged.
func (a *Argument) simplify() *Argument {
	if a.kind != KindBundle {
		return a
	}
	switch len(a.children) {
	case 0:
		return &Argument{kind: KindNull}
	case 1:
		return a.children[0]
	default:
		return a
	}
}

// Children returns the direct members of a bundle, or nil for other kinds.
func (a *Argument) Children() []*Argument {
	if a.kind != KindBundle {
		return nil
	}
	out := make([]*Argument, len(a.children))
	copy(out, a.children)
	return out
}
