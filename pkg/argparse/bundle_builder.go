// SPDX-License-Identifier: MPL-2.0

package argparse

import "fmt"

// BundleBuilder collects arguments into a bundle. Use it through BuildBundle
// or MustBundle.
type BundleBuilder struct {
	members []*Argument
	err     error
}

// BuildBundle runs fn against a fresh bundle builder and returns the bundle.
// An empty bundle is a null argument and a bundle of one is that argument.
func BuildBundle(fn func(*BundleBuilder)) (*Argument, error) {
	b := &BundleBuilder{}
	if fn != nil {
		fn(b)
	}
	return b.Argument()
}

// MustBundle is like BuildBundle but panics on error.
func MustBundle(fn func(*BundleBuilder)) *Argument {
	arg, err := BuildBundle(fn)
	if err != nil {
		panic(fmt.Sprintf("argparse: %v", err))
	}
	return arg
}

// Add appends an already built argument. The argument is shared, not
// copied; parsers copy it when it is added to them.
func (b *BundleBuilder) Add(arg *Argument) {
	if arg == nil {
		b.fail(&BuildError{Type: BuildErrNeedOne})
		return
	}
	b.members = append(b.members, arg)
}

// AddFunc builds an argument from fn and appends it.
func (b *BundleBuilder) AddFunc(fn func(*ArgumentBuilder)) {
	if fn == nil {
		b.fail(&BuildError{Type: BuildErrNeedOne})
		return
	}
	arg, err := BuildArgument(fn)
	if err != nil {
		b.fail(err)
		return
	}
	b.members = append(b.members, arg)
}

func (b *BundleBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Argument returns the bundle, simplified.
func (b *BundleBuilder) Argument() (*Argument, error) {
	if b.err != nil {
		return nil, b.err
	}
	members := make([]*Argument, len(b.members))
	copy(members, b.members)
	return newBundle(members).simplify(), nil
}
