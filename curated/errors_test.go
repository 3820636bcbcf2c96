// This file is part of GLFBO.
//
// GLFBO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLFBO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLFBO.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/test"
)

const testPattern = "test error: %s"

func TestIdentity(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")

	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern"))

	// a plain error is never curated
	p := fmt.Errorf("plain error")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))

	// nor is the nil error
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
	test.ExpectedFailure(t, curated.Has(nil, testPattern))
}

func TestChain(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf("wrapping: %v", e)

	// Is() does not look into the chain but Has() does
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "wrapping: %v"))
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate message parts are removed
	e := curated.Errorf("error: %v", curated.Errorf("error: %s", "foo"))
	test.Equate(t, e.Error(), "error: foo")

	// non-duplicate parts are preserved
	f := curated.Errorf("outer: %v", curated.Errorf("inner: %s", "foo"))
	test.Equate(t, f.Error(), "outer: inner: foo")
}
