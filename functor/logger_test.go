// SPDX-License-Identifier: MIT

package functor_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvcat/functor"
)

func TestWithLogger_TracesLayers(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	F := functor.New[functor.Function](functor.ObIdentity(), functor.Leaves(), functor.Functions{}, functor.WithLogger(logger))

	_ = must(F.Apply(must(copyBox.Then(addBox))(t)))(t)
	assert.Contains(t, buf.String(), "fold")
	assert.Contains(t, buf.String(), "box=ADD")
}
