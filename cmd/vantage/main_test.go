// File: cmd/vantage/main_test.go
package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xkilldash9x/vantage/cmd"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, exitOK},
		{"interrupted", fmt.Errorf("run: %w", context.Canceled), exitOK},
		{"failed checks", cmd.ErrChecksFailed, exitChecksFailed},
		{"other error", errors.New("boom"), exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestHandlePanic(t *testing.T) {
	original := osExit
	defer func() { osExit = original }()

	var code int
	osExit = func(c int) { code = c }

	func() {
		defer handlePanic()
		panic("measurement exploded")
	}()
	assert.Equal(t, exitError, code)
}
