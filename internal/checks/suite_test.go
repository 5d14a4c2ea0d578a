// File: internal/checks/suite_test.go
package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/vantage/api/schemas"
)

func TestDecode_YAML(t *testing.T) {
	suite, err := Decode(strings.NewReader(pageSuite), "yaml")
	require.NoError(t, err)
	require.Len(t, suite.Checks, 9)

	ratio := suite.Checks[1]
	assert.Equal(t, schemas.CheckVisibleRatio, ratio.Kind)
	require.NotNil(t, ratio.Min)
	require.NotNil(t, ratio.Max)
	assert.Equal(t, 0.4, *ratio.Min)
	assert.Equal(t, 0.6, *ratio.Max)

	order := suite.Checks[5]
	assert.Equal(t, []string{"#card1", "#card2"}, order.Elements)
	assert.Nil(t, order.Tolerance)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{"checks":[{"kind":"Intersection_Ratio","subject":"#a","reference":"#b","tolerance":2}]}`
	suite, err := Decode(strings.NewReader(doc), "json")
	require.NoError(t, err)
	require.Len(t, suite.Checks, 1)

	c := suite.Checks[0]
	assert.Equal(t, schemas.CheckIntersectionRatio, c.Kind, "kind is normalised")
	assert.Equal(t, "check-1", c.Name, "unnamed checks get a positional name")
	assert.Equal(t, 2.0, c.tolerance())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pageSuite), 0o600))

	suite, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, suite.Checks, 9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	one := 1.0
	zero := 0.0

	tests := []struct {
		name    string
		check   Check
		wantErr string
	}{
		{"missing kind", Check{Element: "#a"}, "kind is required"},
		{"unknown kind", Check{Kind: "overlaps", Element: "#a"}, "unknown kind"},
		{"viewport without element", Check{Kind: schemas.CheckInViewport}, "element is required"},
		{"position without reference", Check{Kind: schemas.CheckPosition, Subject: "#a"}, "subject and reference"},
		{"order without elements", Check{Kind: schemas.CheckOrder, Order: "leftToRight"}, "elements must not be empty"},
		{"order without order", Check{Kind: schemas.CheckOrder, Elements: []string{"#a"}}, "order is required"},
		{"inverted bounds", Check{Kind: schemas.CheckVisibleRatio, Element: "#a", Min: &one, Max: &zero}, "exceeds max"},
		{"valid", Check{Kind: schemas.CheckDistance, Subject: "#a", Reference: "#b", Direction: "left"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Suite{Checks: []Check{tt.check}}
			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidSuite)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("empty suite", func(t *testing.T) {
		assert.ErrorIs(t, (&Suite{}).Validate(), ErrInvalidSuite)
	})
}
