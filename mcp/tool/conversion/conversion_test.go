package conversion

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/iconset-mcp/icon/action"
)

func TestBuildSchema(t *testing.T) {
	sig := &types.Signature{
		Name:        "icon-search",
		Description: "search icons",
		Input:       reflect.TypeOf(&action.SearchInput{}),
		Output:      reflect.TypeOf(&action.IconsOutput{}),
	}
	tool, err := BuildSchema(sig)
	require.NoError(t, err)
	assert.EqualValues(t, "icon-search", tool.Name)
	require.NotNil(t, tool.Description)
	assert.EqualValues(t, "search icons", *tool.Description)
	assert.EqualValues(t, "object", tool.InputSchema.Type)
	assert.Len(t, tool.InputSchema.Properties, 2)
	require.NotNil(t, tool.OutputSchema)
	assert.EqualValues(t, "object", tool.OutputSchema.Type)
	assert.Len(t, tool.OutputSchema.Properties, 1)
}

func TestBuildSchema_MissingTypes(t *testing.T) {
	_, err := BuildSchema(&types.Signature{Name: "broken"})
	assert.Error(t, err)
}
