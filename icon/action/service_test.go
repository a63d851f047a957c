package action

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/iconset-mcp/icon"
)

func newTestService(opts ...Option) *Service {
	return New(icon.NewCatalog(
		icon.NewIconifySource("mdi", []byte(`{"icons":{"home":{},"cog":{},"home-outline":{}}}`)),
		icon.NewIconifySource("material-symbols", []byte(`{"icons":{"Home_Filled":{}}}`)),
	), opts...)
}

func TestService_Methods(t *testing.T) {
	srv := newTestService()
	assert.EqualValues(t, "icon", srv.Name())
	var names []string
	for _, sig := range srv.Methods() {
		names = append(names, sig.Name)
		assert.NotEmpty(t, sig.Description)
	}
	assert.EqualValues(t, []string{"list", "search", "common", "sources"}, names)
	assert.NotNil(t, srv.Methods().Lookup("search"))

	_, err := srv.Method("unknown")
	assert.Error(t, err)
}

func TestService_Search(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		input       interface{}
		expect      []string
	}{
		{description: "typed input", input: &SearchInput{Query: "HOME"}, expect: []string{"mdi:home", "mdi:home-outline", "material-symbols:Home_Filled"}},
		{description: "map input", input: map[string]interface{}{"query": "home", "limit": 2}, expect: []string{"mdi:home", "mdi:home-outline"}},
		{description: "default limit", options: []Option{WithLimit(1)}, input: &SearchInput{Query: "home"}, expect: []string{"mdi:home"}},
		{description: "request limit wins", options: []Option{WithLimit(1)}, input: &SearchInput{Query: "home", Limit: 3}, expect: []string{"mdi:home", "mdi:home-outline", "material-symbols:Home_Filled"}},
		{description: "empty query", input: &SearchInput{}, expect: []string{}},
		{description: "nil input", input: nil, expect: []string{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			exec, err := newTestService(testCase.options...).Method("search")
			require.NoError(t, err)
			output := &IconsOutput{}
			require.NoError(t, exec(context.Background(), testCase.input, output))
			names := make([]string, 0)
			for _, record := range output.Icons {
				names = append(names, record.Name)
			}
			assert.EqualValues(t, testCase.expect, names)
		})
	}
}

func TestService_List(t *testing.T) {
	exec, err := newTestService().Method("list")
	require.NoError(t, err)

	output := &IconsOutput{}
	require.NoError(t, exec(context.Background(), &ListInput{}, output))
	assert.Len(t, output.Icons, 4)

	output = &IconsOutput{}
	require.NoError(t, exec(context.Background(), &ListInput{Prefix: "material-symbols"}, output))
	assert.EqualValues(t, []icon.Record{{Name: "material-symbols:Home_Filled", Label: "Home_Filled", Prefix: "material-symbols"}}, output.Icons)
}

func TestService_CommonAndSources(t *testing.T) {
	srv := newTestService()

	exec, err := srv.Method("common")
	require.NoError(t, err)
	common := &CommonOutput{}
	require.NoError(t, exec(context.Background(), nil, common))
	assert.EqualValues(t, icon.CommonIcons, common.Icons)

	exec, err = srv.Method("sources")
	require.NoError(t, err)
	sources := &SourcesOutput{}
	require.NoError(t, exec(context.Background(), &SourcesInput{}, sources))
	assert.EqualValues(t, []icon.SourceInfo{{Prefix: "mdi", Count: 3}, {Prefix: "material-symbols", Count: 1}}, sources.Sources)

	var generic interface{}
	require.NoError(t, exec(context.Background(), nil, &generic))
	assert.IsType(t, SourcesOutput{}, generic)
}

func TestService_MalformedSource(t *testing.T) {
	srv := New(icon.NewCatalog(icon.NewIconifySource("fluent", []byte(`{"prefix":"fluent"}`))))
	for _, method := range []string{"list", "search", "sources"} {
		exec, err := srv.Method(method)
		require.NoError(t, err)
		err = exec(context.Background(), map[string]interface{}{"query": "home"}, &IconsOutput{})
		assert.ErrorIs(t, err, icon.ErrMalformedSource, method)
	}
}
