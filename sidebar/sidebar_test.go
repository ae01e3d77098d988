package sidebar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hannajonsd/hookdeps/sidebar"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	s := sidebar.Build("", "src/hooks/", []string{"useBattery", "useClickAnyWhere"}, "/hooks/")

	assert.Equal(t, "Hooks", s.Text)
	assert.Equal(t, []sidebar.Item{
		{Text: "useBattery", Link: "/hooks/use-battery"},
		{Text: "useClickAnyWhere", Link: "/hooks/use-click-any-where"},
	}, s.Items)

	s = sidebar.Build("React Hooks", "hooks", nil, "/hooks/")
	assert.Equal(t, "React Hooks", s.Text)
	assert.Empty(t, s.Items)
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	s := sidebar.Build("Hooks", "hooks", []string{"useTime"}, "/hooks/")

	out, err := s.Marshal("yaml")
	require.NoError(t, err)
	var decoded []sidebar.Sidebar
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, *s, decoded[0])
	assert.Contains(t, string(out), "link: /hooks/use-time")

	out, err = s.Marshal("json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"text":"Hooks","items":[{"text":"useTime","link":"/hooks/use-time"}]}]`, string(out))

	_, err = s.Marshal("toml")
	require.Error(t, err)
}

func TestCaseConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "use-search-params", sidebar.CamelToKebab("useSearchParams"))
	assert.Equal(t, "useSearchParams", sidebar.KebabToCamel("use-search-params"))
	assert.Equal(t, "use", sidebar.CamelToKebab("use"))
}
