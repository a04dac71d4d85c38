package cliopts_test

import (
	"testing"

	"github.com/gandalfthegui/yamlenv/cliopts"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want map[string]string
	}{
		{"single override", []string{"yamlenv_config_PORT=3000", "other_arg"}, map[string]string{"PORT": "3000"}},
		{"no args", nil, map[string]string{}},
		{"no overrides", []string{"--port", "3000", "PORT=3000"}, map[string]string{}},
		{"last wins", []string{"yamlenv_config_A=1", "yamlenv_config_A=2"}, map[string]string{"A": "2"}},
		{"several names", []string{"yamlenv_config_path=/etc/env.yaml", "yamlenv_config_encoding=latin1"},
			map[string]string{"path": "/etc/env.yaml", "encoding": "latin1"}},
		{"name is greedy", []string{"yamlenv_config_A=b=c"}, map[string]string{"A=b": "c"}},
		{"empty value ignored", []string{"yamlenv_config_A="}, map[string]string{}},
		{"empty name ignored", []string{"yamlenv_config_=x"}, map[string]string{}},
		{"prefix must lead", []string{"--yamlenv_config_A=1"}, map[string]string{}},
		{"value stops at newline", []string{"yamlenv_config_A=b\nc"}, map[string]string{"A": "b"}},
		{"spaces kept", []string{"yamlenv_config_MSG=hello world"}, map[string]string{"MSG": "hello world"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cliopts.Match(tc.args))
		})
	}
}

func TestStrip(t *testing.T) {
	args := []string{"node", "yamlenv_config_A=1", "app.js", "yamlenv_config_B=", "-v"}
	assert.Equal(t, []string{"node", "app.js", "yamlenv_config_B=", "-v"}, cliopts.Strip(args))
	assert.Empty(t, cliopts.Strip(nil))
}

func TestIsOverride(t *testing.T) {
	assert.True(t, cliopts.IsOverride("yamlenv_config_A=1"))
	assert.False(t, cliopts.IsOverride("yamlenv_config_A"))
	assert.False(t, cliopts.IsOverride("A=1"))
}

func TestMatchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z_][A-Za-z0-9_]{0,12}`).Draw(t, "name")
		value := rapid.StringMatching(`[A-Za-z0-9 ./:_-]{1,20}`).Draw(t, "value")
		noise := rapid.SliceOf(rapid.StringMatching(`[a-z-]{0,10}`)).Draw(t, "noise")

		args := append(append([]string{}, noise...), cliopts.Prefix+name+"="+value)
		assert.Equal(t, map[string]string{name: value}, cliopts.Match(args))
		if len(noise) > 0 {
			assert.Equal(t, noise, cliopts.Strip(args))
		} else {
			assert.Empty(t, cliopts.Strip(args))
		}
	})
}
