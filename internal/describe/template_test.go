package describe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	values := map[string]string{
		"name":  "valkey",
		"empty": "",
		"multi": "a\nb",
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{"no placeholders", "plain text", "plain text"},
		{"single placeholder", "image {name}", "image valkey"},
		{"repeated placeholder", "{name}/{name}", "valkey/valkey"},
		{"empty value", "a{empty}b", "ab"},
		{"multi-line value", "x\n{multi}\ny", "x\na\nb\ny"},
		{"escaped braces", "{{literal}} {name}", "{literal} valkey"},
		{"escaped braces around placeholder", "{{{name}}}", "{valkey}"},
		{"empty template", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fill(tt.tmpl, values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFill_Errors(t *testing.T) {
	t.Run("unknown placeholder", func(t *testing.T) {
		_, err := Fill("hello {who}", map[string]string{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownPlaceholder))
		assert.Contains(t, err.Error(), "{who}")
	})

	t.Run("unterminated placeholder", func(t *testing.T) {
		_, err := Fill("hello {who", map[string]string{"who": "x"})
		assert.Error(t, err)
	})

	t.Run("single closing brace", func(t *testing.T) {
		_, err := Fill("hello }", nil)
		assert.Error(t, err)
	})
}
