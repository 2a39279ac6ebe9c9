package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials(t *testing.T) {
	v := New()

	assert.NoError(t, v.Credentials("ada@example.com", "Secret1"))

	err := v.Credentials("", "")
	require.Error(t, err)
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)

	err = v.Credentials("not-an-email", "Secret1")
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "email", errs[0].Field)
	assert.Equal(t, "invalid email format", errs[0].Message)

	err = v.Credentials("ada@example.com", "short")
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs[0].Message, "at least 6")
}

func TestRegistration(t *testing.T) {
	v := New()

	assert.NoError(t, v.Registration("Ada", "ada@example.com", "Secret1"))

	tests := []struct {
		name                  string
		n, e, p               string
		wantField, wantSubstr string
	}{
		{"missing name", "", "ada@example.com", "Secret1", "name", "required"},
		{"short name", "A", "ada@example.com", "Secret1", "name", "at least 2"},
		{"no uppercase", "Ada", "ada@example.com", "secret1", "password", "uppercase"},
		{"no lowercase", "Ada", "ada@example.com", "SECRET1", "password", "lowercase"},
		{"no digit", "Ada", "ada@example.com", "Secretx", "password", "number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Registration(tt.n, tt.e, tt.p)
			var errs Errors
			require.ErrorAs(t, err, &errs)
			found := false
			for _, fe := range errs {
				if fe.Field == tt.wantField {
					assert.Contains(t, fe.Message, tt.wantSubstr)
					found = true
				}
			}
			assert.True(t, found, "expected an error on field %s", tt.wantField)
		})
	}
}

func TestPhoneAndURL(t *testing.T) {
	assert.True(t, Phone("+1 (415) 555-0101"))
	assert.False(t, Phone("12345"))

	assert.True(t, URL("https://example.com/me"))
	assert.False(t, URL("example"))
}
