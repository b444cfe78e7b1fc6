package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		descriptor Descriptor
		fields     []string
		want       string
		wantErr    bool
	}{
		{"single", Notes, []string{"id"}, "id", false},
		{"keeps caller order", Notes, []string{"title", "id", "body"}, "title,id,body", false},
		{"empty", Tags, nil, "", false},
		{"unknown field", Tags, []string{"id", "body"}, "", true},
		{"field of another type", Events, []string{"title"}, "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateFields(tt.descriptor, tt.fields)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidField)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateOrderBy(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateOrderBy(Notes, "updated_time"))
	assert.ErrorIs(t, validateOrderBy(Folders, "body"), ErrInvalidOrderField)
}

func TestValidateOrderDir(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validateOrderDir("ASC"))
	assert.NoError(t, validateOrderDir("DESC"))
	assert.ErrorIs(t, validateOrderDir("asc"), ErrInvalidOrderDirection)
	assert.ErrorIs(t, validateOrderDir("Desc"), ErrInvalidOrderDirection)
	assert.ErrorIs(t, validateOrderDir(""), ErrInvalidOrderDirection)
}
