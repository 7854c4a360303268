package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name           string
		body           string
		limit          int64
		wantStatusCode int
		wantErr        bool
	}{
		{name: "Valid body", body: `{"name":"Ravi","age":35}`},
		{name: "Empty body", body: "", wantErr: true, wantStatusCode: constvars.StatusBadRequest},
		{name: "Malformed body", body: `{"name":`, wantErr: true, wantStatusCode: constvars.StatusBadRequest},
		{name: "Wrong type", body: `{"age":"ten"}`, wantErr: true, wantStatusCode: constvars.StatusBadRequest},
		{name: "Over the limit", body: `{"name":"` + strings.Repeat("a", 64) + `"}`, limit: 16, wantErr: true, wantStatusCode: constvars.StatusRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.limit > 0 {
				req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, tt.limit)
			}

			var dst payload
			err := ParseJSONBody(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, payload{Name: "Ravi", Age: 35}, dst)
				return
			}

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tt.wantStatusCode, customErr.StatusCode)
		})
	}
}
