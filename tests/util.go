package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type HTTPErr struct {
	Error string `json:"error"`
}

type HTTPTest struct {
	Name     string
	Method   string
	Path     string
	Body     []byte
	WantCode int
	WantData []byte
}

func NewRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func MarshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("MarshalObj() failed: %v", err)
	}
	return data
}

func JSONBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if _, ok := j1.([]interface{}); !ok {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func CheckCodeAndData(t *testing.T, tt HTTPTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.WantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.WantCode)
	}
	ok, err := JSONBytesEqual(t, rec.Body.Bytes(), tt.WantData)
	if err != nil {
		t.Errorf("JSONBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.WantData))
	}
}
