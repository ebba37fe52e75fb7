package envfile

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/vertti/make-ffx-env/pkg/result"
)

// ErrNotEmptyObject is returned when a file holds valid JSON that is not `{}`.
var ErrNotEmptyObject = errors.New("not an empty JSON object")

// Verifier reads an environment file back and checks it holds an empty object.
type Verifier struct {
	Path string
	FS   FileSystem
}

// Run executes the verification.
func (v *Verifier) Run() result.Result {
	r := result.Result{
		Name: fmt.Sprintf("verify: %s", v.Path),
	}

	content, err := v.FS.ReadFile(v.Path)
	if err != nil {
		return r.Wrapf(err, "failed to read file")
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return r.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}
	r.AddDetail("syntax: valid")

	parsed := gjson.Parse(doc)
	if !parsed.IsObject() {
		return r.Fail(fmt.Sprintf("top-level value is %s, want object", describe(parsed)), ErrNotEmptyObject)
	}

	// Map collapses duplicate keys, ForEach does not.
	keys := 0
	parsed.ForEach(func(_, _ gjson.Result) bool {
		keys++
		return true
	})
	if keys != 0 {
		return r.Fail(fmt.Sprintf("expected no keys, found %d", keys), ErrNotEmptyObject)
	}
	r.AddDetail("keys: 0")

	r.Status = result.StatusOK
	return r
}

func describe(v gjson.Result) string {
	if v.IsArray() {
		return "array"
	}
	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		return v.Type.String()
	}
}
