package restclient

import (
	"net/http"
	"strings"

	"github.com/restbase/restbase/codec"
)

const headerContentType = "Content-Type"

// mergeHeaders layers per-call headers over the client defaults and
// fills in the default Content-Type unless the caller supplied one
// under any spelling. Keys are canonicalized so the merge is
// case-insensitive with last-write-wins semantics.
func mergeHeaders(defaults, overrides map[string]string, contentType string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides)+1)
	for k, v := range defaults {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range overrides {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	if _, ok := merged[headerContentType]; !ok {
		merged[headerContentType] = contentType
	}
	return merged
}

// prepareBody serializes the body when the effective content type is
// JSON-like; otherwise pre-encoded bodies pass through byte-for-byte.
func prepareBody(body any, contentType string, serialize codec.Serializer) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	if isJSONContentType(contentType) {
		return serialize(body)
	}
	return codec.PassthroughSerialize(body)
}

func isJSONContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "json")
}
