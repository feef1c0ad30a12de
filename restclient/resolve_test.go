package restclient

import "testing"

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
		wantErr bool
	}{
		{"relative path", "https://api.example.com", "/users", "https://api.example.com/users", false},
		{"no leading slash", "https://api.example.com/", "users", "https://api.example.com/users", false},
		{"duplicate slashes kept", "https://api.example.com/", "/users", "https://api.example.com//users", false},
		{"absolute http passes through", "https://api.example.com", "http://other.example.com/x", "http://other.example.com/x", false},
		{"absolute https passes through", "https://api.example.com", "https://other.example.com/x", "https://other.example.com/x", false},
		{"empty path", "https://api.example.com", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolvePath(tc.baseURL, tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !IsInvalidPath(err) {
					t.Errorf("expected invalid-path error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
