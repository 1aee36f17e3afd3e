package render

import "testing"

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		snake  string
		kebab  string
	}{
		{"user service", "UserService", "user_service", "user-service"},
		{"UserService", "UserService", "user_service", "user-service"},
		{"user_service", "UserService", "user_service", "user-service"},
		{"doThing", "DoThing", "do_thing", "do-thing"},
		{"Calculator", "Calculator", "calculator", "calculator"},
		{"checkout-flow", "CheckoutFlow", "checkout_flow", "checkout-flow"},
		{"HTTPServer", "Httpserver", "httpserver", "httpserver"},
	}

	for _, tt := range tests {
		if got := toPascal(tt.in); got != tt.pascal {
			t.Errorf("toPascal(%q) = %q, want %q", tt.in, got, tt.pascal)
		}
		if got := toSnake(tt.in); got != tt.snake {
			t.Errorf("toSnake(%q) = %q, want %q", tt.in, got, tt.snake)
		}
		if got := toKebab(tt.in); got != tt.kebab {
			t.Errorf("toKebab(%q) = %q, want %q", tt.in, got, tt.kebab)
		}
	}
}
