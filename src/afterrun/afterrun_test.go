package afterrun

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"simple", "echo hello", []string{"echo", "hello"}, false},
		{"extra spaces", "  echo   hello  ", []string{"echo", "hello"}, false},
		{"double quotes", `open "Migaku Clipboard.app"`, []string{"open", "Migaku Clipboard.app"}, false},
		{"single quotes", `say 'hello world'`, []string{"say", "hello world"}, false},
		{"escaped space", `open My\ App`, []string{"open", "My App"}, false},
		{"quote inside word", `echo a"b c"d`, []string{"echo", "ab cd"}, false},
		{"empty quoted arg", `run ""`, []string{"run", ""}, false},
		{"backslash in single quotes literal", `echo 'a\b'`, []string{"echo", `a\b`}, false},
		{"escaped quote", `echo \"hi\"`, []string{"echo", `"hi"`}, false},
		{"empty", "", nil, false},
		{"only spaces", "   ", nil, false},
		{"unterminated double", `echo "oops`, nil, true},
		{"unterminated single", `echo 'oops`, nil, true},
		{"trailing backslash", `echo oops\`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Split(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRunEmptyCommandIsNoOp(t *testing.T) {
	if err := Run(""); err != nil {
		t.Errorf("Run(\"\") = %v, want nil", err)
	}
}

func TestRunMissingBinary(t *testing.T) {
	if err := Run("/definitely/not/a/binary arg"); err == nil {
		t.Error("expected start error for missing binary")
	}
}
