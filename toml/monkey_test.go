package toml

import (
	"strings"
	"testing"
)

func TestDecode_UnexportedFieldPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Recovered from panic: %v. Logic should skip unexported fields.", r)
		}
	}()

	data := map[string]any{"secret": "hacker"}
	type Security struct {
		secret string
		Public string `toml:"secret"`
	}

	var s Security
	if err := Decode(data, &s); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Public != "hacker" || s.secret != "" {
		t.Errorf("unexpected result: %+v", s)
	}
}

func TestLexer_InvalidNumbers(t *testing.T) {
	tests := []string{
		"a = 1.0a",
		"a = 1.-0",
		"a = 0xG1",
		"a = +",
		"a = [1.2.3]",
		"val = 1e",
		"val = 1e+",
		"val = .5",
	}

	for _, in := range tests {
		if _, err := NewParser([]byte(in)).Parse(); err == nil {
			t.Errorf("Input %q should have failed parsing", in)
		}
	}
}

func TestDecode_DeepPointers(t *testing.T) {
	data := map[string]any{"val": 42}
	type T struct {
		Val ******int `toml:"val"`
	}
	var tgt T
	if err := Decode(data, &tgt); err != nil {
		t.Fatalf("Deep pointer decode failed: %v", err)
	}
	if ******tgt.Val != 42 {
		t.Errorf("Expected 42, got %d", ******tgt.Val)
	}
}

func TestDecode_LargeIntPrecision(t *testing.T) {
	largeVal := int64(4611686018427387905)
	data := map[string]any{"id": int(largeVal)}

	type T struct {
		ID int64 `toml:"id"`
	}
	var tgt T
	if err := Decode(data, &tgt); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if tgt.ID != largeVal {
		t.Errorf("Precision loss detected: got %d, want %d", tgt.ID, largeVal)
	}
}

func TestParser_NumericKeyRejection(t *testing.T) {
	inputs := [][]byte{
		[]byte(`123 = "value"`),
		[]byte(`[123]`),
		[]byte(`1.5 = 2`),
	}

	for _, in := range inputs {
		if _, err := NewParser(in).Parse(); err == nil {
			t.Errorf("Parser should have rejected numeric key in: %s", string(in))
		}
	}
}

func TestPanic_LexerInfinity(t *testing.T) {
	input := []byte("key = \"\x00\xff\"\n[table\x00]")
	l := NewLexer(input)
	for i := 0; i < 100; i++ {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			return
		}
	}
	t.Error("Lexer likely stuck in infinite loop on invalid input")
}

func TestPanic_LongDottedKey(t *testing.T) {
	input := strings.Repeat("a.", 1000) + "b = 1"
	if _, err := NewParser([]byte(input)).Parse(); err == nil {
		t.Error("dotted key should be rejected")
	}
}

func TestBreak_SliceTypeMismatch(t *testing.T) {
	data := map[string]any{
		"list": []any{1, "string", 3},
	}
	type Target struct {
		List []int `toml:"list"`
	}
	var tgt Target
	if err := Decode(data, &tgt); err == nil {
		t.Error("Decoder should have failed converting string to int inside slice")
	}
}

func TestPanic_NilInterfaceAssignment(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Panic during nil interface decoding: %v", r)
		}
	}()
	var target any
	data := map[string]any{"a": 1}
	if err := Decode(data, &target); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if m, ok := target.(map[string]any); !ok || m["a"] != 1 {
		t.Errorf("unexpected target: %v", target)
	}
}

func TestParser_CommentsEverywhere(t *testing.T) {
	input := []byte(`# leading
a = 1 # after value
# between
[t] # after header
b = [ # inside array
  2, # after element
  3,
] # after array
`)
	res, err := NewParser(input).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res["a"] != 1 {
		t.Errorf("a = %v", res["a"])
	}
	tbl, ok := res["t"].(map[string]any)
	if !ok {
		t.Fatalf("t is not a table: %v", res["t"])
	}
	arr, ok := tbl["b"].([]any)
	if !ok || len(arr) != 2 || arr[0] != 2 || arr[1] != 3 {
		t.Errorf("b = %v", tbl["b"])
	}
}
