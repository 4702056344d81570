package csv

import (
	"reflect"
	"testing"
)

func TestSplitRowsTerminators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "lf", in: "a,b\nc,d", want: []string{"a,b", "c,d"}},
		{name: "crlf", in: "a,b\r\nc,d\r\n", want: []string{"a,b", "c,d"}},
		{name: "lone cr", in: "a,b\rc,d", want: []string{"a,b", "c,d"}},
		{name: "trailing partial row", in: "a,b\nc", want: []string{"a,b", "c"}},
		{name: "newline inside quotes", in: "\"a\nb\",c\nd,e", want: []string{"\"a\nb\",c", "d,e"}},
		{name: "empty input", in: "", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SplitRows(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitRows(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFieldsQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "plain", in: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trims whitespace", in: " a , b ", want: []string{"a", "b"}},
		{name: "comma inside quotes", in: "\"a,b\",c", want: []string{"a,b", "c"}},
		{name: "doubled quote is literal", in: "\"say \"\"oi\"\"\",x", want: []string{`say "oi"`, "x"}},
		{name: "empty fields preserved", in: "a,,c", want: []string{"a", "", "c"}},
		{name: "unterminated quote degrades", in: "\"a,b", want: []string{"a,b"}},
		{name: "single empty field", in: "", want: []string{""}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseFields(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseFields(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitThenParseRoundTrip(t *testing.T) {
	t.Parallel()

	in := "nome,descricao\nPizza,\"massa fina, borda recheada\"\n\"Suco\nNatural\",laranja"
	rows := SplitRows(in)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %#v", len(rows), rows)
	}

	got := ParseFields(rows[1])
	want := []string{"Pizza", "massa fina, borda recheada"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("row 1 fields = %#v, want %#v", got, want)
	}

	got = ParseFields(rows[2])
	want = []string{"Suco\nNatural", "laranja"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("row 2 fields = %#v, want %#v", got, want)
	}
}

func TestNonEmptyRows(t *testing.T) {
	t.Parallel()

	in := []string{"a,b", "   ", "", "c,d"}
	want := []string{"a,b", "c,d"}
	if got := NonEmptyRows(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("NonEmptyRows = %#v, want %#v", got, want)
	}
}
