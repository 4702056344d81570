package csv

import "testing"

func TestNormalizeHeaderStripsDiacritics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Preço", "preco"},
		{"  Descrição ", "descricao"},
		{"DISPONÍVEL", "disponivel"},
		{"name", "name"},
		{"Imagem URL", "imagem url"},
	}
	for _, tt := range tests {
		if got := NormalizeHeader(tt.in); got != tt.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeKeyKeepsAlphanumericOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Endereço 1", "endereco1"},
		{"WhatsApp", "whatsapp"},
		{"Formulário-Cupom", "formulariocupom"},
	}
	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindColumnCandidatePriority(t *testing.T) {
	t.Parallel()

	headers := []string{"id", "name", "nome", "preco"}

	// Earlier candidates win even when a later candidate appears first in
	// the header row.
	if got := FindColumn(headers, "nome", "name"); got != 2 {
		t.Fatalf("expected nome at index 2, got %d", got)
	}
	if got := FindColumn(headers, "categoria", "category"); got != -1 {
		t.Fatalf("expected -1 for absent column, got %d", got)
	}
}

func TestStripBOM(t *testing.T) {
	t.Parallel()

	if got := StripBOM("\ufeffid,nome"); got != "id,nome" {
		t.Fatalf("expected BOM stripped, got %q", got)
	}
	if got := StripBOM("id,nome"); got != "id,nome" {
		t.Fatalf("expected untouched line, got %q", got)
	}
}

func TestCellBounds(t *testing.T) {
	t.Parallel()

	row := []string{"a", " b "}
	if got := Cell(row, 1); got != "b" {
		t.Fatalf("expected trimmed cell, got %q", got)
	}
	if got := Cell(row, -1); got != "" {
		t.Fatalf("expected empty for -1, got %q", got)
	}
	if got := Cell(row, 5); got != "" {
		t.Fatalf("expected empty for out of range, got %q", got)
	}
}
