package siteconfig

import (
	"strings"

	"github.com/restaurantelilica/cardapio-backend/internal/csv"
)

var featureTruthy = map[string]struct{}{
	"true":       {},
	"1":          {},
	"verdadeiro": {},
	"sim":        {},
	"yes":        {},
}

// FeatureFlags holds the toggles sourced from the feature sheet.
type FeatureFlags struct {
	FormularioCupom bool `json:"formularioCupom"`
}

// ParseFeatureConfig scans every data row of the feature sheet for the
// coupon-form resource (a name containing "formulario" plus "cupom" or
// "coupon" after normalization) and maps its paired status cell to a
// boolean. No matching row means the form stays disabled.
func ParseFeatureConfig(csvText string) FeatureFlags {
	rows := csv.NonEmptyRows(csv.SplitRows(csvText))
	if len(rows) < 2 {
		return FeatureFlags{}
	}

	headerFields := csv.ParseFields(csv.StripBOM(rows[0]))
	headers := make([]string, len(headerFields))
	for i, field := range headerFields {
		headers[i] = csv.NormalizeKey(field)
	}

	resourceIdx := csv.FindColumn(headers, "recurso", "resource", "feature", "nome")
	statusIdx := csv.FindColumn(headers, "status", "valor", "value", "ativo")
	if resourceIdx < 0 || statusIdx < 0 {
		return FeatureFlags{}
	}

	for _, row := range rows[1:] {
		fields := csv.ParseFields(row)
		resource := csv.NormalizeKey(csv.Cell(fields, resourceIdx))
		if !strings.Contains(resource, "formulario") {
			continue
		}
		if !strings.Contains(resource, "cupom") && !strings.Contains(resource, "coupon") {
			continue
		}
		status := strings.ToLower(strings.TrimSpace(csv.Cell(fields, statusIdx)))
		_, enabled := featureTruthy[status]
		return FeatureFlags{FormularioCupom: enabled}
	}

	return FeatureFlags{}
}
