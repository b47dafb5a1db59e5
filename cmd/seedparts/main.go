// seedparts genera un script SQL para poblar el catálogo de repuestos a
// partir del CSV exportado por el sistema legado (separado por punto y coma,
// codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seedparts <company_id> [ruta/repuestos.csv]
// Por defecto busca repuestos.csv en el directorio actual.
// Escribe: migrations/002_seed_parts.sql
//
// Columnas esperadas: part_no;descripcion;categoria;marca;unidad;costo;precio;punto_reorden
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type row struct {
	partNo       string
	description  string
	category     string
	brand        string
	unit         string
	cost         string
	price        string
	reorderPoint int64
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seedparts <company_id> [repuestos.csv]")
		os.Exit(1)
	}
	companyID := os.Args[1]
	csvPath := "repuestos.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El sistema legado exporta en ISO-8859-1 (tildes y eñes).
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	categories := make(map[string]bool)
	brands := make(map[string]bool)
	var rows []row
	skipped := 0
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "part_no") {
			continue // encabezado
		}
		if len(rec) < 8 {
			skipped++
			continue
		}
		r := row{
			partNo:      strings.ToUpper(strings.TrimSpace(rec[0])),
			description: strings.TrimSpace(rec[1]),
			category:    strings.TrimSpace(rec[2]),
			brand:       strings.TrimSpace(rec[3]),
			unit:        strings.TrimSpace(rec[4]),
			cost:        normalizeDecimal(rec[5]),
			price:       normalizeDecimal(rec[6]),
		}
		if r.partNo == "" || r.description == "" {
			skipped++
			continue
		}
		r.reorderPoint, _ = strconv.ParseInt(strings.TrimSpace(rec[7]), 10, 64)
		if r.category != "" {
			categories[r.category] = true
		}
		if r.brand != "" {
			brands[r.brand] = true
		}
		rows = append(rows, r)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_parts.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Catálogo de repuestos importado del sistema legado\n")
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(csvPath))

	out.WriteString("-- 1. Categorías\n")
	for _, name := range sortedKeys(categories) {
		fmt.Fprintf(out, "INSERT INTO categories (id, company_id, name)\nVALUES (gen_random_uuid(), '%s', '%s')\nON CONFLICT (company_id, name) DO NOTHING;\n",
			escapeSQL(companyID), escapeSQL(name))
	}

	out.WriteString("\n-- 2. Marcas\n")
	for _, name := range sortedKeys(brands) {
		fmt.Fprintf(out, "INSERT INTO brands (id, company_id, name)\nSELECT gen_random_uuid(), '%s', '%s'\nWHERE NOT EXISTS (SELECT 1 FROM brands WHERE company_id = '%s' AND name = '%s');\n",
			escapeSQL(companyID), escapeSQL(name), escapeSQL(companyID), escapeSQL(name))
	}

	out.WriteString("\n-- 3. Repuestos\n")
	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO parts (id, company_id, part_no, description, category_id, brand_id, unit_measure, cost, price, reorder_point, status)\n")
		fmt.Fprintf(out, "SELECT gen_random_uuid(), '%s', '%s', '%s',\n", escapeSQL(companyID), escapeSQL(r.partNo), escapeSQL(r.description))
		fmt.Fprintf(out, "  (SELECT id FROM categories WHERE company_id = '%s' AND name = '%s'),\n", escapeSQL(companyID), escapeSQL(r.category))
		fmt.Fprintf(out, "  (SELECT id FROM brands WHERE company_id = '%s' AND name = '%s'),\n", escapeSQL(companyID), escapeSQL(r.brand))
		fmt.Fprintf(out, "  '%s', %s, %s, %d, 'active'\n", escapeSQL(r.unit), r.cost, r.price, r.reorderPoint)
		fmt.Fprintf(out, "ON CONFLICT (company_id, part_no) DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d repuestos, %d categorías, %d marcas (%d filas descartadas)\n",
		outPath, len(rows), len(categories), len(brands), skipped)
}

// normalizeDecimal acepta coma o punto como separador decimal y devuelve un
// literal numérico SQL; vacío o inválido cae a 0.
func normalizeDecimal(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "0"
	}
	return s
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
