// seed_products genera un script SQL para cargar el catálogo de chopes desde una planilla CSV.
//
// Uso: go run ./cmd/seed_products [ruta/produtos.csv] [salida.sql]
// Por defecto lee produtos.csv y escribe en stdout.
//
// Formato (separador ';' o ','; primera fila de encabezado):
//
//	nome;preco_barril;preco_litro;volume_litros
//	Pilsen;800,00;12,50;50
//
// Acepta UTF-8 o ISO-8859-1 (exportación de Excel). Precio por litro y volumen son opcionales.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type seedProduct struct {
	Name            string
	KegPrice        decimal.Decimal
	LiterPrice      *decimal.Decimal
	KegVolumeLiters decimal.Decimal
}

var defaultKegVolume = decimal.NewFromInt(50)

func main() {
	csvPath := "produtos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	products, err := parseCatalog(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := writeSQL(out, products, uuid.NewString); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generado: %d productos\n", len(products))
}

// decodeText devuelve el contenido en UTF-8; si no es UTF-8 válido lo trata como ISO-8859-1.
func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decodificar ISO-8859-1: %w", err)
	}
	return string(out), nil
}

func parseCatalog(raw []byte) ([]seedProduct, error) {
	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = detectSeparator(text)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("sin filas de productos")
	}

	seen := map[string]bool{}
	var out []seedProduct
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) == 0 || strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("línea %d: se esperan al menos nome y preco_barril", line)
		}
		p := seedProduct{Name: strings.TrimSpace(row[0]), KegVolumeLiters: defaultKegVolume}
		if p.Name == "" {
			return nil, fmt.Errorf("línea %d: nome vacío", line)
		}
		if seen[strings.ToLower(p.Name)] {
			return nil, fmt.Errorf("línea %d: producto repetido %q", line, p.Name)
		}
		seen[strings.ToLower(p.Name)] = true

		if p.KegPrice, err = parseAmount(row[1]); err != nil {
			return nil, fmt.Errorf("línea %d: preco_barril: %w", line, err)
		}
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			lp, err := parseAmount(row[2])
			if err != nil {
				return nil, fmt.Errorf("línea %d: preco_litro: %w", line, err)
			}
			p.LiterPrice = &lp
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			if p.KegVolumeLiters, err = parseAmount(row[3]); err != nil {
				return nil, fmt.Errorf("línea %d: volume_litros: %w", line, err)
			}
			if !p.KegVolumeLiters.IsPositive() {
				return nil, fmt.Errorf("línea %d: volume_litros debe ser mayor que 0", line)
			}
		}
		out = append(out, p)
	}
	return out, nil
}

// detectSeparator ';' si el encabezado lo usa (planillas en pt-BR), si no ','.
func detectSeparator(text string) rune {
	header, _, _ := strings.Cut(text, "\n")
	if strings.Contains(header, ";") {
		return ';'
	}
	return ','
}

// parseAmount acepta "1.234,56", "1234,56", "1234.56" y "R$ 800".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("valor negativo %q", s)
	}
	return d, nil
}

func writeSQL(w io.Writer, products []seedProduct, newID func() string) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de chopes\n")
	b.WriteString("INSERT INTO products (id, name, keg_price, liter_price, keg_volume_liters) VALUES\n")
	for i, p := range products {
		literPrice := "NULL"
		if p.LiterPrice != nil {
			literPrice = p.LiterPrice.StringFixed(2)
		}
		sep := ","
		if i == len(products)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %s, %s, %s)%s\n",
			newID(), escapeSQL(p.Name), p.KegPrice.StringFixed(2), literPrice, p.KegVolumeLiters.String(), sep)
	}
	b.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
