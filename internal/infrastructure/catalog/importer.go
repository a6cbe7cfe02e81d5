package catalog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoicegen/internal/application/dto"
)

// CustomerRow fila del CSV de clientes.
type CustomerRow struct {
	Name              string `csv:"name"`
	TaxRegistrationNo string `csv:"tax_registration_no"`
	Address           string `csv:"address"`
	Phone             string `csv:"phone"`
}

// ProductRow fila del CSV de productos. La tarifa se lee como texto
// ("₹1,200.50" o "1200.5") y la interpreta el códec de moneda.
type ProductRow struct {
	Name    string `csv:"name"`
	Rate    string `csv:"rate"`
	TaxCode string `csv:"tax_code"`
	Unit    string `csv:"unit"`
}

// Directory destino de la importación.
type Directory interface {
	CreateCustomer(ctx context.Context, accountID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	CreateProduct(ctx context.Context, accountID string, in dto.CreateProductRequest) (*dto.ProductResponse, error)
}

// Result conteo de una importación.
type Result struct {
	Imported int
	Skipped  int // filas sin nombre
}

// Latin1Reader convierte a UTF-8 un CSV exportado en ISO-8859-1 (hojas de
// cálculo antiguas). El símbolo ₹ no existe en Latin-1: las tarifas de esos
// archivos vienen sin símbolo.
func Latin1Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
}

// ReadCustomers decodifica el CSV de clientes (con cabecera).
func ReadCustomers(r io.Reader) ([]CustomerRow, error) {
	var rows []CustomerRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("catalog: leer clientes: %w", err)
	}
	return rows, nil
}

// ReadProducts decodifica el CSV de productos (con cabecera).
func ReadProducts(r io.Reader) ([]ProductRow, error) {
	var rows []ProductRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("catalog: leer productos: %w", err)
	}
	return rows, nil
}

// ImportCustomers carga el CSV de clientes en el directorio de la cuenta.
func ImportCustomers(ctx context.Context, dir Directory, accountID string, r io.Reader) (Result, error) {
	rows, err := ReadCustomers(r)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			res.Skipped++
			continue
		}
		_, err := dir.CreateCustomer(ctx, accountID, dto.CreateCustomerRequest{
			Name:              row.Name,
			TaxRegistrationNo: row.TaxRegistrationNo,
			Address:           row.Address,
			Phone:             row.Phone,
		})
		if err != nil {
			return res, fmt.Errorf("catalog: cliente fila %d: %w", i+2, err)
		}
		res.Imported++
	}
	return res, nil
}

// ImportProducts carga el CSV de productos en el directorio de la cuenta.
func ImportProducts(ctx context.Context, dir Directory, accountID string, r io.Reader) (Result, error) {
	rows, err := ReadProducts(r)
	if err != nil {
		return Result{}, err
	}
	var res Result
	for i, row := range rows {
		if strings.TrimSpace(row.Name) == "" {
			res.Skipped++
			continue
		}
		_, err := dir.CreateProduct(ctx, accountID, dto.CreateProductRequest{
			Name:    row.Name,
			Rate:    row.Rate,
			TaxCode: row.TaxCode,
			Unit:    row.Unit,
		})
		if err != nil {
			return res, fmt.Errorf("catalog: producto fila %d: %w", i+2, err)
		}
		res.Imported++
	}
	return res, nil
}

// WriteProducts exporta productos como CSV (misma cabecera que ReadProducts).
func WriteProducts(w io.Writer, products []*dto.ProductResponse) error {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			Name:    p.Name,
			Rate:    p.Rate.StringFixed(2),
			TaxCode: p.TaxCode,
			Unit:    p.Unit,
		})
	}
	return gocsv.Marshal(rows, w)
}
