// import_catalog carga directorios de clientes y productos desde CSV en el
// almacenamiento configurado (STORE_DRIVER) para una cuenta.
//
// Uso: go run ./cmd/import_catalog -account acc-1 -customers clientes.csv -products productos.csv
// Con -latin1 los archivos se leen como ISO-8859-1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/infrastructure/catalog"
	"github.com/jhoicas/invoicegen/internal/infrastructure/persistence"
	"github.com/jhoicas/invoicegen/pkg/config"
	"github.com/jhoicas/invoicegen/pkg/logger"
)

func main() {
	account := flag.String("account", "", "cuenta destino (account_id)")
	customersPath := flag.String("customers", "", "CSV de clientes: name,tax_registration_no,address,phone")
	productsPath := flag.String("products", "", "CSV de productos: name,rate,tax_code,unit")
	latin1 := flag.Bool("latin1", false, "leer los CSV como ISO-8859-1")
	flag.Parse()

	if *account == "" || (*customersPath == "" && *productsPath == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File})

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg.Store, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	dir := billing.NewDirectoryUseCase(stores.Directory, billing.NewWorkspaceRegistry())

	imports := []struct {
		name string
		path string
		run  func(context.Context, catalog.Directory, string, io.Reader) (catalog.Result, error)
	}{
		{"clientes", *customersPath, catalog.ImportCustomers},
		{"productos", *productsPath, catalog.ImportProducts},
	}
	failed := false
	for _, imp := range imports {
		if imp.path == "" {
			continue
		}
		res, err := importFile(ctx, dir, *account, imp.path, *latin1, imp.run)
		if err != nil {
			log.Error().Err(err).Str("file", imp.path).Msg("importar " + imp.name)
			failed = true
			continue
		}
		log.Info().
			Str("account", *account).
			Str("file", imp.path).
			Int("imported", res.Imported).
			Int("skipped", res.Skipped).
			Msg(imp.name + " importados")
	}
	if failed {
		stores.Close()
		os.Exit(1)
	}
}

func importFile(
	ctx context.Context,
	dir catalog.Directory,
	account, path string,
	latin1 bool,
	run func(context.Context, catalog.Directory, string, io.Reader) (catalog.Result, error),
) (catalog.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Result{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if latin1 {
		r = catalog.Latin1Reader(f)
	}
	return run(ctx, dir, account, r)
}
