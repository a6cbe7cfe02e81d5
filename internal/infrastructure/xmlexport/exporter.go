package xmlexport

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appbilling "github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// Namespace del documento exportado.
const Namespace = "urn:invoicegen:document:1"

// Exporter serializa documentos a XML y calcula su huella SHA-256 sobre la
// forma canónica (C14N 1.0), de modo que diferencias de orden de atributos o
// de forma de etiquetas vacías no cambian la huella.
type Exporter struct{}

var _ appbilling.DocumentExporter = (*Exporter)(nil)

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export devuelve el XML (indentado) y su huella.
func (e *Exporter) Export(doc *entity.Document) ([]byte, string, error) {
	if doc == nil {
		return nil, "", fmt.Errorf("xmlexport: documento nil")
	}
	xmlBytes, err := Build(doc).WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xmlexport: serializar: %w", err)
	}
	fp, err := Fingerprint(xmlBytes)
	if err != nil {
		return nil, "", err
	}
	return xmlBytes, fp, nil
}

// Build arma el árbol XML del documento.
func Build(doc *entity.Document) *etree.Document {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("Document")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("id", doc.ID)
	root.CreateAttr("number", doc.Number)
	root.CreateAttr("kind", string(doc.Kind))

	root.CreateElement("CreatedAt").SetText(doc.CreatedAt.UTC().Format(time.RFC3339))
	root.CreateElement("Customer").SetText(doc.CustomerName)

	if len(doc.Fields) > 0 {
		fields := root.CreateElement("Fields")
		for _, k := range sortedKeys(doc.Fields) {
			f := fields.CreateElement("Field")
			f.CreateAttr("key", k)
			f.SetText(doc.Fields[k])
		}
	}

	items := root.CreateElement("Items")
	for i, it := range doc.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("position", strconv.Itoa(i+1))
		el.CreateAttr("id", it.ID)
		el.CreateElement("Label").SetText(it.Label)
		el.CreateElement("Quantity").SetText(it.Quantity.String())
		el.CreateElement("UnitMeasure").SetText(it.UnitMeasure.String())
		el.CreateElement("Rate").SetText(it.Rate.StringFixed(2))
		el.CreateElement("Amount").SetText(it.Amount.StringFixed(2))
		if len(it.Attributes) > 0 {
			attrs := el.CreateElement("Attributes")
			for _, k := range sortedKeys(it.Attributes) {
				a := attrs.CreateElement("Attribute")
				a.CreateAttr("key", k)
				a.SetText(it.Attributes[k])
			}
		}
	}

	totals := root.CreateElement("Totals")
	totals.CreateAttr("currency", "INR")
	totals.CreateElement("Subtotal").SetText(doc.Totals.Subtotal.StringFixed(2))
	for _, c := range doc.Totals.Charges {
		el := totals.CreateElement("Charge")
		el.CreateAttr("name", c.Name)
		el.CreateAttr("percent", c.Percent.String())
		el.SetText(c.Amount.StringFixed(2))
	}
	totals.CreateElement("GrandTotal").SetText(doc.Totals.GrandTotal.StringFixed(2))

	author := root.CreateElement("Author")
	author.CreateAttr("account", doc.Author.AccountID)
	author.CreateAttr("premium", strconv.FormatBool(doc.Author.Premium))
	author.SetText(doc.Author.DisplayName)

	x.Indent(2)
	return x
}

// Fingerprint SHA-256 (hex) de la forma canónica del XML.
func Fingerprint(xmlBytes []byte) (string, error) {
	canonical, err := canonicalize(xmlBytes)
	if err != nil {
		return "", fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
