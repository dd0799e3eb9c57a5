// Package seed importa empresas y obligaciones accesorias desde un XML de carga inicial.
//
// Formato esperado (atributos en portugués, como las exportaciones contables de origen):
//
//	<?xml version="1.0" encoding="ISO-8859-1"?>
//	<registro>
//	  <empresa nome="..." cnpj="..." endereco="..." email="..." telefone="...">
//	    <obrigacao nome="DCTF" periodicidade="Mensal"/>
//	  </empresa>
//	</registro>
package seed

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Document raíz del XML.
type Document struct {
	XMLName   xml.Name        `xml:"registro"`
	Companies []CompanyRecord `xml:"empresa"`
}

// CompanyRecord una empresa con sus obligaciones anidadas.
type CompanyRecord struct {
	Name        string             `xml:"nome,attr"`
	TaxID       string             `xml:"cnpj,attr"`
	Address     string             `xml:"endereco,attr"`
	Email       string             `xml:"email,attr"`
	Phone       string             `xml:"telefone,attr"`
	Obligations []ObligationRecord `xml:"obrigacao"`
}

// ObligationRecord obligación accesoria de una empresa.
type ObligationRecord struct {
	Name        string `xml:"nome,attr"`
	Periodicity string `xml:"periodicidade,attr"`
}

// Parse decodifica el XML. Soporta UTF-8 e ISO-8859-1 (Latin-1).
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	for i := range doc.Companies {
		c := &doc.Companies[i]
		c.Name = strings.TrimSpace(c.Name)
		c.TaxID = strings.TrimSpace(c.TaxID)
		c.Address = strings.TrimSpace(c.Address)
		c.Email = strings.TrimSpace(c.Email)
		c.Phone = strings.TrimSpace(c.Phone)
		for j := range c.Obligations {
			c.Obligations[j].Name = strings.TrimSpace(c.Obligations[j].Name)
			c.Obligations[j].Periodicity = strings.TrimSpace(c.Obligations[j].Periodicity)
		}
	}
	return &doc, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToUpper(charset) {
	case "ISO-8859-1", "ISO8859-1", "LATIN1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "WINDOWS-1252", "CP1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "UTF-8", "":
		return input, nil
	}
	return nil, fmt.Errorf("charset %q no soportado", charset)
}
