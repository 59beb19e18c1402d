// Package danfe gera o DANFE (Documento Auxiliar da Nota Fiscal Eletrônica)
// em HTML a partir de uma NF-e já parseada (nfe.Documento) ou do XML bruto.
package danfe

import (
	"github.com/aymerick/raymond"

	"github.com/BarretoDiego/djf-danfe/nfe"
)

// Template handlebars parseado uma única vez no carregamento do pacote.
var template = raymond.MustParse(templateHTML)

// Danfe é o modelo de um DANFE amarrado a um documento de origem.
type Danfe struct {
	doc nfe.Documento
}

// FromNFe cria o DANFE a partir de um documento já parseado. Documento nil
// produz um DANFE que rende HTML vazio.
func FromNFe(doc nfe.Documento) *Danfe {
	return &Danfe{doc: doc}
}

// FromXML cria o DANFE a partir do XML bruto da NF-e. XML vazio ou não
// reconhecido produz um DANFE que rende HTML vazio.
func FromXML(xml []byte) *Danfe {
	if len(xml) == 0 {
		return &Danfe{}
	}
	doc, err := nfe.Parse(xml)
	if err != nil {
		return &Danfe{}
	}
	return &Danfe{doc: doc}
}

// TemplateData devolve o objeto de apresentação do documento (nil para
// documento ausente).
func (d *Danfe) TemplateData() map[string]any {
	return TemplateData(d.doc)
}

// ToHTML rende o template do DANFE. Devolve string vazia (sem erro) quando
// não há documento para renderizar.
func (d *Danfe) ToHTML() (string, error) {
	dados := TemplateData(d.doc)
	if dados == nil {
		return "", nil
	}
	return template.Exec(dados)
}
