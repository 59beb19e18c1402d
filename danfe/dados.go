package danfe

import (
	"strings"

	"github.com/BarretoDiego/djf-danfe/internal/format"
	"github.com/BarretoDiego/djf-danfe/nfe"
)

// dadosEntidade projeta os dados cadastrais da entidade. Entidade ausente
// contribui com um mapa vazio (sem chaves), nunca com nil.
func dadosEntidade(ent nfe.Entidade) map[string]any {
	if ent == nil {
		return map[string]any{}
	}
	return map[string]any{
		"nome":                ent.Nome(),
		"fantasia":            ent.Fantasia(),
		"ie":                  ent.InscricaoEstadual(),
		"ie_st":               ent.InscricaoEstadualST(),
		"inscricao_municipal": ent.InscricaoMunicipal(),
		"inscricao_nacional":  format.InscricaoNacional(ent.InscricaoNacional()),
		"telefone":            ent.Telefone(),
	}
}

func dadosEndereco(end nfe.Endereco) map[string]any {
	if end == nil {
		return map[string]any{}
	}
	return map[string]any{
		"endereco":    end.Logradouro(),
		"numero":      end.Numero(),
		"complemento": end.Complemento(),
		"bairro":      end.Bairro(),
		"municipio":   end.Municipio(),
		"cep":         end.CEP(),
		"uf":          end.UF(),
	}
}

// entidadeCompleta junta dados cadastrais e endereço em um único registro.
func entidadeCompleta(ent nfe.Entidade) map[string]any {
	dados := dadosEntidade(ent)

	var end nfe.Endereco
	if ent != nil {
		end = ent.Endereco()
	}
	for k, v := range dadosEndereco(end) {
		dados[k] = v
	}
	return dados
}

// itens projeta as linhas de produto/serviço na ordem 1..NrItens do documento.
func itens(doc nfe.Documento) []map[string]any {
	out := []map[string]any{}
	for i := 1; i <= doc.NrItens(); i++ {
		row := doc.Item(i)
		if row == nil {
			continue
		}
		out = append(out, map[string]any{
			"codigo":    row.Codigo(),
			"descricao": row.Descricao(),
			"ncm":       row.NCM(),
			// origem+CST concatenados, não somados
			"cst":              row.Origem() + row.CST(),
			"cfop":             row.CFOP(),
			"unidade":          row.UnidadeComercial(),
			"quantidade":       format.Moeda(row.QuantidadeComercial(), 4),
			"valor":            format.Moeda(row.ValorUnitario(), 4),
			"desconto":         format.Moeda(row.ValorDesconto(), 4),
			"total":            format.Moeda(row.ValorProdutos(), 4),
			"base_calculo":     format.Moeda(row.BaseCalculoIcms(), 4),
			"icms":             format.Moeda(row.ValorIcms(), 4),
			"ipi":              format.Moeda(row.ValorIPI(), 4),
			"porcentagem_icms": format.Moeda(row.PorcentagemIcms(), 2),
			"porcentagem_ipi":  format.Moeda(row.PorcentagemIPI(), 2),
		})
	}
	return out
}

// duplicatas projeta as duplicatas da cobrança; sem cobrança (ou com zero
// duplicatas) devolve sequência vazia.
func duplicatas(doc nfe.Documento) []map[string]any {
	dups := []map[string]any{}

	cob := doc.Cobranca()
	if cob == nil || cob.NrDuplicatas() == 0 {
		return dups
	}

	for i := 1; i <= cob.NrDuplicatas(); i++ {
		d := cob.Duplicata(i)
		if d == nil {
			continue
		}
		dups = append(dups, map[string]any{
			"numero":     d.NumeroDuplicata(),
			"vencimento": format.Data(d.VencimentoDuplicata()),
			"valor":      format.Moeda(d.ValorDuplicata(), 2),
		})
	}
	return dups
}

// observacoes concatena as observações, cada uma prefixada com quebra de linha.
func observacoes(doc nfe.Documento) string {
	var result strings.Builder
	for i := 1; i <= doc.NrObservacoes(); i++ {
		obs := doc.Observacao(i)
		if obs == nil {
			continue
		}
		result.WriteString("\n")
		result.WriteString(obs.Texto())
	}
	return result.String()
}

// TemplateData monta o objeto de apresentação consumido pelo template do
// DANFE. Devolve nil para documento ausente ou fora do contrato mínimo.
// Blocos opcionais (volume, veículo, serviço) só entram no mapa quando o
// sub-registro existe no documento.
func TemplateData(doc nfe.Documento) map[string]any {
	if doc == nil {
		return nil
	}
	tot := doc.Total()
	if tot == nil {
		return nil
	}

	recebimento := doc.DataHoraRecebimento()

	data := map[string]any{
		"operacao":       doc.TipoOperacao(),
		"natureza":       doc.NaturezaOperacao(),
		"numero":         doc.NrNota(),
		"serie":          doc.Serie(),
		"chave":          format.Chave(doc.Chave()),
		"protocolo":      doc.Protocolo(),
		"data_protocolo": format.Data(recebimento) + " " + format.Hora(recebimento),

		"destinatario": entidadeCompleta(doc.Destinatario()),
		"emitente":     entidadeCompleta(doc.Emitente()),

		"data_emissao": format.Data(doc.DataEmissao()),
		"data_saida":   format.Data(doc.DataEntradaSaida()),

		"base_calculo_icms":    format.Moeda(tot.BaseCalculoIcms(), 2),
		"imposto_icms":         format.Moeda(tot.ValorIcms(), 2),
		"base_calculo_icms_st": format.Moeda(tot.BaseCalculoIcmsST(), 2),
		"imposto_icms_st":      format.Moeda(tot.ValorIcmsST(), 2),
		"imposto_tributos":     format.Moeda(tot.ValorTotalTributos(), 2),
		"total_produtos":       format.Moeda(tot.ValorProdutos(), 2),
		"total_frete":          format.Moeda(tot.ValorFrete(), 2),
		"total_seguro":         format.Moeda(tot.ValorSeguro(), 2),
		"total_desconto":       format.Moeda(tot.ValorDesconto(), 2),
		"total_despesas":       format.Moeda(tot.ValorOutrasDespesas(), 2),
		"total_ipi":            format.Moeda(tot.ValorIPI(), 2),
		"total_nota":           format.Moeda(tot.ValorNota(), 2),

		"transportador": entidadeCompleta(doc.Transportador()),

		"informacoes_fisco":          doc.InformacoesFisco(),
		"informacoes_complementares": doc.InformacoesComplementares(),
		"observacao":                 observacoes(doc),

		"modalidade_frete":       doc.ModalidadeFrete(),
		"modalidade_frete_texto": doc.ModalidadeFreteTexto(),

		"itens":      itens(doc),
		"duplicatas": duplicatas(doc),
	}

	if tr := doc.Transporte(); tr != nil {
		if v := tr.Volume(); v != nil {
			data["volume_quantidade"] = format.Moeda(v.QuantidadeVolumes(), 4)
			data["volume_especie"] = v.Especie()
			data["volume_marca"] = v.Marca()
			data["volume_numeracao"] = v.Numeracao()
			data["volume_pesoBruto"] = format.Moeda(v.PesoBruto(), 4)
			data["volume_pesoLiquido"] = format.Moeda(v.PesoLiquido(), 4)
		}

		if v := tr.Veiculo(); v != nil {
			data["veiculo_placa"] = v.Placa()
			data["veiculo_placa_uf"] = v.UF()
			data["veiculo_antt"] = v.ANTT()
		}
	}

	if s := doc.Servico(); s != nil {
		data["total_servico"] = format.Moeda(s.ValorTotalServicoNaoIncidente(), 4)
		data["total_issqn"] = format.Moeda(s.ValorTotalISS(), 4)
		data["base_calculo_issqn"] = format.Moeda(s.BaseCalculo(), 4)
	}

	return data
}
