// Package nfe expõe uma NF-e já parseada como uma superfície de leitura
// (Documento e sub-registros). O consumidor nunca vê o XML: só acessores
// tipados sobre os campos fiscais.
package nfe

// Documento é a superfície de acesso de uma NF-e. Sub-registros opcionais
// (Destinatario, Transportador, Cobranca, Transporte, Servico) devolvem nil
// quando ausentes no documento de origem.
type Documento interface {
	TipoOperacao() string
	NaturezaOperacao() string
	NrNota() string
	Serie() string
	Chave() string
	Protocolo() string
	DataHoraRecebimento() string
	DataEmissao() string
	DataEntradaSaida() string

	Emitente() Entidade
	Destinatario() Entidade
	Transportador() Entidade

	// Total nunca é nil em um documento parseado válido.
	Total() Total

	InformacoesFisco() string
	InformacoesComplementares() string
	NrObservacoes() int
	Observacao(i int) Observacao

	ModalidadeFrete() string
	ModalidadeFreteTexto() string

	NrItens() int
	Item(i int) Item

	Cobranca() Cobranca
	Transporte() Transporte
	Servico() Servico
}

// Entidade é uma parte da operação (emitente, destinatário ou transportador).
type Entidade interface {
	Nome() string
	Fantasia() string
	InscricaoEstadual() string
	InscricaoEstadualST() string
	InscricaoMunicipal() string
	InscricaoNacional() string
	Telefone() string
	Endereco() Endereco
}

type Endereco interface {
	Logradouro() string
	Numero() string
	Complemento() string
	Bairro() string
	Municipio() string
	CEP() string
	UF() string
}

// Total agrega os totais da nota (grupo ICMSTot).
type Total interface {
	BaseCalculoIcms() float64
	ValorIcms() float64
	BaseCalculoIcmsST() float64
	ValorIcmsST() float64
	ValorTotalTributos() float64
	ValorProdutos() float64
	ValorFrete() float64
	ValorSeguro() float64
	ValorDesconto() float64
	ValorOutrasDespesas() float64
	ValorIPI() float64
	ValorNota() float64
}

// Item é uma linha de produto/serviço (grupo det). Índices 1..NrItens.
type Item interface {
	Codigo() string
	Descricao() string
	NCM() string
	Origem() string
	CST() string
	CFOP() string
	UnidadeComercial() string
	QuantidadeComercial() float64
	ValorUnitario() float64
	ValorDesconto() float64
	ValorProdutos() float64
	BaseCalculoIcms() float64
	ValorIcms() float64
	ValorIPI() float64
	PorcentagemIcms() float64
	PorcentagemIPI() float64
}

// Cobranca agrupa as duplicatas da fatura. Índices 1..NrDuplicatas.
type Cobranca interface {
	NrDuplicatas() int
	Duplicata(i int) Duplicata
}

type Duplicata interface {
	NumeroDuplicata() string
	VencimentoDuplicata() string
	ValorDuplicata() float64
}

// Observacao é uma observação de contribuinte (obsCont). Índices 1..NrObservacoes.
type Observacao interface {
	Texto() string
}

// Transporte dá acesso aos sub-registros opcionais de volume e veículo.
type Transporte interface {
	Volume() Volume
	Veiculo() Veiculo
}

type Volume interface {
	QuantidadeVolumes() float64
	Especie() string
	Marca() string
	Numeracao() string
	PesoBruto() float64
	PesoLiquido() float64
}

type Veiculo interface {
	Placa() string
	UF() string
	ANTT() string
}

// Servico agrega os totais de ISSQN (grupo ISSQNtot).
type Servico interface {
	ValorTotalServicoNaoIncidente() float64
	ValorTotalISS() float64
	BaseCalculo() float64
}
