package nfe

import "strings"

// ============================================================================
// Implementação de Documento sobre o XML parseado
// ============================================================================

// Texto do "frete por conta" de acordo com o modFrete.
var modalidadesFrete = map[string]string{
	"0": "Emitente",
	"1": "Destinatário",
	"2": "Terceiros",
	"3": "Próprio, por conta do remetente",
	"4": "Próprio, por conta do destinatário",
	"9": "Sem frete",
}

type documento struct {
	inf  infNFe
	prot *protNFe
}

func newDocumento(inf infNFe, prot *protNFe) *documento {
	return &documento{inf: inf, prot: prot}
}

func (d *documento) TipoOperacao() string {
	return strings.TrimSpace(d.inf.Ide.TpNF)
}

func (d *documento) NaturezaOperacao() string {
	return strings.TrimSpace(d.inf.Ide.NatOp)
}

func (d *documento) NrNota() string {
	return strings.TrimSpace(d.inf.Ide.NNF)
}

func (d *documento) Serie() string {
	return strings.TrimSpace(d.inf.Ide.Serie)
}

func (d *documento) Chave() string {
	if d.prot != nil && d.prot.InfProt.ChNFe != "" {
		return onlyDigits(d.prot.InfProt.ChNFe)
	}
	// tenta extrair do Id (NFe + chave)
	return onlyDigits(extractChave(d.inf.ID))
}

func (d *documento) Protocolo() string {
	if d.prot == nil {
		return ""
	}
	return strings.TrimSpace(d.prot.InfProt.NProt)
}

func (d *documento) DataHoraRecebimento() string {
	if d.prot == nil {
		return ""
	}
	return strings.TrimSpace(d.prot.InfProt.DhRecb)
}

// DataEmissao devolve dhEmi (4.00) ou dEmi (3.10) bruto; a formatação de
// exibição fica por conta do consumidor.
func (d *documento) DataEmissao() string {
	if v := strings.TrimSpace(d.inf.Ide.DhEmi); v != "" {
		return v
	}
	return strings.TrimSpace(d.inf.Ide.DEmi)
}

func (d *documento) DataEntradaSaida() string {
	if v := strings.TrimSpace(d.inf.Ide.DhSaiEnt); v != "" {
		return v
	}
	return strings.TrimSpace(d.inf.Ide.DSaiEnt)
}

func (d *documento) Emitente() Entidade {
	e := d.inf.Emit
	doc := e.CNPJ
	if doc == "" {
		doc = e.CPF
	}
	telefone := ""
	if e.Ender != nil {
		telefone = e.Ender.Fone
	}
	return &entidade{
		nome:      strings.TrimSpace(e.XNome),
		fantasia:  strings.TrimSpace(e.XFant),
		ie:        strings.TrimSpace(e.IE),
		ieST:      strings.TrimSpace(e.IEST),
		im:        strings.TrimSpace(e.IM),
		inscricao: onlyDigits(doc),
		telefone:  strings.TrimSpace(telefone),
		endereco:  enderecoDe(e.Ender),
	}
}

func (d *documento) Destinatario() Entidade {
	if d.inf.Dest == nil {
		return nil
	}
	e := d.inf.Dest
	doc := e.CNPJ
	if doc == "" {
		doc = e.CPF
	}
	telefone := ""
	if e.Ender != nil {
		telefone = e.Ender.Fone
	}
	return &entidade{
		nome:      strings.TrimSpace(e.XNome),
		ie:        strings.TrimSpace(e.IE),
		inscricao: onlyDigits(doc),
		telefone:  strings.TrimSpace(telefone),
		endereco:  enderecoDe(e.Ender),
	}
}

func (d *documento) Transportador() Entidade {
	if d.inf.Transp == nil || d.inf.Transp.Transporta == nil {
		return nil
	}
	t := d.inf.Transp.Transporta
	doc := t.CNPJ
	if doc == "" {
		doc = t.CPF
	}
	return &entidade{
		nome:      strings.TrimSpace(t.XNome),
		ie:        strings.TrimSpace(t.IE),
		inscricao: onlyDigits(doc),
		endereco: &endereco{
			logradouro: strings.TrimSpace(t.XEnder),
			municipio:  strings.TrimSpace(t.XMun),
			uf:         strings.TrimSpace(t.UF),
		},
	}
}

func (d *documento) Total() Total {
	return &totalNota{tot: d.inf.Total.ICMSTot}
}

func (d *documento) InformacoesFisco() string {
	if d.inf.InfAdic == nil {
		return ""
	}
	return strings.TrimSpace(d.inf.InfAdic.InfAdFisco)
}

func (d *documento) InformacoesComplementares() string {
	if d.inf.InfAdic == nil {
		return ""
	}
	return strings.TrimSpace(d.inf.InfAdic.InfCpl)
}

func (d *documento) NrObservacoes() int {
	if d.inf.InfAdic == nil {
		return 0
	}
	return len(d.inf.InfAdic.ObsCont)
}

func (d *documento) Observacao(i int) Observacao {
	if d.inf.InfAdic == nil || i < 1 || i > len(d.inf.InfAdic.ObsCont) {
		return nil
	}
	return observacao{obs: d.inf.InfAdic.ObsCont[i-1]}
}

func (d *documento) ModalidadeFrete() string {
	if d.inf.Transp == nil {
		return ""
	}
	return strings.TrimSpace(d.inf.Transp.ModFrete)
}

func (d *documento) ModalidadeFreteTexto() string {
	return modalidadesFrete[d.ModalidadeFrete()]
}

func (d *documento) NrItens() int {
	return len(d.inf.Det)
}

func (d *documento) Item(i int) Item {
	if i < 1 || i > len(d.inf.Det) {
		return nil
	}
	return newItem(d.inf.Det[i-1])
}

func (d *documento) Cobranca() Cobranca {
	if d.inf.Cobr == nil {
		return nil
	}
	return cobranca{dups: d.inf.Cobr.Duplicatas}
}

func (d *documento) Transporte() Transporte {
	if d.inf.Transp == nil {
		return nil
	}
	return transporte{t: d.inf.Transp}
}

func (d *documento) Servico() Servico {
	if d.inf.Total.ISSQNTot == nil {
		return nil
	}
	return servico{s: d.inf.Total.ISSQNTot}
}

// ------------------------------- Entidade -----------------------------------

type entidade struct {
	nome, fantasia, ie, ieST, im, inscricao, telefone string

	endereco *endereco
}

func (e *entidade) Nome() string                { return e.nome }
func (e *entidade) Fantasia() string            { return e.fantasia }
func (e *entidade) InscricaoEstadual() string   { return e.ie }
func (e *entidade) InscricaoEstadualST() string { return e.ieST }
func (e *entidade) InscricaoMunicipal() string  { return e.im }
func (e *entidade) InscricaoNacional() string   { return e.inscricao }
func (e *entidade) Telefone() string            { return e.telefone }

func (e *entidade) Endereco() Endereco {
	if e.endereco == nil {
		return nil
	}
	return e.endereco
}

type endereco struct {
	logradouro, numero, complemento, bairro, municipio, cep, uf string
}

func enderecoDe(x *enderXML) *endereco {
	if x == nil {
		return nil
	}
	return &endereco{
		logradouro:  strings.TrimSpace(x.XLgr),
		numero:      strings.TrimSpace(x.Nro),
		complemento: strings.TrimSpace(x.XCpl),
		bairro:      strings.TrimSpace(x.XBairro),
		municipio:   strings.TrimSpace(x.XMun),
		cep:         strings.TrimSpace(x.CEP),
		uf:          strings.TrimSpace(x.UF),
	}
}

func (e *endereco) Logradouro() string  { return e.logradouro }
func (e *endereco) Numero() string      { return e.numero }
func (e *endereco) Complemento() string { return e.complemento }
func (e *endereco) Bairro() string      { return e.bairro }
func (e *endereco) Municipio() string   { return e.municipio }
func (e *endereco) CEP() string         { return e.cep }
func (e *endereco) UF() string          { return e.uf }

// -------------------------------- Totais ------------------------------------

type totalNota struct {
	tot icmsTot
}

func (t *totalNota) BaseCalculoIcms() float64     { return parseFloat(t.tot.VBC) }
func (t *totalNota) ValorIcms() float64           { return parseFloat(t.tot.VICMS) }
func (t *totalNota) BaseCalculoIcmsST() float64   { return parseFloat(t.tot.VBCST) }
func (t *totalNota) ValorIcmsST() float64         { return parseFloat(t.tot.VST) }
func (t *totalNota) ValorTotalTributos() float64  { return parseFloat(t.tot.VTotTrib) }
func (t *totalNota) ValorProdutos() float64       { return parseFloat(t.tot.VProd) }
func (t *totalNota) ValorFrete() float64          { return parseFloat(t.tot.VFrete) }
func (t *totalNota) ValorSeguro() float64         { return parseFloat(t.tot.VSeg) }
func (t *totalNota) ValorDesconto() float64       { return parseFloat(t.tot.VDesc) }
func (t *totalNota) ValorOutrasDespesas() float64 { return parseFloat(t.tot.VOutro) }
func (t *totalNota) ValorIPI() float64            { return parseFloat(t.tot.VIPI) }
func (t *totalNota) ValorNota() float64           { return parseFloat(t.tot.VNF) }

// --------------------------------- Itens ------------------------------------

type itemNota struct {
	codigo, descricao, ncm, origem, cst, cfop, unidade string

	quantidade, valorUnitario, valorDesconto, valorProdutos float64
	baseCalculoIcms, valorIcms, valorIPI                    float64
	porcentagemIcms, porcentagemIPI                         float64
}

func newItem(d det) *itemNota {
	it := &itemNota{
		codigo:        strings.TrimSpace(d.Prod.CProd),
		descricao:     strings.TrimSpace(d.Prod.XProd),
		ncm:           strings.TrimSpace(d.Prod.NCM),
		cfop:          strings.TrimSpace(d.Prod.CFOP),
		unidade:       strings.TrimSpace(d.Prod.UCom),
		quantidade:    parseFloat(d.Prod.QCom),
		valorUnitario: parseFloat(d.Prod.VUnCom),
		valorDesconto: parseFloat(d.Prod.VDesc),
		valorProdutos: parseFloat(d.Prod.VProd),
	}

	if icms := primeiroICMS(d.Imposto.ICMS); icms != nil {
		it.origem = strings.TrimSpace(icms.Orig)
		it.cst = strings.TrimSpace(icms.CST)
		if it.cst == "" {
			it.cst = strings.TrimSpace(icms.CSOSN)
		}
		it.baseCalculoIcms = parseFloat(icms.VBC)
		it.valorIcms = parseFloat(icms.VICMS)
		it.porcentagemIcms = parseFloat(icms.PICMS)
	}

	if d.Imposto.IPI != nil && d.Imposto.IPI.Trib != nil {
		it.valorIPI = parseFloat(d.Imposto.IPI.Trib.VIPI)
		it.porcentagemIPI = parseFloat(d.Imposto.IPI.Trib.PIPI)
	}

	return it
}

// primeiroICMS devolve a primeira variante presente no grupo ICMS.
func primeiroICMS(g icmsGroup) *icmsCampos {
	variantes := []*icmsCampos{
		g.ICMS00, g.ICMS10, g.ICMS20, g.ICMS30, g.ICMS40, g.ICMS51,
		g.ICMS60, g.ICMS70, g.ICMS90, g.ICMSPart,
		g.ICMSSN101, g.ICMSSN102, g.ICMSSN201, g.ICMSSN202,
		g.ICMSSN500, g.ICMSSN900,
	}
	for _, v := range variantes {
		if v != nil {
			return v
		}
	}
	return nil
}

func (it *itemNota) Codigo() string               { return it.codigo }
func (it *itemNota) Descricao() string            { return it.descricao }
func (it *itemNota) NCM() string                  { return it.ncm }
func (it *itemNota) Origem() string               { return it.origem }
func (it *itemNota) CST() string                  { return it.cst }
func (it *itemNota) CFOP() string                 { return it.cfop }
func (it *itemNota) UnidadeComercial() string     { return it.unidade }
func (it *itemNota) QuantidadeComercial() float64 { return it.quantidade }
func (it *itemNota) ValorUnitario() float64       { return it.valorUnitario }
func (it *itemNota) ValorDesconto() float64       { return it.valorDesconto }
func (it *itemNota) ValorProdutos() float64       { return it.valorProdutos }
func (it *itemNota) BaseCalculoIcms() float64     { return it.baseCalculoIcms }
func (it *itemNota) ValorIcms() float64           { return it.valorIcms }
func (it *itemNota) ValorIPI() float64            { return it.valorIPI }
func (it *itemNota) PorcentagemIcms() float64     { return it.porcentagemIcms }
func (it *itemNota) PorcentagemIPI() float64      { return it.porcentagemIPI }

// ------------------------------- Cobrança -----------------------------------

type cobranca struct {
	dups []dup
}

func (c cobranca) NrDuplicatas() int { return len(c.dups) }

func (c cobranca) Duplicata(i int) Duplicata {
	if i < 1 || i > len(c.dups) {
		return nil
	}
	return duplicata{d: c.dups[i-1]}
}

type duplicata struct {
	d dup
}

func (d duplicata) NumeroDuplicata() string     { return strings.TrimSpace(d.d.Numero) }
func (d duplicata) VencimentoDuplicata() string { return strings.TrimSpace(d.d.DVenc) }
func (d duplicata) ValorDuplicata() float64     { return parseFloat(d.d.Valor) }

// ------------------------------ Observações ---------------------------------

type observacao struct {
	obs obsCont
}

func (o observacao) Texto() string { return strings.TrimSpace(o.obs.XTexto) }

// ------------------------------- Transporte ---------------------------------

type transporte struct {
	t *transp
}

func (t transporte) Volume() Volume {
	if len(t.t.Vol) == 0 {
		return nil
	}
	return volume{v: t.t.Vol[0]}
}

func (t transporte) Veiculo() Veiculo {
	if t.t.VeicTransp == nil {
		return nil
	}
	return veiculo{v: t.t.VeicTransp}
}

type volume struct {
	v vol
}

func (v volume) QuantidadeVolumes() float64 { return parseFloat(v.v.QVol) }
func (v volume) Especie() string            { return strings.TrimSpace(v.v.Esp) }
func (v volume) Marca() string              { return strings.TrimSpace(v.v.Marca) }
func (v volume) Numeracao() string          { return strings.TrimSpace(v.v.NVol) }
func (v volume) PesoBruto() float64         { return parseFloat(v.v.PesoB) }
func (v volume) PesoLiquido() float64       { return parseFloat(v.v.PesoL) }

type veiculo struct {
	v *veicTransp
}

func (v veiculo) Placa() string { return strings.TrimSpace(v.v.Placa) }
func (v veiculo) UF() string    { return strings.TrimSpace(v.v.UF) }
func (v veiculo) ANTT() string  { return strings.TrimSpace(v.v.RNTC) }

// -------------------------------- Serviço -----------------------------------

type servico struct {
	s *issqnTot
}

func (s servico) ValorTotalServicoNaoIncidente() float64 { return parseFloat(s.s.VServ) }
func (s servico) ValorTotalISS() float64                 { return parseFloat(s.s.VISS) }
func (s servico) BaseCalculo() float64                   { return parseFloat(s.s.VBC) }
