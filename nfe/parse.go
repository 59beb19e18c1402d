package nfe

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	xsdvalidate "github.com/form3tech-oss/go-xsd-validate"
)

// ============================================================================
// Estruturas mínimas do XML da NF-e (nfeProc, NFe, infNFe, etc.)
// ============================================================================

type nfeProc struct {
	XMLName xml.Name `xml:"nfeProc"`
	NFe     nfeXML   `xml:"NFe"`
	ProtNFe *protNFe `xml:"protNFe"`
}

type protNFe struct {
	InfProt struct {
		ChNFe  string `xml:"chNFe"`
		DhRecb string `xml:"dhRecbto"`
		NProt  string `xml:"nProt"`
	} `xml:"infProt"`
}

type nfeXML struct {
	XMLName xml.Name `xml:"NFe"`
	InfNFe  infNFe   `xml:"infNFe"`
}

type infNFe struct {
	ID     string `xml:"Id,attr"`
	Versao string `xml:"versao,attr"`

	Ide     ide      `xml:"ide"`
	Emit    emit     `xml:"emit"`
	Dest    *dest    `xml:"dest"`
	Det     []det    `xml:"det"`
	Total   total    `xml:"total"`
	Transp  *transp  `xml:"transp"`
	Cobr    *cobr    `xml:"cobr"`
	InfAdic *infAdic `xml:"infAdic"`
}

type ide struct {
	Serie    string `xml:"serie"`
	NNF      string `xml:"nNF"`
	DhEmi    string `xml:"dhEmi"`    // 4.00
	DEmi     string `xml:"dEmi"`     // 3.10/antigas
	DhSaiEnt string `xml:"dhSaiEnt"` // 4.00
	DSaiEnt  string `xml:"dSaiEnt"`  // 3.10/antigas
	TpNF     string `xml:"tpNF"`
	NatOp    string `xml:"natOp"`
}

type emit struct {
	CNPJ  string    `xml:"CNPJ"`
	CPF   string    `xml:"CPF"`
	XNome string    `xml:"xNome"`
	XFant string    `xml:"xFant"`
	IE    string    `xml:"IE"`
	IEST  string    `xml:"IEST"`
	IM    string    `xml:"IM"`
	Ender *enderXML `xml:"enderEmit"`
}

type dest struct {
	CNPJ  string    `xml:"CNPJ"`
	CPF   string    `xml:"CPF"`
	XNome string    `xml:"xNome"`
	IE    string    `xml:"IE"`
	Ender *enderXML `xml:"enderDest"`
}

type enderXML struct {
	XLgr    string `xml:"xLgr"`
	Nro     string `xml:"nro"`
	XCpl    string `xml:"xCpl"`
	XBairro string `xml:"xBairro"`
	XMun    string `xml:"xMun"`
	UF      string `xml:"UF"`
	CEP     string `xml:"CEP"`
	Fone    string `xml:"fone"`
}

type transp struct {
	ModFrete   string      `xml:"modFrete"`
	Transporta *transporta `xml:"transporta"`
	VeicTransp *veicTransp `xml:"veicTransp"`
	Vol        []vol       `xml:"vol"`
}

// transporta traz o endereço achatado (xEnder/xMun/UF), diferente de
// enderEmit/enderDest.
type transporta struct {
	CNPJ   string `xml:"CNPJ"`
	CPF    string `xml:"CPF"`
	XNome  string `xml:"xNome"`
	IE     string `xml:"IE"`
	XEnder string `xml:"xEnder"`
	XMun   string `xml:"xMun"`
	UF     string `xml:"UF"`
}

type veicTransp struct {
	Placa string `xml:"placa"`
	UF    string `xml:"UF"`
	RNTC  string `xml:"RNTC"`
}

type vol struct {
	QVol  string `xml:"qVol"`
	Esp   string `xml:"esp"`
	Marca string `xml:"marca"`
	NVol  string `xml:"nVol"`
	PesoL string `xml:"pesoL"`
	PesoB string `xml:"pesoB"`
}

type total struct {
	ICMSTot  icmsTot   `xml:"ICMSTot"`
	ISSQNTot *issqnTot `xml:"ISSQNtot"`
}

type icmsTot struct {
	VBC      string `xml:"vBC"`
	VICMS    string `xml:"vICMS"`
	VBCST    string `xml:"vBCST"`
	VST      string `xml:"vST"`
	VTotTrib string `xml:"vTotTrib"`
	VProd    string `xml:"vProd"`
	VFrete   string `xml:"vFrete"`
	VSeg     string `xml:"vSeg"`
	VDesc    string `xml:"vDesc"`
	VOutro   string `xml:"vOutro"`
	VIPI     string `xml:"vIPI"`
	VNF      string `xml:"vNF"`
}

type issqnTot struct {
	VServ string `xml:"vServ"`
	VBC   string `xml:"vBC"`
	VISS  string `xml:"vISS"`
}

// ------------------------- Itens (det/prod/imposto) -------------------------

type det struct {
	NItem   string  `xml:"nItem,attr"`
	Prod    prod    `xml:"prod"`
	Imposto imposto `xml:"imposto"`
}

type prod struct {
	CProd  string `xml:"cProd"`
	XProd  string `xml:"xProd"`
	NCM    string `xml:"NCM"`
	CFOP   string `xml:"CFOP"`
	UCom   string `xml:"uCom"`
	QCom   string `xml:"qCom"`
	VUnCom string `xml:"vUnCom"`
	VProd  string `xml:"vProd"`
	VDesc  string `xml:"vDesc"`
}

type imposto struct {
	ICMS icmsGroup `xml:"ICMS"`
	IPI  *ipi      `xml:"IPI"`
}

// ICMS pode vir em vários formatos; todos compartilham o mesmo conjunto de
// campos opcionais, então um único struct cobre qualquer variante.
type icmsGroup struct {
	ICMS00    *icmsCampos `xml:"ICMS00"`
	ICMS10    *icmsCampos `xml:"ICMS10"`
	ICMS20    *icmsCampos `xml:"ICMS20"`
	ICMS30    *icmsCampos `xml:"ICMS30"`
	ICMS40    *icmsCampos `xml:"ICMS40"`
	ICMS51    *icmsCampos `xml:"ICMS51"`
	ICMS60    *icmsCampos `xml:"ICMS60"`
	ICMS70    *icmsCampos `xml:"ICMS70"`
	ICMS90    *icmsCampos `xml:"ICMS90"`
	ICMSPart  *icmsCampos `xml:"ICMSPart"`
	ICMSSN101 *icmsCampos `xml:"ICMSSN101"`
	ICMSSN102 *icmsCampos `xml:"ICMSSN102"`
	ICMSSN201 *icmsCampos `xml:"ICMSSN201"`
	ICMSSN202 *icmsCampos `xml:"ICMSSN202"`
	ICMSSN500 *icmsCampos `xml:"ICMSSN500"`
	ICMSSN900 *icmsCampos `xml:"ICMSSN900"`
}

type icmsCampos struct {
	Orig  string `xml:"orig"`
	CST   string `xml:"CST"`
	CSOSN string `xml:"CSOSN"`
	VBC   string `xml:"vBC"`
	PICMS string `xml:"pICMS"`
	VICMS string `xml:"vICMS"`
}

type ipi struct {
	Trib *ipiTrib `xml:"IPITrib"`
}

type ipiTrib struct {
	PIPI string `xml:"pIPI"`
	VIPI string `xml:"vIPI"`
}

// ---------------------------- Cobr / Duplicatas -----------------------------

type cobr struct {
	Duplicatas []dup `xml:"dup"`
}

type dup struct {
	Numero string `xml:"nDup"`
	DVenc  string `xml:"dVenc"`
	Valor  string `xml:"vDup"`
}

// ---------------------------- Dados adicionais ------------------------------

type infAdic struct {
	InfAdFisco string    `xml:"infAdFisco"`
	InfCpl     string    `xml:"infCpl"`
	ObsCont    []obsCont `xml:"obsCont"`
}

type obsCont struct {
	XCampo string `xml:"xCampo,attr"`
	XTexto string `xml:"xTexto"`
}

// ============================================================================
// Parse + XSD
// ============================================================================

// Parse interpreta o XML (nfeProc ou NFe "solta") e devolve o Documento.
func Parse(data []byte) (Documento, error) {
	// 1) tenta nfeProc
	var proc nfeProc
	if err := xml.Unmarshal(data, &proc); err == nil && proc.NFe.InfNFe.Ide.NNF != "" {
		return newDocumento(proc.NFe.InfNFe, proc.ProtNFe), nil
	}

	// 2) tenta NFe "simples"
	var n nfeXML
	if err := xml.Unmarshal(data, &n); err == nil && n.InfNFe.Ide.NNF != "" {
		return newDocumento(n.InfNFe, nil), nil
	}

	return nil, fmt.Errorf("XML não reconhecido como nfeProc ou NFe")
}

// ParseFile lê e parseia o arquivo, validando contra XSD se habilitado por env.
func ParseFile(path string) (Documento, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro lendo XML %s: %w", path, err)
	}

	if err := CheckXSD(data); err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (arquivo: %s)", err, path)
	}
	return doc, nil
}

// CheckXSD valida o XML contra o XSD configurado por env. Com
// DANFE_XSD_ENABLED desligado não faz nada e devolve nil.
func CheckXSD(data []byte) error {
	xsdEnabled := strings.ToLower(os.Getenv("DANFE_XSD_ENABLED"))
	if xsdEnabled != "true" && xsdEnabled != "1" && xsdEnabled != "yes" {
		return nil
	}

	xsdDir := os.Getenv("DANFE_XSD_DIR")
	xsdMain := os.Getenv("DANFE_XSD_MAIN")
	if xsdDir == "" {
		return fmt.Errorf("DANFE_XSD_ENABLED=true mas DANFE_XSD_DIR não foi definido")
	}
	if xsdMain == "" {
		return fmt.Errorf("DANFE_XSD_ENABLED=true mas DANFE_XSD_MAIN não foi definido (ex: procNFe_v4.00.xsd)")
	}

	xsdPath, err := resolveXSDPath(xsdDir, xsdMain)
	if err != nil {
		return err
	}
	return validateXMLWithXSD(data, xsdPath)
}

func validateXMLWithXSD(xmlData []byte, xsdPath string) error {
	if _, err := os.Stat(xsdPath); err != nil {
		return fmt.Errorf("XSD não encontrado em %s: %w", xsdPath, err)
	}

	if err := xsdvalidate.Init(); err != nil {
		return fmt.Errorf("erro inicializando validador XSD: %w", err)
	}
	defer xsdvalidate.Cleanup()

	xsdHandler, err := xsdvalidate.NewXsdHandlerUrl(xsdPath, xsdvalidate.ParsErrDefault)
	if err != nil {
		return fmt.Errorf("erro carregando XSD %s: %w", xsdPath, err)
	}
	defer xsdHandler.Free()

	if err := xsdHandler.ValidateMem(xmlData, xsdvalidate.ValidErrDefault); err != nil {
		return fmt.Errorf("XML inválido segundo XSD (%s): %w", xsdPath, err)
	}

	return nil
}

func resolveXSDPath(baseDir, xsdFile string) (string, error) {
	if xsdFile == "" {
		return "", fmt.Errorf("DANFE_XSD_MAIN não definido")
	}
	if filepath.IsAbs(xsdFile) {
		return xsdFile, nil
	}
	return filepath.Join(baseDir, xsdFile), nil
}

// ============================================================================
// Helpers genéricos (datas, números, chave, etc.)
// ============================================================================

func extractChave(id string) string {
	// id costuma ser algo como "NFe3514..." -> removemos "NFe"
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, "NFe")
	return id
}

func parseFloat(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	v = strings.ReplaceAll(v, ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
