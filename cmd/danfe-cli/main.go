package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BarretoDiego/djf-danfe/danfe"
	"github.com/BarretoDiego/djf-danfe/nfe"
)

var version = "1.0.0"

var outputDir string

var rootCmd = &cobra.Command{
	Use:   "danfe",
	Short: "Gera o DANFE em HTML a partir do XML de uma NF-e",
	Long: `danfe converte o XML de uma Nota Fiscal eletrônica (nfeProc ou NFe solta)
na representação HTML do DANFE, pronta para impressão.

Exemplos:
  danfe convert nota.xml                 # grava nota.html ao lado do XML
  danfe convert nota.xml -o ./saida      # grava em ./saida/<chave>.html
  danfe convert a.xml b.xml c.xml        # converte vários arquivos`,
	Version: version,
}

var convertCmd = &cobra.Command{
	Use:   "convert <arquivo.xml> [arquivo.xml...]",
	Short: "Converte um ou mais XMLs de NF-e em DANFEs HTML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var falhas int

		for _, arg := range args {
			if err := convertFile(arg); err != nil {
				fmt.Fprintf(os.Stderr, "erro convertendo %s: %v\n", arg, err)
				falhas++
			}
		}

		if falhas > 0 {
			return fmt.Errorf("%d de %d arquivo(s) falharam", falhas, len(args))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão da ferramenta",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("danfe %s (%s)\n", version, runtime.Version())
	},
}

func convertFile(path string) error {
	doc, err := nfe.ParseFile(path)
	if err != nil {
		return err
	}

	d := danfe.FromNFe(doc)
	html, err := d.ToHTML()
	if err != nil {
		return err
	}
	if html == "" {
		return fmt.Errorf("nota sem dados mínimos para DANFE (totais ausentes)")
	}

	outPath := outputPath(path, doc)
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro criando diretório de saída: %w", err)
		}
	}

	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("erro gravando HTML: %w", err)
	}

	fmt.Printf("%s -> %s\n", path, outPath)
	return nil
}

// outputPath: com -o, usa <dir>/<chave>.html (ou o nome do arquivo se a
// nota não tiver chave); sem -o, grava <arquivo>.html ao lado do XML.
func outputPath(srcPath string, doc nfe.Documento) string {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))

	if outputDir != "" {
		name := base
		if chave := doc.Chave(); chave != "" {
			name = chave
		}
		return filepath.Join(outputDir, name+".html")
	}

	return filepath.Join(filepath.Dir(srcPath), base+".html")
}

func init() {
	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "", "diretório de saída (default: ao lado do XML)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
