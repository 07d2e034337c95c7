// Package export produz a exportação em CSV dos lançamentos financeiros,
// no formato aceito pelas planilhas usadas pela contabilidade.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
	"github.com/jsengenhariacivil/JSengCRM/pkg/money"
)

// csvHeader é o cabeçalho fixo do arquivo, na ordem das colunas da planilha.
var csvHeader = []string{"Data", "Tipo", "Descrição", "Categoria", "Status", "Valor"}

// FinancialCSVExporter gera o CSV dos lançamentos financeiros.
type FinancialCSVExporter struct {
	records repository.FinancialRecordRepository
}

// NewFinancialCSVExporter constrói o exportador.
func NewFinancialCSVExporter(records repository.FinancialRecordRepository) *FinancialCSVExporter {
	return &FinancialCSVExporter{records: records}
}

// Export devolve os bytes do CSV. month opcional (YYYY-MM) restringe ao mês
// de competência por prefixo; vazio exporta o banco inteiro.
func (e *FinancialCSVExporter) Export(month string) ([]byte, error) {
	records, err := e.records.ListAll()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// BOM para o Excel reconhecer UTF-8 (acentos nas descrições).
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		if month != "" && (len(r.Date) < 7 || r.Date[:7] != month) {
			continue
		}
		row := []string{
			formatDateBR(r.Date),
			r.Type,
			r.Description,
			r.Category,
			r.Status,
			money.FormatNumber(amountSigned(r)),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// amountSigned devolve o valor com sinal: despesas saem negativas para a
// planilha somar a coluna direto.
func amountSigned(r entity.FinancialRecord) decimal.Decimal {
	if r.Type == entity.RecordTypeDespesa {
		return r.Amount.Neg()
	}
	return r.Amount
}

// formatDateBR converte YYYY-MM-DD para DD/MM/YYYY por fatiamento.
func formatDateBR(date string) string {
	if len(date) != 10 {
		return date
	}
	return date[8:10] + "/" + date[5:7] + "/" + date[0:4]
}
