package export

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

type stubRecords struct{ rows []entity.FinancialRecord }

func (s stubRecords) Create(*entity.FinancialRecord) error            { return nil }
func (s stubRecords) GetByID(string) (*entity.FinancialRecord, error) { return nil, nil }
func (s stubRecords) Update(*entity.FinancialRecord) error            { return nil }
func (s stubRecords) Delete(string) error                             { return nil }
func (s stubRecords) ListAll() ([]entity.FinancialRecord, error)      { return s.rows, nil }

func TestExportCSV(t *testing.T) {
	e := NewFinancialCSVExporter(stubRecords{rows: []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Description: "Medição obra Jardins", Amount: decimal.NewFromInt(150000), Date: "2024-01-10", Status: entity.StatusPago, Category: entity.CategoryProjeto},
		{Type: entity.RecordTypeDespesa, Description: "Cimento e aço", Amount: decimal.NewFromInt(1200), Date: "2024-01-20", Status: entity.StatusPendente, Category: entity.CategoryMateriais},
	}})

	out, err := e.Export("")
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "\uFEFF"), "BOM para o Excel")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\uFEFF")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Data;Tipo;Descrição;Categoria;Status;Valor", lines[0])
	assert.Contains(t, lines[1], "10/01/2024")
	assert.Contains(t, lines[1], "Receita")
	assert.Contains(t, lines[2], "-1")
}

func TestExportCSVMonthFilter(t *testing.T) {
	e := NewFinancialCSVExporter(stubRecords{rows: []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Description: "Janeiro", Amount: decimal.NewFromInt(100), Date: "2024-01-10", Status: entity.StatusPago},
		{Type: entity.RecordTypeReceita, Description: "Fevereiro", Amount: decimal.NewFromInt(200), Date: "2024-02-10", Status: entity.StatusPago},
	}})

	out, err := e.Export("2024-02")
	require.NoError(t, err)

	content := string(out)
	assert.NotContains(t, content, "Janeiro")
	assert.Contains(t, content, "Fevereiro")
}
