// Package finance contém as derivações financeiras puras do sistema:
// séries mensais, totais por categoria, conversão de propostas, DRE,
// fluxo de caixa diário e envelhecimento de contas a pagar.
//
// Todas as funções são determinísticas, operam sobre slices já carregados e
// não fazem I/O; são seguras para reexecutar a cada requisição.
//
// Datas chegam como string ISO (YYYY-MM-DD). A seleção de mês é comparação
// de prefixo e a aritmética de dias parte dos componentes ano/mês/dia da
// string: lançamentos do dia 01 não podem escorregar para o mês anterior
// por efeito de fuso horário.
package finance

import (
	"strconv"
	"strings"
	"time"
)

// inMonth informa se a data ISO pertence ao mês selecionado (YYYY-MM).
func inMonth(date, month string) bool {
	return month != "" && strings.HasPrefix(date, month)
}

// splitDate decompõe YYYY-MM-DD em componentes numéricos.
func splitDate(date string) (year, month, day int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// splitMonth decompõe YYYY-MM.
func splitMonth(month string) (year, m int, ok bool) {
	parts := strings.SplitN(month, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	year, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return year, m, true
}

// daysInMonth devolve o número de dias do mês, ciente de anos bissextos.
// time.Date com dia zero normaliza para o último dia do mês anterior.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// civilDate materializa os componentes como data UTC à meia-noite. Usar UTC
// nos dois lados da subtração dá diferenças exatas em múltiplos de 24h,
// imunes a horário de verão.
func civilDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// monthShortPT são as abreviações pt-BR usadas nos rótulos da série mensal.
var monthShortPT = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}
