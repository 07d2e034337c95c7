package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// FinancialRecordRepository define a porta de persistência para lançamentos.
//
// ListAll devolve o banco inteiro ordenado por data decrescente; as
// derivações do pacote finance operam sobre esse snapshot em memória.
type FinancialRecordRepository interface {
	Create(record *entity.FinancialRecord) error
	GetByID(id string) (*entity.FinancialRecord, error)
	Update(record *entity.FinancialRecord) error
	Delete(id string) error
	ListAll() ([]entity.FinancialRecord, error)
}
