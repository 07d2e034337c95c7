package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// PaymentRepository define a porta de persistência para pagamentos de mão de
// obra. As mutações são sempre invocadas junto com o lançamento financeiro
// espelho, dentro da mesma transação (ver payroll.PaymentUseCase).
type PaymentRepository interface {
	Create(payment *entity.PaymentRecord) error
	GetByID(id string) (*entity.PaymentRecord, error)
	Update(payment *entity.PaymentRecord) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.PaymentRecord, error)
	ListAll() ([]entity.PaymentRecord, error)
}
