package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/payroll"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ payroll.TxRunner = (*TxRunner)(nil)
var _ usecase.ProposalTxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação, executa fn com os repositórios de pagamento e
// lançamento atados à tx e faz Commit ou Rollback. É o que garante que o
// pagamento e o lançamento espelho gravam juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	payments repository.PaymentRepository,
	records repository.FinancialRecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPaymentRepository(tx), NewFinancialRecordRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProposal abre uma transação para gravar cabeçalho e itens da proposta.
func (r *TxRunner) RunProposal(ctx context.Context, fn func(repository.ProposalRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProposalRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
