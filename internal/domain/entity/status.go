package entity

// Status compartilhado entre projetos, lançamentos financeiros e propostas.
// Os valores são os rótulos exibidos na interface; persistem como texto.
const (
	StatusPendente    = "Pendente"
	StatusEmAndamento = "Em Andamento"
	StatusConcluido   = "Concluído"
	StatusPago        = "Pago"
	StatusAtrasado    = "Atrasado"
	StatusAprovado    = "Aprovado"
	StatusRejeitado   = "Rejeitado"
)

// Status específico da folha de pagamentos; no espelho financeiro vira Pendente.
const StatusAgendado = "Agendado"
