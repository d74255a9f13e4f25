package alocacao

// Percentual fixo destinado ao depósito primário na divisão de alocação.
const percentualPrimario = 0.7

// Split aplica a política fixa de divisão 70/30 entre o par de depósitos (serviço de domínio).
// O primário recebe floor(Q * 0.7); o secundário absorve o resto do arredondamento,
// de modo que primario + secundario == total sempre.
func Split(total int64) (primario, secundario int64) {
	primario = int64(float64(total) * percentualPrimario)
	secundario = total - primario
	return primario, secundario
}
