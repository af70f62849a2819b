package quiz

// Pillar identifies one of the five maturity pillars every catalog is
// organized around.
type Pillar string

const (
	PillarProcessos   Pillar = "Processos"
	PillarPessoas     Pillar = "Pessoas"
	PillarClientes    Pillar = "Clientes"
	PillarControle    Pillar = "Controle"
	PillarCrescimento Pillar = "Crescimento"
)

// AllPillars returns the five pillars in their fixed presentation order.
func AllPillars() []Pillar {
	return []Pillar{
		PillarProcessos,
		PillarPessoas,
		PillarClientes,
		PillarControle,
		PillarCrescimento,
	}
}

// Block returns the 1-based block number for the pillar, or 0 if unknown.
func (p Pillar) Block() int {
	for i, other := range AllPillars() {
		if p == other {
			return i + 1
		}
	}
	return 0
}

// PillarForBlock maps a block number (1..5) back to its pillar.
func PillarForBlock(block int) (Pillar, bool) {
	all := AllPillars()
	if block < 1 || block > len(all) {
		return "", false
	}
	return all[block-1], true
}
