package entities

// Status representa o estado de ciclo de vida de um perfil
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBanned   Status = "banned"
)

// IsValid verifica se o status pertence à enumeração fechada
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBanned:
		return true
	}
	return false
}
